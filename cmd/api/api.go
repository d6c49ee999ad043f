package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beka01247/coffee-order/docs"
	"github.com/Beka01247/coffee-order/internal/queue"
	"github.com/Beka01247/coffee-order/internal/ratelimiter"
	"github.com/Beka01247/coffee-order/internal/service"
	"github.com/Beka01247/coffee-order/internal/store/mongo"
	"github.com/Beka01247/coffee-order/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config            config
	logger            *zap.SugaredLogger
	rateLimiter       ratelimiter.Limiter
	storage           *mongo.Storage
	broker            queue.Broker
	clock             service.Clock
	departmentService *service.DepartmentService
	teamService       *service.TeamService
	menuService       *service.MenuService
	vendorMenuService *service.VendorMenuService
	presetService     *service.PersonalOptionService
	orderService      *service.OrderService
	settingsService   *service.SettingsService
	syncService       *service.SyncService
	syncWorker        *worker.VendorSyncWorker
	syncScheduler     *worker.SyncScheduler
}

type config struct {
	addr        string
	env         string
	apiURL      string
	timeZone    string
	dataPath    string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	vendor      vendorConfig
	sync        syncConfig
	googleCreds string
}

type mongoConfig struct {
	URI          string
	Database     string
	Timeout      time.Duration
	Transactions bool
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type vendorConfig struct {
	BaseURL    string
	CDNBaseURL string
	Timeout    time.Duration
}

type syncConfig struct {
	ScheduleEnabled bool
	Hour            int
	Minute          int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", app.listDepartmentsHandler)
			r.Post("/", app.createDepartmentHandler)
			r.Get("/{id}", app.getDepartmentHandler)
			r.Put("/{id}", app.renameDepartmentHandler)
			r.Delete("/{id}", app.deleteDepartmentHandler)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", app.listTeamsHandler)
			r.Post("/", app.createTeamHandler)
			r.Put("/{id}", app.renameTeamHandler)
			r.Delete("/{id}", app.deleteTeamHandler)
		})

		r.Route("/menus", func(r chi.Router) {
			r.Get("/", app.listMenusHandler)
			r.Post("/", app.createMenuHandler)
			r.Post("/import", app.importMenusHandler)
			r.Put("/{id}", app.updateMenuHandler)
			r.Delete("/{id}", app.deleteMenuHandler)
		})

		r.Route("/vendor-menus", func(r chi.Router) {
			r.Get("/", app.listVendorMenusHandler)
			r.Get("/options/{code}", app.vendorMenuOptionsHandler)
			r.Post("/sync", app.triggerSyncHandler)
			r.Get("/sync/status", app.syncStatusHandler)
			r.Get("/sync/in-progress", app.syncInProgressHandler)
		})

		r.Route("/personal-options", func(r chi.Router) {
			r.Get("/", app.groupedPersonalOptionsHandler)
			r.Get("/list", app.listPersonalOptionsHandler)
			r.Get("/category/{category}", app.personalOptionsByCategoryHandler)
			r.Get("/{id}", app.getPersonalOptionHandler)
			r.Post("/", app.createPersonalOptionHandler)
			r.Put("/{id}", app.updatePersonalOptionHandler)
			r.Delete("/{id}", app.deletePersonalOptionHandler)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", app.listOrdersHandler)
			r.Post("/", app.createOrderHandler)
			r.Get("/today", app.todayOrdersHandler)
			r.Get("/summary", app.orderSummaryHandler)
			r.Get("/summary/export", app.exportOrdersHandler)
			r.Get("/team/{id}/today", app.teamTodayOrderHandler)
			r.Get("/team/{id}/latest", app.teamLatestOrderHandler)
			r.Put("/{id}", app.updateOrderHandler)
			r.Delete("/{id}", app.deleteOrderHandler)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", app.getSettingsHandler)
			r.Put("/", app.updateSettingsHandler)
			r.Get("/order-available", app.orderAvailableHandler)
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	// downloaded vendor images live under <dataPath>/images/vendor
	r.Handle("/images/*", http.FileServer(http.Dir(app.config.dataPath)))

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Coffee Order"
	docs.SwaggerInfo.Description = "API for the office coffee order board"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.syncWorker != nil {
		if err := app.syncWorker.Start(); err != nil {
			return fmt.Errorf("failed to start sync worker: %w", err)
		}
	}
	if app.syncScheduler != nil {
		app.syncScheduler.Start()
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.syncScheduler != nil {
			app.syncScheduler.Stop()
		}
		if app.syncWorker != nil {
			app.syncWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env, "time_zone", app.config.timeZone)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
