// Command orderctl drives the ordering engine against a running API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/Beka01247/coffee-order/internal/client"
	"github.com/Beka01247/coffee-order/internal/env"
	"github.com/Beka01247/coffee-order/internal/ordering"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const usage = `usage: orderctl [global flags] <command> [flags]

commands:
  menu      list the department's active menu (-all for both menus)
  today     list today's orders and their summary
  order     place or change a member's order
  presets   list the saved personal options
  reorder   repeat a member's latest order from an earlier day
  cancel    cancel an order
  sync      run the vendor menu sync and follow its progress
  watch     print today's orders as they change

global flags:
`

type globals struct {
	api        string
	department string
	timeZone   string
	verbose    bool
}

func main() {
	_ = godotenv.Load()

	var g globals
	fs := flag.NewFlagSet("orderctl", flag.ExitOnError)
	fs.StringVar(&g.api, "api", env.GetString("COFFEE_API_URL", client.DefaultBaseURL), "API base URL")
	fs.StringVar(&g.department, "department", env.GetString("COFFEE_DEPARTMENT", ""), "department ID")
	fs.StringVar(&g.timeZone, "tz", env.GetString("TIME_ZONE", ordering.DefaultLocation), "department time zone")
	fs.BoolVar(&g.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}

	logger := newLogger(g.verbose)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, g, fs.Arg(0), fs.Args()[1:], logger); err != nil {
		logger.Debugw("command failed", "command", fs.Arg(0), "error", err)
		fmt.Fprintln(os.Stderr, "error:", ordering.UserMessage(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.SugaredLogger {
	if !verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		return zap.Must(cfg.Build()).Sugar()
	}
	return zap.Must(zap.NewDevelopment()).Sugar()
}

func newEngine(g globals, logger *zap.SugaredLogger) (*ordering.Engine, error) {
	loc, err := time.LoadLocation(g.timeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone %q: %w", g.timeZone, err)
	}

	backend := client.New(client.Config{
		BaseURL:    g.api,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Logger:     logger,
	})

	return ordering.NewEngine(backend, ordering.Config{
		Logger:   logger,
		Location: loc,
	}), nil
}

func run(ctx context.Context, g globals, command string, args []string, logger *zap.SugaredLogger) error {
	engine, err := newEngine(g, logger)
	if err != nil {
		return err
	}
	defer engine.Close()

	// sync and presets work without a department
	switch command {
	case "sync":
		return runSync(ctx, engine, g, args)
	case "presets":
		return runPresets(ctx, engine)
	}

	if g.department == "" {
		return errors.New("-department or COFFEE_DEPARTMENT is required")
	}
	if err := engine.Open(ctx, g.department); err != nil {
		if errors.Is(err, ordering.ErrCatalogUnavailable) && command != "menu" {
			logger.Warnw("menu unavailable", "error", err)
		} else {
			return err
		}
	}

	switch command {
	case "menu":
		return runMenu(ctx, engine, args)
	case "today":
		return runToday(engine)
	case "order":
		return runOrder(ctx, engine, args)
	case "reorder":
		return runReorder(ctx, engine, args)
	case "cancel":
		return runCancel(ctx, engine, args)
	case "watch":
		return runWatch(ctx, engine)
	}

	return fmt.Errorf("unknown command %q", command)
}
