package main

import (
	"errors"
	"net/http"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/go-chi/chi/v5"
)

type SyncTriggerResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type SyncInProgressResponse struct {
	InProgress bool `json:"in_progress"`
}

// listVendorMenusHandler godoc
//
//	@Summary		List vendor menus
//	@Description	Synced vendor catalog grouped by category
//	@Tags			vendor-menus
//	@Produce		json
//	@Success		200	{array}		domain.CategoryGroup[domain.VendorMenu]
//	@Failure		500	{object}	errorEnvelope
//	@Router			/vendor-menus [get]
func (app *application) listVendorMenusHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := app.vendorMenuService.Grouped(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, groups); err != nil {
		app.internalServerError(w, r, err)
	}
}

// vendorMenuOptionsHandler godoc
//
//	@Summary		Vendor menu options
//	@Description	Temperatures and their sizes for one vendor item
//	@Tags			vendor-menus
//	@Produce		json
//	@Param			code	path		string	true	"Vendor menu code"
//	@Success		200		{object}	domain.VendorOptions
//	@Router			/vendor-menus/options/{code} [get]
func (app *application) vendorMenuOptionsHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		app.badRequestResponse(w, r, errors.New("code is required"))
		return
	}

	options, err := app.vendorMenuService.Options(r.Context(), code)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, options); err != nil {
		app.internalServerError(w, r, err)
	}
}

// triggerSyncHandler godoc
//
//	@Summary		Start vendor menu sync
//	@Description	Queues a sync of the vendor catalog. Only one sync runs at a time.
//	@Tags			vendor-menus
//	@Produce		json
//	@Success		202	{object}	SyncTriggerResponse
//	@Failure		409	{object}	errorEnvelope
//	@Failure		500	{object}	errorEnvelope
//	@Router			/vendor-menus/sync [post]
func (app *application) triggerSyncHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := app.syncService.Trigger(r.Context(), domain.TriggerManual)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	response := SyncTriggerResponse{
		JobID:  jobID,
		Status: "queued",
	}

	if err := app.jsonRespone(w, http.StatusAccepted, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// syncStatusHandler godoc
//
//	@Summary		Vendor menu sync status
//	@Tags			vendor-menus
//	@Produce		json
//	@Success		200	{object}	domain.SyncProgress
//	@Router			/vendor-menus/sync/status [get]
func (app *application) syncStatusHandler(w http.ResponseWriter, r *http.Request) {
	progress, err := app.syncService.Status(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, progress); err != nil {
		app.internalServerError(w, r, err)
	}
}

// syncInProgressHandler godoc
//
//	@Summary		Whether a vendor menu sync is running
//	@Tags			vendor-menus
//	@Produce		json
//	@Success		200	{object}	SyncInProgressResponse
//	@Router			/vendor-menus/sync/in-progress [get]
func (app *application) syncInProgressHandler(w http.ResponseWriter, r *http.Request) {
	running, err := app.syncService.InProgress(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, SyncInProgressResponse{InProgress: running}); err != nil {
		app.internalServerError(w, r, err)
	}
}
