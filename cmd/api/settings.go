package main

import (
	"net/http"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/service"
)

type UpdateSettingsRequest struct {
	MenuMode   string `json:"menu_mode" validate:"required,oneof=CUSTOM VENDOR"`
	Is24Hours  bool   `json:"is_24_hours"`
	CutoffTime string `json:"cutoff_time" validate:"required_without=Is24Hours"`
}

type OrderAvailableResponse struct {
	Available bool `json:"available"`
}

// getSettingsHandler godoc
//
//	@Summary		Department settings
//	@Description	Created with defaults (CUSTOM, cutoff 09:00, not 24h) on first read
//	@Tags			settings
//	@Produce		json
//	@Param			department_id	query		string	true	"Department ID"
//	@Success		200				{object}	domain.Settings
//	@Failure		404				{object}	errorEnvelope
//	@Router			/settings [get]
func (app *application) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	departmentID, err := departmentParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	settings, err := app.settingsService.Get(r.Context(), departmentID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, settings); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateSettingsHandler godoc
//
//	@Summary		Update department settings
//	@Description	The menu mode cannot change while the department has orders today.
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			department_id	query		string					true	"Department ID"
//	@Param			request			body		UpdateSettingsRequest	true	"Settings"
//	@Success		200				{object}	domain.Settings
//	@Failure		400				{object}	errorEnvelope
//	@Failure		409				{object}	errorEnvelope	"MENU_MODE_LOCKED"
//	@Router			/settings [put]
func (app *application) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	departmentID, err := departmentParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateSettingsRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	settings, err := app.settingsService.Update(r.Context(), departmentID, service.SettingsInput{
		MenuMode:   domain.MenuType(req.MenuMode),
		Is24Hours:  req.Is24Hours,
		CutoffTime: req.CutoffTime,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, settings); err != nil {
		app.internalServerError(w, r, err)
	}
}

// orderAvailableHandler godoc
//
//	@Summary		Whether ordering is open now
//	@Tags			settings
//	@Produce		json
//	@Param			department_id	query		string	true	"Department ID"
//	@Success		200				{object}	OrderAvailableResponse
//	@Router			/settings/order-available [get]
func (app *application) orderAvailableHandler(w http.ResponseWriter, r *http.Request) {
	departmentID, err := departmentParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	available, err := app.settingsService.OrderAvailable(r.Context(), departmentID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, OrderAvailableResponse{Available: available}); err != nil {
		app.internalServerError(w, r, err)
	}
}
