package main

import (
	"net/http"

	"github.com/Beka01247/coffee-order/internal/service"
	"github.com/go-chi/chi/v5"
)

type PersonalOptionRequest struct {
	Name      string `json:"name" validate:"required,max=50"`
	Category  string `json:"category" validate:"max=30"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

func (req PersonalOptionRequest) input() service.PersonalOptionInput {
	return service.PersonalOptionInput{
		Name:      req.Name,
		Category:  req.Category,
		SortOrder: req.SortOrder,
	}
}

// groupedPersonalOptionsHandler godoc
//
//	@Summary		List personal option presets by category
//	@Description	Presets without a category are grouped under "Other"
//	@Tags			personal-options
//	@Produce		json
//	@Success		200	{array}		domain.CategoryGroup[domain.PersonalOption]
//	@Failure		500	{object}	errorEnvelope
//	@Router			/personal-options [get]
func (app *application) groupedPersonalOptionsHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := app.presetService.Grouped(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, groups); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listPersonalOptionsHandler godoc
//
//	@Summary		List personal option presets
//	@Tags			personal-options
//	@Produce		json
//	@Success		200	{array}		domain.PersonalOption
//	@Failure		500	{object}	errorEnvelope
//	@Router			/personal-options/list [get]
func (app *application) listPersonalOptionsHandler(w http.ResponseWriter, r *http.Request) {
	presets, err := app.presetService.List(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, presets); err != nil {
		app.internalServerError(w, r, err)
	}
}

// personalOptionsByCategoryHandler godoc
//
//	@Summary		List personal option presets of a category
//	@Tags			personal-options
//	@Produce		json
//	@Param			category	path		string	true	"Category"
//	@Success		200			{array}		domain.PersonalOption
//	@Failure		500			{object}	errorEnvelope
//	@Router			/personal-options/category/{category} [get]
func (app *application) personalOptionsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	presets, err := app.presetService.ByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, presets); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getPersonalOptionHandler godoc
//
//	@Summary		Get personal option preset
//	@Tags			personal-options
//	@Produce		json
//	@Param			id	path		string	true	"Preset ID"
//	@Success		200	{object}	domain.PersonalOption
//	@Failure		400	{object}	errorEnvelope
//	@Failure		404	{object}	errorEnvelope
//	@Router			/personal-options/{id} [get]
func (app *application) getPersonalOptionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	preset, err := app.presetService.Get(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, preset); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createPersonalOptionHandler godoc
//
//	@Summary		Create personal option preset
//	@Tags			personal-options
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PersonalOptionRequest	true	"Preset"
//	@Success		201		{object}	domain.PersonalOption
//	@Failure		400		{object}	errorEnvelope
//	@Router			/personal-options [post]
func (app *application) createPersonalOptionHandler(w http.ResponseWriter, r *http.Request) {
	var req PersonalOptionRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	preset, err := app.presetService.Create(r.Context(), req.input())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, preset); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updatePersonalOptionHandler godoc
//
//	@Summary		Update personal option preset
//	@Tags			personal-options
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Preset ID"
//	@Param			request	body		PersonalOptionRequest	true	"Preset"
//	@Success		200		{object}	domain.PersonalOption
//	@Failure		400		{object}	errorEnvelope
//	@Failure		404		{object}	errorEnvelope
//	@Router			/personal-options/{id} [put]
func (app *application) updatePersonalOptionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req PersonalOptionRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	preset, err := app.presetService.Update(r.Context(), id, req.input())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, preset); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deletePersonalOptionHandler godoc
//
//	@Summary		Delete personal option preset
//	@Tags			personal-options
//	@Param			id	path	string	true	"Preset ID"
//	@Success		204
//	@Failure		400	{object}	errorEnvelope
//	@Failure		404	{object}	errorEnvelope
//	@Router			/personal-options/{id} [delete]
func (app *application) deletePersonalOptionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.presetService.Delete(r.Context(), id); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
