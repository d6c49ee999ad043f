package main

import (
	"errors"
	"net/http"

	"github.com/Beka01247/coffee-order/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuRequest struct {
	DepartmentID string `json:"department_id,omitempty" validate:"omitempty,mongodb"`
	Name         string `json:"name" validate:"required,max=100"`
	Category     string `json:"category" validate:"required,max=100"`
	SortOrder    int    `json:"sort_order" validate:"gte=0"`
}

type ImportMenusRequest struct {
	DepartmentID  string `json:"department_id" validate:"required,mongodb"`
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
	Range         string `json:"range"`
}

type ImportMenusResponse struct {
	Imported int `json:"imported"`
}

func (req MenuRequest) input() service.MenuInput {
	return service.MenuInput{
		Name:      req.Name,
		Category:  req.Category,
		SortOrder: req.SortOrder,
	}
}

// listMenusHandler godoc
//
//	@Summary		List custom menus
//	@Description	Custom catalog of a department, grouped by category in sort order
//	@Tags			menus
//	@Produce		json
//	@Param			department_id	query		string	true	"Department ID"
//	@Success		200				{array}		domain.CategoryGroup[domain.Menu]
//	@Failure		400				{object}	errorEnvelope
//	@Router			/menus [get]
func (app *application) listMenusHandler(w http.ResponseWriter, r *http.Request) {
	departmentID, err := departmentParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	groups, err := app.menuService.Grouped(r.Context(), departmentID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, groups); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMenuHandler godoc
//
//	@Summary		Create custom menu
//	@Tags			menus
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MenuRequest	true	"Menu"
//	@Success		201		{object}	domain.Menu
//	@Failure		400		{object}	errorEnvelope
//	@Failure		404		{object}	errorEnvelope
//	@Router			/menus [post]
func (app *application) createMenuHandler(w http.ResponseWriter, r *http.Request) {
	var req MenuRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if req.DepartmentID == "" {
		app.badRequestResponse(w, r, errors.New("department_id is required"))
		return
	}
	departmentID, _ := primitive.ObjectIDFromHex(req.DepartmentID)

	menu, err := app.menuService.Create(r.Context(), departmentID, req.input())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuHandler godoc
//
//	@Summary		Update custom menu
//	@Tags			menus
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Menu ID"
//	@Param			request	body		MenuRequest	true	"Menu"
//	@Success		200		{object}	domain.Menu
//	@Failure		400		{object}	errorEnvelope
//	@Failure		404		{object}	errorEnvelope
//	@Router			/menus/{id} [put]
func (app *application) updateMenuHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req MenuRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	menu, err := app.menuService.Update(r.Context(), id, req.input())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuHandler godoc
//
//	@Summary		Delete custom menu
//	@Tags			menus
//	@Param			id	path	string	true	"Menu ID"
//	@Success		204
//	@Failure		404	{object}	errorEnvelope
//	@Router			/menus/{id} [delete]
func (app *application) deleteMenuHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.menuService.Delete(r.Context(), id); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// importMenusHandler godoc
//
//	@Summary		Import custom menus from Google Sheets
//	@Description	Replaces the department's custom catalog with the sheet rows (category, name, sort order)
//	@Tags			menus
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ImportMenusRequest	true	"Import request"
//	@Success		200		{object}	ImportMenusResponse
//	@Failure		400		{object}	errorEnvelope
//	@Failure		503		{object}	errorEnvelope
//	@Router			/menus/import [post]
func (app *application) importMenusHandler(w http.ResponseWriter, r *http.Request) {
	var req ImportMenusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	departmentID, _ := primitive.ObjectIDFromHex(req.DepartmentID)

	n, err := app.menuService.Import(r.Context(), departmentID, req.SpreadsheetID, req.Range)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, ImportMenusResponse{Imported: n}); err != nil {
		app.internalServerError(w, r, err)
	}
}
