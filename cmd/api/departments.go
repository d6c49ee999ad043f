package main

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type RenameDepartmentRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateTeamRequest struct {
	DepartmentID string `json:"department_id" validate:"required,mongodb"`
	Name         string `json:"name" validate:"required,max=100"`
}

type RenameTeamRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// listDepartmentsHandler godoc
//
//	@Summary		List departments
//	@Tags			departments
//	@Produce		json
//	@Success		200	{array}		domain.Department
//	@Failure		500	{object}	errorEnvelope
//	@Router			/departments [get]
func (app *application) listDepartmentsHandler(w http.ResponseWriter, r *http.Request) {
	departments, err := app.departmentService.List(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, departments); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createDepartmentHandler godoc
//
//	@Summary		Create department
//	@Tags			departments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateDepartmentRequest	true	"Department"
//	@Success		201		{object}	domain.Department
//	@Failure		400		{object}	errorEnvelope
//	@Failure		500		{object}	errorEnvelope
//	@Router			/departments [post]
func (app *application) createDepartmentHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateDepartmentRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	department, err := app.departmentService.Create(r.Context(), req.Name)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, department); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getDepartmentHandler godoc
//
//	@Summary		Get department
//	@Tags			departments
//	@Produce		json
//	@Param			id	path		string	true	"Department ID"
//	@Success		200	{object}	domain.Department
//	@Failure		400	{object}	errorEnvelope
//	@Failure		404	{object}	errorEnvelope
//	@Router			/departments/{id} [get]
func (app *application) getDepartmentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	department, err := app.departmentService.Get(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, department); err != nil {
		app.internalServerError(w, r, err)
	}
}

// renameDepartmentHandler godoc
//
//	@Summary		Rename department
//	@Tags			departments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Department ID"
//	@Param			request	body		RenameDepartmentRequest	true	"New name"
//	@Success		200		{object}	domain.Department
//	@Failure		400		{object}	errorEnvelope
//	@Failure		404		{object}	errorEnvelope
//	@Router			/departments/{id} [put]
func (app *application) renameDepartmentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req RenameDepartmentRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	department, err := app.departmentService.Rename(r.Context(), id, req.Name)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, department); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteDepartmentHandler godoc
//
//	@Summary		Delete department
//	@Tags			departments
//	@Param			id	path	string	true	"Department ID"
//	@Success		204
//	@Failure		400	{object}	errorEnvelope
//	@Failure		404	{object}	errorEnvelope
//	@Router			/departments/{id} [delete]
func (app *application) deleteDepartmentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.departmentService.Delete(r.Context(), id); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listTeamsHandler godoc
//
//	@Summary		List department members
//	@Tags			teams
//	@Produce		json
//	@Param			department_id	query		string	true	"Department ID"
//	@Success		200				{array}		domain.Team
//	@Failure		400				{object}	errorEnvelope
//	@Router			/teams [get]
func (app *application) listTeamsHandler(w http.ResponseWriter, r *http.Request) {
	departmentID, err := departmentParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	teams, err := app.teamService.List(r.Context(), departmentID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, teams); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createTeamHandler godoc
//
//	@Summary		Add a member to a department
//	@Tags			teams
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTeamRequest	true	"Member"
//	@Success		201		{object}	domain.Team
//	@Failure		400		{object}	errorEnvelope
//	@Failure		404		{object}	errorEnvelope
//	@Router			/teams [post]
func (app *application) createTeamHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	departmentID, _ := primitive.ObjectIDFromHex(req.DepartmentID)

	team, err := app.teamService.Create(r.Context(), departmentID, req.Name)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, team); err != nil {
		app.internalServerError(w, r, err)
	}
}

// renameTeamHandler godoc
//
//	@Summary		Rename a member
//	@Tags			teams
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Team ID"
//	@Param			request	body		RenameTeamRequest	true	"New name"
//	@Success		200		{object}	domain.Team
//	@Failure		400		{object}	errorEnvelope
//	@Failure		404		{object}	errorEnvelope
//	@Router			/teams/{id} [put]
func (app *application) renameTeamHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req RenameTeamRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	team, err := app.teamService.Rename(r.Context(), id, req.Name)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, team); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteTeamHandler godoc
//
//	@Summary		Remove a member
//	@Description	Soft delete; past orders keep the member name.
//	@Tags			teams
//	@Param			id	path	string	true	"Team ID"
//	@Success		204
//	@Failure		404	{object}	errorEnvelope
//	@Router			/teams/{id} [delete]
func (app *application) deleteTeamHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.teamService.Delete(r.Context(), id); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
