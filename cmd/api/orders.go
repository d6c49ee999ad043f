package main

import (
	"net/http"

	"github.com/Beka01247/coffee-order/internal/domain"
	"github.com/Beka01247/coffee-order/internal/report"
	"github.com/Beka01247/coffee-order/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateOrderRequest struct {
	MenuType       string  `json:"menu_type" validate:"omitempty,oneof=CUSTOM VENDOR"`
	MenuID         *string `json:"menu_id,omitempty" validate:"omitempty,mongodb"`
	VendorMenuID   *string `json:"vendor_menu_id,omitempty" validate:"omitempty,mongodb"`
	PersonalOption *string `json:"personal_option" validate:"omitempty,max=200"`
}

type CreateOrderRequest struct {
	UpdateOrderRequest
	TeamID       string `json:"team_id" validate:"required,mongodb"`
	DepartmentID string `json:"department_id,omitempty" validate:"omitempty,mongodb"`
	OrderDate    string `json:"order_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (req UpdateOrderRequest) input() (service.OrderInput, error) {
	menuID, err := optionalObjectID(req.MenuID)
	if err != nil {
		return service.OrderInput{}, err
	}
	vendorMenuID, err := optionalObjectID(req.VendorMenuID)
	if err != nil {
		return service.OrderInput{}, err
	}

	return service.OrderInput{
		MenuType:       domain.MenuType(req.MenuType),
		MenuID:         menuID,
		VendorMenuID:   vendorMenuID,
		PersonalOption: req.PersonalOption,
	}, nil
}

// dateQuery reads ?date=, defaulting to today in the deployment zone.
func (app *application) dateQuery(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return app.clock.Today()
}

// todayOrdersHandler godoc
//
//	@Summary		Today's orders
//	@Tags			orders
//	@Produce		json
//	@Param			department_id	query		string	true	"Department ID"
//	@Success		200				{array}		domain.OrderView
//	@Failure		400				{object}	errorEnvelope
//	@Router			/orders/today [get]
func (app *application) todayOrdersHandler(w http.ResponseWriter, r *http.Request) {
	departmentID, err := departmentParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	orders, err := app.orderService.Today(r.Context(), departmentID)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersHandler godoc
//
//	@Summary		Orders of a day
//	@Tags			orders
//	@Produce		json
//	@Param			department_id	query		string	true	"Department ID"
//	@Param			date			query		string	false	"YYYY-MM-DD, defaults to today"
//	@Success		200				{array}		domain.OrderView
//	@Failure		400				{object}	errorEnvelope
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	departmentID, err := departmentParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	orders, err := app.orderService.ByDate(r.Context(), departmentID, app.dateQuery(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// orderSummaryHandler godoc
//
//	@Summary		Order summary of a day
//	@Description	Orders counted per menu and personal option
//	@Tags			orders
//	@Produce		json
//	@Param			department_id	query		string	true	"Department ID"
//	@Param			date			query		string	false	"YYYY-MM-DD, defaults to today"
//	@Success		200				{array}		domain.OrderSummary
//	@Failure		400				{object}	errorEnvelope
//	@Router			/orders/summary [get]
func (app *application) orderSummaryHandler(w http.ResponseWriter, r *http.Request) {
	departmentID, err := departmentParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	summary, err := app.orderService.Summary(r.Context(), departmentID, app.dateQuery(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, summary); err != nil {
		app.internalServerError(w, r, err)
	}
}

// exportOrdersHandler godoc
//
//	@Summary		Export a day's orders
//	@Description	Excel workbook with a Summary and an Orders sheet
//	@Tags			orders
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			department_id	query	string	true	"Department ID"
//	@Param			date			query	string	false	"YYYY-MM-DD, defaults to today"
//	@Success		200
//	@Failure		400	{object}	errorEnvelope
//	@Router			/orders/summary/export [get]
func (app *application) exportOrdersHandler(w http.ResponseWriter, r *http.Request) {
	departmentID, err := departmentParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	date := app.dateQuery(r)

	orders, err := app.orderService.ByDate(r.Context(), departmentID, date)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName(date)+`"`)

	if err := report.WriteOrders(w, date, domain.SummarizeOrders(orders), orders); err != nil {
		// headers are gone by now
		app.logger.Errorw("failed to write order export", "department_id", departmentID.Hex(), "date", date, "error", err)
	}
}

// teamTodayOrderHandler godoc
//
//	@Summary		A member's order today
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Team ID"
//	@Success		200	{object}	domain.OrderView
//	@Failure		404	{object}	errorEnvelope
//	@Router			/orders/team/{id}/today [get]
func (app *application) teamTodayOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.TeamToday(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// teamLatestOrderHandler godoc
//
//	@Summary		A member's latest order
//	@Description	Most recent live order by date, used to repeat an order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Team ID"
//	@Success		200	{object}	domain.OrderView
//	@Failure		404	{object}	errorEnvelope
//	@Router			/orders/team/{id}/latest [get]
func (app *application) teamLatestOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.TeamLatest(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createOrderHandler godoc
//
//	@Summary		Place an order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order"
//	@Success		201		{object}	domain.OrderView
//	@Failure		400		{object}	errorEnvelope
//	@Failure		403		{object}	errorEnvelope	"ORDERING_CLOSED"
//	@Failure		409		{object}	errorEnvelope	"ALREADY_ORDERED"
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := req.input()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	teamID, _ := primitive.ObjectIDFromHex(req.TeamID)
	in := service.CreateOrderInput{
		OrderInput: item,
		TeamID:     teamID,
		OrderDate:  req.OrderDate,
	}
	if req.DepartmentID != "" {
		departmentID, _ := primitive.ObjectIDFromHex(req.DepartmentID)
		in.DepartmentID = &departmentID
	}

	order, err := app.orderService.Create(r.Context(), in)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderHandler godoc
//
//	@Summary		Change an order
//	@Description	Replaces the menu and personal option; member and date stay.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Order ID"
//	@Param			request	body		UpdateOrderRequest	true	"Order"
//	@Success		200		{object}	domain.OrderView
//	@Failure		400		{object}	errorEnvelope
//	@Failure		403		{object}	errorEnvelope	"ORDERING_CLOSED"
//	@Failure		404		{object}	errorEnvelope
//	@Router			/orders/{id} [put]
func (app *application) updateOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := req.input()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.Update(r.Context(), id, item)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteOrderHandler godoc
//
//	@Summary		Cancel an order
//	@Tags			orders
//	@Param			id	path	string	true	"Order ID"
//	@Success		204
//	@Failure		404	{object}	errorEnvelope
//	@Router			/orders/{id} [delete]
func (app *application) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.orderService.Delete(r.Context(), id); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
