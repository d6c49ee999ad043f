package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/Beka01247/coffee-order/internal/ordering"
)

type settingsBody struct {
	MenuMode   string `json:"menu_mode"`
	Is24Hours  bool   `json:"is_24_hours"`
	CutoffTime string `json:"cutoff_time"`
}

type menuBody struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	ImageURL   string `json:"image_url"`
	LocalImage string `json:"local_image"`
}

type groupBody struct {
	Category string     `json:"category"`
	Items    []menuBody `json:"items"`
}

type optionsBody struct {
	Code         string `json:"code"`
	Temperatures []struct {
		Code  string `json:"code"`
		Name  string `json:"name"`
		Sizes []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"sizes"`
	} `json:"temperatures"`
}

type presetGroupBody struct {
	Category string `json:"category"`
	Items    []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"items"`
}

type teamBody struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type orderBody struct {
	ID             string    `json:"id"`
	TeamID         string    `json:"team_id"`
	TeamName       string    `json:"team_name"`
	MenuType       string    `json:"menu_type"`
	MenuID         string    `json:"menu_id"`
	VendorMenuID   string    `json:"vendor_menu_id"`
	MenuName       string    `json:"menu_name"`
	PersonalOption *string   `json:"personal_option"`
	OrderDate      string    `json:"order_date"`
	CreatedAt      time.Time `json:"created_at"`
}

func (o orderBody) order() ordering.Order {
	out := ordering.Order{
		ID:         o.ID,
		MemberID:   o.TeamID,
		MemberName: o.TeamName,
		Date:       o.OrderDate,
		Source:     ordering.MenuMode(o.MenuType),
		ItemID:     o.MenuID,
		ItemName:   o.MenuName,
		Option:     o.PersonalOption,
		CreatedAt:  o.CreatedAt,
	}
	if out.Source == ordering.ModeVendor {
		out.ItemID = o.VendorMenuID
	}
	return out
}

type orderPayload struct {
	TeamID         string  `json:"team_id,omitempty"`
	DepartmentID   string  `json:"department_id,omitempty"`
	MenuType       string  `json:"menu_type"`
	MenuID         string  `json:"menu_id,omitempty"`
	VendorMenuID   string  `json:"vendor_menu_id,omitempty"`
	PersonalOption *string `json:"personal_option"`
	OrderDate      string  `json:"order_date,omitempty"`
}

func newOrderPayload(req ordering.OrderRequest) orderPayload {
	p := orderPayload{
		TeamID:         req.MemberID,
		DepartmentID:   req.DepartmentID,
		MenuType:       string(req.Source),
		PersonalOption: req.Option,
		OrderDate:      req.Date,
	}
	if req.Source == ordering.ModeVendor {
		p.VendorMenuID = req.VendorItemID
	} else {
		p.MenuID = req.CustomItemID
	}
	return p
}

type syncBody struct {
	Status          string `json:"status"`
	StepName        string `json:"step_name"`
	OverallProgress int    `json:"overall_progress"`
	ProcessedCount  int    `json:"processed_count"`
	TotalCount      int    `json:"total_count"`
	ErrorMessage    string `json:"error_message"`
}

func (c *Client) Settings(ctx context.Context, departmentID string) (ordering.Settings, error) {
	var body settingsBody
	if err := c.do(ctx, http.MethodGet, "/settings", departmentQuery(departmentID), nil, &body); err != nil {
		return ordering.Settings{}, err
	}

	mode := ordering.MenuMode(body.MenuMode)
	if !mode.Valid() {
		mode = ordering.ModeCustom
	}

	return ordering.Settings{
		Mode:      mode,
		Is24Hours: body.Is24Hours,
		Cutoff:    body.CutoffTime,
	}, nil
}

func (c *Client) CustomMenus(ctx context.Context, departmentID string) ([]ordering.CatalogItem, error) {
	var groups []groupBody
	if err := c.do(ctx, http.MethodGet, "/menus", departmentQuery(departmentID), nil, &groups); err != nil {
		return nil, err
	}

	items := []ordering.CatalogItem{}
	for _, g := range groups {
		for _, m := range g.Items {
			items = append(items, ordering.NewCustomItem(m.ID, m.Name, g.Category))
		}
	}
	return items, nil
}

func (c *Client) VendorMenus(ctx context.Context) ([]ordering.CatalogItem, error) {
	var groups []groupBody
	if err := c.do(ctx, http.MethodGet, "/vendor-menus", nil, nil, &groups); err != nil {
		return nil, err
	}

	items := []ordering.CatalogItem{}
	for _, g := range groups {
		for _, m := range g.Items {
			image := m.LocalImage
			if image == "" {
				image = m.ImageURL
			}
			items = append(items, ordering.NewVendorItem(m.ID, m.Name, g.Category, m.Code, image))
		}
	}
	return items, nil
}

func (c *Client) VendorOptions(ctx context.Context, code string) ([]ordering.Temperature, error) {
	var body optionsBody
	if err := c.do(ctx, http.MethodGet, "/vendor-menus/options/"+url.PathEscape(code), nil, nil, &body); err != nil {
		return nil, err
	}

	temps := make([]ordering.Temperature, 0, len(body.Temperatures))
	for _, t := range body.Temperatures {
		temp := ordering.Temperature{Code: t.Code, Name: t.Name}
		for _, s := range t.Sizes {
			temp.Sizes = append(temp.Sizes, ordering.Size{Code: s.Code, Name: s.Name})
		}
		temps = append(temps, temp)
	}
	return temps, nil
}

func (c *Client) Members(ctx context.Context, departmentID string) ([]ordering.Member, error) {
	var teams []teamBody
	if err := c.do(ctx, http.MethodGet, "/teams", departmentQuery(departmentID), nil, &teams); err != nil {
		return nil, err
	}

	members := make([]ordering.Member, 0, len(teams))
	for _, t := range teams {
		members = append(members, ordering.Member{ID: t.ID, Name: t.Name})
	}
	return members, nil
}

func (c *Client) OptionPresets(ctx context.Context) ([]ordering.OptionPreset, error) {
	var groups []presetGroupBody
	if err := c.do(ctx, http.MethodGet, "/personal-options", nil, nil, &groups); err != nil {
		return nil, err
	}

	presets := []ordering.OptionPreset{}
	for _, g := range groups {
		for _, p := range g.Items {
			presets = append(presets, ordering.OptionPreset{ID: p.ID, Name: p.Name, Category: g.Category})
		}
	}
	return presets, nil
}

func (c *Client) OrderAvailable(ctx context.Context, departmentID string) (bool, error) {
	var body struct {
		Available bool `json:"available"`
	}
	if err := c.do(ctx, http.MethodGet, "/settings/order-available", departmentQuery(departmentID), nil, &body); err != nil {
		return false, err
	}
	return body.Available, nil
}

func (c *Client) TodayOrders(ctx context.Context, departmentID string) ([]ordering.Order, error) {
	var bodies []orderBody
	if err := c.do(ctx, http.MethodGet, "/orders/today", departmentQuery(departmentID), nil, &bodies); err != nil {
		return nil, err
	}

	orders := make([]ordering.Order, 0, len(bodies))
	for _, b := range bodies {
		orders = append(orders, b.order())
	}
	return orders, nil
}

func (c *Client) LatestOrder(ctx context.Context, memberID string) (*ordering.Order, error) {
	var body orderBody
	path := "/orders/team/" + url.PathEscape(memberID) + "/latest"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &body); err != nil {
		if isNotFound(err) {
			return nil, ordering.ErrNotFound
		}
		return nil, err
	}

	order := body.order()
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, req ordering.OrderRequest) (*ordering.Order, error) {
	var body orderBody
	if err := c.do(ctx, http.MethodPost, "/orders", nil, newOrderPayload(req), &body); err != nil {
		return nil, err
	}

	order := body.order()
	return &order, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, req ordering.OrderRequest) (*ordering.Order, error) {
	payload := newOrderPayload(req)
	payload.TeamID = ""
	payload.DepartmentID = ""
	payload.OrderDate = ""

	var body orderBody
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id), nil, payload, &body); err != nil {
		return nil, err
	}

	order := body.order()
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) TriggerSync(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/vendor-menus/sync", nil, nil, nil)
}

func (c *Client) SyncStatus(ctx context.Context) (ordering.SyncProgress, error) {
	var body syncBody
	if err := c.do(ctx, http.MethodGet, "/vendor-menus/sync/status", nil, nil, &body); err != nil {
		return ordering.SyncProgress{}, err
	}

	return ordering.SyncProgress{
		Status:          ordering.SyncStatus(body.Status),
		StepName:        body.StepName,
		OverallProgress: body.OverallProgress,
		ProcessedCount:  body.ProcessedCount,
		TotalCount:      body.TotalCount,
		ErrorMessage:    body.ErrorMessage,
	}, nil
}

func (c *Client) SyncInProgress(ctx context.Context) (bool, error) {
	var body struct {
		InProgress bool `json:"in_progress"`
	}
	if err := c.do(ctx, http.MethodGet, "/vendor-menus/sync/in-progress", nil, nil, &body); err != nil {
		return false, err
	}
	return body.InProgress, nil
}
