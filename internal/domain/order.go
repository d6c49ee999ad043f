package domain

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is the calendar-day format of OrderDate.
const DateLayout = "2006-01-02"

// Order is one member's drink for one day. At most one live (not deleted)
// order exists per team member and date.
type Order struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	TeamID         primitive.ObjectID  `bson:"team_id" json:"team_id"`
	DepartmentID   primitive.ObjectID  `bson:"department_id" json:"department_id"`
	MenuType       MenuType            `bson:"menu_type" json:"menu_type"`
	MenuID         *primitive.ObjectID `bson:"menu_id,omitempty" json:"menu_id,omitempty"`
	VendorMenuID   *primitive.ObjectID `bson:"vendor_menu_id,omitempty" json:"vendor_menu_id,omitempty"`
	PersonalOption *string             `bson:"personal_option,omitempty" json:"personal_option"`
	OrderDate      string              `bson:"order_date" json:"order_date"`
	Deleted        bool                `bson:"deleted" json:"-"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}

// ItemID returns the id of whichever menu the order points at.
func (o Order) ItemID() primitive.ObjectID {
	if o.MenuType == MenuTypeVendor && o.VendorMenuID != nil {
		return *o.VendorMenuID
	}
	if o.MenuID != nil {
		return *o.MenuID
	}
	return primitive.NilObjectID
}

// OrderView is an order joined with the names the front ends display.
type OrderView struct {
	ID             string    `json:"id"`
	TeamID         string    `json:"team_id"`
	TeamName       string    `json:"team_name"`
	DepartmentID   string    `json:"department_id"`
	MenuType       MenuType  `json:"menu_type"`
	MenuID         string    `json:"menu_id,omitempty"`
	VendorMenuID   string    `json:"vendor_menu_id,omitempty"`
	MenuName       string    `json:"menu_name"`
	Category       string    `json:"category"`
	PersonalOption *string   `json:"personal_option"`
	OrderDate      string    `json:"order_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderSummary counts identical drinks for a day.
type OrderSummary struct {
	MenuName       string   `json:"menu_name"`
	Category       string   `json:"category"`
	PersonalOption *string  `json:"personal_option"`
	Count          int      `json:"count"`
	TeamNames      []string `json:"team_names"`
}

// SummarizeOrders aggregates views per menu and option. A missing option and
// an empty option are different lines.
func SummarizeOrders(views []OrderView) []OrderSummary {
	type key struct {
		menu   string
		hasOpt bool
		opt    string
	}
	idx := make(map[key]int)
	out := []OrderSummary{}

	for _, v := range views {
		k := key{menu: v.MenuName, hasOpt: v.PersonalOption != nil}
		if v.PersonalOption != nil {
			k.opt = *v.PersonalOption
		}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, OrderSummary{
				MenuName:       v.MenuName,
				Category:       v.Category,
				PersonalOption: v.PersonalOption,
			})
		}
		out[i].Count++
		out[i].TeamNames = append(out[i].TeamNames, v.TeamName)
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].MenuName < out[b].MenuName
	})
	return out
}
