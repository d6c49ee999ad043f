package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuType string

const (
	MenuTypeCustom MenuType = "CUSTOM"
	MenuTypeVendor MenuType = "VENDOR"
)

func (t MenuType) Valid() bool {
	return t == MenuTypeCustom || t == MenuTypeVendor
}

// Menu is a department-owned custom menu item.
type Menu struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DepartmentID primitive.ObjectID `bson:"department_id" json:"department_id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"`
	SortOrder    int                `bson:"sort_order" json:"sort_order"`
	Deleted      bool               `bson:"deleted" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// VendorMenu is an item of the synced vendor catalog, keyed by vendor code.
type VendorMenu struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code        string             `bson:"code" json:"code"`
	Name        string             `bson:"name" json:"name"`
	EnglishName string             `bson:"english_name,omitempty" json:"english_name,omitempty"`
	Category    string             `bson:"category" json:"category"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	LocalImage  string             `bson:"local_image,omitempty" json:"local_image,omitempty"`
	SortOrder   int                `bson:"sort_order" json:"sort_order"`
	Deleted     bool               `bson:"deleted" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// ImageRef prefers the downloaded copy over the vendor CDN.
func (m VendorMenu) ImageRef() string {
	if m.LocalImage != "" {
		return m.LocalImage
	}
	return m.ImageURL
}

// VendorMenuOption is one temperature/size combination of a vendor item.
type VendorMenuOption struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MenuCode        string             `bson:"menu_code" json:"menu_code"`
	TemperatureCode string             `bson:"temperature_code" json:"temperature_code"`
	TemperatureName string             `bson:"temperature_name" json:"temperature_name"`
	SizeCode        string             `bson:"size_code" json:"size_code"`
	SizeName        string             `bson:"size_name" json:"size_name"`
	SizeGroupCode   string             `bson:"size_group_code,omitempty" json:"size_group_code,omitempty"`
	Opts            string             `bson:"opts,omitempty" json:"opts,omitempty"`
	Position        int                `bson:"position" json:"-"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

type SizeOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type TemperatureOption struct {
	Code  string       `json:"code"`
	Name  string       `json:"name"`
	Sizes []SizeOption `json:"sizes"`
}

type VendorOptions struct {
	Code         string              `json:"code"`
	Temperatures []TemperatureOption `json:"temperatures"`
}

// BuildVendorOptions nests flat option rows as temperature -> sizes, keeping
// the order rows were stored in.
func BuildVendorOptions(code string, rows []VendorMenuOption) VendorOptions {
	out := VendorOptions{Code: code, Temperatures: []TemperatureOption{}}
	idx := make(map[string]int)

	for _, row := range rows {
		i, ok := idx[row.TemperatureCode]
		if !ok {
			i = len(out.Temperatures)
			idx[row.TemperatureCode] = i
			out.Temperatures = append(out.Temperatures, TemperatureOption{
				Code:  row.TemperatureCode,
				Name:  row.TemperatureName,
				Sizes: []SizeOption{},
			})
		}
		if row.SizeCode == "" {
			continue
		}
		out.Temperatures[i].Sizes = append(out.Temperatures[i].Sizes, SizeOption{Code: row.SizeCode, Name: row.SizeName})
	}

	return out
}

// CategoryGroup is one category of a catalog listing.
type CategoryGroup[T any] struct {
	Category string `json:"category"`
	Items    []T    `json:"items"`
}

// GroupByCategory groups items by category in order of first appearance.
func GroupByCategory[T any](items []T, category func(T) string) []CategoryGroup[T] {
	groups := []CategoryGroup[T]{}
	idx := make(map[string]int)
	for _, it := range items {
		c := category(it)
		i, ok := idx[c]
		if !ok {
			i = len(groups)
			idx[c] = i
			groups = append(groups, CategoryGroup[T]{Category: c})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
