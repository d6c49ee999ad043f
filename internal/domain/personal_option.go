package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultOptionCategory groups presets saved without a category.
const DefaultOptionCategory = "Other"

// PersonalOption is a reusable preset for an order's free-text option, such
// as "extra shot" or "less ice". Presets are shared by every department.
type PersonalOption struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	SortOrder int                `bson:"sort_order" json:"sort_order"`
	Deleted   bool               `bson:"deleted" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// GroupCategory is the category the preset is listed under.
func (o PersonalOption) GroupCategory() string {
	if o.Category == "" {
		return DefaultOptionCategory
	}
	return o.Category
}
