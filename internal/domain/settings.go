package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CutoffLayout  = "15:04:05"
	DefaultCutoff = "09:00:00"
)

// Settings is the per-department ordering configuration.
type Settings struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DepartmentID primitive.ObjectID `bson:"department_id" json:"department_id"`
	MenuMode     MenuType           `bson:"menu_mode" json:"menu_mode"`
	Is24Hours    bool               `bson:"is_24_hours" json:"is_24_hours"`
	CutoffTime   string             `bson:"cutoff_time,omitempty" json:"cutoff_time"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

func DefaultSettings(departmentID primitive.ObjectID) Settings {
	return Settings{
		DepartmentID: departmentID,
		MenuMode:     MenuTypeCustom,
		Is24Hours:    false,
		CutoffTime:   DefaultCutoff,
	}
}

// ParseCutoff accepts "HH:MM:SS" or "HH:MM".
func ParseCutoff(s string) (time.Time, error) {
	for _, layout := range []string{CutoffLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCutoff, s)
}

// OrderAvailable reports whether ordering is open at now, read as wall clock
// time in loc. The cutoff is ignored entirely when Is24Hours is set; no
// cutoff means always open.
func (s Settings) OrderAvailable(now time.Time, loc *time.Location) bool {
	if s.Is24Hours {
		return true
	}
	if s.CutoffTime == "" {
		return true
	}
	cutoff, err := ParseCutoff(s.CutoffTime)
	if err != nil {
		return true
	}

	local := now.In(loc)
	deadline := time.Date(local.Year(), local.Month(), local.Day(),
		cutoff.Hour(), cutoff.Minute(), cutoff.Second(), 0, loc)
	return local.Before(deadline)
}
