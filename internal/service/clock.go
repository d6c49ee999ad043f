package service

import (
	"time"

	"github.com/Beka01247/coffee-order/internal/domain"
)

// Clock reads the current time in the deployment's department-local zone.
type Clock struct {
	now func() time.Time
	loc *time.Location
}

func NewClock(now func() time.Time, loc *time.Location) Clock {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return Clock{now: now, loc: loc}
}

func (c Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c Clock) Location() *time.Location {
	return c.loc
}

// Today is the current local calendar day in domain.DateLayout.
func (c Clock) Today() string {
	return c.Now().Format(domain.DateLayout)
}
