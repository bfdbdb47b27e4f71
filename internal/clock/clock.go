// Package clock reads the wall clock and renders instants for API responses.
package clock

import (
	"errors"
	"time"
)

// Layout is ISO 8601 with a fixed six-digit fraction and no zone designator.
const Layout = "2006-01-02T15:04:05.000000"

// ErrInvalidTime is returned when the clock produced no usable instant.
var ErrInvalidTime = errors.New("clock: invalid time")

// Clock provides time to the application.
type Clock interface {
	Now() time.Time
}

// System reads the local wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Func adapts an ordinary function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// TimeResponse is the body of GET /time.
type TimeResponse struct {
	CurrentTime string `json:"current_time"`
}

// Format renders t in local time using Layout.
func Format(t time.Time) (string, error) {
	if t.IsZero() {
		return "", ErrInvalidTime
	}
	return t.Local().Format(Layout), nil
}

// NewTimeResponse reads c once and builds the response for that instant.
func NewTimeResponse(c Clock) (TimeResponse, error) {
	formatted, err := Format(c.Now())
	if err != nil {
		return TimeResponse{}, err
	}
	return TimeResponse{CurrentTime: formatted}, nil
}
