package domain

import "time"

// Campaign represents an advertising campaign that may be served while it
// is active and its consumed display count is below its budget.
type Campaign struct {
	ID           int64
	Active       bool
	Text         string
	Price        float64 // price of a single display, ranking key
	Budget       int64   // maximum number of displays
	Consumed     int64   // displays served so far, never above Budget
	BannerFileID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Eligible reports whether the campaign can still be served.
func (c Campaign) Eligible() bool {
	return c.Active && c.Consumed < c.Budget
}
