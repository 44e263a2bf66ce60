package model

import "time"

// WeekRecord is one user's turnip data for a single week. Prices uses 0 for
// slots that have not been reported yet.
type WeekRecord struct {
	UserID    int64
	WeekStart time.Time
	BuyPrice  int
	Prices    [SlotCount]int
	UpdatedAt time.Time
}

// WeekStart returns Sunday 00:00 of the week containing t, in t's location.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(t.Weekday()))
}

// Observations returns the reported sell prices as a sparse map.
func (w *WeekRecord) Observations() Observations {
	return ObservationsFromPrices(w.Prices[:])
}

// Empty reports whether nothing has been recorded for the week.
func (w *WeekRecord) Empty() bool {
	if w.BuyPrice > 0 {
		return false
	}
	for _, p := range w.Prices {
		if p > 0 {
			return false
		}
	}
	return true
}
