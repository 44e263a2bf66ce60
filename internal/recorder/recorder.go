package recorder

import (
	"time"

	"TurnipSentinel/internal/model"
)

// Recorder persists each user's turnip prices for the current week.
type Recorder interface {
	// LoadWeek returns the user's record for the week. A week with nothing
	// recorded yields an empty record, not an error.
	LoadWeek(userID int64, weekStart time.Time) (*model.WeekRecord, error)
	SaveBuyPrice(userID int64, weekStart time.Time, price int) error
	SaveSellPrice(userID int64, weekStart time.Time, slot model.Slot, price int) error
	DeleteWeek(userID int64, weekStart time.Time) error
	// PurgeBefore removes every record of a week starting before weekStart.
	PurgeBefore(weekStart time.Time) (int64, error)
	Close() error
}

const weekKeyLayout = "2006-01-02"

func weekKey(weekStart time.Time) string {
	return weekStart.Format(weekKeyLayout)
}

// slotColumns names the flat per-slot columns, Monday AM first.
var slotColumns = [model.SlotCount]string{
	"mon_am", "mon_pm", "tue_am", "tue_pm", "wed_am", "wed_pm",
	"thu_am", "thu_pm", "fri_am", "fri_pm", "sat_am", "sat_pm",
}
