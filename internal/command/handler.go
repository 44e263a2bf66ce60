// Package command turns chat messages into engine calls and stored observations.
package command

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"TurnipSentinel/internal/forecast"
	"TurnipSentinel/internal/model"
	"TurnipSentinel/internal/notifier"
	"TurnipSentinel/internal/recorder"
)

const helpText = `Available commands:
• /turnips -buy-price N -sell-prices a,b,c  one-off prediction (0 = unknown)
• /buy N  record this week's buy price
• /sell N [DAY AM|PM]  record a sell price (defaults to now)
• /predict  predict from this week's recorded prices
• /week  show this week's recorded prices
• /reset  clear this week's record`

// Handler answers chat commands for all users.
type Handler struct {
	Recorder recorder.Recorder
	Location *time.Location
	Now      func() time.Time
}

// NewHandler creates a Handler whose weeks start on Sunday in loc.
func NewHandler(rec recorder.Recorder, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{Recorder: rec, Location: loc, Now: time.Now}
}

func (h *Handler) now() time.Time {
	return h.Now().In(h.Location)
}

// Handle processes a user command and returns a reply.
func (h *Handler) Handle(_ context.Context, msg notifier.Message) string {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 {
		return ""
	}
	name := strings.ToLower(fields[0])
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	args := fields[1:]

	switch name {
	case "/turnips":
		return h.turnips(args)
	case "/buy":
		return h.buy(msg.UserID, args)
	case "/sell":
		return h.sell(msg.UserID, args)
	case "/predict":
		return h.predict(msg.UserID)
	case "/week":
		return h.week(msg.UserID)
	case "/reset":
		return h.reset(msg.UserID)
	default:
		return helpText
	}
}

func (h *Handler) turnips(args []string) string {
	base, obs, err := ParseTurnipsArgs(args)
	if err != nil {
		var ue *UsageError
		if errors.As(err, &ue) {
			return fmt.Sprintf("<pre>%s%s</pre>", html.EscapeString(ue.Usage), html.EscapeString(ue.Err.Error()))
		}
		return "❌ " + html.EscapeString(err.Error())
	}
	return h.prediction(base, obs)
}

func (h *Handler) prediction(base int, obs model.Observations) string {
	preds, err := forecast.Predict(base, obs)
	if err != nil {
		return "❌ " + html.EscapeString(err.Error())
	}
	if len(preds) == 0 {
		log.Printf("[INFO] no pattern matches buy=%d observations=%v", base, obs)
	}
	return notifier.FormatPredictions(preds)
}

func (h *Handler) buy(userID int64, args []string) string {
	if len(args) != 1 {
		return "usage: /buy PRICE"
	}
	price, err := ParsePrice(args[0])
	if err != nil {
		return "❌ " + html.EscapeString(err.Error())
	}
	week := model.WeekStart(h.now())
	if err := h.Recorder.SaveBuyPrice(userID, week, price); err != nil {
		log.Printf("[ERROR] save buy price for %d: %v", userID, err)
		return "❌ could not save the buy price, try again later"
	}
	return fmt.Sprintf("✅ buy price %d saved for the week of %s", price, week.Format("2006-01-02"))
}

func (h *Handler) sell(userID int64, args []string) string {
	now := h.now()
	slot, price, err := ParseSellArgs(args, now)
	if err != nil {
		return "❌ " + html.EscapeString(err.Error())
	}
	week, err := SellWeek(now, slot)
	if err != nil {
		return "❌ " + html.EscapeString(err.Error())
	}
	if err := h.Recorder.SaveSellPrice(userID, week, slot, price); err != nil {
		log.Printf("[ERROR] save sell price for %d: %v", userID, err)
		return "❌ could not save the sell price, try again later"
	}
	if !week.Equal(model.WeekStart(now)) {
		return fmt.Sprintf("✅ %s price %d saved for the week of %s", slot, price, week.Format("2006-01-02"))
	}
	return fmt.Sprintf("✅ %s price %d saved", slot, price)
}

func (h *Handler) predict(userID int64) string {
	rec, err := h.Recorder.LoadWeek(userID, model.WeekStart(h.now()))
	if err != nil {
		log.Printf("[ERROR] load week for %d: %v", userID, err)
		return "❌ could not load your prices, try again later"
	}
	if rec.BuyPrice <= 0 {
		return "Record this week's buy price first with /buy PRICE"
	}
	return h.prediction(rec.BuyPrice, rec.Observations())
}

func (h *Handler) week(userID int64) string {
	rec, err := h.Recorder.LoadWeek(userID, model.WeekStart(h.now()))
	if err != nil {
		log.Printf("[ERROR] load week for %d: %v", userID, err)
		return "❌ could not load your prices, try again later"
	}
	if rec.Empty() {
		return "Nothing recorded this week yet. Start with /buy PRICE"
	}
	return notifier.FormatWeek(rec)
}

func (h *Handler) reset(userID int64) string {
	if err := h.Recorder.DeleteWeek(userID, model.WeekStart(h.now())); err != nil {
		log.Printf("[ERROR] reset week for %d: %v", userID, err)
		return "❌ could not reset your week, try again later"
	}
	return "🧹 this week's prices were cleared"
}
