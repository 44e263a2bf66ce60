package notifier

import (
	"fmt"
	"strings"
	"time"

	"TurnipSentinel/internal/model"
)

// writeWeek writes the Mon AM .. Sat PM table, one day per line pair.
func writeWeek(b *strings.Builder, values [model.SlotCount]string) {
	for s := model.Slot(0); s < model.SlotCount; s++ {
		label := "    PM"
		if !s.IsPM() {
			label = s.Day().String()[:3] + " AM"
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", label, values[s]))
	}
}

// FormatPrediction formats one pattern's consolidated outlook.
func FormatPrediction(pred *model.PatternPrediction) string {
	var b strings.Builder
	b.WriteString("<pre>\n")
	b.WriteString(fmt.Sprintf("Pattern: %s\n", pred.PatternName))
	b.WriteString(fmt.Sprintf("Buy Price: %d\n", pred.BasePrice))
	writeWeek(&b, pred.Strings())
	b.WriteString("</pre>\n")
	return b.String()
}

// FormatPredictions formats every surviving pattern into a single reply.
func FormatPredictions(preds []model.PatternPrediction) string {
	if len(preds) == 0 {
		return FormatNoMatch()
	}
	var b strings.Builder
	b.WriteString("📈 <b>Turnip Predictions</b>\n\n")
	for i := range preds {
		b.WriteString(FormatPrediction(&preds[i]))
	}
	return b.String()
}

// FormatNoMatch is the reply when no pattern fits the recorded prices.
func FormatNoMatch() string {
	return "🤷 No matches found for the provided prices. Double-check the buy price and the sell prices you entered."
}

// FormatWeek shows what has been recorded for the week so far.
func FormatWeek(rec *model.WeekRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗓 <b>Week of %s</b>\n", rec.WeekStart.Format("2006-01-02")))
	b.WriteString("<pre>\n")
	if rec.BuyPrice > 0 {
		b.WriteString(fmt.Sprintf("Buy Price: %d\n", rec.BuyPrice))
	} else {
		b.WriteString("Buy Price: ?\n")
	}
	var values [model.SlotCount]string
	for i, p := range rec.Prices {
		values[i] = "?"
		if p > 0 {
			values[i] = fmt.Sprintf("%d", p)
		}
	}
	writeWeek(&b, values)
	b.WriteString("</pre>")
	if !rec.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("\nUpdated: %s", rec.UpdatedAt.Format(time.DateTime)))
	}
	return b.String()
}
