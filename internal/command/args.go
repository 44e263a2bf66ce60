package command

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"TurnipSentinel/internal/model"
)

// UsageError carries the usage text of a command alongside the parse error.
type UsageError struct {
	Usage string
	Err   error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ParsePrices reads a comma-separated, Monday-AM-first price list. 0 marks an unknown value.
func ParsePrices(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) > model.SlotCount {
		return nil, fmt.Errorf("at most %d sell prices, got %d", model.SlotCount, len(parts))
	}
	prices := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			prices = append(prices, 0)
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid sell price %q", p)
		}
		if v < 0 {
			return nil, fmt.Errorf("sell price %d must not be negative", v)
		}
		prices = append(prices, v)
	}
	return prices, nil
}

// sellPricesFlag adapts ParsePrices to flag.Value.
type sellPricesFlag struct {
	prices []int
	set    bool
}

func (f *sellPricesFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	parts := make([]string, len(f.prices))
	for i, p := range f.prices {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

func (f *sellPricesFlag) Set(s string) error {
	prices, err := ParsePrices(s)
	if err != nil {
		return err
	}
	f.prices = prices
	f.set = true
	return nil
}

// ParseTurnipsArgs parses "-buy-price N -sell-prices a,b,c" into engine inputs.
func ParseTurnipsArgs(args []string) (int, model.Observations, error) {
	var out bytes.Buffer
	fs := flag.NewFlagSet("/turnips", flag.ContinueOnError)
	fs.SetOutput(&out)
	buy := fs.Int("buy-price", 0, "The price turnips were bought at on Sunday")
	var sells sellPricesFlag
	fs.Var(&sells, "sell-prices", "Comma-separated list of the values observed in the week starting on Monday. Use zero to delimit unknown values between known values.")

	usage := func() string {
		out.Reset()
		fs.SetOutput(&out)
		fmt.Fprintf(&out, "usage: /turnips -buy-price N -sell-prices a,b,c\n")
		fs.PrintDefaults()
		return out.String()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			err = errors.New("help requested")
		}
		return 0, nil, &UsageError{Usage: usage(), Err: err}
	}
	if fs.NArg() > 0 {
		return 0, nil, &UsageError{Usage: usage(), Err: fmt.Errorf("unexpected argument %q", fs.Arg(0))}
	}
	if *buy <= 0 {
		return 0, nil, &UsageError{Usage: usage(), Err: errors.New("-buy-price is required and must be positive")}
	}
	if !sells.set {
		return 0, nil, &UsageError{Usage: usage(), Err: errors.New("-sell-prices is required")}
	}
	return *buy, model.ObservationsFromPrices(sells.prices), nil
}

// ParsePrice reads a single positive price.
func ParsePrice(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("price must be positive, got %d", v)
	}
	return v, nil
}

// ParseSellArgs reads "PRICE [DAY AM|PM]". Without a day the slot is taken from now.
func ParseSellArgs(args []string, now time.Time) (model.Slot, int, error) {
	if len(args) == 0 {
		return 0, 0, errors.New("missing price")
	}
	price, err := ParsePrice(args[0])
	if err != nil {
		return 0, 0, err
	}

	switch len(args) {
	case 1:
		slot, ok := model.SlotAt(now)
		if !ok {
			return 0, 0, errors.New("there is no sell window on Sunday, give a day and AM/PM")
		}
		return slot, price, nil
	case 3:
		day, ok := model.ParseDay(args[1])
		if !ok {
			return 0, 0, fmt.Errorf("unknown day %q", args[1])
		}
		var pm bool
		switch strings.ToLower(args[2]) {
		case "am", "morning":
		case "pm", "afternoon", "evening":
			pm = true
		default:
			return 0, 0, fmt.Errorf("expected AM or PM, got %q", args[2])
		}
		slot, ok := model.SlotOf(day, pm)
		if !ok {
			return 0, 0, errors.New("there is no sell window on Sunday")
		}
		return slot, price, nil
	default:
		return 0, 0, errors.New("usage: /sell PRICE [DAY AM|PM]")
	}
}

// SellWeek returns the start of the week a sell price for slot belongs to.
// On Sunday the new week has no sell window yet, so the slot refers to the week
// that just ended. On other days a slot later than the current one is rejected.
func SellWeek(now time.Time, slot model.Slot) (time.Time, error) {
	week := model.WeekStart(now)
	current, ok := model.SlotAt(now)
	if !ok {
		return week.AddDate(0, 0, -7), nil
	}
	if slot > current {
		return time.Time{}, fmt.Errorf("%s has not happened yet this week", slot)
	}
	return week, nil
}
