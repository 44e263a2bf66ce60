package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// SlotCount is the number of half-day sell windows in a week (Mon AM .. Sat PM).
const SlotCount = 12

// Slot identifies a sell window: day*2 + timeOfDay, Monday AM = 0.
type Slot int

// Valid reports whether the slot is within 0..11.
func (s Slot) Valid() bool {
	return s >= 0 && s < SlotCount
}

// Day returns the weekday of the slot.
func (s Slot) Day() time.Weekday {
	return time.Monday + time.Weekday(s/2)
}

// IsPM reports whether the slot is the afternoon window.
func (s Slot) IsPM() bool {
	return s%2 == 1
}

func (s Slot) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	half := "AM"
	if s.IsPM() {
		half = "PM"
	}
	return s.Day().String()[:3] + " " + half
}

// SlotOf maps a weekday and half of day to a slot. Sunday has no sell window.
func SlotOf(day time.Weekday, pm bool) (Slot, bool) {
	if day == time.Sunday {
		return 0, false
	}
	s := Slot(int(day-time.Monday) * 2)
	if pm {
		s++
	}
	return s, true
}

// SlotAt returns the sell window t falls in. Noon and later counts as PM.
func SlotAt(t time.Time) (Slot, bool) {
	return SlotOf(t.Weekday(), t.Hour() >= 12)
}

var dayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseDay accepts English weekday names and their common abbreviations.
func ParseDay(s string) (time.Weekday, bool) {
	d, ok := dayNames[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// Observations maps a slot to the sell price seen there. Absent slots are unknown.
type Observations map[Slot]int

// ObservationsFromPrices converts a Monday-AM-first price list where 0 marks an
// unknown value into a sparse Observations map.
func ObservationsFromPrices(prices []int) Observations {
	obs := make(Observations)
	for i, p := range prices {
		if p > 0 {
			obs[Slot(i)] = p
		}
	}
	return obs
}

// Slots returns the observed slots in ascending order.
func (o Observations) Slots() []Slot {
	slots := make([]Slot, 0, len(o))
	for s := range o {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// With returns a copy of o with slot s set to price.
func (o Observations) With(s Slot, price int) Observations {
	cp := make(Observations, len(o)+1)
	for k, v := range o {
		cp[k] = v
	}
	cp[s] = price
	return cp
}
