package recorder

import (
	"fmt"
	"sync"
	"time"

	"TurnipSentinel/internal/model"
)

// MemoryRecorder keeps records in process memory. Used when SQLite is not configured.
type MemoryRecorder struct {
	mu    sync.Mutex
	weeks map[memoryKey]model.WeekRecord
}

type memoryKey struct {
	userID int64
	week   string
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{weeks: make(map[memoryKey]model.WeekRecord)}
}

func (m *MemoryRecorder) LoadWeek(userID int64, weekStart time.Time) (*model.WeekRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.weeks[memoryKey{userID, weekKey(weekStart)}]
	if !ok {
		return &model.WeekRecord{UserID: userID, WeekStart: weekStart}, nil
	}
	return &rec, nil
}

func (m *MemoryRecorder) SaveBuyPrice(userID int64, weekStart time.Time, price int) error {
	m.update(userID, weekStart, func(rec *model.WeekRecord) { rec.BuyPrice = price })
	return nil
}

func (m *MemoryRecorder) SaveSellPrice(userID int64, weekStart time.Time, slot model.Slot, price int) error {
	if !slot.Valid() {
		return fmt.Errorf("save sell price: invalid slot %d", int(slot))
	}
	m.update(userID, weekStart, func(rec *model.WeekRecord) { rec.Prices[slot] = price })
	return nil
}

func (m *MemoryRecorder) DeleteWeek(userID int64, weekStart time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.weeks, memoryKey{userID, weekKey(weekStart)})
	return nil
}

func (m *MemoryRecorder) PurgeBefore(weekStart time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := weekKey(weekStart)
	var n int64
	for k := range m.weeks {
		if k.week < cutoff {
			delete(m.weeks, k)
			n++
		}
	}
	return n, nil
}

func (m *MemoryRecorder) Close() error { return nil }

func (m *MemoryRecorder) update(userID int64, weekStart time.Time, fn func(*model.WeekRecord)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := memoryKey{userID, weekKey(weekStart)}
	rec, ok := m.weeks[key]
	if !ok {
		rec = model.WeekRecord{UserID: userID, WeekStart: weekStart}
	}
	fn(&rec)
	rec.UpdatedAt = time.Now()
	m.weeks[key] = rec
}
