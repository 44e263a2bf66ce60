package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"TurnipSentinel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recorders(t *testing.T) map[string]Recorder {
	t.Helper()
	sr, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "turnips.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sr.Close() })
	return map[string]Recorder{
		"memory": NewMemoryRecorder(),
		"sqlite": sr,
	}
}

var (
	thisWeek = time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)
	lastWeek = thisWeek.AddDate(0, 0, -7)
)

func TestRecorder_LoadMissingWeek(t *testing.T) {
	for name, rec := range recorders(t) {
		t.Run(name, func(t *testing.T) {
			w, err := rec.LoadWeek(7, thisWeek)
			require.NoError(t, err)
			assert.True(t, w.Empty())
			assert.Equal(t, int64(7), w.UserID)
			assert.True(t, w.WeekStart.Equal(thisWeek))
		})
	}
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	for name, rec := range recorders(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, rec.SaveBuyPrice(1, thisWeek, 98))
			require.NoError(t, rec.SaveSellPrice(1, thisWeek, 0, 85))
			require.NoError(t, rec.SaveSellPrice(1, thisWeek, 5, 140))
			require.NoError(t, rec.SaveSellPrice(1, thisWeek, 5, 141))
			require.NoError(t, rec.SaveSellPrice(2, thisWeek, 1, 60))

			w, err := rec.LoadWeek(1, thisWeek)
			require.NoError(t, err)
			assert.Equal(t, 98, w.BuyPrice)
			assert.Equal(t, model.Observations{0: 85, 5: 141}, w.Observations())
			assert.False(t, w.UpdatedAt.IsZero())

			other, err := rec.LoadWeek(2, thisWeek)
			require.NoError(t, err)
			assert.Equal(t, 0, other.BuyPrice)
			assert.Equal(t, model.Observations{1: 60}, other.Observations())
		})
	}
}

func TestRecorder_InvalidSlot(t *testing.T) {
	for name, rec := range recorders(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, rec.SaveSellPrice(1, thisWeek, 12, 90))
		})
	}
}

func TestRecorder_DeleteWeek(t *testing.T) {
	for name, rec := range recorders(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, rec.SaveBuyPrice(1, thisWeek, 100))
			require.NoError(t, rec.SaveBuyPrice(1, lastWeek, 95))
			require.NoError(t, rec.DeleteWeek(1, thisWeek))

			w, err := rec.LoadWeek(1, thisWeek)
			require.NoError(t, err)
			assert.True(t, w.Empty())

			prev, err := rec.LoadWeek(1, lastWeek)
			require.NoError(t, err)
			assert.Equal(t, 95, prev.BuyPrice)
		})
	}
}

func TestRecorder_PurgeBefore(t *testing.T) {
	for name, rec := range recorders(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, rec.SaveBuyPrice(1, lastWeek, 95))
			require.NoError(t, rec.SaveBuyPrice(2, lastWeek, 101))
			require.NoError(t, rec.SaveBuyPrice(1, thisWeek, 100))

			n, err := rec.PurgeBefore(thisWeek)
			require.NoError(t, err)
			assert.Equal(t, int64(2), n)

			w, err := rec.LoadWeek(1, thisWeek)
			require.NoError(t, err)
			assert.Equal(t, 100, w.BuyPrice)

			old, err := rec.LoadWeek(2, lastWeek)
			require.NoError(t, err)
			assert.True(t, old.Empty())
		})
	}
}
