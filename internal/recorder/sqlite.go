package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"TurnipSentinel/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists week records to a SQLite database, one flat row per user and week.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	var cols strings.Builder
	for _, c := range slotColumns {
		cols.WriteString(fmt.Sprintf("\t\t\t%s INTEGER NOT NULL DEFAULT 0,\n", c))
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS turnip_weeks (
			user_id    INTEGER NOT NULL,
			week_start TEXT    NOT NULL,
			buy_price  INTEGER NOT NULL DEFAULT 0,
` + cols.String() + `			updated_at INTEGER NOT NULL,
			PRIMARY KEY (user_id, week_start)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turnip_weeks_start ON turnip_weeks(week_start)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) LoadWeek(userID int64, weekStart time.Time) (*model.WeekRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := &model.WeekRecord{UserID: userID, WeekStart: weekStart}
	var updated int64
	dest := []any{&rec.BuyPrice}
	for i := range rec.Prices {
		dest = append(dest, &rec.Prices[i])
	}
	dest = append(dest, &updated)

	query := fmt.Sprintf(`SELECT buy_price, %s, updated_at FROM turnip_weeks
		WHERE user_id = ? AND week_start = ?`, strings.Join(slotColumns[:], ", "))
	err := r.db.QueryRow(query, userID, weekKey(weekStart)).Scan(dest...)
	if err == sql.ErrNoRows {
		return rec, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load week: %w", err)
	}
	rec.UpdatedAt = time.Unix(updated, 0)
	return rec, nil
}

func (r *SQLiteRecorder) SaveBuyPrice(userID int64, weekStart time.Time, price int) error {
	return r.upsert(userID, weekStart, "buy_price", price)
}

func (r *SQLiteRecorder) SaveSellPrice(userID int64, weekStart time.Time, slot model.Slot, price int) error {
	if !slot.Valid() {
		return fmt.Errorf("save sell price: invalid slot %d", int(slot))
	}
	return r.upsert(userID, weekStart, slotColumns[slot], price)
}

// upsert sets one column of the user's week row. column never comes from user input.
func (r *SQLiteRecorder) upsert(userID int64, weekStart time.Time, column string, value int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := fmt.Sprintf(`INSERT INTO turnip_weeks (user_id, week_start, %[1]s, updated_at)
		VALUES (?,?,?,?)
		ON CONFLICT(user_id, week_start) DO UPDATE SET %[1]s = excluded.%[1]s, updated_at = excluded.updated_at`, column)
	if _, err := r.db.Exec(query, userID, weekKey(weekStart), value, time.Now().Unix()); err != nil {
		return fmt.Errorf("save %s: %w", column, err)
	}
	return nil
}

func (r *SQLiteRecorder) DeleteWeek(userID int64, weekStart time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`DELETE FROM turnip_weeks WHERE user_id = ? AND week_start = ?`, userID, weekKey(weekStart))
	return err
}

func (r *SQLiteRecorder) PurgeBefore(weekStart time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`DELETE FROM turnip_weeks WHERE week_start < ?`, weekKey(weekStart))
	if err != nil {
		return 0, fmt.Errorf("purge weeks: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
