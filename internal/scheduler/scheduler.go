package scheduler

import (
	"fmt"
	"log"
	"time"

	"TurnipSentinel/internal/model"
	"TurnipSentinel/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the cron tasks of the bot.
type Scheduler struct {
	Cron     *cron.Cron
	Recorder recorder.Recorder
	Location *time.Location
	Now      func() time.Time
}

// NewScheduler creates a new Scheduler whose cron expressions are evaluated in loc.
func NewScheduler(rec recorder.Recorder, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		Recorder: rec,
		Location: loc,
		Now:      time.Now,
	}
}

// RegisterAll registers the weekly purge of old records.
func (s *Scheduler) RegisterAll(purgeCron string) error {
	if _, err := s.Cron.AddFunc(purgeCron, s.purgeTask); err != nil {
		return fmt.Errorf("register purge task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// PurgeNow deletes every record from weeks before the current one.
func (s *Scheduler) PurgeNow() (int64, error) {
	week := model.WeekStart(s.Now().In(s.Location))
	return s.Recorder.PurgeBefore(week)
}

func (s *Scheduler) purgeTask() {
	log.Println("[INFO] running weekly purge")
	n, err := s.PurgeNow()
	if err != nil {
		log.Printf("[ERROR] weekly purge: %v", err)
		return
	}
	log.Printf("[INFO] purged %d records from previous weeks", n)
}
