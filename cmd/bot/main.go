package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	_ "time/tzdata"

	"TurnipSentinel/internal/command"
	"TurnipSentinel/internal/config"
	"TurnipSentinel/internal/notifier"
	"TurnipSentinel/internal/recorder"
	"TurnipSentinel/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TurnipSentinel starting...")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		if dir := filepath.Dir(cfg.Database.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Printf("[WARN] create database dir: %v", err)
			}
		}
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, keeping records in memory: %v", err)
			rec = recorder.NewMemoryRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewMemoryRecorder()
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(rec, loc)
	if err := sched.RegisterAll(cfg.Schedule.PurgeCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	handler := command.NewHandler(rec, loc)
	go tn.StartPolling(ctx, handler.Handle)
	log.Println("[INFO] Telegram polling started")

	if err := tn.Notify(ctx, "🥬 TurnipSentinel is online. Send /help for commands."); err != nil {
		log.Printf("[WARN] startup notice: %v", err)
	}

	log.Println("[INFO] TurnipSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TurnipSentinel stopped")
}
