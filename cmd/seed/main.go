package main

import (
	"context"
	"log"
	"time"

	"mentorlink-be/internal/config"
	"mentorlink-be/internal/model"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/internal/repository/unitofwork"
	"mentorlink-be/internal/seed"
	"mentorlink-be/pkg/database"
	"mentorlink-be/pkg/events"
	pktNats "mentorlink-be/pkg/nats"

	"github.com/google/uuid"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	ctx := context.Background()
	if err := seed.Load(ctx, unitofwork.NewRepositoryFactory(db), seed.SampleSnapshot()); err != nil {
		log.Fatalf("Error: Seeding failed: %v", err)
	}
	sysLogger.Info("SEED", "Sample content loaded", nil)

	// Running instances drop their cached snapshot on this event.
	if cfg.App.NatsURL == "" {
		return
	}
	publisher, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
	if err != nil {
		sysLogger.Warn("SEED", "NATS unavailable, caches will refresh on expiry", map[string]interface{}{"error": err.Error()})
		return
	}
	defer publisher.Close()

	now := time.Now().UTC()
	evt := events.BaseEvent{
		Type: events.TypeContentChanged,
		Data: map[string]interface{}{
			"event_id":    uuid.NewString(),
			"origin":      "seed",
			"reason":      "seed",
			"occurred_at": now.Format(time.RFC3339Nano),
		},
		OccurredAt: now,
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		sysLogger.Warn("SEED", "Failed to publish CONTENT_CHANGED event", map[string]interface{}{"error": err.Error()})
	}
}
