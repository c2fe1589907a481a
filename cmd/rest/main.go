package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"mentorlink-be/internal/bootstrap"
	"mentorlink-be/internal/config"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/internal/server"
	"mentorlink-be/internal/tracer"
	"mentorlink-be/pkg/database"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(ctx, cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Initialize Database (postgres record store only)
	var gormDB *gorm.DB
	if cfg.App.RecordStore == config.RecordStorePostgres {
		var err error
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, cfg, gormDB, sysLogger)
	if err != nil {
		log.Panicf("Unable to bootstrap container: %v", err)
	}
	defer container.Close()

	// 5. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Panicf("Unable to start content consumer: %v", err)
	}
	if container.ContentEventBridge != nil {
		if err := container.ContentEventBridge.Start(ctx); err != nil {
			sysLogger.Warn("NATS", "Content event bridge not started", map[string]interface{}{"error": err.Error()})
		}
	}

	// 6. Run Server until a signal arrives
	srv := server.New(cfg, container)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		sysLogger.Info("SERVER", "Shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		sysLogger.Error("SERVER", "Server stopped with error", map[string]interface{}{"error": err.Error()})
	}
}
