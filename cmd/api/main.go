package main

import (
	"context"
	"fmt"
	"log"

	"whateating/internal/config"
	"whateating/internal/dashboard"
	"whateating/internal/db"
	"whateating/internal/events"
	"whateating/internal/feedback"
	"whateating/internal/insights"
	"whateating/internal/location"
	"whateating/internal/router"
	"whateating/internal/session"
	"whateating/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// ───────────────────────── WAREHOUSE ─────────────────────────
	var (
		locationRepo location.Repository
		feedbackRepo feedback.Repository
	)

	switch cfg.WarehouseDriver {
	case config.DriverSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("❌ SQLite open failed: %v", err)
		}

		// sqlite has no schemas; keep only the table part of the name
		table := db.LastSegment(cfg.LocationsTable)
		if cfg.SQLiteSeed {
			if err := db.SeedLocations(gdb, table); err != nil {
				log.Fatalf("❌ SQLite seed failed: %v", err)
			}
		}

		locationRepo = location.NewGormRepository(gdb, table)
		feedbackRepo = feedback.NewGormRepository(gdb, db.LastSegment(cfg.FeedbackTable))

	default:
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Postgres connect failed: %v", err)
		}
		defer pool.Close()

		locationRepo = location.NewPostgresRepository(pool, cfg.LocationsTable)
		feedbackRepo = feedback.NewPostgresRepository(pool, cfg.FeedbackDatabase, cfg.FeedbackTable)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	locationService := location.NewService(locationRepo)
	insightsService := insights.NewService(locationRepo)
	feedbackService := feedback.NewService(feedbackRepo)

	// ───────────────────────── STORAGE (optional) ─────────────────────────
	if cfg.R2.Enabled() {
		r2Client, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		feedbackService.WithExporter(feedback.NewExporter(r2Client, "feedback-exports"))
	} else {
		log.Println("Note: R2 not configured, feedback export disabled")
	}

	// ───────────────────────── EVENTS (optional) ─────────────────────────
	if cfg.RabbitMQURL != "" {
		publisher, err := events.Dial(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal("❌ RabbitMQ init failed:", err)
		}
		defer publisher.Close()
		feedbackService.WithPublisher(publisher)
	}

	// ───────────────────────── SESSIONS ─────────────────────────
	signer, err := session.NewSigner(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("❌ Session signer: %v", err)
	}

	sessions, err := session.OpenBadger(cfg.SessionDir, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("❌ Session store: %v", err)
	}
	defer sessions.Close()

	// ───────────────────────── ROUTER ─────────────────────────
	r, err := router.NewRouter(router.Deps{
		Dashboard:   dashboard.NewHandler(locationService, insightsService, feedbackService),
		Sessions:    sessions,
		Signer:      signer,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		log.Fatalf("❌ Router: %v", err)
	}

	// ───────────────────────── START ─────────────────────────
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("🚀 Dashboard running at http://localhost%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
