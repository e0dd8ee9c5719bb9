package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/app/config"
	apphttp "github.com/PSAN1987/graffitiees-LINE-BOT/internal/app/http"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/app/http/handlers"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/conversation"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/domain/pricing"
	"github.com/PSAN1987/graffitiees-LINE-BOT/internal/infra/db/postgres"
)

func Run() {
	cfg := config.MustLoad()

	table := pricing.DefaultTable()
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()

		loaded, err := pricing.LoadTable(context.Background(), db)
		if err != nil {
			log.Fatalf("price table: %v", err)
		}
		table = loaded
		log.Printf("price table loaded from db rows=%d", table.Len())
	} else {
		log.Printf("price table: using built-in sample rows=%d", table.Len())
	}

	store := conversation.NewStore()
	engine := conversation.NewEngine(store, table)
	go sweepSessions(store, cfg.SessionTTL)

	h := handlers.New(cfg, engine, table)
	router := apphttp.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}

// sweepSessions drops intakes abandoned for longer than the TTL so the
// store does not grow without bound over long uptime.
func sweepSessions(store *conversation.Store, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for range ticker.C {
		if n := store.SweepIdle(ttl); n > 0 {
			log.Printf("sessions: swept stale=%d active=%d", n, store.Len())
		}
	}
}
