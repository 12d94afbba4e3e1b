package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/office-seat-advisor/internal/activity"
	"github.com/iliyamo/office-seat-advisor/internal/catalog"
	"github.com/iliyamo/office-seat-advisor/internal/config"
	"github.com/iliyamo/office-seat-advisor/internal/engine"
	"github.com/iliyamo/office-seat-advisor/internal/handler"
	"github.com/iliyamo/office-seat-advisor/internal/ledger"
	"github.com/iliyamo/office-seat-advisor/internal/reservation"
	"github.com/iliyamo/office-seat-advisor/internal/router"
	"github.com/iliyamo/office-seat-advisor/internal/store"
	"github.com/iliyamo/office-seat-advisor/internal/suggest"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := store.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	ctx := context.Background()
	seats, err := store.NewSeatStore(db).LoadAll(ctx)
	if err != nil {
		log.Fatalf("loading seat catalog failed: %v", err)
	}
	records, err := store.NewHistoryStore(db).LoadAll(ctx)
	if err != nil {
		log.Fatalf("loading booking history failed: %v", err)
	}
	cat := catalog.New(seats)
	led := ledger.Replay(records)
	log.Printf("catalog loaded: %d seats, %d history records", len(seats), led.Len())

	// Redis is optional: a nil client drops the tracker to in-memory
	// counters.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, zone activity tracked in memory")
	}
	tracker := activity.NewTracker(rdb, cat.ZoneSize)
	activity.SeedFromSeats(tracker, cat.All())

	eng := &engine.Engine{Catalog: cat, Ledger: led, Activity: tracker}
	client := suggest.NewClient(cfg.SuggestURL, cfg.SuggestModel, cfg.SuggestKey, cfg.SuggestTTL)
	manager := reservation.NewManager(cat, led, store.NewMirror(db))

	authHandler := handler.NewAuthHandler(store.NewEmployeeStore(db), cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost)
	recHandler := handler.NewRecommendHandler(eng, client, cat)
	resHandler := handler.NewReservationHandler(manager, cat, tracker)
	seatHandler := handler.NewSeatHandler(cat, led)

	e := echo.New()
	router.RegisterRoutes(e, authHandler)
	router.RegisterProtected(e, cfg.JWTSecret, authHandler, recHandler, resHandler, seatHandler)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
