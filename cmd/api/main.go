package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/flavorrush/flavorrush-backend/internal/domain/repository"
	"github.com/flavorrush/flavorrush-backend/internal/infrastructure/config"
	"github.com/flavorrush/flavorrush-backend/internal/infrastructure/database/inmemory"
	"github.com/flavorrush/flavorrush-backend/internal/infrastructure/database/postgres"
	httpHandler "github.com/flavorrush/flavorrush-backend/internal/interface/http/handler"
	"github.com/flavorrush/flavorrush-backend/internal/interface/http/router"
	"github.com/flavorrush/flavorrush-backend/internal/interface/presenter"
	"github.com/flavorrush/flavorrush-backend/internal/usecase"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// main wires dependencies (dependency injection) and starts the admin HTTP server.
func main() {
	cfg := config.Load()

	var restaurantRepo repository.RestaurantRepository
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, running with the in-memory store")
		restaurantRepo = inmemory.NewRestaurantRepository()
	} else {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatalf("ping database: %v", err)
		}
		restaurantRepo = postgres.NewRestaurantRepository(db)
	}

	restaurantPresenter := presenter.NewRestaurantPresenter()
	restaurantUsecase := usecase.NewRestaurantService(restaurantRepo)
	restaurantHandler := httpHandler.NewRestaurantHandler(restaurantUsecase, restaurantPresenter)

	r := router.New(restaurantHandler)

	log.Printf("starting admin server on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
