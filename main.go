package main

import (
	"log"
	"log/slog"
	"net/http"

	"Reelrank/config"
	"Reelrank/database"
	"Reelrank/handlers"
	"Reelrank/logger"
	"Reelrank/middleware"
	"Reelrank/services"

	"github.com/go-chi/chi/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger.Init(cfg.Environment, cfg.Debug)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	if err := database.SeedIfEmpty(db); err != nil {
		log.Fatal("Failed to seed movies: ", err)
	}

	store := services.NewMovieService(db)
	tmdb := services.NewTMDB(cfg)
	sessionStore := services.NewSessionStore(cfg)

	h, err := handlers.New(store, tmdb, sessionStore)
	if err != nil {
		log.Fatal("Failed to build handlers: ", err)
	}

	mux := chi.NewRouter()
	mux.Use(middleware.Logging)

	mux.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	mux.Get("/", h.Home)
	mux.Get("/add", h.AddPage)
	mux.Post("/add", h.AddSubmit)
	mux.Get("/details", h.Details)
	mux.Get("/edit", h.EditPage)
	mux.Post("/edit", h.EditSubmit)
	mux.Get("/delete", h.Delete)

	addr := ":" + cfg.ServerPort
	slog.Info("Reelrank is starting", "addr", addr, "environment", cfg.Environment)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
