package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"museum-api/internal/auth"
	"museum-api/internal/config"
	"museum-api/internal/database/migrations"
	"museum-api/internal/events"
	events_db "museum-api/internal/events/db"
	"museum-api/internal/events/events_api"
	"museum-api/internal/hours"
	hours_db "museum-api/internal/hours/db"
	"museum-api/internal/hours/hours_api"
	"museum-api/internal/logger"
	"museum-api/internal/tickets"
	ticket_db "museum-api/internal/tickets/db"
	"museum-api/internal/tickets/ticket_api"
)

func connectDatabase(cfg *config.Config, log *logger.Logger) *bun.DB {
	if cfg.Database.DSN == "" {
		log.Fatal("CONFIG", "POSTGRES_DSN not set")
	}

	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			log.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	log.Info("DATABASE", "PostgreSQL connection successful")

	return bun.NewDB(sqldb, pgdialect.New())
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Museum API initialization")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("CONFIG", "JWT_SECRET not set")
	}

	bunDB := connectDatabase(cfg, log)
	defer bunDB.Close()

	if cfg.Migrations.AutoMigrate {
		runner := migrations.NewRunner(bunDB, migrations.MigrateOptions{
			MigrationsDir: cfg.Migrations.Dir,
			AutoMigrate:   true,
			SeedData:      cfg.Migrations.SeedData,
		}, log)
		if err := runner.RunMigrations(); err != nil {
			log.Fatal("MIGRATE", fmt.Sprintf("Migration failed: %v", err))
		}
	}

	hoursService := hours.NewHoursService(&hours_db.DB{Bun: bunDB})
	eventService := events.NewEventService(&events_db.DB{Bun: bunDB})
	ticketService := tickets.NewTicketService(
		&ticket_db.DB{Bun: bunDB},
		cfg.Tickets.GeneralAdmissionPrice,
	)

	hoursHandler := &hours_api.Handler{HoursService: hoursService, Logger: log}
	eventHandler := &events_api.Handler{EventService: eventService, Logger: log}
	ticketHandler := &ticket_api.Handler{TicketService: ticketService, Logger: log}

	log.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()

	r.Route("/v1", func(r chi.Router) {
		// --- Public Routes ---
		r.Get("/museumhours", hoursHandler.GetMuseumHours)
		r.Get("/specialevents", eventHandler.GetSpecialEvents)
		r.Get("/specialevents/{id}", eventHandler.GetSpecialEventByID)
		r.Post("/tickets/purchase", ticketHandler.PurchaseTicket)

		// --- Admin Routes ---
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AdminOnly(cfg.Auth.JWTSecret))

			r.Post("/museumhours", hoursHandler.CreateMuseumHours)

			r.Route("/specialevents", func(r chi.Router) {
				r.Post("/", eventHandler.CreateSpecialEvent)
				r.Put("/{id}", eventHandler.UpdateSpecialEvent)
				r.Delete("/{id}", eventHandler.DeleteSpecialEvent)
				r.Post("/{id}/dates", eventHandler.AddEventDate)
				r.Delete("/{id}/dates/{date}", eventHandler.RemoveEventDate)
			})
		})
	})
	log.Info("ROUTER", "Routes registered under /v1")

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Museum API running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Museum API shutdown complete")
	}
}
