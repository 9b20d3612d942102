package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/1rvyn/log-a-line/config"
	"github.com/1rvyn/log-a-line/database"
	"github.com/1rvyn/log-a-line/middleware"
	"github.com/1rvyn/log-a-line/routes"
	"github.com/1rvyn/log-a-line/session"
	"github.com/1rvyn/log-a-line/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The store opens in the background; edits made before it is ready are
	// kept in memory only.
	store := database.New(database.Config{
		Driver:          cfg.Store.Driver,
		Path:            cfg.Store.Path,
		DatabaseURL:     cfg.Store.DatabaseURL,
		ConnectAttempts: cfg.Store.ConnectAttempts,
		LogLevel:        database.ParseLogLevel(cfg.Store.LogLevel),
	})
	store.Start(ctx)

	controller := session.NewController(store, session.Config{
		OpTimeout: cfg.Session.OpTimeout,
	})

	app := fiber.New(fiber.Config{
		Views:                 views.Engine(),
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	if cfg.HTTP.LocalOnly {
		app.Use(middleware.LocalOnly())
	}

	routes.Setup(app, &routes.Handler{
		Session:     controller,
		LoadTimeout: cfg.Session.OpTimeout,
	})

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Editor listening on %s", cfg.HTTP.ListenAddr)
	if err := app.Listen(cfg.HTTP.ListenAddr); err != nil {
		log.Printf("Server stopped: %v", err)
	}

	controller.Wait()
	if err := store.Close(); err != nil {
		log.Printf("Failed to close draft store: %v", err)
	}
}
