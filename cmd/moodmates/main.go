package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/moodmates/moodmates/internal/api"
	"github.com/moodmates/moodmates/internal/cli"
	"github.com/moodmates/moodmates/internal/db"
	"github.com/moodmates/moodmates/internal/realtime"
)

func main() {
	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "moodmates.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		runResetPassword(dbPath, os.Args[2:])
		return
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	hub := realtime.NewHub()
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	go hub.Run(lifecycleCtx)

	handler := api.NewHandler(database, secretKey, hub, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "MoodMates",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("MoodMates listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runResetPassword(dbPath string, args []string) {
	prompt := false
	email := ""
	for _, arg := range args {
		if arg == "--prompt" {
			prompt = true
			continue
		}
		email = arg
	}
	if email == "" {
		log.Fatal("usage: moodmates reset-password [--prompt] <email>")
	}

	if err := cli.RunResetPasswordCommand(dbPath, email, prompt); err != nil {
		log.Fatalf("reset password failed: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
