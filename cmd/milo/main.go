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
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/milohq/milo/internal/api"
	"github.com/milohq/milo/internal/cli"
	"github.com/milohq/milo/internal/db"
	"github.com/milohq/milo/internal/llm"
	"github.com/milohq/milo/internal/sentiment"
)

func main() {
	dbPath := getEnv("DB_PATH", filepath.Join("data", "milo.db"))

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		runResetPassword(dbPath, os.Args[2:])
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	ctx := context.Background()

	assistant := buildAssistant(ctx)
	analyzer := buildAnalyzer(ctx)

	handler := api.NewHandler(database, secretKey, location, assistant, analyzer, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Milo",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		AllowCredentials: true,
	}))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Milo listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// buildAssistant prefers the Gemini backend; without an API key the server
// still starts, answering with canned replies so local development works.
func buildAssistant(ctx context.Context) llm.Client {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Print("GEMINI_API_KEY not set, using scripted assistant replies")
		return &llm.ScriptedClient{Replies: []string{
			"I'm running without a language model right now, but I'm still here with you.",
		}}
	}

	client, err := llm.NewGeminiClient(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("gemini init failed: %v", err)
	}
	return client
}

func buildAnalyzer(ctx context.Context) sentiment.Analyzer {
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") == "" {
		log.Print("GOOGLE_APPLICATION_CREDENTIALS not set, using neutral sentiment scores")
		return &sentiment.FixedAnalyzer{}
	}

	analyzer, err := sentiment.NewGoogleAnalyzer(ctx)
	if err != nil {
		log.Fatalf("sentiment init failed: %v", err)
	}
	return analyzer
}

func runResetPassword(dbPath string, args []string) {
	interactive := false
	email := ""
	for _, arg := range args {
		if arg == "--interactive" || arg == "-i" {
			interactive = true
			continue
		}
		email = arg
	}
	if email == "" {
		log.Fatal("usage: milo reset-password [--interactive] <email>")
	}
	if err := cli.RunResetPasswordCommand(dbPath, email, interactive); err != nil {
		log.Fatalf("reset password failed: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
