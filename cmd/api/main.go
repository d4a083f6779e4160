package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/Bhuwinrag/ai-loan-bot/internal/admin"
	"github.com/Bhuwinrag/ai-loan-bot/internal/applicant"
	"github.com/Bhuwinrag/ai-loan-bot/internal/chat"
	"github.com/Bhuwinrag/ai-loan-bot/internal/dialog"
	"github.com/Bhuwinrag/ai-loan-bot/internal/letters"
	"github.com/Bhuwinrag/ai-loan-bot/internal/router"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("error opening database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware())
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	lettersDir := envOr("LETTERS_DIR", "letters")
	uploadsDir := envOr("UPLOADS_DIR", "uploads")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	applicantStore := applicant.NewStore(pool, rng)
	lettersStore := &letters.Store{DB: db}
	generator := letters.NewGenerator(lettersDir, lettersStore, rand.New(rand.NewSource(time.Now().UnixNano()+1)))
	engine := dialog.NewEngine(applicantStore, generator)
	chatHandler := chat.NewHandler(engine, uploadsDir, rand.New(rand.NewSource(time.Now().UnixNano()+2)))
	adminHandler := admin.NewHandler(pool, lettersStore)

	r := &router.Router{
		ChatHandler:  chatHandler,
		AdminHandler: adminHandler,
		LettersDir:   lettersDir,
		LetterStore:  lettersStore,
		AdminMW:      admin.RequireAPIKey(os.Getenv("ADMIN_API_KEY")),
	}
	r.RegisterRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Listening on port", port)
	log.Fatal(app.Listen(":" + port))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
