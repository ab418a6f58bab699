package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/leadgrid/leadgrid/internal/config"
	"github.com/leadgrid/leadgrid/internal/lead"
	"github.com/leadgrid/leadgrid/internal/lock"
	"github.com/leadgrid/leadgrid/internal/middleware"
	"github.com/leadgrid/leadgrid/internal/sheet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Health
	RegisterHealthRoutes(app, d)

	// Sheet store: Postgres when configured, in-memory otherwise.
	var store sheet.Store
	if d.DB != nil {
		pgStore := sheet.NewPostgresStore(d.DB)
		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			return fmt.Errorf("ensure sheet schema: %w", err)
		}
		store = pgStore
	} else {
		store = sheet.NewMemoryStore()
	}

	// Write coordinator: Redis lock across replicas, local semaphore in dev.
	var coord lock.Coordinator
	if d.Cache != nil {
		coord = lock.NewRedisCoordinator(d.Cache, d.Cfg.LockTTL)
	} else {
		coord = lock.NewLocalCoordinator()
	}

	leadSvc := lead.NewService(store, coord, d.Logger, d.Cfg.LockTimeout)
	leadHandler := lead.NewHandler(leadSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	rateLimiter := middleware.WebhookRateLimit(d.Cache, d.Cfg.RateLimitPerMin)
	authGuard := middleware.WebhookAuth(d.Cfg.WebhookTokenHash)
	RegisterSyncRoutes(api, leadHandler, authGuard, rateLimiter)

	return nil
}
