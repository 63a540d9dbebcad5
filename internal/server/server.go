package server

import (
	"time"

	"backend-tripplanner/internal/cache"
	"backend-tripplanner/internal/config"
	"backend-tripplanner/internal/events"
	"backend-tripplanner/internal/fetch"
	"backend-tripplanner/internal/forecast"
	"backend-tripplanner/internal/geocode"
	"backend-tripplanner/internal/planner"
	"backend-tripplanner/internal/poi"
	"backend-tripplanner/internal/polish"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

const geocodeCacheTTL = 24 * time.Hour

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	Redis *redis.Client
}

func NewServer(cfg config.Config, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		Redis: redisClient,
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	client := fetch.NewClient(time.Duration(s.Cfg.RequestTimeoutSeconds)*time.Second, s.Cfg.MaxRetries)
	geoCache := cache.New(s.Redis, geocodeCacheTTL)

	var polisher polish.Polisher = polish.Noop{}
	if s.Cfg.OpenAIAPIKey != "" {
		polisher = polish.NewOpenAI(s.Cfg.OpenAIAPIKey, s.Cfg.ModelName, s.Cfg.ModelTemperature)
	}

	svc := planner.NewService(
		geocode.NewService(client, geoCache),
		forecast.NewService(client),
		poi.NewService(client),
		events.NewService(client, s.Cfg.TicketmasterAPIKey),
		polisher,
	)
	planner.RegisterRoutes(s.App.Group("/plan-trip"), svc)
}
