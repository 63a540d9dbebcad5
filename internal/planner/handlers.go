package planner

import (
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	"backend-tripplanner/internal/fetch"

	"github.com/gofiber/fiber/v2"
)

const (
	minDestinationLen = 2
	minDays           = 1
	maxDays           = 21
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req PlanRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		destination := strings.TrimSpace(req.Destination)
		if utf8.RuneCountInString(destination) < minDestinationLen {
			return fiber.NewError(fiber.StatusBadRequest, "destination must be at least 2 characters")
		}
		if req.Days < minDays || req.Days > maxDays {
			return fiber.NewError(fiber.StatusBadRequest, "days must be between 1 and 21")
		}

		result, err := svc.Plan(c.Context(), destination, req.Days)
		switch {
		case errors.Is(err, fetch.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "destination not found")
		case errors.Is(err, fetch.ErrUpstream):
			return fiber.NewError(fiber.StatusBadGateway, "upstream provider unavailable")
		case err != nil:
			log.Printf("plan trip %q: %v", destination, err)
			return fiber.NewError(fiber.StatusInternalServerError, "failed to build trip plan")
		}
		return c.JSON(result)
	})
}
