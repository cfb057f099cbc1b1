package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"greenhall/internal/assets"
	"greenhall/internal/service"
)

// errorPayload is the standardized error response body. Details carries
// extra diagnostics on server errors and is omitted otherwise.
type errorPayload struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

func writeErrorDetails(c *fiber.Ctx, status int, message, details string) error {
	return c.Status(status).JSON(errorPayload{Error: message, Details: details})
}

// respondServiceError maps service-layer failures to HTTP responses:
// validation and upload policy rejections become 400, the per-entity
// not-found sentinels become 404 with their fixed client-facing message,
// and everything else becomes 500 with fallback as the error text.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return writeError(c, fiber.StatusBadRequest, ve.Error())
	case errors.Is(err, assets.ErrNotImage), errors.Is(err, assets.ErrTooLarge):
		return writeError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTeamMemberNotFound):
		return writeError(c, fiber.StatusNotFound, "Team member not found")
	case errors.Is(err, service.ErrNewsNotFound):
		return writeError(c, fiber.StatusNotFound, "News not found")
	case errors.Is(err, service.ErrPortfolioNotFound):
		return writeError(c, fiber.StatusNotFound, "Portfolio company not found")
	default:
		return writeErrorDetails(c, fiber.StatusInternalServerError, fallback, err.Error())
	}
}

// ErrorHandler returns the Fiber global error handler. Anything a route
// returns without writing its own response lands here, including framework
// rejections like an oversized body.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusRequestEntityTooLarge:
			// Upload boundary rejection is a client error, not a 413.
			return writeError(c, fiber.StatusBadRequest, assets.ErrTooLarge.Error())
		case fiber.StatusNotFound:
			return writeError(c, status, "Route not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		default:
			return writeErrorDetails(c, fiber.StatusInternalServerError, "Something went wrong!", err.Error())
		}
	}
}
