package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/services"
)

// errorResponse maps service failures to the caller-visible status classes:
// input and state errors to 400, lookups to 404, provider and extraction
// failures to 503. Client-class responses carry only the sentinel message;
// provider-class responses keep whatever detail the service chose to expose.
func errorResponse(c *fiber.Ctx, err error) error {
	for _, sentinel := range []error{
		services.ErrEmptyAnswer,
		services.ErrEmptyCode,
		services.ErrAlreadyCompleted,
		services.ErrAlreadyAnswered,
		services.ErrResumeUnreadable,
	} {
		if errors.Is(err, sentinel) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": sentinel.Error(),
			})
		}
	}

	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": services.ErrSessionNotFound.Error(),
		})
	case errors.Is(err, services.ErrNoPendingQuestion):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": services.ErrNoPendingQuestion.Error(),
		})
	}

	var extractErr *services.ExtractError
	switch {
	case errors.As(err, &extractErr):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": extractErr.Error(),
		})
	case errors.Is(err, services.ErrAssessmentFailed):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": services.ErrAssessmentFailed.Error(),
		})
	case errors.Is(err, services.ErrProviderUnavailable),
		errors.Is(err, services.ErrInvalidProviderOutput):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
