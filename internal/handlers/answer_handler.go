package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/models"
	"github.com/Anthony-S101/AI-Hiring-Platform/internal/services"
)

type AnswerHandler struct {
	interviewService services.InterviewService
}

func NewAnswerHandler(interviewService services.InterviewService) *AnswerHandler {
	return &AnswerHandler{
		interviewService: interviewService,
	}
}

// HandleSubmitAnswer handles POST /sessions/:id/answer.
func (h *AnswerHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	var req models.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resp, err := h.interviewService.SubmitAnswer(c.Context(), sessionID, req.Answer)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(resp)
}
