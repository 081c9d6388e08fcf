package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/models"
	"github.com/Anthony-S101/AI-Hiring-Platform/internal/services"
)

// SubmissionHandler covers the two terminal submissions: the whole test and
// the coding round.
type SubmissionHandler struct {
	interviewService services.InterviewService
}

func NewSubmissionHandler(interviewService services.InterviewService) *SubmissionHandler {
	return &SubmissionHandler{
		interviewService: interviewService,
	}
}

// HandleSubmitTest handles POST /sessions/:id/submit.
func (h *SubmissionHandler) HandleSubmitTest(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	resp, err := h.interviewService.SubmitTest(c.Context(), sessionID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(resp)
}

// HandleSubmitCode handles POST /sessions/:id/code.
func (h *SubmissionHandler) HandleSubmitCode(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	var req models.SubmitCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resp, err := h.interviewService.SubmitCode(c.Context(), sessionID, req.Code)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(resp)
}
