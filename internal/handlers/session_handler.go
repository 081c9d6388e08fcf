package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/services"
)

type SessionHandler struct {
	interviewService services.InterviewService
	storageService   services.StorageService
	maxFileSize      int64
}

func NewSessionHandler(
	interviewService services.InterviewService,
	storageService services.StorageService,
	maxFileSize int64,
) *SessionHandler {
	return &SessionHandler{
		interviewService: interviewService,
		storageService:   storageService,
		maxFileSize:      maxFileSize,
	}
}

// HandleCreateSession handles POST /sessions. Expects a multipart form with
// a "resume" PDF. The saved file is removed again when session creation
// fails, so a rejected upload leaves no state behind.
func (h *SessionHandler) HandleCreateSession(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume uploaded",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume file too large",
		})
	}

	filename, filePath, err := h.storageService.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp, err := h.interviewService.CreateSession(c.Context(), filePath, file.Filename)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleGetSession handles GET /sessions/:id.
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	resp, err := h.interviewService.GetSession(sessionID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(resp)
}
