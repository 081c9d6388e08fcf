package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/models"
)

type SessionRepository interface {
	CreateWithQuestions(session *models.InterviewSession, questions []models.Question) error
	FindByID(id uuid.UUID) (*models.InterviewSession, error)
	UpdateCompletion(id uuid.UUID, feedback datatypes.JSON, completedAt time.Time) error
	UpdateCodingFeedback(id uuid.UUID, feedback datatypes.JSON) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// CreateWithQuestions implements SessionRepository. The session and its seed
// questions are persisted in one transaction; a session never exists without
// at least one question.
func (r *sessionRepository) CreateWithQuestions(session *models.InterviewSession, questions []models.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("cannot create session without questions")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("failed to create questions: %w", err)
		}
		return nil
	})
}

// FindByID implements SessionRepository.
func (r *sessionRepository) FindByID(id uuid.UUID) (*models.InterviewSession, error) {
	var session models.InterviewSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}

// UpdateCompletion implements SessionRepository. Status, completion timestamp
// and final feedback move together.
func (r *sessionRepository) UpdateCompletion(id uuid.UUID, feedback datatypes.JSON, completedAt time.Time) error {
	result := r.db.Model(&models.InterviewSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         models.StatusCompleted,
			"completed_at":   completedAt,
			"final_feedback": feedback,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update completion: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("session not found")
	}

	return nil
}

// UpdateCodingFeedback implements SessionRepository. Overwrites any previous
// coding feedback; status is left alone.
func (r *sessionRepository) UpdateCodingFeedback(id uuid.UUID, feedback datatypes.JSON) error {
	result := r.db.Model(&models.InterviewSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"final_coding_feedback": feedback,
			"updated_at":            time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update coding feedback: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("session not found")
	}

	return nil
}
