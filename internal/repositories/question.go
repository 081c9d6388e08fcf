package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/models"
)

type QuestionRepository interface {
	Create(question *models.Question) error
	FindBySessionID(sessionID uuid.UUID) ([]models.Question, error)
	UpdateAnswer(question *models.Question) error
	HasUnanswered(sessionID uuid.UUID) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create implements QuestionRepository.
func (r *questionRepository) Create(question *models.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// FindBySessionID implements QuestionRepository. Creation order defines the
// pending-question order, so the sort is part of the contract.
func (r *questionRepository) FindBySessionID(sessionID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find questions: %w", err)
	}
	return questions, nil
}

// UpdateAnswer implements QuestionRepository. Writes the answer fields filled
// by the state machine; the question text is never touched.
func (r *questionRepository) UpdateAnswer(question *models.Question) error {
	result := r.db.Model(&models.Question{}).
		Where("id = ?", question.ID).
		Updates(map[string]interface{}{
			"answer":     question.Answer,
			"rating":     question.Rating,
			"feedback":   question.Feedback,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update answer: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("question not found")
	}

	return nil
}

// HasUnanswered implements QuestionRepository.
func (r *questionRepository) HasUnanswered(sessionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Question{}).
		Where("session_id = ? AND answer IS NULL", sessionID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count unanswered questions: %w", err)
	}
	return count > 0, nil
}
