package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SessionStatus string

const (
	StatusInProgress  SessionStatus = "in_progress"
	StatusCodingRound SessionStatus = "coding_round"
	StatusCompleted   SessionStatus = "completed"
)

type InterviewSession struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ResumeText          string         `gorm:"type:text;not null" json:"-"`
	ResumeFilename      string         `gorm:"type:text" json:"resume_filename"`
	Status              SessionStatus  `gorm:"not null;default:'in_progress'" json:"status"`
	CompletedAt         *time.Time     `json:"completed_at,omitempty"`
	FinalFeedback       datatypes.JSON `gorm:"type:jsonb" json:"final_feedback,omitempty"`
	FinalCodingFeedback datatypes.JSON `gorm:"type:jsonb" json:"final_coding_feedback,omitempty"`
	CreatedAt           time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Questions []Question `gorm:"foreignKey:SessionID" json:"questions,omitempty"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

func (s *InterviewSession) IsCompleted() bool {
	return s.Status == StatusCompleted
}

// FinalFeedback is the aggregated assessment stored on the session when the
// candidate submits the whole test.
type FinalFeedback struct {
	OverallRating       float64  `json:"overall_rating"`
	Summary             string   `json:"summary"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
}

// CodingFeedback is the coding-round assessment. It lives on the session
// independently of the session status.
type CodingFeedback struct {
	Feedback string  `json:"feedback"`
	Rating   float64 `json:"rating"`
}
