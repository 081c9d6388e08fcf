package models

import (
	"time"

	"github.com/google/uuid"
)

// Question is a single prompt within a session. Answer, Rating and Feedback
// are filled together, exactly once; a nil Answer marks the question pending.
type Question struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Answer    *string   `gorm:"type:text" json:"answer,omitempty"`
	Rating    *float64  `json:"rating,omitempty"`
	Feedback  *string   `gorm:"type:text" json:"feedback,omitempty"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) IsAnswered() bool {
	return q.Answer != nil
}
