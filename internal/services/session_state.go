package services

import (
	"time"

	"gorm.io/datatypes"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/models"
)

// SessionStateService owns the session and question lifecycle rules. It
// mutates models in memory only; the orchestrator persists what it returns.
//
// Legal session transitions are forward-only: in_progress -> coding_round ->
// completed, with completed terminal. The coding-feedback slot is independent
// of status and has no at-most-once guard.
type SessionStateService interface {
	AdvanceToCompleted(session *models.InterviewSession, feedback datatypes.JSON) error
	RecordCodingFeedback(session *models.InterviewSession, feedback datatypes.JSON)
	RecordAnswer(question *models.Question, answer string, rating float64, feedback string) error
	NextPendingQuestion(questions []models.Question) *models.Question
}

type sessionStateService struct {
	now func() time.Time
}

func NewSessionStateService() SessionStateService {
	return &sessionStateService{now: time.Now}
}

// AdvanceToCompleted implements SessionStateService. The final feedback is
// written exactly once, together with the terminal status.
func (s *sessionStateService) AdvanceToCompleted(session *models.InterviewSession, feedback datatypes.JSON) error {
	if session.IsCompleted() {
		return ErrAlreadyCompleted
	}

	completedAt := s.now()
	session.Status = models.StatusCompleted
	session.CompletedAt = &completedAt
	session.FinalFeedback = feedback
	return nil
}

// RecordCodingFeedback implements SessionStateService. No status precondition
// and an unconditional overwrite: resubmitting the coding round replaces the
// previous assessment.
func (s *sessionStateService) RecordCodingFeedback(session *models.InterviewSession, feedback datatypes.JSON) {
	session.FinalCodingFeedback = feedback
}

// RecordAnswer implements SessionStateService. Answer, rating and feedback
// are set as a group, exactly once.
func (s *sessionStateService) RecordAnswer(question *models.Question, answer string, rating float64, feedback string) error {
	if question.IsAnswered() {
		return ErrAlreadyAnswered
	}

	question.Answer = &answer
	question.Rating = &rating
	question.Feedback = &feedback
	return nil
}

// NextPendingQuestion implements SessionStateService. The pending question is
// the earliest-created one without a recorded answer; nil when every question
// is answered.
func (s *sessionStateService) NextPendingQuestion(questions []models.Question) *models.Question {
	var pending *models.Question
	for i := range questions {
		q := &questions[i]
		if q.IsAnswered() {
			continue
		}
		if pending == nil || q.CreatedAt.Before(pending.CreatedAt) {
			pending = q
		}
	}
	return pending
}
