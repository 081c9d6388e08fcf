package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/models"
)

func TestAdvanceToCompleted_SetsTerminalState(t *testing.T) {
	svc := NewSessionStateService()
	session := &models.InterviewSession{ID: uuid.New(), Status: models.StatusInProgress}
	feedback := datatypes.JSON(`{"overall_rating": 8}`)

	err := svc.AdvanceToCompleted(session, feedback)
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, session.Status)
	require.NotNil(t, session.CompletedAt)
	require.Equal(t, feedback, session.FinalFeedback)
}

func TestAdvanceToCompleted_FromCodingRound(t *testing.T) {
	svc := NewSessionStateService()
	session := &models.InterviewSession{ID: uuid.New(), Status: models.StatusCodingRound}

	err := svc.AdvanceToCompleted(session, datatypes.JSON(`{}`))
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, session.Status)
}

func TestAdvanceToCompleted_CompletedIsTerminal(t *testing.T) {
	svc := NewSessionStateService()
	original := datatypes.JSON(`{"overall_rating": 8}`)
	completedAt := time.Now()
	session := &models.InterviewSession{
		ID:            uuid.New(),
		Status:        models.StatusCompleted,
		CompletedAt:   &completedAt,
		FinalFeedback: original,
	}

	err := svc.AdvanceToCompleted(session, datatypes.JSON(`{"overall_rating": 2}`))
	require.ErrorIs(t, err, ErrAlreadyCompleted)
	require.Equal(t, original, session.FinalFeedback)
	require.Equal(t, completedAt, *session.CompletedAt)
}

func TestRecordCodingFeedback_OverwritesUnconditionally(t *testing.T) {
	svc := NewSessionStateService()
	session := &models.InterviewSession{
		ID:                  uuid.New(),
		Status:              models.StatusCompleted,
		FinalCodingFeedback: datatypes.JSON(`{"rating": 3}`),
	}

	replacement := datatypes.JSON(`{"rating": 9}`)
	svc.RecordCodingFeedback(session, replacement)
	require.Equal(t, replacement, session.FinalCodingFeedback)
	// status is untouched
	require.Equal(t, models.StatusCompleted, session.Status)
}

func TestRecordAnswer_SetsFieldsAsGroup(t *testing.T) {
	svc := NewSessionStateService()
	question := &models.Question{ID: uuid.New(), Text: "Q"}

	err := svc.RecordAnswer(question, "my answer", 7, "good depth")
	require.NoError(t, err)
	require.Equal(t, "my answer", *question.Answer)
	require.Equal(t, 7.0, *question.Rating)
	require.Equal(t, "good depth", *question.Feedback)
}

func TestRecordAnswer_RejectsSecondAttempt(t *testing.T) {
	svc := NewSessionStateService()
	question := &models.Question{ID: uuid.New(), Text: "Q"}

	require.NoError(t, svc.RecordAnswer(question, "first", 5, ""))

	err := svc.RecordAnswer(question, "second", 9, "better")
	require.ErrorIs(t, err, ErrAlreadyAnswered)
	require.Equal(t, "first", *question.Answer)
	require.Equal(t, 5.0, *question.Rating)
}

func TestNextPendingQuestion_EarliestUnanswered(t *testing.T) {
	svc := NewSessionStateService()
	answered := "done"
	base := time.Now()
	questions := []models.Question{
		{ID: uuid.New(), Text: "first", Answer: &answered, CreatedAt: base},
		{ID: uuid.New(), Text: "third", CreatedAt: base.Add(2 * time.Second)},
		{ID: uuid.New(), Text: "second", CreatedAt: base.Add(time.Second)},
	}

	pending := svc.NextPendingQuestion(questions)
	require.NotNil(t, pending)
	require.Equal(t, "second", pending.Text)
}

func TestNextPendingQuestion_NilWhenAllAnswered(t *testing.T) {
	svc := NewSessionStateService()
	answered := "done"
	questions := []models.Question{
		{ID: uuid.New(), Answer: &answered, CreatedAt: time.Now()},
		{ID: uuid.New(), Answer: &answered, CreatedAt: time.Now()},
	}

	require.Nil(t, svc.NextPendingQuestion(questions))
}

func TestNextPendingQuestion_EmptySlice(t *testing.T) {
	svc := NewSessionStateService()
	require.Nil(t, svc.NextPendingQuestion(nil))
}
