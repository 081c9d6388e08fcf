package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Anthony-S101/AI-Hiring-Platform/internal/models"
	"github.com/Anthony-S101/AI-Hiring-Platform/internal/repositories"
)

// InterviewService orchestrates the interview flow: it renders prompts,
// invokes the LLM, extracts and validates the reply, and applies the
// resulting state transition. Each method is one request/response cycle with
// no in-flight state beyond the persisted records.
type InterviewService interface {
	CreateSession(ctx context.Context, resumePath, resumeFilename string) (*models.CreateSessionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID uuid.UUID, answer string) (*models.SubmitAnswerResponse, error)
	SubmitTest(ctx context.Context, sessionID uuid.UUID) (*models.SubmitTestResponse, error)
	SubmitCode(ctx context.Context, sessionID uuid.UUID, code string) (*models.SubmitCodeResponse, error)
	GetSession(sessionID uuid.UUID) (*models.SessionDetailResponse, error)
}

// similarQuestionLimit caps how many cross-session questions the index
// contributes to the follow-up prompt's do-not-repeat list.
const similarQuestionLimit = 3

type interviewService struct {
	sessionRepo   repositories.SessionRepository
	questionRepo  repositories.QuestionRepository
	llmService    LLMService
	questionIndex QuestionIndexService
	pdfParser     PDFParserService
	stateService  SessionStateService
	promptBuilder *PromptBuilder

	// Serializes SubmitAnswer per session so two racing submissions cannot
	// both claim the same pending question.
	sessionLocks sync.Map
}

func NewInterviewService(
	sessionRepo repositories.SessionRepository,
	questionRepo repositories.QuestionRepository,
	llmService LLMService,
	questionIndex QuestionIndexService,
	pdfParser PDFParserService,
	stateService SessionStateService,
) InterviewService {
	return &interviewService{
		sessionRepo:   sessionRepo,
		questionRepo:  questionRepo,
		llmService:    llmService,
		questionIndex: questionIndex,
		pdfParser:     pdfParser,
		stateService:  stateService,
		promptBuilder: NewPromptBuilder(),
	}
}

func (s *interviewService) lockSession(sessionID uuid.UUID) func() {
	v, _ := s.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// CreateSession extracts the resume text, asks the LLM for the seed
// question(s) and persists the new session together with its questions. On
// any failure nothing is persisted.
func (s *interviewService) CreateSession(ctx context.Context, resumePath, resumeFilename string) (*models.CreateSessionResponse, error) {
	resumeText, err := s.pdfParser.ExtractText(resumePath)
	if err != nil {
		log.Printf("❌ Resume extraction failed: %v\n", err)
		return nil, fmt.Errorf("%w: %v", ErrResumeUnreadable, err)
	}

	prompt := s.promptBuilder.BuildInitialQuestionPrompt(resumeText)
	raw, err := s.llmService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	result, extractErr := ExtractJSONObject(raw)
	if extractErr != nil {
		return nil, fmt.Errorf("%w", extractErr)
	}

	questionTexts, ok := questionList(result)
	if !ok {
		return nil, ErrInvalidProviderOutput
	}

	session := &models.InterviewSession{
		ID:             uuid.New(),
		ResumeText:     resumeText,
		ResumeFilename: resumeFilename,
		Status:         models.StatusInProgress,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	questions := make([]models.Question, len(questionTexts))
	for i, text := range questionTexts {
		questions[i] = models.Question{
			ID:        uuid.New(),
			SessionID: session.ID,
			Text:      text,
			// seed questions share a creation instant; the offset keeps
			// their order stable under created_at sorting
			CreatedAt: time.Now().Add(time.Duration(i) * time.Microsecond),
		}
	}

	if err := s.sessionRepo.CreateWithQuestions(session, questions); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	for _, q := range questions {
		s.indexQuestion(ctx, q)
	}

	log.Printf("✅ Session %s created with %d question(s)\n", session.ID, len(questions))

	return &models.CreateSessionResponse{
		SessionID: session.ID.String(),
		Questions: questionTexts,
	}, nil
}

// SubmitAnswer records the answer on the pending question and, when the LLM
// offers one, creates the follow-up question. Rating and feedback default to
// 0 and "" — the follow-up schema does not request them, so they are read
// opportunistically.
func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, answer string) (*models.SubmitAnswerResponse, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, ErrEmptyAnswer
	}

	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	unlock := s.lockSession(session.ID)
	defer unlock()

	questions, err := s.questionRepo.FindBySessionID(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	pending := s.stateService.NextPendingQuestion(questions)
	if pending == nil {
		return nil, ErrNoPendingQuestion
	}

	previousTexts := make([]string, 0, len(questions))
	for _, q := range questions {
		previousTexts = append(previousTexts, q.Text)
	}
	previousTexts = append(previousTexts, s.similarQuestions(ctx, session.ID, pending.Text, answer)...)

	prompt := s.promptBuilder.BuildFollowUpPrompt(previousTexts, pending.Text, answer)
	raw, err := s.llmService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	result, extractErr := ExtractJSONObject(raw)
	if extractErr != nil {
		return nil, fmt.Errorf("%w", extractErr)
	}

	followUp, hasFollowUp := stringValue(result, "follow_up_question")
	rating, _ := floatValue(result, "rating")
	feedback, _ := stringValue(result, "feedback")

	if err := s.stateService.RecordAnswer(pending, answer, rating, feedback); err != nil {
		return nil, err
	}
	if err := s.questionRepo.UpdateAnswer(pending); err != nil {
		return nil, fmt.Errorf("failed to persist answer: %w", err)
	}

	var followUpPtr *string
	if hasFollowUp && followUp != "" {
		followUpQuestion := models.Question{
			ID:        uuid.New(),
			SessionID: session.ID,
			Text:      followUp,
			CreatedAt: time.Now(),
		}
		if err := s.questionRepo.Create(&followUpQuestion); err != nil {
			return nil, fmt.Errorf("failed to persist follow-up question: %w", err)
		}
		s.indexQuestion(ctx, followUpQuestion)
		followUpPtr = &followUp
	}

	hasNext, err := s.questionRepo.HasUnanswered(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending questions: %w", err)
	}

	return &models.SubmitAnswerResponse{
		Success:          true,
		Rating:           rating,
		Feedback:         feedback,
		FollowUpQuestion: followUpPtr,
		HasNextQuestion:  hasNext,
	}, nil
}

// SubmitTest generates the final aggregated assessment over every question
// and answer (answered or not) and completes the session. Provider and
// extraction failures are reported without detail.
func (s *interviewService) SubmitTest(ctx context.Context, sessionID uuid.UUID) (*models.SubmitTestResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	if session.IsCompleted() {
		return nil, ErrAlreadyCompleted
	}

	questions, err := s.questionRepo.FindBySessionID(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	pairs := make([]QAPair, 0, len(questions))
	for _, q := range questions {
		answer := ""
		if q.Answer != nil {
			answer = *q.Answer
		}
		pairs = append(pairs, QAPair{Question: q.Text, Answer: answer})
	}

	prompt := s.promptBuilder.BuildFinalAssessmentPrompt(pairs)
	raw, err := s.llmService.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ Final assessment generation failed: %v\n", err)
		return nil, ErrAssessmentFailed
	}

	result, extractErr := ExtractJSONObject(raw)
	if extractErr != nil {
		log.Printf("❌ Final assessment extraction failed: %v\n", extractErr)
		return nil, ErrAssessmentFailed
	}

	feedbackJSON, err := json.Marshal(result)
	if err != nil {
		return nil, ErrAssessmentFailed
	}

	if err := s.stateService.AdvanceToCompleted(session, datatypes.JSON(feedbackJSON)); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.UpdateCompletion(session.ID, session.FinalFeedback, *session.CompletedAt); err != nil {
		return nil, fmt.Errorf("failed to persist completion: %w", err)
	}

	var feedback models.FinalFeedback
	if err := json.Unmarshal(feedbackJSON, &feedback); err != nil {
		log.Printf("⚠️  Final feedback has unexpected shape: %v\n", err)
	}

	log.Printf("✅ Session %s completed\n", session.ID)

	return &models.SubmitTestResponse{
		Success:     true,
		Message:     "Test submitted successfully",
		Feedback:    feedback,
		CompletedAt: *session.CompletedAt,
	}, nil
}

// SubmitCode evaluates the coding-round submission and stores the result on
// the session, overwriting any previous one. Unlike SubmitTest, extraction
// failures surface their detail to the caller.
func (s *interviewService) SubmitCode(ctx context.Context, sessionID uuid.UUID, code string) (*models.SubmitCodeResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCode
	}

	prompt := s.promptBuilder.BuildCodeAssessmentPrompt(code)
	raw, err := s.llmService.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	result, extractErr := ExtractJSONObject(raw)
	if extractErr != nil {
		return nil, fmt.Errorf("%w", extractErr)
	}

	feedback, _ := stringValue(result, "feedback")
	rating, _ := floatValue(result, "rating")

	feedbackJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode coding feedback: %w", err)
	}

	s.stateService.RecordCodingFeedback(session, datatypes.JSON(feedbackJSON))
	if err := s.sessionRepo.UpdateCodingFeedback(session.ID, session.FinalCodingFeedback); err != nil {
		return nil, fmt.Errorf("failed to persist coding feedback: %w", err)
	}

	return &models.SubmitCodeResponse{
		Success:  true,
		Feedback: feedback,
		Rating:   rating,
	}, nil
}

// GetSession returns the session with its ordered questions and, when
// present, the decoded feedback objects.
func (s *interviewService) GetSession(sessionID uuid.UUID) (*models.SessionDetailResponse, error) {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}

	questions, err := s.questionRepo.FindBySessionID(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	resp := &models.SessionDetailResponse{
		SessionID:   session.ID.String(),
		Status:      string(session.Status),
		CreatedAt:   session.CreatedAt,
		CompletedAt: session.CompletedAt,
		Questions:   make([]models.QuestionData, len(questions)),
	}

	for i, q := range questions {
		resp.Questions[i] = models.QuestionData{
			ID:       q.ID.String(),
			Text:     q.Text,
			Answer:   q.Answer,
			Rating:   q.Rating,
			Feedback: q.Feedback,
		}
	}

	if len(session.FinalFeedback) > 0 {
		var feedback models.FinalFeedback
		if err := json.Unmarshal(session.FinalFeedback, &feedback); err == nil {
			resp.FinalFeedback = &feedback
		}
	}
	if len(session.FinalCodingFeedback) > 0 {
		var feedback models.CodingFeedback
		if err := json.Unmarshal(session.FinalCodingFeedback, &feedback); err == nil {
			resp.FinalCodingFeedback = &feedback
		}
	}

	return resp, nil
}

// indexQuestion embeds and indexes a question, best-effort. Failures are
// logged and never fail the request.
func (s *interviewService) indexQuestion(ctx context.Context, question models.Question) {
	embedding, err := s.llmService.GenerateEmbedding(ctx, question.Text)
	if err != nil {
		log.Printf("⚠️  Failed to embed question %s: %v\n", question.ID, err)
		return
	}

	if err := s.questionIndex.IndexQuestion(ctx, question.SessionID.String(), question.ID.String(), question.Text, embedding); err != nil {
		log.Printf("⚠️  Failed to index question %s: %v\n", question.ID, err)
	}
}

// similarQuestions retrieves near-duplicate questions from other sessions to
// extend the do-not-repeat list, best-effort.
func (s *interviewService) similarQuestions(ctx context.Context, sessionID uuid.UUID, questionText, answer string) []string {
	embedding, err := s.llmService.GenerateEmbedding(ctx, questionText+"\n"+answer)
	if err != nil {
		log.Printf("⚠️  Failed to embed follow-up context: %v\n", err)
		return nil
	}

	texts, err := s.questionIndex.SearchSimilarQuestions(ctx, embedding, sessionID.String(), similarQuestionLimit)
	if err != nil {
		log.Printf("⚠️  Failed to search similar questions: %v\n", err)
		return nil
	}
	return texts
}

// questionList validates the session-creation shape: a non-empty list of
// strings under the "questions" key.
func questionList(result map[string]interface{}) ([]string, bool) {
	v, ok := result["questions"]
	if !ok {
		return nil, false
	}
	items, ok := v.([]interface{})
	if !ok || len(items) == 0 {
		return nil, false
	}

	texts := make([]string, 0, len(items))
	for _, item := range items {
		text, ok := item.(string)
		if !ok || text == "" {
			return nil, false
		}
		texts = append(texts, text)
	}
	return texts, true
}
