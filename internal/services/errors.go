package services

import "errors"

// Request-scoped failures surfaced by the interview service. Handlers map
// these to HTTP statuses; nothing here is retried internally.
var (
	ErrSessionNotFound   = errors.New("invalid session ID")
	ErrEmptyAnswer       = errors.New("empty answer")
	ErrEmptyCode         = errors.New("no code provided")
	ErrNoPendingQuestion = errors.New("no pending questions")
	ErrAlreadyAnswered   = errors.New("question has already been answered")
	ErrAlreadyCompleted  = errors.New("test has already been submitted")
	ErrResumeUnreadable  = errors.New("could not extract text from PDF")

	// Provider-side failures. ErrAssessmentFailed deliberately carries no
	// provider detail; SubmitTest hides it from the caller while SubmitCode
	// exposes whatever the extractor reported.
	ErrProviderUnavailable   = errors.New("LLM API error")
	ErrInvalidProviderOutput = errors.New("invalid response format from LLM")
	ErrAssessmentFailed      = errors.New("failed to generate final feedback")
)
