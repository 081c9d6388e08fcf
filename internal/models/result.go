package models

import "time"

type CreateSessionResponse struct {
	SessionID string   `json:"session_id"`
	Questions []string `json:"questions"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type SubmitAnswerResponse struct {
	Success          bool    `json:"success"`
	Rating           float64 `json:"rating"`
	Feedback         string  `json:"feedback"`
	FollowUpQuestion *string `json:"follow_up_question"`
	HasNextQuestion  bool    `json:"has_next_question"`
}

type SubmitTestResponse struct {
	Success     bool          `json:"success"`
	Message     string        `json:"message"`
	Feedback    FinalFeedback `json:"feedback"`
	CompletedAt time.Time     `json:"completed_at"`
}

type SubmitCodeRequest struct {
	Code string `json:"code"`
}

type SubmitCodeResponse struct {
	Success  bool    `json:"success"`
	Feedback string  `json:"feedback"`
	Rating   float64 `json:"rating"`
}

type QuestionData struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Answer   *string  `json:"answer,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Feedback *string  `json:"feedback,omitempty"`
}

type SessionDetailResponse struct {
	SessionID           string          `json:"session_id"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	CompletedAt         *time.Time      `json:"completed_at,omitempty"`
	Questions           []QuestionData  `json:"questions"`
	FinalFeedback       *FinalFeedback  `json:"final_feedback,omitempty"`
	FinalCodingFeedback *CodingFeedback `json:"final_coding_feedback,omitempty"`
}
