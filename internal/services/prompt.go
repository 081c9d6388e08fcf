package services

import (
	"fmt"
	"strings"
)

// maxResumeChars bounds the resume prefix embedded into the initial prompt so
// the request stays inside the model context window.
const maxResumeChars = 3000

// Prompt templates are versioned constants so the test suite can snapshot
// them. Every template embeds the literal JSON schema the model must return;
// the builder guarantees the wording, not that the model complies.
const (
	initialQuestionTemplate = `Based on this resume, generate 1 diverse and relevant interview question that covers topics across different areas (e.g., technical skills, problem-solving).
Avoid repeating the same topic (e.g., database optimization) across questions. Ensure the question is context-aware.

Resume text: %s

Return this exact JSON format: {"questions": ["question 1"]}`

	followUpTemplate = `Analyze the following answer and generate a follow-up question that explores a new area of expertise (technical, problem-solving, or soft skills) while maintaining context diversity.
Do not repeat topics already covered in these questions:
%s

Current Question: %s
Answer: %s

Return this exact JSON format: {"follow_up_question": "new question"}`

	finalAssessmentTemplate = `Review all questions and answers from this interview session and provide a final assessment.

Interview QA:
%s

Provide feedback in this JSON format:
{
    "overall_rating": <score between 1-10>,
    "summary": "brief overall assessment",
    "strengths": ["key strength 1", "key strength 2"],
    "areas_for_improvement": ["area 1", "area 2"]
}`

	codeAssessmentTemplate = `Evaluate the following code submitted by a candidate in a coding round.
Provide detailed feedback explaining strengths and areas for improvement,
and assign a rating from 1 to 10. Return your answer in the JSON format:
{"feedback": "your feedback", "rating": <number>}
Code:
%s`
)

// QAPair is one question/answer line of the final-assessment transcript.
type QAPair struct {
	Question string
	Answer   string
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildInitialQuestionPrompt renders the session-creation prompt. The resume
// is truncated to a bounded prefix before embedding.
func (pb *PromptBuilder) BuildInitialQuestionPrompt(resumeText string) string {
	return fmt.Sprintf(initialQuestionTemplate, truncateRunes(resumeText, maxResumeChars))
}

// BuildFollowUpPrompt renders the follow-up prompt. All previously asked
// question texts are embedded for the topic-diversity instruction. The
// requested schema carries only follow_up_question; rating and feedback are
// read opportunistically by the caller and routinely default.
func (pb *PromptBuilder) BuildFollowUpPrompt(previousQuestions []string, currentQuestion, answer string) string {
	return fmt.Sprintf(followUpTemplate, strings.Join(previousQuestions, "\n"), currentQuestion, answer)
}

// BuildFinalAssessmentPrompt renders the whole-transcript assessment prompt.
func (pb *PromptBuilder) BuildFinalAssessmentPrompt(pairs []QAPair) string {
	lines := make([]string, 0, len(pairs))
	for _, qa := range pairs {
		lines = append(lines, fmt.Sprintf("Q: %s\nA: %s", qa.Question, qa.Answer))
	}
	return fmt.Sprintf(finalAssessmentTemplate, strings.Join(lines, "\n"))
}

// BuildCodeAssessmentPrompt renders the coding-round evaluation prompt.
func (pb *PromptBuilder) BuildCodeAssessmentPrompt(code string) string {
	return fmt.Sprintf(codeAssessmentTemplate, code)
}

func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
