package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildInitialQuestionPrompt_ContainsResumeAndSchema(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildInitialQuestionPrompt("Experienced backend engineer with Go and Postgres")

	require.Contains(t, prompt, "Experienced backend engineer with Go and Postgres")
	require.Contains(t, prompt, `{"questions": ["question 1"]}`)
}

func TestBuildInitialQuestionPrompt_TruncatesResume(t *testing.T) {
	pb := NewPromptBuilder()
	longResume := strings.Repeat("é", 5000)
	prompt := pb.BuildInitialQuestionPrompt(longResume)

	require.Contains(t, prompt, strings.Repeat("é", maxResumeChars))
	require.NotContains(t, prompt, strings.Repeat("é", maxResumeChars+1))
}

func TestBuildFollowUpPrompt_EmbedsHistoryAndSchema(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildFollowUpPrompt(
		[]string{"Describe a scaling challenge", "What is your testing approach?"},
		"Describe a scaling challenge",
		"We sharded the database",
	)

	require.Contains(t, prompt, "Describe a scaling challenge\nWhat is your testing approach?")
	require.Contains(t, prompt, "Current Question: Describe a scaling challenge")
	require.Contains(t, prompt, "Answer: We sharded the database")
	require.Contains(t, prompt, `{"follow_up_question": "new question"}`)
	// rating/feedback are deliberately not part of the requested schema
	require.NotContains(t, prompt, `"rating"`)
}

func TestBuildFinalAssessmentPrompt_FormatsTranscript(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildFinalAssessmentPrompt([]QAPair{
		{Question: "Q1 text", Answer: "A1 text"},
		{Question: "Q2 text", Answer: ""},
	})

	require.Contains(t, prompt, "Q: Q1 text\nA: A1 text")
	require.Contains(t, prompt, "Q: Q2 text\nA: ")
	require.Contains(t, prompt, `"overall_rating"`)
	require.Contains(t, prompt, `"summary"`)
	require.Contains(t, prompt, `"strengths"`)
	require.Contains(t, prompt, `"areas_for_improvement"`)
}

func TestBuildCodeAssessmentPrompt_ContainsCodeAndSchema(t *testing.T) {
	pb := NewPromptBuilder()
	prompt := pb.BuildCodeAssessmentPrompt("def solve():\n    return 42")

	require.Contains(t, prompt, "def solve():\n    return 42")
	require.Contains(t, prompt, `{"feedback": "your feedback", "rating": <number>}`)
}
