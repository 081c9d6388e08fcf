package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject_IgnoresSurroundingProse(t *testing.T) {
	raw := `Sure! Here is your question: {"questions": ["Tell me about X"]} Good luck!`

	result, extractErr := ExtractJSONObject(raw)
	require.Nil(t, extractErr)
	require.Equal(t, []interface{}{"Tell me about X"}, result["questions"])
}

func TestExtractJSONObject_StripsControlCharacters(t *testing.T) {
	raw := "{\"feedback\": \"line one\n\tline two\", \"rating\": 7}"

	result, extractErr := ExtractJSONObject(raw)
	require.Nil(t, extractErr)
	require.Equal(t, "line one line two", result["feedback"])
	require.Equal(t, 7.0, result["rating"])
}

func TestExtractJSONObject_NoOpeningBrace(t *testing.T) {
	_, extractErr := ExtractJSONObject(`no json here}`)
	require.NotNil(t, extractErr)
	require.Equal(t, NoJSONBlock, extractErr.Kind)
}

func TestExtractJSONObject_NoClosingBrace(t *testing.T) {
	_, extractErr := ExtractJSONObject(`{"questions": ["unterminated"`)
	require.NotNil(t, extractErr)
	require.Equal(t, NoJSONBlock, extractErr.Kind)
}

func TestExtractJSONObject_MalformedCandidate(t *testing.T) {
	_, extractErr := ExtractJSONObject(`prefix {"questions": [oops]} suffix`)
	require.NotNil(t, extractErr)
	require.Equal(t, MalformedJSON, extractErr.Kind)
	require.NotEmpty(t, extractErr.Detail)
}

func TestExtractJSONObject_NestedBracesInsideProse(t *testing.T) {
	raw := `The model said {"summary": "solid", "strengths": ["a", "b"]} and then stopped.`

	result, extractErr := ExtractJSONObject(raw)
	require.Nil(t, extractErr)
	require.Equal(t, "solid", result["summary"])
	require.Len(t, result["strengths"], 2)
}

func TestExtractJSONObject_BracesOutOfOrder(t *testing.T) {
	_, extractErr := ExtractJSONObject(`} weird {`)
	require.NotNil(t, extractErr)
	require.Equal(t, MalformedJSON, extractErr.Kind)
}
