package models

import (
	"testing"

	"wiki-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizData_ValueAndScan(t *testing.T) {
	payload := domain.QuizPayload{
		Title:         "Go (programming language)",
		Summary:       "Go is a statically typed language.",
		KeyEntities:   []string{"Google"},
		Sections:      []string{"History"},
		RelatedTopics: []string{"C", "Limbo", "Oberon"},
		Quiz: []domain.QuizQuestion{{
			Question:    "Who designed Go?",
			Options:     []string{"Griesemer, Pike, Thompson", "Ritchie", "Stroustrup", "Gosling"},
			Answer:      "Griesemer, Pike, Thompson",
			Explanation: "Go was designed at Google in 2007.",
			Difficulty:  domain.DifficultyEasy,
		}},
	}

	val, err := QuizData(payload).Value()
	require.NoError(t, err)
	text, ok := val.(string)
	require.True(t, ok, "Value must return a string")
	assert.Contains(t, text, `"related_topics":["C","Limbo","Oberon"]`)

	var fromString QuizData
	require.NoError(t, fromString.Scan(text))
	assert.Equal(t, payload, domain.QuizPayload(fromString))

	var fromBytes QuizData
	require.NoError(t, fromBytes.Scan([]byte(text)))
	assert.Equal(t, payload, domain.QuizPayload(fromBytes))
}

func TestQuizData_Scan_Errors(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
	}{
		{name: "null", value: nil},
		{name: "unsupported type", value: 42},
		{name: "malformed json", value: `{"title": `},
		{name: "wrong shape", value: `["not", "an", "object"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d QuizData
			assert.Error(t, d.Scan(tt.value))
		})
	}
}
