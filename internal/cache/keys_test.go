package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		expectedKey string
	}{
		{
			name:        "quiz record",
			serviceName: "quiz",
			objectType:  "record",
			identifier:  "42",
			expectedKey: "wikiquiz:quiz:record:42",
		},
		{
			name:        "empty identifier",
			serviceName: "quiz",
			objectType:  "record",
			identifier:  "",
			expectedKey: "wikiquiz:quiz:record:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier))
		})
	}
}

func TestQuizRecordKey(t *testing.T) {
	assert.Equal(t, "wikiquiz:quiz:record:7", QuizRecordKey(7))
	assert.Equal(t, "wikiquiz:quiz:record:1234567890123", QuizRecordKey(1234567890123))
}
