package validation

import (
	"testing"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateQuizRequest(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     *dto.QuizRequest
		wantErr string
	}{
		{name: "valid", req: &dto.QuizRequest{URL: "https://en.wikipedia.org/wiki/Alan_Turing"}},
		{name: "surrounding whitespace", req: &dto.QuizRequest{URL: "  https://en.wikipedia.org/wiki/Go  "}},
		{name: "nil body", req: nil, wantErr: "request body is required"},
		{name: "missing url", req: &dto.QuizRequest{}, wantErr: "url: field required"},
		{name: "not a url", req: &dto.QuizRequest{URL: "Alan Turing"}, wantErr: "is not a valid URL"},
		{name: "unsupported scheme", req: &dto.QuizRequest{URL: "ftp://example.com/file"}, wantErr: "must use http or https"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateQuizRequest(tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, domain.ErrInvalidInput, domain.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidator_ValidateQuizRequest_TrimsURL(t *testing.T) {
	req := &dto.QuizRequest{URL: "  https://en.wikipedia.org/wiki/Go  "}
	require.NoError(t, NewValidator().ValidateQuizRequest(req))
	assert.Equal(t, "https://en.wikipedia.org/wiki/Go", req.URL)
}

func TestValidator_ParseQuizID(t *testing.T) {
	v := NewValidator()

	id, err := v.ParseQuizID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "4.2", "99999999999999999999"} {
		_, err := v.ParseQuizID(raw)
		assert.Equal(t, domain.ErrInvalidInput, domain.CodeOf(err), raw)
	}
}
