package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"

	"github.com/go-playground/validator/v10"
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateQuizRequest checks that the body names an absolute http(s) URL.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) error {
	if req == nil {
		return domain.NewInvalidInputError("request body is required")
	}
	req.URL = strings.TrimSpace(req.URL)

	if err := v.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return domain.NewInvalidInputError(describe(fieldErrs))
		}
		return domain.NewInvalidInputError(err.Error())
	}

	if !isHTTPURL(req.URL) {
		return domain.NewInvalidInputError(fmt.Sprintf("url: %q must use http or https", req.URL))
	}
	return nil
}

// ParseQuizID converts the path parameter of GET /quiz/{id}.
func (v *Validator) ParseQuizID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, domain.NewInvalidInputError(fmt.Sprintf("id: %q is not a valid integer", raw))
	}
	return id, nil
}

func describe(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+": field required")
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s: %q is not a valid URL", field, fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %q validation", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func isHTTPURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
