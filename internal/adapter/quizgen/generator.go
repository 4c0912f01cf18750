package quizgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"wiki-quiz/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
	"go.uber.org/zap"
)

// Options tunes a LLMQuizGenerator.
type Options struct {
	Temperature   float64
	JSONMode      bool
	StrictAnswers bool
	Timeout       time.Duration
}

// LLMQuizGenerator implements domain.QuizSynthesizer on top of any
// langchaingo model.
type LLMQuizGenerator struct {
	llm      llms.Model
	prompt   prompts.PromptTemplate
	opts     Options
	validate *validator.Validate
	logger   *zap.Logger
}

// NewLLMQuizGenerator creates a generator that sends one prompt per call.
func NewLLMQuizGenerator(llm llms.Model, opts Options, logger *zap.Logger) (*LLMQuizGenerator, error) {
	if llm == nil {
		return nil, errors.New("language model cannot be nil")
	}
	return &LLMQuizGenerator{
		llm:      llm,
		prompt:   newQuizPrompt(),
		opts:     opts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}, nil
}

// BuildPrompt renders the instruction sent to the model for cleanText.
func (g *LLMQuizGenerator) BuildPrompt(cleanText string) (string, error) {
	return g.prompt.Format(map[string]any{"article_text": cleanText})
}

// Generate implements domain.QuizSynthesizer
func (g *LLMQuizGenerator) Generate(ctx context.Context, cleanText string) (*domain.QuizPayload, error) {
	prompt, err := g.BuildPrompt(cleanText)
	if err != nil {
		return nil, domain.NewGenerationError(fmt.Errorf("render prompt: %w", err))
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	callOpts := []llms.CallOption{llms.WithTemperature(g.opts.Temperature)}
	if g.opts.JSONMode {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	start := time.Now()
	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, callOpts...)
	if err != nil {
		g.logger.Error("LLM call failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, domain.NewGenerationError(err)
	}
	g.logger.Debug("Raw LLM response received", zap.String("raw_response", raw))

	payload, err := g.ParsePayload(raw)
	if err != nil {
		g.logger.Error("Failed to parse LLM response", zap.Error(err))
		return nil, err
	}

	g.logger.Info("Quiz generated",
		zap.String("title", payload.Title),
		zap.Int("questions", len(payload.Quiz)),
		zap.Duration("elapsed", time.Since(start)))
	return payload, nil
}

// ParsePayload decodes and validates a raw model reply. Every failure is a
// SchemaParseError.
func (g *LLMQuizGenerator) ParsePayload(raw string) (*domain.QuizPayload, error) {
	object, err := extractJSONObject(raw)
	if err != nil {
		return nil, domain.NewSchemaParseError(err)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(object)))
	dec.DisallowUnknownFields()

	var payload domain.QuizPayload
	if err := dec.Decode(&payload); err != nil {
		return nil, domain.NewSchemaParseError(fmt.Errorf("decode: %w", err))
	}

	if err := g.validate.Struct(&payload); err != nil {
		return nil, domain.NewSchemaParseError(fmt.Errorf("validate: %w", err))
	}

	if g.opts.StrictAnswers {
		if err := payload.CheckAnswers(); err != nil {
			return nil, domain.NewSchemaParseError(err)
		}
	}
	return &payload, nil
}

// extractJSONObject strips <think> blocks and returns the first complete JSON
// object in the reply. Braces in surrounding prose and code fences are skipped.
func extractJSONObject(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)

	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}

	for start := strings.Index(cleaned, "{"); start != -1; {
		var object json.RawMessage
		if err := json.NewDecoder(strings.NewReader(cleaned[start:])).Decode(&object); err == nil {
			return string(object), nil
		}
		next := strings.Index(cleaned[start+1:], "{")
		if next == -1 {
			break
		}
		start += next + 1
	}
	return "", errors.New("no JSON object found in model reply")
}

var _ domain.QuizSynthesizer = (*LLMQuizGenerator)(nil)
