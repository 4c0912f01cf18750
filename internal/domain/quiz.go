package domain

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the difficulty label the model assigns to a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Quiz size bounds the model output must satisfy.
const (
	MinQuestions       = 5
	MaxQuestions       = 10
	OptionsPerQuestion = 4
	MinRelatedTopics   = 3
	MaxRelatedTopics   = 5
)

// QuizQuestion is one multiple-choice question of a generated quiz.
type QuizQuestion struct {
	Question    string     `json:"question" validate:"required"`
	Options     []string   `json:"options" validate:"len=4,dive,required"`
	Answer      string     `json:"answer" validate:"required"`
	Explanation string     `json:"explanation" validate:"required"`
	Difficulty  Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
}

// HasValidAnswer reports whether Answer is one of Options, ignoring
// surrounding whitespace.
func (q QuizQuestion) HasValidAnswer() bool {
	_, ok := q.matchingOption()
	return ok
}

func (q QuizQuestion) matchingOption() (string, bool) {
	answer := strings.TrimSpace(q.Answer)
	for _, option := range q.Options {
		if strings.TrimSpace(option) == answer {
			return option, true
		}
	}
	return "", false
}

// QuizPayload is the full structured output of one quiz generation. The JSON
// shape is the contract with both the model and the HTTP clients.
type QuizPayload struct {
	Title         string         `json:"title" validate:"required"`
	Summary       string         `json:"summary" validate:"required"`
	KeyEntities   []string       `json:"key_entities" validate:"required"`
	Sections      []string       `json:"sections" validate:"required"`
	Quiz          []QuizQuestion `json:"quiz" validate:"min=5,max=10,dive"`
	RelatedTopics []string       `json:"related_topics" validate:"min=3,max=5,dive,required"`
}

// CheckAnswers returns an error naming the first question whose answer is not
// one of its options. Matching answers are rewritten to the exact option text
// so clients can compare them verbatim.
func (p *QuizPayload) CheckAnswers() error {
	for i := range p.Quiz {
		option, ok := p.Quiz[i].matchingOption()
		if !ok {
			return fmt.Errorf("question %d: answer %q is not one of its options", i+1, p.Quiz[i].Answer)
		}
		p.Quiz[i].Answer = option
	}
	return nil
}

// QuizRecord is one persisted generation. Records are written once and never
// updated.
type QuizRecord struct {
	ID             int64
	URL            string
	Title          string
	DateGenerated  time.Time
	Payload        QuizPayload
	ScrapedContent string
}

// NewQuizRecord builds an unsaved record; the store assigns ID and, when zero,
// DateGenerated.
func NewQuizRecord(url, title, scrapedContent string, payload QuizPayload) *QuizRecord {
	return &QuizRecord{
		URL:            url,
		Title:          title,
		Payload:        payload,
		ScrapedContent: scrapedContent,
	}
}

// Summary projects the record onto its history listing view.
func (r *QuizRecord) Summary() QuizHistoryItem {
	return QuizHistoryItem{
		ID:            r.ID,
		URL:           r.URL,
		Title:         r.Title,
		DateGenerated: r.DateGenerated,
	}
}

// QuizHistoryItem is the list view of a QuizRecord without payload and text.
type QuizHistoryItem struct {
	ID            int64
	URL           string
	Title         string
	DateGenerated time.Time
}

// Article is the readable content pulled from a source page.
type Article struct {
	Title     string
	CleanText string
}
