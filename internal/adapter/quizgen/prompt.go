package quizgen

import "github.com/tmc/langchaingo/prompts"

const quizPromptTemplate = `You are an expert quiz creator. Your task is to generate a quiz from the
provided Wikipedia article text.

Based on the text below, generate a 5-10 question multiple-choice quiz.

For each question, provide:
1. The question text
2. Four options (A-D)
3. The correct answer, copied exactly from one of the four options
4. A short explanation
5. A difficulty level (easy, medium, hard)

Also extract:
1. The main title of the article.
2. A short summary of the article (2-3 sentences).
3. A list of key entities mentioned in the article (e.g., people, places, concepts).
4. A list of main sections in the article.
5. A list of 3-5 related Wikipedia topics for further reading.

ARTICLE TEXT:
{{.article_text}}

FORMAT INSTRUCTIONS:
{{.format_instructions}}
`

// formatInstructions describes the QuizPayload JSON shape to the model.
const formatInstructions = `The output must be a single JSON object that conforms to the JSON schema below.
Respond with the JSON object only, without Markdown fences or commentary.

{
  "type": "object",
  "required": ["title", "summary", "key_entities", "sections", "quiz", "related_topics"],
  "additionalProperties": false,
  "properties": {
    "title": {"type": "string", "description": "The main title of the Wikipedia article"},
    "summary": {"type": "string", "description": "A 2-3 sentence summary of the article"},
    "key_entities": {"type": "array", "items": {"type": "string"}, "description": "Key entities mentioned in the article"},
    "sections": {"type": "array", "items": {"type": "string"}, "description": "Main sections in the article"},
    "quiz": {
      "type": "array",
      "minItems": 5,
      "maxItems": 10,
      "items": {
        "type": "object",
        "required": ["question", "options", "answer", "explanation", "difficulty"],
        "additionalProperties": false,
        "properties": {
          "question": {"type": "string", "description": "The text of the question"},
          "options": {"type": "array", "items": {"type": "string"}, "minItems": 4, "maxItems": 4, "description": "Four answer options (A-D)"},
          "answer": {"type": "string", "description": "The correct answer, identical to one of the options"},
          "explanation": {"type": "string", "description": "A short explanation for the correct answer"},
          "difficulty": {"type": "string", "enum": ["easy", "medium", "hard"]}
        }
      }
    },
    "related_topics": {"type": "array", "items": {"type": "string"}, "minItems": 3, "maxItems": 5, "description": "Related Wikipedia topics"}
  }
}`

func newQuizPrompt() prompts.PromptTemplate {
	return prompts.PromptTemplate{
		Template:       quizPromptTemplate,
		InputVariables: []string{"article_text"},
		TemplateFormat: prompts.TemplateFormatGoTemplate,
		PartialVariables: map[string]any{
			"format_instructions": formatInstructions,
		},
	}
}
