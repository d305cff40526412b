package types

import "strings"

// ContentType is a closed enumeration of educational content formats.
type ContentType string

const (
	ContentExplanation ContentType = "explanation"
	ContentSummary     ContentType = "summary"
	ContentQuiz        ContentType = "quiz"
	ContentLesson      ContentType = "lesson"
	ContentExample     ContentType = "example"
	ContentDefinition  ContentType = "definition"
)

// AllContentTypes lists every content type in a stable order.
// New variants must be added here and to the description/instruction tables;
// completeness is asserted by tests.
var AllContentTypes = []ContentType{
	ContentExplanation,
	ContentSummary,
	ContentQuiz,
	ContentLesson,
	ContentExample,
	ContentDefinition,
}

var contentDescriptions = map[ContentType]string{
	ContentExplanation: "Detailed explanations with examples",
	ContentSummary:     "Concise summaries of key points",
	ContentQuiz:        "Quiz questions and answers",
	ContentLesson:      "Structured lesson plans",
	ContentExample:     "Practical examples and applications",
	ContentDefinition:  "Clear definitions and explanations",
}

// Valid reports whether ct is one of the declared content types.
func (ct ContentType) Valid() bool {
	_, ok := contentDescriptions[ct]
	return ok
}

// Label returns the human-friendly display name.
func (ct ContentType) Label() string {
	words := strings.Fields(strings.ReplaceAll(string(ct), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Description returns the one-line description shown by the content-types endpoint.
func (ct ContentType) Description() string {
	return contentDescriptions[ct]
}
