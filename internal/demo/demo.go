// Package demo generates canned educational text from templates without any
// model. It is a standalone prototype kept alongside the real service for
// quick, offline experimentation.
package demo

import (
	"strings"

	"educatord/pkg/types"
)

// stopWords are question words and prepositions ignored by topic extraction.
var stopWords = map[string]struct{}{
	"what": {}, "how": {}, "why": {}, "where": {}, "when": {}, "who": {},
	"is": {}, "are": {}, "the": {}, "a": {}, "an": {}, "about": {},
	"of": {}, "for": {}, "in": {}, "on": {}, "to": {}, "with": {},
}

// Result is the outcome of a template-based generation.
type Result struct {
	GeneratedText string
	Topic         string
	ContentType   types.ContentType
}

// ExtractTopic picks the first few meaningful words from the prompt,
// falling back to a prefix of the prompt when everything is filtered out.
func ExtractTopic(prompt string) string {
	var kept []string
	for _, w := range strings.Fields(strings.ToLower(prompt)) {
		if _, skip := stopWords[w]; skip || len(w) <= 2 {
			continue
		}
		kept = append(kept, w)
		if len(kept) == 3 {
			break
		}
	}
	if len(kept) > 0 {
		return strings.Join(kept, " ")
	}
	if len(prompt) > 50 {
		return prompt[:50]
	}
	return prompt
}

// Generate fills the template for the given content type with the topic
// extracted from prompt. Unknown content types fall back to explanation,
// matching the prototype's permissive behavior (the HTTP API is stricter).
func Generate(prompt string, ct types.ContentType, context string) Result {
	tmpl, ok := templates[ct]
	if !ok {
		ct = types.ContentExplanation
		tmpl = templates[ct]
	}
	topic := ExtractTopic(prompt)
	content := strings.ReplaceAll(tmpl, "{topic}", topic)

	if context != "" {
		content += "\n\nAdditional Context:\n" + context
	}

	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "beginner") || strings.Contains(lower, "basic"):
		content += "\n\nNote: This explanation is tailored for beginners learning about " + topic + "."
	case strings.Contains(lower, "advanced") || strings.Contains(lower, "detailed"):
		content += "\n\nAdvanced Note: For deeper understanding of " + topic + ", consider exploring related research and applications."
	}

	return Result{GeneratedText: content, Topic: topic, ContentType: ct}
}
