package service

import (
	"fmt"
	"strings"

	"educatord/pkg/types"
)

// systemPreamble frames every request as an educational content task.
const systemPreamble = `You are an expert educator and content creator. Your task is to generate high-quality educational content that is:
- Clear and easy to understand
- Accurate and factual
- Engaging and informative
- Appropriate for the target audience
- Well-structured with examples when helpful

Please provide educational content based on the following request:`

// instructions maps every content type to its task instruction. Completeness
// against types.AllContentTypes is enforced at package init.
var instructions = map[types.ContentType]string{
	types.ContentExplanation: "Provide a clear, detailed explanation of the following topic. Include examples and break down complex concepts into understandable parts:",
	types.ContentSummary:     "Create a concise summary of the following topic, highlighting the key points and main ideas:",
	types.ContentQuiz:        "Generate quiz questions and answers about the following topic. Include multiple choice, true/false, and short answer questions:",
	types.ContentLesson:      "Create a structured lesson plan for teaching the following topic. Include objectives, activities, and assessment methods:",
	types.ContentExample:     "Provide practical examples and real-world applications of the following concept:",
	types.ContentDefinition:  "Provide a clear definition and explanation of the following term or concept, including its significance and context:",
}

func init() {
	for _, ct := range types.AllContentTypes {
		if _, ok := instructions[ct]; !ok {
			panic(fmt.Sprintf("service: missing instruction for content type %q", ct))
		}
	}
}

// composePrompt builds the effective prompt sent to the pipeline: the system
// preamble, the optional context, and the instruction-framed user request.
func composePrompt(ct types.ContentType, prompt, context string) string {
	var b strings.Builder
	b.WriteString(systemPreamble)
	if context != "" {
		b.WriteString("\n\nContext: ")
		b.WriteString(context)
	}
	b.WriteString("\n\nRequest: ")
	b.WriteString(instructions[ct])
	b.WriteString("\n\n")
	b.WriteString(prompt)
	b.WriteString("\n\nResponse:")
	return b.String()
}
