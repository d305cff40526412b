package types

// GenerationResult is the facade-level outcome of a single generation call.
type GenerationResult struct {
	GeneratedText string
	Prompt        string
	Context       string
	ContentType   ContentType
	Parameters    GenerationParams
}
