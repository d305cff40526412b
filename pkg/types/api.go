package types

// GenerateRequest is the payload accepted by POST /api/generate.
type GenerateRequest struct {
	// Required prompt describing the educational content to generate.
	// example: Photosynthesis
	Prompt string `json:"prompt" validate:"required,min=1,max=1000" example:"Photosynthesis"`
	// Optional content type tag. Defaults to "explanation" when omitted.
	// example: definition
	ContentType ContentType `json:"content_type,omitempty" example:"definition"`
	// Optional additional context (target audience, scope, constraints).
	// example: For a high-school biology class.
	Context string `json:"context,omitempty" validate:"max=2000" example:"For a high-school biology class."`
	// Maximum length of the generated content in tokens.
	// example: 256
	MaxLength *int `json:"max_length,omitempty" validate:"omitempty,gte=50,lte=1000" example:"256"`
	// Sampling temperature (higher = more random).
	// example: 0.7
	Temperature *float64 `json:"temperature,omitempty" validate:"omitempty,gte=0.1,lte=2.0" example:"0.7"`
	// Nucleus sampling probability mass.
	// example: 0.9
	TopP *float64 `json:"top_p,omitempty" validate:"omitempty,gte=0.1,lte=1.0" example:"0.9"`
}

// GenerationParams records the generation parameters actually applied after
// caller overrides are merged with configured defaults.
type GenerationParams struct {
	// example: 512
	MaxLength int `json:"max_length" example:"512"`
	// example: 0.7
	Temperature float64 `json:"temperature" example:"0.7"`
	// example: 0.9
	TopP float64 `json:"top_p" example:"0.9"`
}

// GenerateResponse is the envelope returned by POST /api/generate.
// Failures are reported with Success=false rather than a bare error status,
// except service-unavailable which is mapped before generation is attempted.
type GenerateResponse struct {
	// Whether generation succeeded.
	// example: true
	Success bool `json:"success"`
	// Generated educational content (present on success).
	GeneratedText string `json:"generated_text,omitempty"`
	// Echo of the original prompt.
	// example: Photosynthesis
	Prompt string `json:"prompt,omitempty" example:"Photosynthesis"`
	// Echo of the context used, if any.
	Context string `json:"context,omitempty"`
	// Echo of the content type generated.
	// example: definition
	ContentType ContentType `json:"content_type,omitempty" example:"definition"`
	// Effective generation parameters.
	Parameters *GenerationParams `json:"parameters,omitempty"`
	// Error message when Success is false.
	Error string `json:"error,omitempty"`
	// Wall-clock processing time in seconds. Always present.
	// example: 1.42
	ProcessingTime float64 `json:"processing_time" example:"1.42"`
}

// ContentTypeInfo describes one content type for the informational endpoint.
type ContentTypeInfo struct {
	// example: definition
	Value ContentType `json:"value" example:"definition"`
	// example: Definition
	Label string `json:"label" example:"Definition"`
	// example: Clear definitions and explanations
	Description string `json:"description" example:"Clear definitions and explanations"`
}

// ContentTypesResponse wraps the list returned by GET /api/content-types.
type ContentTypesResponse struct {
	ContentTypes []ContentTypeInfo `json:"content_types"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	// example: healthy
	Status string `json:"status" example:"healthy"`
	// example: educatord
	Service string `json:"service" example:"educatord"`
	// Whether the model pipeline is loaded and ready.
	// example: true
	ModelLoaded bool `json:"model_loaded" example:"true"`
	// RFC 3339 timestamp of the response.
	// example: 2026-01-02T15:04:05Z
	Timestamp string `json:"timestamp" example:"2026-01-02T15:04:05Z"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
