// Package model wraps the causal-LM inference backend behind a small
// Pipeline interface. The real llama.cpp implementation is compiled only
// with the 'llama' build tag; default builds stay CGO-free and refuse to
// load rather than mock inference.
package model

import "educatord/pkg/types"

// Options configures pipeline loading.
type Options struct {
	// Path to the model file on disk.
	ModelPath string
	// Context window size in tokens.
	CtxSize int
	// CPU threads used per generation call.
	Threads int
	// Number of layers to offload to the accelerator. Zero keeps the
	// general-purpose compute path.
	GPULayers int
}

// Pipeline is a loaded text-generation backend.
//
// Generate is synchronous, blocking and non-reentrant: the caller must hold
// exclusive access to the pipeline for the full duration of the call. It
// returns only newly generated continuation text, trimmed of surrounding
// whitespace.
type Pipeline interface {
	Generate(prompt string, params types.GenerationParams) (string, error)
	// Close releases model resources. The pipeline must not be used after.
	Close() error
}
