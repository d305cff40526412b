//go:build !llama

package model

// This file provides a no-CGO stub compiled when the 'llama' build tag is
// NOT set, keeping default builds and CI CGO-free. The real backend lives in
// llama.go (tagged 'llama').

import "errors"

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = false

// Load refuses to load a model without the 'llama' build tag. This avoids
// any mocked inference in production binaries built without CGO support.
func Load(opts Options) (Pipeline, error) {
	return nil, errors.New("llama backend not built in (rebuild with -tags=llama)")
}
