//go:build llama

package model

import (
	"errors"
	"strings"

	llama "github.com/go-skynet/go-llama.cpp"

	"educatord/pkg/types"
)

// llamaBuilt indicates this binary was compiled with real llama support.
var llamaBuilt = true

// llamaPipeline owns the loaded model.
type llamaPipeline struct {
	model   *llama.LLama
	threads int
}

// Load loads the model from disk. This can take seconds to minutes for large
// models; callers should run it off their serving loop.
func Load(opts Options) (Pipeline, error) {
	if strings.TrimSpace(opts.ModelPath) == "" {
		return nil, errors.New("model path is empty")
	}
	mo := []llama.ModelOption{
		llama.SetContext(opts.CtxSize),
	}
	if opts.GPULayers > 0 {
		mo = append(mo, llama.SetGPULayers(opts.GPULayers))
	}
	m, err := llama.New(opts.ModelPath, mo...)
	if err != nil {
		return nil, err
	}
	return &llamaPipeline{model: m, threads: opts.Threads}, nil
}

func (p *llamaPipeline) Generate(prompt string, params types.GenerationParams) (string, error) {
	if p.model == nil {
		return "", errors.New("llama model not initialized")
	}
	po := []llama.PredictOption{
		llama.SetTokens(max(1, params.MaxLength)),
		llama.SetThreads(max(1, p.threads)),
		llama.SetTemperature(float32(params.Temperature)),
		llama.SetTopP(float32(params.TopP)),
	}
	text, err := p.model.Predict(prompt, po...)
	if err != nil {
		return "", err
	}
	// Some models echo the prompt back; keep only the continuation.
	text = strings.TrimPrefix(text, prompt)
	return strings.TrimSpace(text), nil
}

func (p *llamaPipeline) Close() error {
	if p.model != nil {
		p.model.Free()
		p.model = nil
	}
	return nil
}
