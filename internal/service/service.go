// Package service implements the generation service facade: it owns the
// model pipeline lifecycle, offloads blocking inference to a small worker
// pool, and serializes access to the pipeline so only one generation call
// executes against it at a time.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"educatord/internal/config"
	"educatord/internal/model"
	"educatord/internal/workpool"
	"educatord/pkg/types"
)

// Loader loads a pipeline from options. Injectable for tests.
type Loader func(model.Options) (model.Pipeline, error)

// Service is the single point of truth for the pipeline lifecycle and
// generation. Construct with New, call Initialize once at startup, and
// Cleanup on shutdown.
type Service struct {
	cfg    config.Config
	log    zerolog.Logger
	pool   *workpool.Pool
	loader Loader

	// mu guards state and pipeline; genMu serializes pipeline use.
	// ready is a separate atomic flag so IsReady never touches either lock.
	mu       sync.RWMutex
	genMu    sync.Mutex
	state    State
	pipeline model.Pipeline
	ready    atomic.Bool
}

// New constructs a Service backed by the default model loader.
func New(cfg config.Config, log zerolog.Logger) *Service {
	return NewWithLoader(cfg, log, model.Load)
}

// NewWithLoader constructs a Service with a custom pipeline loader.
func NewWithLoader(cfg config.Config, log zerolog.Logger, loader Loader) *Service {
	return &Service{
		cfg:    cfg,
		log:    log.With().Str("component", "service").Logger(),
		pool:   workpool.New(cfg.Workers),
		loader: loader,
		state:  StateUninitialized,
	}
}

// Initialize loads the pipeline on a background worker. Not safe to call
// concurrently with itself; intended for process startup only. On failure the
// service enters StateFailed and never becomes ready.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateUninitialized {
		st := s.state
		s.mu.Unlock()
		return ErrInitialization(fmt.Errorf("initialize called in state %s", st))
	}
	s.state = StateInitializing
	s.mu.Unlock()

	s.log.Info().Str("model", s.cfg.ModelPath).Msg("loading model pipeline")
	opts := model.Options{
		ModelPath: s.cfg.ModelPath,
		CtxSize:   s.cfg.CtxSize,
		Threads:   s.cfg.Threads,
		GPULayers: s.cfg.GPULayers,
	}
	p, err := workpool.Do(ctx, s.pool, func() (model.Pipeline, error) {
		return s.loader(opts)
	})
	if err != nil {
		s.mu.Lock()
		s.state = StateFailed
		s.mu.Unlock()
		s.log.Error().Err(err).Msg("model pipeline failed to load")
		return ErrInitialization(err)
	}

	s.mu.Lock()
	s.pipeline = p
	s.state = StateReady
	s.mu.Unlock()
	s.ready.Store(true)
	s.log.Info().Msg("generation service ready")
	return nil
}

// IsReady reports whether the service can serve generation requests.
// Cheap and lock-free; safe from any goroutine.
func (s *Service) IsReady() bool {
	return s.ready.Load()
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// GenerateText composes the effective prompt, resolves effective parameters,
// and runs the blocking inference call on the worker pool under the exclusive
// pipeline guard. Pipeline errors surface as generation failures; no retry.
func (s *Service) GenerateText(ctx context.Context, req types.GenerateRequest) (types.GenerationResult, error) {
	if !s.IsReady() {
		return types.GenerationResult{}, ErrNotReady()
	}

	ct := req.ContentType
	if ct == "" {
		ct = types.ContentExplanation
	}
	prompt := composePrompt(ct, req.Prompt, req.Context)
	params := s.effectiveParams(req)

	text, err := workpool.Do(ctx, s.pool, func() (string, error) {
		s.genMu.Lock()
		defer s.genMu.Unlock()
		s.mu.RLock()
		p := s.pipeline
		s.mu.RUnlock()
		if p == nil {
			return "", ErrNotReady()
		}
		return p.Generate(prompt, params)
	})
	if err != nil {
		if IsNotReady(err) || ctx.Err() != nil {
			return types.GenerationResult{}, err
		}
		return types.GenerationResult{}, ErrGeneration(err)
	}

	return types.GenerationResult{
		GeneratedText: strings.TrimSpace(text),
		Prompt:        req.Prompt,
		Context:       req.Context,
		ContentType:   ct,
		Parameters:    params,
	}, nil
}

// effectiveParams merges caller overrides onto configured defaults.
func (s *Service) effectiveParams(req types.GenerateRequest) types.GenerationParams {
	p := types.GenerationParams{
		MaxLength:   s.cfg.MaxLength,
		Temperature: s.cfg.Temperature,
		TopP:        s.cfg.TopP,
	}
	if req.MaxLength != nil {
		p.MaxLength = *req.MaxLength
	}
	if req.Temperature != nil {
		p.Temperature = *req.Temperature
	}
	if req.TopP != nil {
		p.TopP = *req.TopP
	}
	return p
}

// Cleanup releases the pipeline and drains the worker pool, waiting for
// in-flight generation to finish. Safe to call when Initialize never
// succeeded (no-op on an empty pipeline).
func (s *Service) Cleanup(ctx context.Context) error {
	s.ready.Store(false)
	s.mu.Lock()
	s.state = StateShuttingDown
	s.mu.Unlock()

	// Wait for any in-flight generation before releasing the pipeline.
	s.genMu.Lock()
	s.mu.Lock()
	p := s.pipeline
	s.pipeline = nil
	s.mu.Unlock()
	s.genMu.Unlock()

	var closeErr error
	if p != nil {
		s.log.Info().Msg("releasing model pipeline")
		closeErr = p.Close()
	}
	s.pool.Close()

	s.mu.Lock()
	s.state = StateUninitialized
	s.mu.Unlock()
	s.log.Info().Msg("generation service cleanup complete")
	return closeErr
}
