package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"educatord/internal/service"
	"educatord/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	GenerateText(ctx context.Context, req types.GenerateRequest) (types.GenerationResult, error)
	IsReady() bool
}

// NewMux builds the HTTP router: /api/generate, /api/content-types,
// /api/health plus probe and metrics endpoints.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Log-Level"},
			AllowCredentials: true,
		}))
	}
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", handleGenerate(svc))
		r.Get("/content-types", handleContentTypes)
		r.Get("/health", handleHealth(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.IsReady() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// handleGenerate godoc
// @Summary      Generate educational content
// @Description  Composes an instruction-framed prompt and runs it through the model pipeline.
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateRequest true "generation request"
// @Success      200 {object} types.GenerateResponse
// @Failure      400 {object} types.ErrorResponse
// @Failure      503 {object} types.ErrorResponse
// @Router       /api/generate [post]
func handleGenerate(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
			writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := validateGenerateRequest(&req); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		// Fail fast before composing anything: a service that is still
		// loading (or failed to load) is surfaced as unavailable, not as a
		// generation failure.
		if !svc.IsReady() {
			writeJSONError(w, http.StatusServiceUnavailable, "model is not ready, try again later")
			return
		}

		lvl := requestLogLevel(r)
		start := time.Now()
		if lvl >= LevelInfo && zlog != nil {
			z := zlog.Info().Str("path", r.URL.Path).Str("content_type", string(req.ContentType))
			if rid := middleware.GetReqID(r.Context()); rid != "" {
				z = z.Str("request_id", rid)
			}
			z.Msg("generate start")
		}

		// Join server base context with request context so shutdown cancels work too.
		joinedCtx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		result, err := svc.GenerateText(joinedCtx, req)
		elapsed := time.Since(start)
		if err != nil {
			// If context was canceled (client disconnect/shutdown), just return.
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			if service.IsNotReady(err) {
				observeGeneration(string(req.ContentType), "unavailable", elapsed)
				writeJSONError(w, http.StatusServiceUnavailable, err.Error())
				logGenerateEnd(r, lvl, http.StatusServiceUnavailable, elapsed, err)
				return
			}
			if he, ok := err.(HTTPError); ok {
				observeGeneration(string(req.ContentType), "error", elapsed)
				writeJSONError(w, he.StatusCode(), he.Error())
				logGenerateEnd(r, lvl, he.StatusCode(), elapsed, err)
				return
			}
			// Per-request generation failures keep the structured envelope:
			// success=false with the message, never an unhandled fault.
			observeGeneration(string(req.ContentType), "failure", elapsed)
			writeJSON(w, http.StatusOK, types.GenerateResponse{
				Success:        false,
				Prompt:         req.Prompt,
				Context:        req.Context,
				ContentType:    req.ContentType,
				Error:          err.Error(),
				ProcessingTime: elapsed.Seconds(),
			})
			logGenerateEnd(r, lvl, http.StatusOK, elapsed, err)
			return
		}

		observeGeneration(string(result.ContentType), "success", elapsed)
		params := result.Parameters
		writeJSON(w, http.StatusOK, types.GenerateResponse{
			Success:        true,
			GeneratedText:  result.GeneratedText,
			Prompt:         result.Prompt,
			Context:        result.Context,
			ContentType:    result.ContentType,
			Parameters:     &params,
			ProcessingTime: elapsed.Seconds(),
		})
		logGenerateEnd(r, lvl, http.StatusOK, elapsed, nil)
	}
}

// handleContentTypes godoc
// @Summary      List content types
// @Produce      json
// @Success      200 {object} types.ContentTypesResponse
// @Router       /api/content-types [get]
func handleContentTypes(w http.ResponseWriter, r *http.Request) {
	resp := types.ContentTypesResponse{ContentTypes: make([]types.ContentTypeInfo, 0, len(types.AllContentTypes))}
	for _, ct := range types.AllContentTypes {
		resp.ContentTypes = append(resp.ContentTypes, types.ContentTypeInfo{
			Value:       ct,
			Label:       ct.Label(),
			Description: ct.Description(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleHealth godoc
// @Summary      Service health
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /api/health [get]
func handleHealth(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.HealthResponse{
			Status:      "healthy",
			Service:     "educatord",
			ModelLoaded: svc.IsReady(),
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && zlog != nil {
		zlog.Error().Err(err).Msg("failed to encode response")
	}
}

func logGenerateEnd(r *http.Request, lvl LogLevel, status int, dur time.Duration, err error) {
	if lvl < LevelInfo || zlog == nil {
		return
	}
	z := zlog.Info().Int("status", status).Dur("dur", dur)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	if err != nil {
		z = z.Err(err)
	}
	z.Msg("generate end")
}
