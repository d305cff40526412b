package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"educatord/internal/config"
	"educatord/internal/httpapi"
	"educatord/internal/service"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := config.DefaultAddr
	if v := os.Getenv("EDUCATORD_ADDR"); v != "" {
		defaultAddr = v
	}
	defaultModel := os.Getenv("EDUCATORD_MODEL")

	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	modelPath := flag.String("model", defaultModel, "Path to the GGUF model file")
	configPath := flag.String("config", "", "Optional config file (.yaml/.json/.toml)")
	workers := flag.Int("workers", 0, "Worker pool size for blocking inference (0=default)")
	gpuLayers := flag.Int("gpu-layers", 0, "Layers to offload to the accelerator (0=CPU)")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
	}
	// Explicit flags override file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "model":
			cfg.ModelPath = *modelPath
		case "workers":
			cfg.Workers = *workers
		case "gpu-layers":
			cfg.GPULayers = *gpuLayers
		}
	})
	if cfg.Addr == "" {
		cfg.Addr = *addr
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = *modelPath
	}
	cfg = config.ApplyDefaults(cfg)

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	httpapi.SetLogger(logger)
	httpapi.SetBaseContext(baseCtx)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins)

	svc := service.New(cfg, logger)
	// A model that cannot load makes the service useless: abort startup.
	if err := svc.Initialize(baseCtx); err != nil {
		logger.Fatal().Err(err).Msg("service initialization failed")
	}

	mux := httpapi.NewMux(svc)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("model", cfg.ModelPath).Msg("educatord listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	if err := svc.Cleanup(ctx); err != nil {
		logger.Error().Err(err).Msg("service cleanup error")
	}
}
