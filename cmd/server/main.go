package main

import (
	"net/http"
	"os"

	"github.com/neuroscan/mri-api/internal/classifier"
	"github.com/neuroscan/mri-api/internal/config"
	"github.com/neuroscan/mri-api/internal/handlers"
	"github.com/neuroscan/mri-api/internal/logging"
	"github.com/neuroscan/mri-api/internal/metrics"
)

const serviceName = "mri-api"

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logging.New(serviceName, "info")
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logging.New(serviceName, cfg.LogLevel)

	var session *classifier.Session
	handle := classifier.NewHandle(func() (classifier.Classifier, error) {
		s, err := classifier.Load(cfg.ModelPath, cfg.MetadataPath)
		if err != nil {
			return nil, err
		}
		session = s
		return s, nil
	})

	// Load eagerly so a bad artifact kills the process before it serves.
	if _, err := handle.Get(); err != nil {
		log.Fatal().Err(err).Str("model_path", cfg.ModelPath).Msg("failed to load model")
	}
	defer session.Close()

	log.Info().
		Str("model_path", cfg.ModelPath).
		Strs("classes", session.Metadata().Classes).
		Msg("model loaded")

	m := metrics.New(serviceName)
	handler := handlers.NewHandler(handle, m, log, cfg.MaxUploadBytes)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, enableCORS(handler.Routes())); err != nil {
		log.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}
