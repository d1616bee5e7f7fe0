package config

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

// Config carries everything the process needs at startup. Values come from
// environment variables layered over defaults.
type Config struct {
	Port           string
	LogLevel       string
	ModelPath      string
	MetadataPath   string
	MaxUploadBytes int64
}

const envDelimiter = "__"

var defaults = map[string]interface{}{
	"PORT":             "8080",
	"LOG_LEVEL":        "info",
	"MODEL_PATH":       "models/tumor_model.onnx",
	"METADATA_PATH":    "models/tumor_model_metadata.json",
	"MAX_UPLOAD_BYTES": int64(10 << 20),
}

// Load reads defaults and overrides them with environment variables.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading default config: %w", err)
	}
	// Blank variables count as unset so defaults survive.
	override := env.ProviderWithValue("", envDelimiter, func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return key, value
	})
	if err := k.Load(override, nil); err != nil {
		return Config{}, fmt.Errorf("loading environment config: %w", err)
	}

	return Config{
		Port:           k.String("PORT"),
		LogLevel:       k.String("LOG_LEVEL"),
		ModelPath:      k.String("MODEL_PATH"),
		MetadataPath:   k.String("METADATA_PATH"),
		MaxUploadBytes: k.Int64("MAX_UPLOAD_BYTES"),
	}, nil
}
