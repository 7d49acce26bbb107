// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Renderer names accepted by PONG_RENDERER
const (
	RendererTerminal = "terminal"
	RendererEngo     = "engo"
	RendererNull     = "null"
)

// EnvironmentConfig holds frontend and runtime settings sourced from the
// environment. Gameplay constants are not configurable here; they live in
// the engine.
type EnvironmentConfig struct {
	Renderer     string
	TickRate     int
	FrameRate    int
	WindowWidth  int
	WindowHeight int
	Fullscreen   bool
	Seed         uint64
	Mute         bool
}

// ValidationError describes a configuration field that failed validation
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the validation failure description
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// LoadConfigFromEnv builds the runtime configuration from PONG_* environment
// variables, falling back to defaults for unset or unparseable values.
//
// Variables: PONG_RENDERER, PONG_TICK_RATE, PONG_FRAME_RATE,
// PONG_WINDOW_WIDTH, PONG_WINDOW_HEIGHT, PONG_FULLSCREEN, PONG_SEED,
// PONG_MUTE. PONG_LOG_LEVEL is read separately by the logging package.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	config := &EnvironmentConfig{
		Renderer:     getEnvOrDefault("PONG_RENDERER", RendererTerminal),
		TickRate:     getEnvAsIntOrDefault("PONG_TICK_RATE", 120),
		FrameRate:    getEnvAsIntOrDefault("PONG_FRAME_RATE", 60),
		WindowWidth:  getEnvAsIntOrDefault("PONG_WINDOW_WIDTH", 900),
		WindowHeight: getEnvAsIntOrDefault("PONG_WINDOW_HEIGHT", 600),
		Fullscreen:   getEnvAsBoolOrDefault("PONG_FULLSCREEN", false),
		Seed:         getEnvAsUintOrDefault("PONG_SEED", 0),
		Mute:         getEnvAsBoolOrDefault("PONG_MUTE", false),
	}

	if err := validateEnvironmentConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateEnvironmentConfig checks that all fields hold usable values
func validateEnvironmentConfig(config *EnvironmentConfig) error {
	switch config.Renderer {
	case RendererTerminal, RendererEngo, RendererNull:
	default:
		return &ValidationError{
			Field:   "Renderer",
			Message: fmt.Sprintf("%q is not one of terminal, engo, null", config.Renderer),
		}
	}

	if config.TickRate < 1 || config.TickRate > 1000 {
		return &ValidationError{
			Field:   "TickRate",
			Message: fmt.Sprintf("%d is outside the range 1-1000", config.TickRate),
		}
	}

	if config.FrameRate < 1 || config.FrameRate > 240 {
		return &ValidationError{
			Field:   "FrameRate",
			Message: fmt.Sprintf("%d is outside the range 1-240", config.FrameRate),
		}
	}

	if config.WindowWidth < 200 || config.WindowWidth > 8192 {
		return &ValidationError{
			Field:   "WindowWidth",
			Message: fmt.Sprintf("%d is outside the range 200-8192", config.WindowWidth),
		}
	}

	if config.WindowHeight < 200 || config.WindowHeight > 8192 {
		return &ValidationError{
			Field:   "WindowHeight",
			Message: fmt.Sprintf("%d is outside the range 200-8192", config.WindowHeight),
		}
	}

	return nil
}

// getEnvOrDefault returns the environment value or the default when unset
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault parses the environment value as an int,
// returning the default when unset or unparseable
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsUintOrDefault parses the environment value as a uint64,
// returning the default when unset or unparseable
func getEnvAsUintOrDefault(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsBoolOrDefault parses the environment value as a bool,
// returning the default when unset or unparseable
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
