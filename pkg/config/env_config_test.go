// pkg/config/env_config_test.go
package config

import (
	"os"
	"testing"
)

var pongEnvVars = []string{
	"PONG_RENDERER",
	"PONG_TICK_RATE",
	"PONG_FRAME_RATE",
	"PONG_WINDOW_WIDTH",
	"PONG_WINDOW_HEIGHT",
	"PONG_FULLSCREEN",
	"PONG_SEED",
	"PONG_MUTE",
}

// clearPongEnv unsets every PONG_* variable and returns a restore function
func clearPongEnv(t *testing.T) {
	t.Helper()

	original := make(map[string]string)
	for _, key := range pongEnvVars {
		original[key] = os.Getenv(key)
		os.Unsetenv(key)
	}

	t.Cleanup(func() {
		for key, value := range original {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	})
}

// createValidConfig creates a valid EnvironmentConfig for testing
func createValidConfig() *EnvironmentConfig {
	return &EnvironmentConfig{
		Renderer:     RendererTerminal,
		TickRate:     120,
		FrameRate:    60,
		WindowWidth:  900,
		WindowHeight: 600,
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearPongEnv(t)

	t.Run("DefaultValues", func(t *testing.T) {
		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}

		if config.Renderer != RendererTerminal {
			t.Errorf("Expected Renderer %q, got %q", RendererTerminal, config.Renderer)
		}
		if config.TickRate != 120 {
			t.Errorf("Expected TickRate 120, got %d", config.TickRate)
		}
		if config.FrameRate != 60 {
			t.Errorf("Expected FrameRate 60, got %d", config.FrameRate)
		}
		if config.WindowWidth != 900 {
			t.Errorf("Expected WindowWidth 900, got %d", config.WindowWidth)
		}
		if config.WindowHeight != 600 {
			t.Errorf("Expected WindowHeight 600, got %d", config.WindowHeight)
		}
		if config.Fullscreen {
			t.Error("Expected Fullscreen false by default")
		}
		if config.Seed != 0 {
			t.Errorf("Expected Seed 0, got %d", config.Seed)
		}
		if config.Mute {
			t.Error("Expected Mute false by default")
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		os.Setenv("PONG_RENDERER", "engo")
		os.Setenv("PONG_TICK_RATE", "240")
		os.Setenv("PONG_FRAME_RATE", "30")
		os.Setenv("PONG_WINDOW_WIDTH", "1280")
		os.Setenv("PONG_WINDOW_HEIGHT", "720")
		os.Setenv("PONG_FULLSCREEN", "true")
		os.Setenv("PONG_SEED", "12345")
		os.Setenv("PONG_MUTE", "true")

		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}

		if config.Renderer != RendererEngo {
			t.Errorf("Expected Renderer %q, got %q", RendererEngo, config.Renderer)
		}
		if config.TickRate != 240 {
			t.Errorf("Expected TickRate 240, got %d", config.TickRate)
		}
		if config.FrameRate != 30 {
			t.Errorf("Expected FrameRate 30, got %d", config.FrameRate)
		}
		if config.WindowWidth != 1280 || config.WindowHeight != 720 {
			t.Errorf("Expected window 1280x720, got %dx%d", config.WindowWidth, config.WindowHeight)
		}
		if !config.Fullscreen {
			t.Error("Expected Fullscreen true")
		}
		if config.Seed != 12345 {
			t.Errorf("Expected Seed 12345, got %d", config.Seed)
		}
		if !config.Mute {
			t.Error("Expected Mute true")
		}
	})

	t.Run("UnparseableValuesFallBackToDefaults", func(t *testing.T) {
		clearPongEnv(t)
		os.Setenv("PONG_TICK_RATE", "not-a-number")
		os.Setenv("PONG_SEED", "-5")
		os.Setenv("PONG_MUTE", "definitely")

		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}

		if config.TickRate != 120 {
			t.Errorf("Expected default TickRate 120, got %d", config.TickRate)
		}
		if config.Seed != 0 {
			t.Errorf("Expected default Seed 0, got %d", config.Seed)
		}
		if config.Mute {
			t.Error("Expected default Mute false")
		}
	})

	t.Run("InvalidRendererRejected", func(t *testing.T) {
		clearPongEnv(t)
		os.Setenv("PONG_RENDERER", "vulkan")

		_, err := LoadConfigFromEnv()
		if err == nil {
			t.Fatal("Expected validation error for unknown renderer")
		}
	})
}

func TestValidateEnvironmentConfig(t *testing.T) {
	tests := []struct {
		name        string
		config      *EnvironmentConfig
		expectError bool
		errorField  string
	}{
		{
			name:        "ValidConfig",
			config:      createValidConfig(),
			expectError: false,
		},
		{
			name: "UnknownRenderer",
			config: func() *EnvironmentConfig {
				c := createValidConfig()
				c.Renderer = "holodeck"
				return c
			}(),
			expectError: true,
			errorField:  "Renderer",
		},
		{
			name: "TickRateTooLow",
			config: func() *EnvironmentConfig {
				c := createValidConfig()
				c.TickRate = 0
				return c
			}(),
			expectError: true,
			errorField:  "TickRate",
		},
		{
			name: "TickRateTooHigh",
			config: func() *EnvironmentConfig {
				c := createValidConfig()
				c.TickRate = 1001
				return c
			}(),
			expectError: true,
			errorField:  "TickRate",
		},
		{
			name: "FrameRateTooLow",
			config: func() *EnvironmentConfig {
				c := createValidConfig()
				c.FrameRate = 0
				return c
			}(),
			expectError: true,
			errorField:  "FrameRate",
		},
		{
			name: "WindowWidthTooSmall",
			config: func() *EnvironmentConfig {
				c := createValidConfig()
				c.WindowWidth = 100
				return c
			}(),
			expectError: true,
			errorField:  "WindowWidth",
		},
		{
			name: "WindowHeightTooLarge",
			config: func() *EnvironmentConfig {
				c := createValidConfig()
				c.WindowHeight = 10000
				return c
			}(),
			expectError: true,
			errorField:  "WindowHeight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEnvironmentConfig(tt.config)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected validation error, but got none")
				} else if validationErr, ok := err.(*ValidationError); ok {
					if validationErr.Field != tt.errorField {
						t.Errorf("Expected error for field '%s', got error for field '%s'", tt.errorField, validationErr.Field)
					}
				} else {
					t.Errorf("Expected ValidationError, got %T: %v", err, err)
				}
			} else {
				if err != nil {
					t.Errorf("Expected no validation error, but got: %v", err)
				}
			}
		})
	}
}

func TestGetEnvHelperFunctions(t *testing.T) {
	// Test getEnvOrDefault
	os.Setenv("TEST_STRING", "test_value")
	if result := getEnvOrDefault("TEST_STRING", "default"); result != "test_value" {
		t.Errorf("getEnvOrDefault: expected 'test_value', got '%s'", result)
	}
	if result := getEnvOrDefault("NONEXISTENT", "default"); result != "default" {
		t.Errorf("getEnvOrDefault: expected 'default', got '%s'", result)
	}
	os.Unsetenv("TEST_STRING")

	// Test getEnvAsIntOrDefault
	os.Setenv("TEST_INT", "42")
	if result := getEnvAsIntOrDefault("TEST_INT", 10); result != 42 {
		t.Errorf("getEnvAsIntOrDefault: expected 42, got %d", result)
	}
	if result := getEnvAsIntOrDefault("NONEXISTENT", 10); result != 10 {
		t.Errorf("getEnvAsIntOrDefault: expected 10, got %d", result)
	}
	os.Setenv("TEST_INT", "invalid")
	if result := getEnvAsIntOrDefault("TEST_INT", 10); result != 10 {
		t.Errorf("getEnvAsIntOrDefault with invalid value: expected 10, got %d", result)
	}
	os.Unsetenv("TEST_INT")

	// Test getEnvAsUintOrDefault
	os.Setenv("TEST_UINT", "99")
	if result := getEnvAsUintOrDefault("TEST_UINT", 7); result != 99 {
		t.Errorf("getEnvAsUintOrDefault: expected 99, got %d", result)
	}
	os.Setenv("TEST_UINT", "-1")
	if result := getEnvAsUintOrDefault("TEST_UINT", 7); result != 7 {
		t.Errorf("getEnvAsUintOrDefault with negative value: expected 7, got %d", result)
	}
	os.Unsetenv("TEST_UINT")

	// Test getEnvAsBoolOrDefault
	os.Setenv("TEST_BOOL", "true")
	if result := getEnvAsBoolOrDefault("TEST_BOOL", false); result != true {
		t.Errorf("getEnvAsBoolOrDefault: expected true, got %v", result)
	}
	if result := getEnvAsBoolOrDefault("NONEXISTENT", false); result != false {
		t.Errorf("getEnvAsBoolOrDefault: expected false, got %v", result)
	}
	os.Setenv("TEST_BOOL", "invalid")
	if result := getEnvAsBoolOrDefault("TEST_BOOL", false); result != false {
		t.Errorf("getEnvAsBoolOrDefault with invalid value: expected false, got %v", result)
	}
	os.Unsetenv("TEST_BOOL")
}
