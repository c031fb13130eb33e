package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Transcription backend selectors. The backend is fixed for the process
// lifetime; it is not request-controllable.
const (
	BackendAssemblyAI = "assemblyai"
	BackendDeepgram   = "deepgram"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	Transcription TranscriptionConfig
	AssemblyAI    AssemblyAIConfig
	Deepgram      DeepgramConfig
	Gemini        GeminiConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// TranscriptionConfig selects the speech-to-text backend and the directory for
// temporary audio uploads.
type TranscriptionConfig struct {
	Backend   string
	UploadDir string
}

// AssemblyAIConfig holds AssemblyAI credentials
type AssemblyAIConfig struct {
	APIKey string
}

// DeepgramConfig holds Deepgram credentials. BaseURL is overridable so tests
// can point the client at a local server.
type DeepgramConfig struct {
	APIKey  string
	BaseURL string
}

// GeminiConfig holds the generative backend credentials and model identifier
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Transcription: TranscriptionConfig{
			Backend:   getEnv("TRANSCRIPTION_BACKEND", BackendAssemblyAI),
			UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		},
		AssemblyAI: AssemblyAIConfig{
			APIKey: getEnv("ASSEMBLYAI_API_KEY", ""),
		},
		Deepgram: DeepgramConfig{
			APIKey:  getEnv("DEEPGRAM_API_KEY", ""),
			BaseURL: getEnv("DEEPGRAM_BASE_URL", "https://api.deepgram.com"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. A missing credential for the selected
// backend is startup-fatal, not a per-request error.
func (c *Config) Validate() error {
	switch c.Transcription.Backend {
	case BackendAssemblyAI:
		if c.AssemblyAI.APIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required when TRANSCRIPTION_BACKEND=%s", BackendAssemblyAI)
		}
	case BackendDeepgram:
		if c.Deepgram.APIKey == "" {
			return fmt.Errorf("DEEPGRAM_API_KEY is required when TRANSCRIPTION_BACKEND=%s", BackendDeepgram)
		}
	default:
		return fmt.Errorf("unknown TRANSCRIPTION_BACKEND %q (expected %q or %q)",
			c.Transcription.Backend, BackendAssemblyAI, BackendDeepgram)
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
