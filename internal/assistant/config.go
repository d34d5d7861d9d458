package assistant

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskCoach is the business-coaching prompt (reasoning model).
	TaskCoach TaskType = "coach"

	// TaskIdeas is the content-idea brainstorm (fast creative model).
	TaskIdeas TaskType = "ideas"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Model       string
	Temperature float64
	TopP        float64
	TimeoutMs   int
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	Endpoint  string
	APIKey    string
	LogCalls  bool
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with the production model assignments.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://generativelanguage.googleapis.com",
		TimeoutMs: 30000,
		Tasks: map[TaskType]TaskConfig{
			TaskCoach: {Model: "gemini-3-pro-preview", Temperature: 0.8, TopP: 0.95},
			TaskIdeas: {Model: "gemini-3-flash-preview", Temperature: 0.9},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("CHAYIL_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CHAYIL_AI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("CHAYIL_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("CHAYIL_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
