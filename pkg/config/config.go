// Package config holds typed runtime configuration for the orchestrator.
// Values come from environment variables (a .env file is loaded by main);
// every knob has a production default so a bare environment still boots.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the top-level runtime configuration.
type Config struct {
	HTTPPort string
	Loop     LoopConfig
	Tools    ToolConfig
	Context  ContextConfig
	Planner  PlannerConfig
}

// LoopConfig bounds the agent loop.
type LoopConfig struct {
	// StepLimit is the maximum number of planner iterations per turn.
	StepLimit int
	// MaxInvalidRetries bounds consecutive invalid planner outputs.
	MaxInvalidRetries int
	// MaxToolFailures is the per-tool failure circuit breaker threshold.
	MaxToolFailures int
	// RepeatSuccessWindow is the number of trailing identical successful
	// tool signatures that trips the repeat-success breaker.
	RepeatSuccessWindow int
	// TurnTimeout is the absolute cap on one turn.
	TurnTimeout time.Duration
}

// ToolConfig carries the default runner policies.
type ToolConfig struct {
	MaxAttempts       int
	BackoffBase       time.Duration
	BackoffMultiplier float64
	BackoffJitter     time.Duration
	StartTimeout      time.Duration
	IdleTimeout       time.Duration
	HardTimeout       time.Duration
	// Capabilities are the deployment-wide capability flags applied to turns
	// whose request carries none.
	Capabilities []string
}

// ContextConfig bounds the context hub.
type ContextConfig struct {
	// MaxInstructionsInContext caps instructions sent to the planner.
	MaxInstructionsInContext int
	// ObservationsMax caps the warm observations section.
	ObservationsMax int
	// ObservationsRendered caps observations included in a rendered prompt.
	ObservationsRendered int
	// MessagesMaxChars truncates the rendered conversation history.
	MessagesMaxChars int
	// SchemaSampleTables is the number of top-ranked tables rendered fully.
	SchemaSampleTables int
	// SchemaIndexLimit caps the compact table-name index per data source.
	SchemaIndexLimit int
}

// PlannerConfig configures the planner driver and token accounting.
type PlannerConfig struct {
	DefaultModel string
	// StreamThrottleChars is the minimum delta size before a decision.partial
	// event is emitted mid-stream.
	StreamThrottleChars int
	// StreamThrottleInterval forces an emit after this much time even for
	// small deltas.
	StreamThrottleInterval time.Duration
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		Loop: LoopConfig{
			StepLimit:           getEnvInt("AGENT_STEP_LIMIT", 10),
			MaxInvalidRetries:   getEnvInt("AGENT_MAX_INVALID_RETRIES", 2),
			MaxToolFailures:     getEnvInt("AGENT_MAX_TOOL_FAILURES", 3),
			RepeatSuccessWindow: 2,
			TurnTimeout:         getEnvDuration("AGENT_TURN_TIMEOUT", 10*time.Minute),
		},
		Tools: ToolConfig{
			MaxAttempts:       getEnvInt("TOOL_MAX_ATTEMPTS", 2),
			BackoffBase:       getEnvDuration("TOOL_BACKOFF_BASE", 500*time.Millisecond),
			BackoffMultiplier: 2.0,
			BackoffJitter:     200 * time.Millisecond,
			StartTimeout:      getEnvDuration("TOOL_START_TIMEOUT", 5*time.Second),
			IdleTimeout:       getEnvDuration("TOOL_IDLE_TIMEOUT", 30*time.Second),
			HardTimeout:       getEnvDuration("TOOL_HARD_TIMEOUT", 120*time.Second),
			Capabilities:      getEnvList("TOOL_CAPABILITIES"),
		},
		Context: ContextConfig{
			MaxInstructionsInContext: getEnvInt("CONTEXT_MAX_INSTRUCTIONS", 50),
			ObservationsMax:          8,
			ObservationsRendered:     5,
			MessagesMaxChars:         8000,
			SchemaSampleTables:       getEnvInt("CONTEXT_SCHEMA_SAMPLE_TABLES", 10),
			SchemaIndexLimit:         getEnvInt("CONTEXT_SCHEMA_INDEX_LIMIT", 100),
		},
		Planner: PlannerConfig{
			DefaultModel:           getEnv("PLANNER_DEFAULT_MODEL", "gpt-4o"),
			StreamThrottleChars:    getEnvInt("PLANNER_STREAM_THROTTLE_CHARS", 24),
			StreamThrottleInterval: getEnvDuration("PLANNER_STREAM_THROTTLE_INTERVAL", 250*time.Millisecond),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
