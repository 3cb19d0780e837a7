package config

import (
	"os"
	"path/filepath"
	"strings"
)

// PathIn returns the config file path for a project root.
func PathIn(projectRoot string) string {
	return filepath.Join(projectRoot, FileName)
}

// EnvNonInteractive returns true if AI_TAO_NON_INTERACTIVE is set to "1" or "true".
func EnvNonInteractive() bool {
	return envBoolTrue("AI_TAO_NON_INTERACTIVE")
}

// EnvNoColor returns true if NO_COLOR is set to any non-empty value.
func EnvNoColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// envBoolTrue returns true if the env var is set to "1" or "true" (case-insensitive).
func envBoolTrue(key string) bool {
	v := os.Getenv(key)
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "1" || v == "true"
}
