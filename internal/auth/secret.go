// Package auth implements the shared-secret admin gate.
package auth

import (
	"log/slog"

	"github.com/spf13/viper"
)

const secretsKey = "admin_password"

// ResolveSecret returns the admin secret, preferring a deployment-provided
// secrets file over the value resolved from the environment (or its
// hardcoded fallback).
func ResolveSecret(secretsFile, envValue string, logger *slog.Logger) string {
	if secretsFile == "" {
		return envValue
	}
	v := viper.New()
	v.SetConfigFile(secretsFile)
	if err := v.ReadInConfig(); err != nil {
		logger.Warn("secrets file unreadable, falling back to environment", "path", secretsFile, "error", err)
		return envValue
	}
	if !v.IsSet(secretsKey) {
		return envValue
	}
	return v.GetString(secretsKey)
}
