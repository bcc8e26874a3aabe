package configuration

import (
	"os"
	"strings"
)

// HasAPIKey reports whether a usable YouTube Data API key is configured.
// Placeholder values copied from the sample config do not count.
func (y YouTube) HasAPIKey() bool {
	return y.APIKey != "" && !strings.HasPrefix(y.APIKey, "YOUR_")
}

// getConfigValue gets value from environment first, then config, then default
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	// Otherwise use config value if set and not a placeholder
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
