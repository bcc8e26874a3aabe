package configuration

import (
	"os"
	"strings"

	"tombraider-hub/infrastructure/logger"

	"github.com/spf13/viper"
)

// LoadEnvFromFile loads KEY=VALUE pairs from one or more dotenv files
// (e.g. config.env, .env). Existing env vars are not overridden.
func LoadEnvFromFile(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		v := viper.New()
		v.SetConfigFile(p)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			logger.GetLogger().WithField("file", p).WithField("error", err).Warn("Failed to read env file")
			continue
		}
		for _, key := range v.AllKeys() {
			name := strings.ToUpper(key)
			if _, exists := os.LookupEnv(name); exists {
				continue
			}
			_ = os.Setenv(name, v.GetString(key))
		}
		logger.GetLogger().WithField("file", p).Info("Loaded env file")
	}
}
