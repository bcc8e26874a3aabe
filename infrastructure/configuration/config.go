package configuration

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"tombraider-hub/infrastructure/logger"

	"github.com/spf13/viper"
)

const (
	DefaultPort           = 10001
	DefaultCacheTTL       = 24 * time.Hour
	DefaultSweepSchedule  = "@every 1h"
	DefaultRequestTimeout = 15 * time.Second
	// DefaultCacheVersion prefixes every cache key. Bump it to orphan all
	// previously stored entries after a change to the Video shape.
	DefaultCacheVersion = "v3"
)

type Config struct {
	App     App     `json:"app"`
	YouTube YouTube `json:"youtube"`
	Cache   Cache   `json:"cache"`
	Logger  Logger  `json:"logger"`
	Cors    Cors    `json:"cors"`
}

type App struct {
	Port        int    `json:"port"`
	AdminToken  string `json:"adminToken"`
	TLSEnabled  bool   `json:"tlsEnabled"`
	TLSCertFile string `json:"tlsCertFile"`
	TLSKeyFile  string `json:"tlsKeyFile"`
}

type YouTube struct {
	APIKey         string        `json:"apiKey"`
	ChannelID      string        `json:"channelId"`
	RequestTimeout time.Duration `json:"requestTimeout"`
	// Endpoint overrides the API base path; empty means the public API.
	Endpoint string `json:"endpoint"`
}

type Cache struct {
	TTL           time.Duration `json:"ttl"`
	SweepSchedule string        `json:"sweepSchedule"`
	Version       string        `json:"version"`
}

type Logger struct {
	Level string `json:"level"`
}

type Cors struct {
	AllowOrigins []string `json:"allowOrigins"`
}

var C Config

func init() {
	LoadEnvFromFile("config.env", ".env")
	LoadConfig()
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	C = Decode(viper.GetViper())
}

// Decode unmarshals v into a Config and applies env overrides and defaults.
func Decode(v *viper.Viper) Config {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	initApp(&cfg)
	initYouTube(&cfg)
	initCache(&cfg)
	logger.SetLevel(cfg.Logger.Level)
	return cfg
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initApp(c *Config) {
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		c.App.AdminToken = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.App.Port = p
		}
	}
	if c.App.Port == 0 {
		c.App.Port = DefaultPort
	}
	if v := os.Getenv("TLS_ENABLED"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			c.App.TLSEnabled = true
		case "0", "false", "FALSE", "False":
			c.App.TLSEnabled = false
		}
	}
	if c.App.TLSCertFile == "" {
		c.App.TLSCertFile = os.Getenv("TLS_CERT_FILE")
	}
	if c.App.TLSKeyFile == "" {
		c.App.TLSKeyFile = os.Getenv("TLS_KEY_FILE")
	}
	if c.App.AdminToken == "" {
		logger.GetLogger().Warn("App.AdminToken not set; cache admin endpoints are unprotected")
	}
}

func initYouTube(c *Config) {
	c.YouTube.APIKey = getConfigValue(c.YouTube.APIKey, "YOUTUBE_API_KEY", "")
	c.YouTube.ChannelID = getConfigValue(c.YouTube.ChannelID, "YOUTUBE_CHANNEL_ID", "")
	if c.YouTube.RequestTimeout <= 0 {
		c.YouTube.RequestTimeout = DefaultRequestTimeout
	}
}

func initCache(c *Config) {
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.SweepSchedule == "" {
		c.Cache.SweepSchedule = DefaultSweepSchedule
	}
	if c.Cache.Version == "" {
		c.Cache.Version = DefaultCacheVersion
	}
}
