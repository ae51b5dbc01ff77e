package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string `validate:"required,numeric"`
	IsProduction    bool
	LogLevel        string `validate:"oneof=debug info warn error"`
	LogFile         string
	ShutdownTimeout time.Duration `validate:"gt=0"`

	// Requirements ledger
	LedgerPath        string        `validate:"required"`
	LedgerSheet       string        `validate:"required,max=31"`
	LedgerLockTimeout time.Duration `validate:"gt=0"`

	// Materials catalog
	CatalogPath      string `validate:"required"`
	CatalogEncoding  string `validate:"oneof=utf-8 utf8 windows-1252 cp1252 iso-8859-1 latin1"`
	CatalogDelimiter rune

	// HTTP surface
	CORSAllowedOrigins []string `validate:"min=1,dive,required"`
	RateLimit          string   `validate:"required"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE", "server_log.log")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("LEDGER_PATH", "sya_logistica_requerimientos.xlsx")
	viper.SetDefault("LEDGER_SHEET", "Requerimientos")
	viper.SetDefault("LEDGER_LOCK_TIMEOUT", "10s")
	viper.SetDefault("CATALOG_PATH", "logistica_materiales.csv")
	viper.SetDefault("CATALOG_ENCODING", "utf-8")
	viper.SetDefault("CATALOG_DELIMITER", ",")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		LogLevel:     strings.ToLower(viper.GetString("LOG_LEVEL")),
		LogFile:      viper.GetString("LOG_FILE"),
		LedgerPath:   viper.GetString("LEDGER_PATH"),
		LedgerSheet:  viper.GetString("LEDGER_SHEET"),
		CatalogPath:  viper.GetString("CATALOG_PATH"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	cfg.ShutdownTimeout = durationOrDefault("SHUTDOWN_TIMEOUT", 15*time.Second)
	cfg.LedgerLockTimeout = durationOrDefault("LEDGER_LOCK_TIMEOUT", 10*time.Second)

	cfg.CatalogEncoding = strings.ToLower(viper.GetString("CATALOG_ENCODING"))
	delimiter := viper.GetString("CATALOG_DELIMITER")
	if len([]rune(delimiter)) != 1 {
		log.Printf("Warning: Invalid value for CATALOG_DELIMITER ('%s'). Defaulting to ','.\n", delimiter)
		delimiter = ","
	}
	cfg.CatalogDelimiter = []rune(delimiter)[0]

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// durationOrDefault parses a duration key, falling back to def when the value is not a valid duration.
func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
