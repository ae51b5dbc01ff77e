package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DesktopConfig holds the configuration of the desktop retrieval utility.
type DesktopConfig struct {
	ServerURL      string        `validate:"required,url"`
	DownloadDir    string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gt=0"`
}

// RegisterDesktopFlags declares the utility's flags on fs.
func RegisterDesktopFlags(fs *pflag.FlagSet) {
	fs.String("server-url", "http://127.0.0.1:5000", "base URL of the requirements server")
	fs.String("download-dir", "descargas", "directory receiving downloaded ledgers")
	fs.Duration("request-timeout", 30*time.Second, "timeout of each request")
}

// LoadDesktopConfig resolves flags, environment (SERVER_URL, DOWNLOAD_DIR, REQUEST_TIMEOUT)
// and .env, in that order of precedence.
func LoadDesktopConfig(fs *pflag.FlagSet) (*DesktopConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for key, flag := range map[string]string{
		"SERVER_URL":      "server-url",
		"DOWNLOAD_DIR":    "download-dir",
		"REQUEST_TIMEOUT": "request-timeout",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	cfg := &DesktopConfig{
		ServerURL:      v.GetString("SERVER_URL"),
		DownloadDir:    v.GetString("DOWNLOAD_DIR"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
