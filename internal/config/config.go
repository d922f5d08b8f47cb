package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/BuzzLyutic/trello-export/internal/filter"
)

type Config struct {
	Port            string
	DefaultDataPath string
	LabelSeparator  string
	UnknownLabels   filter.UnknownLabelPolicy
	MaxUploadBytes  int64
	LogLevel        string
	LogFormat       string
}

// Load читает конфиг: дефолты -> config.toml (если есть) -> переменные окружения.
func Load() (Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, dir string) (Config, error) {
	v.SetDefault("port", "8080")
	v.SetDefault("default_data_path", "data/data.json")
	v.SetDefault("label_separator", ";")
	v.SetDefault("unknown_labels", "skip")
	v.SetDefault("max_upload_bytes", 10<<20)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	policy, err := filter.ParsePolicy(v.GetString("unknown_labels"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:            v.GetString("port"),
		DefaultDataPath: v.GetString("default_data_path"),
		LabelSeparator:  v.GetString("label_separator"),
		UnknownLabels:   policy,
		MaxUploadBytes:  v.GetInt64("max_upload_bytes"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
	}
	if cfg.MaxUploadBytes <= 0 {
		return Config{}, fmt.Errorf("max_upload_bytes must be positive, got %d", cfg.MaxUploadBytes)
	}
	return cfg, nil
}
