package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable except the SMTP ones.
const EnvPrefix = "PORTFOLIO"

// smtpEnv binds SMTP keys to the variable names the mail sender reads.
var smtpEnv = map[string]string{
	"host":     "SMTP_HOST",
	"port":     "SMTP_PORT",
	"secure":   "SMTP_SECURE",
	"user":     "SMTP_USER",
	"password": "SMTP_PASS",
	"from":     "CONTACT_EMAIL_FROM",
}

// Load reads configuration from environment variables and, optionally, a
// config file. When configFile is empty a file named config.{yaml,json,toml}
// in the working directory is used if present. Environment variables take
// precedence over file values.
// Returns a populated Config or an error if loading/validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	smtp, err := loadSMTP()
	if err != nil {
		return nil, err
	}
	cfg.SMTP = smtp

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers a default for every key so that Unmarshal picks up
// environment overrides for keys that appear in no config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("content.dir", "data")
	v.SetDefault("content.watch", false)
	v.SetDefault("content.debounce", "250ms")

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 5)
}

// loadSMTP reads the SMTP settings from the environment alone, using a viper
// instance that never sees the config file.
func loadSMTP() (SMTPConfig, error) {
	env := viper.New()
	for key, name := range smtpEnv {
		if err := env.BindEnv(key, name); err != nil {
			return SMTPConfig{}, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	return SMTPConfig{
		Host:     env.GetString("host"),
		Port:     env.GetString("port"),
		Secure:   env.GetString("secure"),
		User:     env.GetString("user"),
		Password: env.GetString("password"),
		From:     env.GetString("from"),
	}, nil
}
