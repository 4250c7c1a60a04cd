package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Content  ContentConfig  `mapstructure:"content"  validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	SMTP     SMTPConfig     `mapstructure:"-"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// ContentConfig points at the JSON content files rendered by the site.
type ContentConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
	// Watch reloads content when files in Dir change. Meant for local editing.
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce" validate:"gt=0"`
}

// DatabaseConfig configures the optional contact submission archive.
// An empty URL disables archiving.
type DatabaseConfig struct {
	URL          string `mapstructure:"url"            validate:"omitempty,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
}

// Enabled reports whether a database has been configured.
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// SMTPConfig mirrors the SMTP environment variables. The mail sender reads
// the environment itself at send time, so these values come from the
// environment only and config file entries under "smtp" are ignored. They are
// used to report at startup whether mail delivery is configured.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Secure   string `mapstructure:"secure"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Configured reports whether every required SMTP value is present.
func (s SMTPConfig) Configured() bool {
	return s.Host != "" && s.Port != "" && s.User != "" && s.Password != "" && s.From != ""
}
