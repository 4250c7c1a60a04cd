package mail

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by LoadConfig.
const (
	EnvHost   = "SMTP_HOST"
	EnvPort   = "SMTP_PORT"
	EnvSecure = "SMTP_SECURE"
	EnvUser   = "SMTP_USER"
	EnvPass   = "SMTP_PASS"
	EnvFrom   = "CONTACT_EMAIL_FROM"
)

// DefaultPort is used when SMTP_PORT is not a number.
const DefaultPort = 587

var requiredEnv = []string{EnvHost, EnvPort, EnvUser, EnvPass, EnvFrom}

// Config holds the SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS (usually port 465)
	User     string
	Password string
	From     string
}

// MissingConfigError lists every required variable that was unset or empty.
type MissingConfigError struct {
	Vars []string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Vars, ", "))
}

// LoadConfig reads the SMTP settings through getenv, normally os.Getenv.
func LoadConfig(getenv func(string) string) (Config, error) {
	var missing []string
	for _, name := range requiredEnv {
		if strings.TrimSpace(getenv(name)) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Config{}, &MissingConfigError{Vars: missing}
	}

	port, err := strconv.Atoi(strings.TrimSpace(getenv(EnvPort)))
	if err != nil || port <= 0 {
		port = DefaultPort
	}

	return Config{
		Host:     getenv(EnvHost),
		Port:     port,
		Secure:   getenv(EnvSecure) == "true",
		User:     getenv(EnvUser),
		Password: getenv(EnvPass),
		From:     getenv(EnvFrom),
	}, nil
}
