// Package redact removes sensitive details from strings before they are
// logged. SMTP and database errors routinely echo credentials, server
// addresses, visitor email addresses and file paths; none of that belongs in
// the application log.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	HostPlaceholder       = "[REDACTED_HOST]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; earlier rules consume text later rules would
// otherwise match (connection URLs before hosts, emails before hosts).
var rules = []rule{
	{regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|smtps?)://[^@\s]+@`), CredentialPlaceholder},
	{regexp.MustCompile(`(?i)\bAUTH\s+(?:PLAIN|LOGIN)\s+\S+`), CredentialPlaceholder},
	{regexp.MustCompile(`(?i)\b(?:password|passwd|pass|pwd|secret|token|api[_-]?key)\s*[=:]\s*[^\s&'"]+`), CredentialPlaceholder},
	{regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`), EmailPlaceholder},
	{regexp.MustCompile(`\b(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}:\d{1,5}\b`), HostPlaceholder},
	{regexp.MustCompile(`\b\d{1,3}(?:\.\d{1,3}){3}(?::\d{1,5})?\b`), HostPlaceholder},
	{regexp.MustCompile(`(?:/[\w.-]+){2,}`), PathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
