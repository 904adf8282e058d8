// Package redact masks credentials, tokens, email addresses and file paths
// in strings before they are written to logs.
package redact

import (
	"regexp"
	"strings"
)

// Placeholders substituted for redacted content.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; earlier rules must not leave text that a
// later rule would mangle.
var rules = []rule{
	// userinfo of a connection string, e.g. mongodb+srv://user:pass@
	{regexp.MustCompile(`(?i)(mongodb(\+srv)?|smtps?)://[^@/\s]+@`), RedactedCredentialPlaceholder},
	// payment provider secret and restricted keys
	{regexp.MustCompile(`\b(sk|rk)_(live|test)_[A-Za-z0-9]{8,}`), RedactedKeyPlaceholder},
	// payment intent client secrets
	{regexp.MustCompile(`\bpi_[A-Za-z0-9]+_secret_[A-Za-z0-9]+`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/=-]+`), "Bearer " + RedactionPlaceholder},
	{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)(api[_-]?key|secret|token)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},
}

// String redacts sensitive information from the input string
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

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Email masks the local part of an address, keeping its first character and
// the domain so log lines stay correlatable: guest@example.com becomes
// g***@example.com.
func Email(addr string) string {
	if addr == "" {
		return ""
	}

	at := strings.LastIndex(addr, "@")
	if at <= 0 || at == len(addr)-1 {
		return RedactedEmailPlaceholder
	}
	return addr[:1] + "***" + addr[at:]
}
