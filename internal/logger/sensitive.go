package logger

import (
	"regexp"
	"strings"
)

const redactedValue = "[REDACTED]"

// sensitiveDataPatterns match credentials embedded in free-form strings
var sensitiveDataPatterns = []*regexp.Regexp{
	// Basic and bearer authorization headers
	regexp.MustCompile(`(?i)((?:basic|bearer)\s+)([A-Za-z0-9\-._~+/]+=*)`),
	// key=value style secrets
	regexp.MustCompile(`(?i)((?:passw(?:or)?d|secret|token|api[_-]?key)[\s:=]+)([^;,\s]+)`),
	// bcrypt hashes
	regexp.MustCompile(`()(\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53})`),
}

// sensitiveKeywords mark field keys whose values are never written
var sensitiveKeywords = []string{
	"password", "passwd", "secret", "token", "authorization", "hash", "dsn",
}

// RedactSensitiveData replaces credentials in input with "[REDACTED]".
func RedactSensitiveData(input string) string {
	if input == "" {
		return input
	}
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAllString(input, "${1}"+redactedValue)
	}
	return input
}

func isSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(keyLower, keyword) {
			return true
		}
	}
	return false
}
