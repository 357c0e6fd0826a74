package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError reports a missing or malformed provider credential.
// It is raised at resolve time, before any client is constructed.
type ConfigurationError struct {
	Provider string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("provider %s not configured: %s", e.Provider, e.Reason)
}

// ProviderError wraps a failure from the hosted completion endpoint.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s request failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsSoftFailure reports whether a provider failure looks like a quota or
// auth rejection rather than a hard outage. Best-effort substring check on
// the error text, nothing more.
func IsSoftFailure(err error) bool {
	var pErr *ProviderError
	if !errors.As(err, &pErr) {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "quota") ||
		strings.Contains(s, "401") ||
		strings.Contains(s, "429")
}
