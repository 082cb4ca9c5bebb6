package lexishift

import "fmt"

// DictionaryError indicates a malformed dictionary: missing required fields
// or an undecodable persisted form. Rejected on load, never silently coerced.
type DictionaryError struct {
	Message string
	Cause   error
	Origin  string // dictionary origin, when known
}

func (e *DictionaryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dictionary error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("dictionary error: %s", e.Message)
}

func (e *DictionaryError) Unwrap() error {
	return e.Cause
}

// StrictModeError is returned when strict mode finds an unmapped identifier
// that exists in the opposite lookup direction, implying an expected but
// missing mapping. It terminates the single translation call it arose in.
type StrictModeError struct {
	Term       string
	SourceLang LanguageCode
	TargetLang LanguageCode
}

func (e *StrictModeError) Error() string {
	return fmt.Sprintf("strict mode: %q has no %s→%s mapping but exists in the reverse direction",
		e.Term, e.SourceLang, e.TargetLang)
}

// ProviderError indicates a failure in the external translator service
// (API error, rate limit, malformed response).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // whether the operation can be retried
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// CountMismatchError indicates the external translator returned a different
// number of translations than requested.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("translation count mismatch: expected %d, got %d", e.Expected, e.Got)
}
