package extractor

import "fmt"

// ParseError indicates the input could not be parsed by the selected
// grammar. Extraction degrades gracefully: a ParseError for one file must
// not abort a multi-file operation upstream.
type ParseError struct {
	Message string
	Cause   error
	Grammar string // the grammar family that rejected the input
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error (%s): %s: %v", e.Grammar, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error (%s): %s", e.Grammar, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
