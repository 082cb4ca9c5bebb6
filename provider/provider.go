// Package provider supplies translation backends used to mint new
// dictionary entries for terms and comments with no mapping yet. The engine
// itself never calls a provider; providers feed the dictionary offline.
package provider

import (
	"context"

	"github.com/lexishift/lexishift"
)

// Kind tells the backend what it is translating, so identifiers keep their
// casing convention and comments read as prose.
type Kind string

const (
	KindIdentifier Kind = "identifier"
	KindComment    Kind = "comment"
)

// Request is one batch translation request.
type Request struct {
	Texts      []string
	Kind       Kind
	SourceLang lexishift.LanguageCode
	TargetLang lexishift.LanguageCode
	// Context describes the codebase, to disambiguate domain terms.
	Context string
	// Glossary pins preferred translations for specific terms.
	Glossary map[string]string
}

// Translator is the backend contract. Implementations must return exactly
// one translation per input text, in input order.
type Translator interface {
	Translate(ctx context.Context, req Request) ([]string, error)
}
