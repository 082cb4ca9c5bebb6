package lexishift

// Scope selects which syntactic categories participate in a translation call.
// It is a pure configuration value compared by field equality.
type Scope struct {
	Identifiers    bool // user-defined names (variables, functions, types, ...)
	Comments       bool // line, block and doc comments
	StringLiterals bool // human-readable string literal contents
	Keywords       bool // reserved words, for languages with a keyword table
	Punctuation    bool // ASCII↔full-width punctuation transliteration
	MarkdownFiles  bool // prose blocks in Markdown documents
}

// Named scope presets.
var (
	// ScopeDefault translates identifiers and comments, the safe core set.
	ScopeDefault = Scope{Identifiers: true, Comments: true}

	// ScopeEverything enables every category, including the display-only
	// keyword and punctuation passes.
	ScopeEverything = Scope{
		Identifiers:    true,
		Comments:       true,
		StringLiterals: true,
		Keywords:       true,
		Punctuation:    true,
		MarkdownFiles:  true,
	}

	// ScopeCommentsOnly leaves all code tokens untouched.
	ScopeCommentsOnly = Scope{Comments: true}

	// ScopeIdentifiersOnly leaves comment and string text untouched.
	ScopeIdentifiersOnly = Scope{Identifiers: true}
)

// Result is the outcome of one translation call. It is produced fresh per
// call and immutable once returned.
type Result struct {
	// Code is the rewritten source text.
	Code string

	// TranslatedTokens lists the original spellings of every identifier that
	// was successfully translated, sorted and deduplicated.
	TranslatedTokens []string

	// UnmappedTokens lists identifiers that had no dictionary entry and were
	// left verbatim. Informational, not an error.
	UnmappedTokens []string
}

// Replacement describes one textual substitution: the half-open byte range
// [Start, End) of the original text is replaced by New. Old carries the
// original slice for diagnostics and round-trip checks.
type Replacement struct {
	Start int
	End   int
	New   string
	Old   string
}
