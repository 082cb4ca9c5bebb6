package lexishift

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/lexishift/lexishift/extractor"
)

// TermSource resolves identifiers and comment texts between languages. It is
// the engine's view of the hub dictionary; *dictionary.MultiLanguage is the
// canonical implementation.
type TermSource interface {
	// Translate resolves a term between two languages through the pivot.
	Translate(term, from, to string) (string, bool)
	// TranslateComment resolves a comment or prose text by content hash.
	TranslateComment(text, from, to string) (string, bool)
	// HasTermInLanguage reports whether the term is a known spelling in the
	// given language.
	HasTermInLanguage(term, lang string) bool
}

// TranslationCache caches whole-file translation results, keyed by
// ResultCacheKey. Implementations must be safe for concurrent use.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Engine is the translation engine. It is stateless across calls: every
// Translate call produces a fresh Result, so one Engine may serve concurrent
// calls as long as its TermSource is not mutated underneath it.
type Engine struct {
	terms  TermSource
	scope  Scope
	cache  TranslationCache
	strict bool
}

// Option is a functional option for configuring the Engine.
type Option func(*Engine)

// WithScope sets the translation scope. The default is ScopeDefault.
func WithScope(scope Scope) Option {
	return func(e *Engine) {
		e.scope = scope
	}
}

// WithCache sets the result cache.
func WithCache(cache TranslationCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithStrictMode makes an unmapped identifier that is already a known
// spelling in the target language a hard error instead of a skip.
func WithStrictMode(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// New creates an Engine over the given term source.
func New(terms TermSource, opts ...Option) *Engine {
	e := &Engine{
		terms: terms,
		scope: ScopeDefault,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scope returns the engine's translation scope.
func (e *Engine) Scope() Scope {
	return e.scope
}

// Translate rewrites code between two languages using the default grammar.
func (e *Engine) Translate(code string, source, target LanguageCode) (*Result, error) {
	return e.TranslateFile("", code, source, target)
}

// TranslateFile rewrites code between two languages, selecting the grammar
// by the file name's extension. Unknown extensions fall back to the ts-like
// grammar; Markdown files take the prose path.
func (e *Engine) TranslateFile(name, code string, source, target LanguageCode) (*Result, error) {
	src := NormalizeLanguage(source)
	tgt := NormalizeLanguage(target)

	// Identity: same language on both sides is always a byte-exact no-op.
	if src == tgt {
		return &Result{Code: code}, nil
	}

	if e.cache != nil {
		if raw, ok := e.cache.Get(ResultCacheKey(code, src, tgt, e.scope)); ok {
			var cached Result
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var result *Result
	var err error
	if extractor.IsMarkdownPath(name) {
		result, err = e.translateMarkdown(code, src, tgt)
	} else {
		result, err = e.translateCode(name, code, src, tgt)
	}
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if raw, jsonErr := json.Marshal(result); jsonErr == nil {
			// A failed cache write never fails the translation.
			_ = e.cache.Set(ResultCacheKey(code, src, tgt, e.scope), string(raw))
		}
	}
	return result, nil
}

// translateCode runs the position-based passes (identifiers, comments,
// strings) against the original offsets in one coordinated apply, then the
// lexical keyword and punctuation passes over the rewritten text.
func (e *Engine) translateCode(name, code string, src, tgt LanguageCode) (*Result, error) {
	ext, ok := extractor.ForPath(name)
	if !ok {
		ext = extractor.NewTSLike()
	}
	extraction, err := ext.Extract(code)
	if err != nil {
		return nil, err
	}

	arena := newArena()
	translated := make(map[string]bool)
	unmapped := make(map[string]bool)

	if e.scope.Identifiers {
		// Lookups are memoized per spelling; every occurrence of a mapped
		// name gets its own replacement record.
		memo := make(map[string]string)
		for _, tok := range extraction.Identifiers {
			repl, seen := memo[tok.Name]
			if !seen {
				repl = ""
				found, mapped := e.terms.Translate(tok.Name, string(src), string(tgt))
				switch {
				case mapped && found != tok.Name:
					repl = found
				case mapped:
					// Identity mapping: nothing to rewrite.
				default:
					if e.strict && e.terms.HasTermInLanguage(tok.Name, string(tgt)) {
						return nil, &StrictModeError{Term: tok.Name, SourceLang: src, TargetLang: tgt}
					}
					if !ext.IsBuiltin(tok.Name) && len([]rune(tok.Name)) > 1 {
						unmapped[tok.Name] = true
					}
				}
				memo[tok.Name] = repl
			}
			if repl != "" {
				arena.add(tok.Start, tok.End, repl, tok.Name)
				translated[tok.Name] = true
			}
		}
	}

	if e.scope.Comments {
		for _, c := range extraction.Comments {
			text := strings.TrimSpace(c.Text)
			if text == "" {
				continue
			}
			found, mapped := e.terms.TranslateComment(text, string(src), string(tgt))
			if !mapped || found == text {
				continue
			}
			arena.add(c.Start, c.End, rebuildComment(code, c, found), c.Raw)
		}
	}

	if e.scope.StringLiterals {
		for _, lit := range extraction.Strings {
			start, end, rewritable := literalInterior(code, lit)
			if !rewritable {
				continue
			}
			value := code[start:end]
			if !isTranslatableString(value) {
				continue
			}
			found, mapped := e.terms.TranslateComment(strings.TrimSpace(value), string(src), string(tgt))
			if !mapped || found == strings.TrimSpace(value) {
				continue
			}
			arena.add(start, end, preserveEdges(value, found), value)
		}
	}

	out, err := arena.apply(code)
	if err != nil {
		return nil, err
	}

	if e.scope.Keywords {
		out = translateKeywords(out, src, tgt)
	}
	if e.scope.Punctuation {
		out = translatePunctuation(out, src, tgt)
	}

	return &Result{
		Code:             out,
		TranslatedTokens: sortedKeys(translated),
		UnmappedTokens:   sortedKeys(unmapped),
	}, nil
}

// translateMarkdown rewrites the prose blocks of a Markdown document through
// the comment-text tables. Untranslated blocks stay verbatim.
func (e *Engine) translateMarkdown(code string, src, tgt LanguageCode) (*Result, error) {
	out := code
	if e.scope.MarkdownFiles {
		arena := newArena()
		for _, block := range extractor.NewMarkdown().Blocks(code) {
			found, mapped := e.terms.TranslateComment(block.Text, string(src), string(tgt))
			if !mapped || found == block.Text {
				continue
			}
			arena.add(block.Start, block.End, found, block.Text)
		}
		var err error
		out, err = arena.apply(code)
		if err != nil {
			return nil, err
		}
	}
	if e.scope.Punctuation {
		out = translatePunctuation(out, src, tgt)
	}
	return &Result{Code: out}, nil
}

// literalInterior returns the rewritable byte range of a string literal:
// the contents between the quotes, or the whole span for unquoted template
// text. Raw and unterminated literals are not rewritable.
func literalInterior(code string, lit extractor.StringLiteral) (int, int, bool) {
	if lit.Quote == 0 {
		return lit.Start, lit.End, true
	}
	switch lit.Quote {
	case '"', '\'', '`':
	default:
		return 0, 0, false
	}
	if lit.Start < 0 || lit.End > len(code) {
		return 0, 0, false
	}
	start, end := lit.Start+1, lit.End-1
	if start > end || code[lit.Start] != lit.Quote || code[end] != lit.Quote {
		return 0, 0, false
	}
	return start, end, true
}

// preserveEdges keeps the original leading and trailing whitespace around
// the translated text.
func preserveEdges(original, translated string) string {
	leading := original[:len(original)-len(strings.TrimLeft(original, " \t\n\r"))]
	trailing := original[len(strings.TrimRight(original, " \t\n\r")):]
	return leading + translated + trailing
}

// rebuildComment re-renders one comment span with the translated text,
// preserving the delimiter style and the line indentation of the original.
func rebuildComment(code string, c extractor.Comment, translated string) string {
	indent := lineIndent(code, c.Start)
	lines := strings.Split(translated, "\n")

	if strings.HasPrefix(c.Raw, "<!--") {
		if len(lines) == 1 && !strings.Contains(c.Raw, "\n") {
			return "<!-- " + translated + " -->"
		}
		return "<!--\n" + indent + "  " + strings.Join(lines, "\n"+indent+"  ") + "\n" + indent + "-->"
	}

	if c.Kind == extractor.CommentLine {
		marker := lineMarker(c.Raw)
		for i, l := range lines {
			if i == 0 {
				lines[i] = marker + " " + l
			} else {
				lines[i] = indent + marker + " " + l
			}
		}
		return strings.Join(lines, "\n")
	}

	open := "/*"
	if c.Doc {
		open = "/**"
	}
	if len(lines) == 1 && !strings.Contains(c.Raw, "\n") {
		return open + " " + translated + " */"
	}

	var b strings.Builder
	b.WriteString(open)
	for _, l := range lines {
		b.WriteString("\n" + indent + " *")
		if l != "" {
			b.WriteString(" " + l)
		}
	}
	b.WriteString("\n" + indent + " */")
	return b.String()
}

// lineMarker returns the line-comment marker of the raw comment, doc markers
// included.
func lineMarker(raw string) string {
	for _, m := range []string{"//!", "///", "//"} {
		if strings.HasPrefix(raw, m) {
			return m
		}
	}
	return "//"
}

// lineIndent returns the whitespace prefix of the line the offset sits on.
// For a trailing comment that follows code on its line, the code is blanked
// out (tabs kept, so tab-indented lines still align) and continuation lines
// land under the comment's own start column.
func lineIndent(code string, start int) string {
	lineStart := strings.LastIndexByte(code[:start], '\n') + 1
	prefix := code[lineStart:start]
	if strings.TrimSpace(prefix) == "" {
		return prefix
	}
	blanked := []rune(prefix)
	for i, r := range blanked {
		if r != '\t' {
			blanked[i] = ' '
		}
	}
	return string(blanked)
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
