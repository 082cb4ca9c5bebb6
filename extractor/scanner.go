package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenKind classifies scanner output.
type tokenKind int

const (
	tokIdent tokenKind = iota
	tokString
	tokComment
	tokPunct
)

// lexToken is one lexical unit with its exact byte range.
type lexToken struct {
	kind  tokenKind
	start int
	end   int
	text  string
	line  int
}

// scanGrammar parameterizes the scanner per grammar family.
type scanGrammar struct {
	// lineComments lists line-comment markers, longest first, so doc
	// markers ("///", "//!") win over the plain marker ("//").
	lineComments []string
	blockOpen    string
	blockClose   string
	// nestedBlocks enables depth-counted block comments (Rust).
	nestedBlocks bool
	// quotes lists string delimiters. Backslash escapes are honored inside
	// all of them; only multiline quotes may span lines.
	quotes    []byte
	multiline map[byte]bool
	// rawStrings enables Rust r"..." / r#"..."# literals.
	rawStrings bool
}

// scan tokenizes src into identifier, string, comment and punctuation
// tokens. It never fails: unterminated strings and comments extend to the
// end of the line or file. Whitespace is skipped but line numbers are kept
// exact, including inside multi-line tokens.
func scan(src string, g scanGrammar) []lexToken {
	var tokens []lexToken
	line := 1
	i := 0

	countLines := func(s string) {
		line += strings.Count(s, "\n")
	}

	for i < len(src) {
		c := src[i]

		if c == '\n' {
			line++
			i++
			continue
		}
		if c == ' ' || c == '\t' || c == '\r' {
			i++
			continue
		}

		// Line comments.
		if marker := matchLineComment(src[i:], g.lineComments); marker != "" {
			end := i + strings.IndexByte(src[i:], '\n')
			if end < i {
				end = len(src)
			}
			tokens = append(tokens, lexToken{tokComment, i, end, src[i:end], line})
			i = end
			continue
		}

		// Block comments.
		if g.blockOpen != "" && strings.HasPrefix(src[i:], g.blockOpen) {
			end := scanBlockComment(src, i, g)
			tokens = append(tokens, lexToken{tokComment, i, end, src[i:end], line})
			countLines(src[i:end])
			i = end
			continue
		}

		// Raw strings (ownership grammar).
		if g.rawStrings && c == 'r' {
			if end, ok := scanRawString(src, i); ok {
				tokens = append(tokens, lexToken{tokString, i, end, src[i:end], line})
				countLines(src[i:end])
				i = end
				continue
			}
		}

		// Quoted strings.
		if isQuote(c, g.quotes) {
			end := scanQuoted(src, i, c, g.multiline[c])
			tokens = append(tokens, lexToken{tokString, i, end, src[i:end], line})
			countLines(src[i:end])
			i = end
			continue
		}

		// Identifiers, including non-ASCII spellings of already-translated
		// names.
		r, size := utf8.DecodeRuneInString(src[i:])
		if isIdentStart(r) {
			end := i + size
			for end < len(src) {
				r2, s2 := utf8.DecodeRuneInString(src[end:])
				if !isIdentRune(r2) {
					break
				}
				end += s2
			}
			tokens = append(tokens, lexToken{tokIdent, i, end, src[i:end], line})
			i = end
			continue
		}

		tokens = append(tokens, lexToken{tokPunct, i, i + size, src[i : i+size], line})
		i += size
	}

	return tokens
}

func matchLineComment(s string, markers []string) string {
	for _, m := range markers {
		if strings.HasPrefix(s, m) {
			return m
		}
	}
	return ""
}

func scanBlockComment(src string, start int, g scanGrammar) int {
	i := start + len(g.blockOpen)
	depth := 1
	for i < len(src) {
		if g.nestedBlocks && strings.HasPrefix(src[i:], g.blockOpen) {
			depth++
			i += len(g.blockOpen)
			continue
		}
		if strings.HasPrefix(src[i:], g.blockClose) {
			depth--
			i += len(g.blockClose)
			if depth == 0 {
				return i
			}
			continue
		}
		i++
	}
	return len(src)
}

func scanQuoted(src string, start int, quote byte, multiline bool) int {
	i := start + 1
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		case '\n':
			if !multiline {
				return i // unterminated: stop at the line break
			}
		}
		i++
	}
	return len(src)
}

// scanRawString matches r"..." and r#..."..."#... literals starting at i.
func scanRawString(src string, start int) (int, bool) {
	i := start + 1
	hashes := 0
	for i < len(src) && src[i] == '#' {
		hashes++
		i++
	}
	if i >= len(src) || src[i] != '"' {
		return 0, false
	}
	i++
	closer := `"` + strings.Repeat("#", hashes)
	for i < len(src) {
		if strings.HasPrefix(src[i:], closer) {
			return i + len(closer), true
		}
		i++
	}
	return len(src), true
}

func isQuote(c byte, quotes []byte) bool {
	for _, q := range quotes {
		if c == q {
			return true
		}
	}
	return false
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
