package extractor

// TSLike extracts translatable units from TypeScript/JavaScript-family
// source. No full parser for the grammar is linked in, so declaration sites
// are recovered from the token stream with a block-context stack; the spans
// of strings and comments are exact, which is what the rewriter depends on.
type TSLike struct {
	exclusions map[string]bool
}

// NewTSLike creates a ts-like extractor with the default exclusion set.
func NewTSLike() *TSLike {
	return &TSLike{exclusions: tsBuiltins}
}

// NewTSLikeWithExclusions substitutes a custom built-in exclusion set.
func NewTSLikeWithExclusions(exclusions map[string]bool) *TSLike {
	return &TSLike{exclusions: exclusions}
}

// Kind returns the grammar family name.
func (e *TSLike) Kind() string { return KindTSLike }

// IsBuiltin reports whether name is in the exclusion set.
func (e *TSLike) IsBuiltin(name string) bool { return e.exclusions[name] }

var tsGrammar = scanGrammar{
	lineComments: []string{"//"},
	blockOpen:    "/*",
	blockClose:   "*/",
	quotes:       []byte{'"', '\'', '`'},
	multiline:    map[byte]bool{'`': true},
}

// Extract inventories identifiers, comments and strings. The token scan
// never fails, so the error is always nil for this grammar.
func (e *TSLike) Extract(src string) (*Extraction, error) {
	tokens := scan(src, tsGrammar)

	x := &Extraction{}
	var sig []lexToken // identifiers and punctuation, for structure walking
	for _, t := range tokens {
		switch t.kind {
		case tokComment:
			x.Comments = append(x.Comments, parseSlashComment(t.text, t.start, t.end, nil))
		case tokString:
			x.Strings = append(x.Strings, stringFromToken(t))
		default:
			sig = append(sig, t)
			if t.kind == tokIdent && !tsKeywords[t.text] {
				x.Identifiers = append(x.Identifiers, IdentToken{
					Name: t.text, Start: t.start, End: t.end, Line: t.line,
				})
			}
		}
	}

	decls := e.declarations(sig)
	x.Declared = aggregate(decls, x.Identifiers, e.exclusions)
	return x, nil
}

// blockKind labels what a brace pair encloses.
type blockKind int

const (
	blockCode blockKind = iota
	blockClass
	blockInterface
	blockEnum
)

// tsMemberLead are tokens that may precede a class/interface member name.
var tsMemberLead = setOf(
	"{", ";", "}", ",",
	"public", "private", "protected", "readonly", "static", "abstract",
	"async", "get", "set", "override", "declare",
)

// declarations walks the significant-token stream and records declaration
// sites: declaration keywords, class/interface/enum bodies, parameter
// lists of functions, methods and arrow functions.
func (e *TSLike) declarations(sig []lexToken) []declSite {
	var decls []declSite

	stack := []blockKind{blockCode}
	pending := blockCode

	prevText := func(i int) string {
		if i == 0 {
			return ""
		}
		return sig[i-1].text
	}
	nextText := func(i int) string {
		if i+1 >= len(sig) {
			return ""
		}
		return sig[i+1].text
	}

	for i, t := range sig {
		if t.kind == tokPunct {
			switch t.text {
			case "{":
				stack = append(stack, pending)
				pending = blockCode
			case "}":
				if len(stack) > 1 {
					stack = stack[:len(stack)-1]
				}
			case "(":
				// Arrow function parameter list: the matching close is
				// immediately followed by "=>".
				if isExpressionPosition(prevText(i)) {
					if close := matchingClose(sig, i); close > 0 && isArrowAt(sig, close+1) {
						decls = append(decls, e.paramSites(sig, i)...)
					}
				}
			}
			continue
		}

		name := t.text
		if tsKeywords[name] {
			continue
		}

		// Bare single-parameter arrow: `x => ...`.
		if isArrowAt(sig, i+1) && isExpressionPosition(prevText(i)) {
			decls = append(decls, declSite{name, CategoryParameter, t.line})
			continue
		}

		switch prevText(i) {
		case "class":
			decls = append(decls, declSite{name, CategoryClass, t.line})
			pending = blockClass
			continue
		case "interface":
			decls = append(decls, declSite{name, CategoryInterface, t.line})
			pending = blockInterface
			continue
		case "enum":
			decls = append(decls, declSite{name, CategoryEnum, t.line})
			pending = blockEnum
			continue
		case "function":
			decls = append(decls, declSite{name, CategoryFunction, t.line})
			if nextText(i) == "(" || nextText(i) == "<" {
				decls = append(decls, e.paramSites(sig, findOpenParen(sig, i+1))...)
			}
			continue
		case "const", "let", "var":
			decls = append(decls, declSite{name, CategoryVariable, t.line})
			continue
		case "type":
			if nextText(i) == "=" || nextText(i) == "<" {
				decls = append(decls, declSite{name, CategoryTypeAlias, t.line})
			}
			continue
		}

		// Members of class, interface and enum bodies.
		switch stack[len(stack)-1] {
		case blockClass, blockInterface:
			if !tsMemberLead[prevText(i)] {
				continue
			}
			switch nextText(i) {
			case "(", "<":
				decls = append(decls, declSite{name, CategoryMethod, t.line})
				decls = append(decls, e.paramSites(sig, findOpenParen(sig, i+1))...)
			case ":", "=", ";", "?", "!":
				decls = append(decls, declSite{name, CategoryProperty, t.line})
			}
		case blockEnum:
			if prevText(i) == "{" || prevText(i) == "," {
				decls = append(decls, declSite{name, CategoryEnumMember, t.line})
			}
		}
	}

	return decls
}

// paramSites collects parameter names from the list opened at sig[open].
// Type annotations (after ":") and default values (after "=") are skipped
// until the next top-level comma.
func (e *TSLike) paramSites(sig []lexToken, open int) []declSite {
	if open < 0 || open >= len(sig) || sig[open].text != "(" {
		return nil
	}

	var sites []declSite
	depth := 0
	expect := true
	skip := false

	for k := open; k < len(sig); k++ {
		t := sig[k]
		if t.kind == tokPunct {
			switch t.text {
			case "(", "[", "{", "<":
				depth++
			case ")", "]", "}", ">":
				depth--
				if depth == 0 {
					return sites
				}
			case ",":
				if depth == 1 {
					expect = true
					skip = false
				}
			case ":", "=":
				if depth == 1 {
					skip = true
					expect = false
				}
			}
			continue
		}
		if depth == 1 && expect && !skip && !tsKeywords[t.text] {
			sites = append(sites, declSite{t.text, CategoryParameter, t.line})
			expect = false
		}
	}
	return sites
}

// findOpenParen skips a generic parameter list to locate the "(" at or
// after index i.
func findOpenParen(sig []lexToken, i int) int {
	if i < len(sig) && sig[i].text == "(" {
		return i
	}
	if i < len(sig) && sig[i].text == "<" {
		depth := 0
		for ; i < len(sig); i++ {
			switch sig[i].text {
			case "<":
				depth++
			case ">":
				depth--
				if depth == 0 {
					if i+1 < len(sig) && sig[i+1].text == "(" {
						return i + 1
					}
					return -1
				}
			}
		}
	}
	return -1
}

// matchingClose returns the index of the ")" matching the "(" at open.
func matchingClose(sig []lexToken, open int) int {
	depth := 0
	for i := open; i < len(sig); i++ {
		switch sig[i].text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// isArrowAt reports whether sig[i] and sig[i+1] form a contiguous "=>".
func isArrowAt(sig []lexToken, i int) bool {
	return i >= 0 && i+1 < len(sig) &&
		sig[i].text == "=" && sig[i+1].text == ">" &&
		sig[i+1].start == sig[i].end
}

// isExpressionPosition reports whether a "(" or identifier after the given
// preceding token sits in expression position rather than being a call.
func isExpressionPosition(prev string) bool {
	switch prev {
	case "", "=", "(", ",", "[", "{", ":", ";", "return", "=>", "&", "|", "?", ">":
		return true
	}
	return false
}
