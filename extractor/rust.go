package extractor

// Rust extracts translatable units from ownership-syntax source. The
// grammar has no full parser linked in; declaration sites follow the
// keyword that introduces them (fn, struct, enum, trait, impl, mod,
// const, static, let), and doc comments get dedicated markers.
type Rust struct {
	exclusions map[string]bool
}

// NewRust creates an ownership-syntax extractor with the default
// exclusion set.
func NewRust() *Rust {
	return &Rust{exclusions: rustBuiltins}
}

// NewRustWithExclusions substitutes a custom built-in exclusion set.
func NewRustWithExclusions(exclusions map[string]bool) *Rust {
	return &Rust{exclusions: exclusions}
}

// Kind returns the grammar family name.
func (e *Rust) Kind() string { return KindOwnership }

// IsBuiltin reports whether name is in the exclusion set.
func (e *Rust) IsBuiltin(name string) bool { return e.exclusions[name] }

var rustGrammar = scanGrammar{
	lineComments: []string{"///", "//!", "//"},
	blockOpen:    "/*",
	blockClose:   "*/",
	nestedBlocks: true,
	quotes:       []byte{'"'},
	multiline:    map[byte]bool{'"': true},
	rawStrings:   true,
}

var rustDocMarkers = []string{"///", "//!"}

// rustDeclKeywords maps an introducing keyword to the declared category.
var rustDeclKeywords = map[string]Category{
	"fn":     CategoryFunction,
	"struct": CategoryStruct,
	"enum":   CategoryEnum,
	"trait":  CategoryTrait,
	"impl":   CategoryImpl,
	"mod":    CategoryModule,
	"const":  CategoryConst,
	"static": CategoryStatic,
	"let":    CategoryVariable,
	"type":   CategoryTypeAlias,
}

// Extract inventories identifiers, comments and strings.
func (e *Rust) Extract(src string) (*Extraction, error) {
	tokens := scan(src, rustGrammar)

	x := &Extraction{}
	var sig []lexToken
	for _, t := range tokens {
		switch t.kind {
		case tokComment:
			x.Comments = append(x.Comments, parseSlashComment(t.text, t.start, t.end, rustDocMarkers))
		case tokString:
			x.Strings = append(x.Strings, stringFromToken(t))
		default:
			sig = append(sig, t)
			if t.kind == tokIdent && !rustKeywords[t.text] {
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

// declarations records the identifier following each introducing keyword
// ("mut" is transparent after let) plus fn parameter names.
func (e *Rust) declarations(sig []lexToken) []declSite {
	var decls []declSite

	for i, t := range sig {
		if t.kind != tokIdent || rustKeywords[t.text] {
			continue
		}

		prev := ""
		if i > 0 {
			prev = sig[i-1].text
		}
		if prev == "mut" && i > 1 {
			prev = sig[i-2].text
		}

		cat, ok := rustDeclKeywords[prev]
		if !ok {
			continue
		}
		decls = append(decls, declSite{t.text, cat, t.line})

		if cat == CategoryFunction {
			decls = append(decls, e.paramSites(sig, i+1)...)
		}
	}

	return decls
}

// paramSites collects fn parameter names: the identifier before each
// top-level ":" in the list, with self receivers skipped. A generic
// parameter list between the name and the "(" is stepped over.
func (e *Rust) paramSites(sig []lexToken, i int) []declSite {
	open := findOpenParen(sig, i)
	if open < 0 {
		return nil
	}

	var sites []declSite
	depth := 0
	lastName := ""
	lastLine := 0

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
			case ":":
				if depth == 1 && lastName != "" {
					sites = append(sites, declSite{lastName, CategoryParameter, lastLine})
					lastName = ""
				}
			case ",":
				lastName = ""
			}
			continue
		}
		if depth == 1 && !rustKeywords[t.text] {
			lastName, lastLine = t.text, t.line
		} else {
			lastName = ""
		}
	}
	return sites
}
