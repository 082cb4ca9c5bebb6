package extractor

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Vue extracts translatable units from single-file components: the script
// block is handed to the ts-like token scan, template text nodes become
// unquoted string literals, and HTML comments become block comments. The
// HTML tokenizer is used instead of a parsed document because Raw covers
// every byte consumed per token, which keeps offsets exact.
type Vue struct {
	exclusions map[string]bool
}

// NewVue creates a component extractor with the default exclusion set.
func NewVue() *Vue {
	return &Vue{exclusions: tsBuiltins}
}

// NewVueWithExclusions substitutes a custom built-in exclusion set.
func NewVueWithExclusions(exclusions map[string]bool) *Vue {
	return &Vue{exclusions: exclusions}
}

// Kind returns the grammar family name.
func (e *Vue) Kind() string { return KindTemplate }

// IsBuiltin reports whether name is in the exclusion set.
func (e *Vue) IsBuiltin(name string) bool { return e.exclusions[name] }

// Extract inventories identifiers, comments and strings. Offsets are
// tracked by accumulating the raw bytes of each token; the tokenizer tiles
// the input, so the running offset stays byte-exact.
func (e *Vue) Extract(src string) (*Extraction, error) {
	z := html.NewTokenizer(strings.NewReader(src))

	x := &Extraction{}
	var decls []declSite

	offset := 0
	line := 1
	inScript := false
	inStyle := false

	for {
		tt := z.Next()
		raw := string(z.Raw())
		start := offset
		end := offset + len(raw)

		switch tt {
		case html.ErrorToken:
			// The reader never fails, so this is end of input.
			x.Declared = aggregate(decls, x.Identifiers, e.exclusions)
			return x, nil

		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			}

		case html.CommentToken:
			x.Comments = append(x.Comments, Comment{
				Text:  strings.TrimSpace(string(z.Text())),
				Raw:   raw,
				Start: start,
				End:   end,
				Kind:  CommentBlock,
			})

		case html.TextToken:
			switch {
			case inScript:
				decls = append(decls, e.scriptRegion(x, raw, start, line)...)
			case inStyle:
				// Style sheets carry no translatable units.
			default:
				if lit, ok := templateText(raw, start, line); ok {
					x.Strings = append(x.Strings, lit)
				}
			}
		}

		line += strings.Count(raw, "\n")
		offset = end
	}
}

// scriptRegion scans a script block with the ts-like grammar, shifting every
// span into file coordinates, and returns its declaration sites.
func (e *Vue) scriptRegion(x *Extraction, src string, base, baseLine int) []declSite {
	tokens := scan(src, tsGrammar)

	var sig []lexToken
	for _, t := range tokens {
		t.start += base
		t.end += base
		t.line += baseLine - 1

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

	ts := &TSLike{exclusions: e.exclusions}
	return ts.declarations(sig)
}

// templateText turns a non-empty template text node into an unquoted string
// literal spanning exactly the trimmed run. Text containing a mustache
// interpolation is left alone: rewriting it would corrupt the binding.
func templateText(raw string, base, baseLine int) (StringLiteral, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.Contains(trimmed, "{{") {
		return StringLiteral{}, false
	}

	lead := len(raw) - len(strings.TrimLeft(raw, " \t\n\r"))
	return StringLiteral{
		Value: trimmed,
		Quote: 0,
		Start: base + lead,
		End:   base + lead + len(trimmed),
		Line:  baseLine + strings.Count(raw[:lead], "\n"),
	}, true
}

// TemplateTexts lists the distinct translatable text nodes of a component
// template, sorted. It serves inventory flows that need the texts but not
// their positions, so the lenient document parser is fine here.
func TemplateTexts(src string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, &ParseError{Message: "failed to parse component template", Cause: err, Grammar: KindTemplate}
	}

	seen := make(map[string]bool)
	var texts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" && !strings.Contains(text, "{{") && !seen[text] {
				seen[text] = true
				texts = append(texts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	sort.Strings(texts)
	return texts, nil
}
