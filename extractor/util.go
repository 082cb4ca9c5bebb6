package extractor

import (
	"sort"
	"strings"
)

// declSite is one declaration occurrence found while walking tokens.
type declSite struct {
	name string
	cat  Category
	line int
}

// aggregate builds the sorted declaration view: exclusion-set members and
// single-letter names are dropped, the first-seen category wins for names
// declared under several categories, and every occurrence of a declared
// name across the file increments its count.
func aggregate(decls []declSite, idents []IdentToken, exclusions map[string]bool) []Identifier {
	byName := make(map[string]*Identifier, len(decls))
	for _, d := range decls {
		if len([]rune(d.name)) <= 1 || exclusions[d.name] {
			continue
		}
		if _, ok := byName[d.name]; ok {
			continue
		}
		byName[d.name] = &Identifier{Name: d.name, Category: d.cat, Line: d.line}
	}

	for _, tok := range idents {
		if id, ok := byName[tok.Name]; ok {
			id.Count++
		}
	}

	result := make([]Identifier, 0, len(byName))
	for _, id := range byName {
		result = append(result, *id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// parseSlashComment normalizes a C-style comment token. Line comments strip
// the marker (doc markers recognized longest-first); block comments strip
// the delimiters and any interior line-leading '*' continuation markers.
func parseSlashComment(raw string, start, end int, docLineMarkers []string) Comment {
	if strings.HasPrefix(raw, "//") {
		marker := "//"
		doc := false
		for _, m := range docLineMarkers {
			if strings.HasPrefix(raw, m) {
				marker = m
				doc = true
				break
			}
		}
		return Comment{
			Text:  strings.TrimSpace(raw[len(marker):]),
			Raw:   raw,
			Start: start,
			End:   end,
			Kind:  CommentLine,
			Doc:   doc,
		}
	}

	doc := strings.HasPrefix(raw, "/**") && raw != "/**/"
	inner := strings.TrimPrefix(raw, "/*")
	inner = strings.TrimPrefix(inner, "*") // the doc-marker star
	inner = strings.TrimSuffix(inner, "*/")

	lines := strings.Split(inner, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line == "" && len(cleaned) == 0 {
			continue // leading blank from "/**\n"
		}
		cleaned = append(cleaned, line)
	}
	for len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
		cleaned = cleaned[:len(cleaned)-1]
	}

	return Comment{
		Text:  strings.Join(cleaned, "\n"),
		Raw:   raw,
		Start: start,
		End:   end,
		Kind:  CommentBlock,
		Doc:   doc,
	}
}

// stringFromToken converts a scanner string token to a StringLiteral.
func stringFromToken(t lexToken) StringLiteral {
	value := t.text
	quote := byte(0)
	if len(value) >= 2 {
		quote = value[0]
		last := value[len(value)-1]
		if last == quote {
			value = value[1 : len(value)-1]
		} else {
			value = value[1:] // unterminated literal
		}
	}
	return StringLiteral{Value: value, Quote: quote, Start: t.start, End: t.end, Line: t.line}
}
