package lexishift

import "strings"

// fullWidthPunctuation maps ASCII punctuation to full-width equivalents for
// languages conventionally typeset with full-width characters. The pass is a
// pure display transliteration, not a semantic rewrite: it runs over the
// entire final text with no protected-region exception.
var fullWidthPunctuation = map[rune]rune{
	'(': '（',
	')': '）',
	'{': '｛',
	'}': '｝',
	'[': '［',
	']': '］',
	',': '，',
	';': '；',
	':': '：',
	'!': '！',
	'?': '？',
	'=': '＝',
	'+': '＋',
	'*': '＊',
	'<': '＜',
	'>': '＞',
	'&': '＆',
	'%': '％',
	'.': '．',
}

// halfWidthPunctuation is the inverse mapping, applied when translating out
// of a full-width language.
var halfWidthPunctuation = invertRunes(fullWidthPunctuation)

// fullWidthLanguages lists languages whose punctuation is transliterated.
var fullWidthLanguages = map[LanguageCode]bool{
	"ja": true,
	"zh": true,
}

// UsesFullWidthPunctuation reports whether the punctuation pass applies to
// the language.
func UsesFullWidthPunctuation(lang LanguageCode) bool {
	return fullWidthLanguages[NormalizeLanguage(lang)]
}

// translatePunctuation transliterates punctuation character by character
// across the whole text. Target full-width language: ASCII → full-width.
// Leaving a full-width language for one that is not: full-width → ASCII.
// Between two full-width languages, or two half-width ones, the text is
// returned unchanged.
func translatePunctuation(text string, source, target LanguageCode) string {
	srcFull := UsesFullWidthPunctuation(source)
	tgtFull := UsesFullWidthPunctuation(target)

	switch {
	case tgtFull && !srcFull:
		return mapRunes(text, fullWidthPunctuation)
	case srcFull && !tgtFull:
		return mapRunes(text, halfWidthPunctuation)
	default:
		return text
	}
}

func mapRunes(text string, table map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if repl, ok := table[r]; ok {
			b.WriteRune(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func invertRunes(table map[rune]rune) map[rune]rune {
	inv := make(map[rune]rune, len(table))
	for k, v := range table {
		inv[v] = k
	}
	return inv
}
