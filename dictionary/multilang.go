package dictionary

import (
	"sort"
	"strings"

	"github.com/lexishift/lexishift"
)

// MultiLanguage is the runtime lookup view over one or more dictionaries.
// It maintains four lookup structures: English→foreign terms and
// foreign→English terms per language, a comment table keyed by the hash of
// the English text, and a reverse index from the hash of any translated
// comment back to its English text. All four are built at load time and
// kept in sync on every mutation; the reverse indexes are never recomputed
// per lookup.
//
// MultiLanguage is not internally synchronized. Concurrent AddTerms calls,
// or a lookup concurrent with a mutation, must be serialized by the caller.
type MultiLanguage struct {
	forward  map[string]map[string]string // lang → english → foreign
	reverse  map[string]map[string]string // lang → foreign → english
	comments map[string]CommentEntry      // hash(en text) → translations
	index    map[string]string            // hash(any translated text) → english text
}

// NewMultiLanguage builds the runtime view from the given dictionaries.
func NewMultiLanguage(dicts ...*Dictionary) (*MultiLanguage, error) {
	m := &MultiLanguage{
		forward:  make(map[string]map[string]string),
		reverse:  make(map[string]map[string]string),
		comments: make(map[string]CommentEntry),
		index:    make(map[string]string),
	}
	for _, d := range dicts {
		if err := m.AddDictionary(d); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddDictionary merges one dictionary's terms and comments into the view.
func (m *MultiLanguage) AddDictionary(d *Dictionary) error {
	if d == nil {
		return &lexishift.DictionaryError{Message: "nil dictionary"}
	}
	if d.Language == "" {
		return &lexishift.DictionaryError{Message: "dictionary has no language", Origin: d.Origin}
	}

	m.AddTerms(d.Language, d.Terms)

	for hash, entry := range d.Comments {
		merged, ok := m.comments[hash]
		if !ok {
			merged = CommentEntry{}
			m.comments[hash] = merged
		}
		for lang, text := range entry {
			merged[lang] = text
			if lang != "en" {
				m.index[lexishift.CommentHash(text)] = entry["en"]
			}
		}
	}
	return nil
}

// AddTerms merges term pairs for a language into both the forward and the
// reverse map, so a lookup performed immediately after the addition
// succeeds without reloading from storage.
func (m *MultiLanguage) AddTerms(lang string, terms map[string]string) {
	lang = normalizeLang(lang)
	if m.forward[lang] == nil {
		m.forward[lang] = make(map[string]string, len(terms))
		m.reverse[lang] = make(map[string]string, len(terms))
	}
	for en, foreign := range terms {
		m.forward[lang][en] = foreign
		m.reverse[lang][foreign] = en
	}
}

// AddComment records one comment translation, updating both the comment
// table and the reverse index.
func (m *MultiLanguage) AddComment(english, lang, translated string) {
	english = strings.TrimSpace(english)
	if english == "" {
		return
	}
	lang = normalizeLang(lang)
	hash := lexishift.CommentHash(english)
	entry, ok := m.comments[hash]
	if !ok {
		entry = CommentEntry{"en": english}
		m.comments[hash] = entry
	}
	entry[lang] = translated
	m.index[lexishift.CommentHash(translated)] = english
}

// Translate resolves a term between any two languages through the English
// pivot. The boolean reports whether a mapping was found; a term always
// translates to itself when from == to.
func (m *MultiLanguage) Translate(term, from, to string) (string, bool) {
	from = normalizeLang(from)
	to = normalizeLang(to)

	if from == to {
		return term, true
	}
	if from == "en" {
		foreign, ok := m.forward[to][term]
		return foreign, ok
	}
	if to == "en" {
		english, ok := m.reverse[from][term]
		return english, ok
	}

	english, ok := m.reverse[from][term]
	if !ok {
		return "", false
	}
	foreign, ok := m.forward[to][english]
	return foreign, ok
}

// TranslateComment resolves a comment's text between two languages using
// the content-hash tables.
func (m *MultiLanguage) TranslateComment(text, from, to string) (string, bool) {
	from = normalizeLang(from)
	to = normalizeLang(to)

	if from == to {
		return text, true
	}

	english := strings.TrimSpace(text)
	if from != "en" {
		found, ok := m.index[lexishift.CommentHash(text)]
		if !ok {
			return "", false
		}
		english = found
	}
	if to == "en" {
		return english, true
	}

	entry, ok := m.comments[lexishift.CommentHash(english)]
	if !ok {
		return "", false
	}
	translated, ok := entry[to]
	return translated, ok
}

// HasTerm reports whether the term exists in any language's forward or
// reverse map.
func (m *MultiLanguage) HasTerm(term string) bool {
	for lang := range m.forward {
		if m.HasTermInLanguage(term, lang) {
			return true
		}
	}
	return false
}

// HasTermInLanguage reports whether the term is known for the language:
// for "en", as a key of any forward map; otherwise as a foreign spelling in
// that language's reverse map.
func (m *MultiLanguage) HasTermInLanguage(term, lang string) bool {
	lang = normalizeLang(lang)
	if lang == "en" {
		for _, terms := range m.forward {
			if _, ok := terms[term]; ok {
				return true
			}
		}
		return false
	}
	_, ok := m.reverse[lang][term]
	return ok
}

// MissingTerms returns the subset of names with no mapping for the
// language, sorted and deduplicated. Used upstream to decide which terms
// need a new translation from the external service.
func (m *MultiLanguage) MissingTerms(lang string, names []string) []string {
	lang = normalizeLang(lang)
	seen := make(map[string]bool, len(names))
	var missing []string
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := m.forward[lang][name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// HasComment reports whether the English comment text has a translation
// for the language.
func (m *MultiLanguage) HasComment(english, lang string) bool {
	entry, ok := m.comments[lexishift.CommentHash(english)]
	if !ok {
		return false
	}
	_, ok = entry[normalizeLang(lang)]
	return ok
}

// Languages lists the loaded non-English languages, sorted.
func (m *MultiLanguage) Languages() []string {
	langs := make([]string, 0, len(m.forward))
	for lang := range m.forward {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func normalizeLang(lang string) string {
	return string(lexishift.NormalizeLanguage(lexishift.LanguageCode(lang)))
}
