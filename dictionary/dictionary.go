// Package dictionary implements the persisted term dictionary and its
// runtime hub view.
//
// Every non-English dictionary stores only English↔foreign pairs. Arbitrary
// language pairs are served at runtime by routing through English as an
// implicit pivot, so N languages need N dictionaries instead of N².
package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lexishift/lexishift"
)

// CommentEntry holds the translations of one English comment, keyed by
// language code. The "en" key always carries the original English text.
type CommentEntry map[string]string

// Metadata carries dictionary bookkeeping fields.
type Metadata struct {
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
	LastSyncDate string `json:"lastSyncDate,omitempty"`
	Version      string `json:"version"`
}

// Dictionary is the persisted term dictionary for one language. Terms map
// English identifiers (unique keys) to foreign spellings; Comments map the
// md5 hex hash of the normalized English comment text to its translations.
//
// Mutations are append-or-overwrite and bump the patch version
// monotonically. The type is not internally synchronized: treat
// load → mutate → translate as a single critical section per origin+language.
type Dictionary struct {
	Origin   string                  `json:"origin"`
	Language string                  `json:"language"`
	Terms    map[string]string       `json:"terms"`
	Comments map[string]CommentEntry `json:"comments,omitempty"`
	Metadata Metadata                `json:"metadata"`
}

// New creates an empty dictionary for the given origin and language.
func New(origin, language string) *Dictionary {
	now := time.Now().UTC().Format(time.RFC3339)
	return &Dictionary{
		Origin:   origin,
		Language: language,
		Terms:    make(map[string]string),
		Comments: make(map[string]CommentEntry),
		Metadata: Metadata{
			CreatedAt: now,
			UpdatedAt: now,
			Version:   "1.0.0",
		},
	}
}

// rawDictionary defers comment decoding so both the hash-keyed and the
// legacy flat {englishText: translatedText} shapes can be accepted.
type rawDictionary struct {
	Origin   string                     `json:"origin"`
	Language string                     `json:"language"`
	Terms    map[string]string          `json:"terms"`
	Comments map[string]json.RawMessage `json:"comments"`
	Metadata Metadata                   `json:"metadata"`
}

// Parse decodes a persisted dictionary, validating required fields and
// normalizing flat-shape comments to the hash-keyed shape.
func Parse(data []byte) (*Dictionary, error) {
	var raw rawDictionary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &lexishift.DictionaryError{Message: "undecodable dictionary", Cause: err}
	}

	if raw.Origin == "" {
		return nil, &lexishift.DictionaryError{Message: "missing required field: origin"}
	}
	if raw.Language == "" {
		return nil, &lexishift.DictionaryError{Message: "missing required field: language", Origin: raw.Origin}
	}
	if raw.Terms == nil {
		return nil, &lexishift.DictionaryError{Message: "missing required field: terms", Origin: raw.Origin}
	}

	d := &Dictionary{
		Origin:   raw.Origin,
		Language: raw.Language,
		Terms:    raw.Terms,
		Comments: make(map[string]CommentEntry, len(raw.Comments)),
		Metadata: raw.Metadata,
	}
	if d.Metadata.Version == "" {
		d.Metadata.Version = "1.0.0"
	}

	for key, rawEntry := range raw.Comments {
		var entry CommentEntry
		if err := json.Unmarshal(rawEntry, &entry); err == nil {
			if entry["en"] == "" {
				return nil, &lexishift.DictionaryError{
					Message: fmt.Sprintf("comment entry %q has no en text", key),
					Origin:  raw.Origin,
				}
			}
			// Rekey from the English text rather than trusting the stored
			// key: files hashed with a different normalization would never
			// match a lookup otherwise.
			d.Comments[lexishift.CommentHash(entry["en"])] = entry
			continue
		}

		// Legacy flat shape: key is the English text, value the translation.
		var translated string
		if err := json.Unmarshal(rawEntry, &translated); err != nil {
			return nil, &lexishift.DictionaryError{
				Message: fmt.Sprintf("comment entry %q is neither an entry object nor a string", key),
				Origin:  raw.Origin,
				Cause:   err,
			}
		}
		english := strings.TrimSpace(key)
		d.Comments[lexishift.CommentHash(english)] = CommentEntry{
			"en":       english,
			d.Language: translated,
		}
	}

	return d, nil
}

// Load reads and parses a dictionary file.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path) // #nosec G304 - dictionary path is caller-provided
	if err != nil {
		return nil, &lexishift.DictionaryError{Message: "reading " + path, Cause: err}
	}
	return Parse(data)
}

// Save writes the dictionary as indented JSON. The write is atomic: the
// file is staged under a temporary name and renamed into place.
func (d *Dictionary) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return &lexishift.DictionaryError{Message: "encoding dictionary", Origin: d.Origin, Cause: err}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return &lexishift.DictionaryError{Message: "writing " + tmp, Origin: d.Origin, Cause: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &lexishift.DictionaryError{Message: "renaming into " + path, Origin: d.Origin, Cause: err}
	}
	return nil
}

// AddTerms merges terms into the dictionary, overwriting existing mappings,
// and bumps the version once for the whole batch.
func (d *Dictionary) AddTerms(terms map[string]string) {
	if len(terms) == 0 {
		return
	}
	if d.Terms == nil {
		d.Terms = make(map[string]string, len(terms))
	}
	for en, foreign := range terms {
		d.Terms[en] = foreign
	}
	d.touch()
}

// AddComment records a translation of an English comment, creating the
// entry when the English text is new.
func (d *Dictionary) AddComment(english, translated string) {
	english = strings.TrimSpace(english)
	if english == "" {
		return
	}
	if d.Comments == nil {
		d.Comments = make(map[string]CommentEntry)
	}
	hash := lexishift.CommentHash(english)
	entry, ok := d.Comments[hash]
	if !ok {
		entry = CommentEntry{"en": english}
		d.Comments[hash] = entry
	}
	entry[d.Language] = translated
	d.touch()
}

// touch bumps the patch version and refreshes the update timestamp.
func (d *Dictionary) touch() {
	d.Metadata.Version = bumpPatch(d.Metadata.Version)
	d.Metadata.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

// bumpPatch increments the patch component of a major.minor.patch string.
// Unparseable versions reset to 1.0.0 rather than failing the mutation.
func bumpPatch(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return "1.0.0"
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return "1.0.0"
	}
	return fmt.Sprintf("%s.%s.%d", parts[0], parts[1], patch+1)
}
