// Package extractor locates the translatable units of source text:
// user-defined identifiers, comments, string literals and Markdown prose
// blocks, each with exact byte offsets into the original text.
//
// One extractor exists per grammar family, selected by file-extension
// sniffing at the boundary. Grammars with a full parser available (Go) are
// walked as a syntax tree; the others use a token scan that is precise
// about string, comment and identifier boundaries without building a tree.
package extractor

import (
	"path/filepath"
	"sort"
	"strings"
)

// Grammar family kinds.
const (
	KindTSLike    = "tsLike"
	KindOwnership = "ownershipSyntax"
	KindTemplate  = "templateComponent"
	KindGoSource  = "goSource"
)

// Category classifies a declaration site.
type Category string

const (
	CategoryClass      Category = "class"
	CategoryInterface  Category = "interface"
	CategoryTypeAlias  Category = "typeAlias"
	CategoryFunction   Category = "function"
	CategoryMethod     Category = "method"
	CategoryVariable   Category = "variable"
	CategoryProperty   Category = "property"
	CategoryParameter  Category = "parameter"
	CategoryEnum       Category = "enum"
	CategoryEnumMember Category = "enumMember"
	CategoryStruct     Category = "struct"
	CategoryTrait      Category = "trait"
	CategoryImpl       Category = "impl"
	CategoryModule     Category = "module"
	CategoryConst      Category = "const"
	CategoryStatic     Category = "static"
)

// Identifier is the aggregated view of one user-defined name: its first-seen
// declaration category and line, and how many times it occurs in the file.
type Identifier struct {
	Name     string
	Category Category
	Line     int
	Count    int
}

// IdentToken is a single identifier occurrence with its exact byte range.
type IdentToken struct {
	Name  string
	Start int
	End   int
	Line  int
}

// CommentKind distinguishes the two comment shapes.
type CommentKind string

const (
	CommentLine  CommentKind = "single-line"
	CommentBlock CommentKind = "block"
)

// Comment is one comment span. Text has delimiters and interior line-leading
// markers stripped; Raw is the exact original slice.
type Comment struct {
	Text  string
	Raw   string
	Start int
	End   int
	Kind  CommentKind
	Doc   bool
}

// StringLiteral is one string literal span, including its quotes. Quote is
// zero for unquoted text regions (template-component text nodes).
type StringLiteral struct {
	Value string
	Quote byte
	Start int
	End   int
	Line  int
}

// Extraction is the full translatable-unit inventory of one file.
type Extraction struct {
	// Identifiers holds every identifier occurrence, grammar keywords
	// excluded, in source order.
	Identifiers []IdentToken
	// Declared is the aggregated declaration view, sorted by name.
	Declared []Identifier
	// Comments holds every comment span in source order, duplicates kept.
	Comments []Comment
	// Strings holds every string literal span in source order.
	Strings []StringLiteral
}

// Extractor is the per-grammar extraction contract.
type Extractor interface {
	// Kind names the grammar family.
	Kind() string
	// Extract inventories the translatable units of src.
	Extract(src string) (*Extraction, error)
	// IsBuiltin reports whether the name is a standard-library or global
	// name of the grammar, excluded from dictionary candidates.
	IsBuiltin(name string) bool
}

// extensionTable maps file extensions to extractor constructors.
var extensionTable = map[string]func() Extractor{
	".ts":  func() Extractor { return NewTSLike() },
	".tsx": func() Extractor { return NewTSLike() },
	".js":  func() Extractor { return NewTSLike() },
	".jsx": func() Extractor { return NewTSLike() },
	".mts": func() Extractor { return NewTSLike() },
	".cts": func() Extractor { return NewTSLike() },
	".mjs": func() Extractor { return NewTSLike() },
	".cjs": func() Extractor { return NewTSLike() },
	".rs":  func() Extractor { return NewRust() },
	".vue": func() Extractor { return NewVue() },
	".go":  func() Extractor { return NewGo() },
}

// ForPath selects the extractor for a file path by extension sniffing.
func ForPath(path string) (Extractor, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	ctor, ok := extensionTable[ext]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// IsMarkdownPath reports whether the path names a Markdown document.
func IsMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// Identifiers extracts the aggregated identifier list of src, sorted by
// name. A parse failure yields an empty list and the error; batch callers
// are expected to log and continue.
func Identifiers(src, pathHint string) ([]Identifier, error) {
	ext, ok := ForPath(pathHint)
	if !ok {
		ext = NewTSLike()
	}
	extraction, err := ext.Extract(src)
	if err != nil {
		return nil, err
	}
	return extraction.Declared, nil
}

// Comments extracts the deduplicated, trimmed comment texts of src.
func Comments(src, pathHint string) ([]string, error) {
	withPositions, err := CommentsWithPositions(src, pathHint)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(withPositions))
	var texts []string
	for _, c := range withPositions {
		text := strings.TrimSpace(c.Text)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		texts = append(texts, text)
	}
	sort.Strings(texts)
	return texts, nil
}

// CommentsWithPositions extracts every comment span of src with exact
// offsets, duplicates kept, as needed for rewriting.
func CommentsWithPositions(src, pathHint string) ([]Comment, error) {
	ext, ok := ForPath(pathHint)
	if !ok {
		ext = NewTSLike()
	}
	extraction, err := ext.Extract(src)
	if err != nil {
		return nil, err
	}
	return extraction.Comments, nil
}
