package lexishift

import (
	"crypto/md5" // #nosec G401 - key derivation for dictionary lookups, not security
	"encoding/hex"
	"strings"
	"unicode"
)

// NormalizeCommentText lowercases text and collapses runs of whitespace to a
// single space, so a comment re-wrapped across lines or re-indented still
// hashes to the same key.
func NormalizeCommentText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range strings.TrimSpace(text) {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// CommentHash returns the md5 hex digest of the normalized comment text.
// This is the key format of the persisted dictionary's comments map.
func CommentHash(text string) string {
	sum := md5.Sum([]byte(NormalizeCommentText(text))) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// ResultCacheKey builds the cache key for a whole-file translation result.
// The scope fingerprint keeps results for different scopes apart.
func ResultCacheKey(code string, source, target LanguageCode, scope Scope) string {
	sum := md5.Sum([]byte(code)) // #nosec G401
	return hex.EncodeToString(sum[:]) + ":" + string(source) + ":" + string(target) + ":" + scopeFingerprint(scope)
}

// scopeFingerprint encodes the scope flags as a stable six-character string.
func scopeFingerprint(s Scope) string {
	bits := []byte("------")
	if s.Identifiers {
		bits[0] = 'i'
	}
	if s.Comments {
		bits[1] = 'c'
	}
	if s.StringLiterals {
		bits[2] = 's'
	}
	if s.Keywords {
		bits[3] = 'k'
	}
	if s.Punctuation {
		bits[4] = 'p'
	}
	if s.MarkdownFiles {
		bits[5] = 'm'
	}
	return string(bits)
}
