package lexishift

import "testing"

func TestNormalizeCommentText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Store the result", "store the result"},
		{"leading and trailing space", "  Store the result  ", "store the result"},
		{"collapsed whitespace", "Store   the\t result", "store the result"},
		{"rewrapped lines", "Store the\nresult", "store the result"},
		{"mixed case", "STORE The Result", "store the result"},
		{"empty", "", ""},
		{"only whitespace", "  \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCommentText(tt.input); got != tt.want {
				t.Errorf("NormalizeCommentText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCommentHashStableUnderReformatting(t *testing.T) {
	base := CommentHash("Store the result")

	variants := []string{
		"store the result",
		"  Store the result",
		"Store   the   result",
		"Store the\n   result",
	}
	for _, v := range variants {
		if CommentHash(v) != base {
			t.Errorf("CommentHash(%q) differs from the canonical hash", v)
		}
	}

	if CommentHash("Store the results") == base {
		t.Error("different text must hash differently")
	}
}

func TestCommentHashFormat(t *testing.T) {
	h := CommentHash("anything")
	if len(h) != 32 {
		t.Errorf("hash length = %d, want 32 hex chars", len(h))
	}
}

func TestResultCacheKey(t *testing.T) {
	k1 := ResultCacheKey("code", "en", "ja", ScopeDefault)
	k2 := ResultCacheKey("code", "en", "ja", ScopeEverything)
	k3 := ResultCacheKey("code", "en", "zh", ScopeDefault)
	k4 := ResultCacheKey("other code", "en", "ja", ScopeDefault)

	if k1 == k2 {
		t.Error("different scopes must produce different keys")
	}
	if k1 == k3 {
		t.Error("different targets must produce different keys")
	}
	if k1 == k4 {
		t.Error("different code must produce different keys")
	}
	if k1 != ResultCacheKey("code", "en", "ja", ScopeDefault) {
		t.Error("key must be deterministic")
	}
}

func TestScopeFingerprint(t *testing.T) {
	tests := []struct {
		scope Scope
		want  string
	}{
		{ScopeDefault, "ic----"},
		{ScopeEverything, "icskpm"},
		{ScopeCommentsOnly, "-c----"},
		{ScopeIdentifiersOnly, "i-----"},
		{Scope{}, "------"},
	}
	for _, tt := range tests {
		if got := scopeFingerprint(tt.scope); got != tt.want {
			t.Errorf("scopeFingerprint(%+v) = %q, want %q", tt.scope, got, tt.want)
		}
	}
}
