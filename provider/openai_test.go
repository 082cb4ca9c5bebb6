package provider

import (
	"errors"
	"strings"
	"testing"

	"github.com/lexishift/lexishift"
)

func TestParseResponse(t *testing.T) {
	p := &OpenAI{}

	tests := []struct {
		name    string
		content string
		count   int
		want    []string
	}{
		{"translations object", `{"translations": ["計算する", "値"]}`, 2, []string{"計算する", "値"}},
		{"other key fallback", `{"results": ["a", "b"]}`, 2, []string{"a", "b"}},
		{"bare array", `["only"]`, 1, []string{"only"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.parseResponse(tt.content, tt.count)
			if err != nil {
				t.Fatalf("parseResponse: %v", err)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestParseResponseInvalid(t *testing.T) {
	p := &OpenAI{}
	_, err := p.parseResponse("plain text, no json", 1)

	var providerErr *lexishift.ProviderError
	if !errors.As(err, &providerErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if providerErr.Retryable {
		t.Error("a malformed response is not retryable")
	}
}

func TestParseResponseCountMismatch(t *testing.T) {
	p := &OpenAI{}
	_, err := p.parseResponse(`{"translations": ["one"]}`, 2)

	var mismatch *lexishift.CountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected CountMismatchError, got %v", err)
	}
	if mismatch.Expected != 2 || mismatch.Got != 1 {
		t.Errorf("mismatch = %+v", mismatch)
	}
}

func TestToStringSliceCoercesNonStrings(t *testing.T) {
	got, err := toStringSlice([]interface{}{"text", float64(7)}, 2)
	if err != nil {
		t.Fatalf("toStringSlice: %v", err)
	}
	if got[1] != "7" {
		t.Errorf("coerced value = %q", got[1])
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	p := &OpenAI{}

	identifier := p.buildSystemPrompt(Request{
		Kind:       KindIdentifier,
		SourceLang: "en",
		TargetLang: "ja",
	})
	if !strings.Contains(identifier, "identifiers") || !strings.Contains(identifier, "Japanese") {
		t.Errorf("identifier prompt missing basics: %q", identifier)
	}
	if !strings.Contains(identifier, "casing convention") {
		t.Errorf("identifier prompt missing casing rule: %q", identifier)
	}

	comment := p.buildSystemPrompt(Request{
		Kind:       KindComment,
		SourceLang: "en",
		TargetLang: "ja",
		Context:    "billing service",
		Glossary:   map[string]string{"invoice": "請求書"},
	})
	if !strings.Contains(comment, "comments") {
		t.Errorf("comment prompt missing kind: %q", comment)
	}
	if !strings.Contains(comment, "billing service") {
		t.Errorf("context hint missing: %q", comment)
	}
	if !strings.Contains(comment, "請求書") {
		t.Errorf("glossary missing: %q", comment)
	}
	if !strings.Contains(comment, `"translations"`) {
		t.Errorf("format section missing: %q", comment)
	}
}

func TestBuildUserMessage(t *testing.T) {
	p := &OpenAI{}
	got := p.buildUserMessage(Request{Texts: []string{"calculate", "value"}})
	if got != `["calculate","value"]` {
		t.Errorf("user message = %q", got)
	}
}

func TestIsRetryableErrorPatterns(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"429 Too Many Requests", true},
		{"Rate limit exceeded", true},
		{"request timeout", true},
		{"connection refused", true},
		{"503 service unavailable", true},
		{"invalid api key", false},
		{"model not found", false},
	}
	for _, tt := range tests {
		if got := isRetryableError(errors.New(tt.msg)); got != tt.want {
			t.Errorf("isRetryableError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
