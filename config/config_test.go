package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lexishift/lexishift"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	data := `source_lang: en
target_lang: ja
dictionaries:
  - dict/webapp.ja.json
strict_mode: true
scope:
  preset: everything
  punctuation: false
redis:
  url: redis://localhost:6379
  ttl_seconds: 3600
openai:
  model: gpt-4o
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.SourceLang != "en" || cfg.TargetLang != "ja" {
		t.Errorf("langs = %q/%q", cfg.SourceLang, cfg.TargetLang)
	}
	if !reflect.DeepEqual(cfg.Dictionaries, []string{"dict/webapp.ja.json"}) {
		t.Errorf("Dictionaries = %v", cfg.Dictionaries)
	}
	if !cfg.StrictMode {
		t.Error("StrictMode not set")
	}
	if cfg.Redis.URL != "redis://localhost:6379" || cfg.Redis.TTLSeconds != 3600 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q", cfg.OpenAI.Model)
	}
}

func TestLoadFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte("target_lang: ja\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.SourceLang != "en" {
		t.Errorf("SourceLang default lost: %q", cfg.SourceLang)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("Model default lost: %q", cfg.OpenAI.Model)
	}
	if cfg.Scope.Preset != "default" {
		t.Errorf("Preset default lost: %q", cfg.Scope.Preset)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestEngineScopePresets(t *testing.T) {
	tests := []struct {
		preset string
		want   lexishift.Scope
	}{
		{"default", lexishift.ScopeDefault},
		{"everything", lexishift.ScopeEverything},
		{"comments-only", lexishift.ScopeCommentsOnly},
		{"identifiers-only", lexishift.ScopeIdentifiersOnly},
		{"EVERYTHING", lexishift.ScopeEverything},
		{"unknown", lexishift.ScopeDefault},
		{"", lexishift.ScopeDefault},
	}
	for _, tt := range tests {
		cfg := &Config{Scope: ScopeConfig{Preset: tt.preset}}
		if got := cfg.EngineScope(); got != tt.want {
			t.Errorf("preset %q = %+v, want %+v", tt.preset, got, tt.want)
		}
	}
}

func TestEngineScopeFlagOverrides(t *testing.T) {
	on := true
	off := false
	cfg := &Config{Scope: ScopeConfig{
		Preset:        "everything",
		Punctuation:   &off,
		MarkdownFiles: &off,
		Comments:      &on, // already on, no-op
	}}

	got := cfg.EngineScope()
	want := lexishift.ScopeEverything
	want.Punctuation = false
	want.MarkdownFiles = false
	if got != want {
		t.Errorf("scope = %+v, want %+v", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LEXISHIFT_SOURCE_LANG", "ja")
	t.Setenv("LEXISHIFT_TARGET_LANG", "zh")
	t.Setenv("LEXISHIFT_DICTIONARIES", "a.json, b.json ,")
	t.Setenv("LEXISHIFT_STRICT", "true")
	t.Setenv("REDIS_URL", "redis://example:6379")
	t.Setenv("REDIS_TTL_SECONDS", "900")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := defaults()
	applyEnv(cfg)

	if cfg.SourceLang != "ja" || cfg.TargetLang != "zh" {
		t.Errorf("langs = %q/%q", cfg.SourceLang, cfg.TargetLang)
	}
	if !reflect.DeepEqual(cfg.Dictionaries, []string{"a.json", "b.json"}) {
		t.Errorf("Dictionaries = %v", cfg.Dictionaries)
	}
	if !cfg.StrictMode {
		t.Error("StrictMode not set from env")
	}
	if cfg.Redis.URL != "redis://example:6379" || cfg.Redis.TTLSeconds != 900 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.OpenAI.Model != "gpt-4o" || cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("OpenAI = %+v", cfg.OpenAI)
	}
}

func TestApplyEnvStrictVariants(t *testing.T) {
	for val, want := range map[string]bool{"1": true, "true": true, "TRUE": true, "0": false, "no": false} {
		t.Setenv("LEXISHIFT_STRICT", val)
		cfg := defaults()
		applyEnv(cfg)
		if cfg.StrictMode != want {
			t.Errorf("LEXISHIFT_STRICT=%q → %v, want %v", val, cfg.StrictMode, want)
		}
	}
}

func TestApplyEnvInvalidInt(t *testing.T) {
	t.Setenv("REDIS_TTL_SECONDS", "not a number")
	cfg := defaults()
	cfg.Redis.TTLSeconds = 60
	applyEnv(cfg)
	if cfg.Redis.TTLSeconds != 60 {
		t.Errorf("TTLSeconds = %d, want the previous value", cfg.Redis.TTLSeconds)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a.json ,, b.json ")
	if !reflect.DeepEqual(got, []string{"a.json", "b.json"}) {
		t.Errorf("splitList = %v", got)
	}
	if splitList("") != nil {
		t.Error("empty input must yield nil")
	}
}
