package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexishift/lexishift/dictionary"
)

// execute runs the CLI with the given args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

// writeDict saves a small ja dictionary and returns its path.
func writeDict(t *testing.T) string {
	t.Helper()
	d := dictionary.New("webapp", "ja")
	d.AddTerms(map[string]string{"calculate": "計算する", "value": "値"})
	d.AddComment("Store the result", "結果を保存する")

	path := filepath.Join(t.TempDir(), "webapp.ja.json")
	if err := d.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "lexishift") {
		t.Errorf("version output = %q", out)
	}
}

func TestTranslateMissingTarget(t *testing.T) {
	t.Setenv("LEXISHIFT_TARGET_LANG", "")

	_, err := execute(t, "translate", "--dict", writeDict(t))
	if err == nil || !strings.Contains(err.Error(), "--to is required") {
		t.Fatalf("expected missing --to error, got %v", err)
	}
}

func TestTranslateFile(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	src := writeSource(t, "main.ts", "// Store the result\nconst value = 1;\n")

	out, err := execute(t, "translate", "--from", "en", "--to", "ja", "--dict", writeDict(t), src)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if !strings.Contains(out, "const 値 = 1;") {
		t.Errorf("identifier not translated: %q", out)
	}
	if !strings.Contains(out, "// 結果を保存する") {
		t.Errorf("comment not translated: %q", out)
	}
}

func TestTranslateJSON(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	src := writeSource(t, "main.ts", "const value = calculate(total);\n")

	out, err := execute(t, "translate", "--from", "en", "--to", "ja",
		"--dict", writeDict(t), "--json", src)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	var result struct {
		Code             string            `json:"code"`
		TranslatedTokens []string          `json:"translated_tokens"`
		UnmappedTokens   []string          `json:"unmapped_tokens"`
		TokenMap         map[string]string `json:"token_map"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("parsing output: %v\n%s", err, out)
	}
	if !strings.Contains(result.Code, "計算する(total)") {
		t.Errorf("Code = %q", result.Code)
	}
	if result.TokenMap["value"] != "値" {
		t.Errorf("TokenMap = %v", result.TokenMap)
	}
	if len(result.UnmappedTokens) != 1 || result.UnmappedTokens[0] != "total" {
		t.Errorf("UnmappedTokens = %v", result.UnmappedTokens)
	}
}

func TestTranslateStrictFlag(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	src := writeSource(t, "main.ts", "const x = 計算する();\n")

	_, err := execute(t, "translate", "--from", "en", "--to", "ja",
		"--dict", writeDict(t), "--strict", src)
	if err == nil || !strings.Contains(err.Error(), "strict mode") {
		t.Fatalf("expected strict mode error, got %v", err)
	}
}

func TestTranslateOutputFile(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	src := writeSource(t, "main.ts", "const value = 1;\n")
	dest := filepath.Join(t.TempDir(), "out.ts")

	_, err := execute(t, "translate", "--from", "en", "--to", "ja",
		"--dict", writeDict(t), "-o", dest, src)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "値") {
		t.Errorf("output file = %q", data)
	}
}

func TestExtract(t *testing.T) {
	src := writeSource(t, "app.ts", "// a note\nfunction greetUser(name) { return \"hi\"; }\n")

	out, err := execute(t, "extract", src)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	var result struct {
		File        string   `json:"file"`
		Grammar     string   `json:"grammar"`
		Identifiers []struct {
			Name string `json:"Name"`
		} `json:"identifiers"`
		Comments []string `json:"comments"`
		Strings  []string `json:"strings"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("parsing output: %v\n%s", err, out)
	}
	if result.Grammar != "tsLike" || result.File != "app.ts" {
		t.Errorf("header = %q/%q", result.File, result.Grammar)
	}
	found := false
	for _, id := range result.Identifiers {
		if id.Name == "greetUser" {
			found = true
		}
	}
	if !found {
		t.Errorf("greetUser missing from %v", result.Identifiers)
	}
	if len(result.Comments) != 1 || result.Comments[0] != "a note" {
		t.Errorf("Comments = %v", result.Comments)
	}
	if len(result.Strings) != 1 || result.Strings[0] != "hi" {
		t.Errorf("Strings = %v", result.Strings)
	}
}

func TestDictInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backend.json")

	out, err := execute(t, "dict", "init", path, "--lang", "JA_JP")
	if err != nil {
		t.Fatalf("dict init: %v", err)
	}
	if !strings.Contains(out, "created") {
		t.Errorf("output = %q", out)
	}

	d, err := dictionary.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Origin != "backend" || d.Language != "ja" {
		t.Errorf("dictionary = %q/%q", d.Origin, d.Language)
	}
}

func TestDictInitRequiresLang(t *testing.T) {
	_, err := execute(t, "dict", "init", filepath.Join(t.TempDir(), "d.json"))
	if err == nil || !strings.Contains(err.Error(), "--lang is required") {
		t.Fatalf("expected missing --lang error, got %v", err)
	}
}

func TestDictMissing(t *testing.T) {
	src := writeSource(t, "main.ts", "// an uncovered note\nfunction calculate(total) {}\n")

	out, err := execute(t, "dict", "missing", "--dict", writeDict(t), src)
	if err != nil {
		t.Fatalf("dict missing: %v", err)
	}
	// "calculate" is mapped; "total" and the comment are not.
	if strings.Contains(out, "term:    calculate") {
		t.Errorf("mapped term listed: %q", out)
	}
	if !strings.Contains(out, "term:    total") {
		t.Errorf("missing term not listed: %q", out)
	}
	if !strings.Contains(out, "comment: an uncovered note") {
		t.Errorf("missing comment not listed: %q", out)
	}
}

func TestDictAddDryRun(t *testing.T) {
	src := writeSource(t, "main.ts", "function sendInvoice(amount) {}\n")

	out, err := execute(t, "dict", "add", "--dict", writeDict(t), "--dry-run", src)
	if err != nil {
		t.Fatalf("dict add --dry-run: %v", err)
	}
	if !strings.Contains(out, "term:    sendInvoice") || !strings.Contains(out, "term:    amount") {
		t.Errorf("dry run output = %q", out)
	}
}
