// Package config loads project configuration for the CLI: a .lexishift.yaml
// file when present, a .env file, and environment variable overrides, in
// that order of precedence (environment wins).
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/lexishift/lexishift"
)

// DefaultFile is the project config file looked up in the working directory.
const DefaultFile = ".lexishift.yaml"

// Config is the resolved project configuration.
type Config struct {
	SourceLang   string       `yaml:"source_lang"`
	TargetLang   string       `yaml:"target_lang"`
	Dictionaries []string     `yaml:"dictionaries"`
	StrictMode   bool         `yaml:"strict_mode"`
	Scope        ScopeConfig  `yaml:"scope"`
	Redis        RedisConfig  `yaml:"redis"`
	OpenAI       OpenAIConfig `yaml:"openai"`
}

// ScopeConfig selects the translation scope: a named preset, optionally
// adjusted by explicit flags.
type ScopeConfig struct {
	Preset         string `yaml:"preset"` // default, everything, comments-only, identifiers-only
	Identifiers    *bool  `yaml:"identifiers"`
	Comments       *bool  `yaml:"comments"`
	StringLiterals *bool  `yaml:"string_literals"`
	Keywords       *bool  `yaml:"keywords"`
	Punctuation    *bool  `yaml:"punctuation"`
	MarkdownFiles  *bool  `yaml:"markdown_files"`
}

// RedisConfig configures the optional shared result cache.
type RedisConfig struct {
	URL        string `yaml:"url"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// OpenAIConfig configures the dictionary-entry provider.
type OpenAIConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"-"` // environment only, never persisted
}

// Load resolves the configuration: defaults, then DefaultFile if present,
// then .env and environment overrides.
func Load() *Config {
	cfg := defaults()

	if _, err := os.Stat(DefaultFile); err == nil {
		fileCfg, err := LoadFile(DefaultFile)
		if err != nil {
			log.Warn().Err(err).Str("file", DefaultFile).Msg("ignoring unreadable config file")
		} else {
			cfg = fileCfg
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}
	applyEnv(cfg)
	return cfg
}

// LoadFile parses a yaml config file on top of the defaults. Environment
// overrides are not applied; Load does that.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, err
	}
	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		SourceLang: "en",
		Scope:      ScopeConfig{Preset: "default"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
	}
}

func applyEnv(cfg *Config) {
	cfg.SourceLang = getEnv("LEXISHIFT_SOURCE_LANG", cfg.SourceLang)
	cfg.TargetLang = getEnv("LEXISHIFT_TARGET_LANG", cfg.TargetLang)
	if dicts := os.Getenv("LEXISHIFT_DICTIONARIES"); dicts != "" {
		cfg.Dictionaries = splitList(dicts)
	}
	if strict := os.Getenv("LEXISHIFT_STRICT"); strict != "" {
		cfg.StrictMode = strict == "1" || strings.EqualFold(strict, "true")
	}
	cfg.Redis.URL = getEnv("REDIS_URL", cfg.Redis.URL)
	cfg.Redis.TTLSeconds = getEnvInt("REDIS_TTL_SECONDS", cfg.Redis.TTLSeconds)
	cfg.OpenAI.Model = getEnv("OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.APIKey = getEnv("OPENAI_API_KEY", cfg.OpenAI.APIKey)
}

// EngineScope resolves the configured scope to the engine's value type.
func (c *Config) EngineScope() lexishift.Scope {
	scope := presetScope(c.Scope.Preset)
	applyFlag(&scope.Identifiers, c.Scope.Identifiers)
	applyFlag(&scope.Comments, c.Scope.Comments)
	applyFlag(&scope.StringLiterals, c.Scope.StringLiterals)
	applyFlag(&scope.Keywords, c.Scope.Keywords)
	applyFlag(&scope.Punctuation, c.Scope.Punctuation)
	applyFlag(&scope.MarkdownFiles, c.Scope.MarkdownFiles)
	return scope
}

func presetScope(preset string) lexishift.Scope {
	switch strings.ToLower(preset) {
	case "everything":
		return lexishift.ScopeEverything
	case "comments-only":
		return lexishift.ScopeCommentsOnly
	case "identifiers-only":
		return lexishift.ScopeIdentifiersOnly
	default:
		return lexishift.ScopeDefault
	}
}

func applyFlag(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
