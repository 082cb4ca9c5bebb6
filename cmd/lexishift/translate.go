package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexishift/lexishift"
	"github.com/lexishift/lexishift/cache"
	"github.com/lexishift/lexishift/config"
	"github.com/lexishift/lexishift/dictionary"
)

func newTranslateCmd() *cobra.Command {
	var (
		from     string
		to       string
		dicts    []string
		scope    string
		strict   bool
		output   string
		jsonOut  bool
		cacheTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Translate a source file (or stdin) between two languages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if from == "" {
				from = cfg.SourceLang
			}
			if to == "" {
				to = cfg.TargetLang
			}
			if to == "" {
				return fmt.Errorf("--to is required")
			}
			if len(dicts) == 0 {
				dicts = cfg.Dictionaries
			}
			if scope != "" {
				cfg.Scope.Preset = scope
			}
			if cmd.Flags().Changed("strict") {
				cfg.StrictMode = strict
			}

			hub, err := loadHub(dicts)
			if err != nil {
				return err
			}

			input, name, err := readInput(args)
			if err != nil {
				return err
			}

			opts := []lexishift.Option{
				lexishift.WithScope(cfg.EngineScope()),
				lexishift.WithStrictMode(cfg.StrictMode),
			}
			if resultCache, ok := buildCache(cfg, cacheTTL); ok {
				opts = append(opts, lexishift.WithCache(resultCache))
			}
			engine := lexishift.New(hub, opts...)

			start := time.Now()
			result, err := engine.TranslateFile(name, input, lexishift.LanguageCode(from), lexishift.LanguageCode(to))
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
			elapsed := time.Since(start)

			log.Debug().
				Str("file", name).
				Str("from", from).
				Str("to", to).
				Int("translated", len(result.TranslatedTokens)).
				Int("unmapped", len(result.UnmappedTokens)).
				Dur("elapsed", elapsed).
				Msg("translated")

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if jsonOut {
				return writeResultJSON(out, hub, result, from, to, elapsed)
			}
			_, err = fmt.Fprint(out, result.Code)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source language code (default from config)")
	cmd.Flags().StringVar(&to, "to", "", "target language code")
	cmd.Flags().StringSliceVar(&dicts, "dict", nil, "dictionary file(s), repeatable")
	cmd.Flags().StringVar(&scope, "scope", "", "scope preset: default, everything, comments-only, identifiers-only")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on identifiers that look already translated")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full result as JSON")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", time.Hour, "result cache TTL (0 disables caching)")
	return cmd
}

// buildCache selects the result cache backend: Redis when configured,
// in-memory otherwise, none when the TTL is zero.
func buildCache(cfg *config.Config, ttl time.Duration) (lexishift.TranslationCache, bool) {
	if ttl <= 0 {
		return nil, false
	}
	if cfg.Redis.URL != "" {
		redisTTL := time.Duration(cfg.Redis.TTLSeconds) * time.Second
		if redisTTL == 0 {
			redisTTL = ttl
		}
		c, err := cache.NewRedis(cache.RedisConfig{URL: cfg.Redis.URL, TTL: redisTTL})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, falling back to in-memory cache")
			return cache.NewMemory(ttl), true
		}
		return c, true
	}
	return cache.NewMemory(ttl), true
}

// readInput reads the positional file argument, or stdin when absent.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(args[0]) // #nosec G304 - CLI tool reads user-specified files
	if err != nil {
		return "", "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), filepath.Base(args[0]), nil
}

type resultJSON struct {
	Code             string            `json:"code"`
	TranslatedTokens []string          `json:"translated_tokens"`
	UnmappedTokens   []string          `json:"unmapped_tokens"`
	TokenMap         map[string]string `json:"token_map,omitempty"`
	ElapsedMs        int64             `json:"elapsed_ms"`
}

// writeResultJSON emits the result plus the effective old→new token map,
// which downstream tooling uses to reverse a translation.
func writeResultJSON(w io.Writer, hub *dictionary.MultiLanguage, result *lexishift.Result, from, to string, elapsed time.Duration) error {
	tokenMap := make(map[string]string, len(result.TranslatedTokens))
	for _, token := range result.TranslatedTokens {
		if translated, ok := hub.Translate(token, from, to); ok {
			tokenMap[token] = translated
		}
	}

	out := resultJSON{
		Code:             result.Code,
		TranslatedTokens: result.TranslatedTokens,
		UnmappedTokens:   result.UnmappedTokens,
		TokenMap:         tokenMap,
		ElapsedMs:        elapsed.Milliseconds(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
