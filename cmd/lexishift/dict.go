package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexishift/lexishift"
	"github.com/lexishift/lexishift/config"
	"github.com/lexishift/lexishift/dictionary"
	"github.com/lexishift/lexishift/extractor"
	"github.com/lexishift/lexishift/provider"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage translation dictionaries",
	}
	cmd.AddCommand(newDictInitCmd())
	cmd.AddCommand(newDictAddCmd())
	cmd.AddCommand(newDictMissingCmd())
	return cmd
}

func newDictInitCmd() *cobra.Command {
	var (
		origin string
		lang   string
	)

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Create an empty dictionary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if lang == "" {
				return fmt.Errorf("--lang is required")
			}
			if origin == "" {
				origin = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			d := dictionary.New(origin, string(lexishift.NormalizeLanguage(lexishift.LanguageCode(lang))))
			if err := d.Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (origin %q, language %q)\n", args[0], d.Origin, d.Language)
			return nil
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "", "dictionary origin name (default: file name)")
	cmd.Flags().StringVar(&lang, "lang", "", "dictionary language code")
	return cmd
}

func newDictAddCmd() *cobra.Command {
	var (
		dictPath    string
		apiKey      string
		model       string
		contextHint string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "add <file>...",
		Short: "Translate the missing terms and comments of source files into a dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if apiKey == "" {
				apiKey = cfg.OpenAI.APIKey
			}
			if model == "" {
				model = cfg.OpenAI.Model
			}

			d, err := dictionary.Load(dictPath)
			if err != nil {
				return err
			}

			terms, comments, err := collectMissing(d, args)
			if err != nil {
				return err
			}

			log.Info().
				Str("dictionary", dictPath).
				Str("language", d.Language).
				Int("terms", len(terms)).
				Int("comments", len(comments)).
				Msg("missing entries collected")

			if len(terms) == 0 && len(comments) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "dictionary is already complete for these files")
				return nil
			}

			if dryRun {
				for _, t := range terms {
					fmt.Fprintf(cmd.OutOrStdout(), "term:    %s\n", t)
				}
				for _, c := range comments {
					fmt.Fprintf(cmd.OutOrStdout(), "comment: %s\n", c)
				}
				return nil
			}

			if apiKey == "" {
				return fmt.Errorf("OpenAI API key required (--api-key or OPENAI_API_KEY env)")
			}

			backend := provider.NewRateLimited(
				provider.NewRetrying(
					provider.NewOpenAI(provider.OpenAIConfig{APIKey: apiKey, Model: model}),
					provider.DefaultRetryConfig(),
				),
				provider.RateLimitConfig{RequestsPerMinute: 60},
			)

			ctx := cmd.Context()
			if err := mintEntries(ctx, backend, d, terms, comments, contextHint); err != nil {
				return err
			}
			if err := d.Save(dictPath); err != nil {
				return err
			}

			log.Info().
				Str("dictionary", dictPath).
				Str("version", d.Metadata.Version).
				Msg("dictionary updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "dictionary file to update")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	cmd.Flags().StringVar(&model, "model", "", "OpenAI model")
	cmd.Flags().StringVar(&contextHint, "context", "", "codebase description, to disambiguate domain terms")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list missing entries without calling the API")
	_ = cmd.MarkFlagRequired("dict")
	return cmd
}

func newDictMissingCmd() *cobra.Command {
	var dictPath string

	cmd := &cobra.Command{
		Use:   "missing <file>...",
		Short: "List identifiers and comments with no dictionary entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dictionary.Load(dictPath)
			if err != nil {
				return err
			}
			terms, comments, err := collectMissing(d, args)
			if err != nil {
				return err
			}
			for _, t := range terms {
				fmt.Fprintf(cmd.OutOrStdout(), "term:    %s\n", t)
			}
			for _, c := range comments {
				fmt.Fprintf(cmd.OutOrStdout(), "comment: %s\n", c)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dictPath, "dict", "", "dictionary file to check against")
	_ = cmd.MarkFlagRequired("dict")
	return cmd
}

// collectMissing extracts declared identifiers, comment texts and component
// template texts from the files and returns the ones absent from the
// dictionary, sorted. Names that are already foreign spellings in the
// dictionary are skipped rather than re-translated.
func collectMissing(d *dictionary.Dictionary, paths []string) ([]string, []string, error) {
	mapper := dictionary.NewTokenMapper(d.Terms)

	termSet := make(map[string]bool)
	commentSet := make(map[string]bool)

	for _, path := range paths {
		data, err := os.ReadFile(path) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		src := string(data)

		if extractor.IsMarkdownPath(path) {
			for _, block := range extractor.NewMarkdown().Blocks(src) {
				if !hasCommentEntry(d, block.Text) {
					commentSet[block.Text] = true
				}
			}
			continue
		}

		ext, ok := extractor.ForPath(path)
		if !ok {
			ext = extractor.NewTSLike()
		}
		extraction, err := ext.Extract(src)
		if err != nil {
			// One unparseable file must not abort the batch.
			log.Warn().Err(err).Str("file", path).Msg("skipping unparseable file")
			continue
		}

		for _, id := range extraction.Declared {
			if _, exists := mapper.Forward(id.Name); exists {
				continue
			}
			if _, foreign := mapper.Reverse(id.Name); foreign {
				continue
			}
			termSet[id.Name] = true
		}
		for _, c := range extraction.Comments {
			text := strings.TrimSpace(c.Text)
			if text != "" && !hasCommentEntry(d, text) {
				commentSet[text] = true
			}
		}

		if ext.Kind() == extractor.KindTemplate {
			texts, err := extractor.TemplateTexts(src)
			if err == nil {
				for _, text := range texts {
					if !hasCommentEntry(d, text) {
						commentSet[text] = true
					}
				}
			}
		}
	}

	return sortedSet(termSet), sortedSet(commentSet), nil
}

func hasCommentEntry(d *dictionary.Dictionary, english string) bool {
	entry, ok := d.Comments[lexishift.CommentHash(english)]
	if !ok {
		return false
	}
	_, ok = entry[d.Language]
	return ok
}

// mintEntries translates the missing terms and comments in two batches and
// merges the results into the dictionary.
func mintEntries(ctx context.Context, backend provider.Translator, d *dictionary.Dictionary, terms, comments []string, contextHint string) error {
	if len(terms) > 0 {
		translated, err := backend.Translate(ctx, provider.Request{
			Texts:      terms,
			Kind:       provider.KindIdentifier,
			SourceLang: lexishift.English,
			TargetLang: lexishift.LanguageCode(d.Language),
			Context:    contextHint,
		})
		if err != nil {
			return fmt.Errorf("translating terms: %w", err)
		}
		pairs := make(map[string]string, len(terms))
		for i, term := range terms {
			pairs[term] = translated[i]
		}
		d.AddTerms(pairs)
		log.Info().Int("count", len(pairs)).Msg("terms added")
	}

	if len(comments) > 0 {
		translated, err := backend.Translate(ctx, provider.Request{
			Texts:      comments,
			Kind:       provider.KindComment,
			SourceLang: lexishift.English,
			TargetLang: lexishift.LanguageCode(d.Language),
			Context:    contextHint,
		})
		if err != nil {
			return fmt.Errorf("translating comments: %w", err)
		}
		for i, english := range comments {
			d.AddComment(english, translated[i])
		}
		log.Info().Int("count", len(comments)).Msg("comments added")
	}

	return nil
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
