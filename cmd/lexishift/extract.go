package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexishift/lexishift/extractor"
)

func newExtractCmd() *cobra.Command {
	var (
		identifiers bool
		comments    bool
		strings     bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "List the translatable units of a source file as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, name, err := readInput(args)
			if err != nil {
				return err
			}

			ext, ok := extractor.ForPath(name)
			if !ok {
				ext = extractor.NewTSLike()
			}
			extraction, err := ext.Extract(input)
			if err != nil {
				return fmt.Errorf("extracting: %w", err)
			}

			// Default: everything.
			if !identifiers && !comments && !strings {
				identifiers, comments, strings = true, true, true
			}

			out := struct {
				File        string                 `json:"file"`
				Grammar     string                 `json:"grammar"`
				Identifiers []extractor.Identifier `json:"identifiers,omitempty"`
				Comments    []string               `json:"comments,omitempty"`
				Strings     []string               `json:"strings,omitempty"`
			}{
				File:    name,
				Grammar: ext.Kind(),
			}
			if identifiers {
				out.Identifiers = extraction.Declared
			}
			if comments {
				for _, c := range extraction.Comments {
					out.Comments = append(out.Comments, c.Text)
				}
			}
			if strings {
				for _, s := range extraction.Strings {
					out.Strings = append(out.Strings, s.Value)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&identifiers, "identifiers", false, "include declared identifiers")
	cmd.Flags().BoolVar(&comments, "comments", false, "include comment texts")
	cmd.Flags().BoolVar(&strings, "strings", false, "include string literal values")
	return cmd
}
