package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexishift/lexishift"
	"github.com/lexishift/lexishift/dictionary"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lexishift",
		Short:         "Translate source code between human languages",
		Long:          "Lexishift rewrites identifiers, comments and optionally string literals,\nkeywords and punctuation between natural languages, driven by a hub\ndictionary that stores only English↔foreign pairs.",
		Version:       lexishift.FullVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newTranslateCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newDictCmd())
	return root
}

// loadHub loads the given dictionary files into one runtime view.
func loadHub(paths []string) (*dictionary.MultiLanguage, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("at least one --dict file is required")
	}
	dicts := make([]*dictionary.Dictionary, 0, len(paths))
	for _, path := range paths {
		d, err := dictionary.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		dicts = append(dicts, d)
	}
	return dictionary.NewMultiLanguage(dicts...)
}
