// Package main provides the scatters binary: a cut-up poetry generator
// that collects words from a corpus of text files and prints randomized
// word scatters.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "scatters",
		Short:         "A cut-up poetry generator from text files",
		Long:          "Scatters ingests plain text, Markdown, and EPUB documents, builds a\nfiltered vocabulary, and scatters a random selection of its words\nacross a character grid.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(generateCmd())
	root.AddCommand(wordsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
