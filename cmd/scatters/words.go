package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func wordsCmd() *cobra.Command {
	var stopWords string

	cmd := &cobra.Command{
		Use:   "words [path]",
		Short: "Collect a corpus and print its vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := collect(args[0], stopWords)
			if err != nil {
				return err
			}

			words, err := c.Finalize()
			if err != nil {
				return err
			}

			sort.Strings(words)
			for _, w := range words {
				fmt.Println(w)
			}
			fmt.Printf("\nParsed %d files, collected %d unique words\n", c.FilesParsed(), len(words))
			return nil
		},
	}

	cmd.Flags().StringVar(&stopWords, "stopwords", "", "YAML file with a custom stop-word list")

	return cmd
}
