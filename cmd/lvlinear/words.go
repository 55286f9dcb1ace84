// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinear/frequency"
)

// cleanWords lowercases text, drops commas and periods, and splits on whitespace.
func cleanWords(text string) []string {
	text = strings.ToLower(text)
	text = strings.NewReplacer(",", "", ".", "").Replace(text)

	return strings.Fields(text)
}

func newWordsCmd(cfg settings) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "words [--top K] text...",
		Short: "Count word frequencies and list the most frequent and unique words.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := frequency.Count(cleanWords(strings.Join(args, " ")))
			best, err := tbl.TopK(top)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d words, %d distinct\n", tbl.Total(), tbl.Distinct())
			for _, e := range best {
				fmt.Fprintf(out, "'%s' -> %d times\n", e.Item, e.Count)
			}
			fmt.Fprintf(out, "unique: %v\n", tbl.Unique())

			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", cfg.topK, "number of most frequent words to show")

	return cmd
}
