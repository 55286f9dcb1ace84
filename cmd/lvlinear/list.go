// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinear/linkedlist"
)

// formatList renders head as "1 -> 2 -> None".
func formatList(head *linkedlist.Node[int]) string {
	var b strings.Builder
	for v := range linkedlist.All(head) {
		fmt.Fprintf(&b, "%d -> ", v)
	}
	b.WriteString("None")

	return b.String()
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [--] ints...",
		Short: "Build a singly-linked list and reverse its links.",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}
			head := linkedlist.FromSlice(vals)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "original: %s\n", formatList(head))
			fmt.Fprintf(out, "reversed: %s\n", formatList(linkedlist.Reverse(head)))

			return nil
		},
	}
}
