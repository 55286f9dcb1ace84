// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree with flag defaults taken from cfg.
func newRootCmd(cfg settings) *cobra.Command {
	root := &cobra.Command{
		Use:   "lvlinear",
		Short: "Demonstrations of classic linear-structure techniques.",
		Long: `lvlinear runs the two-pointer, sliding-window, recency, frequency ` +
			`and linked-list primitives on command-line input and prints the results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (put -- before negative arguments)", err)
	})
	root.AddCommand(
		newTwoSumCmd(),
		newPalindromeCmd(),
		newReverseCmd(),
		newWindowCmd(cfg),
		newRecencyCmd(cfg),
		newWordsCmd(cfg),
		newListCmd(),
	)

	return root
}

// parseInts converts every argument to an int. Negative values only reach
// it when the caller ends flag parsing with "--".
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q) is not an integer: %w", i+1, a, err)
		}
		out[i] = v
	}

	return out, nil
}
