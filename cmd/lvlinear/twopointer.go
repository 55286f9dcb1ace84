// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jedisct1/dlog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinear/twopointer"
)

func newTwoSumCmd() *cobra.Command {
	var target int
	cmd := &cobra.Command{
		Use:   "twosum --target N [--] ints...",
		Short: "Find two values in a sorted list that add up to the target.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}
			i, j, err := twopointer.FindPairWithSum(vals, target)
			if errors.Is(err, twopointer.ErrPairNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "%v target=%d: no pair\n", vals, target)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v target=%d: indices (%d, %d)\n", vals, target, i, j)

			return nil
		},
	}
	cmd.Flags().IntVar(&target, "target", 0, "sum to search for")

	return cmd
}

func newPalindromeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome text...",
		Short: "Check whether text is a palindrome, ignoring punctuation and case.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := strings.Join(args, " ")
			dlog.Debugf("palindrome check on %d runes", len([]rune(s)))
			fmt.Fprintf(cmd.OutOrStdout(), "%q: %t\n", s, twopointer.IsPalindrome(s))

			return nil
		},
	}
}

func newReverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [--] ints...",
		Short: "Reverse a list of integers in place.",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}
			before := fmt.Sprint(vals)
			twopointer.Reverse(vals)
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %v\n", before, vals)

			return nil
		},
	}
}
