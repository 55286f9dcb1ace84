// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinear/window"
)

func newWindowCmd(cfg settings) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "window [--size C] [--] values...",
		Short: "Print the moving average of every full window.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseInts(args)
			if err != nil {
				return err
			}
			w, err := window.New[int](size)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, v := range vals {
				w.Push(v)
				avg, err := w.Average()
				if err != nil {
					continue
				}
				fmt.Fprintf(out, "day %d: window=%v avg=%.2f\n", i+1, w.Values(), avg)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", cfg.window, "window capacity")

	return cmd
}
