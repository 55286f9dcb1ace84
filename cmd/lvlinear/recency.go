// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/jedisct1/dlog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinear/recency"
)

func newRecencyCmd(cfg settings) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recency [--limit L] keys...",
		Short: "Touch keys in order and print the most-recent-first list.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := recency.New[string, struct{}](limit, recency.WithOnEvict(func(k string, _ struct{}) {
				dlog.Debugf("evicted %q", k)
			}))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, k := range args {
				tr.Touch(k, struct{}{})
				fmt.Fprintf(out, "touch %s: %v\n", k, tr.Keys())
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", cfg.limit, "maximum number of tracked keys")

	return cmd
}
