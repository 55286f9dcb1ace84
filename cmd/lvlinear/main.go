// SPDX-License-Identifier: MIT

// Command lvlinear runs small demonstrations of the lvlinear primitives:
// two-pointer scans, sliding-window averages, recency tracking, word
// frequencies and linked-list reversal.
//
// Usage:
//
//	lvlinear twosum --target 6 1 2 3 4 6
//	lvlinear palindrome "A man, a plan, a canal: Panama"
//	lvlinear window --size 3 100 102 98 105 110
//	lvlinear recency --limit 3 file1 file2 file1 file3 file2
//	lvlinear words --top 5 "Python is great. Python is easy."
//	lvlinear reverse 1 2 3 4 5
//	lvlinear list 1 2 3 4 5
//	lvlinear twosum --target=-1 -- -4 -1 0 3 9
//
// Arguments that start with '-' are read as flags; put "--" before a list
// that contains negative numbers. Flag values may be negative as written.
//
// Defaults for --size, --limit and --top, plus the log level, may be set in
// a .env file or the environment (LVLINEAR_WINDOW, LVLINEAR_LIMIT,
// LVLINEAR_TOPK, LVLINEAR_LOGLEVEL).
package main

import (
	"os"

	"github.com/jedisct1/dlog"
)

func main() {
	dlog.Init("lvlinear", dlog.SeverityNotice, "")
	cfg := loadSettings()
	dlog.SetLogLevel(dlog.Severity(cfg.logLevel))

	if err := newRootCmd(cfg).Execute(); err != nil {
		dlog.Error(err)
		os.Exit(1)
	}
}
