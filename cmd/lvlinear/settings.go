// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strconv"

	"github.com/jedisct1/dlog"
	"github.com/joho/godotenv"
)

const (
	envWindow   = "LVLINEAR_WINDOW"
	envLimit    = "LVLINEAR_LIMIT"
	envTopK     = "LVLINEAR_TOPK"
	envLogLevel = "LVLINEAR_LOGLEVEL"
)

// settings holds flag defaults resolved from the environment.
type settings struct {
	window   int
	limit    int
	topK     int
	logLevel int
}

// defaultSettings mirrors the classic demo parameters.
func defaultSettings() settings {
	return settings{
		window:   3,
		limit:    3,
		topK:     5,
		logLevel: int(dlog.SeverityNotice),
	}
}

// loadSettings reads .env (if present) into the process environment without
// overriding existing variables, then applies any LVLINEAR_* overrides.
func loadSettings(files ...string) settings {
	if err := godotenv.Load(files...); err != nil {
		dlog.Debugf("no .env loaded: %v", err)
	}
	s := defaultSettings()
	s.window = envInt(envWindow, s.window)
	s.limit = envInt(envLimit, s.limit)
	s.topK = envInt(envTopK, s.topK)
	s.logLevel = envInt(envLogLevel, s.logLevel)

	return s
}

// envInt returns the integer value of key, or def when unset or malformed.
func envInt(key string, def int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		dlog.Warnf("ignoring %s=%q: %v", key, raw, err)
		return def
	}

	return v
}
