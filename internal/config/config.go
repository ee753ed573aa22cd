/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvDefinitions = "DATAENUM_DEFINITIONS"
	EnvLogLevel    = "DATAENUM_LOG_LEVEL"
)

// CLI captures the command line tool configuration.
type CLI struct {
	// DefinitionPaths lists definition files or directories.
	DefinitionPaths []string
	LogLevel        slog.Level
}

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are given. Missing files are ignored and existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a CLI config from environment variables so main stays lean.
func FromEnv() (CLI, error) {
	cfg := CLI{LogLevel: slog.LevelInfo}

	if defs := os.Getenv(EnvDefinitions); defs != "" {
		cfg.DefinitionPaths = SplitPaths(defs)
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return CLI{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	return cfg, nil
}

// SplitPaths splits an OS path list, also accepting commas, and drops empty entries.
func SplitPaths(list string) []string {
	var out []string
	for _, part := range filepath.SplitList(list) {
		for _, p := range strings.Split(part, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
