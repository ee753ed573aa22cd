/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvDefinitions, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.DefinitionPaths)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestFromEnv_Values(t *testing.T) {
	t.Setenv(EnvDefinitions, "enums/currency.yaml, enums/doors")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"enums/currency.yaml", "enums/doors"}, cfg.DefinitionPaths)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromEnv_BadLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte("DATAENUM_DEFINITIONS=from-dotenv\n"), 0o600))

	// t.Setenv registers cleanup; unsetting lets godotenv fill the variable.
	t.Setenv(EnvDefinitions, "")
	require.NoError(t, os.Unsetenv(EnvDefinitions))

	require.NoError(t, LoadDotEnv(env, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "from-dotenv", os.Getenv(EnvDefinitions))

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"from-dotenv"}, cfg.DefinitionPaths)
}

func TestSplitPaths(t *testing.T) {
	sep := string(filepath.ListSeparator)
	assert.Equal(t, []string{"a", "b", "c"}, SplitPaths("a"+sep+"b, c"))
	assert.Nil(t, SplitPaths(" , "))
}
