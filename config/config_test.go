/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// clearEnv blanks every variable Load reads so the host environment cannot
// leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, ev := range envVars {
		for _, name := range ev.names {
			t.Setenv(name, "")
		}
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shopstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "eu-north-1", cfg.AWS.Region)
	assert.Equal(t, "perfume", cfg.TableName)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
aws:
  region: us-east-1
  endpoint: http://localhost:8000
tableName: shop-dev
logLevel: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "http://localhost:8000", cfg.AWS.Endpoint)
	assert.Equal(t, "shop-dev", cfg.TableName)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level())

	t.Setenv("DDB_TABLE", "shop-ci")
	t.Setenv("ACCESS_KEY", "AKIA1")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA2")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shop-ci", cfg.TableName)
	assert.Equal(t, "AKIA1", cfg.AWS.AccessKeyID, "ACCESS_KEY takes precedence")
	assert.Equal(t, "secret", cfg.AWS.SecretAccessKey)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "tableName: [unterminated"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "tabel: typo\n"))
	assert.Error(t, err, "unknown keys are rejected")

	t.Setenv("LOG_LEVEL", "chatty")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"no region", func(c *Config) { c.AWS.Region = "" }, true},
		{"no table", func(c *Config) { c.TableName = "" }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"warn level", func(c *Config) { c.LogLevel = "warn" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
