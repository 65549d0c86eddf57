/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the settings needed to reach the shop table.
type Config struct {
	AWS AWS `yaml:"aws"`

	// TableName is the single table holding every entity.
	// Default: "perfume"
	TableName string `yaml:"tableName"`

	// LogLevel is a zap level name.
	// Default: "info"
	LogLevel string `yaml:"logLevel"`
}

// AWS holds the connection settings of the DynamoDB client.
type AWS struct {
	// Default: "eu-north-1"
	Region string `yaml:"region"`

	// Static credentials. When either is empty the default AWS credential
	// chain is used.
	AccessKeyID     string `yaml:"accessKeyId"`
	SecretAccessKey string `yaml:"secretAccessKey"`

	// Endpoint overrides the DynamoDB endpoint, e.g. for DynamoDB Local.
	Endpoint string `yaml:"endpoint"`
}

// DefaultConfig returns the settings of the production table.
func DefaultConfig() Config {
	return Config{
		AWS:       AWS{Region: "eu-north-1"},
		TableName: "perfume",
		LogLevel:  "info",
	}
}

// Environment variables read by Load. The first name of each pair wins.
var envVars = []struct {
	names []string
	set   func(*Config, string)
}{
	{[]string{"AWS_REGION"}, func(c *Config, v string) { c.AWS.Region = v }},
	{[]string{"ACCESS_KEY", "AWS_ACCESS_KEY_ID"}, func(c *Config, v string) { c.AWS.AccessKeyID = v }},
	{[]string{"SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY"}, func(c *Config, v string) { c.AWS.SecretAccessKey = v }},
	{[]string{"DDB_ENDPOINT"}, func(c *Config, v string) { c.AWS.Endpoint = v }},
	{[]string{"DDB_TABLE"}, func(c *Config, v string) { c.TableName = v }},
	{[]string{"LOG_LEVEL"}, func(c *Config, v string) { c.LogLevel = v }},
}

// Load builds a Config from the defaults, then the YAML file at path if path
// is not empty, then a .env file in the working directory if present, then
// the process environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	// .env values never override variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	cfg.applyEnv(os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	for _, ev := range envVars {
		for _, name := range ev.names {
			if v, ok := lookup(name); ok && v != "" {
				ev.set(c, v)
				break
			}
		}
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	if c.AWS.Region == "" {
		return errors.New("config: aws region is required")
	}
	if c.TableName == "" {
		return errors.New("config: table name is required")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
