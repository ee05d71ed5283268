// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"io"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_Set tests the Set method of netAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorMsg    string
		expected    string
	}{
		{
			name:     "valid localhost",
			input:    "localhost:8080",
			expected: "localhost:8080",
		},
		{
			name:     "valid IPv4",
			input:    "127.0.0.1:9090",
			expected: "127.0.0.1:9090",
		},
		{
			name:     "valid IPv6",
			input:    "[::1]:9090",
			expected: "[::1]:9090",
		},
		{
			name:     "all interfaces",
			input:    ":8080",
			expected: ":8080",
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be between 1 and 65535",
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be between 1 and 65535",
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s string
			addr := (*netAddress)(&s)
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Empty(t, s)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, s)
				assert.Equal(t, tt.expected, addr.String())
			}
		})
	}
}

// TestBindFlags tests flag registration and parsing.
func TestBindFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"--config", "/etc/cfgexpand.yaml",
				"--format", "json",
				"--lazy",
				"--output", "yaml",
				"--address", "127.0.0.1:8081",
				"--request-timeout", "30s",
				"--log-level", "debug",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/cfgexpand.yaml", cfg.ConfigFilePath)
				assert.Equal(t, "json", cfg.Input.Format)
				assert.True(t, cfg.Input.Lazy)
				assert.Equal(t, "yaml", cfg.Output.Format)
				assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name: "short flags",
			args: []string{"-c", "settings.toml", "-f", "toml", "-o", "json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "settings.toml", cfg.ConfigFilePath)
				assert.Equal(t, "toml", cfg.Input.Format)
				assert.Equal(t, "json", cfg.Output.Format)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg := BindFlags(fs)

			require.NoError(t, fs.Parse(tt.args))
			tt.validate(t, cfg)
		})
	}
}

// TestBindFlags_InvalidAddress verifies that a malformed address is rejected
// at parse time.
func TestBindFlags_InvalidAddress(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs)

	err := fs.Parse([]string{"--address", "localhost"})
	assert.Error(t, err)
}
