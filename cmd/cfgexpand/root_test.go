// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cfg-expand/internal/codec"
	"github.com/MKhiriev/go-cfg-expand/internal/expander"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"CFGEXPAND_CONFIG", "CFGEXPAND_INPUT_PATH", "CFGEXPAND_INPUT_FORMAT", "CFGEXPAND_OUTPUT_FORMAT"} {
		t.Setenv(k, "")
	}

	var out bytes.Buffer
	cmd := newRootCmd(buildInfo{version: "1.0.0", date: "today", commit: "abc"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level=error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

var tree = map[string]string{
	"root.yaml":    "name: svc\n\"@file\": common.yaml\ndb:\n  \"@file\": db/main.yaml\n",
	"common.yaml":  "region: eu\n",
	"db/main.yaml": "host: localhost\n",
}

// ── expand ────────────────────────────────────────────────────────────────────

func TestExpand_PrintsYAML(t *testing.T) {
	dir := writeTree(t, tree)

	out, err := run(t, "expand", filepath.Join(dir, "root.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "name: svc\nregion: eu\ndb:\n  host: localhost\n", out)
}

func TestExpand_PrintsJSON(t *testing.T) {
	dir := writeTree(t, tree)

	out, err := run(t, "expand", "-o", "json", filepath.Join(dir, "root.yaml"))

	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "svc", "region": "eu", "db": {"host": "localhost"}}`, out)
}

func TestExpand_ForcedInputFormat(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"root.conf": `{"a": 1, "@file": "b.conf"}`,
		"b.conf":    `{"b": 2}`,
	})

	out, err := run(t, "expand", "--format", "json", "--lazy", filepath.Join(dir, "root.conf"))

	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb: 2\n", out)
}

func TestExpand_PathFromEnvironment(t *testing.T) {
	dir := writeTree(t, tree)

	var out bytes.Buffer
	cmd := newRootCmd(buildInfo{})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"expand", "--log-level", "error"})
	t.Setenv("CFGEXPAND_CONFIG", "")
	t.Setenv("CFGEXPAND_OUTPUT_FORMAT", "")
	t.Setenv("CFGEXPAND_INPUT_FORMAT", "")
	t.Setenv("CFGEXPAND_INPUT_PATH", filepath.Join(dir, "common.yaml"))

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "region: eu\n", out.String())
}

func TestExpand_Errors(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"root.yaml":    "\"@file\": missing.yaml\n",
		"cycle.yaml":   "\"@file\": cycle.yaml\n",
		"settings.ini": "",
	})

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no input", args: []string{"expand"}, wantErr: errNoInput},
		{name: "missing include", args: []string{"expand", filepath.Join(dir, "root.yaml")}, wantErr: expander.ErrInvalidFilePath},
		{name: "cycle", args: []string{"expand", filepath.Join(dir, "cycle.yaml")}, wantErr: expander.ErrIncludeCycle},
		{name: "unknown extension", args: []string{"expand", filepath.Join(dir, "settings.ini")}, wantErr: codec.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpand_InvalidOutputFormat(t *testing.T) {
	dir := writeTree(t, tree)

	_, err := run(t, "expand", "-o", "toml", filepath.Join(dir, "root.yaml"))

	assert.Error(t, err)
}

// ── raw ───────────────────────────────────────────────────────────────────────

func TestRaw_KeepsDirectives(t *testing.T) {
	dir := writeTree(t, tree)

	out, err := run(t, "raw", "-o", "json", filepath.Join(dir, "root.yaml"))

	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "svc", "@file": "common.yaml", "db": {"@file": "db/main.yaml"}}`, out)
}

// ── version ───────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "Build version: 1.0.0\nBuild date: today\nBuild commit: abc\n", out)
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")

	require.NoError(t, err)
	assert.Equal(t, "cfgexpand version 1.0.0\n", out)
}

func TestCurrentBuild_Defaults(t *testing.T) {
	info := currentBuild()

	assert.Equal(t, "N/A", info.version)
	assert.Equal(t, "N/A", info.date)
	assert.Equal(t, "N/A", info.commit)
}
