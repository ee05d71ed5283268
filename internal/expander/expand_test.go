// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expander

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cfg-expand/internal/codec"
	"github.com/MKhiriev/go-cfg-expand/internal/document"
)

func loadTree(t *testing.T, files map[string]string, root string) (*document.Mapping, error) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeFile(t, dir, name, content)
	}
	e, err := NewYAML(filepath.Join(dir, root), WithLazy())
	require.NoError(t, err)
	return e.Load()
}

// TestExpand_WithoutDirectivesIsIdentity checks that a document without
// directives expands to itself, key order included.
func TestExpand_WithoutDirectivesIsIdentity(t *testing.T) {
	doc := yamlDoc(t, `
zeta: 1
alpha:
  nested: {b: 2, a: [1, 2, {c: 3}]}
  flag: true
list: [x, y]
`)
	e, err := NewYAML("unused.yaml", WithLazy())
	require.NoError(t, err)

	got, err := e.Expand(doc)
	require.NoError(t, err)
	assert.True(t, document.Equal(doc, got))
	assert.NotSame(t, doc, got)
}

func TestExpand_DirectiveIsReplacedByContents(t *testing.T) {
	cfg, err := loadTree(t, map[string]string{
		"root.yaml":  "\"@file\": other.yaml\n",
		"other.yaml": "a: 1\n",
	}, "root.yaml")
	require.NoError(t, err)

	want := yamlDoc(t, "a: 1\n")
	assert.True(t, document.Equal(want, cfg))
	assert.False(t, cfg.HasIncludes())
}

func TestExpand_Precedence(t *testing.T) {
	tests := []struct {
		name string
		root string
		want string
	}{
		{
			name: "directive overrides earlier sibling",
			root: "a: 1\n\"@file\": x.yaml\n",
			want: "a: 2\n",
		},
		{
			name: "later sibling overrides directive",
			root: "\"@file\": x.yaml\na: 1\n",
			want: "a: 1\n",
		},
		{
			name: "overridden key keeps its position",
			root: "a: 1\nb: 1\n\"@file\": x.yaml\n",
			want: "a: 2\nb: 1\n",
		},
		{
			name: "new keys are appended",
			root: "z: 0\n\"@file\": y.yaml\n",
			want: "z: 0\nb: 3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadTree(t, map[string]string{
				"root.yaml": tt.root,
				"x.yaml":    "a: 2\n",
				"y.yaml":    "b: 3\n",
			}, "root.yaml")
			require.NoError(t, err)
			assert.True(t, document.Equal(yamlDoc(t, tt.want), cfg), "got keys %v", cfg.Keys())
		})
	}
}

func TestExpand_NestedMappingIsExpanded(t *testing.T) {
	cfg, err := loadTree(t, map[string]string{
		"root.yaml": "outer:\n  \"@file\": y.yaml\n",
		"y.yaml":    "b: 3\n",
	}, "root.yaml")
	require.NoError(t, err)

	assert.True(t, document.Equal(yamlDoc(t, "outer:\n  b: 3\n"), cfg))
}

// TestExpand_IncludedDocumentsAreExpandedRecursively covers directives inside
// included documents, both at their top level and in nested mappings.
func TestExpand_IncludedDocumentsAreExpandedRecursively(t *testing.T) {
	cfg, err := loadTree(t, map[string]string{
		"root.yaml": "\"@file\": level1.yaml\n",
		"level1.yaml": "one: 1\n\"@file\": level2.yaml\n" +
			"db:\n  \"@file\": db.yaml\n",
		"level2.yaml": "two: 2\n",
		"db.yaml":     "dsn: postgres://localhost\n",
	}, "root.yaml")
	require.NoError(t, err)

	want := yamlDoc(t, "one: 1\ntwo: 2\ndb:\n  dsn: postgres://localhost\n")
	assert.True(t, document.Equal(want, cfg), "got keys %v", cfg.Keys())
}

// TestExpand_FallbackIsAlwaysRootDirectory checks that a directive inside a
// document living in a sub directory is still resolved against the root
// document's directory, never the including document's.
func TestExpand_FallbackIsAlwaysRootDirectory(t *testing.T) {
	cfg, err := loadTree(t, map[string]string{
		"root.yaml":         "\"@file\": sub/a.yaml\n",
		"sub/a.yaml":        "a: 1\n\"@file\": b.yaml\n",
		"b.yaml":            "b: from-root-dir\n",
		"sub/b.yaml":        "b: from-sub-dir\n",
		"sub/unrelated.txt": "",
	}, "root.yaml")
	require.NoError(t, err)

	v, ok := cfg.Get("b")
	require.True(t, ok)
	assert.Equal(t, document.String("from-root-dir"), v)
}

func TestExpand_PathAsGivenWinsOverFallback(t *testing.T) {
	dir := t.TempDir()
	abs := writeFile(t, t.TempDir(), "elsewhere.yaml", "where: absolute\n")
	writeFile(t, dir, "root.yaml", "\"@file\": "+abs+"\n")

	e, err := NewYAML(filepath.Join(dir, "root.yaml"))
	require.NoError(t, err)

	cfg, err := e.Load()
	require.NoError(t, err)
	v, _ := cfg.Get("where")
	assert.Equal(t, document.String("absolute"), v)
}

func TestExpand_MissingIncludeIsInvalidFilePath(t *testing.T) {
	_, err := loadTree(t, map[string]string{
		"root.yaml": "a: 1\nnested:\n  \"@file\": nowhere.yaml\n",
	}, "root.yaml")

	var pathErr *InvalidFilePathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "nowhere.yaml", pathErr.Path)
	assert.Equal(t, "nowhere.yaml", filepath.Base(pathErr.Fallback))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "nowhere.yaml is not a file")
}

func TestExpand_DirectoryIsNotAFile(t *testing.T) {
	_, err := loadTree(t, map[string]string{
		"root.yaml":       "\"@file\": conf.d\n",
		"conf.d/inc.yaml": "a: 1\n",
	}, "root.yaml")

	assert.ErrorIs(t, err, ErrInvalidFilePath)
}

func TestExpand_UnreadableFallbackIsInvalidFilePath(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}

	dir := t.TempDir()
	inc := writeFile(t, dir, "secret.yaml", "a: 1\n")
	require.NoError(t, os.Chmod(inc, 0o000))
	writeFile(t, dir, "root.yaml", "\"@file\": secret.yaml\n")

	_, err := NewYAML(filepath.Join(dir, "root.yaml"))

	var pathErr *InvalidFilePathError
	require.ErrorAs(t, err, &pathErr)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestExpand_IncludedDocumentMustBeMapping(t *testing.T) {
	_, err := loadTree(t, map[string]string{
		"root.yaml": "\"@file\": list.yaml\n",
		"list.yaml": "- a\n",
	}, "root.yaml")

	assert.ErrorIs(t, err, ErrNotMapping)
}

func TestExpand_SequencesAreNotInspected(t *testing.T) {
	cfg, err := loadTree(t, map[string]string{
		"root.yaml": "items:\n  - \"@file\": x.yaml\n  - plain\n",
		"x.yaml":    "a: 1\n",
	}, "root.yaml")
	require.NoError(t, err)

	items, _ := cfg.Get("items")
	seq := items.(document.Sequence)
	require.Len(t, seq, 2)
	first := seq[0].(*document.Mapping)
	assert.Equal(t, []document.Item{document.Include{Path: "x.yaml"}}, first.Items())
}

func TestExpand_NonStringDirectiveInSequenceIsKept(t *testing.T) {
	dir := t.TempDir()
	root := writeFile(t, dir, "root.json", `{"items": [{"@file": 5}], "a": 1}`)

	e, err := New(codec.JSON{}, root)
	require.NoError(t, err)

	cfg, err := e.Load()
	require.NoError(t, err)
	items, _ := cfg.Get("items")
	first := items.(document.Sequence)[0].(*document.Mapping)
	inc, ok := first.Directive()
	require.True(t, ok)
	assert.Equal(t, document.Scalar{Value: int64(5)}, inc.Value)
}

func TestExpand_NonStringDirectiveInMappingFails(t *testing.T) {
	_, err := loadTree(t, map[string]string{
		"root.yaml": "a: 1\nnested:\n  \"@file\": 5\n",
	}, "root.yaml")

	assert.ErrorIs(t, err, document.ErrInvalidDirective)
}

// TestExpand_DirectiveFromMergeKey checks that a directive held by a YAML
// anchor is expanded in every mapping merging the anchor, and that the
// merging mapping's own keys win.
func TestExpand_DirectiveFromMergeKey(t *testing.T) {
	cfg, err := loadTree(t, map[string]string{
		"root.yaml": "base: &b\n  \"@file\": inc.yaml\nsvc:\n  <<: *b\n  port: 1\n",
		"inc.yaml":  "host: db\nport: 5432\n",
	}, "root.yaml")
	require.NoError(t, err)

	want := yamlDoc(t, "base:\n  host: db\n  port: 5432\nsvc:\n  host: db\n  port: 1\n")
	assert.True(t, document.Equal(want, cfg), "got %v", document.ToAny(cfg))
}

func TestExpand_CycleIsDetected(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name: "self include",
			files: map[string]string{
				"root.yaml": "\"@file\": root.yaml\n",
			},
		},
		{
			name: "indirect",
			files: map[string]string{
				"root.yaml": "\"@file\": a.yaml\n",
				"a.yaml":    "nested:\n  \"@file\": b.yaml\n",
				"b.yaml":    "\"@file\": a.yaml\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadTree(t, tt.files, "root.yaml")
			assert.ErrorIs(t, err, ErrIncludeCycle)
		})
	}
}

func TestExpand_SameFileOnSeparateBranches(t *testing.T) {
	cfg, err := loadTree(t, map[string]string{
		"root.yaml": "primary:\n  \"@file\": db.yaml\nreplica:\n  \"@file\": db.yaml\n  port: 5433\n",
		"db.yaml":   "host: db\nport: 5432\n",
	}, "root.yaml")
	require.NoError(t, err)

	want := yamlDoc(t, "primary:\n  host: db\n  port: 5432\nreplica:\n  host: db\n  port: 5433\n")
	assert.True(t, document.Equal(want, cfg))
}

func TestExpand_MixedFormatsShareOneLoader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inc.json", `{"b": 2}`)
	root := writeFile(t, dir, "root.json", `{"@file": "inc.json", "a": 1}`)

	e, err := New(codec.JSON{}, root)
	require.NoError(t, err)

	cfg, err := e.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, cfg.Keys())
}

func TestResolveAndLoad_WithoutFallback(t *testing.T) {
	_, err := ResolveAndLoad(osFileSystem{}, codec.YAML{}, "definitely-missing.yaml", "")

	var pathErr *InvalidFilePathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "definitely-missing.yaml", pathErr.Path)
	assert.Empty(t, pathErr.Fallback)
}

func TestResolveAndLoad_ReturnsRawDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "inc.yaml", "a: 1\n")
	writeFile(t, dir, "root.yaml", "x: 0\n\"@file\": inc.yaml\n")

	raw, err := ResolveAndLoad(osFileSystem{}, codec.YAML{}, "root.yaml", dir)
	require.NoError(t, err)
	assert.True(t, raw.HasIncludes(), "resolve must not expand")
}
