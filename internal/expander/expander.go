// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expander

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-cfg-expand/internal/codec"
	"github.com/MKhiriev/go-cfg-expand/internal/document"
	"github.com/MKhiriev/go-cfg-expand/internal/logger"
)

// ConfigExpander loads a root document and resolves its "@file" inclusion
// directives. The result is computed once and cached for the lifetime of
// the expander; later changes to the files are never observed.
type ConfigExpander struct {
	loader codec.Loader
	fs     FileSystem
	logger *logger.Logger
	lazy   bool

	// path is the absolute root document path; dir is its directory and the
	// fallback base for every directive in the tree.
	path string
	dir  string

	mu    sync.Mutex
	cache *snapshot // nil until loaded
}

type snapshot struct {
	raw    *document.Mapping
	config *document.Mapping
	files  int
}

// New creates an expander for the document at path. The path is made
// absolute before any I/O. Unless [WithLazy] is given, the document is
// loaded and expanded right away and any failure is returned here.
func New(loader codec.Loader, path string, opts ...Option) (*ConfigExpander, error) {
	if loader == nil {
		return nil, ErrNilLoader
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving absolute path of %s: %w", path, err)
	}

	e := &ConfigExpander{
		loader: loader,
		fs:     osFileSystem{},
		logger: logger.Nop(),
		path:   abs,
		dir:    filepath.Dir(abs),
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.lazy {
		if _, err = e.Load(); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Path returns the absolute root document path.
func (e *ConfigExpander) Path() string {
	return e.path
}

// Dir returns the directory every relative directive falls back to.
func (e *ConfigExpander) Dir() string {
	return e.dir
}

// Loaded reports whether the configuration has been loaded.
func (e *ConfigExpander) Loaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cache != nil
}

// Load returns the expanded configuration, loading it on the first call.
// Subsequent calls return the cached mapping without touching the file
// system. A failed load caches nothing, so the next call tries again.
//
// The returned mapping is shared by all callers and must not be modified.
func (e *ConfigExpander) Load() (*document.Mapping, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cache != nil {
		return e.cache.config, nil
	}

	raw, err := ResolveAndLoad(e.fs, e.loader, e.path, "")
	if err != nil {
		return nil, err
	}

	w := &walk{e: e, files: 1}
	config, err := w.expand(raw, []string{e.path})
	if err != nil {
		return nil, err
	}

	e.cache = &snapshot{raw: raw, config: config, files: w.files}
	e.logger.Debug().
		Str("path", e.path).
		Int("files", w.files).
		Int("keys", config.Len()).
		Msg("configuration loaded")

	return config, nil
}

// Raw returns the root document as loaded, before expansion.
func (e *ConfigExpander) Raw() (*document.Mapping, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cache == nil {
		return nil, false
	}
	return e.cache.raw, true
}

// Files returns how many documents the last successful load read, the root
// included. It is zero before loading.
func (e *ConfigExpander) Files() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cache == nil {
		return 0
	}
	return e.cache.files
}

// Decode loads the configuration if needed and decodes it into v following
// `yaml` struct tags.
func (e *ConfigExpander) Decode(v any) error {
	config, err := e.Load()
	if err != nil {
		return err
	}
	return document.Decode(config, v)
}

// Expand resolves every directive in doc against the root directory. It
// reads the file system on each call and does not touch the cache.
func (e *ConfigExpander) Expand(doc *document.Mapping) (*document.Mapping, error) {
	w := &walk{e: e}
	return w.expand(doc, nil)
}

// walk carries per-pass state of one expansion.
type walk struct {
	e     *ConfigExpander
	files int
}

// expand builds a new mapping from doc. Items are applied in source order
// and the last writer of a key wins: a directive overrides earlier sibling
// keys and is overridden by later ones. chain lists the documents being
// expanded on the current branch.
func (w *walk) expand(doc *document.Mapping, chain []string) (*document.Mapping, error) {
	result := document.NewMapping(doc.Len())

	for _, it := range doc.Items() {
		switch it := it.(type) {
		case document.Include:
			if err := it.Check(); err != nil {
				return nil, err
			}
			included, err := w.include(it.Path, chain)
			if err != nil {
				return nil, err
			}
			result.Merge(included)
		case document.Field:
			m, ok := it.Value.(*document.Mapping)
			if !ok {
				result.Set(it.Key, it.Value)
				continue
			}
			expanded, err := w.expand(m, chain)
			if err != nil {
				return nil, err
			}
			result.Set(it.Key, expanded)
		}
	}

	return result, nil
}

func (w *walk) include(path string, chain []string) (*document.Mapping, error) {
	resolved, err := resolvePath(w.e.fs, path, w.e.dir)
	if err != nil {
		return nil, err
	}

	if slices.Contains(chain, resolved) {
		return nil, fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(append(slices.Clip(chain), resolved), " -> "))
	}

	w.e.logger.Debug().
		Str("directive", path).
		Str("resolved", resolved).
		Msg("including document")

	raw, err := loadFile(w.e.fs, w.e.loader, resolved)
	if err != nil {
		return nil, err
	}
	w.files++

	expanded, err := w.expand(raw, append(slices.Clip(chain), resolved))
	if err != nil {
		return nil, fmt.Errorf("error expanding %s: %w", resolved, err)
	}
	return expanded, nil
}

// ResolveAndLoad locates path and parses it with loader, without expanding
// it. path is used as given when it names a regular file; otherwise, when
// fallbackDir is not empty, it is looked up relative to fallbackDir.
// Returns an [*InvalidFilePathError] when neither location holds a readable
// file. Loader errors are wrapped and returned as-is otherwise.
func ResolveAndLoad(fsys FileSystem, loader codec.Loader, path, fallbackDir string) (*document.Mapping, error) {
	resolved, err := resolvePath(fsys, path, fallbackDir)
	if err != nil {
		return nil, err
	}
	return loadFile(fsys, loader, resolved)
}

// resolvePath returns the absolute path of the file path refers to.
func resolvePath(fsys FileSystem, path, fallbackDir string) (string, error) {
	ok, statErr := isRegularFile(fsys, path)
	if ok {
		return filepath.Abs(path)
	}
	if fallbackDir == "" {
		return "", &InvalidFilePathError{Path: path, Err: statErr}
	}

	candidate := filepath.Clean(path)
	if !filepath.IsAbs(path) {
		candidate = filepath.Join(fallbackDir, path)
	}
	ok, err := isRegularFile(fsys, candidate)
	if !ok {
		return "", &InvalidFilePathError{Path: path, Fallback: candidate, Err: err}
	}
	return candidate, nil
}

func loadFile(fsys FileSystem, loader codec.Loader, path string) (*document.Mapping, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &InvalidFilePathError{Path: path, Err: err}
	}
	defer f.Close()

	node, err := loader.Load(f)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}

	m, ok := node.(*document.Mapping)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds a %s", ErrNotMapping, path, document.Kind(node))
	}
	return m, nil
}
