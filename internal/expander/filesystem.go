// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expander

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem is the file access the expander needs. Paths are OS paths,
// absolute or relative to the working directory.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

type osFileSystem struct{}

func (osFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFileSystem) Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func isRegularFile(fsys FileSystem, name string) (bool, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
