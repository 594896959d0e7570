/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem seam used by the tokenfuncs host commands.
// The template helpers themselves never touch the filesystem.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is the subset of filesystem operations the CLI needs:
// reading snapshots and templates, and writing rendered output.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Stat(name string) (fs.FileInfo, error)
	Exists(path string) bool

	// Open makes the filesystem usable with fs.WalkDir for glob expansion.
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a filesystem backed by the host OS.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (f *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (f *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
