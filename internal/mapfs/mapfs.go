/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs provides an in-memory FileSystem for tests of the host commands.
package mapfs

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem implements fs.FileSystem over fstest.MapFS.
// Paths are stored without their leading slash, so "/a/b" and "a/b" are the same file.
type MapFileSystem struct {
	mu      sync.RWMutex
	mapFS   fstest.MapFS
	modTime time.Time
}

// New creates an empty in-memory filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		mapFS:   make(fstest.MapFS),
		modTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile adds a file with the given content.
func (mfs *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mapFS[cleanPath(p)] = &fstest.MapFile{
		Data:    []byte(content),
		Mode:    mode,
		ModTime: mfs.modTime,
	}
}

func (mfs *MapFileSystem) ReadFile(name string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.ReadFile(mfs.mapFS, cleanPath(name))
}

func (mfs *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = cleanPath(name)
	if dir := path.Dir(name); dir != "." {
		if file, exists := mfs.mapFS[dir]; exists && !file.Mode.IsDir() {
			return &fs.PathError{Op: "open", Path: name, Err: fmt.Errorf("not a directory")}
		}
	}

	mfs.mapFS[name] = &fstest.MapFile{
		Data:    append([]byte(nil), data...),
		Mode:    perm,
		ModTime: mfs.modTime,
	}
	return nil
}

// MkdirAll records the directory with a .keep file.
func (mfs *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p = cleanPath(p)
	if file, exists := mfs.mapFS[p]; exists && !file.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fmt.Errorf("not a directory")}
	}
	mfs.mapFS[p+"/.keep"] = &fstest.MapFile{
		Mode:    perm.Perm(),
		ModTime: mfs.modTime,
	}
	return nil
}

func (mfs *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return fs.Stat(mfs.mapFS, cleanPath(name))
}

// Exists reports whether p is a file or a directory containing files.
func (mfs *MapFileSystem) Exists(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	p = cleanPath(p)
	if _, exists := mfs.mapFS[p]; exists {
		return true
	}
	prefix := p + "/"
	for filePath := range mfs.mapFS {
		if strings.HasPrefix(filePath, prefix) {
			return true
		}
	}
	return false
}

func (mfs *MapFileSystem) Open(name string) (fs.File, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	return mfs.mapFS.Open(cleanPath(name))
}

// Files returns the sorted paths of all regular files, without .keep markers.
func (mfs *MapFileSystem) Files() []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var files []string
	for p := range mfs.mapFS {
		if path.Base(p) == ".keep" {
			continue
		}
		files = append(files, "/"+p)
	}
	sort.Strings(files)
	return files
}

func cleanPath(p string) string {
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return "."
	}
	return strings.TrimPrefix(cleaned, "/")
}
