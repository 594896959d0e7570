/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture and golden-file helpers for tokenfuncs tests.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/tokenfuncs/internal/mapfs"
)

// updateGolden enables updating golden files with actual output when -update flag is set.
var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// candidates lists where a testdata-relative path may live, since go test
// runs each package from its own directory.
func candidates(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}

// NewFixtureFS copies the fixture directory into an in-memory filesystem
// rooted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	var fixturePath string
	for _, p := range candidates(fixtureDir) {
		if _, err := os.Stat(p); err == nil {
			fixturePath = p
			break
		}
	}
	if fixturePath == "" {
		t.Fatalf("Could not find fixtures at %s (tried all paths)", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.ToSlash(filepath.Join(rootPath, relPath)), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads a single testdata file.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	for _, p := range candidates(fixturePath) {
		if content, err := os.ReadFile(p); err == nil {
			return content
		}
	}
	t.Fatalf("Failed to read fixture %s (tried all paths)", fixturePath)
	return nil
}

// UpdateGoldenFile writes actual output to the golden file when -update is set.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	paths := candidates(goldenPath)
	targetPath := paths[0]
	for _, p := range paths {
		if _, err := os.Stat(filepath.Dir(p)); err == nil {
			targetPath = p
			break
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		t.Fatalf("Failed to create directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(targetPath, actual, 0644); err != nil {
		t.Fatalf("Failed to write golden file %s: %v", goldenPath, err)
	}
	t.Logf("Updated golden file: %s", targetPath)
}
