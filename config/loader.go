/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	tfs "bennypowers.dev/tokenfuncs/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokenfuncs"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/tokenfuncs.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem tfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, cfg)
		case ".json":
			err = json.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem tfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ExpandTemplates expands the Templates globs relative to rootDir.
// The result is sorted and free of duplicates.
func (c *Config) ExpandTemplates(filesystem tfs.FileSystem, rootDir string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range c.Templates {
		expanded, err := expandFilePath(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		for _, p := range expanded {
			if !seen[p] {
				seen[p] = true
				result = append(result, p)
			}
		}
	}

	sort.Strings(result)
	return result, nil
}

// expandFilePath expands a single file path which may contain globs.
func expandFilePath(filesystem tfs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and matches files below it.
func expandGlob(filesystem tfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	if !filesystem.Exists(baseDir) {
		return nil, nil
	}

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, filepath.ToSlash(relPath)); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
