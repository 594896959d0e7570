/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load decodes export snapshots into a token.Document.
//
// A snapshot is the already-normalized group/token data a design tool hands
// to its export templates, serialized as JSON, JSON with comments, or YAML:
//
//	{
//	  "groups": [
//	    {"name": "Primary", "path": ["Button"], "tokens": [{"name": "Background"}]}
//	  ]
//	}
package load

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenfuncs/fs"
	"bennypowers.dev/tokenfuncs/token"
)

// ErrEmptySnapshot is returned for snapshots without any content.
var ErrEmptySnapshot = errors.New("empty snapshot")

// File reads and decodes the snapshot at path.
func File(filesystem fs.FileSystem, path string) (*token.Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes snapshot data. Content starting with '{' or a comment is read
// as JSON (comments and trailing commas allowed); anything else as YAML.
func Parse(data []byte) (*token.Document, error) {
	doc := &token.Document{}

	switch {
	case isBlank(data):
		return nil, ErrEmptySnapshot
	case isLikelyJSON(data):
		if err := json.Unmarshal(jsonc.ToJSON(data), doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	for _, g := range doc.Groups {
		if g == nil {
			continue
		}
		for _, tok := range g.Tokens {
			if tok == nil {
				continue
			}
			tok.Value = normalizeMap(tok.Value)
			for k, v := range tok.PropertyValues {
				tok.PropertyValues[k] = normalizeMap(v)
			}
		}
	}
	return doc, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '/': // YAML never opens with a comment slash
			return true
		default:
			return false
		}
	}
	return false
}

func isBlank(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r', 0xEF, 0xBB, 0xBF:
			continue
		default:
			return false
		}
	}
	return true
}

// normalizeMap converts map[any]any, which YAML produces for non-string keys,
// to map[string]any so values look the same regardless of snapshot format.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}
