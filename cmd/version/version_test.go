/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrintVersion_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := printVersion(&buf, "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "tokenfuncs ") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPrintVersion_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printVersion(&buf, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var info struct {
		Version string   `json:"version"`
		Helpers []string `json:"helpers"`
	}
	if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if info.Version == "" {
		t.Error("version is empty")
	}

	want := map[string]bool{
		"createDocumentationComment": false,
		"getComponentTokens":         false,
		"createSwiftVariableName":    false,
		"readableSwiftVariableName":  false,
		"filterOutComponentTokens":   false,
	}
	for _, h := range info.Helpers {
		if _, ok := want[h]; ok {
			want[h] = true
		}
	}
	for h, found := range want {
		if !found {
			t.Errorf("helper %q not listed", h)
		}
	}
}
