/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator_test

import (
	"strings"
	"testing"

	"bennypowers.dev/tokenfuncs/token"
	"bennypowers.dev/tokenfuncs/validator"
)

var componentProperty = token.Property{
	CodeName: "component",
	Options: []token.PropertyOption{
		{ID: "c1", Name: "Button"},
		{ID: "c2", Name: "Card"},
	},
}

func TestValidate_Valid(t *testing.T) {
	doc := &token.Document{Groups: []*token.Group{{
		Name: "Colors",
		Tokens: []*token.Token{
			{Name: "a", Properties: []token.Property{componentProperty}, PropertyValues: map[string]any{"component": "c1"}},
			{Name: "b", PropertyValues: map[string]any{"component": "c2"}},
			{Name: "c"},
		},
	}}}

	if errors := validator.Validate(doc); len(errors) != 0 {
		t.Errorf("expected no errors, got %d: %v", len(errors), errors)
	}
}

func TestValidate_UnknownID(t *testing.T) {
	doc := &token.Document{Groups: []*token.Group{{
		Name: "Colors",
		Path: []string{"Brand"},
		Tokens: []*token.Token{
			{Name: "a", Properties: []token.Property{componentProperty}, PropertyValues: map[string]any{"component": "c9"}},
		},
	}}}

	errors := validator.ValidateWithPath(doc, "snapshot.json")
	if len(errors) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errors), errors)
	}
	err := errors[0]
	if err.Path != "Brand/Colors/a" {
		t.Errorf("expected path Brand/Colors/a, got %q", err.Path)
	}
	if !strings.Contains(err.Message, `"c9"`) {
		t.Errorf("expected message to mention c9, got %q", err.Message)
	}
	if !strings.Contains(err.Suggestion, "c1 (Button)") {
		t.Errorf("expected suggestion to list options, got %q", err.Suggestion)
	}
	if !strings.HasPrefix(err.Error(), "snapshot.json: Brand/Colors/a: ") {
		t.Errorf("unexpected Error() output: %q", err.Error())
	}
}

func TestValidate_MissingProperty(t *testing.T) {
	doc := &token.Document{Groups: []*token.Group{{
		Name:   "Colors",
		Tokens: []*token.Token{{Name: "a", PropertyValues: map[string]any{"component": "c1"}}},
	}}}

	errors := validator.Validate(doc)
	if len(errors) != 1 || !strings.Contains(errors[0].Message, "no component property") {
		t.Errorf("expected missing property error, got %v", errors)
	}
}

func TestValidate_NonStringValue(t *testing.T) {
	doc := &token.Document{Groups: []*token.Group{{
		Name: "Colors",
		Tokens: []*token.Token{
			{Name: "a", Properties: []token.Property{componentProperty}, PropertyValues: map[string]any{"component": nil}},
		},
	}}}

	errors := validator.Validate(doc)
	if len(errors) != 1 || !strings.Contains(errors[0].Message, "<nil>") {
		t.Errorf("expected non-string error, got %v", errors)
	}
}

func TestValidate_Degrades(t *testing.T) {
	if errors := validator.Validate(nil); errors != nil {
		t.Errorf("expected nil for nil document, got %v", errors)
	}
	doc := &token.Document{Groups: []*token.Group{nil, {Name: "empty"}, {Name: "nil-token", Tokens: []*token.Token{nil}}}}
	if errors := validator.Validate(doc); len(errors) != 0 {
		t.Errorf("expected no errors, got %v", errors)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      validator.ValidationError
		expected string
	}{
		{
			name:     "message only",
			err:      validator.ValidationError{Message: "bad"},
			expected: "bad",
		},
		{
			name:     "all fields",
			err:      validator.ValidationError{FilePath: "f.json", Path: "a/b", Message: "bad", Suggestion: "fix it"},
			expected: "f.json: a/b: bad (fix it)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}
