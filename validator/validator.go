/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks export snapshots for component association errors.
package validator

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenfuncs/token"
)

// ValidationError describes a token whose component association is broken.
type ValidationError struct {
	// FilePath is the snapshot the token was loaded from.
	FilePath string
	// Path is the slash-separated location of the token (group path, group, token).
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks that every component value names an option of the
// component property. A token without its own property definitions is
// checked against the first token of its group.
func Validate(doc *token.Document) []ValidationError {
	return ValidateWithPath(doc, "")
}

// ValidateWithPath validates doc and includes filePath in errors.
func ValidateWithPath(doc *token.Document, filePath string) []ValidationError {
	if doc == nil {
		return nil
	}

	var errors []ValidationError
	for _, g := range doc.Groups {
		if g == nil {
			continue
		}
		var representative *token.Token
		if len(g.Tokens) > 0 {
			representative = g.Tokens[0]
		}
		for _, tok := range g.Tokens {
			if err := validateToken(tok, representative); err != nil {
				err.FilePath = filePath
				err.Path = tokenPath(g, tok)
				errors = append(errors, *err)
			}
		}
	}
	return errors
}

func validateToken(tok, representative *token.Token) *ValidationError {
	if tok == nil {
		return nil
	}
	raw, present := tok.PropertyValues[token.ComponentCodeName]
	if !present {
		return nil
	}

	prop, ok := tok.Property(token.ComponentCodeName)
	if !ok {
		prop, ok = representative.Property(token.ComponentCodeName)
	}
	if !ok {
		return &ValidationError{
			Message:    "component value set but no component property is defined",
			Suggestion: "add a property with codeName \"component\" to the token or its group's first token",
		}
	}

	id, isString := raw.(string)
	if !isString {
		return &ValidationError{
			Message:    fmt.Sprintf("component value must be an option id string, got %T", raw),
			Suggestion: "use one of: " + optionList(prop),
		}
	}
	if !prop.HasOptionID(id) {
		return &ValidationError{
			Message:    fmt.Sprintf("unknown component id %q", id),
			Suggestion: "use one of: " + optionList(prop),
		}
	}
	return nil
}

func optionList(p token.Property) string {
	if len(p.Options) == 0 {
		return "(no options defined)"
	}
	parts := make([]string, len(p.Options))
	for i, o := range p.Options {
		parts[i] = fmt.Sprintf("%s (%s)", o.ID, o.Name)
	}
	return strings.Join(parts, ", ")
}

func tokenPath(g *token.Group, tok *token.Token) string {
	parts := make([]string, 0, len(g.Path)+2)
	parts = append(parts, g.Path...)
	parts = append(parts, g.Name)
	if tok != nil {
		parts = append(parts, tok.Name)
	}
	return strings.Join(parts, "/")
}
