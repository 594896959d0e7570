/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package funcs registers the token helpers as named template functions.
//
// Each function keeps a fixed positional signature so templates can call it
// the same way regardless of which host executes them:
//
//	{{ createDocumentationComment .Description "    " }}
//	{{ range getComponentTokens $tokens "Button" }}...{{ end }}
//	{{ createSwiftVariableName . $group }}
package funcs

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokenfuncs/comment"
	"bennypowers.dev/tokenfuncs/filter"
	"bennypowers.dev/tokenfuncs/naming"
	"bennypowers.dev/tokenfuncs/token"
)

// Registered function names.
const (
	CreateDocumentationComment = "createDocumentationComment"
	GetComponentTokens         = "getComponentTokens"
	ReadableSwiftVariableName  = "readableSwiftVariableName"
	CreateSwiftVariableName    = "createSwiftVariableName"
	FilterOutComponentTokens   = "filterOutComponentTokens"
	SwiftColor                 = "swiftColor"
	TokenTitle                 = "tokenTitle"
)

// FuncMap returns a new function map holding every registered helper.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		CreateDocumentationComment: comment.DocumentationComment,
		GetComponentTokens:         filter.ComponentTokens,
		ReadableSwiftVariableName:  naming.ReadableSwiftVariableName,
		CreateSwiftVariableName:    naming.SwiftVariableName,
		FilterOutComponentTokens:   filter.WithoutComponents,
		SwiftColor:                 Color,
		TokenTitle:                 Title,
	}
}

// Names returns the registered function names, sorted.
func Names() []string {
	m := FuncMap()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color converts a CSS color value into a SwiftUI Color literal.
func Color(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("swiftColor: expected string color, got %T", value)
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return "", fmt.Errorf("swiftColor: %w", err)
	}
	return fmt.Sprintf("Color(red: %.3f, green: %.3f, blue: %.3f, opacity: %.3f)", c.R, c.G, c.B, c.A), nil
}

// Title returns the token's group path and name as Title Case words,
// suitable for human-readable documentation.
func Title(tok *token.Token, group *token.Group) string {
	segments := naming.Segments(tok, group, false)
	words := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.TrimSpace(s); s != "" {
			words = append(words, s)
		}
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}
