/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming derives Swift-safe identifiers from a token's group path and name.
//
// The transformation is ASCII-only: any run of characters outside [a-zA-Z0-9]
// is treated as a word boundary, and the character following the run is
// uppercased. Unicode letters are not treated as word characters.
package naming

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"bennypowers.dev/tokenfuncs/token"
)

// Case selects the casing of an identifier's first character.
type Case int

const (
	// Camel leaves the first character as derived (e.g., "colorDarkRed").
	Camel Case = iota
	// Pascal uppercases the first character (e.g., "ColorDarkRed").
	Pascal
)

var (
	// boundaryPattern matches a separator run plus the character after it.
	boundaryPattern = regexp.MustCompile(`[^a-zA-Z0-9]+.`)
	invalidPattern  = regexp.MustCompile(`[^a-zA-Z0-9_]`)
	wordPattern     = regexp.MustCompile(`[a-zA-Z0-9]`)
)

// Segments builds the ordered name segments for tok within group.
// The group path is copied; the group name is appended unless the group is a
// root; strip drops the first segment before the token name is appended.
func Segments(tok *token.Token, group *token.Group, strip bool) []string {
	var path []string
	var groupName string
	var isRoot bool
	if group != nil {
		path = group.Path
		groupName = group.Name
		isRoot = group.IsRoot
	}
	var tokenName string
	if tok != nil {
		tokenName = tok.Name
	}
	return buildSegments(tokenName, path, groupName, isRoot, strip)
}

func buildSegments(tokenName string, groupPath []string, groupName string, isRoot, strip bool) []string {
	segments := make([]string, 0, len(groupPath)+2)
	segments = append(segments, groupPath...)
	if !isRoot {
		segments = append(segments, groupName)
	}
	if strip && len(segments) > 0 {
		segments = segments[1:]
	}
	return append(segments, tokenName)
}

// DeriveIdentifier converts a token name and its group location into an identifier.
func DeriveIdentifier(tokenName string, groupPath []string, groupName string, isRoot, stripLeadingSegment bool, c Case) string {
	segments := buildSegments(tokenName, groupPath, groupName, isRoot, stripLeadingSegment)
	return Identifier(segments, c)
}

// Identifier joins segments into a single identifier.
// Returns "" when the segments contain no ASCII letter or digit.
func Identifier(segments []string, c Case) string {
	sentence := strings.ToLower(strings.Join(segments, " "))
	if !wordPattern.MatchString(sentence) {
		return ""
	}

	sentence = boundaryPattern.ReplaceAllStringFunc(sentence, func(m string) string {
		r, _ := utf8.DecodeLastRuneInString(m)
		return strings.ToUpper(string(r))
	})
	sentence = invalidPattern.ReplaceAllString(sentence, "_")

	if sentence[0] >= '0' && sentence[0] <= '9' {
		sentence = "_" + sentence
	}

	if c == Pascal {
		r, size := utf8.DecodeRuneInString(sentence)
		sentence = strings.ToUpper(string(r)) + sentence[size:]
	}
	return sentence
}

// ReadableSwiftVariableName returns the PascalCase name of tok within group,
// keeping every group segment.
func ReadableSwiftVariableName(tok *token.Token, group *token.Group) string {
	return Identifier(Segments(tok, group, false), Pascal)
}

// SwiftVariableName returns the camelCase name of tok within group.
// Component tokens drop the leading segment, which names the component group.
func SwiftVariableName(tok *token.Token, group *token.Group) string {
	return Identifier(Segments(tok, group, tok.HasComponent()), Camel)
}
