/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package comment formats free text as source-code comment blocks.
package comment

import "strings"

// DocMarker prefixes every line of a documentation comment.
const DocMarker = "/// "

// DocumentationComment reflows text into a triple-slash documentation comment.
//
// The first line is not indented, since templates place it after their own
// indentation; every following line is prefixed with indentation. The
// indentation is inserted verbatim and text is not escaped.
func DocumentationComment(text, indentation string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = DocMarker + line
			continue
		}
		lines[i] = indentation + DocMarker + line
	}
	return strings.Join(lines, "\n")
}

// Style selects the comment syntax for FormatHeader.
type Style int

const (
	// CStyle renders /* ... */ blocks.
	CStyle Style = iota
	// LineStyle renders // line comments.
	LineStyle
	// XMLStyle renders <!-- ... --> blocks.
	XMLStyle
	// SwiftDocStyle renders /// line comments.
	SwiftDocStyle
)

// ParseStyle converts a style name to a Style. Unknown names fall back to LineStyle.
func ParseStyle(s string) Style {
	switch strings.ToLower(s) {
	case "c", "block", "cstyle":
		return CStyle
	case "xml", "html":
		return XMLStyle
	case "swift", "doc", "swiftdoc":
		return SwiftDocStyle
	default:
		return LineStyle
	}
}

// FormatHeader renders text as a file header comment followed by a blank line.
// Returns "" for empty text.
func FormatHeader(text string, style Style) string {
	text = strings.TrimRight(text, "\r\n\t ")
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")

	var sb strings.Builder
	switch style {
	case CStyle:
		if len(lines) == 1 {
			sb.WriteString("/* " + lines[0] + " */\n")
			break
		}
		sb.WriteString("/*\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(" * "+line, " ") + "\n")
		}
		sb.WriteString(" */\n")
	case XMLStyle:
		if len(lines) == 1 {
			sb.WriteString("<!-- " + lines[0] + " -->\n")
			break
		}
		sb.WriteString("<!--\n")
		for _, line := range lines {
			sb.WriteString(strings.TrimRight("  "+line, " ") + "\n")
		}
		sb.WriteString("-->\n")
	default:
		marker := "// "
		if style == SwiftDocStyle {
			marker = DocMarker
		}
		for _, line := range lines {
			sb.WriteString(strings.TrimRight(marker+line, " ") + "\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}
