/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package funcs_test

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/tokenfuncs/funcs"
	"bennypowers.dev/tokenfuncs/token"
)

func execute(t *testing.T, src string, data any) string {
	t.Helper()
	tmpl, err := template.New("test").Funcs(funcs.FuncMap()).Parse(src)
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, tmpl.Execute(&sb, data))
	return sb.String()
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"createDocumentationComment",
		"createSwiftVariableName",
		"filterOutComponentTokens",
		"getComponentTokens",
		"readableSwiftVariableName",
		"swiftColor",
		"tokenTitle",
	}, funcs.Names())
}

func TestFuncMap_FreshCopy(t *testing.T) {
	m := funcs.FuncMap()
	delete(m, funcs.SwiftColor)
	assert.Contains(t, funcs.FuncMap(), funcs.SwiftColor)
}

func TestTemplate_VariableNames(t *testing.T) {
	group := &token.Group{
		Name: "Primary",
		Path: []string{"Button"},
		Tokens: []*token.Token{
			{Name: "Background", PropertyValues: map[string]any{"component": "c1"}},
			{Name: "Border Color"},
		},
	}

	src := `{{ $g := . }}{{ range .Tokens }}{{ createSwiftVariableName . $g }} {{ readableSwiftVariableName . $g }}
{{ end }}`
	got := execute(t, src, group)
	assert.Equal(t, "primaryBackground ButtonPrimaryBackground\nbuttonPrimaryBorderColor ButtonPrimaryBorderColor\n", got)
}

func TestTemplate_ComponentFilters(t *testing.T) {
	props := []token.Property{{
		CodeName: "component",
		Options:  []token.PropertyOption{{ID: "c1", Name: "Button"}},
	}}
	group := &token.Group{
		Name: "Colors",
		Tokens: []*token.Token{
			{Name: "a", Properties: props, PropertyValues: map[string]any{"component": "c1"}},
			{Name: "b", Properties: props, PropertyValues: map[string]any{"component": "c2"}},
			{Name: "c", Properties: props},
		},
	}

	t.Run("by component", func(t *testing.T) {
		got := execute(t, `{{ range getComponentTokens .Tokens "Button" }}{{ .Name }}{{ end }}`, group)
		assert.Equal(t, "a", got)
	})

	t.Run("empty component type", func(t *testing.T) {
		got := execute(t, `{{ range getComponentTokens .Tokens "" }}{{ .Name }}{{ end }}`, group)
		assert.Equal(t, "c", got)
	})

	t.Run("filter out", func(t *testing.T) {
		got := execute(t, `{{ range filterOutComponentTokens .Tokens }}{{ .Name }}{{ end }}`, group)
		assert.Equal(t, "c", got)
	})
}

func TestTemplate_DocumentationComment(t *testing.T) {
	got := execute(t, `    {{ createDocumentationComment .Description "    " }}`, &token.Token{
		Description: "Line one\nLine two",
	})
	assert.Equal(t, "    /// Line one\n    /// Line two", got)
}

func TestColor(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
		wantErr  bool
	}{
		{name: "hex", value: "#ff0000", expected: "Color(red: 1.000, green: 0.000, blue: 0.000, opacity: 1.000)"},
		{name: "rgba", value: "rgba(0, 0, 255, 0.5)", expected: "Color(red: 0.000, green: 0.000, blue: 1.000, opacity: 0.500)"},
		{name: "named", value: "white", expected: "Color(red: 1.000, green: 1.000, blue: 1.000, opacity: 1.000)"},
		{name: "invalid", value: "not-a-color", wantErr: true},
		{name: "non-string", value: 12, wantErr: true},
		{name: "nil", value: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := funcs.Color(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTitle(t *testing.T) {
	group := &token.Group{Name: "brand colors", Path: []string{"color"}}
	assert.Equal(t, "Color Brand Colors Dark Red", funcs.Title(&token.Token{Name: "dark red"}, group))

	root := &token.Group{Name: "root", IsRoot: true}
	assert.Equal(t, "Spacing", funcs.Title(&token.Token{Name: "spacing"}, root))

	assert.Equal(t, "", funcs.Title(nil, nil))
}
