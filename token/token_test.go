/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"bennypowers.dev/tokenfuncs/token"
)

func TestToken_ComponentID(t *testing.T) {
	tests := []struct {
		name   string
		token  *token.Token
		wantID string
		wantOK bool
	}{
		{
			name:   "nil token",
			token:  nil,
			wantID: "",
			wantOK: false,
		},
		{
			name:   "nil property values",
			token:  &token.Token{Name: "primary"},
			wantID: "",
			wantOK: false,
		},
		{
			name:   "absent key",
			token:  &token.Token{PropertyValues: map[string]any{"other": "x"}},
			wantID: "",
			wantOK: false,
		},
		{
			name:   "string id",
			token:  &token.Token{PropertyValues: map[string]any{"component": "c1"}},
			wantID: "c1",
			wantOK: true,
		},
		{
			name:   "null value is present",
			token:  &token.Token{PropertyValues: map[string]any{"component": nil}},
			wantID: "",
			wantOK: true,
		},
		{
			name:   "non-string value",
			token:  &token.Token{PropertyValues: map[string]any{"component": 42}},
			wantID: "",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.token.ComponentID()
			if id != tt.wantID || ok != tt.wantOK {
				t.Errorf("ComponentID() = (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.wantOK)
			}
			if got := tt.token.HasComponent(); got != tt.wantOK {
				t.Errorf("HasComponent() = %v, want %v", got, tt.wantOK)
			}
		})
	}
}

func TestToken_Property(t *testing.T) {
	tok := &token.Token{
		Properties: []token.Property{
			{CodeName: "size"},
			{
				CodeName: "component",
				Options: []token.PropertyOption{
					{ID: "c1", Name: "Button"},
					{ID: "c2", Name: "Card"},
				},
			},
		},
	}

	t.Run("finds property by code name", func(t *testing.T) {
		prop, ok := tok.Property(token.ComponentCodeName)
		if !ok {
			t.Fatal("expected component property")
		}
		opt, ok := prop.Option("Card")
		if !ok || opt.ID != "c2" {
			t.Errorf("Option(Card) = (%+v, %v), want c2", opt, ok)
		}
		if !prop.HasOptionID("c1") {
			t.Error("expected HasOptionID(c1)")
		}
		if prop.HasOptionID("c3") {
			t.Error("unexpected HasOptionID(c3)")
		}
	})

	t.Run("missing property", func(t *testing.T) {
		if _, ok := tok.Property("missing"); ok {
			t.Error("expected no property")
		}
	})

	t.Run("nil token", func(t *testing.T) {
		var nilTok *token.Token
		if _, ok := nilTok.Property(token.ComponentCodeName); ok {
			t.Error("expected no property on nil token")
		}
	})

	t.Run("missing option", func(t *testing.T) {
		if _, ok := (token.Property{}).Option("Button"); ok {
			t.Error("expected no option on empty property")
		}
	})
}

func TestDocument_AllTokens(t *testing.T) {
	a := &token.Token{Name: "a"}
	b := &token.Token{Name: "b"}
	c := &token.Token{Name: "c"}
	doc := &token.Document{Groups: []*token.Group{
		{Name: "one", Tokens: []*token.Token{a, b}},
		nil,
		{Name: "two", Tokens: []*token.Token{c}},
	}}

	all := doc.AllTokens()
	if len(all) != 3 || all[0] != a || all[1] != b || all[2] != c {
		t.Errorf("AllTokens() returned unexpected tokens: %v", all)
	}

	g, ok := doc.GroupOf(c)
	if !ok || g.Name != "two" {
		t.Errorf("GroupOf(c) = (%v, %v), want group two", g, ok)
	}
	if _, ok := doc.GroupOf(&token.Token{Name: "stray"}); ok {
		t.Error("expected stray token to have no group")
	}

	var nilDoc *token.Document
	if nilDoc.AllTokens() != nil {
		t.Error("expected nil tokens from nil document")
	}
}
