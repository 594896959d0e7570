/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Group is a named hierarchical container of tokens.
type Group struct {
	// ID is the opaque identifier of the group.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Name is the group's own name.
	Name string `json:"name" yaml:"name"`

	// Path lists ancestor group names from the root to the parent, excluding this group.
	Path []string `json:"path,omitempty" yaml:"path,omitempty"`

	// IsRoot marks a root group whose name never appears in identifiers.
	IsRoot bool `json:"isRoot,omitempty" yaml:"isRoot,omitempty"`

	// Description is optional documentation for the group.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Tokens contains the tokens directly in this group.
	Tokens []*Token `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// Document is an export snapshot: the groups handed to templates.
type Document struct {
	Groups []*Group `json:"groups" yaml:"groups"`
}

// AllTokens returns the tokens of every group, in group order.
func (d *Document) AllTokens() []*Token {
	if d == nil {
		return nil
	}
	var tokens []*Token
	for _, g := range d.Groups {
		if g == nil {
			continue
		}
		tokens = append(tokens, g.Tokens...)
	}
	return tokens
}

// GroupOf returns the group that directly contains tok.
func (d *Document) GroupOf(tok *Token) (*Group, bool) {
	if d == nil || tok == nil {
		return nil, false
	}
	for _, g := range d.Groups {
		if g == nil {
			continue
		}
		for _, t := range g.Tokens {
			if t == tok {
				return g, true
			}
		}
	}
	return nil, false
}
