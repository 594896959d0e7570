/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package filter selects tokens by their association with UI components.
package filter

import "bennypowers.dev/tokenfuncs/token"

// ComponentTokens returns the tokens belonging to the named component.
//
// The component's id is looked up among the options of the first token's
// component property. An unknown component, or a batch without that
// property, yields an empty result. An empty componentType selects tokens
// with no component at all, as WithoutComponents does.
func ComponentTokens(tokens []*token.Token, componentType string) []*token.Token {
	if componentType == "" {
		return WithoutComponents(tokens)
	}

	result := make([]*token.Token, 0)
	id, ok := componentID(tokens, componentType)
	if !ok {
		return result
	}

	for _, tok := range tokens {
		if got, present := tok.ComponentID(); present && got == id {
			result = append(result, tok)
		}
	}
	return result
}

// WithoutComponents returns the tokens whose component property is undefined.
func WithoutComponents(tokens []*token.Token) []*token.Token {
	result := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok != nil && !tok.HasComponent() {
			result = append(result, tok)
		}
	}
	return result
}

// componentID resolves a component name to its option id using the first
// token of the batch as the representative schema.
func componentID(tokens []*token.Token, componentType string) (string, bool) {
	if len(tokens) == 0 {
		return "", false
	}
	prop, ok := tokens[0].Property(token.ComponentCodeName)
	if !ok {
		return "", false
	}
	opt, ok := prop.Option(componentType)
	if !ok || opt.ID == "" {
		return "", false
	}
	return opt.ID, true
}
