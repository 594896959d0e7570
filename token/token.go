/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the read-only design token types handed to template helpers.
//
// All accessors are nil-safe and return zero values for missing data, so that
// helpers never panic on partial export snapshots.
package token

// ComponentCodeName is the code name of the property that associates a token
// with a UI component variant.
const ComponentCodeName = "component"

// Token is a single named design value exported from a design system.
type Token struct {
	// ID is the opaque identifier of the token.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Name is the token's display name (e.g., "Dark Red").
	Name string `json:"name" yaml:"name"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// TokenType is the kind of value (color, dimension, ...).
	TokenType string `json:"tokenType,omitempty" yaml:"tokenType,omitempty"`

	// Value is the token's value as exported.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Properties are the custom property definitions available to the token.
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`

	// PropertyValues maps property code names to values. An absent key means
	// the property is undefined for this token.
	PropertyValues map[string]any `json:"propertyValues,omitempty" yaml:"propertyValues,omitempty"`
}

// Property is a custom property definition.
type Property struct {
	ID       string           `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string           `json:"name,omitempty" yaml:"name,omitempty"`
	CodeName string           `json:"codeName" yaml:"codeName"`
	Type     string           `json:"type,omitempty" yaml:"type,omitempty"`
	Options  []PropertyOption `json:"options,omitempty" yaml:"options,omitempty"`
}

// PropertyOption is one valid value of a select-type property.
type PropertyOption struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// ComponentID returns the token's component variant id.
// ok reports whether the component key is present at all; a present value
// that is not a string yields "".
func (t *Token) ComponentID() (id string, ok bool) {
	if t == nil || t.PropertyValues == nil {
		return "", false
	}
	v, ok := t.PropertyValues[ComponentCodeName]
	if !ok {
		return "", false
	}
	id, _ = v.(string)
	return id, true
}

// HasComponent reports whether the token is associated with a component.
func (t *Token) HasComponent() bool {
	_, ok := t.ComponentID()
	return ok
}

// Property returns the property definition with the given code name.
func (t *Token) Property(codeName string) (Property, bool) {
	if t == nil {
		return Property{}, false
	}
	for _, p := range t.Properties {
		if p.CodeName == codeName {
			return p, true
		}
	}
	return Property{}, false
}

// Option returns the option with the given display name.
func (p Property) Option(name string) (PropertyOption, bool) {
	for _, o := range p.Options {
		if o.Name == name {
			return o, true
		}
	}
	return PropertyOption{}, false
}

// HasOptionID reports whether id names one of the property's options.
func (p Property) HasOptionID(id string) bool {
	for _, o := range p.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}
