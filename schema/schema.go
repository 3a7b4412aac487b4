// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema models the JSON-Schema-style values the validator engine
// accepts as input. A schema is either a boolean (true matches anything,
// false matches nothing) or an object carrying a restricted, named set of
// recognized keywords; unknown fields are ignored.
//
// Schema is a tagged variant in spirit (see AsObject), but is represented as
// a single struct so that callers can build one as a Go literal without
// going through JSON at all — the engine never parses JSON itself (that is
// the job of an external schema-fetching layer), it only walks values of
// this type.
package schema

import "encoding/json"

// Schema is a JSON-Schema-style value. The zero Schema is the boolean
// "true" schema (matches anything) unless Bool is explicitly set to a
// pointer to false.
//
// At most one of Type/Types is set at a time; both are nil for an untyped
// schema.
type Schema struct {
	// Bool is non-nil when this value was written as a JSON boolean rather
	// than an object. *Bool == true behaves like an empty object schema;
	// *Bool == false matches nothing.
	Bool *bool

	Type  string
	Types []string

	Enum  []any
	Const *any // pointer because JSON null is a valid const value

	ErrorMessage        string
	DeprecationMessage  string
	PatternErrorMessage string

	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema
	Not   *Schema

	If   *Schema
	Then *Schema
	Else *Schema

	MultipleOf *float64
	Minimum    *float64
	Maximum    *float64
	// ExclusiveMinimum/Maximum follow §3.2: either a boolean (draft-4 flag
	// repurposing Minimum/Maximum as exclusive) or a number (draft-7
	// independent exclusive bound). At most one of Bool/Num is set.
	ExclusiveMinimum *BoolOrNumber
	ExclusiveMaximum *BoolOrNumber

	MinLength           *int
	MaxLength           *int
	Pattern             string
	Format              string

	// Items is either a single schema (applies to every element) or, when
	// Tuple is true, ItemsTuple holds one schema per leading index.
	Items           *Schema
	ItemsTuple      []*Schema
	Tuple           bool
	AdditionalItems *Schema // Bool set when given as a JSON boolean
	Contains        *Schema
	MinItems        *int
	MaxItems        *int
	UniqueItems     bool

	Properties           map[string]*Schema
	PatternProperties    map[string]*Schema
	AdditionalProperties *Schema // Bool set when given as a JSON boolean
	Required             []string
	PropertyNames        *Schema
	Dependencies         map[string]*Dependency
	MinProperties        *int
	MaxProperties        *int
}

// Dependency is the value of one entry in a schema's "dependencies" keyword:
// either a schema the whole object must validate against, or a list of
// property names that must also be present.
type Dependency struct {
	Schema *Schema
	Names  []string
}

// BoolOrNumber models a field that in draft-4 schemas is a boolean flag and
// in draft-7 schemas is an independent numeric bound (§4.8).
type BoolOrNumber struct {
	Bool *bool
	Num  *float64
}

// AsObject normalizes s to its always-object form, per the design note in
// §9 of the specification: a true-schema becomes an empty object schema (it
// imposes no constraints, so matches everything already), and a
// false-schema becomes the true schema wrapped in "not" (so it matches
// nothing). A nil Schema is treated the same as an explicit true.
func AsObject(s *Schema) *Schema {
	if s == nil {
		return &Schema{}
	}
	if s.Bool == nil {
		return s
	}
	if *s.Bool {
		return &Schema{}
	}
	return &Schema{Not: True()}
}

// IsFalse reports whether s is the boolean-false schema, matching nothing.
func IsFalse(s *Schema) bool {
	return s != nil && s.Bool != nil && !*s.Bool
}

// IsTrue reports whether s is the boolean-true schema, or nil (absent,
// which behaves identically).
func IsTrue(s *Schema) bool {
	return s == nil || (s.Bool != nil && *s.Bool)
}

// True and False are convenience constructors for the boolean schema forms.
func True() *Schema  { b := true; return &Schema{Bool: &b} }
func False() *Schema { b := false; return &Schema{Bool: &b} }

// UnmarshalJSON implements the boolean-or-object union described in §3.2.
// It is provided so that test fixtures and the cmd/schemacheck CLI can load
// schemas from JSON text; the validation engine itself never calls it.
func (s *Schema) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*s = Schema{Bool: &asBool}
		return nil
	}

	var raw rawSchema
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = raw.toSchema()
	return nil
}

// rawSchema mirrors the JSON shape of Schema before the union fields
// (type, exclusiveMinimum/Maximum, items, additionalItems,
// additionalProperties, propertyNames, dependencies) are resolved into
// their typed Go representations.
type rawSchema struct {
	Type  json.RawMessage `json:"type,omitempty"`
	Enum  []any           `json:"enum,omitempty"`
	Const *any            `json:"const,omitempty"`

	ErrorMessage        string `json:"errorMessage,omitempty"`
	DeprecationMessage  string `json:"deprecationMessage,omitempty"`
	PatternErrorMessage string `json:"patternErrorMessage,omitempty"`

	AllOf []*Schema `json:"allOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`
	OneOf []*Schema `json:"oneOf,omitempty"`
	Not   *Schema   `json:"not,omitempty"`

	If   *Schema `json:"if,omitempty"`
	Then *Schema `json:"then,omitempty"`
	Else *Schema `json:"else,omitempty"`

	MultipleOf       *float64        `json:"multipleOf,omitempty"`
	Minimum          *float64        `json:"minimum,omitempty"`
	Maximum          *float64        `json:"maximum,omitempty"`
	ExclusiveMinimum json.RawMessage `json:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum json.RawMessage `json:"exclusiveMaximum,omitempty"`

	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Format    string `json:"format,omitempty"`

	Items           json.RawMessage `json:"items,omitempty"`
	AdditionalItems json.RawMessage `json:"additionalItems,omitempty"`
	Contains        *Schema         `json:"contains,omitempty"`
	MinItems        *int            `json:"minItems,omitempty"`
	MaxItems        *int            `json:"maxItems,omitempty"`
	UniqueItems     bool            `json:"uniqueItems,omitempty"`

	Properties           map[string]*Schema         `json:"properties,omitempty"`
	PatternProperties    map[string]*Schema         `json:"patternProperties,omitempty"`
	AdditionalProperties json.RawMessage            `json:"additionalProperties,omitempty"`
	Required             []string                   `json:"required,omitempty"`
	PropertyNames        json.RawMessage            `json:"propertyNames,omitempty"`
	Dependencies         map[string]json.RawMessage `json:"dependencies,omitempty"`
	MinProperties        *int                       `json:"minProperties,omitempty"`
	MaxProperties        *int                       `json:"maxProperties,omitempty"`
}

func (r *rawSchema) toSchema() Schema {
	s := Schema{
		Enum:                 r.Enum,
		Const:                r.Const,
		ErrorMessage:         r.ErrorMessage,
		DeprecationMessage:   r.DeprecationMessage,
		PatternErrorMessage:  r.PatternErrorMessage,
		AllOf:                r.AllOf,
		AnyOf:                r.AnyOf,
		OneOf:                r.OneOf,
		Not:                  r.Not,
		If:                   r.If,
		Then:                 r.Then,
		Else:                 r.Else,
		MultipleOf:           r.MultipleOf,
		Minimum:              r.Minimum,
		Maximum:              r.Maximum,
		MinLength:            r.MinLength,
		MaxLength:            r.MaxLength,
		Pattern:              r.Pattern,
		Format:               r.Format,
		Contains:             r.Contains,
		MinItems:             r.MinItems,
		MaxItems:             r.MaxItems,
		UniqueItems:          r.UniqueItems,
		Properties:           r.Properties,
		PatternProperties:    r.PatternProperties,
		Required:             r.Required,
		MinProperties:        r.MinProperties,
		MaxProperties:        r.MaxProperties,
	}

	decodeTypeField(r.Type, &s)
	s.ExclusiveMinimum = decodeBoolOrNumber(r.ExclusiveMinimum)
	s.ExclusiveMaximum = decodeBoolOrNumber(r.ExclusiveMaximum)
	s.Items, s.ItemsTuple, s.Tuple = decodeItems(r.Items)
	s.AdditionalItems = decodeSchemaOrBool(r.AdditionalItems)
	s.AdditionalProperties = decodeSchemaOrBool(r.AdditionalProperties)
	s.PropertyNames = decodeSchemaOrBool(r.PropertyNames)
	s.Dependencies = decodeDependencies(r.Dependencies)

	return s
}

func decodeTypeField(raw json.RawMessage, s *Schema) {
	if len(raw) == 0 {
		return
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		s.Type = single
		return
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		s.Types = list
	}
}

func decodeBoolOrNumber(raw json.RawMessage) *BoolOrNumber {
	if len(raw) == 0 {
		return nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return &BoolOrNumber{Bool: &b}
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &BoolOrNumber{Num: &n}
	}
	return nil
}

func decodeSchemaOrBool(raw json.RawMessage) *Schema {
	if len(raw) == 0 {
		return nil
	}
	var s Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func decodeItems(raw json.RawMessage) (single *Schema, tuple []*Schema, isTuple bool) {
	if len(raw) == 0 {
		return nil, nil, false
	}
	var list []*Schema
	if err := json.Unmarshal(raw, &list); err == nil {
		return nil, list, true
	}
	var s Schema
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s, nil, false
	}
	return nil, nil, false
}

func decodeDependencies(raw map[string]json.RawMessage) map[string]*Dependency {
	if raw == nil {
		return nil
	}
	out := make(map[string]*Dependency, len(raw))
	for k, v := range raw {
		var names []string
		if err := json.Unmarshal(v, &names); err == nil {
			out[k] = &Dependency{Names: names}
			continue
		}
		var s Schema
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = &Dependency{Schema: &s}
		}
	}
	return out
}
