// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"sort"

	"github.com/abemedia/monaco-yaml/ast"
	"github.com/abemedia/monaco-yaml/schema"
)

// validateObject implements §4.5.
func (st *state) validateObject(obj *ast.Object, s *schema.Schema, result *Result, collector Collector) {
	seen, unprocessed := collectEffectiveProperties(obj)

	// step 3: required
	for _, name := range s.Required {
		if _, ok := seen[name]; !ok {
			off, length := requiredLocation(obj)
			result.AddProblem(Diagnostic{
				Offset: off, Length: length,
				Severity: SeverityWarning,
				Message:  applyErrorMessage(s, "Missing property \""+name+"\"."),
			})
		}
	}

	// step 4: properties, in a stable (sorted) order for determinism.
	processed := map[string]bool{}
	for _, name := range sortedKeys(s.Properties) {
		processed[name] = true
		prop, ok := seen[name]
		if !ok {
			continue
		}
		st.applyPropertySchema(prop, s.Properties[name], result, collector)
	}
	unprocessed = removeProcessed(unprocessed, processed)

	// step 5: patternProperties, in a stable (sorted) order for determinism.
	patterns := sortedKeys(s.PatternProperties)
	for _, pattern := range patterns {
		re := compilePattern(pattern)
		if re == nil {
			continue
		}
		subschema := s.PatternProperties[pattern]
		snapshot := append([]string{}, unprocessed...)
		var remaining []string
		matchedThisPattern := map[string]bool{}
		for _, name := range snapshot {
			if matchString(re, name) && !matchedThisPattern[name] {
				matchedThisPattern[name] = true
				if prop, ok := seen[name]; ok {
					st.applyPropertySchema(prop, subschema, result, collector)
				}
			}
		}
		for _, name := range unprocessed {
			if !matchedThisPattern[name] {
				remaining = append(remaining, name)
			}
		}
		unprocessed = remaining
	}

	// step 6: additionalProperties
	if s.AdditionalProperties != nil {
		for _, name := range unprocessed {
			prop, ok := seen[name]
			if !ok {
				continue
			}
			if schema.IsFalse(s.AdditionalProperties) {
				result.AddProblem(Diagnostic{
					Offset: prop.KeyNode.Offset(), Length: prop.KeyNode.Length(),
					Severity: SeverityWarning,
					Message:  "Property " + prop.Key() + " is not allowed.",
				})
			} else if !schema.IsTrue(s.AdditionalProperties) && prop.ValueNode != nil {
				st.validate(prop.ValueNode, s.AdditionalProperties, result, collector)
			}
		}
	}

	// step 7: minProperties/maxProperties, based on the ORIGINAL property count.
	count := len(obj.Properties)
	if s.MinProperties != nil && count < *s.MinProperties {
		result.AddProblem(Diagnostic{
			Offset: obj.Offset(), Length: obj.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, "Object has fewer properties than the required number of properties."),
		})
	}
	if s.MaxProperties != nil && count > *s.MaxProperties {
		result.AddProblem(Diagnostic{
			Offset: obj.Offset(), Length: obj.Length(),
			Severity: SeverityWarning,
			Message:  applyErrorMessage(s, "Object has more properties than the allowed number of properties."),
		})
	}

	// step 8: dependencies
	for _, name := range sortedDependencyKeys(s.Dependencies) {
		if _, ok := seen[name]; !ok {
			continue
		}
		dep := s.Dependencies[name]
		if dep.Schema != nil {
			subResult := &Result{}
			st.validate(obj, dep.Schema, subResult, collector)
			result.MergePropertyMatch(subResult)
			continue
		}
		for _, required := range dep.Names {
			if _, ok := seen[required]; !ok {
				result.AddProblem(Diagnostic{
					Offset: obj.Offset(), Length: obj.Length(),
					Severity: SeverityWarning,
					Message:  "Object is missing property " + required + " required by property " + name + ".",
				})
			} else {
				result.PropertiesValueMatches++
			}
		}
	}

	// step 9: propertyNames
	if s.PropertyNames != nil {
		for _, name := range sortedSeenKeys(seen) {
			subResult := &Result{}
			st.validate(seen[name].KeyNode, s.PropertyNames, subResult, NoopCollector)
			result.Merge(subResult)
		}
	}
}

// applyPropertySchema implements one entry of §4.5 step 4 (and, via a
// shared code path, step 5): subschema false disallows the property
// outright, true trivially matches it, and an object schema validates the
// value with score bookkeeping.
func (st *state) applyPropertySchema(prop *ast.Property, subschema *schema.Schema, result *Result, collector Collector) {
	if schema.IsFalse(subschema) {
		result.AddProblem(Diagnostic{
			Offset: prop.KeyNode.Offset(), Length: prop.KeyNode.Length(),
			Severity: SeverityWarning,
			Message:  "Property " + prop.Key() + " is not allowed.",
		})
		return
	}
	if schema.IsTrue(subschema) {
		result.PropertiesMatches++
		result.PropertiesValueMatches++
		return
	}
	if prop.ValueNode == nil {
		return
	}
	subResult := &Result{}
	st.validate(prop.ValueNode, subschema, subResult, collector)
	result.MergePropertyMatch(subResult)
}

// collectEffectiveProperties builds the seenKeys/unprocessed state of §4.5
// steps 1-2, applying the "<<" YAML merge-key extension: a "<<" property is
// never itself inserted; its value's properties (an object, or an array of
// objects) are spliced into the enclosing object's property set instead.
func collectEffectiveProperties(obj *ast.Object) (seen map[string]*ast.Property, unprocessed []string) {
	seen = make(map[string]*ast.Property)
	adopt := func(p *ast.Property) {
		seen[p.Key()] = p
		unprocessed = append(unprocessed, p.Key())
	}
	for _, p := range obj.Properties {
		if p.Key() != "<<" {
			adopt(p)
			continue
		}
		switch v := p.ValueNode.(type) {
		case *ast.Object:
			for _, mp := range v.Properties {
				adopt(mp)
			}
		case *ast.Array:
			for _, item := range v.Items {
				if o, ok := item.(*ast.Object); ok {
					for _, mp := range o.Properties {
						adopt(mp)
					}
				}
			}
		}
	}
	return seen, unprocessed
}

func requiredLocation(obj *ast.Object) (offset, length int) {
	if p, ok := obj.Parent().(*ast.Property); ok {
		return p.KeyNode.Offset(), p.KeyNode.Length()
	}
	return obj.Offset(), 1
}

func removeProcessed(unprocessed []string, processed map[string]bool) []string {
	var out []string
	for _, name := range unprocessed {
		if !processed[name] {
			out = append(out, name)
		}
	}
	return out
}

func sortedKeys(m map[string]*schema.Schema) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedDependencyKeys(m map[string]*schema.Dependency) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedSeenKeys(m map[string]*ast.Property) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
