// Package types defines the core domain types shared across the extraction pipeline.
package types

import "strings"

// Field is an optional string value extracted from a model response.
// The zero value is "unknown": no value was found for the field. Unknown
// is distinct from an empty string and must survive untouched until the
// persistence layer decides how to write it.
type Field struct {
	Value string `json:"value"`
	Known bool   `json:"known"`
}

// KnownField returns a Field carrying the given value.
func KnownField(value string) Field {
	return Field{Value: value, Known: true}
}

// UnknownField returns the unknown sentinel.
func UnknownField() Field {
	return Field{}
}

// NormalizeField converts a raw string from a model response into a Field.
// Blank values and the literal string "NULL" (any case) normalize to unknown;
// everything else is trimmed and kept.
func NormalizeField(raw string) Field {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "NULL") {
		return UnknownField()
	}
	return KnownField(trimmed)
}

// ParsedFieldSet maps canonical field names to extracted values.
type ParsedFieldSet map[string]Field

// Set assigns a field value. A known value is never overwritten by unknown.
func (p ParsedFieldSet) Set(name string, f Field) {
	if existing, ok := p[name]; ok && existing.Known && !f.Known {
		return
	}
	p[name] = f
}

// SetIfUnknown assigns a field value only when no known value exists yet.
func (p ParsedFieldSet) SetIfUnknown(name string, f Field) {
	if existing, ok := p[name]; ok && existing.Known {
		return
	}
	p[name] = f
}

// Get returns the field value, or the unknown sentinel when absent.
func (p ParsedFieldSet) Get(name string) Field {
	if f, ok := p[name]; ok {
		return f
	}
	return UnknownField()
}

// Value returns the string value of a field, or "" when unknown.
func (p ParsedFieldSet) Value(name string) string {
	return p.Get(name).Value
}

// KnownCount reports how many fields carry a known value.
func (p ParsedFieldSet) KnownCount() int {
	n := 0
	for _, f := range p {
		if f.Known {
			n++
		}
	}
	return n
}
