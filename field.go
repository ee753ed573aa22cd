/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataenum

import (
	"regexp"
)

type unset struct{}

func (unset) String() string { return "<unset>" }

// Unset is the value of an optional attribute that was not supplied.
// It never compares equal to a caller-supplied value.
var Unset any = unset{}

// Field declares one data attribute of an enumeration type.
type Field struct {
	// Name is the attribute name; it must be a legal identifier.
	Name string
	// Unique attributes are indexed and can be used for lookups.
	Unique bool
	// HasDefault makes the attribute optional at construction.
	HasDefault bool
	Default    any
	// Format names a strfmt format the value must satisfy, e.g. "email" or "uri".
	Format string
}

// Attr declares a required attribute.
func Attr(name string) Field {
	return Field{Name: name}
}

// AsUnique marks the attribute unique.
func (f Field) AsUnique() Field {
	f.Unique = true
	return f
}

// WithDefault makes the attribute optional with the given default.
func (f Field) WithDefault(v any) Field {
	f.HasDefault = true
	f.Default = v
	return f
}

// Optional makes the attribute optional; omitted values read back as Unset.
func (f Field) Optional() Field {
	return f.WithDefault(Unset)
}

// WithFormat constrains the attribute to a registered strfmt format.
func (f Field) WithFormat(name string) Field {
	f.Format = name
	return f
}

var attrNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidAttrName reports whether name can be used as an attribute name.
// Names must start with a letter; a leading underscore is reserved.
func ValidAttrName(name string) bool {
	return attrNamePattern.MatchString(name)
}
