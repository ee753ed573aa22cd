/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package definition

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/suparena/dataenum"
	"github.com/suparena/dataenum/errors"
)

// Document declares one enumeration type and its members.
type Document struct {
	Name        string           `yaml:"name"`
	PrimaryAttr string           `yaml:"primary_attr"`
	KeyKind     string           `yaml:"key_kind"`
	Attributes  []Attribute      `yaml:"attributes"`
	Members     []map[string]any `yaml:"members"`
}

// Attribute declares one data attribute. A default is recorded whenever the
// default key is present, even if its value is null.
type Attribute struct {
	Name       string `yaml:"name"`
	Unique     bool   `yaml:"unique"`
	Optional   bool   `yaml:"optional"`
	Format     string `yaml:"format"`
	Default    any    `yaml:"default"`
	HasDefault bool   `yaml:"-"`
}

// UnmarshalYAML decodes the attribute and notes whether a default was given.
// A bare scalar is shorthand for a required attribute with that name.
func (a *Attribute) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*a = Attribute{Name: value.Value}
		return nil
	}

	// Node.Decode does not inherit KnownFields, so keys are checked here.
	hasDefault := false
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			if !attributeKeys[key.Value] {
				return fmt.Errorf("line %d: field %s not found in attribute", key.Line, key.Value)
			}
			if key.Value == "default" {
				hasDefault = true
			}
		}
	}

	type plain Attribute
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*a = Attribute(p)
	a.HasDefault = hasDefault
	return nil
}

var attributeKeys = map[string]bool{
	"name":     true,
	"unique":   true,
	"optional": true,
	"format":   true,
	"default":  true,
}

// Field converts the attribute to a schema field.
func (a Attribute) Field() dataenum.Field {
	f := dataenum.Attr(a.Name).WithFormat(a.Format)
	if a.Unique {
		f = f.AsUnique()
	}
	switch {
	case a.HasDefault:
		f = f.WithDefault(a.Default)
	case a.Optional:
		f = f.Optional()
	}
	return f
}

// Options converts the document header into type options.
func (d *Document) Options() ([]dataenum.Option, error) {
	kind, ok := dataenum.ParseKeyKind(d.KeyKind)
	if !ok {
		return nil, errors.NewConfigurationError(d.Name, fmt.Sprintf("unknown key kind %q", d.KeyKind))
	}

	opts := []dataenum.Option{dataenum.WithKeyKind(kind)}
	if d.PrimaryAttr != "" {
		opts = append(opts, dataenum.WithPrimaryAttr(d.PrimaryAttr))
	}
	fields := make([]dataenum.Field, 0, len(d.Attributes))
	for _, a := range d.Attributes {
		fields = append(fields, a.Field())
	}
	return append(opts, dataenum.WithAttributes(fields...)), nil
}

// Build creates the type and constructs every member in document order.
// Members without a primary key value are auto-assigned.
func (d *Document) Build(opts ...dataenum.Option) (*dataenum.Type, error) {
	typeOpts, err := d.Options()
	if err != nil {
		return nil, err
	}
	t, err := dataenum.NewType(d.Name, append(typeOpts, opts...)...)
	if err != nil {
		return nil, err
	}

	for i, values := range d.Members {
		if _, err := t.New(nil, dataenum.Values(values)); err != nil {
			return nil, fmt.Errorf("%s member #%d: %w", d.Name, i+1, err)
		}
	}
	return t, nil
}
