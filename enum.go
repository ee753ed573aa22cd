/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataenum

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/dataenum/errors"
	"github.com/suparena/dataenum/registry"
)

// DefaultPrimaryAttr names the primary key when a type does not choose one.
const DefaultPrimaryAttr = "value"

// Values holds attribute values by name for member construction.
type Values map[string]any

// Option configures a Type.
type Option func(*options)

type options struct {
	primaryAttr string
	kind        KeyKind
	fields      []Field
	logger      *slog.Logger
}

// WithPrimaryAttr names the attribute that holds the primary key.
func WithPrimaryAttr(name string) Option { return func(o *options) { o.primaryAttr = name } }

// WithKeyKind declares the primary key kind instead of inferring it.
func WithKeyKind(kind KeyKind) Option { return func(o *options) { o.kind = kind } }

// WithAttributes appends declared data attributes, in order.
func WithAttributes(fields ...Field) Option {
	return func(o *options) { o.fields = append(o.fields, fields...) }
}

// WithLogger sets the logger used to trace registrations.
func WithLogger(logger *slog.Logger) Option { return func(o *options) { o.logger = logger } }

// Type is an enumeration type: the schema shared by its members together with
// the registry of every member constructed so far.
//
// Types are usually declared once as package-level variables:
//
//	var Currency = dataenum.MustNewType("Currency",
//	    dataenum.WithKeyKind(dataenum.KindString),
//	    dataenum.WithAttributes(
//	        dataenum.Attr("symbol").AsUnique(),
//	        dataenum.Attr("name"),
//	    ))
type Type struct {
	name        string
	primaryAttr string
	declared    KeyKind
	kind        atomic.Int32
	fields      []Field
	byName      map[string]int
	unique      []string
	logger      *slog.Logger

	once    sync.Once
	members *registry.Registry[*Member]
}

// NewType validates the schema and returns a new enumeration type with an
// empty registry of its own.
func NewType(name string, opts ...Option) (*Type, error) {
	o := options{primaryAttr: DefaultPrimaryAttr}
	for _, fn := range opts {
		fn(&o)
	}

	if name == "" {
		return nil, errors.NewConfigurationError("", "type name is empty")
	}
	if !ValidAttrName(o.primaryAttr) {
		return nil, errors.NewConfigurationError(name, fmt.Sprintf("invalid primary attribute name %q", o.primaryAttr))
	}
	if o.kind < KindInferred || o.kind > KindInt {
		return nil, errors.NewConfigurationError(name, fmt.Sprintf("unknown key kind %d", o.kind))
	}

	t := &Type{
		name:        name,
		primaryAttr: o.primaryAttr,
		declared:    o.kind,
		fields:      make([]Field, 0, len(o.fields)),
		byName:      make(map[string]int, len(o.fields)),
		logger:      o.logger,
	}
	t.kind.Store(int32(o.kind))
	if t.logger == nil {
		t.logger = slog.Default()
	}

	for _, f := range o.fields {
		if err := t.addField(f); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustNewType is like NewType but panics on a configuration error.
func MustNewType(name string, opts ...Option) *Type {
	t, err := NewType(name, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Type) addField(f Field) error {
	switch {
	case !ValidAttrName(f.Name):
		return errors.NewConfigurationError(t.name, fmt.Sprintf("invalid attribute name %q", f.Name))
	case f.Name == t.primaryAttr:
		return errors.NewConfigurationError(t.name, fmt.Sprintf("attribute %q conflicts with the primary attribute", f.Name))
	}
	if _, dup := t.byName[f.Name]; dup {
		return errors.NewConfigurationError(t.name, fmt.Sprintf("attribute %q declared twice", f.Name))
	}
	if f.Format != "" {
		if !strfmt.Default.ContainsName(f.Format) {
			return errors.NewConfigurationError(t.name, fmt.Sprintf("attribute %q uses unknown format %q", f.Name, f.Format))
		}
		if f.HasDefault {
			if err := t.checkFormat(f, f.Default); err != nil {
				return errors.NewConfigurationError(t.name, fmt.Sprintf("default of %q: %v", f.Name, err))
			}
		}
	}
	if f.Unique && f.HasDefault && f.Default != Unset && !registry.Hashable(indexValue(f.Default)) {
		return errors.NewConfigurationError(t.name, fmt.Sprintf("default of unique attribute %q is not hashable", f.Name))
	}

	t.byName[f.Name] = len(t.fields)
	t.fields = append(t.fields, f)
	if f.Unique {
		t.unique = append(t.unique, f.Name)
	}
	return nil
}

// registry returns the member registry, creating it on first use.
func (t *Type) registry() *registry.Registry[*Member] {
	t.once.Do(func() {
		t.members = registry.New[*Member](t.name, t.unique...)
	})
	return t.members
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// PrimaryAttr returns the name of the primary key attribute.
func (t *Type) PrimaryAttr() string { return t.primaryAttr }

// KeyKind returns the declared key kind, or the inferred one once a member
// has been registered.
func (t *Type) KeyKind() KeyKind { return KeyKind(t.kind.Load()) }

// Fields returns the declared attributes in order.
func (t *Type) Fields() []Field { return append([]Field(nil), t.fields...) }

// Field returns the declared attribute with the given name.
func (t *Type) Field(name string) (Field, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Field{}, false
	}
	return t.fields[i], true
}

// UniqueAttrs returns the names of the unique attributes in declaration order.
func (t *Type) UniqueAttrs() []string { return append([]string(nil), t.unique...) }

// Members returns every member in registration order.
func (t *Type) Members() []*Member { return t.registry().Values() }

// Len returns the number of registered members.
func (t *Type) Len() int { return t.registry().Len() }

// Keys returns the primary keys of every member in registration order.
func (t *Type) Keys() []any {
	members := t.Members()
	keys := make([]any, len(members))
	for i, m := range members {
		keys[i] = m.key
	}
	return keys
}

func (t *Type) String() string { return t.name }
