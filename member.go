/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataenum

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/suparena/dataenum/errors"
)

// Member is one immutable instance of an enumeration type. Members are only
// created through Type.New and friends, and are compared by identity: a type
// never holds two members with the same key.
type Member struct {
	typ   *Type
	key   any
	auto  bool
	attrs map[string]any
}

// Type returns the enumeration type the member belongs to.
func (m *Member) Type() *Type { return m.typ }

// Key returns the primary key, either a string or an int64.
func (m *Member) Key() any { return m.key }

// IsAuto reports whether the key was auto-assigned.
func (m *Member) IsAuto() bool { return m.auto }

// Attr returns the value of a declared attribute. The primary attribute name
// yields the key. ok is false for undeclared names.
func (m *Member) Attr(name string) (any, bool) {
	if name == m.typ.primaryAttr {
		return m.key, true
	}
	v, ok := m.attrs[name]
	return v, ok
}

// MustAttr is like Attr but panics for undeclared names.
func (m *Member) MustAttr(name string) any {
	v, ok := m.Attr(name)
	if !ok {
		panic(errors.NewUnknownAttributeError(m.typ.name, name))
	}
	return v
}

// IsSet reports whether the attribute holds a value other than Unset.
func (m *Member) IsSet(name string) bool {
	v, ok := m.Attr(name)
	return ok && v != Unset
}

// Attrs returns a copy of the data attributes.
func (m *Member) Attrs() map[string]any {
	return maps.Clone(m.attrs)
}

// AttrAs returns an attribute converted to T. ok is false when the attribute
// is undeclared, unset or holds a value of another type.
func AttrAs[T any](m *Member, name string) (T, bool) {
	v, ok := m.Attr(name)
	if !ok {
		var zero T
		return zero, false
	}
	tv, ok := v.(T)
	return tv, ok
}

// Equal reports whether both members have the same type and key.
func (m *Member) Equal(other *Member) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.typ == other.typ && m.key == other.key
}

// String returns the key in its string form.
func (m *Member) String() string {
	if s, ok := m.key.(string); ok {
		return s
	}
	return fmt.Sprint(m.key)
}

// Int returns the key of an integer-keyed member.
func (m *Member) Int() (int64, error) {
	n, ok := m.key.(int64)
	if !ok {
		return 0, errors.NewInvalidKeyError(m.typ.name, m.key, "key is not an integer")
	}
	return n, nil
}

// GoString renders the member as a constructor call, e.g.
// Currency("USD", symbol="$", name="United States dollar").
func (m *Member) GoString() string {
	var b strings.Builder
	b.WriteString(m.typ.name)
	b.WriteByte('(')
	b.WriteString(literal(m.key))
	for _, f := range m.typ.fields {
		fmt.Fprintf(&b, ", %s=%s", f.Name, literal(m.attrs[f.Name]))
	}
	b.WriteByte(')')
	return b.String()
}

func literal(v any) string {
	switch tv := v.(type) {
	case string:
		return strconv.Quote(tv)
	case *Member:
		return tv.GoString()
	}
	return fmt.Sprint(v)
}
