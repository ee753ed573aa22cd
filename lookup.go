/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataenum

import (
	"github.com/suparena/dataenum/errors"
)

// Query selects a member by exactly one axis: a primary key or a single
// unique attribute filter.
type Query struct {
	// Key is the primary key; nil means no primary key is given.
	Key     any
	Filters map[string]any
	// Default is returned instead of an error when nothing matches and
	// HasDefault is set. A nil Default is a valid default.
	Default    *Member
	HasDefault bool
}

// LookupOption adjusts a Get or GetBy query.
type LookupOption func(*Query)

// WithDefault returns d when no member matches.
func WithDefault(d *Member) LookupOption {
	return func(q *Query) {
		q.Default = d
		q.HasDefault = true
	}
}

// Get looks a member up by primary key.
func (t *Type) Get(key any, opts ...LookupOption) (*Member, error) {
	q := Query{Key: key}
	for _, fn := range opts {
		fn(&q)
	}
	return t.Find(q)
}

// GetBy looks a member up by a unique attribute.
func (t *Type) GetBy(attr string, value any, opts ...LookupOption) (*Member, error) {
	q := Query{Filters: map[string]any{attr: value}}
	for _, fn := range opts {
		fn(&q)
	}
	return t.Find(q)
}

// Find runs a query. It never modifies the registry.
func (t *Type) Find(q Query) (*Member, error) {
	axes := len(q.Filters)
	if q.Key != nil {
		axes++
	}
	if axes != 1 {
		return nil, errors.NewUsageError(t.name+".Find", "exactly one of a primary key or a single unique attribute filter is required")
	}

	if q.Key != nil {
		return t.findByKey(q.Key, q)
	}

	// Exactly one filter remains.
	var attr string
	var value any
	for attr, value = range q.Filters {
	}
	if attr == t.primaryAttr {
		return t.findByKey(value, q)
	}
	f, ok := t.Field(attr)
	if !ok {
		return nil, errors.NewUnknownAttributeError(t.name, attr)
	}
	if !f.Unique {
		return nil, errors.NewNotUniqueError(t.name, attr)
	}
	if m, found := t.registry().GetBy(attr, indexValue(value)); found {
		return m, nil
	}
	return t.absent(q, attr, value)
}

func (t *Type) findByKey(key any, q Query) (*Member, error) {
	if nk, _, ok := normalizeKey(key); ok {
		if m, found := t.registry().Get(nk); found {
			return m, nil
		}
	}
	return t.absent(q, "", key)
}

func (t *Type) absent(q Query, attr string, value any) (*Member, error) {
	if q.HasDefault {
		return q.Default, nil
	}
	return nil, errors.NewMemberDoesNotExistError(t.name, attr, value)
}
