/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataenum

import (
	"fmt"
	"sort"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/dataenum/errors"
	"github.com/suparena/dataenum/registry"
)

// New constructs and registers a member. Construction is registration: the
// member is either fully indexed or the call fails with no visible effect.
//
// A nil key requests an auto-assigned integer key. The key may also be given
// in values under the primary attribute name.
func (t *Type) New(key any, values Values) (*Member, error) {
	m, err := t.construct(key, values)
	if err != nil {
		t.logger.Debug("member rejected", "type", t.name, "key", key, "error", err)
		return nil, err
	}
	t.logger.Debug("member registered", "type", t.name, "key", m.key, "auto", m.auto)
	return m, nil
}

// NewAuto constructs a member with an auto-assigned key.
func (t *Type) NewAuto(values Values) (*Member, error) {
	return t.New(nil, values)
}

// NewPositional binds args to the declared attributes in order.
func (t *Type) NewPositional(key any, args ...any) (*Member, error) {
	if len(args) > len(t.fields) {
		return nil, errors.NewUsageError(t.name, fmt.Sprintf("expected at most %d attribute values; got %d", len(t.fields), len(args)))
	}
	values := make(Values, len(args))
	for i, arg := range args {
		values[t.fields[i].Name] = arg
	}
	return t.New(key, values)
}

// MustNew is like New but panics on error. Useful for package-level members.
func (t *Type) MustNew(key any, values Values) *Member {
	m, err := t.New(key, values)
	if err != nil {
		panic(err)
	}
	return m
}

func (t *Type) construct(key any, values Values) (*Member, error) {
	if v, ok := values[t.primaryAttr]; ok {
		if key != nil {
			return nil, errors.NewUsageError(t.name, fmt.Sprintf("primary key given both positionally and as %q", t.primaryAttr))
		}
		key = v
	}

	auto := key == nil
	if auto {
		if t.declared == KindString {
			return nil, errors.NewInvalidKeyError(t.name, nil, "auto-assigned keys require integer primary keys")
		}
	} else {
		nk, kind, ok := normalizeKey(key)
		if !ok {
			return nil, errors.NewInvalidKeyError(t.name, key, fmt.Sprintf("unsupported key type %T", key))
		}
		if t.declared != KindInferred && t.declared != kind {
			return nil, errors.NewInvalidKeyError(t.name, key, fmt.Sprintf("%s key expected", t.declared))
		}
		key = nk
	}

	var attrs map[string]any
	return t.registry().Register(registry.Candidate[*Member]{
		Key: key,
		Validate: func(key any) ([]registry.Secondary, error) {
			kind := kindOf(key)
			if cur := t.KeyKind(); cur != KindInferred && cur != kind {
				return nil, errors.NewInvalidKeyError(t.name, key, fmt.Sprintf("%s key expected", cur))
			}
			var err error
			if attrs, err = t.resolveAttrs(values); err != nil {
				return nil, err
			}
			var secondaries []registry.Secondary
			for _, name := range t.unique {
				if v := attrs[name]; v != Unset {
					secondaries = append(secondaries, registry.Secondary{Attr: name, Value: indexValue(v)})
				}
			}
			return secondaries, nil
		},
		Build: func(key any) *Member {
			t.kind.CompareAndSwap(int32(KindInferred), int32(kindOf(key)))
			return &Member{typ: t, key: key, auto: auto, attrs: attrs}
		},
	})
}

// resolveAttrs checks supplied values against the schema and fills defaults.
func (t *Type) resolveAttrs(values Values) (map[string]any, error) {
	var unknown []string
	for name := range values {
		if name == t.primaryAttr {
			continue
		}
		if _, ok := t.byName[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errors.NewUnknownAttributeError(t.name, unknown[0])
	}

	attrs := make(map[string]any, len(t.fields))
	var missing []string
	for _, f := range t.fields {
		v, ok := values[f.Name]
		switch {
		case ok:
			attrs[f.Name] = v
		case f.HasDefault:
			attrs[f.Name] = f.Default
		default:
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewMissingAttributeError(t.name, missing...)
	}

	for _, f := range t.fields {
		if _, ok := values[f.Name]; !ok {
			continue
		}
		if err := t.checkFormat(f, attrs[f.Name]); err != nil {
			return nil, err
		}
	}
	return attrs, nil
}

func (t *Type) checkFormat(f Field, v any) error {
	if f.Format == "" || v == Unset {
		return nil
	}
	var s string
	switch sv := v.(type) {
	case string:
		s = sv
	case fmt.Stringer:
		s = sv.String()
	default:
		return errors.NewInvalidValueError(t.name, f.Name, v, fmt.Sprintf("format %q requires a string value", f.Format))
	}
	if !strfmt.Default.Validates(f.Format, s) {
		return errors.NewInvalidValueError(t.name, f.Name, v, fmt.Sprintf("not a valid %s", f.Format))
	}
	return nil
}
