/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"math"
	"reflect"
	"sync"

	"github.com/suparena/dataenum/errors"
)

// Secondary is one value destined for a unique attribute index.
type Secondary struct {
	Attr  string
	Value any
}

// Candidate describes a pending registration.
//
// Validate runs after the duplicate primary key check and returns the values
// to be placed in unique indexes. Build is only called once every check has
// passed, and its result is what gets committed. Build is required.
type Candidate[V any] struct {
	// Key is the primary key; nil requests an auto-assigned int64 key.
	Key      any
	Validate func(key any) ([]Secondary, error)
	Build    func(key any) V
}

// Registry holds every value registered for one enumeration type, indexed by
// primary key and by each unique attribute. It grows monotonically.
//
// Register performs the duplicate checks and the commit inside a single
// exclusive section, so no duplicate ever survives to commit even under
// concurrent registration.
type Registry[V any] struct {
	mu        sync.RWMutex
	typeName  string
	order     []V
	primary   map[any]V
	secondary map[string]map[any]V
	next      int64
	// exhausted is set once math.MaxInt64 is taken; no auto key remains.
	exhausted bool
}

// New creates an empty registry for the named type with one index per unique attribute.
func New[V any](typeName string, uniqueAttrs ...string) *Registry[V] {
	r := &Registry[V]{
		typeName:  typeName,
		primary:   make(map[any]V),
		secondary: make(map[string]map[any]V, len(uniqueAttrs)),
	}
	for _, attr := range uniqueAttrs {
		r.secondary[attr] = make(map[any]V)
	}
	return r
}

// Register validates and commits a candidate, returning the committed value.
func (r *Registry[V]) Register(c Candidate[V]) (V, error) {
	var zero V
	if c.Build == nil {
		return zero, errors.NewUsageError("register", "candidate has no Build function")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := c.Key
	if key == nil {
		next, ok := r.nextFreeKey()
		if !ok {
			return zero, errors.NewInvalidKeyError(r.typeName, nil, "auto key counter exhausted")
		}
		key = next
	} else if !Hashable(key) {
		return zero, errors.NewInvalidKeyError(r.typeName, key, "key is not hashable")
	}

	if _, exists := r.primary[key]; exists {
		return zero, errors.NewDuplicateKeyError(r.typeName, key)
	}

	var secondaries []Secondary
	if c.Validate != nil {
		var err error
		if secondaries, err = c.Validate(key); err != nil {
			return zero, err
		}
	}

	seen := make(map[string]map[any]struct{}, len(secondaries))
	for _, s := range secondaries {
		idx, ok := r.secondary[s.Attr]
		if !ok {
			return zero, errors.NewNotUniqueError(r.typeName, s.Attr)
		}
		if !Hashable(s.Value) {
			return zero, errors.NewInvalidValueError(r.typeName, s.Attr, s.Value, "value of a unique attribute must be hashable")
		}
		if _, exists := idx[s.Value]; exists {
			return zero, errors.NewDuplicateSecondaryKeyError(r.typeName, s.Attr, s.Value)
		}
		if _, dup := seen[s.Attr][s.Value]; dup {
			return zero, errors.NewDuplicateSecondaryKeyError(r.typeName, s.Attr, s.Value)
		}
		if seen[s.Attr] == nil {
			seen[s.Attr] = make(map[any]struct{}, 1)
		}
		seen[s.Attr][s.Value] = struct{}{}
	}

	v := c.Build(key)
	r.primary[key] = v
	for _, s := range secondaries {
		r.secondary[s.Attr][s.Value] = v
	}
	r.order = append(r.order, v)
	if n, ok := key.(int64); ok {
		switch {
		case n == math.MaxInt64:
			r.exhausted = true
		case n >= r.next:
			r.next = n + 1
		}
	}
	return v, nil
}

// nextFreeKey returns the lowest counter value not yet used as a key, or
// false when the counter has run out. Callers must hold r.mu.
func (r *Registry[V]) nextFreeKey() (int64, bool) {
	if r.exhausted {
		return 0, false
	}
	for k := r.next; ; k++ {
		if _, used := r.primary[k]; !used {
			return k, true
		}
		if k == math.MaxInt64 {
			return 0, false
		}
	}
}

// Get returns the value registered under the primary key.
func (r *Registry[V]) Get(key any) (V, bool) {
	var zero V
	if !Hashable(key) {
		return zero, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.primary[key]
	return v, ok
}

// GetBy returns the value registered under a unique attribute value.
func (r *Registry[V]) GetBy(attr string, value any) (V, bool) {
	var zero V
	if !Hashable(value) {
		return zero, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.secondary[attr][value]
	return v, ok
}

// Indexed reports whether attr has a unique index.
func (r *Registry[V]) Indexed(attr string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.secondary[attr]
	return ok
}

// Values returns all registered values in insertion order.
func (r *Registry[V]) Values() []V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]V(nil), r.order...)
}

// Len returns the number of registered values.
func (r *Registry[V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Hashable reports whether v can be used as a map key without panicking.
// Interface fields and array elements are checked by their dynamic types.
func Hashable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Comparable()
}
