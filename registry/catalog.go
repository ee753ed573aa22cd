/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/dataenum/errors"
)

// Catalog maps names to values, typically enumeration types loaded from
// definitions. Names are registered once and never replaced.
type Catalog[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// NewCatalog creates an empty catalog.
func NewCatalog[V any]() *Catalog[V] {
	return &Catalog[V]{entries: make(map[string]V)}
}

// Define registers v under name. Defining an empty or already used name fails
// with a configuration error.
func (c *Catalog[V]) Define(name string, v V) error {
	if name == "" {
		return errors.NewConfigurationError("", "catalog entry name is empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[name]; exists {
		return errors.NewConfigurationError(name, "already defined")
	}
	c.entries[name] = v
	return nil
}

// MustDefine is like Define but panics on error, to prevent accidental overrides.
func (c *Catalog[V]) MustDefine(name string, v V) {
	if err := c.Define(name, v); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

// Get returns the value registered under name.
func (c *Catalog[V]) Get(name string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[name]
	return v, ok
}

// Names returns the registered names in lexicographic order.
func (c *Catalog[V]) Names() []string {
	c.mu.RLock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	c.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (c *Catalog[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
