/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package definition

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/suparena/dataenum"
	"github.com/suparena/dataenum/registry"
)

// Decode reads every YAML document from r.
func Decode(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []Document
	for {
		var d Document
		err := dec.Decode(&d)
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode definition #%d: %w", len(docs)+1, err)
		}
		docs = append(docs, d)
	}
}

// Set is a catalog of enumeration types loaded from definitions.
type Set struct {
	types  *registry.Catalog[*dataenum.Type]
	logger *slog.Logger
}

// NewSet creates an empty set. Types built by the set log through logger.
func NewSet(logger *slog.Logger) *Set {
	if logger == nil {
		logger = slog.Default()
	}
	return &Set{types: registry.NewCatalog[*dataenum.Type](), logger: logger}
}

// Add builds every document and adds the resulting types. Type names must
// be unique within the set.
func (s *Set) Add(docs ...Document) error {
	for i := range docs {
		t, err := docs[i].Build(dataenum.WithLogger(s.logger))
		if err != nil {
			return err
		}
		if err := s.types.Define(t.Name(), t); err != nil {
			return err
		}
		s.logger.Info("enumeration loaded", "type", t.Name(), "members", t.Len())
	}
	return nil
}

// Read decodes and adds every document in r.
func (s *Set) Read(r io.Reader) error {
	docs, err := Decode(r)
	if err != nil {
		return err
	}
	return s.Add(docs...)
}

// LoadFile reads one definition file.
func (s *Set) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open definitions: %w", err)
	}
	defer f.Close()

	if err := s.Read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadPaths loads files and directories. Directories contribute their
// *.yaml and *.yml files in lexical order.
func (s *Set) LoadPaths(paths ...string) error {
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("stat definitions: %w", err)
		}
		if !info.IsDir() {
			if err := s.LoadFile(p); err != nil {
				return err
			}
			continue
		}

		var files []string
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(p, pattern))
			if err != nil {
				return err
			}
			files = append(files, matches...)
		}
		sort.Strings(files)
		for _, f := range files {
			if err := s.LoadFile(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Type returns the loaded type with the given name.
func (s *Set) Type(name string) (*dataenum.Type, bool) {
	return s.types.Get(name)
}

// Names returns the loaded type names in lexical order.
func (s *Set) Names() []string {
	return s.types.Names()
}

// Len returns the number of loaded types.
func (s *Set) Len() int {
	return s.types.Len()
}
