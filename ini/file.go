// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// ReadFile reads the file at path and parses it. I/O failures are reported as
// wrapped os errors, distinct from *ParseError.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ini file: %w", err)
	}
	c, err := ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("read ini file: %s: %w", path, err)
	}
	return c, nil
}

// WriteFile serializes the configuration and replaces the file at path
// atomically, overwriting any previous content.
func (c *Config) WriteFile(path string) error {
	text, err := c.MarshalText()
	if err != nil {
		return fmt.Errorf("write ini file: %s: %w", path, err)
	}
	if err := renameio.WriteFile(path, text, 0o644); err != nil {
		return fmt.Errorf("write ini file: %w", err)
	}
	return nil
}

// A Set is a list of configurations to consult in descending order of
// precedence.
type Set []*Config

// Load parses the files at the given paths into a Set. If the returned error
// is nil, the set's length equals the number of paths. Load stops on the
// first error, but a missing file is not an error: its element is left nil
// and lookups skip it.
func Load(paths ...string) (Set, error) {
	set := make(Set, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if os.IsNotExist(err) {
			set = append(set, nil)
			continue
		}
		if err != nil {
			return set, fmt.Errorf("load ini files: %w", err)
		}
		c, err := ParseString(string(data))
		if err != nil {
			return set, fmt.Errorf("load ini files: %s: %w", p, err)
		}
		set = append(set, c)
	}
	return set, nil
}

// Lookup returns the value for the given section and key from the first
// configuration in the set that has it.
func (set Set) Lookup(sectionName, key string) (string, bool) {
	for _, c := range set {
		if v, ok := c.Lookup(sectionName, key); ok {
			return v, true
		}
	}
	return "", false
}

// Get is like Lookup but returns the empty string when no configuration in
// the set has the section and key.
func (set Set) Get(sectionName, key string) string {
	v, _ := set.Lookup(sectionName, key)
	return v
}

// Sections returns the section names appearing in any configuration in the
// set, in order of first appearance.
func (set Set) Sections() []string {
	var names []string
	seen := make(map[string]bool)
	for _, c := range set {
		for _, name := range c.Sections() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
