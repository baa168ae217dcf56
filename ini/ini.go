// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

// DefaultSection is the name of the implicit section that collects key-value
// pairs appearing before any section header.
const DefaultSection = "default"

// A KeyValue is a single configuration entry. Both halves are plain text.
type KeyValue struct {
	Key   string
	Value string
}

// A Config is an ordered collection of sections. The zero value is an empty
// configuration ready to use. Read accessors may be called on a nil *Config.
//
// Configs are not safe for concurrent mutation; callers are responsible for
// sequencing writes.
type Config struct {
	sections []section
}

type section struct {
	name   string
	values []KeyValue
}

// AddSection appends a new section with the given name and no values. It does
// not check for an existing section of the same name; duplicates are
// permitted and kept as separate entries.
func (c *Config) AddSection(name string) {
	c.sections = append(c.sections, section{name: name})
}

// AddValue appends the pair to the values of every section whose name matches.
// If no section has the given name, a new section holding the single pair is
// appended to the end of the configuration.
//
// Note the asymmetry with Lookup and Section, which consult only the first
// section with a matching name.
func (c *Config) AddValue(sectionName, key, value string) {
	found := false
	for i := range c.sections {
		if c.sections[i].name == sectionName {
			c.sections[i].values = append(c.sections[i].values, KeyValue{Key: key, Value: value})
			found = true
		}
	}
	if !found {
		c.sections = append(c.sections, section{
			name:   sectionName,
			values: []KeyValue{{Key: key, Value: value}},
		})
	}
}

// Lookup returns the value of the first pair with the given key inside the
// first section with the given name. The second return value reports whether
// such a pair exists. Later sections sharing the name are not consulted.
func (c *Config) Lookup(sectionName, key string) (_ string, ok bool) {
	if c == nil {
		return "", false
	}
	for i := range c.sections {
		if c.sections[i].name != sectionName {
			continue
		}
		for _, kv := range c.sections[i].values {
			if kv.Key == key {
				return kv.Value, true
			}
		}
		break
	}
	return "", false
}

// Get is like Lookup but returns the empty string when the section or key is
// absent.
func (c *Config) Get(sectionName, key string) string {
	v, _ := c.Lookup(sectionName, key)
	return v
}

// Section returns a copy of the pairs in the first section with the given
// name, in insertion order. The second return value reports whether the
// section exists; an existing section with no values yields an empty slice
// and true.
func (c *Config) Section(name string) ([]KeyValue, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.sections {
		if c.sections[i].name == name {
			values := make([]KeyValue, len(c.sections[i].values))
			copy(values, c.sections[i].values)
			return values, true
		}
	}
	return nil, false
}

// Sections returns the section names in order. Repeated names appear once per
// section.
func (c *Config) Sections() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.sections))
	for _, s := range c.sections {
		names = append(names, s.name)
	}
	return names
}

// MarshalText serializes the configuration. Each section renders as its
// bracketed header, one "key = value" line per pair, and a trailing blank
// line. Sections without values still render their header. The error is
// always nil; it exists to satisfy encoding.TextMarshaler.
func (c *Config) MarshalText() ([]byte, error) {
	if c == nil {
		return nil, nil
	}
	var buf []byte
	for _, s := range c.sections {
		buf = append(buf, '[')
		buf = append(buf, s.name...)
		buf = append(buf, "]\n"...)
		for _, kv := range s.values {
			buf = append(buf, kv.Key...)
			buf = append(buf, " = "...)
			buf = append(buf, kv.Value...)
			buf = append(buf, '\n')
		}
		buf = append(buf, '\n')
	}
	return buf, nil
}

// String returns the configuration in the same form as MarshalText.
func (c *Config) String() string {
	text, _ := c.MarshalText()
	return string(text)
}

// UnmarshalText parses INI data, replacing any sections in c.
func (c *Config) UnmarshalText(data []byte) error {
	parsed, err := ParseString(string(data))
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}
