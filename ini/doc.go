// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and serializer for INI-style configuration
files.

The model is deliberately simple: a configuration is an ordered list of
sections, and a section is a named, ordered list of key-value pairs. All
values are plain strings. Insertion order is preserved everywhere, and
neither section names nor keys are required to be unique.

Syntax

A configuration file consists of section headers, key-value pairs, comments,
and blank lines. A section header is the section name written in square
brackets on its own line:

	[section]

A key-value pair is a key and value separated by an equals sign ('='):

	key = value

A semicolon (';') or hash ('#') starts a comment that runs to the end of the
line, wherever it appears. Comments are stripped during parsing and are not
preserved. Whitespace around section names, keys, and values is ignored.
There is no quoting or escaping mechanism, so keys and values cannot contain
'=', ';', or '#'.

Key-value pairs that appear before any section header are collected into an
implicit section named "default".

Repeated names

Multiple pairs in a section may share a key, and multiple sections may share
a name. Lookups return the first match; see AddValue for how writes treat
repeated section names.
*/
package ini
