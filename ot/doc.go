/*
Package ot reads the container structure of OpenType and TrueType fonts.

The sfnt container format (shared by *.ttf, *.otf and *.ttc files) is a
table directory plus a set of tagged tables. Package `ot` parses the
directory, resolves TrueType Collections (files bundling several fonts
which share table data), and decodes the 'name' table, which holds the
human-readable metadata strings of a font: copyright notice, family and
style names, version, license text, and so on.

Package `ot` deliberately does not interpret glyph outlines, metrics or
layout tables. Tables other than 'name' are exposed as generic tables
(offset, length, raw bytes), so no table information is dropped, but
interpretation is the client's business. From this point of view, `ot`
is a low-level package; the property catalog built on top of it is
homed in a sister package.

All derived structures are views into the one font buffer handed to
Parse or ParseCollection. The buffer must not be mutated and must
outlive every Font and table derived from it.

# Status

Font collections are supported; variable-font metadata (fvar et al.)
is not.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ot

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontmeta.ot'
func tracer() tracing.Trace {
	return tracing.Select("fontmeta.ot")
}
