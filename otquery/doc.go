/*
Package otquery builds readable font properties from parsed sfnt metadata.

It joins the name records decoded by package `ot` with a catalog of
well-known name-ID labels and platform-specific language names, producing
per-font ordered property lists: copyright notice, family and style names,
version, trademark, license text and URL, and so on. A typical client is a
reporting tool which prints these properties, e.g. to check the license a
font file is distributed under.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontmeta.query'
func tracer() tracing.Trace {
	return tracing.Select("fontmeta.query")
}
