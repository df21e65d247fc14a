/*
Package fontmeta extracts embedded metadata from font files.

TrueType and OpenType fonts (and TrueType Collections bundling several of
them) carry naming records inside their binary tables: copyright notices,
family and style identifiers, version strings, and, most interestingly for
licensing questions, license descriptions and license URLs. This module
parses the sfnt container just far enough to surface those records, without
interpreting glyph outlines, metrics or layout data.

The heavy lifting is done by two sub-packages:

▪︎ `ot` parses the sfnt table directory, resolves TrueType Collections and
decodes table 'name', including its platform/encoding/language specific
string encodings.

▪︎ `otquery` joins the decoded records with a catalog of well-known name-ID
labels and language names, producing ordered per-font property lists.

The root package offers convenience entry points for the common cases:
loading a file, getting family and subfamily names, and getting license
information.

# Status

Variable-font metadata (fvar instance names) is not resolved yet.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontmeta

import (
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/fontmeta/internal/fontload"
	"github.com/npillmayer/fontmeta/ot"
)

// tracer writes to trace with key 'fontmeta'
func tracer() tracing.Trace {
	return tracing.Select("fontmeta")
}

// LoadFontFile reads a font file (TTF, OTF or TTC) from disk and parses its
// metadata. For a plain font file the returned collection has a single
// entry. Whether the file is a collection is decided by content, not by the
// file extension; a mismatch between the two is traced but not an error.
func LoadFontFile(path string) (*ot.Collection, error) {
	f, err := fontload.LoadFontFile(path)
	if err != nil {
		return nil, err
	}
	if f.Fontname != "" {
		tracer().Debugf("loaded font file %s (%s)", path, f.Fontname)
	}
	coll, err := ot.ParseCollection(f.Binary)
	if err != nil {
		return nil, err
	}
	if isTTC := strings.EqualFold(filepath.Ext(path), ".ttc"); isTTC != coll.IsCollection() {
		tracer().Infof("file extension of %s does not match its content", path)
	}
	return coll, nil
}
