package ot

import (
	"fmt"
	"math"
)

// Code comments often cite passages from the OpenType specification
// version 1.9; see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// Recognized sfnt version tags. 0x00010000 and 'OTTO' are the OpenType
// version tags; 'true' and 'typ1' are permitted by the Apple TrueType
// specification and occur in older Mac fonts.
const (
	fontTypeTrueType uint32 = 0x00010000
	fontTypeOTTO     uint32 = 0x4f54544f // 'OTTO', CFF outlines
	fontTypeApple    uint32 = 0x74727565 // 'true'
	fontTypeTyp1     uint32 = 0x74797031 // 'typ1'
	ttcHeaderTag     uint32 = 0x74746366 // 'ttcf'
)

// Maximum reasonable counts for sfnt structures. These limits prevent
// malicious fonts from claiming unreasonably large counts that could lead
// to excessive memory allocation or out-of-bounds reads.
const (
	MaxTableCount      = 512  // tables per font: real fonts have < 30
	MaxCollectionFonts = 1024 // fonts per TTC: real collections have < 100
	MaxNameRecordCount = 8192 // name records: real fonts have < 1000
)

const (
	offsetTableSize  = 12 // sfnt header: version tag + 4 uint16 fields
	tableRecordSize  = 16 // directory entry: tag, checksum, offset, length
	ttcHeaderMinSize = 12 // ttcf tag, major/minor version, numFonts
)

// ---------------------------------------------------------------------------

// Checked arithmetic operations to prevent integer overflow

// checkedMulInt checks for overflow in multiplication of two non-negative integers.
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}

// checkedAddInt checks for overflow in addition of two non-negative integers.
func checkedAddInt(a, b int) (int, error) {
	if b > 0 && a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// checkedAddUint32 checks for overflow in addition of two uint32 values.
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// ---------------------------------------------------------------------------

// Collection is the result of parsing a font file which may contain one or
// several fonts. A plain TTF/OTF yields a single-entry Collection; a TrueType
// Collection ('ttcf') yields one entry per embedded font.
//
// Embedded fonts are parsed independently: a failure in one embedded font is
// recorded in FontErrors at the font's index (with a nil entry in Fonts) and
// does not abort parsing of its siblings.
//
// A Collection needs ongoing access to the font's byte-data after the parse
// function returns. The data is assumed immutable while the Collection
// remains in use, and is shared between embedded fonts (TTC fonts commonly
// reference overlapping table regions).
type Collection struct {
	Fonts        []*Font // parsed fonts; an entry is nil if that font failed to parse
	FontErrors   []error // per-font parse failure, index-aligned with Fonts; nil if ok
	Major, Minor uint16  // TTC header version; zero for a plain sfnt file
	isCollection bool
}

// IsCollection reports whether the input carried a TTC header (as opposed to
// being a plain single-font sfnt file).
func (c *Collection) IsCollection() bool {
	return c.isCollection
}

// NumFonts returns the number of font slots in the collection, including
// fonts which failed to parse.
func (c *Collection) NumFonts() int {
	return len(c.Fonts)
}

// Font returns embedded font number i, or the error recorded for it during
// parsing.
func (c *Collection) Font(i int) (*Font, error) {
	if i < 0 || i >= len(c.Fonts) {
		return nil, fmt.Errorf("collection has %d fonts, requested font %d", len(c.Fonts), i)
	}
	if c.FontErrors[i] != nil {
		return nil, c.FontErrors[i]
	}
	return c.Fonts[i], nil
}

// ParseCollection parses a font file which is either a plain sfnt font or a
// TrueType Collection. It detects the TTC signature from the first 4 bytes;
// if absent, the whole buffer is treated as one plain sfnt font and a
// single-entry Collection is returned.
//
// Errors making the entire input unparseable (an unrecognized outer version
// tag, an inconsistent TTC header) are returned as whole-file failures of
// kind KindUnrecognizedFormat resp. KindCorruptCollection. Failures scoped
// to one embedded font are recorded per-font, see Collection.
func ParseCollection(font []byte) (*Collection, error) {
	src := binarySegm(font)
	tag, err := src.u32(0)
	if err != nil {
		return nil, FontError{
			Kind:     KindUnrecognizedFormat,
			Section:  "Header",
			Issue:    fmt.Sprintf("font data too small: %d bytes", len(font)),
			Severity: SeverityCritical,
		}
	}
	if tag != ttcHeaderTag {
		otf, err := Parse(font)
		if err != nil {
			return nil, err
		}
		return &Collection{Fonts: []*Font{otf}, FontErrors: []error{nil}}, nil
	}
	return parseTTCHeader(src)
}

// parseTTCHeader reads the TTC header: major/minor version (uint16 each),
// numFonts (uint32), then numFonts absolute uint32 table-directory offsets.
func parseTTCHeader(src binarySegm) (*Collection, error) {
	corrupt := func(issue string, offset uint32) error {
		return FontError{
			Kind:     KindCorruptCollection,
			Section:  "TTCHeader",
			Issue:    issue,
			Severity: SeverityCritical,
			Offset:   offset,
		}
	}
	if len(src) < ttcHeaderMinSize {
		return nil, corrupt(fmt.Sprintf("TTC header incomplete: %d bytes", len(src)), 0)
	}
	c := &Collection{isCollection: true}
	c.Major, _ = src.u16(4)
	c.Minor, _ = src.u16(6)
	if c.Major != 1 && c.Major != 2 {
		return nil, corrupt(fmt.Sprintf("unsupported TTC version %d.%d", c.Major, c.Minor), 4)
	}
	n, _ := src.u32(8)
	if n == 0 {
		return nil, corrupt("collection declares zero fonts", 8)
	}
	if n > MaxCollectionFonts {
		return nil, corrupt(fmt.Sprintf("collection declares %d fonts, maximum is %d",
			n, MaxCollectionFonts), 8)
	}
	numFonts := int(n)
	tracer().Debugf("TTC %d.%d with %d fonts", c.Major, c.Minor, numFonts)
	offsets := make([]uint32, numFonts)
	for i := 0; i < numFonts; i++ {
		off, err := src.u32(ttcHeaderMinSize + i*4)
		if err != nil {
			return nil, corrupt(fmt.Sprintf("offset table truncated at font %d", i),
				uint32(ttcHeaderMinSize+i*4))
		}
		if off >= uint32(len(src)) {
			return nil, corrupt(fmt.Sprintf("font %d offset %d exceeds file size %d",
				i, off, len(src)), uint32(ttcHeaderMinSize+i*4))
		}
		offsets[i] = off
	}
	// Every embedded font is parsed independently; a failure in one does not
	// abort parsing of siblings.
	c.Fonts = make([]*Font, numFonts)
	c.FontErrors = make([]error, numFonts)
	for i, off := range offsets {
		otf, err := parseFontAt(src, off)
		if err != nil {
			tracer().Infof("TTC font %d unparseable: %v", i, err)
			c.FontErrors[i] = err
			continue
		}
		c.Fonts[i] = otf
	}
	return c, nil
}

// Parse parses a single sfnt font from a byte slice. For files which may be
// TrueType Collections, use ParseCollection instead; Parse rejects a TTC
// header.
//
// An ot.Font needs ongoing access to the font's byte-data after the Parse
// function returns. Its elements are assumed immutable while the ot.Font
// remains in use.
func Parse(font []byte) (*Font, error) {
	src := binarySegm(font)
	if tag, err := src.u32(0); err == nil && tag == ttcHeaderTag {
		return nil, FontError{
			Kind:     KindUnrecognizedFormat,
			Section:  "Header",
			Issue:    "font is a TrueType Collection, use ParseCollection",
			Severity: SeverityCritical,
		}
	}
	return parseFontAt(src, 0)
}

// parseFontAt parses the table directory of one sfnt font starting at the
// given base offset. For a plain font base is 0; for TTC entries it is an
// offset from the TTC header. Table offsets within the directory are
// absolute, i.e. relative to the start of the file, so src is always the
// whole file buffer.
func parseFontAt(src binarySegm, base uint32) (*Font, error) {
	// The offset table ("header") is 12 bytes, followed immediately by the
	// table record entries, 16 bytes each.
	ec := &errorCollector{}
	h := FontHeader{}
	var err error
	if h.FontType, err = src.u32(int(base)); err != nil {
		return nil, FontError{
			Kind:     KindOutOfBounds,
			Section:  "Header",
			Issue:    "font header exceeds buffer",
			Severity: SeverityCritical,
			Offset:   base,
		}
	}
	if h.TableCount, err = src.u16(int(base) + 4); err != nil {
		return nil, FontError{
			Kind:     KindOutOfBounds,
			Section:  "Header",
			Issue:    "font header exceeds buffer",
			Severity: SeverityCritical,
			Offset:   base,
		}
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())
	if !(h.FontType == fontTypeTrueType ||
		h.FontType == fontTypeOTTO ||
		h.FontType == fontTypeApple ||
		h.FontType == fontTypeTyp1) {
		return nil, FontError{
			Kind:     KindUnrecognizedFormat,
			Section:  "Header",
			Issue:    fmt.Sprintf("sfnt version tag not recognized: %#x", h.FontType),
			Severity: SeverityCritical,
			Offset:   base,
		}
	}
	if h.TableCount > MaxTableCount {
		return nil, FontError{
			Kind:     KindOutOfBounds,
			Section:  "Header",
			Issue:    fmt.Sprintf("font declares %d tables, maximum is %d", h.TableCount, MaxTableCount),
			Severity: SeverityCritical,
			Offset:   base,
		}
	}
	otf := &Font{Header: &h, tables: make(map[Tag]Table)}
	if h.TableCount == 0 { // legal, if pointless; table lookups will miss
		otf.parseErrors = ec.errors
		otf.parseWarnings = ec.warnings
		return otf, nil
	}

	tableRecordsSize, err := checkedMulInt(tableRecordSize, int(h.TableCount))
	if err != nil {
		return nil, FontError{
			Kind:     KindOutOfBounds,
			Section:  "TableRecords",
			Issue:    fmt.Sprintf("table count too large: %v", err),
			Severity: SeverityCritical,
			Offset:   base,
		}
	}
	buf, err := src.view(int(base)+offsetTableSize, tableRecordsSize)
	if err != nil {
		return nil, FontError{
			Kind:     KindOutOfBounds,
			Section:  "TableRecords",
			Issue:    "table record entries exceed buffer",
			Severity: SeverityCritical,
			Offset:   base + offsetTableSize,
		}
	}
	for i := 0; i < int(h.TableCount); i++ {
		b := buf[i*tableRecordSize : (i+1)*tableRecordSize]
		tag := MakeTag(b)
		off, size := u32(b[8:12]), u32(b[12:16])
		// The sfnt spec disallows duplicate tags; treat a duplicate as a
		// warning-level anomaly and keep the first occurrence.
		if _, ok := otf.tables[tag]; ok {
			tracer().Infof("duplicate table (%s) in directory, keeping first", tag)
			ec.addWarning(tag, "duplicate directory entry, first occurrence wins", off)
			continue
		}
		if off&3 != 0 { // "all tables must begin on four byte boundaries"
			ec.addWarning(tag, fmt.Sprintf("table offset %d not 4-byte aligned", off), off)
		}
		tableEnd, err := checkedAddUint32(off, size)
		if err != nil {
			return nil, FontError{
				Kind:     KindOutOfBounds,
				Table:    tag,
				Section:  "TableRecords",
				Issue:    fmt.Sprintf("size calculation overflow: %v", err),
				Severity: SeverityCritical,
				Offset:   off,
			}
		}
		if off > uint32(len(src)) || tableEnd > uint32(len(src)) {
			return nil, FontError{
				Kind:     KindOutOfBounds,
				Table:    tag,
				Section:  "TableRecords",
				Issue:    fmt.Sprintf("bounds [%d:%d] exceed font size %d", off, tableEnd, len(src)),
				Severity: SeverityCritical,
				Offset:   off,
			}
		}
		otf.tables[tag] = parseTable(otf, tag, src[off:tableEnd], off, size, ec)
	}
	otf.parseErrors = ec.errors
	otf.parseWarnings = ec.warnings
	return otf, nil
}

// parseTable dispatches on the table tag. Only table 'name' is interpreted;
// every other table is kept as a generic table.
func parseTable(otf *Font, t Tag, b binarySegm, offset, size uint32, ec *errorCollector) Table {
	if t == T("name") {
		names, err := parseNameTable(t, b, offset, size, ec)
		if err != nil {
			// Scoped to this font: the font is reported with zero properties,
			// a surrounding collection scan continues.
			tracer().Infof("name table unreadable: %v", err)
			otf.nameErr = err
			return newTable(t, b, offset, size)
		}
		otf.Names = names
		return names
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", t)
	return newTable(t, b, offset, size)
}
