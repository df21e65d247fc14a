package ot

// Font represents the internal structure of a single sfnt font, i.e. one
// entry of a font file. For a plain TTF/OTF file there is exactly one Font;
// a TrueType Collection bundles several Fonts which share the underlying
// byte buffer (see Collection).
//
// We only interpret the tables needed to resolve naming and property
// metadata, i.e. table 'name'; all other tables are kept as generic tables.
type Font struct {
	Header        *FontHeader
	tables        map[Tag]Table
	Names         *NameTable    // typed access to table 'name', nil if absent or unreadable
	nameErr       error         // recorded reason for Names being nil
	parseErrors   []FontError   // errors accumulated during parsing
	parseWarnings []FontWarning // warnings accumulated during parsing
}

// FontHeader is a directory of the top-level tables in a font. If the font file
// contains only one font, the table directory will begin at byte 0 of the file.
// If the font file is a Collection file, the beginning point of the table
// directory for each font is indicated in the TTC header.
//
// Fonts that contain TrueType outlines use the value 0x00010000 for the
// FontType. Fonts containing CFF data (version 1 or 2) use 0x4F54544F
// ('OTTO', when re-interpreted as a Tag). The Apple specification
// additionally allows 'true' and 'typ1'.
type FontHeader struct {
	FontType   uint32
	TableCount uint16
}

// Table returns the font table for a given tag. If a table for a tag cannot
// be found in the font, nil is returned.
//
// Table tag names are case-sensitive, following the names in the OpenType
// specification.
func (otf *Font) Table(tag Tag) Table {
	if t, ok := otf.tables[tag]; ok {
		return t
	}
	return nil
}

// TableTags returns a list of tags, one for each table contained in the font.
func (otf *Font) TableTags() []Tag {
	var tags = make([]Tag, 0, len(otf.tables))
	for tag := range otf.tables {
		tags = append(tags, tag)
	}
	return tags
}

// NameTable returns the parsed 'name' table of the font.
//
// If the font has no 'name' table, a FontError of kind KindMissingTable is
// returned; if the table exists but uses an unsupported format, the error
// recorded during parsing (kind KindUnsupportedNameFormat) is returned.
// Callers are expected to treat both conditions as scoped to this font and
// report it with zero properties rather than aborting a surrounding
// collection scan.
func (otf *Font) NameTable() (*NameTable, error) {
	if otf == nil {
		return nil, FontError{
			Kind:     KindMissingTable,
			Table:    T("name"),
			Section:  "Lookup",
			Issue:    "no font",
			Severity: SeverityMajor,
		}
	}
	if otf.Names != nil {
		return otf.Names, nil
	}
	if otf.nameErr != nil {
		return nil, otf.nameErr
	}
	return nil, FontError{
		Kind:     KindMissingTable,
		Table:    T("name"),
		Section:  "Lookup",
		Issue:    "font has no name table",
		Severity: SeverityMajor,
	}
}

// Errors returns all errors encountered during font parsing.
// These errors represent issues that were found but did not prevent parsing
// from completing. Clients can inspect these errors to determine if the font
// is suitable for their use case.
func (otf *Font) Errors() []FontError {
	if otf.parseErrors == nil {
		return []FontError{}
	}
	return otf.parseErrors
}

// Warnings returns all warnings encountered during font parsing.
// Warnings indicate potential issues that are generally safe to ignore.
func (otf *Font) Warnings() []FontWarning {
	if otf.parseWarnings == nil {
		return []FontWarning{}
	}
	return otf.parseWarnings
}

// HasCriticalErrors returns true if any critical errors were encountered
// during parsing. Fonts with critical errors may be unreliable or unusable.
func (otf *Font) HasCriticalErrors() bool {
	for _, err := range otf.parseErrors {
		if err.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// --- Tag -------------------------------------------------------------------

// Tag is defined by the spec as:
// Array of four uint8s (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline
type Tag uint32

// MakeTag creates a Tag from 4 bytes, e.g.,
//
//	MakeTag([]byte("name"))
//
// If b is shorter or longer, it will be silently extended or cut as appropriate.
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as appropriate
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}

// --- Table -----------------------------------------------------------------

// Table represents one of the various sfnt font tables.
//
// The current implementation interprets table 'name' only; every other table
// is exposed as a generic table, i.e. no table information is dropped, but
// interpretation is up to the client.
type Table interface {
	Extent() (uint32, uint32) // offset and byte size within the font's binary data
	Binary() []byte           // the bytes of this table; should be treated as read-only by clients
	Self() TableSelf          // reference to itself
}

func newTable(tag Tag, b binarySegm, offset, size uint32) *genericTable {
	t := &genericTable{tableBase{
		data:   b,
		name:   tag,
		offset: offset,
		length: size,
	},
	}
	t.self = t
	return t
}

type genericTable struct {
	tableBase
}

// tableBase is a common parent for all kinds of sfnt tables.
type tableBase struct {
	data   binarySegm // a table is a slice of font data
	name   Tag        // 4-byte name as an integer
	offset uint32     // from offset
	length uint32     // to offset + length
	self   any
}

// Extent returns offset and byte size of this table within the font's binary data.
func (tb *tableBase) Extent() (uint32, uint32) {
	return tb.offset, tb.length
}

// Binary returns the bytes of this table. Should be treated as read-only by
// clients, as it is a view into the original data.
func (tb *tableBase) Binary() []byte {
	return tb.data
}

func (tb *tableBase) Self() TableSelf {
	return TableSelf{tableBase: tb}
}

// TableSelf is a reference to a table. Its primary use is for converting
// a generic table to a concrete table flavour, and for reproducing the
// name tag of a table.
type TableSelf struct {
	tableBase *tableBase
}

// NameTag returns the 4-letter name of a table.
func (tself TableSelf) NameTag() Tag {
	return tself.tableBase.name
}

func safeSelf(tself TableSelf) any {
	if tself.tableBase == nil || tself.tableBase.self == nil {
		return TableSelf{}
	}
	return tself.tableBase.self
}

// AsName returns this table as a 'name' table, or nil.
func (tself TableSelf) AsName() *NameTable {
	if n, ok := safeSelf(tself).(*NameTable); ok {
		return n
	}
	return nil
}
