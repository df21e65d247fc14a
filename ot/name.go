package ot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Table 'name' holds the multilingual metadata strings of a font: copyright
// notices, family and style names, version and license information, etc.
// Strings are stored in a storage area following a list of name records,
// where each record keys its string by platform ID, platform-specific
// encoding ID, language ID and name ID.

const (
	nameHeaderSize    = 6  // format, count, stringOffset
	nameRecordSize    = 12 // platform, encoding, language, name, length, offset
	langTagRecordSize = 4  // length, offset
)

// PlatformID identifies the platform convention a name record follows.
// The platform governs how encoding and language IDs of the record are to
// be interpreted.
type PlatformID uint16

const (
	PlatformUnicode   PlatformID = 0
	PlatformMacintosh PlatformID = 1
	PlatformISO       PlatformID = 2 // deprecated by the spec
	PlatformWindows   PlatformID = 3
	PlatformCustom    PlatformID = 4
)

// String returns the platform name as used in the OpenType specification.
func (p PlatformID) String() string {
	switch p {
	case PlatformUnicode:
		return "Unicode"
	case PlatformMacintosh:
		return "Macintosh"
	case PlatformISO:
		return "ISO"
	case PlatformWindows:
		return "Windows"
	case PlatformCustom:
		return "Custom"
	}
	return fmt.Sprintf("Platform(%d)", uint16(p))
}

// EncodingID identifies a platform-specific character encoding.
type EncodingID uint16

const (
	EncodingMacRoman          EncodingID = 0 // platform 1
	EncodingWindowsSymbol     EncodingID = 0 // platform 3
	EncodingWindowsUnicodeBMP EncodingID = 1 // platform 3
	EncodingUnicodeBMP        EncodingID = 3 // platform 0
	EncodingUnicodeFull       EncodingID = 4 // platform 0
)

// DecodeStatus qualifies the result of decoding a single name record.
// A status other than DecodeOK is not a failure of the table scan; the
// affected record is surfaced with its status and siblings continue.
type DecodeStatus int

const (
	// DecodeOK marks a cleanly decoded string.
	DecodeOK DecodeStatus = iota
	// DecodeUncertain marks a best-effort result: the record used an
	// unsupported or deprecated encoding, or its byte sequence was partially
	// malformed.
	DecodeUncertain
	// DecodeFailed marks an undecodable record (string span outside the
	// storage area, or decoder failure).
	DecodeFailed
)

// String returns a human-readable representation of the decode status.
func (s DecodeStatus) String() string {
	switch s {
	case DecodeOK:
		return "ok"
	case DecodeUncertain:
		return "uncertain"
	case DecodeFailed:
		return "undecodable"
	}
	return "unknown"
}

// NameRecord is one entry of the 'name' table. It is read once from the
// table and immutable thereafter. The string it keys is decoded on demand
// with NameTable.DecodeRecord.
type NameRecord struct {
	Platform PlatformID
	Encoding EncodingID
	Language uint16 // language ID; values ≥ 0x8000 refer to language-tag records
	Name     uint16 // name ID, e.g. 1 = font family, 13 = license description
	strLen   uint16 // string length in the storage area
	strOff   uint16 // string offset, relative to the storage area
}

// langTagRecord locates one language tag string (format 1 tables only).
// Tags are stored as UTF-16BE strings in the common string storage area and
// name BCP-47-like language tags.
type langTagRecord struct {
	length uint16
	offset uint16
}

// NameTable is the parsed 'name' table of a font.
//
// The table keeps non-owning views into the font's byte buffer; no string
// bytes are copied until a record is decoded.
type NameTable struct {
	tableBase
	Format   uint16 // 0 or 1
	records  []NameRecord
	langTags []langTagRecord
	storage  binarySegm // string storage area
}

func newNameTable(tag Tag, b binarySegm, offset, size uint32) *NameTable {
	t := &NameTable{}
	base := tableBase{
		data:   b,
		name:   tag,
		offset: offset,
		length: size,
	}
	t.tableBase = base
	t.self = t
	return t
}

// NumRecords returns the number of name records in the table.
func (t *NameTable) NumRecords() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns a copy of all name records, preserving the table-native
// record order.
func (t *NameTable) Records() []NameRecord {
	if t == nil || len(t.records) == 0 {
		return nil
	}
	recs := make([]NameRecord, len(t.records))
	copy(recs, t.records)
	return recs
}

// NumLangTags returns the number of language-tag records (zero for format 0).
func (t *NameTable) NumLangTags() int {
	if t == nil {
		return 0
	}
	return len(t.langTags)
}

// LanguageTag resolves a language ID ≥ 0x8000 to its language tag string via
// the format-1 language-tag records. The index into the record sequence is
// languageID − 0x8000, bounds-checked; ok is false for format-0 tables,
// out-of-range indices and undecodable tags.
func (t *NameTable) LanguageTag(languageID uint16) (tag string, ok bool) {
	if t == nil || languageID < 0x8000 {
		return "", false
	}
	inx := int(languageID) - 0x8000
	if inx >= len(t.langTags) {
		return "", false
	}
	ltr := t.langTags[inx]
	raw, err := t.storage.view(int(ltr.offset), int(ltr.length))
	if err != nil {
		return "", false
	}
	s, status := decodeUTF16BE(raw)
	if status == DecodeFailed {
		return "", false
	}
	return s, true
}

// DecodeRecord decodes the string a name record refers to, according to the
// record's platform and encoding ID. Decoding never fails hard: a malformed
// record yields an empty or partial string with an explicit status, so a
// table scan can always continue with the record's siblings.
func (t *NameTable) DecodeRecord(rec NameRecord) (string, DecodeStatus) {
	if t == nil {
		return "", DecodeFailed
	}
	if rec.strLen == 0 {
		return "", DecodeOK
	}
	raw, err := t.storage.view(int(rec.strOff), int(rec.strLen))
	if err != nil {
		tracer().Debugf("name record string span [%d:%d] outside storage area",
			rec.strOff, int(rec.strOff)+int(rec.strLen))
		return "", DecodeFailed
	}
	d := nameDecoderFor(rec.Platform, rec.Encoding)
	status := d.status
	if d.utf16 && len(raw)%2 != 0 {
		// Truncated UTF-16: decode the even-length prefix, flag the record.
		raw = raw[:len(raw)-1]
		status = DecodeUncertain
	}
	s, err := d.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", DecodeFailed
	}
	str := string(s)
	if status == DecodeOK && strings.ContainsRune(str, utf8.RuneError) {
		status = DecodeUncertain
	}
	return str, status
}

// --- Per-platform string decoders ------------------------------------------

// nameDecoder couples a character encoding with the baseline status its
// results carry. Strings decoded through a fallback entry are flagged
// DecodeUncertain even when the decoder itself succeeds.
type nameDecoder struct {
	enc    encoding.Encoding
	utf16  bool
	status DecodeStatus
}

type nameDecoderKey struct {
	platform PlatformID
	encoding EncodingID
}

var utf16BEDecoder = nameDecoder{
	enc:   unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	utf16: true,
}

// Decoders for exact (platform, encoding) pairs. Supporting a new platform
// encoding is an additive change to this table.
var nameDecoders = map[nameDecoderKey]nameDecoder{
	{PlatformMacintosh, EncodingMacRoman}: {enc: charmap.Macintosh},
}

// Platform-wide decoders, consulted after the exact-pair table.
// Unicode and Microsoft records are UTF-16BE regardless of encoding ID.
var platformDecoders = map[PlatformID]nameDecoder{
	PlatformUnicode: utf16BEDecoder,
	PlatformWindows: utf16BEDecoder,
}

// Everything else (deprecated ISO platform, unsupported Mac encodings) is
// decoded best-effort as Latin-1 and flagged, rather than failing the record.
var fallbackNameDecoder = nameDecoder{
	enc:    charmap.ISO8859_1,
	status: DecodeUncertain,
}

func nameDecoderFor(p PlatformID, e EncodingID) nameDecoder {
	if d, ok := nameDecoders[nameDecoderKey{p, e}]; ok {
		return d
	}
	if d, ok := platformDecoders[p]; ok {
		return d
	}
	return fallbackNameDecoder
}

func decodeUTF16BE(raw []byte) (string, DecodeStatus) {
	status := DecodeOK
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
		status = DecodeUncertain
	}
	s, err := utf16BEDecoder.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", DecodeFailed
	}
	str := string(s)
	if status == DecodeOK && strings.ContainsRune(str, utf8.RuneError) {
		status = DecodeUncertain
	}
	return str, status
}

// --- Parsing ---------------------------------------------------------------

// parseNameTable parses the 'name' table header (format 0 or 1), the name
// records, and, for format 1, the language-tag records.
func parseNameTable(tag Tag, b binarySegm, offset, size uint32, ec *errorCollector) (*NameTable, error) {
	if len(b) < nameHeaderSize {
		err := FontError{
			Kind:     KindOutOfBounds,
			Table:    tag,
			Section:  "Header",
			Issue:    fmt.Sprintf("name table too small: %d bytes (need %d)", len(b), nameHeaderSize),
			Severity: SeverityMajor,
			Offset:   offset,
		}
		ec.errors = append(ec.errors, err)
		return nil, err
	}
	t := newNameTable(tag, b, offset, size)
	t.Format, _ = b.u16(0)
	if t.Format > 1 {
		err := FontError{
			Kind:     KindUnsupportedNameFormat,
			Table:    tag,
			Section:  "Header",
			Issue:    fmt.Sprintf("name table format %d not supported (must be 0 or 1)", t.Format),
			Severity: SeverityMajor,
			Offset:   offset,
		}
		ec.errors = append(ec.errors, err)
		return nil, err
	}
	count, _ := b.u16(2)
	strOffset, _ := b.u16(4)
	tracer().Debugf("name table format %d has %d records, storage at %d", t.Format, count, strOffset)
	if count > MaxNameRecordCount {
		err := FontError{
			Kind:     KindOutOfBounds,
			Table:    tag,
			Section:  "Header",
			Issue:    fmt.Sprintf("name record count %d exceeds maximum %d", count, MaxNameRecordCount),
			Severity: SeverityMajor,
			Offset:   offset,
		}
		ec.errors = append(ec.errors, err)
		return nil, err
	}
	recsSize, err := checkedMulInt(nameRecordSize, int(count))
	if err == nil {
		_, err = checkedAddInt(nameHeaderSize, recsSize)
	}
	if err != nil || nameHeaderSize+recsSize > len(b) {
		ferr := FontError{
			Kind:     KindOutOfBounds,
			Table:    tag,
			Section:  "NameRecords",
			Issue:    fmt.Sprintf("%d records exceed table size %d", count, len(b)),
			Severity: SeverityMajor,
			Offset:   offset,
		}
		ec.errors = append(ec.errors, ferr)
		return nil, ferr
	}
	if int(strOffset) > len(b) {
		ferr := FontError{
			Kind:     KindOutOfBounds,
			Table:    tag,
			Section:  "Header",
			Issue:    fmt.Sprintf("string storage offset %d exceeds table size %d", strOffset, len(b)),
			Severity: SeverityMajor,
			Offset:   offset,
		}
		ec.errors = append(ec.errors, ferr)
		return nil, ferr
	}
	t.storage = b[strOffset:]
	t.records = make([]NameRecord, 0, count)
	for i := 0; i < int(count); i++ {
		rec := b[nameHeaderSize+i*nameRecordSize:]
		t.records = append(t.records, NameRecord{
			Platform: PlatformID(u16(rec[0:2])),
			Encoding: EncodingID(u16(rec[2:4])),
			Language: u16(rec[4:6]),
			Name:     u16(rec[6:8]),
			strLen:   u16(rec[8:10]),
			strOff:   u16(rec[10:12]),
		})
	}
	if t.Format == 1 {
		parseLangTagRecords(t, b, int(count), offset, ec)
	}
	return t, nil
}

// parseLangTagRecords reads the langTagCount and language-tag records which a
// format-1 table appends after the name record array. A malformed language-tag
// section degrades the table to format-0 behavior (languages ≥ 0x8000 resolve
// to "unspecified") instead of failing the whole table.
func parseLangTagRecords(t *NameTable, b binarySegm, count int, offset uint32, ec *errorCollector) {
	base := nameHeaderSize + count*nameRecordSize
	n, err := b.u16(base)
	if err != nil {
		ec.addWarning(t.name, "format 1 language-tag count unreadable", offset+uint32(base))
		return
	}
	tagsSize, err := checkedMulInt(langTagRecordSize, int(n))
	if err != nil || base+2+tagsSize > len(b) {
		ec.addWarning(t.name,
			fmt.Sprintf("%d language-tag records exceed table size %d", n, len(b)),
			offset+uint32(base))
		return
	}
	tracer().Debugf("name table has %d language-tag records", n)
	t.langTags = make([]langTagRecord, 0, n)
	for i := 0; i < int(n); i++ {
		rec := b[base+2+i*langTagRecordSize:]
		t.langTags = append(t.langTags, langTagRecord{
			length: u16(rec[0:2]),
			offset: u16(rec[2:4]),
		})
	}
}
