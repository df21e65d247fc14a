// Package fontsynth builds small synthetic sfnt binaries for tests.
// The fonts it produces carry only the tables a test asks for, most
// prominently table 'name', and are not usable for rendering.
package fontsynth

import (
	"encoding/binary"
	"unicode/utf16"
)

// NameEntry describes one record of a synthetic 'name' table.
type NameEntry struct {
	Platform uint16
	Encoding uint16
	Language uint16
	NameID   uint16
	Value    []byte // pre-encoded string data, see EncodeUTF16BE
}

// NameTableSpec describes a complete 'name' table.
type NameTableSpec struct {
	Format   uint16
	Entries  []NameEntry
	LangTags []string // format 1 only, tag i answers language ID 0x8000+i
}

// EncodeUTF16BE encodes a string as UTF-16 big endian, the encoding used by
// the Unicode and Windows platforms.
func EncodeUTF16BE(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, len(units)*2)
	for i, u := range units {
		binary.BigEndian.PutUint16(buf[i*2:], u)
	}
	return buf
}

// EncodeLatin1 encodes a string byte per rune, suitable for Macintosh or
// unknown-platform records. Runes above 0xFF are silently truncated.
func EncodeLatin1(s string) []byte {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		buf = append(buf, byte(r))
	}
	return buf
}

// BuildNameTable serializes a NameTableSpec into 'name' table binary.
func BuildNameTable(spec NameTableSpec) []byte {
	// string storage is laid out in entry order, language tags appended
	storage := make([]byte, 0, 64)
	type recOffsets struct{ off, length uint16 }
	recs := make([]recOffsets, len(spec.Entries))
	for i, e := range spec.Entries {
		recs[i] = recOffsets{off: uint16(len(storage)), length: uint16(len(e.Value))}
		storage = append(storage, e.Value...)
	}
	tagRecs := make([]recOffsets, len(spec.LangTags))
	for i, t := range spec.LangTags {
		enc := EncodeUTF16BE(t)
		tagRecs[i] = recOffsets{off: uint16(len(storage)), length: uint16(len(enc))}
		storage = append(storage, enc...)
	}

	headerSize := 6 + len(spec.Entries)*12
	if spec.Format == 1 {
		headerSize += 2 + len(spec.LangTags)*4
	}
	buf := make([]byte, 0, headerSize+len(storage))
	buf = appendU16(buf, spec.Format)
	buf = appendU16(buf, uint16(len(spec.Entries)))
	buf = appendU16(buf, uint16(headerSize)) // storage follows the records
	for i, e := range spec.Entries {
		buf = appendU16(buf, e.Platform)
		buf = appendU16(buf, e.Encoding)
		buf = appendU16(buf, e.Language)
		buf = appendU16(buf, e.NameID)
		buf = appendU16(buf, recs[i].length)
		buf = appendU16(buf, recs[i].off)
	}
	if spec.Format == 1 {
		buf = appendU16(buf, uint16(len(spec.LangTags)))
		for _, r := range tagRecs {
			buf = appendU16(buf, r.length)
			buf = appendU16(buf, r.off)
		}
	}
	return append(buf, storage...)
}

// Table pairs a tag with raw table binary.
type Table struct {
	Tag  string // 4 characters
	Data []byte
}

// BuildFont serializes a single sfnt font with the given tables. The version
// tag is typically "\x00\x01\x00\x00" for TrueType flavor or "OTTO".
func BuildFont(version uint32, tables ...Table) []byte {
	n := len(tables)
	buf := make([]byte, 0, 12+n*16)
	buf = appendU32(buf, version)
	buf = appendU16(buf, uint16(n))
	// searchRange group, unchecked by readers but filled in for realism
	sr, es := searchParams(n)
	buf = appendU16(buf, sr)
	buf = appendU16(buf, es)
	buf = appendU16(buf, uint16(n)*16-sr)
	offset := 12 + n*16
	bodies := make([]byte, 0, 64)
	for _, t := range tables {
		buf = appendU32(buf, tagValue(t.Tag))
		buf = appendU32(buf, 0) // checksum, not verified
		buf = appendU32(buf, uint32(offset))
		buf = appendU32(buf, uint32(len(t.Data)))
		bodies = append(bodies, t.Data...)
		offset += len(t.Data)
		for offset%4 != 0 { // long-align the next table
			bodies = append(bodies, 0)
			offset++
		}
	}
	return append(buf, bodies...)
}

// BuildCollection serializes a TTC wrapping the given fonts. The member
// fonts do not share tables, each is embedded with its own directory. Table
// offsets inside the embedded directories are rebased to absolute file
// offsets, as the TTC format requires.
func BuildCollection(fonts ...[]byte) []byte {
	n := len(fonts)
	headerSize := 12 + n*4
	buf := make([]byte, 0, headerSize)
	buf = appendU32(buf, tagValue("ttcf"))
	buf = appendU16(buf, 1) // major version
	buf = appendU16(buf, 0)
	buf = appendU32(buf, uint32(n))
	offset := headerSize
	for _, f := range fonts {
		buf = appendU32(buf, uint32(offset))
		offset += len(f)
	}
	for i, f := range fonts {
		base := buf[12+i*4:]
		fontBase := binary.BigEndian.Uint32(base[:4])
		embedded := make([]byte, len(f))
		copy(embedded, f)
		tableCount := int(binary.BigEndian.Uint16(embedded[4:6]))
		for j := 0; j < tableCount; j++ {
			offField := embedded[12+j*16+8:]
			rebased := binary.BigEndian.Uint32(offField[:4]) + fontBase
			binary.BigEndian.PutUint32(offField[:4], rebased)
		}
		buf = append(buf, embedded...)
	}
	return buf
}

// BuildSharedCollection serializes a TTC whose member fonts all share one
// set of tables: every member gets its own table directory, but all
// directories point at the same table regions, the way real collections
// deduplicate common tables.
func BuildSharedCollection(numFonts int, version uint32, tables ...Table) []byte {
	headerSize := 12 + numFonts*4
	dirSize := 12 + len(tables)*16
	tablesBase := headerSize + numFonts*dirSize
	for tablesBase%4 != 0 {
		tablesBase++
	}

	offsets := make([]uint32, len(tables))
	bodies := make([]byte, 0, 64)
	offset := tablesBase
	for i, t := range tables {
		offsets[i] = uint32(offset)
		bodies = append(bodies, t.Data...)
		offset += len(t.Data)
		for offset%4 != 0 {
			bodies = append(bodies, 0)
			offset++
		}
	}

	buf := make([]byte, 0, tablesBase+len(bodies))
	buf = appendU32(buf, tagValue("ttcf"))
	buf = appendU16(buf, 1)
	buf = appendU16(buf, 0)
	buf = appendU32(buf, uint32(numFonts))
	for i := 0; i < numFonts; i++ {
		buf = appendU32(buf, uint32(headerSize+i*dirSize))
	}
	for i := 0; i < numFonts; i++ {
		buf = appendU32(buf, version)
		buf = appendU16(buf, uint16(len(tables)))
		sr, es := searchParams(len(tables))
		buf = appendU16(buf, sr)
		buf = appendU16(buf, es)
		buf = appendU16(buf, uint16(len(tables))*16-sr)
		for j, t := range tables {
			buf = appendU32(buf, tagValue(t.Tag))
			buf = appendU32(buf, 0)
			buf = appendU32(buf, offsets[j])
			buf = appendU32(buf, uint32(len(t.Data)))
		}
	}
	for len(buf) < tablesBase {
		buf = append(buf, 0)
	}
	return append(buf, bodies...)
}

// TrueTypeVersion is the sfnt version tag of TrueType-flavored fonts.
const TrueTypeVersion uint32 = 0x00010000

func tagValue(tag string) uint32 {
	var v uint32
	for i := 0; i < 4; i++ {
		v <<= 8
		if i < len(tag) {
			v |= uint32(tag[i])
		} else {
			v |= ' '
		}
	}
	return v
}

func searchParams(n int) (searchRange uint16, entrySelector uint16) {
	if n == 0 {
		return 0, 0
	}
	searchRange = 16
	for searchRange*2 <= uint16(n)*16 {
		searchRange *= 2
		entrySelector++
	}
	return searchRange, entrySelector
}

func appendU16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
