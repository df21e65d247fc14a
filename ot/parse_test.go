package ot

import (
	"testing"

	"github.com/npillmayer/fontmeta/internal/fontsynth"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// synthFont builds a minimal font carrying a 'name' table with a family and
// a license entry, Windows platform, US English.
func synthFont(t *testing.T) []byte {
	t.Helper()
	name := fontsynth.BuildNameTable(fontsynth.NameTableSpec{
		Format: 0,
		Entries: []fontsynth.NameEntry{
			{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 1,
				Value: fontsynth.EncodeUTF16BE("Gentium")},
			{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 13,
				Value: fontsynth.EncodeUTF16BE("MIT License")},
		},
	})
	return fontsynth.BuildFont(fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "name", Data: name})
}

func TestParseHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	otf, err := Parse(synthFont(t))
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("otf.header.tag = %x", otf.Header.FontType)
	if otf.Header.FontType != 0x00010000 {
		t.Fatalf("expected font type 0x00010000, is %x", otf.Header.FontType)
	}
	if otf.Header.TableCount != 1 {
		t.Errorf("expected 1 table, have %d", otf.Header.TableCount)
	}
}

func TestParseNameTableAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	otf, err := Parse(synthFont(t))
	if err != nil {
		t.Fatal(err)
	}
	table := otf.Table(T("name"))
	if table == nil {
		t.Fatal("cannot find table 'name'")
	}
	names := table.Self().AsName()
	if names == nil {
		t.Fatal("cannot convert name table")
	}
	if names.NumRecords() != 2 {
		t.Errorf("expected 2 name records, have %d", names.NumRecords())
	}
	byAPI, err := otf.NameTable()
	if err != nil {
		t.Fatal(err)
	}
	if byAPI != names {
		t.Errorf("expected NameTable() and AsName() to return the same table")
	}
}

func TestParseCollectionOfPlainFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	coll, err := ParseCollection(synthFont(t))
	if err != nil {
		t.Fatal(err)
	}
	if coll.IsCollection() {
		t.Error("expected plain font not to be flagged as collection")
	}
	if coll.NumFonts() != 1 {
		t.Fatalf("expected a single-entry collection, have %d entries", coll.NumFonts())
	}
	if _, err := coll.Font(0); err != nil {
		t.Error(err)
	}
}

func TestParseTTC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	// font B has no 'name' table; its slot must still parse
	fontB := fontsynth.BuildFont(fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "cmap", Data: make([]byte, 4)})
	ttc := fontsynth.BuildCollection(synthFont(t), fontB)
	coll, err := ParseCollection(ttc)
	if err != nil {
		t.Fatal(err)
	}
	if !coll.IsCollection() {
		t.Error("expected TTC to be flagged as collection")
	}
	if coll.NumFonts() != 2 {
		t.Fatalf("expected 2 fonts, have %d", coll.NumFonts())
	}
	a, err := coll.Font(0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.NameTable(); err != nil {
		t.Errorf("expected font 0 to have a name table: %v", err)
	}
	b, err := coll.Font(1)
	if err != nil {
		t.Fatal(err)
	}
	_, err = b.NameTable()
	if !IsKind(err, KindMissingTable) {
		t.Errorf("expected missing-table error for font 1, got %v", err)
	}
}

// Embedded fonts of a TTC commonly point at overlapping table regions; each
// directory must resolve on its own against the shared regions.
func TestParseTTCSharedTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	name := fontsynth.BuildNameTable(fontsynth.NameTableSpec{
		Entries: []fontsynth.NameEntry{
			{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 1,
				Value: fontsynth.EncodeUTF16BE("Shared")},
		},
	})
	ttc := fontsynth.BuildSharedCollection(2, fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "name", Data: name})
	coll, err := ParseCollection(ttc)
	if err != nil {
		t.Fatal(err)
	}
	if coll.NumFonts() != 2 {
		t.Fatalf("expected 2 fonts, have %d", coll.NumFonts())
	}
	extents := make([][2]uint32, 2)
	for i := 0; i < 2; i++ {
		otf, err := coll.Font(i)
		if err != nil {
			t.Fatal(err)
		}
		names, err := otf.NameTable()
		if err != nil {
			t.Fatalf("font %d: %v", i, err)
		}
		s, status := names.DecodeRecord(names.Records()[0])
		if status != DecodeOK || s != "Shared" {
			t.Errorf("font %d: expected to decode 'Shared', got %q (%s)", i, s, status)
		}
		off, size := names.Extent()
		extents[i] = [2]uint32{off, size}
	}
	if extents[0] != extents[1] {
		t.Errorf("expected both fonts to view the same table region, got %v and %v",
			extents[0], extents[1])
	}
}

func TestParseRejectsTTC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	ttc := fontsynth.BuildCollection(synthFont(t))
	_, err := Parse(ttc)
	if !IsKind(err, KindUnrecognizedFormat) {
		t.Errorf("expected Parse to reject a TTC, got %v", err)
	}
}

// A header declaring zero tables is structurally valid; the font parses and
// every table lookup simply misses.
func TestParseZeroTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	otf, err := Parse(fontsynth.BuildFont(fontsynth.TrueTypeVersion))
	if err != nil {
		t.Fatal(err)
	}
	if otf.Header.TableCount != 0 {
		t.Errorf("expected 0 tables, have %d", otf.Header.TableCount)
	}
	if tags := otf.TableTags(); len(tags) != 0 {
		t.Errorf("expected no table tags, got %v", tags)
	}
	if _, err := otf.NameTable(); !IsKind(err, KindMissingTable) {
		t.Errorf("expected missing-table error, got %v", err)
	}
}

func TestParseDuplicateTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.ot")
	defer teardown()
	//
	font := fontsynth.BuildFont(fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "cmap", Data: []byte{0, 0, 0, 1}},
		fontsynth.Table{Tag: "cmap", Data: []byte{0, 0, 0, 2}})
	otf, err := Parse(font)
	if err != nil {
		t.Fatal(err)
	}
	if len(otf.Warnings()) == 0 {
		t.Error("expected a warning for the duplicate directory entry")
	}
	table := otf.Table(T("cmap"))
	if table == nil {
		t.Fatal("cannot find table 'cmap'")
	}
	if b := table.Binary(); b[3] != 1 { // first occurrence wins
		t.Errorf("expected first duplicate to win, got payload %v", b)
	}
}
