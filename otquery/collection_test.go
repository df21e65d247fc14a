package otquery

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/fontmeta/internal/fontsynth"
	"github.com/npillmayer/fontmeta/ot"
)

// A collection member without a 'name' table is reported with zero
// properties; its siblings scan normally.
func TestCollectionWithMissingNameTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.query")
	defer teardown()
	//
	fontA := fontsynth.BuildFont(fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "name", Data: fontsynth.BuildNameTable(fontsynth.NameTableSpec{
			Entries: []fontsynth.NameEntry{
				{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 1,
					Value: fontsynth.EncodeUTF16BE("Alpha")},
				{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 13,
					Value: fontsynth.EncodeUTF16BE("OFL 1.1")},
			},
		})})
	fontB := fontsynth.BuildFont(fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "cmap", Data: make([]byte, 4)})
	coll, err := ot.ParseCollection(fontsynth.BuildCollection(fontA, fontB))
	if err != nil {
		t.Fatal(err)
	}
	results := CollectionProperties(coll)
	if len(results) != 2 {
		t.Fatalf("expected 2 per-font results, have %d", len(results))
	}
	if results[0].Err != nil {
		t.Errorf("expected font 0 to scan cleanly, got %v", results[0].Err)
	}
	if len(results[0].Properties) != 2 {
		t.Errorf("expected 2 properties for font 0, have %d", len(results[0].Properties))
	}
	if results[0].Properties[1].NameID != sfnt.NameIDLicense {
		t.Errorf("expected second property to be the license record")
	}
	if !ot.IsKind(results[1].Err, ot.KindMissingTable) {
		t.Errorf("expected missing-table error for font 1, got %v", results[1].Err)
	}
	if len(results[1].Properties) != 0 {
		t.Errorf("expected zero properties for font 1, have %d", len(results[1].Properties))
	}
}

func TestPropertyLabels(t *testing.T) {
	tests := []struct {
		id       sfnt.NameID
		expected string
	}{
		{sfnt.NameIDCopyright, "Copyright Notice"},
		{sfnt.NameIDLicense, "License Description"},
		{sfnt.NameIDLicenseURL, "License URL"},
		{sfnt.NameID(15), "Unknown(15)"}, // reserved
		{sfnt.NameID(26), "Unknown(26)"},
		{sfnt.NameID(256), "Custom(256)"},
		{sfnt.NameID(4711), "Custom(4711)"},
	}
	for _, tt := range tests {
		if label := PropertyLabel(tt.id); label != tt.expected {
			t.Errorf("PropertyLabel(%d) = %q; want %q", tt.id, label, tt.expected)
		}
	}
}

func TestLanguageNameFromLangTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.query")
	defer teardown()
	//
	font := fontsynth.BuildFont(fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "name", Data: fontsynth.BuildNameTable(fontsynth.NameTableSpec{
			Format: 1,
			Entries: []fontsynth.NameEntry{
				{Platform: 3, Encoding: 1, Language: 0x8000, NameID: 1,
					Value: fontsynth.EncodeUTF16BE("Beispiel")},
			},
			LangTags: []string{"de-DE"},
		})})
	otf, err := ot.Parse(font)
	if err != nil {
		t.Fatal(err)
	}
	props, err := Properties(otf)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 {
		t.Fatalf("expected 1 property, have %d", len(props))
	}
	if props[0].Language != "de-DE" {
		t.Errorf("expected language 'de-DE', got %q", props[0].Language)
	}
}

// A language ID ≥ 0x8000 without a matching language-tag record degrades to
// "unspecified" rather than failing the record.
func TestLanguageNameUnresolvedTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta.query")
	defer teardown()
	//
	font := fontsynth.BuildFont(fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "name", Data: fontsynth.BuildNameTable(fontsynth.NameTableSpec{
			Format: 0, // no language-tag records at all
			Entries: []fontsynth.NameEntry{
				{Platform: 3, Encoding: 1, Language: 0x8000, NameID: 1,
					Value: fontsynth.EncodeUTF16BE("Orphan")},
			},
		})})
	otf, err := ot.Parse(font)
	if err != nil {
		t.Fatal(err)
	}
	props, err := Properties(otf)
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 1 {
		t.Fatalf("expected 1 property, have %d", len(props))
	}
	if props[0].Language != "unspecified" {
		t.Errorf("expected language 'unspecified', got %q", props[0].Language)
	}
	if props[0].Value != "Orphan" {
		t.Errorf("expected the record value to survive, got %q", props[0].Value)
	}
}
