package fontmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/fontmeta/internal/fontsynth"
	"github.com/npillmayer/fontmeta/ot"
)

func synthTestFont(t *testing.T) []byte {
	t.Helper()
	return fontsynth.BuildFont(fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "name", Data: fontsynth.BuildNameTable(fontsynth.NameTableSpec{
			Entries: []fontsynth.NameEntry{
				{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 1,
					Value: fontsynth.EncodeUTF16BE("Gentium")},
				{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 2,
					Value: fontsynth.EncodeUTF16BE("Regular")},
				{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 13,
					Value: fontsynth.EncodeUTF16BE("SIL Open Font License 1.1")},
				{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 14,
					Value: fontsynth.EncodeUTF16BE("https://openfontlicense.org")},
				{Platform: 3, Encoding: 1, Language: 0x0409, NameID: 16,
					Value: fontsynth.EncodeUTF16BE("Gentium Plus")},
			},
		})})
}

func parseSingle(t *testing.T, b []byte) *ot.Font {
	t.Helper()
	coll, err := ot.ParseCollection(b)
	if err != nil {
		t.Fatal(err)
	}
	otf, err := coll.Font(0)
	if err != nil {
		t.Fatal(err)
	}
	return otf
}

func TestFamilyName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta")
	defer teardown()
	//
	otf := parseSingle(t, synthTestFont(t))
	family, subfamily := FamilyName(otf)
	// the typographic family name (ID 16) wins over the legacy one (ID 1)
	if family != "Gentium Plus" {
		t.Errorf("expected family 'Gentium Plus', got %q", family)
	}
	if subfamily != "Regular" {
		t.Errorf("expected subfamily 'Regular', got %q", subfamily)
	}
}

func TestLicenseInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta")
	defer teardown()
	//
	otf := parseSingle(t, synthTestFont(t))
	desc, url := LicenseInfo(otf)
	if desc != "SIL Open Font License 1.1" {
		t.Errorf("expected OFL license description, got %q", desc)
	}
	if url != "https://openfontlicense.org" {
		t.Errorf("expected license URL, got %q", url)
	}
}

func TestLicenseInfoAbsent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta")
	defer teardown()
	//
	font := fontsynth.BuildFont(fontsynth.TrueTypeVersion,
		fontsynth.Table{Tag: "cmap", Data: make([]byte, 4)})
	otf := parseSingle(t, font)
	desc, url := LicenseInfo(otf)
	if desc != "" || url != "" {
		t.Errorf("expected empty license info, got %q / %q", desc, url)
	}
}

func TestLoadFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontmeta")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "synth.ttf")
	if err := os.WriteFile(path, synthTestFont(t), 0644); err != nil {
		t.Fatal(err)
	}
	coll, err := LoadFontFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if coll.NumFonts() != 1 {
		t.Fatalf("expected a single font, have %d", coll.NumFonts())
	}
	results := Properties(coll)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("expected one clean per-font result, got %+v", results)
	}
	if len(results[0].Properties) != 5 {
		t.Errorf("expected 5 properties, have %d", len(results[0].Properties))
	}
}

func TestLoadFontFileMissing(t *testing.T) {
	if _, err := LoadFontFile(filepath.Join(t.TempDir(), "no-such-font.ttf")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
