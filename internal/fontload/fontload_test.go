package fontload

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromBytes(t *testing.T) {
	// not a parseable sfnt font for x/image, but loading is best-effort
	f, err := FromBytes([]byte{0x00, 0x01, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Binary) != 12 {
		t.Errorf("expected the raw bytes to be kept, have %d", len(f.Binary))
	}
	if f.SFNT != nil {
		t.Error("expected no SFNT cross-check view for a degenerate font")
	}
}

func TestLoadFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.ttf")
	if err := os.WriteFile(path, []byte{0x00, 0x01, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}, 0644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFontFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Binary) != 12 {
		t.Errorf("expected 12 bytes, have %d", len(f.Binary))
	}
	if _, err := LoadFontFile(filepath.Join(t.TempDir(), "absent.ttf")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestCollectionView(t *testing.T) {
	if _, err := CollectionView([]byte("not a font at all")); err == nil {
		t.Error("expected x/image to reject garbage input")
	}
}
