// Package fontload reads font files from disk for the metadata core, which
// itself never touches the file system. It additionally keeps a parsed
// golang.org/x/image/font/sfnt view as a cross-check where possible.
package fontload

import (
	"os"

	"golang.org/x/image/font/sfnt"
)

// FontFile is a font file read into memory, with original bytes and an
// optional SFNT cross-check view.
type FontFile struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font // nil for collections and fonts x/image cannot parse
}

// LoadFontFile reads a font file (TTF, OTF or TTC) into memory.
func LoadFontFile(fontfile string) (*FontFile, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return FromBytes(bytez)
}

// FromBytes wraps raw font bytes. For single fonts it attaches an x/image
// SFNT view and extracts the full font name from it; a failure to do so is
// not an error, as the metadata core does its own parsing.
func FromBytes(fbytes []byte) (*FontFile, error) {
	f := &FontFile{Binary: fbytes}
	if sf, err := sfnt.Parse(fbytes); err == nil {
		f.SFNT = sf
		f.Fontname, _ = sf.Name(nil, sfnt.NameIDFull)
	}
	return f, nil
}

// CollectionView parses the bytes as a font collection with
// golang.org/x/image/font/sfnt, for cross-checking collection parses.
func CollectionView(fbytes []byte) (*sfnt.Collection, error) {
	return sfnt.ParseCollection(fbytes)
}
