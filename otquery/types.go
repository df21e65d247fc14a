package otquery

import (
	"fmt"

	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/fontmeta/ot"
)

// DecodedProperty is one resolved metadata entry of a font: a name record
// joined with the property catalog's label and the resolved language name.
type DecodedProperty struct {
	NameID   sfnt.NameID     // see https://pkg.go.dev/golang.org/x/image/font/sfnt#NameID
	Label    string          // display label, e.g. "License Description"
	Language string          // predefined language name or a format-1 language tag
	Value    string          // the decoded string; may be partial for non-ok statuses
	Status   ot.DecodeStatus // ok, uncertain, or undecodable
}

// String renders a property the way a report line looks,
// `label (language): value`.
func (p DecodedProperty) String() string {
	if p.Status != ot.DecodeOK {
		return fmt.Sprintf("%s (%s): %s [%s]", p.Label, p.Language, p.Value, p.Status)
	}
	return fmt.Sprintf("%s (%s): %s", p.Label, p.Language, p.Value)
}

// MatchAny is a Selector wildcard.
const MatchAny = -1

// Selector filters name records by name ID, platform and language. A field
// set to MatchAny matches every record.
type Selector struct {
	Name     int // name ID to select, or MatchAny
	Platform int // platform ID to select, or MatchAny
	Language int // language ID to select, or MatchAny
}

// SelectAll matches every name record of a font.
var SelectAll = Selector{Name: MatchAny, Platform: MatchAny, Language: MatchAny}

func (sel Selector) matches(rec ot.NameRecord) bool {
	if sel.Name != MatchAny && sel.Name != int(rec.Name) {
		return false
	}
	if sel.Platform != MatchAny && sel.Platform != int(rec.Platform) {
		return false
	}
	if sel.Language != MatchAny && sel.Language != int(rec.Language) {
		return false
	}
	return true
}
