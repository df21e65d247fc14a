package otquery

import (
	"iter"

	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/fontmeta/ot"
)

// Properties assembles the ordered property list of a font: one
// DecodedProperty per name record, preserving the table-native record order.
// Multiple records with the same name ID but different languages are all
// emitted; nothing is deduplicated or sorted, since users rely on a
// consistent, table-native ordering.
//
// A font without a 'name' table yields a nil slice and an error of kind
// KindMissingTable (resp. KindUnsupportedNameFormat for an unreadable one);
// callers report such a font with zero properties rather than aborting a
// collection scan.
func Properties(otf *ot.Font) ([]DecodedProperty, error) {
	return Select(otf, SelectAll)
}

// Select assembles properties like Properties, restricted to name records
// matching the selector.
func Select(otf *ot.Font, sel Selector) ([]DecodedProperty, error) {
	names, err := otf.NameTable()
	if err != nil {
		return nil, err
	}
	records := names.Records()
	props := make([]DecodedProperty, 0, len(records))
	for _, rec := range records {
		if !sel.matches(rec) {
			continue
		}
		value, status := names.DecodeRecord(rec)
		if status != ot.DecodeOK {
			tracer().Debugf("name record (platform=%d, name=%d) decoded with status %s",
				rec.Platform, rec.Name, status)
		}
		props = append(props, DecodedProperty{
			NameID:   sfnt.NameID(rec.Name),
			Label:    PropertyLabel(sfnt.NameID(rec.Name)),
			Language: LanguageName(names, rec),
			Value:    value,
			Status:   status,
		})
	}
	return props, nil
}

// FontProperties is the per-font result of scanning a collection. Err is
// non-nil for fonts which failed to parse and for fonts without readable
// metadata (kind KindMissingTable or KindUnsupportedNameFormat); such fonts
// carry zero properties.
type FontProperties struct {
	Index      int
	Properties []DecodedProperty
	Err        error
}

// CollectionProperties assembles properties for every embedded font of a
// collection. One FontProperties is returned per declared font, in
// collection order; a failure scoped to one font is recorded in its entry
// and does not suppress the output of sibling fonts.
func CollectionProperties(coll *ot.Collection) []FontProperties {
	results := make([]FontProperties, coll.NumFonts())
	for i := range results {
		results[i].Index = i
		otf, err := coll.Font(i)
		if err != nil {
			results[i].Err = err
			continue
		}
		props, err := Properties(otf)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Properties = props
	}
	return results
}

// NamesRange yields decoded `(nameID, value)` pairs from a font's 'name'
// table, in table order. Undecodable records and empty values are skipped;
// best-effort (uncertain) values are yielded.
func NamesRange(otf *ot.Font) iter.Seq2[sfnt.NameID, string] {
	return func(yield func(sfnt.NameID, string) bool) {
		props, err := Properties(otf)
		if err != nil {
			tracer().Debugf("no name properties: %v", err)
			return
		}
		for _, p := range props {
			if p.Status == ot.DecodeFailed || p.Value == "" {
				continue
			}
			if !yield(p.NameID, p.Value) {
				return
			}
		}
	}
}
