package fontmeta

import (
	"golang.org/x/image/font/sfnt"

	"github.com/npillmayer/fontmeta/ot"
	"github.com/npillmayer/fontmeta/otquery"
)

// FamilyName returns the family and subfamily names of a font, e.g.
// ("Calibri", "Bold"). Typographic names (name-IDs 16/17), if present, are
// preferred over the legacy family names.
func FamilyName(otf *ot.Font) (family string, subfamily string) {
	if otf == nil {
		return "", ""
	}
	for nameID, value := range otquery.NamesRange(otf) {
		switch nameID {
		case sfnt.NameIDFamily:
			if family == "" {
				family = value
			}
		case sfnt.NameIDSubfamily:
			if subfamily == "" {
				subfamily = value
			}
		case sfnt.NameIDTypographicFamily:
			family = value
		case sfnt.NameIDTypographicSubfamily:
			subfamily = value
		}
	}
	return family, subfamily
}

// LicenseInfo returns the license description and license URL embedded in a
// font's naming table. Either may be empty if the font does not carry the
// corresponding record.
func LicenseInfo(otf *ot.Font) (description string, url string) {
	if otf == nil {
		return "", ""
	}
	for nameID, value := range otquery.NamesRange(otf) {
		switch nameID {
		case sfnt.NameIDLicense:
			description = value
		case sfnt.NameIDLicenseURL:
			url = value
		}
	}
	return description, url
}

// Properties returns the decoded naming-table properties of every font in a
// collection, in table order. Fonts which could not be parsed or which lack
// a usable naming table are reported with a non-nil Err in their entry.
func Properties(coll *ot.Collection) []otquery.FontProperties {
	return otquery.CollectionProperties(coll)
}
