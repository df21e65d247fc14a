package otquery

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// propertyLabels maps the well-known name IDs to display labels, following
// https://learn.microsoft.com/en-us/typography/opentype/spec/name#name-ids.
// Name ID 15 is reserved.
var propertyLabels = map[sfnt.NameID]string{
	sfnt.NameIDCopyright:                  "Copyright Notice",
	sfnt.NameIDFamily:                     "Font Family",
	sfnt.NameIDSubfamily:                  "Font Subfamily",
	sfnt.NameIDUniqueIdentifier:           "Unique Font Identifier",
	sfnt.NameIDFull:                       "Full Font Name",
	sfnt.NameIDVersion:                    "Version String",
	sfnt.NameIDPostScript:                 "PostScript Name",
	sfnt.NameIDTrademark:                  "Trademark",
	sfnt.NameIDManufacturer:               "Manufacturer",
	sfnt.NameIDDesigner:                   "Designer",
	sfnt.NameIDDescription:                "Description",
	sfnt.NameIDVendorURL:                  "Vendor URL",
	sfnt.NameIDDesignerURL:                "Designer URL",
	sfnt.NameIDLicense:                    "License Description",
	sfnt.NameIDLicenseURL:                 "License URL",
	sfnt.NameIDTypographicFamily:          "Typographic Family",
	sfnt.NameIDTypographicSubfamily:       "Typographic Subfamily",
	sfnt.NameIDCompatibleFull:             "Compatible Full Name",
	sfnt.NameIDSampleText:                 "Sample Text",
	sfnt.NameIDPostScriptCID:              "PostScript CID Findfont Name",
	sfnt.NameIDWWSFamily:                  "WWS Family",
	sfnt.NameIDWWSSubfamily:               "WWS Subfamily",
	sfnt.NameIDLightBackgroundPalette:     "Light Background Palette",
	sfnt.NameIDDarkBackgroundPalette:      "Dark Background Palette",
	sfnt.NameIDVariationsPostScriptPrefix: "Variations PostScript Name Prefix",
}

// PropertyLabel returns the display label for a name ID. Vendor-specific IDs
// (≥ 256) pass through as "Custom(<id>)"; reserved IDs in the well-known
// range without a label yield "Unknown(<id>)".
func PropertyLabel(id sfnt.NameID) string {
	if label, ok := propertyLabels[id]; ok {
		return label
	}
	if id >= 256 {
		return fmt.Sprintf("Custom(%d)", id)
	}
	return fmt.Sprintf("Unknown(%d)", id)
}
