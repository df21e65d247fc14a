package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "props", "name", "names":
		pterm.Info.Println("Naming properties")
		pterm.Println(`
	Every sfnt font carries a 'name' table with records like this:
	+----------+----------+----------+---------+--------+
	| Platform | Encoding | Language | Name ID | String |
	+----------+----------+----------+---------+--------+
	'props' lists all of them, decoded, as  label (language): value
	'props:<platform>' restricts the listing to one platform ID.
	'name:<id>' lists the records for a single name ID, e.g.
	'name:13' for the license description.
	`)
	case "fonts", "use", "collection":
		pterm.Info.Println("Collections")
		pterm.Println(`
	A TrueType Collection (TTC) bundles several fonts sharing tables.
	'fonts' lists the members of the loaded collection.
	'use:<index>' selects the font all other commands operate on.
	A plain TTF/OTF file behaves like a collection with one member.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	fonts           list the fonts of the loaded file
	use:<index>     select a font
	props           list all naming properties of the selected font
	props:<pltf>    list naming properties for one platform ID
	name:<id>       list records for a single name ID
	family          print family and subfamily names
	license         print license description and URL
	tables          list the sfnt tables of the selected font
	errors          show parse errors and warnings
	help:<topic>    more on 'props' or 'fonts'
	quit            leave (or <ctrl>D)
	`)
	}
}
