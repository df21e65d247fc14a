package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/fontmeta"
	"github.com/npillmayer/fontmeta/ot"
	"github.com/npillmayer/fontmeta/otquery"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
)

func fontsOp(intp *Intp, op *Op) (error, bool) {
	data := [][]string{
		{"Index", "Family", "Subfamily", "Status"},
	}
	for i := 0; i < intp.coll.NumFonts(); i++ {
		otf, err := intp.coll.Font(i)
		if err != nil {
			data = append(data, []string{strconv.Itoa(i), "-", "-", err.Error()})
			continue
		}
		family, subfamily := fontmeta.FamilyName(otf)
		data = append(data, []string{strconv.Itoa(i), family, subfamily, "ok"})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func propsOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	sel := otquery.SelectAll
	if arg, ok := op.hasArg(); ok { // e.g. 'props:3' filters for platform 3
		p, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("not a platform ID: %q", arg), false
		}
		sel.Platform = p
	}
	props, err := otquery.Select(otf, sel)
	if err != nil {
		return err, false
	}
	printProperties(props)
	return nil, false
}

func nameOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	arg, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("name needs a name ID, e.g. 'name:13'"), false
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("not a name ID: %q", arg), false
	}
	sel := otquery.SelectAll
	sel.Name = n
	props, err := otquery.Select(otf, sel)
	if err != nil {
		return err, false
	}
	if len(props) == 0 {
		pterm.Printf("no records for %s\n", otquery.PropertyLabel(sfnt.NameID(n)))
		return nil, false
	}
	printProperties(props)
	return nil, false
}

func familyOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	family, subfamily := fontmeta.FamilyName(otf)
	pterm.Printf("family:    %s\n", family)
	pterm.Printf("subfamily: %s\n", subfamily)
	return nil, false
}

func licenseOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	desc, url := fontmeta.LicenseInfo(otf)
	if desc == "" && url == "" {
		pterm.Println("font carries no license information")
		return nil, false
	}
	if desc != "" {
		pterm.Printf("license:     %s\n", desc)
	}
	if url != "" {
		pterm.Printf("license URL: %s\n", url)
	}
	return nil, false
}

func tablesOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	pterm.Printf("font tables: %v\n", otf.TableTags())
	return nil, false
}

func errorsOp(intp *Intp, op *Op) (error, bool) {
	otf, err := intp.checkFont()
	if err != nil {
		return err, false
	}
	errs, warns := otf.Errors(), otf.Warnings()
	if len(errs) == 0 && len(warns) == 0 {
		pterm.Println("font parsed without complaints")
		return nil, false
	}
	for _, e := range errs {
		pterm.Error.Println(e.Error())
	}
	for _, w := range warns {
		pterm.Println(w.String())
	}
	return nil, false
}

func printProperties(props []otquery.DecodedProperty) {
	for _, prop := range props {
		pterm.Println(prop.String())
	}
}

// printReport dumps every naming property of every font in the collection,
// for use in scripts and pipelines.
func printReport(coll *ot.Collection) {
	for _, entry := range fontmeta.Properties(coll) {
		if coll.IsCollection() {
			pterm.Printf("--- font %d ---\n", entry.Index)
		}
		if entry.Err != nil {
			pterm.Error.Println(entry.Err)
			continue
		}
		printProperties(entry.Properties)
	}
}
