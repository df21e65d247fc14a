package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontmeta"
	"github.com/npillmayer/fontmeta/ot"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontmeta'
func tracer() tracing.Trace {
	return tracing.Select("fontmeta")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.fontmeta":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font file to load (TTF, OTF or TTC)")
	report := flag.Bool("report", false, "Print a property report and exit")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the font metadata CLI") // colored welcome message
	//
	// load font to use
	intp := &Intp{}
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	if *report { // non-interactive mode: dump every property and be done
		printReport(intp.coll)
		return
	}
	//
	// set up REPL
	repl, err := readline.New("meta > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	coll *ot.Collection
	inx  int // index of the currently selected font within the collection
	repl *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.coll == nil {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("( fonts=%d", intp.coll.NumFonts()))
	if otf := intp.currentFont(); otf != nil {
		family, _ := fontmeta.FamilyName(otf)
		sb.WriteString(fmt.Sprintf(", font[%d]=%q", intp.inx, family))
	}
	sb.WriteString(" )")
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	FONTS
	USE
	PROPS
	NAME
	FAMILY
	LICENSE
	TABLES
	ERRORS
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"fonts":   FONTS,
	"use":     USE,
	"props":   PROPS,
	"name":    NAME,
	"family":  FAMILY,
	"license": LICENSE,
	"tables":  TABLES,
	"errors":  ERRORS,
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
	}
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Split(line, " ")
	if len(steps) > len(command.op) {
		return nil, fmt.Errorf("command too long: %d steps, maximum is %d",
			len(steps), len(command.op))
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.Split(step, ":") // e.g.  "use:1" or "name:13" or "props"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		command.op[i].arg = ""
		if command.op[i].code == QUIT {
			return &command, nil
		}
		command.op[i].arg = getOptArg(c, 1)
		tracer().Debugf("parsed command: %v", c)
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	FONTS:   fontsOp,
	USE:     useOp,
	PROPS:   propsOp,
	NAME:    nameOp,
	FAMILY:  familyOp,
	LICENSE: licenseOp,
	TABLES:  tablesOp,
	ERRORS:  errorsOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op)
	for _, c := range cmd.op {
		if c.code == NOOP {
			break
		}
		f, ok := commandFn[c.code]
		if !ok {
			pterm.Error.Printf("unknown command code: %d\n", c.code)
			return nil, false
		}
		err, stop = f(intp, &c)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		if stop {
			return
		}
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

func useOp(intp *Intp, op *Op) (error, bool) {
	arg, ok := op.hasArg()
	if !ok {
		return fmt.Errorf("use needs a font index, e.g. 'use:0'"), false
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("not a font index: %q", arg), false
	}
	if n < 0 || n >= intp.coll.NumFonts() {
		return fmt.Errorf("font index out of range: %d", n), false
	}
	intp.inx = n
	return nil, false
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	if fontname == "" {
		return fmt.Errorf("no font file given, use -font")
	}
	intp.coll, err = fontmeta.LoadFontFile(fontname)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return err
	}
	if intp.coll.IsCollection() {
		tracer().Infof("loaded collection with %d fonts", intp.coll.NumFonts())
	} else {
		tracer().Infof("loaded single font")
	}
	return nil
}

// ----------------------------------------------------------------------

func (intp *Intp) currentFont() *ot.Font {
	if intp.coll == nil {
		return nil
	}
	otf, err := intp.coll.Font(intp.inx)
	if err != nil {
		return nil
	}
	return otf
}

func (intp *Intp) checkFont() (*ot.Font, error) {
	if intp.coll == nil {
		return nil, fmt.Errorf("no font loaded")
	}
	return intp.coll.Font(intp.inx)
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}

func (op *Op) hasArg() (string, bool) {
	if op.arg == "" {
		return "", false
	}
	return op.arg, true
}
