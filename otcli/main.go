package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/scriptlang/otlang"
	"github.com/npillmayer/scriptlang/otquery"
	"github.com/npillmayer/scriptlang/otscript"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tyse.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tyse.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.tyse.fonts": "Info",
		"trace.otscript":   "Error",
		"trace.otlang":     "Error",
		"trace.otquery":    "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to check script coverage for")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)                 // will set the correct level later
	pterm.Info.Println("Welcome to OpenType Script/Language CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("ot > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:    repl,
		scripts: otscript.Default(),
		langs:   otlang.Default(),
	}
	pterm.Printf("%d scripts, %d language systems\n", intp.scripts.Len(), intp.langs.Len())
	//
	// load font to use, if any
	if *fontname != "" {
		if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	for _, key := range []string{"tyse.fonts", "otscript", "otlang", "otquery"} {
		t := tracing.Select(key)
		switch *tlevel {
		case "Debug":
			t.SetTraceLevel(tracing.LevelDebug)
		case "Info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "Error":
			t.SetTraceLevel(tracing.LevelError)
		default:
			tracer().Errorf("Invalid trace level: %s", *tlevel)
			os.Exit(5)
		}
	}
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
	repl    *readline.Instance
	scripts *otscript.Registry
	langs   *otlang.Registry
	font    *otquery.Font
	script  *otscript.Script // last script found
	lang    *otlang.LangSys  // last language system found
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteString("(")
	if intp.font != nil {
		sb.WriteString(fmt.Sprintf(" font=%s", intp.font.Name))
	}
	if intp.script != nil {
		sb.WriteString(fmt.Sprintf(" script='%s'", intp.script.Tag))
	}
	if intp.lang != nil {
		sb.WriteString(fmt.Sprintf(" lang='%s'", intp.lang.Tag))
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
	code   int
	arg    string
	format string
}

type Command struct {
	count int
	op    [32]Op
}

const NOOP = -1
const (
	// op-codes QUIT, SCRIPTS, LANGS and COVERAGE will not have arguments
	QUIT int = iota
	SCRIPTS
	LANGS
	COVERAGE
	// op-codes below may have arguments
	HELP
	SCRIPT
	NAME
	RUNE
	LANG
	FIND
	FONT
)

var opMap = map[string]int{
	"quit":     QUIT,
	"scripts":  SCRIPTS,
	"langs":    LANGS,
	"coverage": COVERAGE,
	"help":     HELP,
	"script":   SCRIPT,
	"name":     NAME,
	"rune":     RUNE,
	"lang":     LANG,
	"find":     FIND,
	"font":     FONT,
}

var opNames = []string{
	"quit",
	"scripts",
	"langs",
	"coverage",
	"help",
	"script",
	"name",
	"rune",
	"lang",
	"find",
	"font",
}

var command = Command{}

func resetCommand() {
	command.count = 0
	for i := range command.op {
		command.op[i].code = NOOP
		command.op[i].arg = ""
		command.op[i].format = ""
	}
}

var errTooManySteps = errors.New("too many commands on one line")

func (intp *Intp) parseCommand(line string) (*Command, error) {
	resetCommand()
	steps := strings.Fields(line)
	if len(steps) > len(command.op) {
		return nil, errTooManySteps
	}
	command.count = len(steps)
	for i, step := range steps {
		c := strings.Split(step, ":") // e.g.  "script:latn" or "rune:U+0041" or "help:lang" or "scripts:tag"
		code, ok := opMap[strings.ToLower(c[0])]
		if !ok {
			code = HELP
		}
		command.op[i].code = code
		command.op[i].arg = getOptArg(c, 1)
		command.op[i].format = getOptArg(c, 2)
		if code < HELP {
			// arguments of argument-less commands are taken as format
			command.op[i].format = command.op[i].arg
			command.op[i].arg = ""
		}
		if command.op[i].arg == "" {
			tracer().Debugf("%s", opNames[code])
		} else {
			tracer().Debugf("%s: looking for '%s'", opNames[code], command.op[i].arg)
		}
	}
	return &command, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	SCRIPTS:  scriptsOp,
	LANGS:    langsOp,
	COVERAGE: coverageOp,
	HELP:     helpOp,
	SCRIPT:   scriptOp,
	NAME:     nameOp,
	RUNE:     runeOp,
	LANG:     langOp,
	FIND:     findOp,
	FONT:     fontOp,
}

func (intp *Intp) execute(cmd *Command) (err error, stop bool) {
	tracer().Debugf("cmd = %v", cmd.op[:cmd.count])
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

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	var f *otquery.Font
	if f, err = otquery.LoadFont(fontname); err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return
	}
	intp.font = f
	tracer().Infof("loaded font = %s", f.Name)
	return
}

// ----------------------------------------------------------------------

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
