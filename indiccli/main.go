package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/indicshape"
	"github.com/npillmayer/indicshape/indic"
	"github.com/npillmayer/indicshape/internal/cpinput"
	"github.com/npillmayer/indicshape/otreorder"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/runenames"
)

// tracer traces with key 'indic.cli'
func tracer() tracing.Trace {
	return tracing.Select("indic.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.indic.cli":     "Info",
		"trace.indic.shape":   "Error",
		"trace.indic.reorder": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	script := flag.String("script", "Beng", "Script to use (ISO 15924)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the Indic reordering CLI")
	//
	// set up REPL
	repl, err := readline.New("indic > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, registry: indicshape.DefaultRegistry()}
	if err := intp.selectScript(*script); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Enter text to reorder, :help for commands, quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
		tracing.Select("indic.shape").SetTraceLevel(tracing.LevelDebug)
		tracing.Select("indic.reorder").SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
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
	repl     *readline.Instance
	registry *indic.Registry
	profile  *indic.Profile
	opts     otreorder.Options
	names    bool // print character names
}

func (intp *Intp) String() string {
	if intp == nil || intp.profile == nil {
		return "()"
	}
	return fmt.Sprintf("( script=%s zwnj=%v strict=%v )", intp.profile.Script(),
		intp.opts.KeepTrailingZWNJ, intp.opts.Strict)
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
		if !strings.HasPrefix(line, ":") {
			if err := intp.reorder([]rune(line)); err != nil {
				pterm.Error.Println(err)
			}
			continue
		}
		quit, err := intp.execute(line[1:])
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

const (
	QUIT int = iota
	HELP
	SCRIPT
	CODEPOINTS
	CLASSIFY
	ZWNJ
	STRICT
	NAMES
)

var opMap = map[string]int{
	"quit":       QUIT,
	"help":       HELP,
	"script":     SCRIPT,
	"codepoints": CODEPOINTS,
	"cp":         CODEPOINTS,
	"classify":   CLASSIFY,
	"zwnj":       ZWNJ,
	"strict":     STRICT,
	"names":      NAMES,
}

var ErrNoProfile = errors.New("no script profile selected")

func (intp *Intp) execute(line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	code, ok := opMap[strings.ToLower(cmd)]
	if !ok {
		code = HELP
	}
	tracer().Debugf("command %q, argument %q", cmd, arg)
	switch code {
	case QUIT:
		pterm.Println("Goodbye!")
		return true, nil
	case SCRIPT:
		return false, intp.selectScript(arg)
	case CODEPOINTS:
		runes, err := cpinput.Parse(arg)
		if err != nil {
			return false, err
		}
		return false, intp.reorder(runes)
	case CLASSIFY:
		return false, intp.classify([]rune(arg))
	case ZWNJ:
		intp.opts.KeepTrailingZWNJ, err = parseSwitch(arg)
	case STRICT:
		intp.opts.Strict, err = parseSwitch(arg)
	case NAMES:
		intp.names, err = parseSwitch(arg)
	default:
		printHelp()
	}
	return false, err
}

func (intp *Intp) selectScript(s string) error {
	scr, err := language.ParseScript(s)
	if err != nil {
		return fmt.Errorf("invalid script %q: %w", s, err)
	}
	p, ok := intp.registry.Select(indic.SelectionContext{Direction: bidi.LeftToRight, Script: scr})
	if !ok {
		return fmt.Errorf("no profile for script %s", scr)
	}
	intp.profile = p
	tracer().Infof("using profile %s", p)
	return nil
}

func (intp *Intp) reorder(text []rune) error {
	if intp.profile == nil {
		return ErrNoProfile
	}
	res, err := otreorder.New(intp.profile, intp.opts).Reorder(text)
	if err != nil {
		return err
	}
	if !res.Applied {
		pterm.Info.Printf("no %s code points in input\n", intp.profile.Name())
		return nil
	}
	data := [][]string{{"Syllable", "Reordered", "Base", "Reph"}}
	for _, cl := range res.Clusters {
		reph := "-"
		if cl.Reph >= 0 {
			reph = strconv.Itoa(cl.Reph)
		}
		data = append(data, []string{
			intp.format(text[cl.Start:cl.End]),
			intp.format(cl.Text),
			strconv.Itoa(cl.Base),
			reph,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("%s\n", string(res.Text))
	return nil
}

func (intp *Intp) classify(text []rune) error {
	if intp.profile == nil {
		return ErrNoProfile
	}
	data := [][]string{{"Code point", "Name", "Form", "Position"}}
	for _, r := range text {
		data = append(data, []string{
			fmt.Sprintf("%U", r),
			runenames.Name(r),
			intp.profile.Form(r).String(),
			intp.profile.Position(r).String(),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) format(text []rune) string {
	parts := make([]string, len(text))
	for i, r := range text {
		if intp.names {
			parts[i] = runenames.Name(r)
		} else {
			parts[i] = fmt.Sprintf("%04X", r)
		}
	}
	return strings.Join(parts, " ")
}

func parseSwitch(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "1", "":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on|off, have %q", arg)
}
