/*
Sophwalk starts an interactive session for inspecting a sophography
dictionary.

It reads in a dictionary file of varname-to-sopheme-sequence definitions,
builds a DefDict from it, and drops into a prompt for walking individual
entries: rooting a view at a varname, stepping a cursor through its
items, reading off translations and spellings, and searching for where a
spelling occurs across the whole dictionary.

Usage:

	sophwalk [flags]

The flags are:

	-v, --version
		Give the current version of sophwalk and then exit.

	-d, --dict FILE
		Use the provided TOML dictionary file. Defaults to the file
		"dict.toml" in the current working directory.

	-c, --config FILE
		Load pipe-level configuration (such as stress policy) from the
		given TOML file instead of using defaults.

Once a session has started, type "help" for a list of commands. To exit,
type "quit".
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chzyer/readline"
	"github.com/dekarrin/rosed"
	"github.com/spf13/pflag"

	"github.com/dekarrin/sophtrie/config"
	"github.com/dekarrin/sophtrie/def"
	"github.com/dekarrin/sophtrie/def/parse"
	"github.com/dekarrin/sophtrie/index"
	"github.com/dekarrin/sophtrie/internal/util"
	"github.com/dekarrin/sophtrie/keysymbol"
	"github.com/dekarrin/sophtrie/view"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue loading the dictionary or config.
	ExitInitError

	// ExitSessionError indicates an unsuccessful program execution due to
	// a problem during the interactive session.
	ExitSessionError
)

const outputWidth = 80

// Version is the current version of sophwalk, set at build time.
var Version = "dev"

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	dictFile    *string = pflag.StringP("dict", "d", "dict.toml", "The TOML dictionary file to load")
	configFile  *string = pflag.StringP("config", "c", "", "The TOML pipe config file to load (stress policy, etc). If unset, defaults are used")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", Version)
		return
	}

	pipeCfg := config.DefaultPipe()
	if *configFile != "" {
		loaded, err := config.LoadPipe(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: loading config: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		pipeCfg = loaded
	}

	dd, err := loadDict(*dictFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading dict: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	sess := newSession(dd, pipeCfg)

	rl, err := readline.NewEx(&readline.Config{Prompt: "sophwalk> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer rl.Close()

	if err := sess.run(rl); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitSessionError
		return
	}
}

// loadDict reads a TOML file mapping varnames to sopheme-sequence text
// and parses each value into entities.
func loadDict(path string) (*def.DefDict, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := toml.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	dd := def.NewDefDict()
	for varname, seq := range entries {
		entities, err := parse.ParseEntryDefinition(seq)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", varname, err)
		}
		dd.Add(varname, entities)
	}

	return dd, nil
}

type session struct {
	dd      *def.DefDict
	cfg     config.Pipe
	current *view.DefView
}

func newSession(dd *def.DefDict, cfg config.Pipe) *session {
	return &session{dd: dd, cfg: cfg}
}

func (s *session) run(rl *readline.Instance) error {
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if quit := s.handle(line); quit {
			return nil
		}
	}
}

func (s *session) handle(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "quit", "exit":
		return true

	case "help":
		s.printHelp()

	case "list":
		s.printList()

	case "view":
		s.cmdView(args)

	case "translate":
		s.cmdTranslate()

	case "read":
		s.cmdRead(args)

	case "find":
		s.cmdFind(args)

	default:
		fmt.Println(wrap("unrecognized command " + strconv.Quote(cmd) + "; type \"help\" for a list"))
	}

	return false
}

func (s *session) printHelp() {
	fmt.Println(wrap("commands: list, view <varname>, translate, read <index...>, find <text>, quit"))
}

func (s *session) printList() {
	names := s.dd.Varnames()
	fmt.Println(wrap(util.MakeTextList(names)))
}

func (s *session) cmdView(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: view <varname>")
		return
	}

	v, err := view.GetEntry(s.dd, args[0])
	if err != nil {
		fmt.Println(wrap("error: " + err.Error()))
		return
	}

	s.current = v
	fmt.Println(wrap("now viewing " + args[0]))
}

func (s *session) cmdTranslate() {
	if s.current == nil {
		fmt.Println("no current view; use \"view <varname>\" first")
		return
	}

	translation, err := s.current.Translation()
	if err != nil {
		fmt.Println(wrap("error: " + err.Error()))
		return
	}

	fmt.Println(wrap(translation))
}

func (s *session) cmdRead(args []string) {
	if s.current == nil {
		fmt.Println("no current view; use \"view <varname>\" first")
		return
	}

	indexes := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			fmt.Println(wrap("invalid index " + strconv.Quote(a)))
			return
		}
		indexes[i] = n
	}

	item, ok, err := s.current.Read(indexes)
	if err != nil {
		fmt.Println(wrap("error: " + err.Error()))
		return
	}
	if !ok {
		fmt.Println("no item at that index")
		return
	}

	fmt.Println(wrap(s.describeItem(item)))
}

func (s *session) cmdFind(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: find <text>")
		return
	}

	idx, err := index.Build(s.dd)
	if err != nil {
		fmt.Println(wrap("error building index: " + err.Error()))
		return
	}

	text := strings.Join(args, " ")
	matches := idx.FindIn(text)
	if len(matches) == 0 {
		fmt.Println("no matches")
		return
	}

	for _, m := range matches {
		fmt.Println(wrap(fmt.Sprintf("%s: %q", m.Varname, text[m.Start:m.End])))
	}
}

// describeItem renders item for the "read" command. For an entity list
// reached through a transclusion, the effective stress shown depends on
// s.cfg.StressPolicy: core navigation never applies a transclusion's
// stress override itself, so this is where that policy actually takes
// effect for display.
func (s *session) describeItem(item view.ItemRef) string {
	switch item.Kind {
	case view.ItemKeysymbol:
		return "keysymbol: " + item.Keysymbol().String()
	case view.ItemSopheme:
		return "sopheme: " + item.Sopheme().String()
	case view.ItemEntityList:
		return "entity list via {" + item.EntityListVarname() + "}" + s.describeStress(item.EntityListStress())
	default:
		return "def"
	}
}

// describeStress renders the display-only effect of s.cfg.StressPolicy on
// a transclusion's stress override (0 meaning none was given).
func (s *session) describeStress(stress uint8) string {
	if stress == 0 {
		return ""
	}

	switch s.cfg.StressPolicy {
	case config.StressOverride:
		return fmt.Sprintf(" (stress override %s applied)", keysymbol.StressMarker(stress))
	case config.StressError:
		return " (stress override present; rejected by policy)"
	default: // config.StressIgnore
		return ""
	}
}

func wrap(s string) string {
	return rosed.Edit(s).Wrap(outputWidth).String()
}
