// Package shell is the interactive front end: load a puzzle, solve it,
// inspect it, save it, without restarting the binary.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/crossfill/crossfill/bundle"
	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/lexicon"
	"github.com/crossfill/crossfill/render"
	"github.com/crossfill/crossfill/solver"
)

var errExit = errors.New("exit")

const helpText = `Commands:
  load <structure> <words>    load a structure file and a word list
  loaddb <structure> <db>     load a structure file and a sqlite word db
  bundle <path>               load a yaml puzzle bundle
  solve                       fill the loaded puzzle
  show                        print the current fill
  save <path>                 write the current fill as a png
  stats                       slot/word counts and candidate histogram
  help                        this text
  exit                        leave the shell
`

type ShellController struct {
	l   *readline.Instance
	out io.Writer
	err io.Writer

	grid     *grid.Grid
	lex      *lexicon.Lexicon
	solution solver.Assignment
	stats    solver.Stats
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController() *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcrossfill>\033[0m ",
		HistoryFile:     "/tmp/crossfill_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, out: l.Stdout(), err: l.Stderr()}
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := sc.exec(line); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			showMessage("error: "+err.Error(), sc.err)
		}
	}
	log.Debug().Msg("leaving shell")
}

func (sc *ShellController) exec(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "load":
		if len(args) != 2 {
			return errors.New("usage: load <structure> <words>")
		}
		return sc.load(args[0], args[1], lexicon.LoadFile)
	case "loaddb":
		if len(args) != 2 {
			return errors.New("usage: loaddb <structure> <db>")
		}
		return sc.load(args[0], args[1], lexicon.LoadDB)
	case "bundle":
		if len(args) != 1 {
			return errors.New("usage: bundle <path>")
		}
		g, lex, err := bundle.ParseFile(args[0])
		if err != nil {
			return err
		}
		sc.setPuzzle(g, lex)
		return nil
	case "solve":
		return sc.solve()
	case "show":
		if sc.solution == nil {
			return errors.New("nothing solved yet")
		}
		return render.Text(sc.out, sc.grid, sc.solution)
	case "save":
		if len(args) != 1 {
			return errors.New("usage: save <path>")
		}
		if sc.solution == nil {
			return errors.New("nothing solved yet")
		}
		return render.SavePNG(args[0], sc.grid, sc.solution)
	case "stats":
		return sc.showStats()
	case "help":
		showMessage(helpText, sc.out)
		return nil
	case "exit", "quit":
		return errExit
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (sc *ShellController) load(structurePath, wordsPath string,
	loadWords func(string) (*lexicon.Lexicon, error)) error {

	g, err := grid.ParseFile(structurePath)
	if err != nil {
		return err
	}
	lex, err := loadWords(wordsPath)
	if err != nil {
		return err
	}
	sc.setPuzzle(g, lex)
	return nil
}

func (sc *ShellController) setPuzzle(g *grid.Grid, lex *lexicon.Lexicon) {
	sc.grid = g
	sc.lex = lex
	sc.solution = nil
	sc.stats = solver.Stats{}
	showMessage(fmt.Sprintf("loaded %dx%d grid, %d slots, %d words",
		g.Height(), g.Width(), len(g.Slots()), lex.Len()), sc.out)
}

func (sc *ShellController) solve() error {
	if sc.grid == nil {
		return errors.New("no puzzle loaded, try load or bundle")
	}
	s := solver.New(sc.grid, sc.lex)
	asg, err := s.Solve()
	sc.stats = s.Stats()
	if errors.Is(err, solver.ErrNoSolution) {
		showMessage("No solution.", sc.out)
		return nil
	}
	if err != nil {
		return err
	}
	sc.solution = asg
	return render.Text(sc.out, sc.grid, sc.solution)
}

// showStats prints puzzle counts, a histogram of per-slot candidate counts
// (words of the slot's length), and search counters if a solve has run.
func (sc *ShellController) showStats() error {
	if sc.grid == nil {
		return errors.New("no puzzle loaded, try load or bundle")
	}
	out := sc.out
	showMessage(fmt.Sprintf("slots: %d  words: %d",
		len(sc.grid.Slots()), sc.lex.Len()), out)

	candidates := make([]float64, 0, len(sc.grid.Slots()))
	for _, sl := range sc.grid.Slots() {
		candidates = append(candidates, float64(len(sc.lex.OfLength(sl.Length))))
	}
	if len(candidates) > 0 {
		hist := histogram.Hist(9, candidates)
		if err := histogram.Fprint(out, hist, histogram.Linear(40)); err != nil {
			return err
		}
	}
	if sc.stats.Nodes > 0 {
		showMessage(fmt.Sprintf("last solve: %d nodes, %d backtracks, %d revisions",
			sc.stats.Nodes, sc.stats.Backtracks, sc.stats.Revisions), out)
	}
	return nil
}
