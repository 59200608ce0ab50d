// Package shell is an interactive front-end: set up positions, list and play
// moves, run perft, and autoplay random games.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/kapell/ataxx/fen"
	"github.com/kapell/ataxx/game"
	"github.com/kapell/ataxx/move"
	"github.com/kapell/ataxx/movegen"
	"github.com/kapell/ataxx/perft"
)

type shellcmd struct {
	cmd  string
	args []string
}

var errNoData = errors.New("no data in command")

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}, nil
}

type ShellController struct {
	l *readline.Instance

	pos      game.Position
	curMoves []move.Move
	threads  int
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

func NewShellController(threads int) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mataxx>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, pos: game.NewPosition(), threads: threads}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) setPosition(args []string) error {
	// A record has internal spaces, so glue the arguments back together.
	record := strings.Join(args, " ")
	pos, err := fen.Parse(record)
	if err != nil {
		return err
	}
	sc.pos = pos
	sc.curMoves = nil
	log.Debug().Str("record", record).Msg("position set")
	return nil
}

func (sc *ShellController) genMovesAndDisplay() {
	sc.curMoves = movegen.Moves(&sc.pos)
	rows := lo.Map(sc.curMoves, func(m move.Move, idx int) string {
		return fmt.Sprintf("%3d: %v", idx+1, m)
	})
	sc.showMessage(strings.Join(rows, "\n"))
}

func (sc *ShellController) playMove(arg string) error {
	var m move.Move
	if strings.HasPrefix(arg, "#") {
		idx, err := strconv.Atoi(arg[1:])
		if err != nil {
			return err
		}
		if idx < 1 || idx > len(sc.curMoves) {
			return errors.New("move outside range; run `gen` first")
		}
		m = sc.curMoves[idx-1]
	} else {
		parsed, err := move.FromText(arg)
		if err != nil {
			return err
		}
		if !lo.Contains(movegen.Moves(&sc.pos), parsed) {
			return fmt.Errorf("%v is not legal here", parsed)
		}
		m = parsed
	}
	sc.pos.ApplyMove(m)
	sc.curMoves = nil
	sc.showMessage(sc.pos.String())
	return nil
}

func (sc *ShellController) playRandom() error {
	m, ok := movegen.RandomMove(&sc.pos)
	if !ok {
		return errors.New("game is over")
	}
	sc.showMessage(fmt.Sprintf("playing %v", m))
	sc.pos.ApplyMove(m)
	sc.curMoves = nil
	sc.showMessage(sc.pos.String())
	return nil
}

func (sc *ShellController) autoplay() {
	for {
		m, ok := movegen.RandomMove(&sc.pos)
		if !ok {
			break
		}
		sc.pos.ApplyMove(m)
	}
	sc.curMoves = nil
	sc.showMessage(sc.pos.String())
	sc.showMessage("result: " + sc.pos.Outcome().String())
}

func (sc *ShellController) runPerft(args []string) error {
	if len(args) == 0 {
		return errors.New("perft needs a depth")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return errors.New("could not understand the perft depth")
	}
	tstart := time.Now()
	nodes := perft.ParallelPerft(&sc.pos, depth, sc.threads)
	elapsed := time.Since(tstart)
	nps := float64(nodes) / elapsed.Seconds()
	sc.showMessage(fmt.Sprintf("perft(%d) = %d (%.2fs, %.0f nodes/s)",
		depth, nodes, elapsed.Seconds(), nps))
	return nil
}

func usage() string {
	return strings.TrimSpace(`
Commands:
  s                 show the current position
  set <record>      set the position from record notation
  fen               print the current position as a record
  gen               list the legal moves
  play <move|#n>    play a move by text (e.g. b2, a1b3, 0000) or list number
  random            play a uniformly random legal move
  autoplay          play random moves until the game ends
  perft <depth>     count move-tree nodes to the given depth
  outcome           show the game result
  reset             return to the starting position
  exit              leave the shell
`)
}

func (sc *ShellController) execLine(line string, sig chan os.Signal) {
	parsed, err := extractFields(line)
	if err != nil {
		if !errors.Is(err, errNoData) {
			sc.showError(err)
		}
		return
	}
	cmd, args := parsed.cmd, parsed.args

	switch cmd {
	case "s":
		sc.showMessage(sc.pos.String())
	case "set":
		if err := sc.setPosition(args); err != nil {
			sc.showError(err)
			break
		}
		sc.showMessage(sc.pos.String())
	case "fen":
		sc.showMessage(fen.Encode(&sc.pos))
	case "gen":
		sc.genMovesAndDisplay()
	case "play":
		if len(args) != 1 {
			sc.showError(errors.New("play takes exactly one move"))
			break
		}
		if err := sc.playMove(args[0]); err != nil {
			sc.showError(err)
		}
	case "random":
		if err := sc.playRandom(); err != nil {
			sc.showError(err)
		}
	case "autoplay":
		sc.autoplay()
	case "perft":
		if err := sc.runPerft(args); err != nil {
			sc.showError(err)
		}
	case "outcome":
		sc.showMessage(sc.pos.Outcome().String())
	case "reset":
		sc.pos = game.NewPosition()
		sc.curMoves = nil
		sc.showMessage(sc.pos.String())
	case "help":
		sc.showMessage(usage())
	default:
		sc.showError(fmt.Errorf("command %v not found", cmd))
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			sig <- syscall.SIGINT
			break
		}
		sc.execLine(line, sig)
	}
	log.Debug().Msg("exiting shell loop")
}
