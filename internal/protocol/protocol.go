// Package protocol implements a line-oriented text protocol for driving the
// search core, modeled on the standard chess-engine command protocol: uci,
// isready, ucinewgame, position, go, stop, quit.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/halcyonchess/engine/internal/board"
	"github.com/halcyonchess/engine/internal/engine"
)

const (
	engineName   = "Halcyon"
	engineAuthor = "halcyonchess"
)

// Driver owns the engine-facing state for one game: the current position,
// its played-move history (for repetition detection), and the shared
// transposition table that survives across searches within a game.
type Driver struct {
	out io.Writer

	pos       *board.Position
	history   []uint64
	tt        *engine.TranspositionTable
	searcher  *engine.Searcher
	activeTC  *engine.TimeControl
	searching atomic.Bool
}

// NewDriver returns a Driver writing protocol output to out, with a fresh
// 64 MiB transposition table and the standard starting position.
func NewDriver(out io.Writer) *Driver {
	return &Driver{
		out: out,
		pos: board.NewPosition(),
		tt:  engine.NewTranspositionTable(64),
	}
}

// Run reads commands from in until "quit" or end of input.
func (d *Driver) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			d.handleUCI()
		case "isready":
			fmt.Fprintln(d.out, "readyok")
		case "ucinewgame":
			d.handleNewGame()
		case "position":
			d.handlePosition(args)
		case "go":
			d.handleGo(args)
		case "stop":
			d.handleStop()
		case "quit":
			return
		default:
			// Unknown command: ignored, per the boundary contract.
		}
	}
}

func (d *Driver) handleUCI() {
	fmt.Fprintf(d.out, "id name %s\n", engineName)
	fmt.Fprintf(d.out, "id author %s\n", engineAuthor)
	fmt.Fprintln(d.out, "uciok")
}

func (d *Driver) handleNewGame() {
	d.pos = board.NewPosition()
	d.history = nil
	d.tt.Clear()
}

// handlePosition parses "position startpos [moves ...]" or
// "position fen <fen...> [moves ...]".
func (d *Driver) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	idx := 0
	switch args[0] {
	case "startpos":
		d.pos = board.NewPosition()
		idx = 1
	case "fen":
		fenParts := args[1:]
		movesAt := len(fenParts)
		for i, f := range fenParts {
			if f == "moves" {
				movesAt = i
				break
			}
		}
		fen := strings.Join(fenParts[:movesAt], " ")
		pos, err := board.ParseFEN(fen)
		if err != nil {
			return
		}
		d.pos = pos
		idx = 1 + movesAt
	default:
		return
	}

	d.history = nil

	if idx < len(args) && args[idx] == "moves" {
		for _, s := range args[idx+1:] {
			mv, ok := board.InferMove(d.pos, s)
			if !ok {
				break
			}
			d.history = append(d.history, d.pos.Hash)
			d.pos.MakeMove(mv)
		}
	}
}

// goOptions holds the parsed arguments of a "go" command.
type goOptions struct {
	depth     int
	wtime     int
	btime     int
	winc      int
	binc      int
	movetime  int
	hasDepth  bool
	hasMove   bool
	hasClock  bool
}

func parseGoOptions(args []string) goOptions {
	var o goOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			if i < len(args) {
				o.depth, _ = strconv.Atoi(args[i])
				o.hasDepth = true
			}
		case "wtime":
			i++
			if i < len(args) {
				o.wtime, _ = strconv.Atoi(args[i])
				o.hasClock = true
			}
		case "btime":
			i++
			if i < len(args) {
				o.btime, _ = strconv.Atoi(args[i])
				o.hasClock = true
			}
		case "winc":
			i++
			if i < len(args) {
				o.winc, _ = strconv.Atoi(args[i])
			}
		case "binc":
			i++
			if i < len(args) {
				o.binc, _ = strconv.Atoi(args[i])
			}
		case "movetime":
			i++
			if i < len(args) {
				o.movetime, _ = strconv.Atoi(args[i])
				o.hasMove = true
			}
		}
	}
	return o
}

func (d *Driver) handleGo(args []string) {
	opts := parseGoOptions(args)

	var tc *engine.TimeControl
	switch {
	case opts.hasMove:
		tc = engine.NewMoveTimeControl(opts.movetime)
	case opts.hasClock:
		timeLeft, inc := opts.wtime, opts.winc
		if d.pos.SideToMove == board.Black {
			timeLeft, inc = opts.btime, opts.binc
		}
		tc = engine.NewTimeLeftControl(timeLeft, inc)
	default:
		tc = engine.NewUnboundedTimeControl()
	}

	depth := engine.MaxPly
	if opts.hasDepth {
		depth = opts.depth
	}

	d.searcher = engine.NewSearcher(d.pos, d.tt, d.history)
	d.activeTC = tc
	d.searching.Store(true)

	info := d.searcher.Search(tc, depth)

	d.searching.Store(false)
	d.sendInfo(info)

	if info.BestMove == engine.NullMove {
		return
	}
	fmt.Fprintf(d.out, "bestmove %s\n", info.BestMove.String())
}

func (d *Driver) handleStop() {
	if d.searching.Load() && d.activeTC != nil {
		d.activeTC.Cancel()
	}
}

// sendInfo emits the "info ..." line for a completed search, encoding mate
// distances as "mate N" and everything else as "cp N".
func (d *Driver) sendInfo(info engine.SearchInfo) {
	var score string
	abs := info.Score
	if abs < 0 {
		abs = -abs
	}
	if abs >= engine.MateScore-1000 {
		sign := 1
		if info.Score < 0 {
			sign = -1
		}
		plies := (engine.MateScore-abs)/2 + 1
		score = fmt.Sprintf("mate %d", sign*plies)
	} else {
		score = fmt.Sprintf("cp %d", info.Score)
	}

	pvStrs := make([]string, len(info.PV))
	for i, mv := range info.PV {
		pvStrs[i] = mv.String()
	}

	fmt.Fprintf(d.out, "info depth %d seldepth %d time %d nodes %d nps %d score %s pv %s\n",
		info.Depth, info.SelDepth, info.Time.Milliseconds(), info.Nodes, info.NPS, score, strings.Join(pvStrs, " "))
}
