package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	mg "chess-core/chessmg"
	"chess-core/engine"
	"chess-core/render"
)

func main() {
	depth := flag.Int("depth", engine.DefaultDepth, "search depth when go gives none")
	verbose := flag.Bool("v", false, "log searches to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	u := newUCI(os.Stdout, *depth, logger)
	u.loop(os.Stdin)
}

type uci struct {
	mu  sync.Mutex
	out io.Writer

	board        mg.Board
	defaultDepth int
	logger       *slog.Logger

	cancel   context.CancelFunc
	done     chan struct{}
	infinite bool
}

func newUCI(out io.Writer, depth int, logger *slog.Logger) *uci {
	return &uci{out: out, board: mg.NewBoard(), defaultDepth: depth, logger: logger}
}

func (u *uci) println(a ...any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.out, a...)
}

func (u *uci) loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	defer u.finish()
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			u.println("id name chess-core")
			u.println("id author chess-core authors")
			u.println("uciok")
		case "isready":
			u.println("readyok")
		case "ucinewgame":
			u.stop()
			u.board = mg.NewBoard()
		case "position":
			u.stop()
			u.position(tokens[1:])
		case "go":
			u.stop()
			u.goSearch(tokens[1:])
		case "stop":
			u.stop()
		case "quit":
			u.stop()
			return
		case "d":
			u.mu.Lock()
			render.Print(u.out, &u.board, "")
			fmt.Fprintln(u.out, "Fen:", u.board.FEN())
			u.mu.Unlock()
		case "eval":
			side := u.board.SideToMove()
			u.println("info string material", engine.Material(&u.board, side),
				"mobility", engine.Mobility(&u.board, side),
				"eval", engine.Evaluate(&u.board, side))
		case "moveordering":
			u.mu.Lock()
			fmt.Fprint(u.out, engine.RootMoveOrdering(&u.board, u.board.SideToMove()))
			u.mu.Unlock()
		default:
			u.println("info string Unknown command:", line)
		}
	}
}

// position handles "startpos [moves ...]" and "fen <fields> [moves ...]".
func (u *uci) position(args []string) {
	if len(args) == 0 {
		u.println("info string Malformed position command")
		return
	}
	var rest []string
	switch strings.ToLower(args[0]) {
	case "startpos":
		u.board = mg.NewBoard()
		rest = args[1:]
	case "fen":
		i := 1
		for i < len(args) && strings.ToLower(args[i]) != "moves" {
			i++
		}
		if i == 1 {
			u.println("info string Invalid fen position")
			return
		}
		b, err := mg.ParseFEN(strings.Join(args[1:i], " "))
		if err != nil {
			u.println("info string", err)
			return
		}
		u.board = b
		rest = args[i:]
	default:
		u.println("info string Invalid position subcommand")
		return
	}
	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return
	}
	for _, s := range rest[1:] {
		m, ok := u.board.ParseMove(s)
		if !ok {
			u.println("info string Move", s, "not found for position", u.board.FEN())
			return
		}
		u.board.ApplyMove(m, u.board.SideToMove())
	}
}

func (u *uci) goSearch(args []string) {
	depth := 0
	infinite := false
	var th engine.TimeHandler
	var wTime, bTime, wInc, bInc time.Duration
	for i := 0; i < len(args); i++ {
		opt := strings.ToLower(args[i])
		if opt == "infinite" {
			infinite = true
			continue
		}
		if i+1 >= len(args) {
			u.println("info string Malformed go command option", opt)
			break
		}
		n, err := strconv.Atoi(args[i+1])
		if err != nil {
			u.println("info string Malformed go command option; could not convert", opt)
			i++
			continue
		}
		i++
		ms := time.Duration(n) * time.Millisecond
		switch opt {
		case "depth":
			depth = n
		case "movetime":
			th.MoveTime = ms
		case "wtime":
			wTime = ms
		case "btime":
			bTime = ms
		case "winc":
			wInc = ms
		case "binc":
			bInc = ms
		default:
			u.println("info string Unknown go subcommand", opt)
		}
	}
	if u.board.SideToMove() == mg.White {
		th.Remaining, th.Increment = wTime, wInc
	} else {
		th.Remaining, th.Increment = bTime, bInc
	}
	if depth <= 0 {
		depth = u.defaultDepth
	}

	b := u.board
	ctx, cancel := th.Context(context.Background(), &b)
	u.cancel = cancel
	u.infinite = infinite
	u.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		defer cancel()
		s := engine.NewSearcher(engine.WithLogger(u.logger))
		res := s.Search(ctx, &b, b.SideToMove(), depth)
		u.println(engine.InfoLine(res))
		if infinite {
			// bestmove only after stop
			<-ctx.Done()
		}
		if !res.Found {
			u.println("bestmove 0000")
			return
		}
		u.println("bestmove", res.Move.String())
	}(u.done)
}

// stop cancels a running search and waits for its bestmove.
func (u *uci) stop() {
	if u.cancel != nil {
		u.cancel()
	}
	u.wait()
}

// finish runs at end of input: a search with a limit completes, an infinite
// one is stopped.
func (u *uci) finish() {
	if u.infinite {
		u.stop()
		return
	}
	u.wait()
}

func (u *uci) wait() {
	if u.done != nil {
		<-u.done
		u.done, u.cancel, u.infinite = nil, nil, false
	}
}
