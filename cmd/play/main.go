package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/slog"

	mg "chess-core/chessmg"
	"chess-core/engine"
	"chess-core/game"
)

func main() {
	fen := flag.String("fen", mg.FENStartPos, "starting position")
	depth := flag.Int("depth", engine.DefaultDepth, "engine search depth")
	human := flag.String("human", "white", "sides played from the keyboard: white, black, both or none")
	useTUI := flag.Bool("tui", false, "full screen board with mouse input")
	moveTime := flag.Duration("movetime", 0, "engine time per move, 0 for fixed depth only")
	maxPlies := flag.Int("maxplies", 0, "stop after this many half moves, 0 for no limit")
	pgnPath := flag.String("pgn", "", "write the game record to this file")
	verbose := flag.Bool("v", false, "log engine searches to stderr")
	flag.Parse()

	start, err := mg.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("bad fen: %v", err)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	bot := &game.Engine{
		Searcher: engine.NewSearcher(engine.WithLogger(logger)),
		Depth:    *depth,
		MoveTime: *moveTime,
	}

	var display game.Display = game.Console{W: os.Stdout}
	var keyboard game.Player = game.NewHuman(os.Stdin, os.Stdout)
	var screen tcell.Screen
	if *useTUI {
		screen, err = tcell.NewScreen()
		if err != nil {
			log.Fatalf("screen: %v", err)
		}
		if err := screen.Init(); err != nil {
			log.Fatalf("screen: %v", err)
		}
		scr := game.NewScreen(screen)
		display, keyboard = scr, scr
	}

	white, black := game.Player(bot), game.Player(bot)
	switch *human {
	case "white":
		white = keyboard
	case "black":
		black = keyboard
	case "both":
		white, black = keyboard, keyboard
	case "none":
	default:
		log.Fatalf("-human must be white, black, both or none, got %q", *human)
	}

	opts := []game.Option{
		game.WithDisplay(display),
		game.WithLogger(logger),
		game.WithMaxPlies(*maxPlies),
	}
	var record *game.Record
	if *pgnPath != "" {
		record, err = game.NewRecord(start, map[string]string{
			"Event": "chess-core game",
			"Date":  time.Now().Format("2006.01.02"),
		})
		if err != nil {
			log.Fatalf("pgn: %v", err)
		}
		opts = append(opts, game.WithRecord(record))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g := game.New(start, white, black, opts...)
	outcome, err := g.Play(ctx)
	if screen != nil {
		if err == nil {
			// leave the final position up until a key is pressed
			for {
				ev := screen.PollEvent()
				if _, ok := ev.(*tcell.EventKey); ok || ev == nil {
					break
				}
			}
		}
		screen.Fini()
	}
	if record != nil {
		if werr := os.WriteFile(*pgnPath, []byte(record.PGN()), 0o644); werr != nil {
			log.Printf("pgn: %v", werr)
		}
	}
	if err != nil && !errors.Is(err, game.ErrQuit) && !errors.Is(err, context.Canceled) {
		log.Fatalf("game stopped: %v", err)
	}
	fmt.Printf("%s after %d half moves\n", outcome, len(g.Moves()))
}
