package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	mg "chess-core/chessmg"
	"chess-core/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	noPrune := flag.Bool("noprune", false, "disable alpha-beta cutoffs")
	noOrder := flag.Bool("noorder", false, "disable capture-first move ordering")
	verify := flag.Bool("verify", false, "check the root move list against dragontoothmg first")
	verbose := flag.Bool("v", false, "log root moves")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := mg.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	board, err := mg.ParseFEN(fen)
	if err != nil {
		log.Fatalf("bad fen: %v", err)
	}

	if *verify {
		ours := make([]string, 0, 64)
		for _, m := range board.LegalMoves(board.SideToMove()) {
			ours = append(ours, m.String())
		}
		ref := mg.ReferenceMoves(fen)
		slices.Sort(ours)
		slices.Sort(ref)
		if !slices.Equal(ours, ref) {
			log.Fatalf("root moves differ:\n ours %v\n ref  %v", ours, ref)
		}
		fmt.Printf("verify: %d root moves agree\n", len(ours))
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	depth := *depthFlag
	repeat := *repeatFlag
	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d pruning=%v ordering=%v\n", fen, depth, repeat, !*noPrune, !*noOrder)

	var total engine.Stats
	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		b := board
		s := engine.NewSearcher(
			engine.WithPruning(!*noPrune),
			engine.WithOrdering(!*noOrder),
			engine.WithLogger(logger),
		)
		res := s.Search(context.Background(), &b, b.SideToMove(), depth)
		fmt.Printf("iteration %d: bestmove %v score %s nodes %d time=%v\n",
			i+1, res.Move, engine.ScoreString(res.Score), res.Stats.Nodes, res.Elapsed)
		total.Add(res.Stats)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v nps: %.0f\n", totalElapsed, float64(total.Nodes)/totalElapsed.Seconds())
	total.Dump(os.Stdout)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
