// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Position setup
	fenString     = flag.String("fen", "", "Starting position as a FEN string (default: standard start)")
	strictFEN     = flag.Bool("strict", false, "Reject malformed FEN instead of reading it leniently")
	fullFEN       = flag.Bool("full-fen", false, "Apply side to move, castling, en passant and clocks from -fen")
	applyMoves    = flag.String("apply", "", "Comma-separated moves to play before acting (e.g. e2e4,e7e5)")
	castleThrough = flag.Bool("castle-through-check", false, "Allow castling out of or through attacked squares")

	// Search options
	searchDepth = flag.Int("depth", 3, "Search depth in plies")
	searchSeed  = flag.Int64("seed", 1, "Tie-break random seed (0 = seed from the clock)")
	numWorkers  = flag.Int("workers", 1, "Goroutines splitting the root moves")
	cacheSize   = flag.Int("cache", config.DefaultCacheSize, "Move-list cache entries (0 = disabled)")

	// Actions
	listMoves = flag.Bool("moves", false, "List the legal moves of the side to move")
	perftN    = flag.Int("perft", 0, "Count leaf positions to depth N")
	divideN   = flag.Int("divide", 0, "Perft to depth N split by root move")
	selfPlay  = flag.Int("play", 0, "Let the engine play N plies against itself")
	showBoard = flag.Bool("board", false, "Draw the board after the action")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet      = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbose    = flag.Bool("v", false, "Verbose diagnostics")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyRulesFlags(cfg)
	applyVerbosityFlags(cfg)
}

// applySearchFlags configures search depth, seed, workers and cache size.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *searchDepth
	cfg.Search.Seed = *searchSeed
	cfg.Search.Workers = *numWorkers
	cfg.CacheSize = *cacheSize
}

// applyRulesFlags configures position setup and rule switches.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.FullFEN = *fullFEN
	cfg.Rules.CastleThroughCheck = *castleThrough
}

// applyVerbosityFlags sets the diagnostic level.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}
