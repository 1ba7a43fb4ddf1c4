package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/peterkuimelis/kaiju/internal/config"
	"github.com/peterkuimelis/kaiju/internal/game"
	"github.com/peterkuimelis/kaiju/internal/log"
	"github.com/peterkuimelis/kaiju/internal/session"
	"github.com/peterkuimelis/kaiju/internal/term"
	"github.com/peterkuimelis/kaiju/internal/view"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "play":
		runPlay(os.Args[2:])
	case "sim":
		runSim(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  kaiju play [--config FILE] [--defs FILE] [--seed N] [--verbose]")
	fmt.Println("  kaiju sim  [--config FILE] [--defs FILE] [--seed N] [--games N] [--quiet]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  play    Play against the computer in the terminal")
	fmt.Println("  sim     Let the computer play every seat and print the game log")
}

type commonFlags struct {
	configFile *string
	defsFile   *string
	seed       *int64
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configFile: fs.String("config", "", "path to a YAML config file"),
		defsFile:   fs.String("defs", "", "path to the card definitions file (overrides config)"),
		seed:       fs.Int64("seed", 0, "random seed (0 for random)"),
	}
}

// load resolves the configuration (file, then environment, then flags) and
// parses the card definitions.
func (f commonFlags) load(logger *zap.Logger) (config.Config, *game.Definitions) {
	cfg := config.Default()
	if *f.configFile != "" {
		var err error
		if cfg, err = config.Load(*f.configFile); err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	cfg = config.FromEnv(cfg)
	if *f.defsFile != "" {
		cfg.DefinitionsFile = *f.defsFile
	}
	if *f.seed != 0 {
		cfg.Seed = *f.seed
	}

	defs, err := game.LoadDefinitions(cfg.DefinitionsFile)
	if err != nil {
		logger.Fatal("load definitions", zap.String("file", cfg.DefinitionsFile), zap.Error(err))
	}
	return cfg, defs
}

// newLogger logs to stderr; only errors unless verbose.
func newLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewDevelopmentConfig()
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	common := addCommonFlags(fs)
	verbose := fs.Bool("verbose", false, "log diagnostics to stderr")
	fs.Parse(args)

	logger := newLogger(*verbose)
	defer logger.Sync()
	cfg, defs := common.load(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := session.Start(defs, session.Options{
		Game:         cfg.GameConfig(),
		LoadingTicks: cfg.LoadingTicks,
		Viewer:       0,
	})
	fmt.Print("Loading...")
	if err := s.WaitReady(ctx, time.Second/60); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	logger.Info("game started", zap.String("game_id", s.ID.String()), zap.Int64("seed", cfg.Seed))

	if err := term.NewREPL(s, os.Stdin, os.Stdout).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSim(args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	common := addCommonFlags(fs)
	games := fs.Int("games", 1, "number of games to play")
	quiet := fs.Bool("quiet", false, "print only the results")
	fs.Parse(args)

	logger := newLogger(false)
	cfg, defs := common.load(logger)

	control := make(map[string]game.PlayerControl, len(defs.Players))
	for _, p := range defs.Players {
		control[p.Name] = game.ControlAI
	}

	tally := make(map[string]int)
	for i := 0; i < *games; i++ {
		gc := cfg.GameConfig()
		gc.Control = control
		if gc.Seed != 0 {
			gc.Seed += int64(i)
		}
		opts := session.Options{Game: gc, Viewer: view.Everyone}
		if !*quiet {
			opts.Logger = log.NewTextLogger(os.Stdout)
		}

		s := session.Start(defs, opts)
		if err := s.WaitReady(context.Background(), time.Millisecond); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		loser, result, ok := s.Result()
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: game did not finish")
			os.Exit(1)
		}
		tally[loser]++
		fmt.Printf("game %d: %s\n", i+1, result)
	}

	if *games > 1 {
		fmt.Println()
		for _, p := range defs.Players {
			fmt.Printf("%-12s lost %d\n", p.Name, tally[p.Name])
		}
		fmt.Printf("%-12s %d\n", "draws", tally[""])
	}
}
