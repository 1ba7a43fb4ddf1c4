package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/peterkuimelis/kaiju/internal/config"
	"github.com/peterkuimelis/kaiju/internal/game"
	"github.com/peterkuimelis/kaiju/internal/session"
	"github.com/peterkuimelis/kaiju/internal/web"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	defsFile := flag.String("defs", "", "path to the card definitions file (overrides config)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.Default()
	if *configFile != "" {
		if cfg, err = config.Load(*configFile); err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	cfg = config.FromEnv(cfg)
	if *addr != "" {
		cfg.Web.Addr = *addr
	}
	if *defsFile != "" {
		cfg.DefinitionsFile = *defsFile
	}

	defs, err := game.LoadDefinitions(cfg.DefinitionsFile)
	if err != nil {
		logger.Fatal("load definitions", zap.String("file", cfg.DefinitionsFile), zap.Error(err))
	}

	srv := web.NewServer(defs, session.Options{
		Game:         cfg.GameConfig(),
		LoadingTicks: cfg.LoadingTicks,
		Viewer:       0,
	}, logger)

	logger.Info("kaiju web UI listening", zap.String("addr", cfg.Web.Addr))
	if err := http.ListenAndServe(cfg.Web.Addr, srv.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}
