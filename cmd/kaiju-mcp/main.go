package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/peterkuimelis/kaiju/internal/config"
	"github.com/peterkuimelis/kaiju/internal/game"
	kaijumcp "github.com/peterkuimelis/kaiju/internal/mcp"
	"github.com/peterkuimelis/kaiju/internal/session"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	defsFile := flag.String("defs", "", "path to the card definitions file (overrides config)")
	flag.Parse()

	// stdout carries the MCP protocol, so diagnostics go to stderr.
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	logger, err := zcfg.Build()
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
	if *defsFile != "" {
		cfg.DefinitionsFile = *defsFile
	}

	defs, err := game.LoadDefinitions(cfg.DefinitionsFile)
	if err != nil {
		logger.Fatal("load definitions", zap.String("file", cfg.DefinitionsFile), zap.Error(err))
	}

	tools := kaijumcp.NewTools(defs, session.Options{Game: cfg.GameConfig(), Viewer: 0}, logger)
	s := server.NewMCPServer(cfg.MCP.Name, cfg.MCP.Version)
	tools.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
