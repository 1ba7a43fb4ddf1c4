package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/kaiju/internal/game"
)

type Config struct {
	DefinitionsFile string        `yaml:"definitions_file" json:"definitions_file"`
	HandSize        int           `yaml:"hand_size" json:"hand_size"`
	MaxRounds       int           `yaml:"max_rounds" json:"max_rounds"`
	Seed            int64         `yaml:"seed" json:"seed"`
	NoShuffle       bool          `yaml:"no_shuffle" json:"no_shuffle"`
	LoadingTicks    int           `yaml:"loading_ticks" json:"loading_ticks"`
	BlockCurrency   game.Currency `yaml:"block_currency" json:"block_currency"`
	Web             WebConfig     `yaml:"web" json:"web"`
	MCP             MCPConfig     `yaml:"mcp" json:"mcp"`
}

type WebConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

type MCPConfig struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DefinitionsFile: "data/cards.yaml",
		HandSize:        game.DefaultHandSize,
		MaxRounds:       200,
		LoadingTicks:    30,
		BlockCurrency:   game.DefaultBlockCurrency,
		Web:             WebConfig{Addr: ":8080"},
		MCP:             MCPConfig{Name: "kaiju", Version: "1.0.0"},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills zero values left by a partial file.
func (c *Config) ApplyDefaults() {
	d := Default()
	if c.DefinitionsFile == "" {
		c.DefinitionsFile = d.DefinitionsFile
	}
	if c.HandSize <= 0 {
		c.HandSize = d.HandSize
	}
	if c.MaxRounds < 0 {
		c.MaxRounds = 0
	}
	if c.LoadingTicks < 0 {
		c.LoadingTicks = 0
	}
	if c.BlockCurrency == "" {
		c.BlockCurrency = d.BlockCurrency
	}
	if c.Web.Addr == "" {
		c.Web.Addr = d.Web.Addr
	}
	if c.MCP.Name == "" {
		c.MCP.Name = d.MCP.Name
	}
	if c.MCP.Version == "" {
		c.MCP.Version = d.MCP.Version
	}
}

// GameConfig converts the game-related settings.
func (c Config) GameConfig() game.GameConfig {
	return game.GameConfig{
		HandSize:      c.HandSize,
		MaxRounds:     c.MaxRounds,
		Seed:          c.Seed,
		NoShuffle:     c.NoShuffle,
		BlockCurrency: c.BlockCurrency,
	}
}
