package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/kaiju/internal/game"
)

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kaiju.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_rounds: 12\nseed: 7\nweb:\n  addr: \":9000\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxRounds)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, ":9000", cfg.Web.Addr)
	assert.Equal(t, game.DefaultHandSize, cfg.HandSize)
	assert.Equal(t, "data/cards.yaml", cfg.DefinitionsFile)
	assert.Equal(t, "kaiju", cfg.MCP.Name)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("block_currency: Gold\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("KAIJU_DEFINITIONS", "/tmp/deck.json")
	t.Setenv("KAIJU_HAND_SIZE", "7")
	t.Setenv("KAIJU_SEED", "99")
	t.Setenv("KAIJU_NO_SHUFFLE", "true")
	t.Setenv("KAIJU_MAX_ROUNDS", "not a number")

	cfg := FromEnv(Default())
	assert.Equal(t, "/tmp/deck.json", cfg.DefinitionsFile)
	assert.Equal(t, 7, cfg.HandSize)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.True(t, cfg.NoShuffle)
	assert.Equal(t, Default().MaxRounds, cfg.MaxRounds)
}

func TestGameConfig(t *testing.T) {
	cfg := Default()
	cfg.NoShuffle = true
	gc := cfg.GameConfig()
	assert.Equal(t, cfg.HandSize, gc.HandSize)
	assert.Equal(t, cfg.MaxRounds, gc.MaxRounds)
	assert.True(t, gc.NoShuffle)
	assert.Equal(t, game.CurrencyBlock, gc.BlockCurrency)
}
