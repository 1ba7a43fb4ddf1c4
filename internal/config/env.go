package config

import (
	"os"
	"strconv"

	"github.com/peterkuimelis/kaiju/internal/game"
)

// FromEnv applies KAIJU_* environment overrides to cfg.
func FromEnv(cfg Config) Config {
	if val := os.Getenv("KAIJU_DEFINITIONS"); val != "" {
		cfg.DefinitionsFile = val
	}
	if val := getEnvInt("KAIJU_HAND_SIZE"); val > 0 {
		cfg.HandSize = val
	}
	if val := getEnvInt("KAIJU_MAX_ROUNDS"); val > 0 {
		cfg.MaxRounds = val
	}
	if val := getEnvInt("KAIJU_SEED"); val != 0 {
		cfg.Seed = int64(val)
	}
	if val := getEnvInt("KAIJU_LOADING_TICKS"); val > 0 {
		cfg.LoadingTicks = val
	}
	if val, ok := getEnvBool("KAIJU_NO_SHUFFLE"); ok {
		cfg.NoShuffle = val
	}
	if val := os.Getenv("KAIJU_BLOCK_CURRENCY"); val != "" {
		cfg.BlockCurrency = game.Currency(val)
	}
	if val := os.Getenv("KAIJU_WEB_ADDR"); val != "" {
		cfg.Web.Addr = val
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return b, true
}
