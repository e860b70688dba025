// Package config loads runtime overrides from a dotenv file and the environment
// Process environment wins over the file; unset keys keep compiled defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/arcade/defense"
)

// DefaultEnvFile is read when no path is given; its absence is not an error
const DefaultEnvFile = ".env"

// Environment keys
const (
	KeyGameDuration        = "ARCADE_GAME_DURATION"
	KeyWaveInterval        = "ARCADE_WAVE_INTERVAL"
	KeyMaxWaves            = "ARCADE_MAX_WAVES"
	KeyMaxViruses          = "ARCADE_MAX_VIRUSES"
	KeyMaxCells            = "ARCADE_MAX_CELLS"
	KeyPlacementCost       = "ARCADE_PLACEMENT_COST"
	KeyEnergyRegenInterval = "ARCADE_ENERGY_REGEN_INTERVAL"
	KeyMedicineUses        = "ARCADE_MEDICINE_USES"
	KeyOpeningBoost        = "ARCADE_OPENING_BOOST"
	KeySeed                = "ARCADE_SEED"
	KeyDBDriver            = "ARCADE_DB_DRIVER"
	KeyDBDSN               = "ARCADE_DB_DSN"
	KeyListen              = "ARCADE_LISTEN"
	KeyLogDir              = "ARCADE_LOG_DIR"
)

// Config is the resolved runtime configuration
type Config struct {
	Defense defense.Tuning

	// Seed fixes the simulation RNG; zero means time seeded
	Seed uint64

	DBDriver string
	DBDSN    string
	Listen   string
	LogDir   string
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Defense:  defense.DefaultTuning(),
		DBDriver: "sqlite",
		DBDSN:    "arcade.db",
		Listen:   ":8080",
		LogDir:   "logs",
	}
}

// Load reads path (or DefaultEnvFile when empty) and applies overrides
// An explicit path that does not exist is an error
func Load(path string) (Config, error) {
	file := path
	if file == "" {
		file = DefaultEnvFile
	}

	vals, err := godotenv.Read(file)
	if err != nil {
		if path != "" || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read env file %s: %w", file, err)
		}
		vals = map[string]string{}
	}
	return resolve(vals, os.LookupEnv)
}

// Parse applies overrides from dotenv text only, ignoring the process environment
func Parse(r io.Reader) (Config, error) {
	vals, err := godotenv.Parse(r)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return resolve(vals, nil)
}

type lookupFunc func(key string) (string, bool)

// source looks a key up in the environment first, then the file
type source struct {
	file map[string]string
	env  lookupFunc
}

func (s source) get(key string) (string, bool) {
	if s.env != nil {
		if v, ok := s.env(key); ok && v != "" {
			return v, true
		}
	}
	v, ok := s.file[key]
	return v, ok && v != ""
}

func (s source) floatVar(key string, dst *float64) error {
	v, ok := s.get(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func (s source) intVar(key string, dst *int) error {
	v, ok := s.get(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func (s source) stringVar(key string, dst *string) {
	if v, ok := s.get(key); ok {
		*dst = v
	}
}

func resolve(file map[string]string, env lookupFunc) (Config, error) {
	cfg := Default()
	src := source{file: file, env: env}
	t := &cfg.Defense

	err := errors.Join(
		src.floatVar(KeyGameDuration, &t.GameDuration),
		src.floatVar(KeyWaveInterval, &t.WaveInterval),
		src.intVar(KeyMaxWaves, &t.MaxWaves),
		src.intVar(KeyMaxViruses, &t.MaxViruses),
		src.intVar(KeyMaxCells, &t.MaxCells),
		src.intVar(KeyPlacementCost, &t.PlacementCost),
		src.floatVar(KeyEnergyRegenInterval, &t.EnergyRegenInterval),
		src.intVar(KeyMedicineUses, &t.MedicineUses),
		src.floatVar(KeyOpeningBoost, &t.OpeningBoost),
	)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if v, ok := src.get(KeySeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid config: %s: %w", KeySeed, err)
		}
		cfg.Seed = seed
	}

	src.stringVar(KeyDBDriver, &cfg.DBDriver)
	src.stringVar(KeyDBDSN, &cfg.DBDSN)
	src.stringVar(KeyListen, &cfg.Listen)
	src.stringVar(KeyLogDir, &cfg.LogDir)

	if err := cfg.Defense.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
