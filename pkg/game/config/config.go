// Package config reads the game settings from command line flags, the environment and a .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a setting is out of range or cannot be parsed
var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults
const (
	DefaultRooms   = 9
	DefaultEnvFile = ".env"
)

// Environment variables that provide defaults for the matching flags
const (
	EnvRooms   = "CD_ROOMS"
	EnvSize    = "CD_SIZE"
	EnvSeed    = "CD_SEED"
	EnvNoColor = "CD_NO_COLOR"
)

// Config holds the settings for one run
type Config struct {
	Rooms   int
	Size    int // 0 means use Rooms
	Seed    int64
	NoColor bool
	Debug   bool
	EnvFile string
}

// Load parses args (without the program name). Flags win over environment variables,
// which win over the built-in defaults.
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	flags := flag.NewFlagSet("crystals-dragons", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.IntVar(&cfg.Rooms, "rooms", DefaultRooms, "number of rooms in the maze")
	flags.IntVar(&cfg.Size, "size", 0, "build a size x size maze instead of using -rooms")
	flags.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable coloured output")
	flags.BoolVar(&cfg.Debug, "debug", false, "trace every command to stderr")
	flags.StringVar(&cfg.EnvFile, "env", DefaultEnvFile, "file with environment defaults")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidConfig, flags.Arg(0))
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return nil, err
	}

	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	if err := cfg.applyEnv(set); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFile loads path into the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w: load %s: %v", ErrInvalidConfig, path, err)
}

// applyEnv fills every setting whose flag was not given from the environment
func (c *Config) applyEnv(set map[string]bool) error {
	if v, ok := os.LookupEnv(EnvRooms); ok && !set["rooms"] {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvRooms, v)
		}
		c.Rooms = n
	}
	if v, ok := os.LookupEnv(EnvSize); ok && !set["size"] {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSize, v)
		}
		c.Size = n
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && !set["seed"] {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = n
	}
	if v, ok := os.LookupEnv(EnvNoColor); ok && !set["no-color"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvNoColor, v)
		}
		c.NoColor = b
	}
	return nil
}

// Validate checks the maze dimensions. A size, when given, takes precedence over the room count.
func (c *Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, c.Size)
	}
	if c.Size == 0 && c.Rooms < 1 {
		return fmt.Errorf("%w: rooms %d must be at least 1", ErrInvalidConfig, c.Rooms)
	}
	return nil
}

// RoomCount returns how many rooms the maze will have
func (c *Config) RoomCount() int {
	if c.Size > 0 {
		return c.Size * c.Size
	}
	return c.Rooms
}
