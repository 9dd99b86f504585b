package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/config"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/devtools"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/gameplay"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/generator"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer"
	"github.com/Slava-Fly/Crystals-Dragons/pkg/game/renderer/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		os.Exit(1)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot build the maze: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		devtools.WriteMaze(os.Stderr, eng.Game())
	}

	ui := tui.New(cfg.NoColor)
	renderer.SetRenderer(ui)
	renderer.Init()

	run(eng, ui, cfg.Debug)
}

// buildEngine seeds the generator and the combat dice and creates the game
func buildEngine(cfg *config.Config) (*gameplay.Engine, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	opts := []gameplay.Option{
		gameplay.WithRand(rng),
		gameplay.WithGenerator(generator.NewDFSGenerator(rng)),
	}
	if cfg.Debug {
		logger := log.New(os.Stderr, "[cd] ", log.Ltime|log.Lmicroseconds)
		logger.Printf("seed=%d rooms=%d", seed, cfg.RoomCount())
		opts = append(opts, gameplay.WithLogger(logger))
	}

	if cfg.Size > 0 {
		return gameplay.NewWithSize(cfg.Size, opts...)
	}
	return gameplay.NewWithRooms(cfg.Rooms, opts...)
}

// run reads commands until the game ends or the player quits
func run(eng *gameplay.Engine, ui *tui.TUIRenderer, debug bool) {
	renderer.Clear()
	renderer.Show(eng.Start())

	for !eng.IsGameOver() {
		renderer.RenderFrame(eng.Game())

		line := renderer.GetInput()
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "quit", "q":
			fmt.Println()
			return
		case "help", "?":
			ui.ShowHelp()
			continue
		case "log":
			ui.ShowLog(eng.Game())
			continue
		case "dump":
			if debug {
				dumpMaze(eng)
				continue
			}
		}

		renderer.Show(eng.Handle(line))
	}
}

// dumpMaze writes the current maze to map.txt for inspection
func dumpMaze(eng *gameplay.Engine) {
	path, err := devtools.DumpMazeToFile(eng.Game(), devtools.MapDumpFilename)
	if err != nil {
		log.Printf("dump failed: %v", err)
		return
	}
	renderer.Show(renderer.Info("Maze written to " + path))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: crystals-dragons [-rooms N | -size N] [-seed N] [-no-color] [-debug] [-env FILE]")
}
