package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"golife/src/life"
	"golife/src/logger"
	"golife/src/patterns"
	"golife/src/universe"
	"golife/src/view"
)

//speed presets map onto the interval between frames
var speedPresets = map[string]time.Duration{
	"slow":      300 * time.Millisecond,
	"normal":    150 * time.Millisecond,
	"fast":      80 * time.Millisecond,
	"ludicrous": 20 * time.Millisecond,
}

type EnvOptions struct {
	interactive  bool
	random       bool
	noRender     bool
	noColor      bool
	listPatterns bool
	pattern      string
	speed        string
	logLevel     string
}

func main() {
	eo, uo := initOptions()
	logger.Configure(eo.logLevel)

	if eo.listPatterns {
		fmt.Print(view.PatternList())
		return
	}

	switch {
	case eo.interactive:
		runInteractive(eo, uo)
	case eo.noRender:
		runBatch(eo, uo)
	default:
		runAnimation(eo, uo)
	}
}

//runInteractive starts the gocui UI over the simulation runner
func runInteractive(eo *EnvOptions, uo *universe.Options) {
	s, err := universe.New(uo, nil)
	if err != nil {
		logger.Log.Fatal("cannot create simulation", "err", err)
	}
	settle(s, eo)

	v := view.NewConsoleUI()
	s.RegisterViewer(v)
	v.Start()
	s.Close()
}

//runBatch runs the simulation to completion printing progress only,
//for timing runs and terminals without ANSI support
func runBatch(eo *EnvOptions, uo *universe.Options) {
	stateCh := make(chan universe.Status, 10)
	s, err := universe.New(uo, stateCh)
	if err != nil {
		logger.Log.Fatal("cannot create simulation", "err", err)
	}
	out := view.NewConsoleOut()
	s.RegisterViewer(out)
	settle(s, eo)
	out.Start()

	s.Run()
	for st := range stateCh {
		if st.RunningMode == universe.RunningStateFinished {
			break
		}
	}
	s.Close()
	close(stateCh)
}

//runAnimation drives the grid directly: clear the terminal, draw a frame,
//wait, step, until the universe dies, freezes or the generation limit hits
func runAnimation(eo *EnvOptions, uo *universe.Options) {
	grid, err := life.New(uo.Width, uo.Height)
	if err != nil {
		logger.Log.Fatal("cannot create grid", "err", err)
	}

	seed := uo.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if eo.pattern != "" {
		p, err := patterns.Get(eo.pattern)
		if err != nil {
			logger.Log.Fatal("unknown pattern", "name", eo.pattern)
		}
		grid.Place(p.Offsets, center(uo.Height, p.Height), center(uo.Width, p.Width))
	} else {
		if err := grid.Randomize(rng, uo.Density); err != nil {
			logger.Log.Fatal("randomize failed", "err", err)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	color := !eo.noColor

	for {
		fmt.Print(view.ClearScreen)
		fmt.Print(view.Frame(grid.Rows(), grid.Generation(), grid.Population(), color))
		fmt.Println("\nPress Ctrl+C to stop")

		select {
		case <-sigCh:
			fmt.Println("\nSimulation stopped")
			return
		case <-time.After(uo.Interval):
		}

		changed := grid.Step()
		if grid.Population() == 0 {
			fmt.Print(view.ClearScreen)
			fmt.Print(view.Frame(grid.Rows(), grid.Generation(), grid.Population(), color))
			fmt.Println("\nAll cells have died. Game over.")
			return
		}
		if !changed {
			fmt.Println("\nThe universe has stabilized.")
			return
		}
		if uo.MaxSteps != 0 && grid.Generation() >= uo.MaxSteps {
			fmt.Printf("\nReached the generation limit (%v).\n", uo.MaxSteps)
			return
		}
	}
}

//settle seeds the runner's grid per the CLI flags
func settle(s *universe.Sim, eo *EnvOptions) {
	if eo.pattern != "" {
		if err := s.SettlePattern(eo.pattern); err != nil {
			logger.Log.Fatal("unknown pattern", "name", eo.pattern)
		}
		return
	}
	if eo.random {
		s.SettleRandom()
		return
	}
	//a pattern worth watching when nothing was asked for
	if err := s.SettlePattern("glider_gun"); err != nil {
		logger.Log.Fatal("default pattern missing", "err", err)
	}
}

func center(outer, inner int) int {
	off := (outer - inner) / 2
	if off < 0 {
		off = 0
	}
	return off
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	opts := universe.DefaultOptions
	uo = &opts
	eo = &EnvOptions{}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.SetDescription("Conway's Game of Life in the terminal")

	flaggy.Int(&uo.Width, "x", "width", "Width of the universe")
	flaggy.Int(&uo.Height, "y", "height", "Height of the universe")
	flaggy.Duration(&uo.Interval, "i", "interval", "Delay between the steps, for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations (0 - no limit)")
	flaggy.Float64(&uo.Density, "d", "density", "Density for the random fill, 0.0 to 1.0")
	flaggy.Int64(&uo.Seed, "", "seed", "Random seed (0 - seed from the clock)")
	flaggy.String(&eo.pattern, "p", "pattern", "Pattern to settle ["+strings.Join(patterns.Names(), "|")+"]")
	flaggy.Bool(&eo.random, "r", "random", "Settle with random cells")
	flaggy.String(&eo.speed, "", "speed", "Speed preset [slow|normal|fast|ludicrous], overrides --interval")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.Bool(&eo.noRender, "q", "no-render", "Run without drawing frames, print progress only")
	flaggy.Bool(&eo.listPatterns, "l", "list-patterns", "List the available patterns and exit")
	flaggy.Bool(&eo.noColor, "", "no-color", "Disable colored output")
	flaggy.String(&eo.logLevel, "", "log-level", "Log level [debug|info|warn|error]")

	flaggy.Parse()

	if eo.speed != "" {
		interval, ok := speedPresets[eo.speed]
		if !ok {
			flaggy.ShowHelpAndExit("unknown speed preset")
		}
		uo.Interval = interval
	}

	if eo.pattern != "" {
		if _, err := patterns.Get(eo.pattern); err != nil {
			flaggy.ShowHelpAndExit("unknown pattern, see --list-patterns")
		}
	}

	return
}
