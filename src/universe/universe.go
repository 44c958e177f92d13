package universe

import (
	"time"

	"golife/src/life"
)

//Universe is the control surface the driver and the viewers work against
type Universe interface {
	Status() Status
	Options() Options
	Rows() [][]life.Cell
	StateCh() chan Status
	SettlePattern(name string) error
	SettleRandom()
	ToggleCell(row int, col int)
	NextPattern()
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}

//Options represents the simulation's configurable options
type Options struct {
	Width           int
	Height          int
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	Density         float64
	Seed            int64 //0 means seed from the clock
}

//Status represents the state of the simulation at a concrete moment
type Status struct {
	Generation  int
	RunningMode RunningState
	LiveCells   int
	StepTime    time.Duration
	Pattern     string //name of the last settled pattern, if any
}

//Viewer is the interface to any viewer - an object that can display
//simulation data or control the simulation
type Viewer interface {
	Refresh()
	Register(s *Sim)
	Start()
}

//RunningState is the simulation running mode at a concrete moment
type RunningState int

const (
	RunningStateManual RunningState = iota
	RunningStateStep
	RunningStateRun
	RunningStateFinished
)

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 60
	DefHeight             = 25
	DefMaxSkippedTicks    = 5
	DefDensity            = 0.3
)

var DefaultOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
	Density:         DefDensity,
}
