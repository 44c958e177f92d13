package universe

import (
	"math/rand"
	"sync"
	"time"

	"golife/src/life"
	"golife/src/logger"
	"golife/src/patterns"
)

//Sim drives a life.Grid. The grid itself has no locking, so every access
//runs on the simulation's command loop; callers enqueue commands and read
//state through the Status and Rows accessors.
type Sim struct {
	options Options
	grid    *life.Grid
	rng     *rand.Rand
	state   struct {
		Status
		sync.Mutex
	}
	snapshot struct {
		rows [][]life.Cell
		sync.Mutex
	}
	stateCh   chan Status
	views     []Viewer
	patternIx int
	controlCh chan func()
	closeCh   chan bool
}

//New creates a simulation over a fresh all-dead grid.
//stateCh may be nil when nobody consumes status updates.
func New(o *Options, stateCh chan Status) (*Sim, error) {
	if o == nil {
		opts := DefaultOptions
		o = &opts
	}
	grid, err := life.New(o.Width, o.Height)
	if err != nil {
		return nil, err
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := Sim{
		options:   *o,
		grid:      grid,
		rng:       rand.New(rand.NewSource(seed)),
		stateCh:   stateCh,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		patternIx: -1,
	}
	s.updateSnapshot()
	go s.mainLoop()
	logger.Log.Debug("simulation created", "width", o.Width, "height", o.Height, "seed", seed)
	return &s, nil
}

//RegisterViewer registers the viewer - it will be refreshed on state changes
func (s *Sim) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

//StateCh returns the channel carrying the simulation's status updates
func (s *Sim) StateCh() chan Status {
	return s.stateCh
}

//Status returns the current simulation status
func (s *Sim) Status() Status {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.Status
}

//Options returns the simulation configuration
func (s *Sim) Options() Options {
	return s.options
}

//Rows returns the latest cell matrix snapshot.
//The snapshot is replaced wholesale after every mutating command,
//so viewers can read it without touching the grid itself.
func (s *Sim) Rows() [][]life.Cell {
	s.snapshot.Lock()
	defer s.snapshot.Unlock()
	return s.snapshot.rows
}

//SettlePattern places the named pattern centered on the grid.
//The lookup happens synchronously so an unknown name fails immediately;
//the placement itself runs on the command loop.
func (s *Sim) SettlePattern(name string) error {
	p, err := patterns.Get(name)
	if err != nil {
		return err
	}
	s.controlCh <- func() {
		s.place(p)
	}
	return nil
}

//SettleRandom fills the grid with random cells at the configured density
func (s *Sim) SettleRandom() {
	s.controlCh <- func() {
		s.grid.Clear()
		if err := s.grid.Randomize(s.rng, s.options.Density); err != nil {
			logger.Log.Error("randomize failed", "err", err)
			return
		}
		s.state.Lock()
		s.state.Generation = 0
		s.state.LiveCells = s.grid.Population()
		s.state.Pattern = ""
		s.state.Unlock()
		s.updateSnapshot()
		s.refreshView()
	}
}

//NextPattern clears the grid and settles the next catalogue pattern,
//cycling through the library in name order
func (s *Sim) NextPattern() {
	s.controlCh <- func() {
		all := patterns.All()
		s.patternIx = (s.patternIx + 1) % len(all)
		s.grid.Clear()
		s.state.Lock()
		s.state.Generation = 0
		s.state.StepTime = 0
		s.state.Unlock()
		s.place(all[s.patternIx])
	}
}

//ToggleCell inverses the cell state at row, col
func (s *Sim) ToggleCell(row int, col int) {
	s.controlCh <- func() {
		if err := s.grid.Set(row, col, !s.grid.Alive(row, col)); err != nil {
			return //clicks outside the field are ignored
		}
		s.state.Lock()
		s.state.LiveCells = s.grid.Population()
		s.state.Unlock()
		s.updateSnapshot()
		s.refreshView()
	}
}

//Run starts continuous stepping, returns immediately
func (s *Sim) Run() {
	s.controlCh <- s.run
}

//Stop stops continuous stepping, returns immediately
func (s *Sim) Stop() {
	s.controlCh <- s.stop
}

//Step does one simulation step, returns immediately.
//A Status is written to the state channel on start and on finish.
func (s *Sim) Step() {
	s.controlCh <- s.step
}

//Clear kills all cells and resets the counters, returns immediately
func (s *Sim) Clear() {
	s.controlCh <- s.clear
}

//Close stops the command loop and releases the channels
func (s *Sim) Close() {
	s.closeCh <- true
}

//mainLoop waits for commands and executes them, one at a time
func (s *Sim) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case c = <-s.closeCh:
		}
	}
	close(s.closeCh)
	close(s.controlCh)
}

//place settles a pattern centered on the grid; runs on the command loop
func (s *Sim) place(p patterns.Pattern) {
	originRow := (s.grid.Height() - p.Height) / 2
	originCol := (s.grid.Width() - p.Width) / 2
	if originRow < 0 {
		originRow = 0
	}
	if originCol < 0 {
		originCol = 0
	}
	s.grid.Place(p.Offsets, originRow, originCol)
	s.state.Lock()
	s.state.LiveCells = s.grid.Population()
	s.state.Pattern = p.Name
	s.state.Unlock()
	s.updateSnapshot()
	s.refreshView()
}

//run starts the stepping cycle.
//It stops on Stop(), on MaxSteps, when the universe dies out or freezes.
func (s *Sim) run() {
	go func() {
		s.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := s.mode()
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > s.options.MaxSkippedTicks {
				logger.Log.Warn("steps lagging behind the tick interval", "skipped", skipped)
				s.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the previous step is still being computed
			if mode != RunningStateStep {
				skipped = 0
				s.controlCh <- func() {
					s.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if s.options.Interval > 0 {
				time.Sleep(s.options.Interval)
			}
		}
	}()
}

//stop halts the run cycle
func (s *Sim) stop() {
	if s.mode() == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step advances the grid one generation; runs on the command loop
func (s *Sim) step() {
	finished := false
	rm := s.mode()
	defer func() {
		if finished {
			s.switchRunningState(RunningStateFinished)
		} else {
			s.switchRunningState(rm)
		}
		s.refreshView()
	}()

	if s.options.MaxSteps != 0 && s.grid.Generation() >= s.options.MaxSteps {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)
	start := time.Now()
	changed := s.grid.Step()
	s.state.Lock()
	s.state.Generation = s.grid.Generation()
	s.state.LiveCells = s.grid.Population()
	s.state.StepTime = time.Since(start)
	s.state.Unlock()
	s.updateSnapshot()
	if !changed || s.grid.Population() == 0 {
		finished = true
	}
}

//clear resets the grid and all counters; runs on the command loop
func (s *Sim) clear() {
	s.grid.Clear()
	s.state.Lock()
	s.state.Generation = 0
	s.state.LiveCells = 0
	s.state.StepTime = 0
	s.state.Pattern = ""
	s.state.Unlock()
	s.updateSnapshot()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

func (s *Sim) mode() RunningState {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.RunningMode
}

//switchRunningState switches the simulation mode and notifies the state channel
func (s *Sim) switchRunningState(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	st := s.state.Status
	s.state.Unlock()
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

func (s *Sim) updateSnapshot() {
	rows := s.grid.Rows()
	s.snapshot.Lock()
	s.snapshot.rows = rows
	s.snapshot.Unlock()
}

//refreshView calls Refresh on all registered viewers
func (s *Sim) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
