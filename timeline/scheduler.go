package timeline

import (
	"time"

	"coinshower/logging"
	"coinshower/model"
)

// Effect is a time-windowed visual behavior composed into the scene.
type Effect interface {
	// Start is the offset into the timeline at which the effect becomes active.
	Start() time.Duration
	Duration() time.Duration

	// Root is the effect's visual sub-tree, added to the stage once.
	Root() model.Node

	// AnimTick is called once per frame while the effect is active with the
	// normalized local time, the local elapsed time and the global elapsed time.
	AnimTick(nt float64, lt, gt time.Duration)
}

// Stage is the render tree effects are attached to.
type Stage interface {
	AddChild(child model.Node)
}

type State int

const (
	StateIdle State = iota
	StateLoading
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Scheduler maps wall-clock time onto a looping timeline and dispatches
// frame updates to the effects whose window contains the current time.
type Scheduler struct {
	stage Stage
	clock Clock

	effects       []Effect
	totalDuration time.Duration

	t0    time.Time
	lt    time.Duration
	state State
}

func NewScheduler(stage Stage, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		stage: stage,
		clock: clock,
		state: StateIdle,
	}
}

// AddEffect appends the effect, attaches its visuals to the stage and
// extends the timeline to cover it.
func (s *Scheduler) AddEffect(e Effect) {
	s.effects = append(s.effects, e)
	if s.stage != nil {
		s.stage.AddChild(e.Root())
	}
	if end := e.Start() + e.Duration(); end > s.totalDuration {
		s.totalDuration = end
	}
}

func (s *Scheduler) Effects() []Effect {
	return s.effects
}

// TotalDuration is the loop length: the latest end of any effect.
func (s *Scheduler) TotalDuration() time.Duration {
	return s.totalDuration
}

func (s *Scheduler) State() State {
	return s.state
}

func (s *Scheduler) Running() bool {
	return s.state == StateRunning
}

// LocalTime is the timeline position computed by the last Tick.
func (s *Scheduler) LocalTime() time.Duration {
	return s.lt
}

func (s *Scheduler) BeginLoading() {
	if s.state == StateIdle {
		s.state = StateLoading
	}
}

// Start records t0 and begins dispatching frames.
func (s *Scheduler) Start() {
	s.t0 = s.clock.Now()
	s.lt = 0
	s.state = StateRunning
	logging.Log.Printf("timeline started: %d effect(s), loop %v", len(s.effects), s.totalDuration)
}

// Stop prevents any further frame from being dispatched. A frame already
// in progress completes.
func (s *Scheduler) Stop() {
	if s.state == StateStopped {
		return
	}
	s.state = StateStopped
	logging.Log.Printf("timeline stopped at %v", s.lt)
}

// Tick runs one frame and returns how many effects were updated.
func (s *Scheduler) Tick() int {
	if s.state != StateRunning || s.totalDuration <= 0 {
		return 0
	}

	gt := s.clock.Now().Sub(s.t0)
	lt := gt % s.totalDuration
	s.lt = lt

	updated := 0
	for _, e := range s.effects {
		if !Active(e, lt) {
			continue
		}
		elt := lt - e.Start()
		ent := float64(elt) / float64(e.Duration())
		e.AnimTick(ent, elt, gt)
		updated++
	}
	return updated
}

// Active reports whether lt falls in the effect's window [start, start+duration).
func Active(e Effect, lt time.Duration) bool {
	return lt >= e.Start() && lt < e.Start()+e.Duration()
}
