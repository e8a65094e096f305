package astar

import "github.com/katalvlaran/wallhop/gridgraph"

// Observer receives a search's display notifications.
//
// Transition is called exactly once per Open, Closed or Path transition.
// Step is called once per completed outer iteration; it is the search's
// only yield point, and the place a caller pumps its own loop. Run checks
// for cancellation right after Step returns.
type Observer interface {
	Transition(ev Event)
	Step(iteration int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnTransition func(Event)
	OnStep       func(int)
}

// Transition implements Observer.
func (o ObserverFuncs) Transition(ev Event) {
	if o.OnTransition != nil {
		o.OnTransition(ev)
	}
}

// Step implements Observer.
func (o ObserverFuncs) Step(iteration int) {
	if o.OnStep != nil {
		o.OnStep(iteration)
	}
}

type nopObserver struct{}

func (nopObserver) Transition(Event) {}
func (nopObserver) Step(int)         {}

// Recorder is an Observer that keeps every event and the latest display
// state of each cell. The zero value is ready to use.
type Recorder struct {
	Events []Event
	Steps  int
	states map[gridgraph.Coord]DisplayState
}

// Transition implements Observer.
func (r *Recorder) Transition(ev Event) {
	if r.states == nil {
		r.states = make(map[gridgraph.Coord]DisplayState)
	}
	r.Events = append(r.Events, ev)
	r.states[ev.Cell] = ev.State
}

// Step implements Observer.
func (r *Recorder) Step(int) {
	r.Steps++
}

// State returns the latest display state recorded for c.
func (r *Recorder) State(c gridgraph.Coord) (DisplayState, bool) {
	s, ok := r.states[c]
	return s, ok
}

// Count returns how many events of state s were recorded.
func (r *Recorder) Count(s DisplayState) int {
	n := 0
	for _, ev := range r.Events {
		if ev.State == s {
			n++
		}
	}
	return n
}
