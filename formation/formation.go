// Package formation holds the two-state machine gating scene-wide
// behavior: the ornament swarm is either gathered into the tree or
// scattered into the surrounding cloud.
package formation

import "github.com/veilstar/lumen/gesture"

// State is the global formation
type State uint8

const (
	Gathered State = iota
	Scattered
)

func (s State) String() string {
	if s == Scattered {
		return "scattered"
	}
	return "gathered"
}

// Listener observes actual flips, invoked in apply order
type Listener func(from, to State)

// Machine applies level-triggered hysteresis to the gesture signal:
// an open hand scatters, a closed hand gathers, and the absence of a
// hand holds the last state
type Machine struct {
	state     State
	listeners []Listener
}

// NewMachine starts gathered
func NewMachine() *Machine {
	return &Machine{state: Gathered}
}

// State returns the current formation
func (m *Machine) State() State {
	return m.state
}

// Subscribe registers a flip listener. Not safe to call concurrently
// with Apply; wire listeners during construction
func (m *Machine) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Apply consumes one gesture signal and returns the resulting state
// Re-applying an identical signal never double-transitions
func (m *Machine) Apply(sig gesture.Signal) State {
	if !sig.Detected {
		return m.state
	}

	next := m.state
	if sig.Open {
		next = Scattered
	} else {
		next = Gathered
	}

	if next != m.state {
		prev := m.state
		m.state = next
		for _, l := range m.listeners {
			l(prev, next)
		}
	}
	return m.state
}
