package manager

import "fmt"

// Phase is the lifecycle stage of the game.
type Phase int

const (
	Ready Phase = iota
	Running
	Over
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// StateManager tracks the lifecycle phase and counts rounds. The round
// counter lets the controller drop ticks scheduled by an earlier round.
type StateManager struct {
	phase Phase
	round uint64
}

func NewStateManager() *StateManager {
	return &StateManager{phase: Ready}
}

// Begin enters Running from Ready or Over and starts a new round.
// It returns the new round number.
func (sm *StateManager) Begin() uint64 {
	sm.phase = Running
	sm.round++
	return sm.round
}

// End moves a running game to Over. It reports false if the game was not
// running.
func (sm *StateManager) End() bool {
	if sm.phase != Running {
		return false
	}
	sm.phase = Over
	return true
}

func (sm *StateManager) Phase() Phase {
	return sm.phase
}

func (sm *StateManager) Round() uint64 {
	return sm.round
}

// AcceptsInput reports whether key presses should reach the game.
func (sm *StateManager) AcceptsInput() bool {
	return sm.phase == Running
}

// IsCurrent reports whether round is still the one being played.
func (sm *StateManager) IsCurrent(round uint64) bool {
	return sm.phase == Running && sm.round == round
}
