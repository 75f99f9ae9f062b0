package state

// State is one phase of a frame-driven state machine.
type State interface {
	Name() string
	Enter()
	Update(deltaTime float64)
	Exit()
}

// StateMachine runs exactly one State at a time.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine with no initial state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update advances the current state.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

// CurrentName returns the current state's name, or "" without one.
func (sm *StateMachine) CurrentName() string {
	if sm.current == nil {
		return ""
	}
	return sm.current.Name()
}
