package services

import "fmt"

// State is a step of a single submission
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateRejected   State = "rejected"
	StateChecking   State = "checking"
	StateDelivering State = "delivering"
	StateResolved   State = "resolved"
)

var transitions = map[State][]State{
	StateIdle:       {StateValidating},
	StateValidating: {StateRejected, StateChecking},
	StateRejected:   {StateResolved},
	StateChecking:   {StateDelivering},
	StateDelivering: {StateResolved},
	StateResolved:   {StateIdle},
}

type machine struct {
	current State
	path    []State
}

func newMachine() *machine {
	return &machine{current: StateIdle, path: []State{StateIdle}}
}

// to moves to next. An illegal move is a programming error.
func (m *machine) to(next State) {
	for _, allowed := range transitions[m.current] {
		if allowed == next {
			m.current = next
			m.path = append(m.path, next)
			return
		}
	}
	panic(fmt.Sprintf("illegal submission transition %s -> %s", m.current, next))
}
