package main

import "sync/atomic"

// runState is the position of the rain in its shutdown state machine.
type runState int32

const (
	stateRunning runState = iota
	stateStopping
	stateStopped
)

func (s runState) String() string {
	switch s {
	case stateRunning:
		return "running"
	case stateStopping:
		return "stopping"
	case stateStopped:
		return "stopped"
	}
	return "unknown"
}

// lifecycle moves Running -> Stopping -> Stopped exactly once.
type lifecycle struct {
	state atomic.Int32
}

func (l *lifecycle) current() runState {
	return runState(l.state.Load())
}

func (l *lifecycle) running() bool {
	return l.current() == stateRunning
}

// stop runs cleanup on the first call only and reports whether it did.
func (l *lifecycle) stop(cleanup func()) bool {
	if !l.state.CompareAndSwap(int32(stateRunning), int32(stateStopping)) {
		return false
	}
	defer l.state.Store(int32(stateStopped))
	cleanup()
	return true
}
