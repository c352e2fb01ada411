package shell

import "fmt"

// State is a node of the shell's state machine.
type State int

const (
	stateStart State = iota
	StateInit
	StateReadLine
	StateSeparate
	StateParse
	StateExecute
	StateReset
	StateError
	StateExit
	StateDestroy
	stateDone
)

var stateNames = map[State]string{
	stateStart:    "start",
	StateInit:     "init",
	StateReadLine: "read-line",
	StateSeparate: "separate",
	StateParse:    "parse",
	StateExecute:  "execute",
	StateReset:    "reset",
	StateError:    "error",
	StateExit:     "exit",
	StateDestroy:  "destroy",
	stateDone:     "done",
}

func (st State) String() string {
	if name, ok := stateNames[st]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(st))
}
