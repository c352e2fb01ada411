package shell

import "fmt"

// handler runs when a state is entered and picks the next state.
type handler func(*Session) State

type transition struct {
	from State
	to   State
}

// transitions lists every legal edge of the machine. Following an edge runs
// the handler of the destination state.
var transitions = map[transition]handler{
	{stateStart, StateInit}: (*Session).initState,

	{StateInit, StateReadLine}: (*Session).readLine,
	{StateInit, StateError}:    (*Session).errorState,

	{StateReadLine, StateReset}:    (*Session).resetState,
	{StateReadLine, StateSeparate}: (*Session).separate,
	{StateReadLine, StateExit}:     (*Session).exitState,
	{StateReadLine, StateError}:    (*Session).errorState,
	{StateSeparate, StateParse}:    (*Session).parse,
	{StateSeparate, StateError}:    (*Session).errorState,
	{StateParse, StateExecute}:     (*Session).execute,
	{StateParse, StateError}:       (*Session).errorState,
	{StateExecute, StateReset}:     (*Session).resetState,
	{StateExecute, StateExit}:      (*Session).exitState,
	{StateExecute, StateError}:     (*Session).errorState,
	{StateReset, StateReadLine}:    (*Session).readLine,
	{StateError, StateReset}:       (*Session).resetState,
	{StateError, StateDestroy}:     (*Session).destroy,
	{StateExit, StateDestroy}:      (*Session).destroy,
	{StateDestroy, stateDone}:      nil,
}

// Run drives the session from Init until Destroy completes. It returns nil
// if the shell exited normally and an error wrapping ErrFatal otherwise.
func (s *Session) Run() error {
	from, to := stateStart, StateInit
	for {
		h, ok := transitions[transition{from, to}]
		if !ok {
			return fmt.Errorf("%w: illegal transition %v -> %v", ErrFatal, from, to)
		}
		if h == nil {
			return s.result
		}

		s.logger.Printf("state: %v -> %v", from, to)
		next := h(s)
		s.logger.Printf("%v: %v", to, s)

		from, to = to, next
	}
}
