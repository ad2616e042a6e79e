package vm

import "context"

// Run drives Step in a loop until the machine reaches StateHalted (waiting
// on input), StateStopped (clean Halt), or StateFailed (Decode/Addressing
// error), returning that terminal state and, for StateFailed, the error
// that caused it.
//
// ctx is checked between steps rather than during one; a Step's own work is
// never interrupted partway. A cancelled ctx stops the loop and returns
// ctx.Err() with whatever state the machine had already reached, letting a
// host bound a runaway program's step count (or wall clock, via
// context.WithTimeout) the same way it would bound any other blocking call
// in this codebase. The VM core has no opinion on step budgets beyond this;
// it is purely a host-side concern threaded in at the boundary.
func (m *VM) Run(ctx context.Context) (State, error) {
	for {
		if m.state == StateStopped || m.state == StateFailed {
			return m.state, m.err
		}
		// A Halted machine only stays terminal if there is still nothing to
		// feed it; once the host has pushed more input, falling through to
		// Step lets it resume from the very instruction that suspended it.
		if m.state == StateHalted && m.input.empty() {
			return m.state, m.err
		}

		select {
		case <-ctx.Done():
			return m.state, ctx.Err()
		default:
		}

		if _, err := m.Step(); err != nil {
			return m.state, err
		}
	}
}

// RunToCompletion is a convenience over Run for callers that never need to
// feed more input mid-run and just want the final state, e.g. a batch CLI
// invocation. It is equivalent to m.Run(ctx) except that a
// StateHalted result (the program wants input this caller will never
// supply) is reported through the returned error instead of silently
// looking like success.
func RunToCompletion(ctx context.Context, m *VM) (State, error) {
	state, err := m.Run(ctx)
	if err != nil {
		return state, err
	}
	if state == StateHalted {
		return state, errHalted
	}
	return state, nil
}
