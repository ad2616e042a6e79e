package vm

import "fmt"

/*
	VM is a register-free, memory-mapped virtual machine: its only
	state beyond the program counter and relative base is the linear memory
	that doubles as code and data, plus the two I/O queues the host drives it
	through.

	A VM is mutated solely by Step (and the Run loop built on top of
	it), PushInput, and PopOutput. There is no explicit teardown; once the
	host is done with a VM it simply drops the reference, same as the
	teacher's VM.
*/

// State is one of the five states a VM can occupy.
type State int

const (
	// StateInitialized is the state of a freshly constructed VM that
	// has never executed a Step.
	StateInitialized State = iota
	// StateRunning is the state after at least one Step has run and the
	// machine is neither suspended, stopped, nor failed.
	StateRunning
	// StateHalted is the suspended state: the last Step attempted Input
	// with an empty input queue and left pc unchanged.
	StateHalted
	// StateStopped is the terminal state reached by a clean Halt opcode.
	StateStopped
	// StateFailed is the terminal, poisoned state reached after a Decode or
	// Addressing failure. It is deliberately distinct from StateHalted so a
	// host checking for "waiting on input" never mistakes a poisoned
	// machine for one that is merely suspended.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StateHalted:
		return "Halted"
	case StateStopped:
		return "Stopped"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("?unknown-state(%d)?", int(s))
	}
}

// VM is a single VM instance. It is not goroutine-safe; exactly one
// execution context may drive a given VM's Step/Run at a time.
type VM struct {
	memory       *Memory
	pc           Word
	relativeBase Word
	state        State

	input  wordQueue
	output wordQueue

	// err is set once the machine transitions to StateFailed; further Step
	// calls return it immediately rather than attempt to execute anything.
	err error
}

// New constructs a VM from program, copied into memory at addresses
// 0..len(program)-1. pc starts at 0, relativeBase at 0, both I/O queues
// empty, and state at StateInitialized.
func New(program []Word) *VM {
	return &VM{
		memory: newMemory(program),
		state:  StateInitialized,
	}
}

// State reports the machine's current state.
func (m *VM) State() State {
	return m.state
}

// PushInput appends value to the input queue. It may be called at any
// time, including while the machine is StateHalted waiting on exactly this.
func (m *VM) PushInput(value Word) {
	m.input.pushBack(value)
}

// PopOutput removes and returns the oldest unread Word from the output
// queue. ok is false if no output is pending.
func (m *VM) PopOutput() (value Word, ok bool) {
	return m.output.popFront()
}

// PC reports the current program counter, mostly useful for diagnostics and
// for tests asserting that a suspended machine didn't move.
func (m *VM) PC() Word {
	return m.pc
}

// RelativeBase reports the current relative base.
func (m *VM) RelativeBase() Word {
	return m.relativeBase
}

// MemoryAt reads memory[addr] without going through parameter/mode
// resolution, for tests and debug dumps that want to assert on final
// memory contents directly.
func (m *VM) MemoryAt(addr Word) Word {
	return m.memory.get(addr)
}

// MemorySnapshot returns a dense copy of memory from 0 up to the
// high-water mark ever written.
func (m *VM) MemorySnapshot() []Word {
	return m.memory.snapshot()
}

func (m *VM) fail(err error) error {
	m.state = StateFailed
	m.err = err
	return err
}

func (m *VM) formatAt(pc Word, prefix string) string {
	instr, err := decode(m.memory.get(pc))
	if err != nil {
		return fmt.Sprintf("%s%d: <%v>", prefix, int64(pc), err)
	}
	return fmt.Sprintf("%s%d: %s", prefix, int64(pc), instr)
}

// DumpState renders a multi-line snapshot of the machine, in the same
// spirit as the teacher's printCurrentState: the next instruction on the
// first line, pc, relative base and state together on the second, then the
// queued input and the queued output on a line each.
func (m *VM) DumpState() string {
	next := ""
	if m.state != StateStopped && m.state != StateFailed {
		next = m.formatAt(m.pc, "next instruction> ")
	}
	return fmt.Sprintf("%s\n  pc> %d  relative_base> %d  state> %s\n  input queued> %v\n  output queued> %v",
		next, int64(m.pc), int64(m.relativeBase), m.state, m.input.drained(), m.output.drained())
}
