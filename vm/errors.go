package vm

import "errors"

// Sentinel failures, one per kind in the specification's failure table.
// Callers compare against these with errors.Is; call sites wrap them with
// fmt.Errorf("%w: ...") to attach positional context, the same way
// bassosimone-risc32's vm package wraps ErrSIGSEGV/ErrNotPermitted.
var (
	ErrInvalidOpcode            = errors.New("vm: invalid opcode")
	ErrInvalidMode              = errors.New("vm: invalid addressing mode")
	ErrInvalidWriteMode         = errors.New("vm: immediate mode not valid for a write target")
	ErrAddressOutOfRange        = errors.New("vm: address out of range")
	ErrProgramCounterOutOfRange = errors.New("vm: program counter out of range")

	// errHalted is never returned from Step/Run itself; RunToCompletion uses
	// it to report a still-waiting-on-input machine as an error for callers
	// that have no more input to give and just want a terminal result.
	errHalted = errors.New("vm: halted, waiting for input")
)
