package vm

import "fmt"

// paramWord returns the raw encoded parameter at slot i of the instruction
// at pc, i.e. memory[pc+1+i]. It is never itself resolved through a mode;
// callers pass it to readParam/writeAddr to do that.
func (m *VM) paramWord(pc Word, i int) Word {
	return m.memory.get(pc + 1 + Word(i))
}

// readParam resolves parameter p under mode to a value:
//
//	Position  -> memory[p]
//	Immediate -> p
//	Relative  -> memory[relativeBase+p]
func (m *VM) readParam(p Word, mode AddressingMode) (Word, error) {
	switch mode {
	case Position:
		if p < 0 {
			return 0, fmt.Errorf("%w: position read at %d", ErrAddressOutOfRange, int64(p))
		}
		return m.memory.get(p), nil
	case Immediate:
		return p, nil
	case Relative:
		addr := m.relativeBase + p
		if addr < 0 {
			return 0, fmt.Errorf("%w: relative read at %d (base %d, offset %d)", ErrAddressOutOfRange, int64(addr), int64(m.relativeBase), int64(p))
		}
		return m.memory.get(addr), nil
	default:
		return 0, fmt.Errorf("%w: mode %d", ErrInvalidMode, int(mode))
	}
}

// writeAddr resolves parameter p under mode to an address suitable for a
// write target:
//
//	Position  -> p
//	Relative  -> relativeBase+p
//	Immediate -> ErrInvalidWriteMode, a parameter can never be a write
//	             target's literal value
func (m *VM) writeAddr(p Word, mode AddressingMode) (Word, error) {
	switch mode {
	case Position:
		if p < 0 {
			return 0, fmt.Errorf("%w: position write at %d", ErrAddressOutOfRange, int64(p))
		}
		return p, nil
	case Relative:
		addr := m.relativeBase + p
		if addr < 0 {
			return 0, fmt.Errorf("%w: relative write at %d (base %d, offset %d)", ErrAddressOutOfRange, int64(addr), int64(m.relativeBase), int64(p))
		}
		return addr, nil
	case Immediate:
		return 0, fmt.Errorf("%w: parameter %d", ErrInvalidWriteMode, int64(p))
	default:
		return 0, fmt.Errorf("%w: mode %d", ErrInvalidMode, int(mode))
	}
}

// readSlot reads the i'th parameter of instr (decoded at pc) through its mode.
func (m *VM) readSlot(pc Word, instr DecodedInstruction, i int) (Word, error) {
	return m.readParam(m.paramWord(pc, i), instr.Modes[i])
}

// writeSlot resolves the i'th parameter of instr (decoded at pc) to a write
// address, then stores value there.
func (m *VM) writeSlot(pc Word, instr DecodedInstruction, i int, value Word) error {
	addr, err := m.writeAddr(m.paramWord(pc, i), instr.Modes[i])
	if err != nil {
		return err
	}
	m.memory.set(addr, value)
	return nil
}
