package vm

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var allOpcodes = []Opcode{
	Add, Mult, Input, Output, JumpIfTrue, JumpIfFalse, LessThan, Equals, AdjustRelativeBase, Halt,
}

// TestDecodeEncodeRoundTrip checks that every valid opcode x modes
// combination survives an encode/decode round trip, deterministically
// seeded so a failure is reproducible without a fuzzing harness.
func TestDecodeEncodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(20191202))

	const iterations = 2000
	for i := 0; i < iterations; i++ {
		op := allOpcodes[rng.Intn(len(allOpcodes))]
		n := op.paramCount()
		modes := make([]AddressingMode, n)
		for j := range modes {
			modes[j] = AddressingMode(rng.Intn(3))
		}
		want := DecodedInstruction{Opcode: op, Modes: modes}

		word := encode(want)
		got, err := decode(word)
		require.NoErrorf(t, err, "decode(%d) failed for %v", int64(word), want)
		require.Equal(t, want.Opcode, got.Opcode)
		require.Equal(t, want.Modes, got.Modes)
	}
}

// TestSuspendResumePropertyEquivalence generalizes
// TestSuspendResumeTransparency over many random input sequences fed to a
// fixed echo program, asserting the no-observable-difference invariant
// between running fully prequeued and running with one value pushed per
// Run, so the machine suspends after every value.
func TestSuspendResumePropertyEquivalence(t *testing.T) {
	// Reads and echoes one value per loop iteration, forever.
	const source = "3,100,1,100,101,100,4,100,1105,1,0"
	rng := rand.New(rand.NewSource(554433))

	for trial := 0; trial < 50; trial++ {
		count := 1 + rng.Intn(12)
		values := make([]Word, count)
		for i := range values {
			values[i] = Word(rng.Intn(2000) - 1000)
		}

		whole := newVMForProperty(t, source)
		for _, v := range values {
			whole.PushInput(v)
		}
		wholeOut := runUntilNOutputs(t, whole, count)

		split := newVMForProperty(t, source)
		splitOut := make([]Word, 0, count)
		for _, v := range values {
			split.PushInput(v)
			state, err := split.Run(context.Background())
			require.NoError(t, err)
			require.NotEqual(t, StateFailed, state)
			for {
				v, ok := split.PopOutput()
				if !ok {
					break
				}
				splitOut = append(splitOut, v)
			}
		}

		require.Equal(t, wholeOut, splitOut, "trial %d: split/whole outputs diverged for values %v", trial, values)
	}
}

func newVMForProperty(t *testing.T, source string) *VM {
	t.Helper()
	return newVMFromSource(t, source)
}

func runUntilNOutputs(t *testing.T, m *VM, n int) []Word {
	t.Helper()
	out := make([]Word, 0, n)
	for len(out) < n {
		_, err := m.Run(context.Background())
		require.NoError(t, err)
		for {
			v, ok := m.PopOutput()
			if !ok {
				break
			}
			out = append(out, v)
			if len(out) == n {
				return out
			}
		}
		if m.State() == StateStopped {
			break
		}
	}
	return out
}
