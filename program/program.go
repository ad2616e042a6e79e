// Package program reads the on-disk source format for this VM: a single
// line of comma-separated base-10 integers. It is an external collaborator,
// not part of the VM core — the core only ever consumes a []vm.Word, never
// a filename or a reader, the same separation the teacher draws between
// CompileSource (this package's counterpart) and the VM it feeds.
package program

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kstephano-successor/intcode/vm"
)

// ErrEmptyField is returned when a comma-separated field is blank, e.g. from
// a leading/trailing/doubled comma.
var ErrEmptyField = errors.New("program: empty field")

// Parse reads the entirety of r, expecting the program text format: one
// logical line of comma-separated signed base-10 integers, optional
// surrounding whitespace on the line and on each field. Lines after the
// first are accepted and concatenated the same way CompileSource reads a
// file's lines before assembling them, so a program may be split across
// multiple physical lines without changing meaning. Blank lines are
// skipped.
func Parse(r io.Reader) ([]vm.Word, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	// Puzzle inputs can be large single lines; grow past bufio's default
	// 64KiB token limit rather than fail on a long program.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("program: read: %w", err)
	}
	return ParseString(b.String())
}

// ParseString parses a single comma-separated line of signed base-10
// integers into a Word sequence.
func ParseString(s string) ([]vm.Word, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("program: empty source")
	}

	fields := strings.Split(s, ",")
	words := make([]vm.Word, 0, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, fmt.Errorf("%w: field %d", ErrEmptyField, i)
		}
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("program: field %d (%q): %w", i, field, err)
		}
		words = append(words, vm.Word(n))
	}
	return words, nil
}

// Load opens filename and parses it via Parse. It mirrors CompileSource's
// file-reading half without the assembler-specific parts that have no
// counterpart in this program format.
func Load(filename string) ([]vm.Word, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("program: open %s: %w", filename, err)
	}
	defer f.Close()
	return Parse(f)
}
