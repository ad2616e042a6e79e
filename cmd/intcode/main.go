// Command intcode is a thin driver around the vm package: it reads a
// program file, feeds any remaining command-line arguments to the VM as
// input, runs it to completion, and prints the output queue. It carries no
// domain logic of its own, the same role the teacher's main.go plays
// relative to its own vm package.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/kstephano-successor/intcode/program"
	"github.com/kstephano-successor/intcode/vm"
)

var debugMode = flag.Bool("debug", false, "print a single-step trace as the program runs")

func init() {
	flag.Parse()
}

func main() {
	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Usage: intcode [-debug] <program file> [input values...]")
		os.Exit(1)
	}

	words, err := program.Load(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	m := vm.New(words)
	for _, raw := range args[1:] {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			fmt.Println("invalid input value:", raw)
			os.Exit(1)
		}
		m.PushInput(vm.Word(n))
	}

	if *debugMode {
		runDebugMode(m)
	} else {
		runQuiet(m)
	}
}

func runQuiet(m *vm.VM) {
	state, err := vm.RunToCompletion(context.Background(), m)
	printOutput(m)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if state != vm.StateStopped {
		fmt.Println(m.DumpState())
	}
}

func runDebugMode(m *vm.VM) {
	for {
		fmt.Println(m.DumpState())
		instr, err := m.Step()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("executed>", instr)
		if m.State() == vm.StateStopped || m.State() == vm.StateHalted {
			break
		}
	}
	printOutput(m)
}

func printOutput(m *vm.VM) {
	for {
		v, ok := m.PopOutput()
		if !ok {
			break
		}
		fmt.Println(int64(v))
	}
}
