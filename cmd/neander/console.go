// Copyright 2024 The neander Authors
// This file is part of neander.
//
// neander is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// neander is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with neander. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	"github.com/gui2maraes/neander/core/vm"
)

var consoleCommand = &cli.Command{
	Name:      "console",
	Aliases:   []string{"load"},
	Usage:     "load a memory file and start an interactive debugging session",
	ArgsUsage: "<file>",
	Action:    runConsole,
}

const consoleHelp = `valid directives:
 - help, h: display this help
 - step, s: execute the next instruction
 - (step, s) n: execute the next n instructions
 - (breakpoint, b, bp) i: set a breakpoint at instruction i
 - (clear, cl) i: clear a breakpoint at instruction i
 - continue, c: continue execution until the next breakpoint
 - cpu, show, print: print the CPU state
 - mem: print all memory
 - mem (addr, start.., ..end, start..end): print memory at an address or in a range
 - quit, q: quit the session`

// prompter abstracts liner so the console still works on dumb terminals
// and under piped stdin.
type prompter interface {
	Prompt(p string) (string, error)
	AppendHistory(string)
	Close() error
}

type dumbPrompt struct{ r *bufio.Reader }

func (d dumbPrompt) Prompt(p string) (string, error) {
	fmt.Print(p)
	line, err := d.r.ReadString('\n')
	return strings.TrimSuffix(line, "\n"), err
}

func (d dumbPrompt) AppendHistory(string) {}

func (d dumbPrompt) Close() error { return nil }

func newPrompter() prompter {
	if !liner.TerminalSupported() {
		return dumbPrompt{r: bufio.NewReader(os.Stdin)}
	}
	lr := liner.NewLiner()
	lr.SetCtrlCAborts(true)
	return lr
}

type console struct {
	m   *vm.Machine
	bps [vm.MemSize]bool
}

func runConsole(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("console wants exactly one memory file argument")
	}
	c := new(console)
	c.m = vm.NewWithConfig(vm.Config{Tracer: &vm.Hooks{
		OnMemWrite: func(addr, val byte) {
			fmt.Printf("mem[%d] <- %d\n", addr, int8(val))
		},
	}})
	if err := loadMemfile(c.m, ctx.Args().First()); err != nil {
		return err
	}

	p := newPrompter()
	defer p.Close()

	var last *directive
	for {
		line, err := p.Prompt("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Println()
				return nil
			}
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			return err
		}
		var dir directive
		if strings.TrimSpace(line) == "" {
			// An empty line repeats the previous directive.
			if last == nil {
				continue
			}
			dir = *last
		} else {
			d, perr := parseDirective(line)
			if perr != nil {
				fmt.Println(perr)
				continue
			}
			dir = d
			p.AppendHistory(line)
		}
		last = &dir
		if quit := c.exec(dir); quit {
			return nil
		}
	}
}

func (c *console) exec(dir directive) (quit bool) {
	switch dir.kind {
	case dirQuit:
		return true
	case dirHelp:
		fmt.Println(consoleHelp)
	case dirBreak:
		if c.bps[dir.a] {
			fmt.Printf("breakpoint already set at %d\n", dir.a)
		} else {
			c.bps[dir.a] = true
			fmt.Printf("breakpoint set at %d\n", dir.a)
		}
	case dirClear:
		if !c.bps[dir.a] {
			fmt.Printf("no breakpoint at %d\n", dir.a)
		} else {
			c.bps[dir.a] = false
			fmt.Printf("cleared breakpoint at %d\n", dir.a)
		}
	case dirPrintCPU:
		fmt.Println(c.m)
	case dirPrintMemAddr:
		val := c.m.MemAt(dir.a)
		fmt.Printf("%d | %X | %b\n", val, val, val)
	case dirPrintMemRange:
		c.m.DumpMem(os.Stdout, dir.a, dir.b)
	case dirStep:
		return c.step()
	case dirStepN:
		c.resume(dir.n)
	case dirContinue:
		c.cont()
	}
	return false
}

// step executes a single instruction and prints the resulting state. An
// exception ends the session.
func (c *console) step() (quit bool) {
	halted, err := c.m.Step()
	switch {
	case err != nil:
		fmt.Printf("exception: %v\n", err)
		return true
	case halted:
		fmt.Println("end of program reached")
	default:
		fmt.Println(c.m)
	}
	return false
}

// resume executes up to limit instructions, stopping at a breakpoint, a
// halt or an exception. A limit of zero executes nothing.
func (c *console) resume(limit uint64) {
	for n := uint64(0); n < limit; n++ {
		if c.advance() {
			return
		}
	}
}

// cont runs until a breakpoint, a halt or an exception.
func (c *console) cont() {
	for !c.advance() {
	}
}

// advance executes one instruction and reports whether execution should
// stop: at a breakpoint, a halt or an exception.
func (c *console) advance() (stop bool) {
	halted, err := c.m.Step()
	if err != nil {
		fmt.Printf("exception: %v\n", err)
		return true
	}
	if halted {
		fmt.Println("end of program reached")
		return true
	}
	if c.bps[c.m.PC()] {
		fmt.Println("breakpoint reached")
		return true
	}
	return false
}

type dirKind int

const (
	dirStep dirKind = iota
	dirStepN
	dirBreak
	dirClear
	dirContinue
	dirPrintCPU
	dirPrintMemAddr
	dirPrintMemRange
	dirHelp
	dirQuit
)

type directive struct {
	kind dirKind
	n    uint64 // step count
	a, b byte   // address or range bounds
}

var errBadDirective = errors.New("invalid directive. For valid directives, type `help`")

func parseDirective(line string) (directive, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return directive{}, errBadDirective
	}
	bare := len(fields) == 1
	switch fields[0] {
	case "help", "h":
		if bare {
			return directive{kind: dirHelp}, nil
		}
	case "quit", "q":
		if bare {
			return directive{kind: dirQuit}, nil
		}
	case "continue", "c":
		if bare {
			return directive{kind: dirContinue}, nil
		}
	case "cpu", "show", "print":
		if bare {
			return directive{kind: dirPrintCPU}, nil
		}
	case "step", "s":
		if bare {
			return directive{kind: dirStep}, nil
		}
		if len(fields) == 2 {
			n, err := strconv.ParseUint(fields[1], 10, 32)
			if err == nil {
				return directive{kind: dirStepN, n: n}, nil
			}
		}
	case "breakpoint", "bp", "b":
		if len(fields) == 2 {
			if a, ok := parseAddr(fields[1]); ok {
				return directive{kind: dirBreak, a: a}, nil
			}
		}
	case "clear", "cl":
		if len(fields) == 2 {
			if a, ok := parseAddr(fields[1]); ok {
				return directive{kind: dirClear, a: a}, nil
			}
		}
	case "mem":
		if bare {
			return directive{kind: dirPrintMemRange, a: 0, b: vm.MemSize - 1}, nil
		}
		if len(fields) == 2 {
			return parseMemRange(fields[1])
		}
	}
	return directive{}, errBadDirective
}

// parseMemRange understands `addr`, `start..`, `..end` and `start..end`.
func parseMemRange(s string) (directive, error) {
	before, after, found := strings.Cut(s, "..")
	if !found {
		if a, ok := parseAddr(before); ok {
			return directive{kind: dirPrintMemAddr, a: a}, nil
		}
		return directive{}, errBadDirective
	}
	start, end := byte(0), byte(vm.MemSize-1)
	if before == "" && after == "" {
		return directive{}, errBadDirective
	}
	if before != "" {
		a, ok := parseAddr(before)
		if !ok {
			return directive{}, errBadDirective
		}
		start = a
	}
	if after != "" {
		b, ok := parseAddr(after)
		if !ok {
			return directive{}, errBadDirective
		}
		end = b
	}
	return directive{kind: dirPrintMemRange, a: start, b: end}, nil
}

func parseAddr(s string) (byte, bool) {
	v, err := strconv.ParseUint(s, 10, 8)
	return byte(v), err == nil
}
