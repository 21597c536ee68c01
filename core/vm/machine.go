// Copyright 2024 The neander Authors
// This file is part of the neander library.
//
// The neander library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The neander library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the neander library. If not, see <http://www.gnu.org/licenses/>.

// Package vm implements the Neander educational CPU: an 8-bit accumulator
// machine with 256 bytes of RAM, two's complement arithmetic and a
// minimal instruction set.
package vm

import (
	"errors"
	"fmt"
	"io"
)

// MemSize is the machine's RAM size in bytes. Addresses are 8 bits wide, so
// both memory accesses and the program counter wrap at MemSize.
const MemSize = 256

// Status register bits.
const (
	statusZero     = 1 << 0
	statusNegative = 1 << 1
	// statusEndOfProg is set once the program counter has walked past the
	// last address. It is not part of the Neander architecture; it only
	// keeps the fetch loop from wrapping around silently.
	statusEndOfProg = 1 << 2
)

// Machine is a Neander CPU together with its RAM. The zero value is a
// machine with cleared registers and zeroed memory, ready to run.
type Machine struct {
	pc     uint8
	acc    byte
	status byte
	mem    [MemSize]byte

	conf Config
}

// New returns a machine with cleared registers and zeroed memory.
func New() *Machine {
	return new(Machine)
}

// NewWithConfig returns a machine that reports execution through the
// configured tracer hooks.
func NewWithConfig(conf Config) *Machine {
	return &Machine{conf: conf}
}

// PC returns the program counter.
func (m *Machine) PC() uint8 {
	return m.pc
}

// Acc returns the accumulator. The machine interprets it as a two's
// complement signed byte when setting the negative flag.
func (m *Machine) Acc() byte {
	return m.acc
}

// StatusZero reports whether the zero flag is set.
func (m *Machine) StatusZero() bool {
	return m.status&statusZero != 0
}

// StatusNegative reports whether the negative flag is set.
func (m *Machine) StatusNegative() bool {
	return m.status&statusNegative != 0
}

// Mem returns the machine's RAM. The returned slice aliases the machine's
// memory, so writes through it are visible to the running program.
func (m *Machine) Mem() []byte {
	return m.mem[:]
}

// MemAt returns the byte at the given address.
func (m *Machine) MemAt(addr byte) byte {
	return m.mem[addr]
}

// SetMem sets the byte at the given address.
func (m *Machine) SetMem(addr, val byte) {
	m.mem[addr] = val
}

// Run executes instructions until the program halts or an exception is
// raised. A HLT instruction is a normal termination and returns nil.
func (m *Machine) Run() error {
	for {
		halted, err := m.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}

// Step executes the next instruction and updates the program counter. It
// reports whether the instruction was a HLT.
func (m *Machine) Step() (halted bool, err error) {
	err = m.step()
	if errors.Is(err, errStopToken) {
		return true, nil
	}
	return false, err
}

func (m *Machine) step() error {
	pc := m.pc
	raw, err := m.fetch()
	if err != nil {
		return err
	}
	op := OpCode(raw)
	if _, ok := opCodeToString[op]; !ok {
		return &ErrInvalidOpCode{opcode: op}
	}
	var operand byte
	if op.HasOperand() {
		if operand, err = m.arg(); err != nil {
			return err
		}
	}
	if t := m.conf.Tracer; t != nil && t.OnOpcode != nil {
		t.OnOpcode(pc, op, operand, m.acc)
	}
	switch op {
	case NOP:
	case STA:
		m.mem[operand] = m.acc
		if t := m.conf.Tracer; t != nil && t.OnMemWrite != nil {
			t.OnMemWrite(operand, m.acc)
		}
	case LDA:
		m.setAcc(m.mem[operand])
	case ADD:
		m.setAcc(m.acc + m.mem[operand])
	case OR:
		m.setAcc(m.acc | m.mem[operand])
	case AND:
		m.setAcc(m.acc & m.mem[operand])
	case NOT:
		m.setAcc(^m.acc)
	case JMP:
		m.pc = operand
	case JN:
		if m.StatusNegative() {
			m.pc = operand
		}
	case JZ:
		if m.StatusZero() {
			m.pc = operand
		}
	case HLT:
		return errStopToken
	}
	return nil
}

// fetch returns the byte under the program counter and advances it. Fetching
// past the last address raises ErrEndOfProgram on the following fetch.
func (m *Machine) fetch() (byte, error) {
	if m.status&statusEndOfProg != 0 {
		return 0, ErrEndOfProgram
	}
	b := m.mem[m.pc]
	if m.pc == MemSize-1 {
		m.status |= statusEndOfProg
	}
	m.pc++
	return b, nil
}

// arg fetches the one-byte address operand of the current instruction.
func (m *Machine) arg() (byte, error) {
	b, err := m.fetch()
	if errors.Is(err, ErrEndOfProgram) {
		return 0, ErrMissingArgument
	}
	return b, err
}

// setAcc stores val in the accumulator and updates the zero and negative
// flags from it. The end-of-program bit is left alone.
func (m *Machine) setAcc(val byte) {
	m.acc = val
	m.status &^= statusZero | statusNegative
	switch {
	case val == 0:
		m.status |= statusZero
	case val&0x80 != 0:
		m.status |= statusNegative
	}
}

// flag returns 0 or 1 for display purposes.
func flag(set bool) int {
	if set {
		return 1
	}
	return 0
}

// String renders the register state in decimal, hexadecimal and binary.
func (m *Machine) String() string {
	return fmt.Sprintf("STATE:\nAC: %d | 0x%X | 0b%b\nPC: %d | 0x%X | 0b%b\nN: %d, Z: %d",
		int8(m.acc), m.acc, m.acc,
		m.pc, m.pc, m.pc,
		flag(m.StatusNegative()), flag(m.StatusZero()))
}

// DumpMem writes the memory contents between start and end (inclusive) to w,
// four bytes per row. Rows are aligned to multiples of four, so the dump
// covers the whole rows containing start and end.
func (m *Machine) DumpMem(w io.Writer, start, end byte) {
	row := int(start) - int(start)%4
	for ; row <= int(end); row += 4 {
		fmt.Fprintf(w, "%02X (%03d): %02X %02X %02X %02X\n",
			row, row, m.mem[row], m.mem[row+1], m.mem[row+2], m.mem[row+3])
	}
}
