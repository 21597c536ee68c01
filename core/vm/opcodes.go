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

package vm

import (
	"fmt"
)

// OpCode is a Neander machine opcode.
type OpCode byte

// The Neander instruction set. The opcode occupies the high nibble and the
// low nibble is zero. The machine decodes the full byte, so e.g. 0x21 is an
// invalid instruction, not LDA.
const (
	NOP OpCode = 0x00
	STA OpCode = 0x10 // store accumulator at address
	LDA OpCode = 0x20 // load accumulator from address
	ADD OpCode = 0x30 // two's complement wrapping add
	OR  OpCode = 0x40
	AND OpCode = 0x50
	NOT OpCode = 0x60
	JMP OpCode = 0x80
	JN  OpCode = 0x90 // jump if the negative flag is set
	JZ  OpCode = 0xa0 // jump if the zero flag is set
	HLT OpCode = 0xf0
)

// HasOperand reports whether the instruction is followed by a one-byte
// memory address.
func (op OpCode) HasOperand() bool {
	switch op {
	case STA, LDA, ADD, OR, AND, JMP, JN, JZ:
		return true
	}
	return false
}

// IsJump reports whether the instruction transfers control.
func (op OpCode) IsJump() bool {
	return op == JMP || op == JN || op == JZ
}

var opCodeToString = map[OpCode]string{
	NOP: "NOP",
	STA: "STA",
	LDA: "LDA",
	ADD: "ADD",
	OR:  "OR",
	AND: "AND",
	NOT: "NOT",
	JMP: "JMP",
	JN:  "JN",
	JZ:  "JZ",
	HLT: "HLT",
}

func (op OpCode) String() string {
	str := opCodeToString[op]
	if len(str) == 0 {
		return fmt.Sprintf("opcode %#x not defined", int(op))
	}
	return str
}

var stringToOp = map[string]OpCode{
	"NOP": NOP,
	"STA": STA,
	"LDA": LDA,
	"ADD": ADD,
	"OR":  OR,
	"AND": AND,
	"NOT": NOT,
	"JMP": JMP,
	"JN":  JN,
	"JZ":  JZ,
	"HLT": HLT,
}

// StringToOp finds the opcode whose mnemonic is the given string.
func StringToOp(str string) (OpCode, bool) {
	op, ok := stringToOp[str]
	return op, ok
}

// OpCodes returns the instruction set in encoding order.
func OpCodes() []OpCode {
	return []OpCode{NOP, STA, LDA, ADD, OR, AND, NOT, JMP, JN, JZ, HLT}
}
