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

package hamming

import (
	"github.com/gui2maraes/neander/core/vm"
)

// Memory layout of the machine program. The operands are seeded at fixed
// addresses before the run; at halt the distance is in ResultAddr and in
// the accumulator.
const (
	OperandAAddr byte = 0x80
	OperandBAddr byte = 0x81
	ResultAddr   byte = 0x84

	diffAddr byte = 0x82 // A XOR B
	maskAddr byte = 0x83 // single-bit scan mask, seeded to 1
	oneAddr  byte = 0x85 // the constant 1
	tmpAddr  byte = 0x86 // scratch for the difference unit
)

// Code labels.
const (
	progLoop byte = 16 // top of the counting loop
	progSkip byte = 30 // shift the scan mask without incrementing
	progDone byte = 38 // load the result and halt
)

// Program returns the machine code of the Hamming distance computation.
//
// The difference unit computes A XOR B as (NOT A AND B) OR (NOT B AND A),
// since the machine has no XOR instruction. The population counter then
// walks a one-bit scan mask across the difference: the mask is shifted left
// by adding it to itself and the loop ends when it overflows the 8-bit
// register to zero, after visiting each of the 8 bit positions exactly
// once. The overflow bound is exact here because the register is as wide
// as the operands.
func Program() []byte {
	return []byte{
		// difference unit: diff = (NOT A AND B) OR (NOT B AND A)
		byte(vm.LDA), OperandAAddr,
		byte(vm.NOT),
		byte(vm.AND), OperandBAddr,
		byte(vm.STA), tmpAddr,
		byte(vm.LDA), OperandBAddr,
		byte(vm.NOT),
		byte(vm.AND), OperandAAddr,
		byte(vm.OR), tmpAddr,
		byte(vm.STA), diffAddr,
		// population counter.
		// loop: done once the mask has overflowed to zero.
		byte(vm.LDA), maskAddr,
		byte(vm.JZ), progDone,
		// count the bit if the mask hits a difference.
		byte(vm.AND), diffAddr,
		byte(vm.JZ), progSkip,
		byte(vm.LDA), ResultAddr,
		byte(vm.ADD), oneAddr,
		byte(vm.STA), ResultAddr,
		// skip: shift the mask left by adding it to itself.
		byte(vm.LDA), maskAddr,
		byte(vm.ADD), maskAddr,
		byte(vm.STA), maskAddr,
		byte(vm.JMP), progLoop,
		// done: leave the distance in the accumulator.
		byte(vm.LDA), ResultAddr,
		byte(vm.HLT),
	}
}

// Load writes the program into a machine's memory and seeds the operand,
// scan mask and constant cells. The counter and scratch cells are cleared.
func Load(m *vm.Machine, a, b byte) {
	mem := m.Mem()
	copy(mem, Program())
	mem[OperandAAddr] = a
	mem[OperandBAddr] = b
	mem[diffAddr] = 0
	mem[maskAddr] = 1
	mem[ResultAddr] = 0
	mem[oneAddr] = 1
	mem[tmpAddr] = 0
}

// MachineDistance computes Distance by running the machine program on a
// fresh Neander machine.
func MachineDistance(a, b byte) (int, error) {
	m := vm.New()
	Load(m, a, b)
	if err := m.Run(); err != nil {
		return 0, err
	}
	return int(m.Acc()), nil
}
