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

// Config holds the machine's optional execution settings.
type Config struct {
	Tracer *Hooks
}

// Hooks is the set of tracer callbacks invoked while the machine executes.
// Nil hooks are skipped.
type Hooks struct {
	// OnOpcode is called before every decoded instruction executes, with
	// the program counter the instruction was fetched from, its operand
	// (zero for operand-less instructions) and the accumulator value at
	// that point.
	OnOpcode func(pc uint8, op OpCode, operand, acc byte)

	// OnMemWrite is called after a STA stores the accumulator to memory.
	OnMemWrite func(addr, val byte)
}
