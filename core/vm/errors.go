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
	"errors"
	"fmt"
)

// List of execution exceptions the machine can raise.
var (
	ErrEndOfProgram    = errors.New("reached end of program")
	ErrMissingArgument = errors.New("missing argument to instruction")
)

// errStopToken is returned internally when a HLT instruction executes. It is
// never surfaced to callers.
var errStopToken = errors.New("stop token")

// ErrInvalidOpCode is raised when the byte under the program counter does not
// decode to any instruction.
type ErrInvalidOpCode struct {
	opcode OpCode
}

func (e *ErrInvalidOpCode) Error() string {
	return fmt.Sprintf("invalid instruction: %x", byte(e.opcode))
}
