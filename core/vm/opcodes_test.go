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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpCodeString(t *testing.T) {
	for _, op := range OpCodes() {
		str := op.String()
		require.NotContains(t, str, "not defined")

		back, ok := StringToOp(str)
		require.True(t, ok, str)
		require.Equal(t, op, back)
	}
	require.Equal(t, "opcode 0x21 not defined", OpCode(0x21).String())
}

func TestOpCodeHasOperand(t *testing.T) {
	withOperand := map[OpCode]bool{
		NOP: false, STA: true, LDA: true, ADD: true, OR: true,
		AND: true, NOT: false, JMP: true, JN: true, JZ: true, HLT: false,
	}
	for op, want := range withOperand {
		require.Equal(t, want, op.HasOperand(), op.String())
	}
}

func TestOpCodeIsJump(t *testing.T) {
	for _, op := range OpCodes() {
		want := op == JMP || op == JN || op == JZ
		require.Equal(t, want, op.IsJump(), op.String())
	}
}
