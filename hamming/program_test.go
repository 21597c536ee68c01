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
	"testing"

	"github.com/gui2maraes/neander/core/vm"
	"github.com/stretchr/testify/require"
)

func TestProgramLayout(t *testing.T) {
	prog := Program()
	// The program must not run into the data cells.
	require.Less(t, len(prog), int(OperandAAddr))
	require.Equal(t, vm.HLT, vm.OpCode(prog[len(prog)-1]))
	// Label sanity: every jump lands on an instruction boundary we named.
	require.Equal(t, vm.LDA, vm.OpCode(prog[progLoop]))
	require.Equal(t, vm.LDA, vm.OpCode(prog[progSkip]))
	require.Equal(t, vm.LDA, vm.OpCode(prog[progDone]))
}

func TestMachineDistanceScenarios(t *testing.T) {
	tests := []struct {
		a, b byte
		want int
	}{
		{5, 3, 2},
		{0, 0, 0},
		{255, 0, 8},
		{170, 85, 8},
		{12, 10, 2},
	}
	for _, tt := range tests {
		got, err := MachineDistance(tt.a, tt.b)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "MachineDistance(%d, %d)", tt.a, tt.b)
	}
}

// The machine program and the native routine must agree on every input.
func TestMachineDistanceMatchesNative(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			got, err := MachineDistance(byte(a), byte(b))
			if err != nil {
				t.Fatalf("MachineDistance(%d, %d): %v", a, b, err)
			}
			if want := Distance(byte(a), byte(b)); got != want {
				t.Fatalf("MachineDistance(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestMachineDistanceResultCell(t *testing.T) {
	m := vm.New()
	Load(m, 0xf0, 0x0f)
	require.NoError(t, m.Run())
	require.Equal(t, byte(8), m.MemAt(ResultAddr))
	require.Equal(t, byte(8), m.Acc())
	// The scan mask overflowed to zero; that is the loop's exit condition.
	require.Equal(t, byte(0), m.MemAt(maskAddr))
}

// The counting loop executes exactly Width iterations: the scan mask visits
// every bit position once before overflowing to zero.
func TestMachineDistanceIterationCount(t *testing.T) {
	shifts := 0
	m := vm.NewWithConfig(vm.Config{Tracer: &vm.Hooks{
		OnOpcode: func(pc uint8, op vm.OpCode, operand, acc byte) {
			// The only ADD against the mask cell is the shift.
			if op == vm.ADD && operand == maskAddr {
				shifts++
			}
		},
	}})
	Load(m, 0xaa, 0x55)
	require.NoError(t, m.Run())
	require.Equal(t, Width, shifts)
}
