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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gui2maraes/neander/core/vm"
	"github.com/gui2maraes/neander/hamming"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		line string
		want directive
	}{
		{"step", directive{kind: dirStep}},
		{"s", directive{kind: dirStep}},
		{"step 10", directive{kind: dirStepN, n: 10}},
		{"s 3", directive{kind: dirStepN, n: 3}},
		{"breakpoint 10", directive{kind: dirBreak, a: 10}},
		{"bp 7", directive{kind: dirBreak, a: 7}},
		{"b 255", directive{kind: dirBreak, a: 255}},
		{"clear 10", directive{kind: dirClear, a: 10}},
		{"cl 0", directive{kind: dirClear, a: 0}},
		{"continue", directive{kind: dirContinue}},
		{"c", directive{kind: dirContinue}},
		{"cpu", directive{kind: dirPrintCPU}},
		{"show", directive{kind: dirPrintCPU}},
		{"print", directive{kind: dirPrintCPU}},
		{"mem", directive{kind: dirPrintMemRange, a: 0, b: 255}},
		{"mem 10", directive{kind: dirPrintMemAddr, a: 10}},
		{"mem 10..", directive{kind: dirPrintMemRange, a: 10, b: 255}},
		{"mem ..100", directive{kind: dirPrintMemRange, a: 0, b: 100}},
		{"mem 10..100", directive{kind: dirPrintMemRange, a: 10, b: 100}},
		{"help", directive{kind: dirHelp}},
		{"h", directive{kind: dirHelp}},
		{"quit", directive{kind: dirQuit}},
		{"q", directive{kind: dirQuit}},
		{"  step  ", directive{kind: dirStep}},
	}
	for _, tt := range tests {
		got, err := parseDirective(tt.line)
		require.NoError(t, err, tt.line)
		require.Equal(t, tt.want, got, tt.line)
	}
}

func TestParseDirectiveInvalid(t *testing.T) {
	invalid := []string{
		"c a",
		"continue 1",
		"breakpoint",
		"breakpoint -1",
		"breakpoint 256",
		"step ten",
		"mem ..",
		"mem 1..2..3",
		"mem 300",
		"bogus",
		"cpu now",
	}
	for _, line := range invalid {
		_, err := parseDirective(line)
		require.Error(t, err, line)
	}
}

func TestConsoleBreakpoints(t *testing.T) {
	c := new(console)
	c.m = vm.New()
	hamming.Load(c.m, 170, 85)
	c.bps[16] = true // top of the counting loop

	// Continuing runs to the breakpoint, not to the halt.
	c.cont()
	require.Equal(t, uint8(16), c.m.PC())

	// With the breakpoint cleared the program runs to completion.
	c.bps[16] = false
	c.cont()
	require.Equal(t, byte(8), c.m.Acc())
}

func TestConsoleStepLimit(t *testing.T) {
	c := new(console)
	c.m = vm.New()
	hamming.Load(c.m, 1, 0)
	c.resume(3)
	// LDA + NOT + AND: three instructions in, the PC sits at the STA.
	require.Equal(t, uint8(5), c.m.PC())
}

func TestConsoleStepZero(t *testing.T) {
	c := new(console)
	c.m = vm.New()
	hamming.Load(c.m, 1, 0)

	// `step 0` executes zero instructions; it must not run the program.
	dir, err := parseDirective("step 0")
	require.NoError(t, err)
	require.Equal(t, directive{kind: dirStepN, n: 0}, dir)
	require.False(t, c.exec(dir))
	require.Equal(t, uint8(0), c.m.PC())
}
