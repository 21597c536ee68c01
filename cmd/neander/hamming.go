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
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/gui2maraes/neander/hamming"
)

var hammingCommand = &cli.Command{
	Name:      "hamming",
	Usage:     "compute the Hamming distance between two bytes",
	ArgsUsage: "<a> <b>",
	Flags:     []cli.Flag{vmFlag},
	Action:    hammingDistance,
}

func hammingDistance(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("hamming wants exactly two byte arguments")
	}
	a, err := parseOperand(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := parseOperand(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	var dist int
	if ctx.Bool(vmFlag.Name) {
		if dist, err = hamming.MachineDistance(a, b); err != nil {
			return err
		}
	} else {
		dist = hamming.Distance(a, b)
	}
	fmt.Println(dist)
	return nil
}

// parseOperand accepts decimal, 0x-hex and 0b-binary byte values.
func parseOperand(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: must be a byte value", s)
	}
	return byte(v), nil
}
