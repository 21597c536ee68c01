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
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/gui2maraes/neander/core/vm"
)

var isaCommand = &cli.Command{
	Name:   "isa",
	Usage:  "print a table of all instructions and their codes",
	Action: printISA,
}

func printISA(ctx *cli.Context) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Instr", "Dec", "Hex", "Operand"})
	for _, op := range vm.OpCodes() {
		operand := ""
		if op.HasOperand() {
			operand = "addr"
		}
		table.Append([]string{
			op.String(),
			strconv.Itoa(int(op)),
			fmt.Sprintf("%X", int(op)),
			operand,
		})
	}
	table.Render()
	return nil
}
