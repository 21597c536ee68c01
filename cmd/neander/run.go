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

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli/v2"

	"github.com/gui2maraes/neander/core/memfile"
	"github.com/gui2maraes/neander/core/vm"
)

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "load a memory file and run it to halt, dumping memory and CPU state",
	ArgsUsage: "<file>",
	Flags:     []cli.Flag{traceFlag},
	Action:    runMemfile,
}

func runMemfile(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("run wants exactly one memory file argument")
	}
	logger := newLogger(ctx)

	var conf vm.Config
	if ctx.Bool(traceFlag.Name) {
		conf.Tracer = traceHooks(log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)))
	}
	m := vm.NewWithConfig(conf)
	if err := loadMemfile(m, ctx.Args().First()); err != nil {
		return err
	}
	if err := m.Run(); err != nil {
		// An exception still dumps whatever state the machine reached.
		level.Error(logger).Log("msg", "machine exception", "err", err)
	}
	m.DumpMem(os.Stdout, 0, vm.MemSize-1)
	fmt.Println(m)
	return nil
}

// loadMemfile parses the memory file at path into the machine's RAM.
func loadMemfile(m *vm.Machine, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return memfile.Parse(m.Mem(), string(src))
}

// traceHooks logs every executed instruction and memory store. Trace output
// bypasses the verbosity filter: it is the point of the --trace flag.
func traceHooks(logger log.Logger) *vm.Hooks {
	return &vm.Hooks{
		OnOpcode: func(pc uint8, op vm.OpCode, operand, acc byte) {
			logger.Log("pc", pc, "op", op.String(), "operand", operand, "acc", acc)
		},
		OnMemWrite: func(addr, val byte) {
			logger.Log("mem", addr, "store", val)
		},
	}
}
