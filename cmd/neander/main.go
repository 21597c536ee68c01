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

// neander simulates the Neander educational CPU.
package main

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli/v2"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "logging verbosity: 0=error, 1=warn, 2=info, 3=debug",
		Value: 1,
	}
	traceFlag = &cli.BoolFlag{
		Name:  "trace",
		Usage: "print every executed instruction",
	}
	vmFlag = &cli.BoolFlag{
		Name:  "vm",
		Usage: "run the computation on the emulated machine instead of natively",
	}
)

var app = &cli.App{
	Name:  "neander",
	Usage: "simulator for the Neander educational CPU",
	Flags: []cli.Flag{verbosityFlag},
	Commands: []*cli.Command{
		runCommand,
		consoleCommand,
		isaCommand,
		hammingCommand,
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newLogger builds the diagnostic logger gated by the --verbosity flag.
func newLogger(ctx *cli.Context) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	var opt level.Option
	switch ctx.Int(verbosityFlag.Name) {
	case 0:
		opt = level.AllowError()
	case 1:
		opt = level.AllowWarn()
	case 2:
		opt = level.AllowInfo()
	default:
		opt = level.AllowDebug()
	}
	return level.NewFilter(logger, opt)
}
