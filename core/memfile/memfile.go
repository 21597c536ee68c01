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

// Package memfile parses Neander memory files: a sequence of
// whitespace-separated byte values written into memory at an advancing
// cursor. A value is a decimal number (possibly negative, two's
// complement) or a 0x-prefixed hexadecimal number. The directive `org N`
// moves the cursor to N, and `;` starts a comment that runs to the end of
// the line.
package memfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies memory file parse failures.
type ErrorKind int

const (
	InvalidDigit ErrorKind = iota
	OutOfRangeInteger
	MemoryOverflow
)

// ParseError describes the first malformed token of a memory file.
type ParseError struct {
	Line  int // 1-based
	Kind  ErrorKind
	Token string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidDigit:
		return fmt.Sprintf("invalid number in line %d: %s", e.Line, e.Token)
	case OutOfRangeInteger:
		return fmt.Sprintf("out of range integer in line %d: %s", e.Line, e.Token)
	default:
		return "memory cursor overflow"
	}
}

// Parse fills mem from the memory file source, stopping at the first error.
// Writing past the end of mem is a MemoryOverflow error.
func Parse(mem []byte, src string) error {
	cursor := 0
	org := false
	for i, line := range strings.Split(src, "\n") {
		if c := strings.IndexByte(line, ';'); c >= 0 {
			line = line[:c]
		}
		for _, tok := range strings.Fields(line) {
			if cursor >= len(mem) {
				return &ParseError{Line: i + 1, Kind: MemoryOverflow, Token: tok}
			}
			if !org && (tok == "org" || tok == "ORG") {
				org = true
				continue
			}
			val, kind, ok := parseByte(tok)
			if !ok {
				return &ParseError{Line: i + 1, Kind: kind, Token: tok}
			}
			if org {
				cursor = int(val)
				org = false
			} else {
				mem[cursor] = val
				cursor++
			}
		}
	}
	return nil
}

func parseByte(tok string) (byte, ErrorKind, bool) {
	var (
		val uint64
		err error
	)
	switch {
	case strings.HasPrefix(tok, "0x"):
		val, err = strconv.ParseUint(tok[2:], 16, 8)
	case strings.HasPrefix(tok, "-"):
		var sval int64
		sval, err = strconv.ParseInt(tok, 10, 8)
		val = uint64(byte(sval))
	default:
		val, err = strconv.ParseUint(tok, 10, 8)
	}
	if err != nil {
		kind := InvalidDigit
		if errors.Is(err, strconv.ErrRange) {
			kind = OutOfRangeInteger
		}
		return 0, kind, false
	}
	return byte(val), 0, true
}
