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

// Package hamming computes the Hamming distance between two bytes: the
// number of bit positions at which they differ. The computation exists in
// two renditions, a native Go routine and a program for the Neander
// machine, which agree on every input.
package hamming

// Width is the operand width in bits, the Neander machine's native register
// width.
const Width = 8

// Distance returns the number of bit positions at which a and b differ.
//
// The scan loop is bounded by Width rather than running until the mask
// overflows to zero, so widening the mask's type can never turn it into an
// infinite loop.
func Distance(a, b byte) int {
	diff := a ^ b
	count := 0
	for bit, mask := 0, byte(1); bit < Width; bit, mask = bit+1, mask<<1 {
		if diff&mask != 0 {
			count++
		}
	}
	return count
}
