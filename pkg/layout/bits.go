// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package layout

import (
	"github.com/consensys/lil/pkg/expr"
)

// Fixed bit-spreading masks, from
// http://graphics.stanford.edu/~seander/bithacks.html#InterleaveBMN
const (
	spreadMask0 uint32 = 0x33333333
	spreadMask1 uint32 = 0x55555555
	// Mask selecting the low half of a word.
	lowHalfMask uint32 = 0x0000FFFF
)

// Interleave produces the Morton (Z-order) code of two indices, with j's bits
// occupying the even positions of the result and i's bits the odd positions.
// Both operands are expressions, hence the result is itself an expression
// built from a fixed, finite sequence of mask and shift operations.  No
// data-dependent branching occurs, which is what allows the code to be
// constructed symbolically.
func Interleave(i expr.Expr, j expr.Expr) expr.Expr {
	return expr.Or(spread(j), expr.ShiftLeft(spread(i), expr.Const(1)))
}

// Spread the bits of the low half of v, so that interleaving two spread
// operands becomes a disjunction.
func spread(v expr.Expr) expr.Expr {
	tmp := shiftMask(expr.And(v, expr.Const(lowHalfMask)), 2, spreadMask0)
	return shiftMask(tmp, 1, spreadMask1)
}

// shiftMask computes mask & ((v << s) | v).
func shiftMask(v expr.Expr, s uint32, mask uint32) expr.Expr {
	return expr.And(expr.Const(mask), expr.Or(expr.ShiftLeft(v, expr.Const(s)), v))
}

// hilbertOrder fixes the domain of the Hilbert transform: indices are treated
// as hilbertOrder-bit quantities, and the state recurrence below runs for
// exactly hilbertOrder-1 rounds.  The two must always agree.
const hilbertOrder = 16

// HilbertIndex produces the Hilbert-curve offset of two indices over a
// 2^16 x 2^16 domain.  The transform iterates a fixed bit-state recurrence
// and finishes with a Morton interleave of the derived odd/even bit planes.
// As with Interleave, the computation is a finite unrolled sequence of
// expression operations, hence it works uniformly on concrete and symbolic
// operands.
//
// Adapted from http://stackoverflow.com/a/313964, with r=16.
func HilbertIndex(i expr.Expr, j expr.Expr) expr.Expr {
	var (
		heven = expr.Xor(i, j)
		noti  = expr.And(expr.Not(i), expr.Const(lowHalfMask))
		notj  = expr.And(expr.Not(j), expr.Const(lowHalfMask))
		temp  = expr.Xor(noti, j)
		one   = expr.Const(1)
		v0    = expr.Const(0)
		v1    = expr.Const(0)
	)
	//
	for k := 1; k < hilbertOrder; k++ {
		// Both updates are computed against the previous round's state.
		w1 := expr.ShiftRight(
			expr.Or(
				expr.And(v1, heven),
				expr.And(expr.Xor(v0, notj), temp)),
			one)
		w0 := expr.ShiftRight(
			expr.Or(
				expr.And(v0, expr.Xor(v1, noti)),
				expr.And(expr.Not(v0), expr.Xor(v1, notj))),
			one)
		//
		v0, v1 = w0, w1
	}
	//
	hodd := expr.Or(
		expr.And(expr.Not(v0), expr.Xor(v1, i)),
		expr.And(v0, expr.Xor(v1, notj)))
	//
	return Interleave(hodd, heven)
}
