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
package expr

import (
	"github.com/consensys/lil/pkg/util/source/sexp"
)

// BitWidth is the fixed width (in bits) of every value manipulated by an
// expression.  All arithmetic wraps modulo 2^BitWidth.
const BitWidth = 32

// Environment maps variable names to concrete values for the purposes of
// evaluating an expression.
type Environment map[string]uint32

// Expr represents an immutable fixed-width bitvector expression over zero or
// more free variables.  Expressions are built once and never mutated, hence
// sub-expressions may be shared structurally.  Construction is total; only
// concrete evaluation can fail.
type Expr interface {
	// Eval evaluates this expression under a given set of variable bindings,
	// producing a concrete value.  This fails if a free variable has no
	// binding, or a division by zero is encountered.
	Eval(env Environment) (uint32, error)
	// IsConstant determines whether or not this expression contains any free
	// variables.
	IsConstant() bool
	// Lisp converts this expression into its printable form, as consumed by
	// an external solver.
	Lisp() sexp.SExp
	// String generates a human-readable representation of this expression.
	String() string
}

// Op identifies the operator of a binary (or unary) expression.
type Op uint

// ADD represents 32-bit wrapping addition.
const ADD Op = 0

// SUB represents 32-bit wrapping subtraction.
const SUB Op = 1

// MUL represents 32-bit wrapping multiplication.
const MUL Op = 2

// DIV represents truncating unsigned division.
const DIV Op = 3

// REM represents the unsigned remainder operation.
const REM Op = 4

// AND represents bitwise conjunction.
const AND Op = 5

// OR represents bitwise disjunction.
const OR Op = 6

// XOR represents bitwise exclusive-or.
const XOR Op = 7

// SHL represents a left shift, where shifts of BitWidth or more produce zero.
const SHL Op = 8

// SHR represents a logical right shift, where shifts of BitWidth or more
// produce zero.
const SHR Op = 9

// EQ represents equality, evaluating to 1 (true) or 0 (false).
const EQ Op = 10

// NEQ represents non-equality, evaluating to 1 (true) or 0 (false).
const NEQ Op = 11

// LT represents a strict unsigned inequality X < Y.
const LT Op = 12

// LEQ represents a non-strict unsigned inequality X <= Y.
const LEQ Op = 13

// NOT represents (unary) bitwise complement.
const NOT Op = 14

// String returns the conventional symbol for this operator.
func (op Op) String() string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	case REM:
		return "%"
	case AND:
		return "&"
	case OR:
		return "|"
	case XOR:
		return "^"
	case SHL:
		return "<<"
	case SHR:
		return ">>"
	case EQ:
		return "=="
	case NEQ:
		return "!="
	case LT:
		return "<"
	case LEQ:
		return "<="
	case NOT:
		return "~"
	}
	//
	panic("unknown operator")
}
