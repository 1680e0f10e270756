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

// Binary represents the application of a binary operator to two
// sub-expressions.
type Binary struct {
	Op  Op
	Lhs Expr
	Rhs Expr
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Expr = (*Binary)(nil)

// Add constructs the (wrapping) sum of two expressions.
func Add(lhs Expr, rhs Expr) Expr { return &Binary{ADD, lhs, rhs} }

// Sub constructs the (wrapping) difference of two expressions.
func Sub(lhs Expr, rhs Expr) Expr { return &Binary{SUB, lhs, rhs} }

// Mul constructs the (wrapping) product of two expressions.
func Mul(lhs Expr, rhs Expr) Expr { return &Binary{MUL, lhs, rhs} }

// Div constructs the truncating (unsigned) quotient of two expressions.
func Div(lhs Expr, rhs Expr) Expr { return &Binary{DIV, lhs, rhs} }

// Rem constructs the (unsigned) remainder of two expressions.
func Rem(lhs Expr, rhs Expr) Expr { return &Binary{REM, lhs, rhs} }

// And constructs the bitwise conjunction of two expressions.
func And(lhs Expr, rhs Expr) Expr { return &Binary{AND, lhs, rhs} }

// Or constructs the bitwise disjunction of two expressions.
func Or(lhs Expr, rhs Expr) Expr { return &Binary{OR, lhs, rhs} }

// Xor constructs the bitwise exclusive-or of two expressions.
func Xor(lhs Expr, rhs Expr) Expr { return &Binary{XOR, lhs, rhs} }

// ShiftLeft constructs a left shift of one expression by another.
func ShiftLeft(lhs Expr, rhs Expr) Expr { return &Binary{SHL, lhs, rhs} }

// ShiftRight constructs a logical right shift of one expression by another.
func ShiftRight(lhs Expr, rhs Expr) Expr { return &Binary{SHR, lhs, rhs} }

// Equals constructs an equality between two expressions.
func Equals(lhs Expr, rhs Expr) Expr { return &Binary{EQ, lhs, rhs} }

// NotEquals constructs a non-equality between two expressions.
func NotEquals(lhs Expr, rhs Expr) Expr { return &Binary{NEQ, lhs, rhs} }

// LessThan constructs a strict inequality between two expressions.
func LessThan(lhs Expr, rhs Expr) Expr { return &Binary{LT, lhs, rhs} }

// LessThanEquals constructs a non-strict inequality between two expressions.
func LessThanEquals(lhs Expr, rhs Expr) Expr { return &Binary{LEQ, lhs, rhs} }

// Eval implementation for Expr interface.
func (p *Binary) Eval(env Environment) (uint32, error) {
	// Evaluate left-hand side
	lhs, err := p.Lhs.Eval(env)
	if err != nil {
		return 0, err
	}
	// Evaluate right-hand side
	rhs, err := p.Rhs.Eval(env)
	if err != nil {
		return 0, err
	}
	// Apply operator
	switch p.Op {
	case ADD:
		return lhs + rhs, nil
	case SUB:
		return lhs - rhs, nil
	case MUL:
		return lhs * rhs, nil
	case DIV:
		if rhs == 0 {
			return 0, &DivisionByZeroError{}
		}

		return lhs / rhs, nil
	case REM:
		if rhs == 0 {
			return 0, &DivisionByZeroError{}
		}

		return lhs % rhs, nil
	case AND:
		return lhs & rhs, nil
	case OR:
		return lhs | rhs, nil
	case XOR:
		return lhs ^ rhs, nil
	case SHL:
		// NOTE: shifts of BitWidth or more produce zero, per Go semantics for
		// unsigned operands.
		return lhs << rhs, nil
	case SHR:
		return lhs >> rhs, nil
	case EQ:
		return truth(lhs == rhs), nil
	case NEQ:
		return truth(lhs != rhs), nil
	case LT:
		return truth(lhs < rhs), nil
	case LEQ:
		return truth(lhs <= rhs), nil
	}
	//
	panic("unknown operator")
}

// IsConstant implementation for Expr interface.
func (p *Binary) IsConstant() bool {
	return p.Lhs.IsConstant() && p.Rhs.IsConstant()
}

// Lisp implementation for Expr interface.
func (p *Binary) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol(p.Op.String()), p.Lhs.Lisp(), p.Rhs.Lisp())
}

func (p *Binary) String() string {
	return p.Lisp().String()
}

// Convert a boolean outcome into its bitvector encoding.
func truth(condition bool) uint32 {
	if condition {
		return 1
	}
	//
	return 0
}
