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

// Unary represents the application of a unary operator to a sub-expression.
type Unary struct {
	Op  Op
	Arg Expr
}

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Expr = (*Unary)(nil)

// Not constructs the bitwise complement of an expression.
func Not(arg Expr) Expr { return &Unary{NOT, arg} }

// Eval implementation for Expr interface.
func (p *Unary) Eval(env Environment) (uint32, error) {
	arg, err := p.Arg.Eval(env)
	if err != nil {
		return 0, err
	}
	// Apply operator
	switch p.Op {
	case NOT:
		return ^arg, nil
	}
	//
	panic("unknown operator")
}

// IsConstant implementation for Expr interface.
func (p *Unary) IsConstant() bool {
	return p.Arg.IsConstant()
}

// Lisp implementation for Expr interface.
func (p *Unary) Lisp() sexp.SExp {
	return sexp.NewList(sexp.NewSymbol(p.Op.String()), p.Arg.Lisp())
}

func (p *Unary) String() string {
	return p.Lisp().String()
}
