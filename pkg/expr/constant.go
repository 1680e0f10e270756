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
	"strconv"

	"github.com/consensys/lil/pkg/util/source/sexp"
)

// Constant represents a concrete value within an expression.
type Constant struct{ Value uint32 }

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Expr = (*Constant)(nil)

// Const constructs an expression representing a given constant.
func Const(value uint32) Expr {
	return &Constant{value}
}

// AsConstant checks whether an arbitrary expression is a constant and, if so,
// returns its value.
func AsConstant(e Expr) (uint32, bool) {
	if c, ok := e.(*Constant); ok {
		return c.Value, true
	}
	//
	return 0, false
}

// Eval implementation for Expr interface.
func (p *Constant) Eval(Environment) (uint32, error) {
	return p.Value, nil
}

// IsConstant implementation for Expr interface.
func (p *Constant) IsConstant() bool {
	return true
}

// Lisp implementation for Expr interface.
func (p *Constant) Lisp() sexp.SExp {
	return sexp.NewSymbol(strconv.FormatUint(uint64(p.Value), 10))
}

func (p *Constant) String() string {
	return p.Lisp().String()
}
