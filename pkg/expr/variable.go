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

// Variable represents a named free variable within an expression.  A variable
// only acquires a value during concrete evaluation, via the environment.
type Variable struct{ Name string }

// NOTE: This is used for compile time type checking if the given type
// satisfies the given interface.
var _ Expr = (*Variable)(nil)

// Var constructs an expression representing a given free variable.
func Var(name string) Expr {
	return &Variable{name}
}

// Eval implementation for Expr interface.
func (p *Variable) Eval(env Environment) (uint32, error) {
	if value, ok := env[p.Name]; ok {
		return value, nil
	}
	//
	return 0, &UnboundVariableError{p.Name}
}

// IsConstant implementation for Expr interface.
func (p *Variable) IsConstant() bool {
	return false
}

// Lisp implementation for Expr interface.
func (p *Variable) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Name)
}

func (p *Variable) String() string {
	return p.Name
}
