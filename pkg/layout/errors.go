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
	"fmt"

	"github.com/consensys/lil/pkg/expr"
)

// UnknownKindError signals a layout declaration whose kind matched no known
// layout name, even by prefix.
type UnknownKindError struct {
	// Name as written in the declaration.
	Name string
}

// Error implementation for the error interface.
func (p *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown layout: %s", p.Name)
}

// TerminalSizeError signals a declaration whose innermost element size is not
// the constant one.  Larger terminal block sizes are unsupported.
type TerminalSizeError struct {
	// Size expression as written in the declaration.
	Size expr.Expr
}

// Error implementation for the error interface.
func (p *TerminalSizeError) Error() string {
	return fmt.Sprintf("inner-most element must have size 1, not '%s'", p.Size.String())
}
