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
	"fmt"
)

// UnboundVariableError signals that concrete evaluation encountered a free
// variable with no binding in the environment.
type UnboundVariableError struct {
	// Name of the offending variable.
	Name string
}

// Error implementation for the error interface.
func (p *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable '%s'", p.Name)
}

// DivisionByZeroError signals that concrete evaluation encountered a division
// (or remainder) whose divisor evaluated to zero.
type DivisionByZeroError struct{}

// Error implementation for the error interface.
func (p *DivisionByZeroError) Error() string {
	return "division by zero"
}
