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
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/lil/pkg/expr"
	"github.com/consensys/lil/pkg/layout"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] layout_decl layout_decl",
	Short: "Check two layout declarations for equivalence.",
	Long: `Check whether two layout declarations place every logical index at
	the same physical offset.  With fully concrete dimensions the logical
	domain is enumerated exhaustively; otherwise, the two symbolic offset
	expressions are printed in a form suitable for an external solver.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Parse layout declarations
		first := readLayoutDecl(args[0])
		second := readLayoutDecl(args[1])
		// Enumerate when concrete, otherwise defer to a solver.
		if dim0, dim1, ok := concreteDomain(first, second); ok {
			checkExhaustively(first, second, dim0, dim1)
		} else {
			i, j := expr.Var("i"), expr.Var("j")
			//
			fmt.Printf("f1(i, j) = %s\n", first.Translate(i, j))
			fmt.Printf("f2(i, j) = %s\n", second.Translate(i, j))
		}
	},
}

// Determine the common logical domain of two layouts, insofar as both are
// fully concrete.  Layouts with differing logical extents never place all
// indices identically, and are reported as such.
func concreteDomain(first *layout.Layout, second *layout.Layout) (uint32, uint32, bool) {
	dim0, err0 := first.LogicalDim0().Eval(nil)
	dim1, err1 := first.LogicalDim1().Eval(nil)
	sdim0, err2 := second.LogicalDim0().Eval(nil)
	sdim1, err3 := second.LogicalDim1().Eval(nil)
	//
	if err0 != nil || err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, false
	}
	//
	if dim0 != sdim0 || dim1 != sdim1 {
		fmt.Printf("logical extents differ: %dx%d vs %dx%d\n", dim0, dim1, sdim0, sdim1)
		os.Exit(1)
	}
	//
	return dim0, dim1, true
}

// Compare two layouts at every logical index of their (shared, concrete)
// domain, reporting the first mismatch.
func checkExhaustively(first *layout.Layout, second *layout.Layout, dim0 uint32, dim1 uint32) {
	log.Debugf("checking %d x %d logical indices", dim0, dim1)
	//
	for i := uint32(0); i < dim0; i++ {
		for j := uint32(0); j < dim1; j++ {
			iexpr, jexpr := expr.Const(i), expr.Const(j)
			//
			lhs, err := first.Translate(iexpr, jexpr).Eval(nil)
			if err == nil {
				var rhs uint32
				//
				rhs, err = second.Translate(iexpr, jexpr).Eval(nil)
				//
				if err == nil && lhs != rhs {
					fmt.Printf("layouts differ at (%d, %d): %d vs %d\n", i, j, lhs, rhs)
					os.Exit(1)
				}
			}
			//
			if err != nil {
				reportError(err)
				os.Exit(2)
			}
		}
	}
	//
	fmt.Printf("layouts agree on all %d x %d logical indices\n", dim0, dim1)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
