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
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate [flags] layout_decl",
	Short: "Translate logical indices into a physical offset.",
	Long: `Translate logical indices (i, j) into a physical offset for a given
	layout declaration.  Indices are expressions, hence they can be concrete
	(e.g. 3), symbolic (e.g. i) or mixed (e.g. i*3).  The resulting offset
	expression is printed, along with its value whenever it can be
	evaluated.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Parse layout declaration
		l := readLayoutDecl(args[0])
		// Parse index expressions
		i := readIndexExpr(GetString(cmd, "i"))
		j := readIndexExpr(GetString(cmd, "j"))
		// Parse bindings (if any)
		env := readBindings(GetString(cmd, "bindings"))
		// Go!
		offset := l.Translate(i, j)
		//
		fmt.Printf("f(%s, %s) = %s\n", i, j, offset)
		// Print the concrete offset whenever evaluation is possible.
		if value, err := offset.Eval(env); err == nil {
			fmt.Printf("f(%s, %s) = %d\n", i, j, value)
		} else if offset.IsConstant() || len(env) > 0 {
			reportError(err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().String("i", "i", "expression for logical index i")
	translateCmd.Flags().String("j", "j", "expression for logical index j")
	translateCmd.Flags().String("bindings", "", "comma-separated name=value bindings for evaluation")
}
