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
)

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug [flags] layout_decl",
	Short: "Print the derived properties of a layout declaration.",
	Long: `Print a given layout declaration along with its derived properties
	(total size, element size, logical extents) in order to debug it.`,
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
		//
		fmt.Printf("layout: %s\n", l)
		printProperty("size", l.Size())
		printProperty("elem size", l.ElemSize())
		printProperty("logical dim0", l.LogicalDim0())
		printProperty("logical dim1", l.LogicalDim1())
	},
}

// Print a derived property, evaluating it whenever it is concrete.
func printProperty(name string, e expr.Expr) {
	if value, err := e.Eval(nil); err == nil {
		fmt.Printf("%s: %d\n", name, value)
	} else {
		fmt.Printf("%s: %s\n", name, e.String())
	}
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
