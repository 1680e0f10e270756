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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/lil/pkg/expr"
	"github.com/consensys/lil/pkg/layout"
	"github.com/consensys/lil/pkg/util/source"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a layout declaration, reporting any errors and exiting on failure.
func readLayoutDecl(text string) *layout.Layout {
	l, err := layout.Parse(text)
	if err == nil {
		return l
	}
	// Report error & exit
	reportError(err)
	os.Exit(4)
	// unreachable
	return nil
}

// Parse an index expression, reporting any errors and exiting on failure.
func readIndexExpr(text string) expr.Expr {
	e, err := expr.Parse(text)
	if err == nil {
		return e
	}
	// Report error & exit
	reportError(err)
	os.Exit(4)
	// unreachable
	return nil
}

// Parse a comma-separated list of name=value bindings into an evaluation
// environment.
func readBindings(text string) expr.Environment {
	env := expr.Environment{}
	//
	if text == "" {
		return env
	}
	//
	for _, binding := range strings.Split(text, ",") {
		name, value, ok := strings.Cut(binding, "=")
		if !ok {
			fmt.Printf("malformed binding: %s\n", binding)
			os.Exit(2)
		}
		// NOTE: base 0 supports the 0x prefix for hexadecimal values.
		number, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			fmt.Printf("malformed binding: %s\n", binding)
			os.Exit(2)
		}
		//
		env[name] = uint32(number)
	}
	//
	return env
}

// Report a given error, using highlighting when the error identifies a span of
// the original text.
func reportError(err error) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		printSyntaxError(serr)
	} else {
		fmt.Println(err)
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line (clamped to the terminal width, when known)
	text := line.String()
	if width, ok := terminalWidth(); ok && len(text) > width {
		text = text[:width]
	}

	fmt.Println(text)
	// Print indent
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", max(1, length)))
}

// Determine the width of the enclosing terminal, if there is one.
func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return 0, false
	}
	//
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, false
	}
	//
	return width, true
}
