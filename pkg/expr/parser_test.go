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
	"testing"
)

func TestParseTerm_1(t *testing.T) {
	CheckParse(t, "1", "1")
}

func TestParseTerm_2(t *testing.T) {
	CheckParse(t, "x", "x")
}

func TestParseTerm_3(t *testing.T) {
	CheckParse(t, "(x)", "x")
}

func TestParseTerm_4(t *testing.T) {
	// hexadecimal literals
	CheckParse(t, "0xff", "255")
}

func TestParseTerm_5(t *testing.T) {
	// literals are truncated to 32 bits
	CheckParse(t, "0x1FFFFFFFF", "4294967295")
}

func TestParsePrecedence_1(t *testing.T) {
	CheckParse(t, "1 + 2 * 3", "(+ 1 (* 2 3))")
}

func TestParsePrecedence_2(t *testing.T) {
	CheckParse(t, "(1 + 2) * 3", "(* (+ 1 2) 3)")
}

func TestParsePrecedence_3(t *testing.T) {
	CheckParse(t, "1 + 2 << 3", "(<< (+ 1 2) 3)")
}

func TestParsePrecedence_4(t *testing.T) {
	CheckParse(t, "1 << 2 & 3", "(& (<< 1 2) 3)")
}

func TestParsePrecedence_5(t *testing.T) {
	CheckParse(t, "1 & 2 ^ 3", "(^ (& 1 2) 3)")
}

func TestParsePrecedence_6(t *testing.T) {
	CheckParse(t, "1 ^ 2 | 3", "(| (^ 1 2) 3)")
}

func TestParsePrecedence_7(t *testing.T) {
	CheckParse(t, "1 | 2 == 3", "(== (| 1 2) 3)")
}

func TestParsePrecedence_8(t *testing.T) {
	CheckParse(t, "~x + 1", "(+ (~ x) 1)")
}

func TestParsePrecedence_9(t *testing.T) {
	CheckParse(t, "~~x", "(~ (~ x))")
}

func TestParseAssoc_1(t *testing.T) {
	CheckParse(t, "1 - 2 - 3", "(- (- 1 2) 3)")
}

func TestParseAssoc_2(t *testing.T) {
	CheckParse(t, "8 / 4 / 2", "(/ (/ 8 4) 2)")
}

func TestParseAssoc_3(t *testing.T) {
	CheckParse(t, "x << 1 << 2", "(<< (<< x 1) 2)")
}

func TestParseComparison_1(t *testing.T) {
	CheckParse(t, "x < y", "(< x y)")
}

func TestParseComparison_2(t *testing.T) {
	// greater-than is rewritten as less-than with operands swapped
	CheckParse(t, "x > y", "(< y x)")
}

func TestParseComparison_3(t *testing.T) {
	CheckParse(t, "x >= y", "(<= y x)")
}

func TestParseComparison_4(t *testing.T) {
	CheckParse(t, "x != y + 1", "(!= x (+ y 1))")
}

func TestParseShiftLexing_1(t *testing.T) {
	// << must not lex as two less-thans
	CheckParse(t, "x<<2", "(<< x 2)")
}

func TestParseShiftLexing_2(t *testing.T) {
	CheckParse(t, "x<=2", "(<= x 2)")
}

func TestParseEval_1(t *testing.T) {
	e, err := Parse("(i / 2) * 16 + (i % 2) * 4")
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	CheckEval(t, e, Environment{"i": 3}, 20)
}

func TestParseInvalid_1(t *testing.T) {
	CheckParseFails(t, "")
}

func TestParseInvalid_2(t *testing.T) {
	CheckParseFails(t, "1 +")
}

func TestParseInvalid_3(t *testing.T) {
	CheckParseFails(t, "(1 + 2")
}

func TestParseInvalid_4(t *testing.T) {
	// trailing garbage
	CheckParseFails(t, "1 2")
}

func TestParseInvalid_5(t *testing.T) {
	// unknown character
	CheckParseFails(t, "1 @ 2")
}

func TestParseInvalid_6(t *testing.T) {
	// comparisons do not associate
	CheckParseFails(t, "1 < 2 < 3")
}

// ===================================================================

func CheckParse(t *testing.T, input string, expected string) {
	e, err := Parse(input)
	//
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if s := e.String(); s != expected {
		t.Errorf("got %s, expected %s", s, expected)
	}
}

func CheckParseFails(t *testing.T, input string) {
	if _, err := Parse(input); err == nil {
		t.Errorf("expected parse failure for %s", input)
	}
}
