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
	"slices"

	"github.com/consensys/lil/pkg/util/source"
	"github.com/consensys/lil/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// COMMA signals an argument separator
const COMMA uint = 4

// NUMBER signals an integer number (decimal or hexadecimal)
const NUMBER uint = 5

// IDENTIFIER signals either a free variable or a layout kind.
const IDENTIFIER uint = 6

// PLUS signals integer addition
const PLUS uint = 7

// MINUS signals integer subtraction
const MINUS uint = 8

// STAR signals integer multiplication
const STAR uint = 9

// SLASH signals truncating integer division
const SLASH uint = 10

// PERCENT signals the remainder operation
const PERCENT uint = 11

// AMPERSAND signals bitwise conjunction
const AMPERSAND uint = 12

// PIPE signals bitwise disjunction
const PIPE uint = 13

// CARET signals bitwise exclusive-or
const CARET uint = 14

// TILDE signals bitwise complement
const TILDE uint = 15

// SHIFT_LEFT signals a left shift
const SHIFT_LEFT uint = 16

// SHIFT_RIGHT signals a logical right shift
const SHIFT_RIGHT uint = 17

// EQUALS signals an equality
const EQUALS uint = 18

// NOT_EQUALS signals a non-equality
const NOT_EQUALS uint = 19

// LESSTHAN signals a (strict) inequality X < Y
const LESSTHAN uint = 20

// LESSTHAN_EQUALS signals a (non-strict) inequality X <= Y
const LESSTHAN_EQUALS uint = 21

// GREATERTHAN signals a (strict) inequality X > Y
const GREATERTHAN uint = 22

// GREATERTHAN_EQUALS signals a (non-strict) inequality X >= Y
const GREATERTHAN_EQUALS uint = 23

// COMPARISONS captures the set of comparison operators.
var COMPARISONS = []uint{EQUALS, NOT_EQUALS, LESSTHAN, LESSTHAN_EQUALS, GREATERTHAN, GREATERTHAN_EQUALS}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n')))

// Rule for describing hexadecimal digits
var hexDigit lex.Scanner[rune] = lex.Or(
	lex.Within('0', '9'),
	lex.Within('a', 'f'),
	lex.Within('A', 'F'))

// Rule for describing numbers
var number lex.Scanner[rune] = lex.Or(
	lex.Sequence(lex.Unit('0', 'x'), lex.Many(hexDigit)),
	lex.Many(lex.Within('0', '9')))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.And(identifierStart, identifierRest)

// lexing rules.  Observe that rules are applied in order with the first match
// winning, hence multi-character operators must precede their prefixes.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit('+'), PLUS),
	lex.Rule(lex.Unit('-'), MINUS),
	lex.Rule(lex.Unit('*'), STAR),
	lex.Rule(lex.Unit('/'), SLASH),
	lex.Rule(lex.Unit('%'), PERCENT),
	lex.Rule(lex.Unit('&'), AMPERSAND),
	lex.Rule(lex.Unit('|'), PIPE),
	lex.Rule(lex.Unit('^'), CARET),
	lex.Rule(lex.Unit('~'), TILDE),
	lex.Rule(lex.Unit('=', '='), EQUALS),
	lex.Rule(lex.Unit('!', '='), NOT_EQUALS),
	lex.Rule(lex.Unit('<', '<'), SHIFT_LEFT),
	lex.Rule(lex.Unit('<', '='), LESSTHAN_EQUALS),
	lex.Rule(lex.Unit('<'), LESSTHAN),
	lex.Rule(lex.Unit('>', '>'), SHIFT_RIGHT),
	lex.Rule(lex.Unit('>', '='), GREATERTHAN_EQUALS),
	lex.Rule(lex.Unit('>'), GREATERTHAN),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex a given source file into a sequence of tokens, with any whitespace
// removed.  The resulting sequence is always terminated by an END_OF token.
// This fails if any text could not be matched against the lexing rules.
func Lex(srcfile *source.File) ([]lex.Token, *source.SyntaxError) {
	lexer := lex.NewLexer(srcfile.Contents(), rules...)
	// Lex as many tokens as possible
	tokens := lexer.Collect()
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		return nil, srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
	}
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	//
	return tokens, nil
}
