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
	"math/big"
	"slices"

	"github.com/consensys/lil/pkg/util/source"
	"github.com/consensys/lil/pkg/util/source/lex"
)

// Parse a given input string into an expression.  Every integer literal is
// lifted into a constant, and every identifier into a free variable.  This
// fails if the input is malformed, or there is trailing garbage.
func Parse(text string) (Expr, error) {
	srcfile := source.NewSourceFile("expr", []byte(text))
	// Lex input into tokens
	tokens, err := Lex(srcfile)
	if err != nil {
		return nil, err
	}
	//
	parser := NewParser(srcfile, tokens)
	// Parse term
	e, err := parser.ParseExpr()
	// Check all parsed
	if err == nil && !parser.Done() {
		return nil, parser.SyntaxError(parser.Lookahead(0), "unknown token")
	} else if err != nil {
		return nil, err
	}
	// All good!
	return e, nil
}

// Parser provides a general-purpose parser for arithmetic expressions over
// free variables, following the usual rules of operator precedence.  The
// parser operates over a shared token stream, such that other grammars (e.g.
// layout declarations) can embed expressions within themselves.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// NewParser constructs a new parser over a given token stream, as produced by
// Lex.
func NewParser(srcfile *source.File, tokens []lex.Token) *Parser {
	return &Parser{srcfile, tokens, 0}
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

// ParseExpr parses a complete expression beginning at the current position,
// stopping at the first token which cannot continue it (e.g. a comma or
// closing brace of an enclosing grammar).
func (p *Parser) ParseExpr() (Expr, *source.SyntaxError) {
	return p.parseComparison()
}

// Comparisons bind loosest of all, and do not associate.
func (p *Parser) parseComparison() (Expr, *source.SyntaxError) {
	lhs, err := p.parseBitOr()
	// Check for infix comparison
	if err != nil || !p.Follows(COMPARISONS...) {
		return lhs, err
	}
	// Accept comparison
	token := p.Lookahead(0)
	p.expect(token.Kind)
	// Parse rhs
	rhs, err := p.parseBitOr()
	//
	if err != nil {
		return nil, err
	}
	//
	switch token.Kind {
	case EQUALS:
		return Equals(lhs, rhs), nil
	case NOT_EQUALS:
		return NotEquals(lhs, rhs), nil
	case LESSTHAN:
		return LessThan(lhs, rhs), nil
	case LESSTHAN_EQUALS:
		return LessThanEquals(lhs, rhs), nil
	case GREATERTHAN:
		return LessThan(rhs, lhs), nil
	case GREATERTHAN_EQUALS:
		return LessThanEquals(rhs, lhs), nil
	}
	//
	panic("unreachable")
}

func (p *Parser) parseBitOr() (Expr, *source.SyntaxError) {
	lhs, err := p.parseBitXor()
	//
	for err == nil && p.Match(PIPE) {
		var rhs Expr
		//
		rhs, err = p.parseBitXor()
		if err == nil {
			lhs = Or(lhs, rhs)
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseBitXor() (Expr, *source.SyntaxError) {
	lhs, err := p.parseBitAnd()
	//
	for err == nil && p.Match(CARET) {
		var rhs Expr
		//
		rhs, err = p.parseBitAnd()
		if err == nil {
			lhs = Xor(lhs, rhs)
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseBitAnd() (Expr, *source.SyntaxError) {
	lhs, err := p.parseShift()
	//
	for err == nil && p.Match(AMPERSAND) {
		var rhs Expr
		//
		rhs, err = p.parseShift()
		if err == nil {
			lhs = And(lhs, rhs)
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseShift() (Expr, *source.SyntaxError) {
	lhs, err := p.parseAdditive()
	//
	for err == nil && p.Follows(SHIFT_LEFT, SHIFT_RIGHT) {
		var (
			rhs  Expr
			kind = p.Lookahead(0).Kind
		)
		//
		p.expect(kind)
		//
		rhs, err = p.parseAdditive()
		//
		switch {
		case err != nil:
		case kind == SHIFT_LEFT:
			lhs = ShiftLeft(lhs, rhs)
		default:
			lhs = ShiftRight(lhs, rhs)
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseAdditive() (Expr, *source.SyntaxError) {
	lhs, err := p.parseMultiplicative()
	//
	for err == nil && p.Follows(PLUS, MINUS) {
		var (
			rhs  Expr
			kind = p.Lookahead(0).Kind
		)
		//
		p.expect(kind)
		//
		rhs, err = p.parseMultiplicative()
		//
		switch {
		case err != nil:
		case kind == PLUS:
			lhs = Add(lhs, rhs)
		default:
			lhs = Sub(lhs, rhs)
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseMultiplicative() (Expr, *source.SyntaxError) {
	lhs, err := p.parseUnary()
	//
	for err == nil && p.Follows(STAR, SLASH, PERCENT) {
		var (
			rhs  Expr
			kind = p.Lookahead(0).Kind
		)
		//
		p.expect(kind)
		//
		rhs, err = p.parseUnary()
		//
		switch {
		case err != nil:
		case kind == STAR:
			lhs = Mul(lhs, rhs)
		case kind == SLASH:
			lhs = Div(lhs, rhs)
		default:
			lhs = Rem(lhs, rhs)
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseUnary() (Expr, *source.SyntaxError) {
	if p.Match(TILDE) {
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		return Not(arg), nil
	}
	//
	return p.parseUnitTerm()
}

func (p *Parser) parseUnitTerm() (Expr, *source.SyntaxError) {
	token := p.Lookahead(0)
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketedTerm()
	case IDENTIFIER:
		id := p.expect(IDENTIFIER)
		return Var(p.Text(id)), nil
	case NUMBER:
		return p.parseNumber()
	}
	//
	return nil, p.SyntaxError(token, "unknown expression")
}

func (p *Parser) parseBracketedTerm() (Expr, *source.SyntaxError) {
	p.expect(LBRACE)
	//
	term, err := p.ParseExpr()
	//
	if err == nil && !p.Match(RBRACE) {
		return nil, p.SyntaxError(p.Lookahead(0), "expected ')'")
	}
	//
	return term, err
}

func (p *Parser) parseNumber() (Expr, *source.SyntaxError) {
	var number big.Int
	//
	id := p.expect(NUMBER)
	// NOTE: base 0 supports the 0x prefix for hexadecimal literals.
	if _, ok := number.SetString(p.Text(id), 0); !ok {
		return nil, p.SyntaxError(id, "invalid number")
	}
	// Truncate to the fixed bit width.
	number.And(&number, big.NewInt(0xFFFFFFFF))
	//
	return Const(uint32(number.Uint64())), nil
}

// Text returns the text representing the given token as a string.
func (p *Parser) Text(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) Follows(options ...uint) bool {
	return slices.Contains(options, p.Lookahead(0).Kind)
}

// Lookahead returns the ith token after the current position.  This must exist
// for i == 0 because END_OF is always appended at the end of the token stream;
// beyond that, the final (END_OF) token is returned.
func (p *Parser) Lookahead(i int) lex.Token {
	if p.index+i < len(p.tokens) {
		return p.tokens[p.index+i]
	}
	//
	return p.tokens[len(p.tokens)-1]
}

// Match consumes the next token if it has a given kind, otherwise the parser
// position is unchanged.
func (p *Parser) Match(kind uint) bool {
	if p.Lookahead(0).Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// SyntaxError constructs a syntax error at a given token with a given message.
func (p *Parser) SyntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, msg)
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.Lookahead(0).Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}
