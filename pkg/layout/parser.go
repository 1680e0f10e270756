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
	log "github.com/sirupsen/logrus"

	"github.com/consensys/lil/pkg/expr"
	"github.com/consensys/lil/pkg/util/source"
)

// Parse a given input string into a layout tree.  Declarations have the form
// KIND(dim0, dim1, rest), where KIND abbreviates one of the known layout
// names, dim0 and dim1 are arbitrary arithmetic expressions and rest is
// either a nested declaration or an expression denoting the constant one.
// This fails with a syntax error for malformed text, an UnknownKindError for
// an unresolvable kind, and a TerminalSizeError for any other terminal size.
func Parse(text string) (*Layout, error) {
	srcfile := source.NewSourceFile("layout", []byte(text))
	// Lex input into tokens
	tokens, serr := expr.Lex(srcfile)
	if serr != nil {
		return nil, serr
	}
	//
	parser := &declParser{expr.NewParser(srcfile, tokens)}
	// Parse declaration
	l, err := parser.parseDecl()
	if err != nil {
		return nil, err
	}
	// Check all parsed
	if !parser.inner.Done() {
		return nil, parser.inner.SyntaxError(parser.inner.Lookahead(0), "unknown token")
	}
	//
	log.Debugf("parsed layout declaration %s", l)
	// All good!
	return l, nil
}

// declParser parses the (recursive) declaration grammar, delegating to the
// expression parser for dimension and terminal-size terms over the same token
// stream.
type declParser struct {
	inner *expr.Parser
}

func (p *declParser) parseDecl() (*Layout, error) {
	kind, err := p.parseKind()
	if err != nil {
		return nil, err
	}
	//
	if !p.inner.Match(expr.LBRACE) {
		return nil, p.inner.SyntaxError(p.inner.Lookahead(0), "expected '('")
	}
	// Parse tile extents
	dim0, err := p.parseDim()
	if err != nil {
		return nil, err
	}
	//
	dim1, err := p.parseDim()
	if err != nil {
		return nil, err
	}
	// Parse nested declaration (or terminal size)
	rest, err := p.parseRest()
	if err != nil {
		return nil, err
	}
	//
	if !p.inner.Match(expr.RBRACE) {
		return nil, p.inner.SyntaxError(p.inner.Lookahead(0), "expected ')'")
	}
	//
	return New(kind, dim0, dim1, rest), nil
}

func (p *declParser) parseKind() (Kind, error) {
	token := p.inner.Lookahead(0)
	//
	if !p.inner.Match(expr.IDENTIFIER) {
		return 0, p.inner.SyntaxError(token, "expected layout kind")
	}
	//
	name := p.inner.Text(token)
	// Resolve (abbreviated) kind name
	kind, ok := KindOf(name)
	if !ok {
		return 0, &UnknownKindError{name}
	}
	//
	return kind, nil
}

// Parse one tile extent, including the trailing comma.
func (p *declParser) parseDim() (expr.Expr, error) {
	dim, serr := p.inner.ParseExpr()
	if serr != nil {
		return nil, serr
	}
	//
	if !p.inner.Match(expr.COMMA) {
		return nil, p.inner.SyntaxError(p.inner.Lookahead(0), "expected ','")
	}
	//
	return dim, nil
}

func (p *declParser) parseRest() (*Layout, error) {
	// A nested declaration is distinguished from a terminal expression by an
	// identifier immediately followed by an opening brace, since the
	// expression grammar has no function applications.
	if p.inner.Follows(expr.IDENTIFIER) && p.inner.Lookahead(1).Kind == expr.LBRACE {
		return p.parseDecl()
	}
	// Terminal level, whose size must be the constant one.
	size, serr := p.inner.ParseExpr()
	if serr != nil {
		return nil, serr
	}
	//
	if value, err := size.Eval(nil); err != nil || value != 1 {
		return nil, &TerminalSizeError{size}
	}
	//
	return nil, nil
}
