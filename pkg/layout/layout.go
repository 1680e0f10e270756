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
	"strings"

	"github.com/consensys/lil/pkg/expr"
)

// Kind identifies the addressing discipline of a single layout level.  This is
// a closed set: recursion and composition logic is generic across kinds, with
// only the fragment function dispatching on it.
type Kind uint8

// RowMajor lays tiles out row by row (i.e. C order).
const RowMajor Kind = 0

// ColumnMajor lays tiles out column by column (i.e. Fortran order).
const ColumnMajor Kind = 1

// ZMorton lays tiles out along a Z-order curve, by interleaving index bits.
const ZMorton Kind = 2

// Hilbert lays tiles out along a Hilbert curve.
const Hilbert Kind = 3

// kindNames gives the full declaration name of each kind, in kind order.
var kindNames = []string{"ROWMAJ", "COLMAJ", "ZMORTON", "HILBERT"}

// KindOf resolves a (possibly abbreviated) layout kind name, matching
// case-insensitively by prefix.  For example "row", "R" and "ROWMAJ" all
// resolve to RowMajor.
func KindOf(name string) (Kind, bool) {
	prefix := strings.ToUpper(name)
	//
	for i, n := range kindNames {
		if strings.HasPrefix(n, prefix) {
			return Kind(i), true
		}
	}
	//
	return 0, false
}

// String returns the full declaration name of this kind.
func (k Kind) String() string {
	return kindNames[k]
}

// Layout describes one level of a (possibly multi-level) tiling of a logical
// two-dimensional array.  Each level holds the tile extents along both logical
// axes and, optionally, a nested sub-layout describing how elements within a
// tile are themselves laid out.  Extents are expressions, hence they can be
// symbolic (e.g. an unresolved size parameter).  A layout is immutable once
// constructed, and may therefore be shared read-only across concurrent
// translations.
type Layout struct {
	kind Kind
	// Tile extents along logical axes 0 and 1.
	dim0 expr.Expr
	dim1 expr.Expr
	// Nested sub-layout, or nil when this is the innermost (terminal) level.
	// The terminal element size is pinned to one at parse time.
	rest *Layout
}

// New constructs a layout level of a given kind.  A nil rest marks the
// innermost level.
func New(kind Kind, dim0 expr.Expr, dim1 expr.Expr, rest *Layout) *Layout {
	return &Layout{kind, dim0, dim1, rest}
}

// Kind returns the addressing discipline of this level.
func (p *Layout) Kind() Kind {
	return p.kind
}

// Dim0 returns the tile extent along logical axis 0.
func (p *Layout) Dim0() expr.Expr {
	return p.dim0
}

// Dim1 returns the tile extent along logical axis 1.
func (p *Layout) Dim1() expr.Expr {
	return p.dim1
}

// Rest returns the nested sub-layout, or nil when this level is terminal.
func (p *Layout) Rest() *Layout {
	return p.rest
}

// IsTerminal determines whether or not this is the innermost layout level.
func (p *Layout) IsTerminal() bool {
	return p.rest == nil
}

// Size returns the total number of elements described by this layout.
func (p *Layout) Size() expr.Expr {
	size := expr.Mul(p.dim0, p.dim1)
	//
	if !p.IsTerminal() {
		size = expr.Mul(size, p.rest.Size())
	}
	//
	return size
}

// ElemSize returns the size of one tile-unit at this level, that is the
// number of elements addressed by one step of this level's fragment function.
func (p *Layout) ElemSize() expr.Expr {
	if p.IsTerminal() {
		return expr.Const(1)
	}
	//
	return p.rest.Size()
}

// LogicalDim0 returns the full logical extent along axis 0, accumulated
// across all nested levels.
func (p *Layout) LogicalDim0() expr.Expr {
	if p.IsTerminal() {
		return p.dim0
	}
	//
	return expr.Mul(p.dim0, p.rest.LogicalDim0())
}

// LogicalDim1 returns the full logical extent along axis 1, accumulated
// across all nested levels.
func (p *Layout) LogicalDim1() expr.Expr {
	if p.IsTerminal() {
		return p.dim1
	}
	//
	return expr.Mul(p.dim1, p.rest.LogicalDim1())
}

// The logical extent along axis 0 of one tile-unit at this level.  Tile
// quotients and remainders during translation are taken against this, which
// is what makes nested layouts compose tile-of-tiles correctly.
func (p *Layout) innerDim0() expr.Expr {
	if p.IsTerminal() {
		return expr.Const(1)
	}
	//
	return p.rest.LogicalDim0()
}

// The logical extent along axis 1 of one tile-unit at this level.
func (p *Layout) innerDim1() expr.Expr {
	if p.IsTerminal() {
		return expr.Const(1)
	}
	//
	return p.rest.LogicalDim1()
}

// String returns this layout in its declaration syntax.
func (p *Layout) String() string {
	rest := "1"
	//
	if !p.IsTerminal() {
		rest = p.rest.String()
	}
	//
	return fmt.Sprintf("%s(%s, %s, %s)", p.kind, p.dim0, p.dim1, rest)
}

// Fragment maps local sub-indices (already reduced modulo this level's tile
// extents) to a local offset within one tile of this level.
func (p *Layout) Fragment(i expr.Expr, j expr.Expr) expr.Expr {
	switch p.kind {
	case RowMajor:
		return expr.Add(expr.Mul(i, p.dim1), j)
	case ColumnMajor:
		return expr.Add(i, expr.Mul(p.dim0, j))
	case ZMorton:
		return Interleave(i, j)
	case Hilbert:
		return HilbertIndex(i, j)
	}
	//
	panic("unknown layout kind")
}

// Translate maps logical indices (i, j) to a physical offset expression.  The
// indices may themselves be arbitrary expressions, hence translation works
// uniformly for concrete and symbolic queries.  No simplification is applied
// to the result; that is the business of whatever consumes the expression.
func (p *Layout) Translate(i expr.Expr, j expr.Expr) expr.Expr {
	// Determine which tile-unit encloses (i, j).
	bx := expr.Div(i, p.innerDim0())
	by := expr.Div(j, p.innerDim1())
	// Locate that tile-unit within this level.
	offset := p.Fragment(bx, by)
	//
	if !p.IsTerminal() {
		// Recurse on the position within the tile-unit.
		x := expr.Rem(i, p.innerDim0())
		y := expr.Rem(j, p.innerDim1())
		offset = expr.Add(expr.Mul(offset, p.ElemSize()), p.rest.Translate(x, y))
	}
	//
	return offset
}
