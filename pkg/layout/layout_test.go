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
	"testing"

	"github.com/consensys/lil/pkg/expr"
	"github.com/stretchr/testify/assert"
)

func TestTranslateRowMajor(t *testing.T) {
	l := New(RowMajor, expr.Const(4), expr.Const(8), nil)
	// offset is i*8 + j
	for i := uint32(0); i < 4; i++ {
		for j := uint32(0); j < 8; j++ {
			assert.Equal(t, i*8+j, translate(t, l, i, j), "at (%d, %d)", i, j)
		}
	}
}

func TestTranslateColumnMajor(t *testing.T) {
	l := New(ColumnMajor, expr.Const(4), expr.Const(8), nil)
	// offset is i + 4*j
	for i := uint32(0); i < 4; i++ {
		for j := uint32(0); j < 8; j++ {
			assert.Equal(t, i+4*j, translate(t, l, i, j), "at (%d, %d)", i, j)
		}
	}
}

func TestTranslateZMorton(t *testing.T) {
	l := New(ZMorton, expr.Const(4), expr.Const(4), nil)
	//
	assert.Equal(t, uint32(31), translate(t, l, 3, 7))
}

func TestTranslateNested_1(t *testing.T) {
	// 2x2 grid of row-major 2x2 tiles
	l := New(RowMajor, expr.Const(2), expr.Const(2),
		New(RowMajor, expr.Const(2), expr.Const(2), nil))
	//
	expected := [4][4]uint32{
		{0, 1, 4, 5},
		{2, 3, 6, 7},
		{8, 9, 12, 13},
		{10, 11, 14, 15},
	}
	//
	for i := uint32(0); i < 4; i++ {
		for j := uint32(0); j < 4; j++ {
			assert.Equal(t, expected[i][j], translate(t, l, i, j), "at (%d, %d)", i, j)
		}
	}
}

func TestTranslateNested_2(t *testing.T) {
	// 4x4 column-major grid of row-major 2x2 tiles
	l := New(ColumnMajor, expr.Const(4), expr.Const(4),
		New(RowMajor, expr.Const(2), expr.Const(2), nil))
	//
	assert.Equal(t, uint32(27), translate(t, l, 5, 3))
}

func TestTranslateNestedPermutation(t *testing.T) {
	// Any nesting of bijective levels permutes the full index space.
	l := New(ZMorton, expr.Const(2), expr.Const(2),
		New(ColumnMajor, expr.Const(2), expr.Const(2), nil))
	//
	var (
		d0   = evalConst(t, l.LogicalDim0())
		d1   = evalConst(t, l.LogicalDim1())
		size = evalConst(t, l.Size())
		seen = make(map[uint32]bool)
	)
	//
	for i := uint32(0); i < d0; i++ {
		for j := uint32(0); j < d1; j++ {
			v := translate(t, l, i, j)
			//
			assert.Less(t, v, size)
			assert.False(t, seen[v], "duplicate offset %d at (%d, %d)", v, i, j)
			//
			seen[v] = true
		}
	}
}

func TestTranslateSymbolic(t *testing.T) {
	// Translating symbolic indices then binding them agrees with translating
	// the bound values directly.
	l := New(ColumnMajor, expr.Const(4), expr.Const(4),
		New(RowMajor, expr.Const(2), expr.Const(2), nil))
	//
	e := l.Translate(expr.Var("i"), expr.Var("j"))
	assert.False(t, e.IsConstant())
	//
	v, err := e.Eval(expr.Environment{"i": 5, "j": 3})
	assert.NoError(t, err)
	assert.Equal(t, translate(t, l, 5, 3), v)
}

func TestTranslateNoSimplification(t *testing.T) {
	// With a symbolic extent the offset remains symbolic, even for concrete
	// indices.
	l := New(RowMajor, expr.Var("n"), expr.Var("m"), nil)
	//
	e := l.Translate(expr.Const(2), expr.Const(5))
	assert.False(t, e.IsConstant())
	//
	v, err := e.Eval(expr.Environment{"n": 4, "m": 8})
	assert.NoError(t, err)
	assert.Equal(t, uint32(21), v)
}

func TestLayoutSize(t *testing.T) {
	l := New(ColumnMajor, expr.Const(4), expr.Const(4),
		New(RowMajor, expr.Const(2), expr.Const(2), nil))
	//
	assert.Equal(t, uint32(64), evalConst(t, l.Size()))
	assert.Equal(t, uint32(4), evalConst(t, l.ElemSize()))
	assert.Equal(t, uint32(8), evalConst(t, l.LogicalDim0()))
	assert.Equal(t, uint32(8), evalConst(t, l.LogicalDim1()))
}

func TestLayoutString(t *testing.T) {
	l := New(ColumnMajor, expr.Const(4), expr.Const(4),
		New(RowMajor, expr.Const(2), expr.Const(2), nil))
	//
	assert.Equal(t, "COLMAJ(4, 4, ROWMAJ(2, 2, 1))", l.String())
}

func TestKindOf(t *testing.T) {
	for _, name := range []string{"ROWMAJ", "row", "R", "RowMaj"} {
		kind, ok := KindOf(name)
		assert.True(t, ok, name)
		assert.Equal(t, RowMajor, kind, name)
	}
	//
	kind, ok := KindOf("hil")
	assert.True(t, ok)
	assert.Equal(t, Hilbert, kind)
	//
	_, ok = KindOf("BOGUS")
	assert.False(t, ok)
}

// ===================================================================

func translate(t *testing.T, l *Layout, i uint32, j uint32) uint32 {
	return evalConst(t, l.Translate(expr.Const(i), expr.Const(j)))
}

func evalConst(t *testing.T, e expr.Expr) uint32 {
	v, err := e.Eval(nil)
	//
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	//
	return v
}
