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
	"errors"
	"testing"

	"github.com/consensys/lil/pkg/expr"
	"github.com/stretchr/testify/assert"
)

func TestParseLayout_1(t *testing.T) {
	l, err := Parse("ROWMAJ(4, 8, 1)")
	//
	assert.NoError(t, err)
	assert.Equal(t, RowMajor, l.Kind())
	assert.True(t, l.IsTerminal())
	assert.Equal(t, uint32(32), evalConst(t, l.Size()))
}

func TestParseLayout_2(t *testing.T) {
	// abbreviated, case-insensitive kind names
	for _, input := range []string{"col(4,4,1)", "C(4,4,1)", "ColMaj(4,4,1)"} {
		l, err := Parse(input)
		//
		assert.NoError(t, err, input)
		assert.Equal(t, ColumnMajor, l.Kind(), input)
	}
}

func TestParseLayout_3(t *testing.T) {
	l, err := Parse("COLMAJ(4, 4, ROWMAJ(2, 2, 1))")
	//
	assert.NoError(t, err)
	assert.Equal(t, ColumnMajor, l.Kind())
	assert.False(t, l.IsTerminal())
	assert.Equal(t, RowMajor, l.Rest().Kind())
	assert.Equal(t, uint32(27), translate(t, l, 5, 3))
}

func TestParseLayout_4(t *testing.T) {
	// symbolic extents
	l, err := Parse("ZMORTON(n, m, 1)")
	//
	assert.NoError(t, err)
	assert.False(t, l.Size().IsConstant())
}

func TestParseLayout_5(t *testing.T) {
	// extents can be arbitrary expressions
	l, err := Parse("ROWMAJ(2 * 2, 8 / 2, 1)")
	//
	assert.NoError(t, err)
	assert.Equal(t, uint32(16), evalConst(t, l.Size()))
}

func TestParseLayout_6(t *testing.T) {
	// terminal size given as an expression evaluating to one
	l, err := Parse("ROWMAJ(4, 4, 2 - 1)")
	//
	assert.NoError(t, err)
	assert.True(t, l.IsTerminal())
}

func TestParseLayout_7(t *testing.T) {
	// three levels deep
	l, err := Parse("HILBERT(2, 2, ZMORTON(2, 2, ROWMAJ(2, 2, 1)))")
	//
	assert.NoError(t, err)
	assert.Equal(t, uint32(64), evalConst(t, l.Size()))
	assert.Equal(t, uint32(8), evalConst(t, l.LogicalDim0()))
}

func TestParseLayoutUnknownKind(t *testing.T) {
	var kerr *UnknownKindError
	//
	_, err := Parse("BOGUS(4, 4, 1)")
	//
	assert.True(t, errors.As(err, &kerr))
	assert.Equal(t, "BOGUS", kerr.Name)
}

func TestParseLayoutTerminalSize_1(t *testing.T) {
	var terr *TerminalSizeError
	//
	_, err := Parse("ROWMAJ(4, 4, 2)")
	//
	assert.True(t, errors.As(err, &terr))
}

func TestParseLayoutTerminalSize_2(t *testing.T) {
	// a symbolic terminal size is rejected as well
	var terr *TerminalSizeError
	//
	_, err := Parse("ROWMAJ(4, 4, k)")
	//
	assert.True(t, errors.As(err, &terr))
}

func TestParseLayoutSyntax_1(t *testing.T) {
	checkParseFails(t, "")
}

func TestParseLayoutSyntax_2(t *testing.T) {
	checkParseFails(t, "ROWMAJ")
}

func TestParseLayoutSyntax_3(t *testing.T) {
	checkParseFails(t, "ROWMAJ(4, 4")
}

func TestParseLayoutSyntax_4(t *testing.T) {
	checkParseFails(t, "ROWMAJ(4, 4, 1")
}

func TestParseLayoutSyntax_5(t *testing.T) {
	checkParseFails(t, "ROWMAJ(4, 1)")
}

func TestParseLayoutSyntax_6(t *testing.T) {
	// trailing garbage
	checkParseFails(t, "ROWMAJ(4, 4, 1) x")
}

func TestParseLayoutSyntax_7(t *testing.T) {
	checkParseFails(t, "ROWMAJ(4, 4, COLMAJ(2, 2, 1)")
}

func TestParseTranslateRoundTrip(t *testing.T) {
	// A parsed layout translates identically to its hand-built counterpart.
	l, err := Parse("ZMORTON(4, 4, 1)")
	assert.NoError(t, err)
	//
	h := New(ZMorton, expr.Const(4), expr.Const(4), nil)
	//
	for i := uint32(0); i < 4; i++ {
		for j := uint32(0); j < 4; j++ {
			assert.Equal(t, translate(t, h, i, j), translate(t, l, i, j))
		}
	}
}

// ===================================================================

func checkParseFails(t *testing.T, input string) {
	if _, err := Parse(input); err == nil {
		t.Errorf("expected parse failure for %s", input)
	}
}
