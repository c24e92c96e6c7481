/*
 * chesscore - a bitboard based chess position engine in GO
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

func TestEnPassantSquareAfterDoublePush(t *testing.T) {
	p := position.NewPosition()
	m := NewMove(SqE2, SqE4, Normal, PtNone, false)
	assert.True(t, contains(GenerateLegalMoves(p), m))

	p.DoMove(m)
	assert.Equal(t, SqE3, p.EnPassantSquare())

	p.UndoMove()
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, position.NewPosition().ZobristKey(), p.ZobristKey())
}

func TestEnPassantCapture(t *testing.T) {
	p, err := position.NewPositionFen("8/8/8/3pP3/8/8/8/K6k w - d6 0 1")
	assert.NoError(t, err)

	want := NewMove(SqE5, SqD6, EnPassant, PtNone, true)
	moves := GenerateLegalMoves(p)
	assert.True(t, contains(moves, want))

	p.DoMove(want)
	assert.Equal(t, PieceNone, p.GetPiece(SqD5))
	assert.Equal(t, WhitePawn, p.GetPiece(SqD6))
	assert.Equal(t, SqNone, p.EnPassantSquare())
}

func TestCastlingBothSides(t *testing.T) {
	p, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	oo := NewMove(SqE1, SqG1, Castling, PtNone, false)
	ooo := NewMove(SqE1, SqC1, Castling, PtNone, false)
	moves := GenerateLegalMoves(p)
	assert.True(t, contains(moves, oo))
	assert.True(t, contains(moves, ooo))

	p.DoMove(oo)
	assert.Equal(t, WhiteKing, p.GetPiece(SqG1))
	assert.Equal(t, WhiteRook, p.GetPiece(SqF1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))
}

func TestPromotionEmitsFourMoves(t *testing.T) {
	p, err := position.NewPositionFen("7k/6P1/8/8/8/8/8/7K w - - 0 1")
	assert.NoError(t, err)

	moves := GenerateLegalMoves(p)
	var promos []Move
	for _, m := range moves {
		if m.From() == SqG7 && m.To() == SqG8 {
			promos = append(promos, m)
		}
	}
	assert.Len(t, promos, 4)
	seen := map[PieceType]bool{}
	for _, m := range promos {
		seen[m.PromotionType()] = true
	}
	assert.True(t, seen[Queen])
	assert.True(t, seen[Rook])
	assert.True(t, seen[Bishop])
	assert.True(t, seen[Knight])
}

func TestPinnedRookCannotMoveOffPinLine(t *testing.T) {
	// White king e1, white rook e2, black rook e8 pinning the white rook
	// to the king along the e-file; black king a8, off the pin line.
	p, err := position.NewPositionFen("k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)

	moves := GenerateLegalMoves(p)

	sawMoveAlongFile := false
	for _, m := range moves {
		if m.From() != SqE2 {
			continue
		}
		assert.Equal(t, SqE2.FileOf(), m.To().FileOf(), "pinned rook left the pin file: %s", m.StringUci())
		sawMoveAlongFile = true
	}
	assert.True(t, sawMoveAlongFile, "pinned rook should still be able to move along the pin line")
}

func TestNoMoveLeavesMoverInCheck(t *testing.T) {
	p := position.NewPosition()
	for _, m := range GenerateLegalMoves(p) {
		p.DoMove(m)
		assert.False(t, p.InCheck(p.NextPlayer().Flip()))
		p.UndoMove()
	}
}

func contains(moves []Move, m Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}
