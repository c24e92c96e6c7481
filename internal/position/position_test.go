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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestStartPositionFenRoundTrip(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.StringFen())
}

func TestFenRoundTripArbitraryPosition(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := NewPositionFen(fen)
	assert.NoError(t, err)
	assert.Equal(t, fen, p.StringFen())
}

func TestMalformedFenRejected(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"8/8/8/8/8/8/8/7K w - - 0 1",
	}
	for _, fen := range cases {
		_, err := NewPositionFen(fen)
		assert.Error(t, err, fen)
	}
}

func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	p := NewPosition()
	before := p.StringFen()
	beforeKey := p.ZobristKey()

	m := NewMove(SqE2, SqE4, Normal, PtNone, false)
	p.DoMove(m)
	assert.NotEqual(t, before, p.StringFen())

	p.UndoMove()
	assert.Equal(t, before, p.StringFen())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestEnPassantSquareSetAfterDoublePush(t *testing.T) {
	p := NewPosition()
	p.DoMove(NewMove(SqE2, SqE4, Normal, PtNone, false))
	assert.Equal(t, SqE3, p.EnPassantSquare())
	p.UndoMove()
	assert.Equal(t, SqNone, p.EnPassantSquare())
}

func TestCastlingMoveRelocatesRook(t *testing.T) {
	p, err := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	p.DoMove(NewMove(SqE1, SqG1, Castling, PtNone, false))
	assert.Equal(t, WhiteKing, p.GetPiece(SqG1))
	assert.Equal(t, WhiteRook, p.GetPiece(SqF1))
	assert.Equal(t, PieceNone, p.GetPiece(SqE1))
	assert.Equal(t, PieceNone, p.GetPiece(SqH1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))
	p.UndoMove()
	assert.Equal(t, WhiteKing, p.GetPiece(SqE1))
	assert.Equal(t, WhiteRook, p.GetPiece(SqH1))
}

func TestEnPassantCaptureRemovesPassedPawn(t *testing.T) {
	p, err := NewPositionFen("8/8/8/3pP3/8/8/8/K6k w - d6 0 1")
	assert.NoError(t, err)
	m := NewMove(SqE5, SqD6, EnPassant, PtNone, true)
	p.DoMove(m)
	assert.Equal(t, PieceNone, p.GetPiece(SqD5))
	assert.Equal(t, WhitePawn, p.GetPiece(SqD6))
	assert.Equal(t, SqNone, p.EnPassantSquare())
	p.UndoMove()
	assert.Equal(t, BlackPawn, p.GetPiece(SqD5))
	assert.Equal(t, WhitePawn, p.GetPiece(SqE5))
}

func TestFiftyMoveDraw(t *testing.T) {
	p, err := NewPositionFen("K6k/8/8/8/8/8/8/8 w - - 99 50")
	assert.NoError(t, err)
	assert.False(t, p.IsFiftyMoveDraw())
	p.DoMove(NewMove(SqA8, SqA7, Normal, PtNone, false))
	assert.True(t, p.IsFiftyMoveDraw())
}

func TestInsufficientMaterial(t *testing.T) {
	bareKings, err := NewPositionFen("K6k/8/8/8/8/8/8/8 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, bareKings.HasInsufficientMaterial())

	kingAndRook, err := NewPositionFen("K6k/8/8/8/8/8/8/R7 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, kingAndRook.HasInsufficientMaterial())

	sameColorBishops, err := NewPositionFen("K6k/8/8/8/8/8/8/B1B5 w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, sameColorBishops.HasInsufficientMaterial())

	oppositeColorBishops, err := NewPositionFen("K6k/8/8/8/8/8/8/BB6 w - - 0 1")
	assert.NoError(t, err)
	assert.False(t, oppositeColorBishops.HasInsufficientMaterial())
}

func TestIsSquareAttackedByPawn(t *testing.T) {
	p, err := NewPositionFen("8/8/8/4p3/8/8/8/K6k w - - 0 1")
	assert.NoError(t, err)
	assert.True(t, p.IsSquareAttacked(SqD4, Black))
	assert.True(t, p.IsSquareAttacked(SqF4, Black))
	assert.False(t, p.IsSquareAttacked(SqE4, Black))
}
