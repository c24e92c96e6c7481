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

package types

import "strings"

// Move is a compact encoding of the move tuple (src, dst, capture,
// promotion, en-passant, castling):
//  bits  0- 5  to square
//  bits  6-11  from square
//  bits 12-13  promotion piece type (Knight=0 .. Queen=3), only meaningful
//              when MoveType() == Promotion
//  bits 14-15  move type
//  bit  16     capture flag
type Move uint32

// MoveNone is the zero value and never a valid move.
const MoveNone Move = 0

const (
	fromShift     = 6
	promTypeShift = 12
	typeShift     = 14
	captureShift  = 16

	squareMask   Move = 0x3F
	toMask            = squareMask
	fromMask          = squareMask << fromShift
	promTypeMask Move = 3 << promTypeShift
	moveTypeMask Move = 3 << typeShift
	captureMask  Move = 1 << captureShift
)

// NewMove encodes a move. promo is ignored unless mt == Promotion, in
// which case it must be one of Knight, Bishop, Rook, Queen.
func NewMove(from, to Square, mt MoveType, promo PieceType, capture bool) Move {
	m := Move(to) | Move(from)<<fromShift | Move(mt)<<typeShift
	if mt == Promotion {
		m |= Move(promo-Knight) << promTypeShift
	}
	if capture {
		m |= captureMask
	}
	return m
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m & toMask)
}

// MoveType returns the move's shape.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the piece the pawn becomes. Only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// IsCapture reports whether the move removes an enemy piece, including
// en-passant captures.
func (m Move) IsCapture() bool {
	return m&captureMask != 0
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.MoveType() == EnPassant
}

// IsCastling reports whether the move is a castle.
func (m Move) IsCastling() bool {
	return m.MoveType() == Castling
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.MoveType() == Promotion
}

// StringUci renders the move in UCI notation (e.g. "e2e4", "e7e8q").
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

func (m Move) String() string {
	return m.StringUci()
}
