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

// CastlingRights is a 4-bit mask of which castles are still conceivable
// (rook and king have not moved or been captured). Path, attack and
// check conditions are evaluated separately at move generation time.
type CastlingRights uint8

//noinspection GoUnusedConst
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 2
	CastlingBlackOO  CastlingRights = 4
	CastlingBlackOOO CastlingRights = 8
	CastlingWhite                   = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                   = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                     = CastlingWhite | CastlingBlack

	CastlingRightsLength = 16
)

// Has reports whether all bits of rhs are set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given right(s) from cr.
func (cr *CastlingRights) Remove(rhs CastlingRights) {
	*cr &^= rhs
}

// Add sets the given right(s) on cr.
func (cr *CastlingRights) Add(rhs CastlingRights) {
	*cr |= rhs
}

// CastlingRightsLost returns the castling right(s), if any, forfeited the
// moment a king or rook leaves or is captured on sq.
func CastlingRightsLost(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return CastlingWhite
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqE8:
		return CastlingBlack
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	default:
		return CastlingNone
	}
}

// String renders cr the way a FEN castling field does: "-" if none, else
// some subset of "KQkq" in that order.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(CastlingWhiteOO) {
		b.WriteByte('K')
	}
	if cr.Has(CastlingWhiteOOO) {
		b.WriteByte('Q')
	}
	if cr.Has(CastlingBlackOO) {
		b.WriteByte('k')
	}
	if cr.Has(CastlingBlackOOO) {
		b.WriteByte('q')
	}
	return b.String()
}
