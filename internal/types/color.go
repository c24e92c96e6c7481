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

import "fmt"

// Color identifies the side to move or the owner of a piece.
type Color int8

const (
	White Color = iota
	Black
	ColorLength int = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var pawnPushDirection = [2]Direction{North, South}

// PawnPushDirection returns the direction a pawn of color c advances.
func (c Color) PawnPushDirection() Direction {
	return pawnPushDirection[c]
}

var promotionRankBb = [2]Bitboard{Rank8Bb, Rank1Bb}

// PromotionRankBb returns the bitboard of the rank on which c promotes.
func (c Color) PromotionRankBb() Bitboard {
	return promotionRankBb[c]
}

var doublePushRankBb = [2]Bitboard{Rank2Bb, Rank7Bb}

// DoublePushRankBb returns the bitboard of the rank from which c may push
// a pawn two squares.
func (c Color) DoublePushRankBb() Bitboard {
	return doublePushRankBb[c]
}

var epCaptureRankBb = [2]Bitboard{Rank5Bb, Rank4Bb}

// EpCaptureRankBb returns the bitboard of the rank from which c may
// capture en passant.
func (c Color) EpCaptureRankBb() Bitboard {
	return epCaptureRankBb[c]
}
