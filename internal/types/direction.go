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

// Direction is a single-step offset on the 64-square board, expressed in
// the same units as Square so that Square + Direction lands on the
// adjacent square (when valid).
type Direction int8

//noinspection GoVarAndConstTypeMayBeOmitted
const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -North
	West      Direction = -East
	Northeast Direction = North + East
	Southeast Direction = South + East
	Southwest Direction = South + West
	Northwest Direction = North + West
)

// RookDirections are the four directions a rook slides along.
var RookDirections = [4]Direction{North, East, South, West}

// BishopDirections are the four directions a bishop slides along.
var BishopDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// To steps one square from sq in direction d, returning SqNone if the
// step would leave the board or wrap around a file edge.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return stepValid(sq, d)
	case South:
		return stepValid(sq, d)
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		return stepValid(sq, d)
	case West, Southwest, Northwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		return stepValid(sq, d)
	default:
		return SqNone
	}
}

func stepValid(sq Square, d Direction) Square {
	n := Square(int(sq) + int(d))
	if !n.IsValid() {
		return SqNone
	}
	return n
}
