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

package attacks

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

var knightAttacks [SqLength]Bitboard
var kingAttacks [SqLength]Bitboard
var pawnAttacks [2][SqLength]Bitboard

var knightSteps = [8]Direction{
	North + North + East, North + East + East,
	South + East + East, South + South + East,
	South + South + West, South + West + West,
	North + West + West, North + North + West,
}

var kingSteps = [8]Direction{
	North, Northeast, East, Southeast, South, Southwest, West, Northwest,
}

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		var king, knight Bitboard
		for _, d := range kingSteps {
			if s := sq.To(d); s != SqNone {
				king.PushSquare(s)
			}
		}
		kingAttacks[sq] = king
		for _, d := range knightSteps {
			if s := knightStep(sq, d); s != SqNone {
				knight.PushSquare(s)
			}
		}
		knightAttacks[sq] = knight

		var whitePawn, blackPawn Bitboard
		if s := sq.To(Northeast); s != SqNone {
			whitePawn.PushSquare(s)
		}
		if s := sq.To(Northwest); s != SqNone {
			whitePawn.PushSquare(s)
		}
		if s := sq.To(Southeast); s != SqNone {
			blackPawn.PushSquare(s)
		}
		if s := sq.To(Southwest); s != SqNone {
			blackPawn.PushSquare(s)
		}
		pawnAttacks[White][sq] = whitePawn
		pawnAttacks[Black][sq] = blackPawn
	}
}

// knightStep applies a two-plus-one knight offset directly, since
// Square.To only ever steps a single square and rejects the compound
// directions a knight needs. File distance from the origin must be at
// most 2 to rule out wraparound across the left/right edge.
func knightStep(sq Square, d Direction) Square {
	to := Square(int(sq) + int(d))
	if !to.IsValid() {
		return SqNone
	}
	if FileDistance(sq.FileOf(), to.FileOf()) > 2 {
		return SqNone
	}
	return to
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1, f2 File) int {
	d := int(f1) - int(f2)
	if d < 0 {
		return -d
	}
	return d
}

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the squares a king on sq attacks (castling aside).
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks
// diagonally (excludes the straight push).
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// Attacks returns the squares a piece of type pt on sq attacks given the
// board's occupied squares. pt must not be Pawn; use PawnAttacks instead,
// since a pawn's attack set depends on color.
func Attacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		panic("attacks.Attacks: unsupported piece type " + pt.String())
	}
}
