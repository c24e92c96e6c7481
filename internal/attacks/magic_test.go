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
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

// TestRookMagicTablesMatchNaiveRayWalk is the rook half of the
// construction-time invariant from the magic bitboard design: for every
// square and every subset of its relevant occupancy mask, the magic lookup
// must agree with a naive ray-walk over the same occupancy. The bishop half
// is TestBishopMagicTablesMatchNaiveRayWalk.
func TestRookMagicTablesMatchNaiveRayWalk(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		mask := rookMagics[sq].Mask
		SubsetIterator(mask, func(occ Bitboard) {
			assert.Equal(t, RookAttacksSlow(sq, occ), RookAttacks(sq, occ), "rook %s occ %d", sq, occ)
		})
	}
}

func TestBishopMagicTablesMatchNaiveRayWalk(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		mask := bishopMagics[sq].Mask
		SubsetIterator(mask, func(occ Bitboard) {
			assert.Equal(t, BishopAttacksSlow(sq, occ), BishopAttacks(sq, occ), "bishop %s occ %d", sq, occ)
		})
	}
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	occ := SqD4.Bb() | SqD6.Bb() | SqB4.Bb()
	assert.Equal(t, RookAttacks(SqD4, occ)|BishopAttacks(SqD4, occ), QueenAttacks(SqD4, occ))
}
