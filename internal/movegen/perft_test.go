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
)

// ///////////////////////////////////////////////////////////////
// Perft results from https://www.chessprogramming.org/Perft_Results
// ///////////////////////////////////////////////////////////////

func TestStandardPerft(t *testing.T) {
	results := []uint64{1, 20, 400, 8902, 197281, 4865609}
	p := position.NewPosition()
	for depth, want := range results {
		assert.EqualValues(t, want, Perft(p, depth), "depth %d", depth)
	}
}

func TestKiwipetePerft(t *testing.T) {
	results := []uint64{1, 48, 2039, 97862}
	p, err := position.NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	for depth, want := range results {
		assert.EqualValues(t, want, Perft(p, depth), "depth %d", depth)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := position.NewPosition()
	depth := 4
	total := Perft(p, depth)
	var sum uint64
	for _, count := range PerftDivide(p, depth) {
		sum += count
	}
	assert.EqualValues(t, total, sum)
}

func TestPerftHashedMatchesPerft(t *testing.T) {
	p := position.NewPosition()
	depth := 4
	table := NewPerftTable(64)
	assert.EqualValues(t, Perft(p, depth), PerftHashed(p, depth, table))
	// a second call against the same populated table must agree.
	assert.EqualValues(t, Perft(p, depth), PerftHashed(p, depth, table))
}

func TestPerftParallelMatchesPerft(t *testing.T) {
	p := position.NewPosition()
	depth := 4
	sequential := Perft(p, depth)
	parallel, err := PerftParallel(position.StartFen, depth, 4)
	assert.NoError(t, err)
	assert.EqualValues(t, sequential, parallel)
}

func TestPerftRespectDrawsNeverExceedsPerft(t *testing.T) {
	p := position.NewPosition()
	depth := 4
	assert.LessOrEqual(t, PerftRespectDraws(p, depth, 3), Perft(p, depth))
}
