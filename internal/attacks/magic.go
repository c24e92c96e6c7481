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

// Package attacks precomputes the static attack tables (knight, king, pawn
// and magic-bitboard sliding attacks) used by move generation and the
// in-check test. Everything in this package is immutable once init() has
// run and may be shared freely across goroutines.
//
// The magic numbers backing the sliding-piece tables are meant to be an
// input constant, found once offline and persisted (see zmagic_numbers.go
// and gen/main.go), not searched for on every process start.
package attacks

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// Magic holds the fancy-magic attack table for a single square of one
// slider piece type (rook or bishop).
//
//  occ  := occupied & Mask
//  occ  *= MagicNumber
//  occ >>= Shift
//  attacks := Attacks[occ]
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Shift   uint
	Attacks []Bitboard
}

func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	occ >>= m.Shift
	return uint(occ)
}

var rookMagics [SqLength]Magic
var bishopMagics [SqLength]Magic

var rookTable [0x19000]Bitboard
var bishopTable [0x1480]Bitboard

// seeds are the per-rank xorshift64star seeds Stockfish found to converge
// fastest when searching for magic numbers; reused here unchanged since
// the search space and verification are identical.
var magicSeeds = [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// The magic numbers themselves are an input constant to this engine, not
// something it searches for at runtime: go:generate runs the offline
// search in gen/main.go and persists its result as literal data in
// zmagic_numbers.go. init() loads that persisted table directly when it
// has been generated, and only falls back to searching in-process when it
// has not (see zmagic_numbers.go and DESIGN.md).
//
//go:generate go run gen/main.go

func init() {
	if magicsGenerated {
		buildFromNumbers(rookTable[:], &rookMagics, RookDirections, generatedRookMagicNumbers)
		buildFromNumbers(bishopTable[:], &bishopMagics, BishopDirections, generatedBishopMagicNumbers)
		return
	}
	initMagics(rookTable[:], &rookMagics, RookDirections)
	initMagics(bishopTable[:], &bishopMagics, BishopDirections)
}

// buildFromNumbers fills in table and magics from an already-known-good
// magic number per square (as persisted by gen/main.go): no search, just
// one deterministic pass per square computing the mask, shift, and dense
// attack table the numbers imply.
func buildFromNumbers(table []Bitboard, magics *[SqLength]Magic, directions [4]Direction, numbers [SqLength]Bitboard) {
	var size int
	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		m.Number = numbers[sq]
		if sq == SqA1 {
			m.Attacks = table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		size = 0
		SubsetIterator(m.Mask, func(subset Bitboard) {
			m.Attacks[m.index(subset)] = slidingAttack(directions, sq, subset)
			size++
		})
	}
}

// SearchMagicNumbers runs the offline magic-number search (the same one
// initMagics falls back to) for one slider's four directions and returns
// only the Number chosen for each square, in the shape gen/main.go persists
// into zmagic_numbers.go. It is exported so that generator can live outside
// this package, as a separate go:generate-driven command, while sharing
// this package's search implementation. tableSize must be large enough to
// hold the slider's dense attack table (0x19000 for rooks, 0x1480 for
// bishops) for the search's internal collision bookkeeping.
func SearchMagicNumbers(directions [4]Direction, tableSize int) [SqLength]Bitboard {
	var magics [SqLength]Magic
	table := make([]Bitboard, tableSize)
	initMagics(table, &magics, directions)

	var numbers [SqLength]Bitboard
	for sq := SqA1; sq <= SqH8; sq++ {
		numbers[sq] = magics[sq].Number
	}
	return numbers
}

// initMagics fills in table and magics for one slider's four directions,
// searching for a magic number per square that maps every occupancy subset
// of the square's relevant mask to a collision-free index. This is the
// offline search spec.md places out of scope for the runtime engine
// ("the magic-number search tool... the tables it produces are an input
// constant"); it runs here only as the fallback path for an environment
// where zmagic_numbers.go has not yet been generated (see DESIGN.md).
func initMagics(table []Bitboard, magics *[SqLength]Magic, directions [4]Direction) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var size int
	attemptCount := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())
		if sq == SqA1 {
			m.Attacks = table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		size = 0
		SubsetIterator(m.Mask, func(subset Bitboard) {
			occupancy[size] = subset
			reference[size] = slidingAttack(directions, sq, subset)
			size++
		})

		// Search for a magic number that maps every occupancy subset to a
		// collision-free index, rebuilding Attacks as a side effect of each
		// verification pass. epoch[] tracks which attempt last wrote an
		// index so a failed attempt's writes don't need to be undone.
		rng := newXorshift64star(magicSeeds[sq.RankOf()])
		for i := 0; i < size; {
			for {
				m.Number = Bitboard(rng.sparse())
				if ((m.Number * m.Mask) >> 56).PopCount() < 6 {
					break
				}
			}
			attemptCount++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < attemptCount {
					epoch[idx] = attemptCount
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each direction one step at a time from sq until it
// runs off the board or hits an occupied square (inclusive of that
// square), without relying on any magic table. Used both to build the
// reference attacks during magic search and, via RookAttacksSlow /
// BishopAttacksSlow, to cross check the magic tables in tests.
func slidingAttack(directions [4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for _, d := range directions {
		s := sq
		for {
			s = s.To(d)
			if s == SqNone {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// RookAttacks returns the squares a rook on sq attacks given occupied.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// BishopAttacks returns the squares a bishop on sq attacks given occupied.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.Attacks[m.index(occupied)]
}

// QueenAttacks returns the squares a queen on sq attacks given occupied.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// RookAttacksSlow recomputes rook attacks by ray walking, bypassing the
// magic tables. Used by tests to verify the magic tables against a
// reference implementation.
func RookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return slidingAttack(RookDirections, sq, occupied)
}

// BishopAttacksSlow recomputes bishop attacks by ray walking, bypassing
// the magic tables.
func BishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return slidingAttack(BishopDirections, sq, occupied)
}

// xorshift64star is Sebastiano Vigna's public domain PRNG, used here only
// to search for magic numbers at package init time.
type xorshift64star struct {
	s uint64
}

func newXorshift64star(seed uint64) *xorshift64star {
	return &xorshift64star{s: seed}
}

func (r *xorshift64star) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse returns a value with roughly 1/8th of its bits set on average,
// which converges magic number search faster than uniform random.
func (r *xorshift64star) sparse() uint64 {
	return r.next() & r.next() & r.next()
}
