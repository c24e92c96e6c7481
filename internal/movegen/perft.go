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
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Stats accumulates the per-category counters a perft run reports
// alongside the raw leaf count.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Perft counts the leaves of the legal-move tree rooted at p, to depth
// plies, by recursive make/undo. It does not apply draw claims: every
// legal continuation is enumerated, matching community reference counts.
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range GenerateLegalMoves(p) {
		p.DoMove(m)
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// PerftStats is Perft augmented with the per-category counters used to
// cross-check a perft run against published reference tables.
func PerftStats(p *position.Position, depth int, s *Stats) {
	if depth == 0 {
		s.Nodes++
		return
	}
	for _, m := range GenerateLegalMoves(p) {
		if depth == 1 {
			if m.IsCapture() {
				s.Captures++
			}
			if m.IsEnPassant() {
				s.EnPassants++
			}
			if m.IsCastling() {
				s.Castles++
			}
			if m.IsPromotion() {
				s.Promotions++
			}
		}
		p.DoMove(m)
		if depth == 1 && p.InCheck(p.NextPlayer()) {
			s.Checks++
		}
		PerftStats(p, depth-1, s)
		p.UndoMove()
	}
}

// PerftDivide returns, for each root move, the perft count of the
// position reached by playing it to depth-1. The sum of the returned
// values equals Perft(p, depth).
func PerftDivide(p *position.Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	for _, m := range GenerateLegalMoves(p) {
		p.DoMove(m)
		result[m] = Perft(p, depth-1)
		p.UndoMove()
	}
	return result
}

// perftKey indexes the hashed-perft cache by position identity and
// remaining depth; the Zobrist key alone is insufficient since the same
// position contributes a different leaf count at different depths.
type perftKey struct {
	key   position.Key
	depth int
}

// PerftHashed is Perft with a caller-owned transposition cache keyed by
// (Zobrist key, depth). It does not retain any cache of its own: callers
// share or discard table across calls as they see fit, which is sound
// because the Zobrist key already covers the full position state.
func PerftHashed(p *position.Position, depth int, table map[perftKey]uint64) uint64 {
	if depth == 0 {
		return 1
	}
	k := perftKey{key: p.ZobristKey(), depth: depth}
	if v, ok := table[k]; ok {
		return v
	}
	var nodes uint64
	for _, m := range GenerateLegalMoves(p) {
		p.DoMove(m)
		nodes += PerftHashed(p, depth-1, table)
		p.UndoMove()
	}
	table[k] = nodes
	return nodes
}

// perftTableEntrySize estimates the bytes a Go map[perftKey]uint64 bucket
// costs per entry (key + value + runtime.bmap overhead), used only to size
// the initial allocation from a megabyte budget.
const perftTableEntrySize = 48

// NewPerftTable returns an empty cache suitable for PerftHashed, sized
// from hashSizeMB (config.toml's perft.hash_size_mb) to avoid rehashing
// as it fills. hashSizeMB <= 0 returns an unsized, growable map.
func NewPerftTable(hashSizeMB int) map[perftKey]uint64 {
	if hashSizeMB <= 0 {
		return make(map[perftKey]uint64)
	}
	entries := hashSizeMB * 1024 * 1024 / perftTableEntrySize
	return make(map[perftKey]uint64, entries)
}

// PerftRespectDraws is Perft but treats an interior node that satisfies
// a draw claim (fifty-move, repetition at or above reps, insufficient
// material) as a leaf rather than recursing further. Default Perft never
// does this, since community reference counts enumerate every legal
// continuation regardless of drawn status.
func PerftRespectDraws(p *position.Position, depth int, reps int) uint64 {
	if depth == 0 {
		return 1
	}
	if p.IsFiftyMoveDraw() || p.CheckRepetitions(reps) || p.HasInsufficientMaterial() {
		return 1
	}
	var nodes uint64
	for _, m := range GenerateLegalMoves(p) {
		p.DoMove(m)
		nodes += PerftRespectDraws(p, depth-1, reps)
		p.UndoMove()
	}
	return nodes
}

// PerftParallel splits the first ply of perft across workers goroutines,
// one Position per worker built independently from fen, and sums their
// subtree counts. A workers value <= 0 uses runtime.NumCPU().
func PerftParallel(fen string, depth int, workers int) (uint64, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	root, err := position.NewPositionFen(fen)
	if err != nil {
		return 0, err
	}
	if depth == 0 {
		return 1, nil
	}
	roots := GenerateLegalMoves(root)

	sem := semaphore.NewWeighted(int64(workers))
	counts := make([]uint64, len(roots))
	errs := make([]error, len(roots))
	var wg sync.WaitGroup
	ctx := context.Background()

	for i, m := range roots {
		i, m := i, m
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = err
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			worker, err := position.NewPositionFen(fen)
			if err != nil {
				errs[i] = err
				return
			}
			worker.DoMove(m)
			counts[i] = Perft(worker, depth-1)
		}()
	}
	wg.Wait()

	var total uint64
	for i, c := range counts {
		if errs[i] != nil {
			return 0, errs[i]
		}
		total += c
	}
	return total, nil
}
