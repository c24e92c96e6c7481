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

// Package movegen generates pseudo-legal and legal moves for a position:
// per-piece pseudo-legal generators that respect geometry and blocker
// occupancy but not self-check, and a legality filter that applies
// make/undo to drop moves leaving the mover's king attacked.
package movegen

import (
	"github.com/frankkopp/chesscore/internal/attacks"
	"github.com/frankkopp/chesscore/internal/position"
	. "github.com/frankkopp/chesscore/internal/types"
)

// MaxMoves bounds the number of pseudo-legal moves reachable from any
// legal chess position; callers may use it to size a reusable buffer.
const MaxMoves = 256

// promotionPieces lists the four pieces a pawn may promote to, queen
// first since it is almost always the strongest choice.
var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// GeneratePseudoLegalMoves returns every pseudo-legal move for the side
// to move: moves that respect piece geometry and blocker occupancy but
// may leave the mover's own king in check.
func GeneratePseudoLegalMoves(p *position.Position) []Move {
	moves := make([]Move, 0, MaxMoves)
	moves = generatePawnMoves(p, moves)
	moves = generateKnightMoves(p, moves)
	moves = generateSliderMoves(p, Bishop, moves)
	moves = generateSliderMoves(p, Rook, moves)
	moves = generateSliderMoves(p, Queen, moves)
	moves = generateKingMoves(p, moves)
	moves = generateCastlingMoves(p, moves)
	return moves
}

// GenerateLegalMoves returns every legal move for the side to move: the
// pseudo-legal set filtered by IsLegalMove.
func GenerateLegalMoves(p *position.Position) []Move {
	pseudo := GeneratePseudoLegalMoves(p)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if IsLegalMove(p, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegalMove reports whether m, applied to p, leaves the mover's own
// king safe. It makes and unmakes m on p; p is unchanged on return.
func IsLegalMove(p *position.Position, m Move) bool {
	mover := p.NextPlayer()
	p.DoMove(m)
	legal := !p.InCheck(mover)
	p.UndoMove()
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, stopping at the first one found instead of generating the full
// list.
func HasLegalMove(p *position.Position) bool {
	for _, m := range GeneratePseudoLegalMoves(p) {
		if IsLegalMove(p, m) {
			return true
		}
	}
	return false
}

func generatePawnMoves(p *position.Position, moves []Move) []Move {
	us := p.NextPlayer()
	them := us.Flip()
	pawns := p.PiecesBb(us, Pawn)
	occupied := p.OccupiedAll()
	enemy := p.OccupiedBb(them)
	push := us.PawnPushDirection()
	promRank := us.PromotionRankBb()

	singlePush := ShiftBitboard(pawns, push) &^ occupied
	tmp := singlePush
	for tmp != 0 {
		to := tmp.PopLsb()
		from := to.To(-push)
		moves = appendPawnMove(moves, from, to, false, promRank.Has(to))
	}

	// Double push: pawns that reached the rank just ahead of their start
	// rank via the single push, advanced one more square.
	doubleOrigin := singlePush & shiftedDoublePushRank(us)
	tmp = ShiftBitboard(doubleOrigin, push) &^ occupied
	for tmp != 0 {
		to := tmp.PopLsb()
		from := to.To(-push).To(-push)
		moves = append(moves, NewMove(from, to, Normal, PtNone, false))
	}

	for _, dir := range [2]Direction{West, East} {
		captureDir := push + dir
		captures := ShiftBitboard(pawns, captureDir) & enemy
		tmp = captures
		for tmp != 0 {
			to := tmp.PopLsb()
			from := to.To(-captureDir)
			moves = appendPawnMove(moves, from, to, true, promRank.Has(to))
		}
	}

	if ep := p.EnPassantSquare(); ep != SqNone {
		for _, dir := range [2]Direction{West, East} {
			captureDir := push + dir
			candidate := ShiftBitboard(ep.Bb(), -captureDir) & pawns
			if candidate != 0 {
				from := candidate.Lsb()
				moves = append(moves, NewMove(from, ep, EnPassant, PtNone, true))
			}
		}
	}

	return moves
}

func appendPawnMove(moves []Move, from, to Square, capture bool, promotes bool) []Move {
	if promotes {
		for _, pt := range promotionPieces {
			moves = append(moves, NewMove(from, to, Promotion, pt, capture))
		}
		return moves
	}
	return append(moves, NewMove(from, to, Normal, PtNone, capture))
}

func shiftedDoublePushRank(us Color) Bitboard {
	if us == White {
		return Rank3Bb
	}
	return Rank6Bb
}

func generateKnightMoves(p *position.Position, moves []Move) []Move {
	us := p.NextPlayer()
	own := p.OccupiedBb(us)
	enemy := p.OccupiedBb(us.Flip())
	pieces := p.PiecesBb(us, Knight)
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := attacks.KnightAttacks(from) &^ own
		tmp := targets
		for tmp != 0 {
			to := tmp.PopLsb()
			moves = append(moves, NewMove(from, to, Normal, PtNone, enemy.Has(to)))
		}
	}
	return moves
}

func generateSliderMoves(p *position.Position, pt PieceType, moves []Move) []Move {
	us := p.NextPlayer()
	own := p.OccupiedBb(us)
	enemy := p.OccupiedBb(us.Flip())
	occupied := p.OccupiedAll()
	pieces := p.PiecesBb(us, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		targets := attacks.Attacks(pt, from, occupied) &^ own
		tmp := targets
		for tmp != 0 {
			to := tmp.PopLsb()
			moves = append(moves, NewMove(from, to, Normal, PtNone, enemy.Has(to)))
		}
	}
	return moves
}

func generateKingMoves(p *position.Position, moves []Move) []Move {
	us := p.NextPlayer()
	own := p.OccupiedBb(us)
	enemy := p.OccupiedBb(us.Flip())
	from := p.KingSquare(us)
	targets := attacks.KingAttacks(from) &^ own
	for targets != 0 {
		to := targets.PopLsb()
		moves = append(moves, NewMove(from, to, Normal, PtNone, enemy.Has(to)))
	}
	return moves
}

func generateCastlingMoves(p *position.Position, moves []Move) []Move {
	cr := p.CastlingRights()
	if cr == CastlingNone {
		return moves
	}
	us := p.NextPlayer()
	them := us.Flip()
	occupied := p.OccupiedAll()

	tryCastle := func(right CastlingRights, kingFrom, kingTo, rookFrom Square) []Move {
		if !cr.Has(right) {
			return moves
		}
		if attacks.Between(kingFrom, rookFrom)&occupied != 0 {
			return moves
		}
		path := attacks.Between(kingFrom, kingTo) | kingFrom.Bb() | kingTo.Bb()
		for sq := path; sq != 0; {
			s := sq.PopLsb()
			if p.IsSquareAttacked(s, them) {
				return moves
			}
		}
		moves = append(moves, NewMove(kingFrom, kingTo, Castling, PtNone, false))
		return moves
	}

	if us == White {
		moves = tryCastle(CastlingWhiteOO, SqE1, SqG1, SqH1)
		moves = tryCastle(CastlingWhiteOOO, SqE1, SqC1, SqA1)
	} else {
		moves = tryCastle(CastlingBlackOO, SqE8, SqG8, SqH8)
		moves = tryCastle(CastlingBlackOOO, SqE8, SqC8, SqA8)
	}
	return moves
}
