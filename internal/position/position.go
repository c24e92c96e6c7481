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

// Package position represents a chess position as a mutable aggregate of
// piece bitboards, a square-indexed board, and the ancillary state (side
// to move, castling rights, en-passant square, clocks) a legal position
// needs, together with an incrementally maintained Zobrist key.
//
// A Position is mutated in place by DoMove/UndoMove; it owns its undo and
// Zobrist history exclusively and is not safe for concurrent mutation.
// Create one with NewPosition or NewPositionFen.
package position

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/chesscore/internal/assert"
	"github.com/frankkopp/chesscore/internal/attacks"
	myLogging "github.com/frankkopp/chesscore/internal/logging"
	. "github.com/frankkopp/chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// StartFen is the FEN of the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the undo/Zobrist history stack. It is sized well
// beyond any game or perft make-chain actually encountered; DoMove panics
// if it is ever exceeded rather than silently growing, since the core
// must not allocate during a hot move-make/undo loop.
const maxHistory = 1024

// historyEntry is everything DoMove snapshots so UndoMove can restore the
// position bit-exactly.
type historyEntry struct {
	zobristKey      Key
	move            Move
	movingPiece     Piece
	capturedPiece   Piece
	capturedSquare  Square
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
}

// Position is the chess board and its full game state.
type Position struct {
	zobristKey Key

	board           [SqLength]Piece
	piecesBb        [ColorLength][PtLength]Bitboard
	occupiedBb      [ColorLength]Bitboard
	kingSquare      [ColorLength]Square
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextPlayer      Color

	// nextPlyNumber is the ply index (0-based) of the move about to be
	// played; the fullmove number is derived from it as (ply/2)+1.
	nextPlyNumber int

	historyCounter int
	history        [maxHistory]historyEntry
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := NewPositionFen(StartFen)
	if err != nil {
		panic("position: start fen failed to parse: " + err.Error())
	}
	return p
}

// NewPositionFen parses fen and returns the position it describes, or a
// *FenError if fen is structurally invalid. The returned error is the
// only recoverable error this package produces.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	for sq := SqA1; sq <= SqH8; sq++ {
		p.board[sq] = PieceNone
	}
	if err := p.setupBoard(fen); err != nil {
		log.Errorf("invalid fen, position not created: %s", err)
		return nil, err
	}
	return p, nil
}

// DoMove commits m to the position. m is assumed pseudo-legal and
// well-formed; callers that cannot guarantee this must validate first,
// since an invalid move is a programmer error here, not a recoverable one.
func (p *Position) DoMove(m Move) {
	fromSq := m.From()
	fromPc := p.board[fromSq]
	myColor := fromPc.ColorOf()
	toSq := m.To()
	targetPc := p.board[toSq]

	if assert.DEBUG {
		assert.Assert(fromPc != PieceNone, "DoMove: no piece on %s for move %s", fromSq, m)
		assert.Assert(myColor == p.nextPlayer, "DoMove: piece on %s does not belong to side to move", fromSq)
		assert.Assert(targetPc.TypeOf() != King, "DoMove: move %s captures a king", m)
	}
	if fromPc == PieceNone || myColor != p.nextPlayer {
		invariantViolation("DoMove: malformed move %s in position %s", m, p.fen())
	}

	if p.historyCounter >= maxHistory {
		invariantViolation("DoMove: history stack exhausted")
	}
	h := &p.history[p.historyCounter]
	h.zobristKey = p.zobristKey
	h.move = m
	h.movingPiece = fromPc
	h.capturedPiece = PieceNone
	h.castlingRights = p.castlingRights
	h.enPassantSquare = p.enPassantSquare
	h.halfMoveClock = p.halfMoveClock
	p.historyCounter++

	switch m.MoveType() {
	case Normal:
		p.doNormalMove(m, fromSq, toSq, fromPc, targetPc)
	case Promotion:
		p.doPromotionMove(m, fromSq, toSq, fromPc, targetPc)
	case EnPassant:
		p.doEnPassantMove(m, fromSq, toSq, fromPc)
	case Castling:
		p.doCastlingMove(fromSq, toSq, fromPc)
	}

	p.nextPlyNumber++
	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobristBase.nextPlayer
}

// UndoMove reverses the most recent DoMove, restoring the position
// bit-exactly, including the Zobrist key and history stack depth.
func (p *Position) UndoMove() {
	if p.historyCounter == 0 {
		invariantViolation("UndoMove: no outstanding move to undo")
	}
	p.historyCounter--
	h := &p.history[p.historyCounter]
	move := h.move

	p.nextPlyNumber--
	p.nextPlayer = p.nextPlayer.Flip()

	switch move.MoveType() {
	case Normal:
		p.movePiece(move.To(), move.From())
		if h.capturedPiece != PieceNone {
			p.putPieceRaw(h.capturedPiece, h.capturedSquare)
		}
	case Promotion:
		p.removePieceRaw(move.To())
		p.putPieceRaw(MakePiece(p.nextPlayer, Pawn), move.From())
		if h.capturedPiece != PieceNone {
			p.putPieceRaw(h.capturedPiece, h.capturedSquare)
		}
	case EnPassant:
		p.movePiece(move.To(), move.From())
		p.putPieceRaw(h.capturedPiece, h.capturedSquare)
	case Castling:
		p.movePiece(move.To(), move.From())
		switch move.To() {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		default:
			invariantViolation("UndoMove: invalid castling destination %s", move.To())
		}
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.zobristKey = h.zobristKey
}

func (p *Position) doNormalMove(m Move, fromSq, toSq Square, fromPc, targetPc Piece) {
	p.clearCastlingRightsTouching(fromSq, toSq)
	p.clearEnPassant()
	switch {
	case targetPc != PieceNone:
		p.history[p.historyCounter-1].capturedPiece = targetPc
		p.history[p.historyCounter-1].capturedSquare = toSq
		p.removePieceRaw(toSq)
		p.halfMoveClock = 0
	case fromPc.TypeOf() == Pawn:
		p.halfMoveClock = 0
		if SquareDistance(fromSq, toSq) == 2 {
			p.enPassantSquare = toSq.To(p.nextPlayer.Flip().PawnPushDirection())
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	default:
		p.halfMoveClock++
	}
	p.movePiece(fromSq, toSq)
}

func (p *Position) doPromotionMove(m Move, fromSq, toSq Square, fromPc, targetPc Piece) {
	if assert.DEBUG {
		assert.Assert(fromPc.TypeOf() == Pawn, "DoMove: promotion move but %s is not a pawn", fromPc)
		assert.Assert(p.nextPlayer.PromotionRankBb().Has(toSq), "DoMove: promotion move to non-promotion rank %s", toSq)
	}
	p.clearCastlingRightsTouching(fromSq, toSq)
	p.clearEnPassant()
	if targetPc != PieceNone {
		p.history[p.historyCounter-1].capturedPiece = targetPc
		p.history[p.historyCounter-1].capturedSquare = toSq
		p.removePieceRaw(toSq)
	}
	p.removePieceRaw(fromSq)
	p.putPieceRaw(MakePiece(p.nextPlayer, m.PromotionType()), toSq)
	p.halfMoveClock = 0
}

func (p *Position) doEnPassantMove(m Move, fromSq, toSq Square, fromPc Piece) {
	capSq := toSq.To(p.nextPlayer.Flip().PawnPushDirection())
	if assert.DEBUG {
		assert.Assert(fromPc.TypeOf() == Pawn, "DoMove: en-passant move but %s is not a pawn", fromPc)
		assert.Assert(p.enPassantSquare == toSq, "DoMove: en-passant move does not target ep square")
		assert.Assert(p.board[capSq].TypeOf() == Pawn && p.board[capSq].ColorOf() != p.nextPlayer, "DoMove: no enemy pawn to capture en passant on %s", capSq)
	}
	p.history[p.historyCounter-1].capturedPiece = p.board[capSq]
	p.history[p.historyCounter-1].capturedSquare = capSq
	p.removePieceRaw(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfMoveClock = 0
}

func (p *Position) doCastlingMove(fromSq, toSq Square, fromPc Piece) {
	if assert.DEBUG {
		assert.Assert(fromPc.TypeOf() == King, "DoMove: castling move but %s is not a king", fromPc)
	}
	var rookFrom, rookTo Square
	var lost CastlingRights
	switch toSq {
	case SqG1:
		rookFrom, rookTo, lost = SqH1, SqF1, CastlingWhite
	case SqC1:
		rookFrom, rookTo, lost = SqA1, SqD1, CastlingWhite
	case SqG8:
		rookFrom, rookTo, lost = SqH8, SqF8, CastlingBlack
	case SqC8:
		rookFrom, rookTo, lost = SqA8, SqD8, CastlingBlack
	default:
		invariantViolation("DoMove: invalid castling destination %s", toSq)
	}
	p.movePiece(fromSq, toSq)
	p.movePiece(rookFrom, rookTo)
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights.Remove(lost)
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.clearEnPassant()
	p.halfMoveClock++
}

// clearCastlingRightsTouching forfeits whichever castling right(s), if
// any, a king or rook leaving fromSq or a capture landing on toSq removes.
func (p *Position) clearCastlingRightsTouching(fromSq, toSq Square) {
	if p.castlingRights == CastlingNone {
		return
	}
	lost := CastlingRightsLost(fromSq) | CastlingRightsLost(toSq)
	if lost == CastlingNone {
		return
	}
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	p.castlingRights.Remove(lost)
	p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
}

func (p *Position) movePiece(fromSq, toSq Square) {
	p.putPieceRaw(p.removePieceRaw(fromSq), toSq)
}

// putPieceRaw places piece on square, updating the board, bitboards and
// Zobrist key. The square must be empty.
func (p *Position) putPieceRaw(piece Piece, square Square) {
	if assert.DEBUG {
		assert.Assert(p.board[square] == PieceNone, "putPiece: %s already occupied", square)
	}
	color := piece.ColorOf()
	pt := piece.TypeOf()
	p.board[square] = piece
	if pt == King {
		p.kingSquare[color] = square
	}
	p.piecesBb[color][pt].PushSquare(square)
	p.occupiedBb[color].PushSquare(square)
	p.zobristKey ^= zobristBase.pieces[piece][square]
}

// removePieceRaw clears square, returning the piece that was there. The
// square must be occupied.
func (p *Position) removePieceRaw(square Square) Piece {
	removed := p.board[square]
	if assert.DEBUG {
		assert.Assert(removed != PieceNone, "removePiece: %s already empty", square)
	}
	color := removed.ColorOf()
	pt := removed.TypeOf()
	p.board[square] = PieceNone
	p.piecesBb[color][pt].PopSquare(square)
	p.occupiedBb[color].PopSquare(square)
	p.zobristKey ^= zobristBase.pieces[removed][square]
	return removed
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	occ := p.OccupiedAll()
	return attacks.PawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 ||
		attacks.KnightAttacks(sq)&p.piecesBb[by][Knight] != 0 ||
		attacks.BishopAttacks(sq, occ)&(p.piecesBb[by][Bishop]|p.piecesBb[by][Queen]) != 0 ||
		attacks.RookAttacks(sq, occ)&(p.piecesBb[by][Rook]|p.piecesBb[by][Queen]) != 0 ||
		attacks.KingAttacks(sq)&p.piecesBb[by][King] != 0
}

// InCheck reports whether side's king is currently attacked. Returns
// false if side has no king on the board.
func (p *Position) InCheck(side Color) bool {
	ksq := p.kingSquare[side]
	if p.board[ksq].TypeOf() != King || p.board[ksq].ColorOf() != side {
		return false
	}
	return p.IsSquareAttacked(ksq, side.Flip())
}

// CheckRepetitions reports whether the current Zobrist key occurs at
// least reps times among positions reachable with the same side to move
// (every other history entry), stopping at the most recent
// halfmove-clock reset since an irreversible move cannot repeat a
// position from before it.
func (p *Position) CheckRepetitions(reps int) bool {
	count := 1 // the current position itself
	lastHalfMove := p.halfMoveClock
	for i := p.historyCounter - 2; i >= 0; i -= 2 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.history[i].zobristKey == p.zobristKey {
			count++
			if count >= reps {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether the fifty-move rule permits a draw claim.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.halfMoveClock >= 100
}

// HasInsufficientMaterial reports whether neither side has enough material
// to force checkmate: bare kings, king-plus-single-minor against a bare
// king, or only same-colored bishops remain.
func (p *Position) HasInsufficientMaterial() bool {
	if p.piecesBb[White][Pawn]|p.piecesBb[Black][Pawn]|
		p.piecesBb[White][Rook]|p.piecesBb[Black][Rook]|
		p.piecesBb[White][Queen]|p.piecesBb[Black][Queen] != 0 {
		return false
	}

	whiteMinors := p.piecesBb[White][Knight] | p.piecesBb[White][Bishop]
	blackMinors := p.piecesBb[Black][Knight] | p.piecesBb[Black][Bishop]
	whiteCount := whiteMinors.PopCount()
	blackCount := blackMinors.PopCount()

	if whiteCount == 0 && blackCount == 0 {
		return true
	}
	if (whiteCount == 1 && blackCount == 0) || (whiteCount == 0 && blackCount == 1) {
		return true
	}
	if p.piecesBb[White][Knight]|p.piecesBb[Black][Knight] == 0 {
		bishops := p.piecesBb[White][Bishop] | p.piecesBb[Black][Bishop]
		const lightSquares Bitboard = 0x55AA55AA55AA55AA
		onLight := bishops & lightSquares
		onDark := bishops &^ lightSquares
		if onLight == 0 || onDark == 0 {
			return true
		}
	}
	return false
}

// GetPiece returns the piece on sq, or PieceNone.
func (p *Position) GetPiece(sq Square) Piece { return p.board[sq] }

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// OccupiedBb returns the bitboard of all of color c's pieces.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.occupiedBb[c] }

// OccupiedAll returns the bitboard of every occupied square.
func (p *Position) OccupiedAll() Bitboard { return p.occupiedBb[White] | p.occupiedBb[Black] }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// CastlingRights returns the castling rights still conceivable.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the current en-passant target, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the plies since the last pawn move or capture.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the current fullmove number (starts at 1).
func (p *Position) FullMoveNumber() int { return p.nextPlyNumber/2 + 1 }

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// ZobristKey returns the current Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// LastMove returns the most recently made move, or MoveNone at the root.
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return MoveNone
	}
	return p.history[p.historyCounter-1].move
}

func (p *Position) String() string {
	return p.fen()
}

// StringFen returns the FEN of the current position.
func (p *Position) StringFen() string {
	return p.fen()
}

// StringBoard renders the board as an 8x8 ASCII grid, rank 8 first.
func (p *Position) StringBoard() string {
	var s []byte
	s = append(s, "+---+---+---+---+---+---+---+---+\n"...)
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			s = append(s, '|', ' ')
			s = append(s, p.board[SquareOf(f, r)].Char()...)
			s = append(s, ' ')
		}
		s = append(s, '|', '\n')
		s = append(s, "+---+---+---+---+---+---+---+---+\n"...)
	}
	return string(s)
}
