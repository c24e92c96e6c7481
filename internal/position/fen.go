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

package position

import (
	"regexp"
	"strconv"
	"strings"

	. "github.com/frankkopp/chesscore/internal/types"
)

var placementCharsRe = regexp.MustCompile(`^[1-8pPnNbBrRqQkK/]+$`)
var sideToMoveRe = regexp.MustCompile(`^[wb]$`)
var castlingRe = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
var enPassantRe = regexp.MustCompile(`^([a-h][1-8]|-)$`)

// setupBoard parses fen and initializes p from it. p must be otherwise
// zero-valued on entry, with every board square already set to PieceNone.
// On error p is left partially built; the caller discards it.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return &FenError{Fen: fen, Reason: "empty fen"}
	}

	if !placementCharsRe.MatchString(fields[0]) {
		return &FenError{Fen: fen, Reason: "placement field has invalid characters"}
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return &FenError{Fen: fen, Reason: "placement does not have 8 ranks"}
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		file := FileA
		for _, c := range rankStr {
			if n, err := strconv.Atoi(string(c)); err == nil {
				file += File(n)
				continue
			}
			if file > FileH {
				return &FenError{Fen: fen, Reason: "rank overflows 8 files"}
			}
			piece := PieceFromChar(string(c))
			if piece == PieceNone {
				return &FenError{Fen: fen, Reason: "invalid piece letter"}
			}
			p.putPieceRaw(piece, SquareOf(file, r))
			file++
		}
		if file != FileH+1 {
			return &FenError{Fen: fen, Reason: "rank does not cover exactly 8 files"}
		}
	}
	if p.piecesBb[White][King].PopCount() != 1 || p.piecesBb[Black][King].PopCount() != 1 {
		return &FenError{Fen: fen, Reason: "each side must have exactly one king"}
	}

	p.enPassantSquare = SqNone
	p.nextPlyNumber = 0

	if len(fields) >= 2 {
		if !sideToMoveRe.MatchString(fields[1]) {
			return &FenError{Fen: fen, Reason: "side to move must be 'w' or 'b'"}
		}
		if fields[1] == "b" {
			p.nextPlayer = Black
			p.zobristKey ^= zobristBase.nextPlayer
			p.nextPlyNumber = 1
		}
	}

	if len(fields) >= 3 {
		if !castlingRe.MatchString(fields[2]) {
			return &FenError{Fen: fen, Reason: "castling field has invalid characters"}
		}
		if fields[2] != "-" {
			for _, c := range fields[2] {
				switch c {
				case 'K':
					p.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					p.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					p.castlingRights.Add(CastlingBlackOO)
				case 'q':
					p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights]
	}

	if len(fields) >= 4 {
		if !enPassantRe.MatchString(fields[3]) {
			return &FenError{Fen: fen, Reason: "en-passant field is not '-' or a square"}
		}
		if fields[3] != "-" {
			p.enPassantSquare = MakeSquare(fields[3])
			p.zobristKey ^= zobristBase.enPassantFile[p.enPassantSquare.FileOf()]
		}
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return &FenError{Fen: fen, Reason: "halfmove clock is not a non-negative integer"}
		}
		p.halfMoveClock = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return &FenError{Fen: fen, Reason: "fullmove number is not a positive integer"}
		}
		p.nextPlyNumber = 2*(n-1) + int(p.nextPlayer)
	}

	return nil
}

// fen renders the position in FEN notation.
func (p *Position) fen() string {
	var s strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				s.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			s.WriteString(pc.Char())
		}
		if empty > 0 {
			s.WriteString(strconv.Itoa(empty))
		}
		if r > Rank1 {
			s.WriteByte('/')
		}
	}
	s.WriteByte(' ')
	s.WriteString(p.nextPlayer.String())
	s.WriteByte(' ')
	s.WriteString(p.castlingRights.String())
	s.WriteByte(' ')
	s.WriteString(p.enPassantSquare.String())
	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(p.halfMoveClock))
	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(p.FullMoveNumber()))
	return s.String()
}
