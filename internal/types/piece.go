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

// Piece is a tagged piece index 0..11: white pieces occupy 0..5 and black
// pieces occupy 6..11, both in Pawn, Knight, Bishop, Rook, Queen, King
// order, so that ColorOf is a single comparison and TypeOf a single mod.
type Piece int8

//noinspection GoUnusedConst
const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
	PieceLength = 12
)

// MakePiece returns the piece index for a piece type of the given color.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*int(PtLength) + int(pt))
}

// IsValid reports whether p is one of the 12 piece indices.
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < PieceLength
}

// ColorOf returns the color of p. Only valid when p.IsValid().
func (p Piece) ColorOf() Color {
	if p < BlackPawn {
		return White
	}
	return Black
}

// TypeOf returns the piece type of p. Only valid when p.IsValid().
func (p Piece) TypeOf() PieceType {
	return PieceType(int(p) % int(PtLength))
}

var pieceToChar = [PieceLength]string{
	"P", "N", "B", "R", "Q", "K",
	"p", "n", "b", "r", "q", "k",
}

// Char returns the FEN character for p, upper case for White and lower
// case for Black.
func (p Piece) Char() string {
	if !p.IsValid() {
		return "-"
	}
	return pieceToChar[p]
}

// PieceFromChar returns the piece corresponding to a single FEN letter,
// or PieceNone if s is not exactly one recognised letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	for p := WhitePawn; p < PieceLength; p++ {
		if pieceToChar[p] == s {
			return p
		}
	}
	return PieceNone
}

// String returns the same representation as Char.
func (p Piece) String() string {
	return p.Char()
}
