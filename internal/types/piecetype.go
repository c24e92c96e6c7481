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

// PieceType identifies a kind of piece independent of color. The order
// (Pawn, Knight, Bishop, Rook, Queen, King) matches the piece index
// layout used by Piece so that TypeOf/MakePiece are plain arithmetic.
type PieceType int8

//noinspection GoUnusedConst
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtNone
	PtLength = 6
)

// IsValid reports whether pt is one of the six piece types.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt < PtLength
}

// IsSlider reports whether pt moves along open rays (bishop, rook, queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeToChar = [PtLength]string{"P", "N", "B", "R", "Q", "K"}

// Char returns the upper case algebraic letter for pt ("P" for pawn).
func (pt PieceType) Char() string {
	if !pt.IsValid() {
		return "-"
	}
	return pieceTypeToChar[pt]
}

var pieceTypeToName = [PtLength]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the English name of pt.
func (pt PieceType) String() string {
	if !pt.IsValid() {
		return "None"
	}
	return pieceTypeToName[pt]
}
