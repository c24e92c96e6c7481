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

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with one bit per square.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbOne  Bitboard = 1
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

var sqBb [SqLength]Bitboard

// Bb returns the singleton bitboard for sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// FileBb returns the bitboard of all squares on f.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// RankBb returns the bitboard of all squares on r.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

var fileBb [FileLength]Bitboard
var rankBb [RankLength]Bitboard

const (
	FileABb Bitboard = 0x0101010101010101
	FileBBb          = FileABb << 1
	FileCBb          = FileABb << 2
	FileDBb          = FileABb << 3
	FileEBb          = FileABb << 4
	FileFBb          = FileABb << 5
	FileGBb          = FileABb << 6
	FileHBb          = FileABb << 7

	Rank1Bb Bitboard = 0x00000000000000FF
	Rank2Bb          = Rank1Bb << (8 * 1)
	Rank3Bb          = Rank1Bb << (8 * 2)
	Rank4Bb          = Rank1Bb << (8 * 3)
	Rank5Bb          = Rank1Bb << (8 * 4)
	Rank6Bb          = Rank1Bb << (8 * 5)
	Rank7Bb          = Rank1Bb << (8 * 6)
	Rank8Bb          = Rank1Bb << (8 * 7)
)

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		sqBb[sq] = BbOne << uint(sq)
	}
	fileBb = [FileLength]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
	rankBb = [RankLength]Bitboard{Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb}
}

// PushSquare sets the bit for s in b and returns the new value.
func PushSquare(b Bitboard, s Square) Bitboard {
	return b | s.Bb()
}

// PushSquare sets the bit for s in *b.
func (b *Bitboard) PushSquare(s Square) Bitboard {
	*b |= s.Bb()
	return *b
}

// PopSquare clears the bit for s in b and returns the new value.
func PopSquare(b Bitboard, s Square) Bitboard {
	return b &^ s.Bb()
}

// PopSquare clears the bit for s in *b.
func (b *Bitboard) PopSquare(s Square) Bitboard {
	*b = *b &^ s.Bb()
	return *b
}

// Has reports whether the bit for s is set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// the file that would otherwise wrap around the board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	}
	return b
}

// Lsb returns the least significant set bit as a Square, or SqNone if b is
// empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square, or SqNone if b is
// empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the least significant set bit and clears it from *b.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// SubsetIterator walks every subset of mask in Carry-Rippler order,
// calling visit once per subset (including the empty subset).
func SubsetIterator(mask Bitboard, visit func(subset Bitboard)) {
	subset := BbZero
	for {
		visit(subset)
		subset = (subset - mask) & mask
		if subset == BbZero {
			return
		}
	}
}

// SquareDistance returns the Chebyshev distance between two squares: the
// number of king steps needed to go from one to the other.
func SquareDistance(s1, s2 Square) int {
	fd := int(s1.FileOf()) - int(s2.FileOf())
	if fd < 0 {
		fd = -fd
	}
	rd := int(s1.RankOf()) - int(s2.RankOf())
	if rd < 0 {
		rd = -rd
	}
	if fd > rd {
		return fd
	}
	return rd
}

func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 board, rank 8 first.
func (b Bitboard) StringBoard() string {
	var s strings.Builder
	s.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				s.WriteString("| X ")
			} else {
				s.WriteString("|   ")
			}
		}
		s.WriteString(fmt.Sprintf("| %d\n", r+1))
		s.WriteString("+---+---+---+---+---+---+---+---+\n")
	}
	return s.String()
}
