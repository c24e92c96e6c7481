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
	. "github.com/frankkopp/chesscore/internal/types"
)

var between [SqLength][SqLength]Bitboard

var allDirections = [8]Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

func init() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for _, d := range allDirections {
			var path Bitboard
			s := sq1
			for {
				s = s.To(d)
				if s == SqNone {
					break
				}
				between[sq1][s] = path
				path.PushSquare(s)
			}
		}
	}
}

// Between returns the squares strictly between sq1 and sq2 if they share
// a rank, file or diagonal, or BbZero if they don't.
func Between(sq1, sq2 Square) Bitboard {
	return between[sq1][sq2]
}
