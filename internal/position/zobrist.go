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
	. "github.com/frankkopp/chesscore/internal/types"
)

// Key is a Zobrist hash of a position.
type Key uint64

// zobrist holds one random key per (piece, square), per castling rights
// mask, per en-passant file, and one for side to move. A position's key
// is the XOR of the keys for everything currently true about it, so
// DoMove/UndoMove can update the key incrementally instead of recomputing
// it from scratch.
type zobrist struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingRightsLength]Key
	enPassantFile  [FileLength]Key
	nextPlayer     Key
}

var zobristBase zobrist

// zobristSeed is arbitrary but fixed: Zobrist keys must be stable across
// runs for perft hashing and opening-book style lookups to be meaningful.
const zobristSeed = 1070372

func init() {
	r := newRandom(zobristSeed)
	for pc := WhitePawn; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := CastlingNone; cr < CastlingRightsLength; cr++ {
		zobristBase.castlingRights[cr] = Key(r.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		zobristBase.enPassantFile[f] = Key(r.rand64())
	}
	zobristBase.nextPlayer = Key(r.rand64())
}
