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

// zmagic_numbers.go is the file `go generate ./internal/attacks` overwrites
// (see gen/main.go) after running the offline magic-number search and
// persisting its result here as literal data, so init() in magic.go can
// load the sliding-piece magic tables from a constant instead of searching
// for them on every process start.
//
// This checked-in copy is a placeholder: it has not actually been
// generated in this environment, so magicsGenerated stays false and
// init() falls back to the in-package search in magic.go. See DESIGN.md
// for why.
const magicsGenerated = false

var generatedRookMagicNumbers [SqLength]Bitboard
var generatedBishopMagicNumbers [SqLength]Bitboard
