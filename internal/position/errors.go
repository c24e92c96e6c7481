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

import "fmt"

// FenError reports a structural problem in a FEN string. It is the one
// recoverable error kind the package produces; the Position being built
// is discarded and the caller's prior position, if any, is untouched.
type FenError struct {
	Fen    string
	Reason string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("malformed fen %q: %s", e.Fen, e.Reason)
}

// invariantViolation panics to signal a bug: a caller passed a malformed
// move to DoMove, tried to UndoMove past the initial position, or an
// internal consistency check failed. These are programmer errors, never
// surfaced as a Go error value.
func invariantViolation(format string, a ...interface{}) {
	panic(fmt.Sprintf("position: "+format, a...))
}
