//go:build ignore

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

// Command genmagic performs the one-time magic-number search the runtime
// engine has no business doing on every process start: the tables it
// produces are meant to be an input constant, not something searched for
// live. Run it with:
//
//	go generate ./internal/attacks
//
// It overwrites zmagic_numbers.go with the numbers it finds and flips
// magicsGenerated to true, so magic.go's init() loads them directly
// instead of falling back to searching in-process.
package main

import (
	"fmt"
	"os"

	"github.com/frankkopp/chesscore/internal/attacks"
	. "github.com/frankkopp/chesscore/internal/types"
)

func main() {
	rook := attacks.SearchMagicNumbers(RookDirections, 0x19000)
	bishop := attacks.SearchMagicNumbers(BishopDirections, 0x1480)

	f, err := os.Create("zmagic_numbers.go")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	fmt.Fprintln(f, "// Code generated by internal/attacks/gen/main.go via go:generate. DO NOT EDIT.")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "package attacks")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "import (")
	fmt.Fprintln(f, "\t. \"github.com/frankkopp/chesscore/internal/types\"")
	fmt.Fprintln(f, ")")
	fmt.Fprintln(f)
	fmt.Fprintln(f, "const magicsGenerated = true")
	fmt.Fprintln(f)
	writeTable(f, "generatedRookMagicNumbers", rook)
	fmt.Fprintln(f)
	writeTable(f, "generatedBishopMagicNumbers", bishop)
}

func writeTable(f *os.File, name string, numbers [SqLength]Bitboard) {
	fmt.Fprintf(f, "var %s = [SqLength]Bitboard{\n", name)
	for _, n := range numbers {
		fmt.Fprintf(f, "\t0x%016x,\n", uint64(n))
	}
	fmt.Fprintln(f, "}")
}
