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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/util"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFen, "fen of the position to run perft on")
	startDepth := flag.Int("startdepth", 1, "first depth to run")
	endDepth := flag.Int("depth", 5, "last depth to run")
	divide := flag.Bool("divide", false, "print the per-root-move breakdown for the final depth")
	parallel := flag.Bool("parallel", false, "split the root ply across goroutines (config.toml perft.use_parallel also enables this)")
	workers := flag.Int("workers", 0, "goroutine count for -parallel; <= 0 uses config.toml perft.max_workers, then all CPUs")
	hashed := flag.Bool("hashed", false, "cache subtree counts by (Zobrist key, depth) (config.toml perft.use_hashed also enables this)")
	respectDraws := flag.Bool("respect-draws", false, "treat a drawn interior node as a leaf instead of enumerating past it (config.toml perft.respect_draws also enables this)")
	reps := flag.Int("reps", 3, "repetition count that counts as a draw claim when -respect-draws is set")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile for this run to the working directory")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog()

	// CLI flags force a mode on; config.toml only supplies the default
	// when the corresponding flag was left at its zero value.
	*parallel = *parallel || config.Settings.Perft.UseParallel
	if *workers <= 0 {
		*workers = config.Settings.Perft.MaxWorkers
	}
	*hashed = *hashed || config.Settings.Perft.UseHashed
	*respectDraws = *respectDraws || config.Settings.Perft.RespectDraws

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := position.NewPositionFen(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	table := movegen.NewPerftTable(config.Settings.Perft.HashSizeMB)

	out.Printf("FEN: %s\n", *fen)
	for depth := *startDepth; depth <= *endDepth; depth++ {
		start := time.Now()
		var nodes uint64
		switch {
		case *parallel:
			nodes, err = movegen.PerftParallel(*fen, depth, *workers)
			if err != nil {
				log.Error(err)
				os.Exit(1)
			}
		case *hashed:
			nodes = movegen.PerftHashed(pos, depth, table)
		case *respectDraws:
			nodes = movegen.PerftRespectDraws(pos, depth, *reps)
		default:
			nodes = movegen.Perft(pos, depth)
		}
		elapsed := time.Since(start)
		out.Printf("depth %2d: %12d nodes  %10s  %10d nps\n",
			depth, nodes, elapsed.Round(time.Millisecond), util.Nps(nodes, elapsed))
	}

	if *divide {
		out.Printf("\ndivide at depth %d:\n", *endDepth)
		for m, count := range movegen.PerftDivide(pos, *endDepth) {
			out.Printf("  %s: %d\n", m.StringUci(), count)
		}
	}
}
