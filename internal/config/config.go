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

// Package config holds globally available configuration variables which are
// either set by defaults, read from a config file, or set by command line
// options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/chesscore/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to the working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overridden by cmd line options or the config file.
	LogLevel = 4

	// TestLogLevel defines the log level used by package tests.
	TestLogLevel = 4

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type conf struct {
	Perft perftConfiguration
}

// perftConfiguration controls the perft move path counter.
type perftConfiguration struct {
	// UseHashed enables the Zobrist+depth keyed transposition cache for perft.
	UseHashed bool `toml:"use_hashed"`
	// HashSizeMB is the size in megabytes of the perft transposition cache.
	HashSizeMB int `toml:"hash_size_mb"`
	// UseParallel splits perft at the root across MaxWorkers goroutines.
	UseParallel bool `toml:"use_parallel"`
	// MaxWorkers bounds the goroutine count used by parallel perft. A value
	// <= 0 means use runtime.NumCPU().
	MaxWorkers int `toml:"max_workers"`
	// RespectDraws, when set, stops descending a branch early once a draw
	// (fifty-move, repetition, insufficient material) is detected.
	RespectDraws bool `toml:"respect_draws"`
}

func init() {
	Settings.Perft = perftConfiguration{
		UseHashed:    false,
		HashSizeMB:   128,
		UseParallel:  false,
		MaxWorkers:   runtime.NumCPU(),
		RespectDraws: false,
	}
}

// Setup reads the configuration file and applies its settings on top of the
// defaults. Safe to call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	if Settings.Perft.MaxWorkers <= 0 {
		Settings.Perft.MaxWorkers = runtime.NumCPU()
	}
	initialized = true
}

// String prints the current configuration settings and values, using
// reflection to walk the struct fields.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Perft Config:\n")
	s := reflect.ValueOf(&settings.Perft).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
