// This file is part of the nand2tetris toolchain - https://github.com/robinovitch61/nand2tetris
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command jackc compiles Jack source to VM bytecode. path may name a
// single .jack file or a directory of .jack files; each unit produces
// its own sibling output file (spec §4.7). The -xml flag switches to
// the syntax-analyzer debugging sub-mode instead of code generation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/robinovitch61/nand2tetris/jack"
)

// xmlMode is a flag.Value restricting -xml to the two supported debug
// dump kinds, matching the teacher's enumerated flag.Value pattern
// (cmd/retro/main.go's cellSizeBits).
type xmlMode string

func (m *xmlMode) String() string { return string(*m) }

func (m *xmlMode) Set(s string) error {
	switch s {
	case "tokens", "tree":
		*m = xmlMode(s)
		return nil
	default:
		return fmt.Errorf("-xml: %q: must be %q or %q", s, "tokens", "tree")
	}
}

var (
	debug bool
	xml   xmlMode
)

func atExit(err error) {
	if err == nil {
		return
	}
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}

func main() {
	flag.BoolVar(&debug, "debug", false, "print full error causal chain")
	flag.Var(&xml, "xml", "dump `tokens` or the parse `tree` as XML instead of compiling")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: jackc [-debug] [-xml tokens|tree] <file.jack|directory>")
		os.Exit(2)
	}

	mode := jack.ModeCompile
	switch xml {
	case "tokens":
		mode = jack.ModeDumpTokens
	case "tree":
		mode = jack.ModeDumpParseTree
	}

	files, err := jack.Units(flag.Arg(0))
	if err != nil {
		atExit(err)
		return
	}
	atExit(jack.Run(files, mode))
}
