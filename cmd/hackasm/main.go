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

// Command hackasm assembles a single Hack .asm source file into a
// .hack binary: one 16-bit word per line, most significant bit first.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/robinovitch61/nand2tetris/asm"
)

var debug bool

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

func run(path string) error {
	if filepath.Ext(path) != ".asm" {
		return errors.Errorf("hackasm: %s: not a .asm file", path)
	}
	src, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "hackasm")
	}
	defer src.Close()

	img, err := asm.Assemble(path, src)
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(path, ".asm") + ".hack"
	dst, err := os.Create(outPath)
	if err != nil {
		return errors.Wrap(err, "hackasm")
	}
	defer dst.Close()

	if err := asm.Write(dst, img); err != nil {
		return errors.Wrapf(err, "hackasm: writing %s", outPath)
	}
	return nil
}

func main() {
	flag.BoolVar(&debug, "debug", false, "print full error causal chain")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: hackasm [-debug] <file.asm>")
		os.Exit(2)
	}
	atExit(run(flag.Arg(0)))
}
