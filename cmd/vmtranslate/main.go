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

// Command vmtranslate lowers VM bytecode to Hack assembly. path may
// name a single .vm file or a directory of .vm files; a directory's
// contents are concatenated into one .asm file named after the
// directory (spec §4.7, §6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/robinovitch61/nand2tetris/vm"
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
	files, outBase, err := vm.Units(path)
	if err != nil {
		return err
	}

	dst, err := os.Create(outBase + ".asm")
	if err != nil {
		return errors.Wrap(err, "vmtranslate")
	}
	defer dst.Close()

	out := vm.NewWriter(dst)
	if err := vm.Translate(files, out); err != nil {
		return err
	}
	return errors.Wrap(out.Err(), "vmtranslate: writing output")
}

func main() {
	flag.BoolVar(&debug, "debug", false, "print full error causal chain")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vmtranslate [-debug] <file.vm|directory>")
		os.Exit(2)
	}
	atExit(run(flag.Arg(0)))
}
