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

package jack

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const ext = ".jack"

// Mode selects what Run produces for each .jack unit.
type Mode int

const (
	// ModeCompile emits VM code: the normal compilation pipeline.
	ModeCompile Mode = iota
	// ModeDumpTokens emits the flat token XML listing.
	ModeDumpTokens
	// ModeDumpParseTree emits the nested grammar XML tree.
	ModeDumpParseTree
)

func (m Mode) outputExt() string {
	if m == ModeCompile {
		return ".vm"
	}
	return ".xml"
}

// Units returns the ordered list of .jack files named by path: path
// itself if it names a file, or every *.jack file directly inside it
// (sorted) if it names a directory. Unlike the VM translator, each
// unit compiles to its own output file; there is no concatenation.
func Units(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "jack: stat")
	}
	if !info.IsDir() {
		if filepath.Ext(path) != ext {
			return nil, errors.Errorf("jack: %s: not a .jack file", path)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "jack: read directory")
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	if len(files) == 0 {
		return nil, errors.Errorf("jack: %s: no .jack files found", path)
	}
	sort.Strings(files)
	return files, nil
}

// Run processes each of files independently under mode, writing one
// sibling output file per unit.
func Run(files []string, mode Mode) error {
	for _, f := range files {
		if err := runOne(f, mode); err != nil {
			return err
		}
	}
	return nil
}

func runOne(file string, mode Mode) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "jack: read %s", file)
	}
	toks, err := Lex(string(src))
	if err != nil {
		return errors.Wrapf(err, "jack: %s", file)
	}

	outPath := strings.TrimSuffix(file, ext) + mode.outputExt()
	w, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "jack: create %s", outPath)
	}
	defer w.Close()

	switch mode {
	case ModeDumpTokens:
		if err := DumpTokens(toks, w); err != nil {
			return errors.Wrapf(err, "jack: writing %s", outPath)
		}
		return nil
	case ModeDumpParseTree:
		if err := NewParseTreeDumper(NewTokenizer(toks), w).Dump(); err != nil {
			return errors.Wrapf(err, "jack: %s", file)
		}
		return nil
	default:
		out := NewVMWriter(w)
		if err := NewCompiler(NewTokenizer(toks), out).Compile(); err != nil {
			return errors.Wrapf(err, "jack: %s", file)
		}
		if err := out.Err(); err != nil {
			return errors.Wrapf(err, "jack: writing %s", outPath)
		}
		return nil
	}
}
