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

package vm

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const ext = ".vm"

// Units returns the ordered list of .vm files to translate for path,
// plus the base name (without extension) to give the concatenated
// output. A single file is translated alone; a directory contributes
// every *.vm file within it, sorted, with the output named after the
// directory itself.
func Units(path string) (files []string, outBase string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "vm: stat")
	}
	if !info.IsDir() {
		if filepath.Ext(path) != ext {
			return nil, "", errors.Errorf("vm: %s: not a .vm file", path)
		}
		base := filepath.Base(path)
		return []string{path}, strings.TrimSuffix(base, ext), nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "vm: read directory")
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	if len(files) == 0 {
		return nil, "", errors.Errorf("vm: %s: no .vm files found", path)
	}
	sort.Strings(files)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "vm: resolve directory")
	}
	return files, filepath.Base(abs), nil
}

// Translate reads each of files in order and writes concatenated Hack
// assembly to out. Each file is its own static-segment namespace;
// comparison and call-site counters stay monotonic across the whole
// run so labels never collide between units.
func Translate(files []string, out *Writer) error {
	for _, f := range files {
		if err := translateOne(f, out); err != nil {
			return err
		}
	}
	return nil
}

func translateOne(file string, out *Writer) error {
	r, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "vm: open %s", file)
	}
	defer r.Close()

	cmds, err := ParseFile(file, r)
	if err != nil {
		return err
	}
	out.SetUnit(strings.TrimSuffix(filepath.Base(file), ext))
	for _, c := range cmds {
		if err := out.Write(c); err != nil {
			return errors.Wrapf(err, "vm: writing %s", file)
		}
	}
	return nil
}
