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

package vm_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robinovitch61/nand2tetris/vm"
)

func TestUnits_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.vm")
	if err := os.WriteFile(path, []byte("push constant 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	files, base, err := vm.Units(path)
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("files = %v, want [%s]", files, path)
	}
	if base != "Foo" {
		t.Errorf("base = %q, want Foo", base)
	}
}

func TestUnits_WrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.txt")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := vm.Units(path); err == nil {
		t.Fatal("expected error for non-.vm file")
	}
}

func TestUnits_Directory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "Prog")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(name, body string) {
		if err := os.WriteFile(filepath.Join(sub, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("B.vm", "push constant 1\n")
	write("A.vm", "push constant 2\n")
	write("notes.txt", "ignored\n")

	files, base, err := vm.Units(sub)
	if err != nil {
		t.Fatalf("Units: %v", err)
	}
	if base != "Prog" {
		t.Errorf("base = %q, want Prog", base)
	}
	if len(files) != 2 || !strings.HasSuffix(files[0], "A.vm") || !strings.HasSuffix(files[1], "B.vm") {
		t.Errorf("files = %v, want [A.vm B.vm] sorted", files)
	}
}

func TestUnits_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := vm.Units(dir); err == nil {
		t.Fatal("expected error for directory with no .vm files")
	}
}

func TestTranslate_ConcatenatesUnitsWithSeparateStaticNamespaces(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}
	a := write("A.vm", "push constant 1\npop static 0\n")
	b := write("B.vm", "push constant 2\npop static 0\npush static 0\n")

	var buf bytes.Buffer
	w := vm.NewWriter(&buf)
	if err := vm.Translate([]string{a, b}, w); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "A.0") {
		t.Errorf("expected A.0 static symbol in output:\n%s", out)
	}
	if !strings.Contains(out, "B.0") {
		t.Errorf("expected B.0 static symbol in output:\n%s", out)
	}
}
