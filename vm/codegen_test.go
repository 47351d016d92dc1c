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
	"strings"
	"testing"

	"github.com/robinovitch61/nand2tetris/asm"
	"github.com/robinovitch61/nand2tetris/internal/hacksim"
	"github.com/robinovitch61/nand2tetris/vm"
)

// assembleAndRun translates cmds to assembly, assembles it, and runs
// it on a simulator with SP pre-initialized to 256 and LCL to 300 (the
// translator itself never emits this bootstrap, per the driver's scope).
func assembleAndRun(t *testing.T, unit string, cmds []vm.Command) *hacksim.Machine {
	t.Helper()
	var buf bytes.Buffer
	w := vm.NewWriter(&buf)
	w.SetUnit(unit)
	for _, c := range cmds {
		if err := w.Write(c); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	img, err := asm.Assemble("test.asm", strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Assemble:\n%s\nerr: %v", buf.String(), err)
	}
	m := hacksim.New(img)
	m.RAM[0] = 256
	m.RAM[1] = 300
	if err := m.Run(100000); err != nil {
		t.Fatalf("Run: %v\nasm:\n%s", err, buf.String())
	}
	return m
}

func TestWriter_PushAdd(t *testing.T) {
	m := assembleAndRun(t, "Test", []vm.Command{
		{Kind: vm.KindPush, Segment: vm.SegConstant, Index: 7},
		{Kind: vm.KindPush, Segment: vm.SegConstant, Index: 8},
		{Kind: vm.KindArithmetic, Op: vm.OpAdd},
	})
	if m.RAM[0] != 257 {
		t.Fatalf("SP = %d, want 257", m.RAM[0])
	}
	if m.RAM[256] != 15 {
		t.Errorf("stack top = %d, want 15", m.RAM[256])
	}
}

func TestWriter_PushSubNeg(t *testing.T) {
	m := assembleAndRun(t, "Test", []vm.Command{
		{Kind: vm.KindPush, Segment: vm.SegConstant, Index: 10},
		{Kind: vm.KindPush, Segment: vm.SegConstant, Index: 3},
		{Kind: vm.KindArithmetic, Op: vm.OpSub},
		{Kind: vm.KindArithmetic, Op: vm.OpNeg},
	})
	if uint16(m.RAM[256]) != hackWord(-7) {
		t.Errorf("stack top = %d, want -7", int16(m.RAM[256]))
	}
}

func hackWord(n int16) uint16 { return uint16(n) }

func TestWriter_Comparisons(t *testing.T) {
	cases := []struct {
		op   vm.Op
		a, b int
		want int16
	}{
		{vm.OpEq, 5, 5, -1},
		{vm.OpEq, 5, 6, 0},
		{vm.OpGt, 9, 4, -1},
		{vm.OpGt, 4, 9, 0},
		{vm.OpLt, 4, 9, -1},
		{vm.OpLt, 9, 4, 0},
	}
	for _, c := range cases {
		m := assembleAndRun(t, "Test", []vm.Command{
			{Kind: vm.KindPush, Segment: vm.SegConstant, Index: c.a},
			{Kind: vm.KindPush, Segment: vm.SegConstant, Index: c.b},
			{Kind: vm.KindArithmetic, Op: c.op},
		})
		got := int16(m.RAM[256])
		if got != c.want {
			t.Errorf("%s %d %d = %d, want %d", c.op, c.a, c.b, got, c.want)
		}
	}
}

func TestWriter_PushPopLocalAndTemp(t *testing.T) {
	m := assembleAndRun(t, "Test", []vm.Command{
		{Kind: vm.KindPush, Segment: vm.SegConstant, Index: 400},
		{Kind: vm.KindPop, Segment: vm.SegLocal, Index: 0},
		{Kind: vm.KindPush, Segment: vm.SegLocal, Index: 0},
		{Kind: vm.KindPop, Segment: vm.SegTemp, Index: 2},
		{Kind: vm.KindPush, Segment: vm.SegTemp, Index: 2},
	})
	if m.RAM[0] != 257 {
		t.Fatalf("SP = %d, want 257", m.RAM[0])
	}
	if m.RAM[256] != 400 {
		t.Errorf("stack top = %d, want 400", m.RAM[256])
	}
	if m.RAM[7] != 400 { // temp base 5 + index 2
		t.Errorf("RAM[7] (temp 2) = %d, want 400", m.RAM[7])
	}
}

func TestWriter_Static(t *testing.T) {
	// Two units sharing static segment index 0 must not collide: each
	// gets its own "Unit.0" assembly symbol.
	var buf bytes.Buffer
	w := vm.NewWriter(&buf)
	w.SetUnit("Foo")
	mustWrite(t, w, vm.Command{Kind: vm.KindPush, Segment: vm.SegConstant, Index: 11})
	mustWrite(t, w, vm.Command{Kind: vm.KindPop, Segment: vm.SegStatic, Index: 0})
	w.SetUnit("Bar")
	mustWrite(t, w, vm.Command{Kind: vm.KindPush, Segment: vm.SegConstant, Index: 22})
	mustWrite(t, w, vm.Command{Kind: vm.KindPop, Segment: vm.SegStatic, Index: 0})
	mustWrite(t, w, vm.Command{Kind: vm.KindPush, Segment: vm.SegStatic, Index: 0})
	w.SetUnit("Foo")
	mustWrite(t, w, vm.Command{Kind: vm.KindPush, Segment: vm.SegStatic, Index: 0})
	mustWrite(t, w, vm.Command{Kind: vm.KindArithmetic, Op: vm.OpAdd})

	img, err := asm.Assemble("test.asm", strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	m := hacksim.New(img)
	m.RAM[0] = 256
	if err := m.Run(100000); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.RAM[256] != 33 {
		t.Errorf("stack top = %d, want 33 (11+22)", m.RAM[256])
	}
}

func mustWrite(t *testing.T, w *vm.Writer, c vm.Command) {
	t.Helper()
	if err := w.Write(c); err != nil {
		t.Fatalf("Write: %v", err)
	}
}

func TestWriter_CallReturn(t *testing.T) {
	// function Double.run 0: takes one arg, returns arg*2 via add.
	// call Double.run 1 pushes its single argument first.
	cmds := []vm.Command{
		{Kind: vm.KindPush, Segment: vm.SegConstant, Index: 21},
		{Kind: vm.KindCall, Name: "Double.run", N: 1},
		{Kind: vm.KindGoto, Name: "END"},

		{Kind: vm.KindFunction, Name: "Double.run", N: 0},
		{Kind: vm.KindPush, Segment: vm.SegArgument, Index: 0},
		{Kind: vm.KindPush, Segment: vm.SegArgument, Index: 0},
		{Kind: vm.KindArithmetic, Op: vm.OpAdd},
		{Kind: vm.KindReturn},

		{Kind: vm.KindLabel, Name: "END"},
	}
	m := assembleAndRun(t, "Main", cmds)
	if m.RAM[0] != 257 {
		t.Fatalf("SP = %d, want 257 (stack balanced after call)", m.RAM[0])
	}
	if m.RAM[256] != 42 {
		t.Errorf("stack top = %d, want 42", m.RAM[256])
	}
}
