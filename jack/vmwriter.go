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
	"fmt"
	"io"
	"strconv"

	"github.com/robinovitch61/nand2tetris/internal/lineio"
)

// Segment names a VM memory segment, as understood by package vm.
type Segment string

const (
	SegConstant Segment = "constant"
	SegArgument Segment = "argument"
	SegLocal    Segment = "local"
	SegStatic   Segment = "static"
	SegThis     Segment = "this"
	SegThat     Segment = "that"
	SegPointer  Segment = "pointer"
	SegTemp     Segment = "temp"
)

// kindSegment is the total mapping from symbol-table kind to VM
// segment, spelled out rather than collapsed (spec §9): the two
// enumerations have different domains, even though the mapping never
// changes.
var kindSegment = map[SymKind]Segment{
	Static:   SegStatic,
	Field:    SegThis,
	Argument: SegArgument,
	Var:      SegLocal,
}

// ArithOp is one of the nine VM arithmetic/logic mnemonics. Multiply
// and division are not members: Jack's VM has no native instruction
// for them (spec §4.4), so the compiler lowers "*"/"/" straight to
// calls on Math.multiply/Math.divide instead of routing through
// WriteArithmetic.
type ArithOp string

const (
	OpAdd ArithOp = "add"
	OpSub ArithOp = "sub"
	OpNeg ArithOp = "neg"
	OpEq  ArithOp = "eq"
	OpGt  ArithOp = "gt"
	OpLt  ArithOp = "lt"
	OpAnd ArithOp = "and"
	OpOr  ArithOp = "or"
	OpNot ArithOp = "not"
)

// VMWriter is a purely syntactic VM-text emitter: one line per call,
// no knowledge of the compiler's symbol table or grammar.
type VMWriter struct {
	out *lineio.Writer
}

// NewVMWriter wraps w.
func NewVMWriter(w io.Writer) *VMWriter {
	return &VMWriter{out: lineio.New(w)}
}

// Err returns the first write error encountered, if any.
func (w *VMWriter) Err() error {
	return w.out.Err
}

func (w *VMWriter) WritePush(seg Segment, index int) {
	w.out.WriteLine(fmt.Sprintf("push %s %d", seg, index))
}

func (w *VMWriter) WritePop(seg Segment, index int) {
	w.out.WriteLine(fmt.Sprintf("pop %s %d", seg, index))
}

func (w *VMWriter) WriteArithmetic(op ArithOp) {
	w.out.WriteLine(string(op))
}

func (w *VMWriter) WriteLabel(label string) {
	w.out.WriteLine("label " + label)
}

func (w *VMWriter) WriteGoto(label string) {
	w.out.WriteLine("goto " + label)
}

func (w *VMWriter) WriteIf(label string) {
	w.out.WriteLine("if-goto " + label)
}

func (w *VMWriter) WriteCall(name string, nArgs int) {
	w.out.WriteLine("call " + name + " " + strconv.Itoa(nArgs))
}

func (w *VMWriter) WriteFunction(name string, nLocals int) {
	w.out.WriteLine("function " + name + " " + strconv.Itoa(nLocals))
}

func (w *VMWriter) WriteReturn() {
	w.out.WriteLine("return")
}

// WriteString lowers a string literal to String.new/appendChar calls
// (spec §4.4). Each appendChar call returns the same string pointer it
// was given, so the chain needs no scratch storage: the pointer left
// by String.new is exactly the first argument the first appendChar
// call expects, and every subsequent call's return value is the next
// call's first argument.
func (w *VMWriter) WriteString(s string) {
	w.WritePush(SegConstant, len(s))
	w.WriteCall("String.new", 1)
	for _, c := range s {
		w.WritePush(SegConstant, int(c))
		w.WriteCall("String.appendChar", 2)
	}
}
