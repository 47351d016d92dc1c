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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/robinovitch61/nand2tetris/internal/lineio"
)

var dynamicBase = map[Segment]string{
	SegLocal:    "LCL",
	SegArgument: "ARG",
	SegThis:     "THIS",
	SegThat:     "THAT",
}

var fixedBase = map[Segment]int{
	SegTemp:    5,
	SegPointer: 3,
}

var cmpOp = map[Op]string{
	OpEq: "JEQ",
	OpGt: "JGT",
	OpLt: "JLT",
}

var cmpPrefix = map[Op]string{
	OpEq: "EQUAL",
	OpGt: "GT",
	OpLt: "LT",
}

// Writer emits Hack assembly for a sequence of VM commands. It owns the
// output sink (per the "shared mutable output file" redesign note, §9)
// and the two process-wide counters that must stay monotonic across an
// entire translation run, even one that concatenates several .vm files:
// the comparison-label counter and the call-site return-label counter.
type Writer struct {
	out     *lineio.Writer
	unit    string
	cmpSeq  int
	callSeq int
}

// NewWriter returns a Writer that appends assembly lines to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: lineio.New(w)}
}

// SetUnit changes the static-segment namespace used for subsequent
// "static i" commands. Call it once per input file before translating
// that file's commands.
func (w *Writer) SetUnit(name string) {
	w.unit = name
}

// Err returns the first write error encountered, if any.
func (w *Writer) Err() error {
	return w.out.Err
}

func (w *Writer) emit(format string, args ...interface{}) {
	w.out.WriteLine(fmt.Sprintf(format, args...))
}

func (w *Writer) comment(raw string) {
	w.out.WriteLine("// " + strings.TrimSpace(raw))
}

// Write dispatches a single command to its code generator.
func (w *Writer) Write(c Command) error {
	switch c.Kind {
	case KindArithmetic:
		w.writeArithmetic(c)
	case KindPush:
		w.writePush(c)
	case KindPop:
		w.writePop(c)
	case KindLabel:
		w.comment(c.Raw)
		w.emit("(%s)", c.Name)
	case KindGoto:
		w.comment(c.Raw)
		w.emit("@%s", c.Name)
		w.emit("0;JMP")
	case KindIfGoto:
		w.comment(c.Raw)
		w.emit("@SP")
		w.emit("AM=M-1")
		w.emit("D=M")
		w.emit("@%s", c.Name)
		w.emit("D;JNE")
	case KindFunction:
		w.writeFunction(c)
	case KindCall:
		w.writeCall(c)
	case KindReturn:
		w.writeReturn(c)
	default:
		return errors.Errorf("unhandled command kind %v", c.Kind)
	}
	if w.out.Err != nil {
		return errors.Wrap(w.out.Err, "write failed")
	}
	return nil
}

func (w *Writer) writePush(c Command) {
	w.comment(c.Raw)
	switch c.Segment {
	case SegConstant:
		w.emit("@%d", c.Index)
		w.emit("D=A")
	case SegLocal, SegArgument, SegThis, SegThat:
		w.emit("@%d", c.Index)
		w.emit("D=A")
		w.emit("@%s", dynamicBase[c.Segment])
		w.emit("A=M")
		w.emit("A=D+A")
		w.emit("D=M")
	case SegTemp, SegPointer:
		w.emit("@%d", c.Index)
		w.emit("D=A")
		w.emit("@%d", fixedBase[c.Segment])
		w.emit("A=D+A")
		w.emit("D=M")
	case SegStatic:
		w.emit("@%s.%d", w.unit, c.Index)
		w.emit("D=M")
	}
	w.emit("@SP")
	w.emit("A=M")
	w.emit("M=D")
	w.emit("@SP")
	w.emit("M=M+1")
}

func (w *Writer) writePop(c Command) {
	w.comment(c.Raw)
	switch c.Segment {
	case SegLocal, SegArgument, SegThis, SegThat:
		w.emit("@%d", c.Index)
		w.emit("D=A")
		w.emit("@%s", dynamicBase[c.Segment])
		w.emit("A=M")
		w.emit("D=D+A")
		w.emit("@R13")
		w.emit("M=D")
		w.emit("@SP")
		w.emit("AM=M-1")
		w.emit("D=M")
		w.emit("@R13")
		w.emit("A=M")
		w.emit("M=D")
	case SegTemp, SegPointer:
		w.emit("@%d", c.Index)
		w.emit("D=A")
		w.emit("@%d", fixedBase[c.Segment])
		w.emit("D=D+A")
		w.emit("@R13")
		w.emit("M=D")
		w.emit("@SP")
		w.emit("AM=M-1")
		w.emit("D=M")
		w.emit("@R13")
		w.emit("A=M")
		w.emit("M=D")
	case SegStatic:
		w.emit("@SP")
		w.emit("AM=M-1")
		w.emit("D=M")
		w.emit("@%s.%d", w.unit, c.Index)
		w.emit("M=D")
	}
}

func (w *Writer) writeArithmetic(c Command) {
	w.comment(c.Raw)
	switch c.Op {
	case OpAdd:
		w.emit("@SP")
		w.emit("AM=M-1")
		w.emit("D=M")
		w.emit("@SP")
		w.emit("A=M-1")
		w.emit("M=D+M")
	case OpSub:
		w.emit("@SP")
		w.emit("AM=M-1")
		w.emit("D=M")
		w.emit("@SP")
		w.emit("A=M-1")
		w.emit("M=M-D")
	case OpNeg:
		w.emit("@SP")
		w.emit("A=M-1")
		w.emit("M=-M")
	case OpAnd:
		w.emit("@SP")
		w.emit("M=M-1")
		w.emit("A=M")
		w.emit("D=M")
		w.emit("@SP")
		w.emit("A=M-1")
		w.emit("M=D&M")
	case OpOr:
		w.emit("@SP")
		w.emit("M=M-1")
		w.emit("A=M")
		w.emit("D=M")
		w.emit("@SP")
		w.emit("A=M-1")
		w.emit("M=D|M")
	case OpNot:
		w.emit("@SP")
		w.emit("A=M-1")
		w.emit("M=!M")
	case OpEq, OpGt, OpLt:
		w.writeComparison(c.Op)
	}
}

func (w *Writer) writeComparison(op Op) {
	n := w.cmpSeq
	w.cmpSeq++
	label := fmt.Sprintf("%s%d", cmpPrefix[op], n)
	cont := fmt.Sprintf("CONTINUE%d", n)
	w.emit("@SP")
	w.emit("AM=M-1")
	w.emit("D=M")
	w.emit("@SP")
	w.emit("A=M-1")
	w.emit("D=M-D")
	w.emit("@%s", label)
	w.emit("D;%s", cmpOp[op])
	w.emit("@SP")
	w.emit("A=M-1")
	w.emit("M=0")
	w.emit("@%s", cont)
	w.emit("0;JMP")
	w.emit("(%s)", label)
	w.emit("@SP")
	w.emit("A=M-1")
	w.emit("M=-1")
	w.emit("(%s)", cont)
}

func (w *Writer) writeFunction(c Command) {
	w.comment(c.Raw)
	w.emit("(%s)", c.Name)
	for i := 0; i < c.N; i++ {
		w.writePush(Command{Kind: KindPush, Segment: SegConstant, Index: 0, Raw: "local " + strconv.Itoa(i)})
	}
}

func (w *Writer) writeCall(c Command) {
	w.comment(c.Raw)
	ret := fmt.Sprintf("RETURN.%d", w.callSeq)
	w.callSeq++

	w.emit("@%s", ret)
	w.emit("D=A")
	w.pushD()
	for _, reg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		w.emit("@%s", reg)
		w.emit("D=M")
		w.pushD()
	}
	w.emit("@SP")
	w.emit("D=M")
	w.emit("@%d", c.N+5)
	w.emit("D=D-A")
	w.emit("@ARG")
	w.emit("M=D")
	w.emit("@SP")
	w.emit("D=M")
	w.emit("@LCL")
	w.emit("M=D")
	w.emit("@%s", c.Name)
	w.emit("0;JMP")
	w.emit("(%s)", ret)
}

// pushD pushes the D register onto the VM stack; used only by call's
// frame-saving sequence, which needs to push raw register values
// rather than VM segment contents.
func (w *Writer) pushD() {
	w.emit("@SP")
	w.emit("A=M")
	w.emit("M=D")
	w.emit("@SP")
	w.emit("M=M+1")
}

func (w *Writer) writeReturn(c Command) {
	w.comment(c.Raw)
	w.emit("@LCL")
	w.emit("D=M")
	w.emit("@R13")
	w.emit("M=D") // R13 = FRAME
	w.emit("@5")
	w.emit("A=D-A")
	w.emit("D=M")
	w.emit("@R14")
	w.emit("M=D") // R14 = return address
	w.emit("@SP")
	w.emit("AM=M-1")
	w.emit("D=M")
	w.emit("@ARG")
	w.emit("A=M")
	w.emit("M=D") // *ARG = pop()
	w.emit("@ARG")
	w.emit("D=M+1")
	w.emit("@SP")
	w.emit("M=D") // SP = ARG+1
	for _, reg := range []string{"THAT", "THIS", "ARG", "LCL"} {
		w.emit("@R13")
		w.emit("AM=M-1")
		w.emit("D=M")
		w.emit("@%s", reg)
		w.emit("M=D")
	}
	w.emit("@R14")
	w.emit("A=M")
	w.emit("0;JMP")
}
