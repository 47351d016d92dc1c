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

// Kind tags the shape of a parsed VM command.
type Kind int

const (
	KindArithmetic Kind = iota
	KindPush
	KindPop
	KindLabel
	KindGoto
	KindIfGoto
	KindFunction
	KindCall
	KindReturn
)

// Op names an arithmetic/logical command.
type Op string

const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpNeg Op = "neg"
	OpEq  Op = "eq"
	OpGt  Op = "gt"
	OpLt  Op = "lt"
	OpAnd Op = "and"
	OpOr  Op = "or"
	OpNot Op = "not"
)

// Segment names a VM memory segment.
type Segment string

const (
	SegConstant Segment = "constant"
	SegLocal    Segment = "local"
	SegArgument Segment = "argument"
	SegThis     Segment = "this"
	SegThat     Segment = "that"
	SegTemp     Segment = "temp"
	SegPointer  Segment = "pointer"
	SegStatic   Segment = "static"
)

// Command is one parsed VM instruction. Only the fields relevant to
// Kind are populated; the rest take their zero value.
type Command struct {
	Kind    Kind
	Op      Op
	Segment Segment
	Index   int
	Name    string // label/goto/if-goto/function/call target
	N       int    // function: local count; call: argument count

	Raw  string // original source line, echoed as an assembly comment
	Line int    // 1-based source line, for diagnostics
}
