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

import "fmt"

// errKind distinguishes the error taxonomy of spec §7 for diagnostics;
// it does not change handling, since the compiler has no recovery.
type errKind int

const (
	lexErr errKind = iota
	syntaxErr
	semanticErr
)

// CompileError is the single fatal error type produced by the lexer,
// tokenizer, and compilation engine. The pipeline stops at the first
// one; there is no recovery and no multi-error reporting (spec §7).
type CompileError struct {
	kind errKind
	Line int
	Msg  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func newLexErr(line int, msg string) error {
	return &CompileError{kind: lexErr, Line: line, Msg: msg}
}

func newSyntaxErr(line int, msg string) error {
	return &CompileError{kind: syntaxErr, Line: line, Msg: msg}
}

func newSemanticErr(line int, msg string) error {
	return &CompileError{kind: semanticErr, Line: line, Msg: msg}
}
