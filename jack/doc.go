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

// Package jack compiles Jack source (.jack) straight to VM bytecode
// (.vm), with no intermediate AST: the recursive-descent Compiler
// streams VM text as it walks the grammar.
//
// The pipeline within the package is: Lex strips comments and
// produces an ordered Token slice; NewTokenizer wraps it in a cursor
// with typed classification predicates; NewCompiler drives the cursor
// through the Jack grammar, consulting and populating a SymbolTable
// as it resolves identifiers, and writes through a VMWriter.
//
// A second consumer of the same Lex/Tokenizer front end is the
// syntax-analyzer debugging sub-mode: DumpTokens and
// ParseTreeDumper emit the traditional nand2tetris XML token and
// parse-tree dumps instead of VM code, for inspecting what the
// compiler saw without running code generation.
//
// Every error is fatal (no parse-error recovery, no multi-error
// reporting): a lexical, syntactic, or semantic problem returns a
// *CompileError and the caller stops.
package jack
