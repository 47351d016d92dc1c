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

// Package asm assembles Hack assembly (.asm) into Hack binary (16-bit
// ASCII words, one per line, the .hack format).
//
// Supported instruction forms:
//
//	@symbol			( A-instruction, symbolic )
//	@123			( A-instruction, literal address )
//	dest=comp;jump		( C-instruction, each of dest/jump optional )
//	(LABEL)			( label declaration, binds to the address of
//				  the next instruction )
//	// line comment
//
// Assembly proceeds in two passes. The first pass walks the token
// stream and records the address of every (LABEL) declaration without
// emitting any code. The second pass resolves every @symbol reference:
// a name already bound by pass one (or present in the builtin table)
// resolves to its address; any other name is a variable and is bound,
// in first-use order, to the next free address starting at RAM[16].
//
// Parse and semantic errors are collected rather than aborting after
// the first; Assemble returns them together as an Errors value. The
// first pass stops after 20 errors, and the second pass runs only when
// the first pass found none.
package asm
