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

// Package vm translates stack-based VM bytecode (.vm) into Hack
// assembly (.asm).
//
// The translator has no backward-reference problem: every VM label
// becomes a symbolic Hack assembly label, and symbolic resolution is
// left entirely to the downstream assembler (package asm). That keeps
// this package a single forward pass: parse a command, emit assembly,
// move on.
//
// Three pieces of state live in the Writer for one translation run. The
// comparison-label counter and the call-site return-label counter thread
// across files when a whole directory is translated together (so the
// labels of "eq"/"gt"/"lt" and "call" never collide across concatenated
// units); the static-segment name is set per input file and namespaces
// "static i" as the assembly symbol "Unit.i".
package vm
