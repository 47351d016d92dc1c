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

package asm

import (
	"fmt"
	"strings"
	"text/scanner"
)

// Errors collects every diagnostic produced while assembling a source
// file. A single malformed C-instruction does not prevent the parser
// from reporting problems with the rest of the file.
type Errors []struct {
	Pos scanner.Position
	Msg string
}

func (e Errors) Error() string {
	l := make([]string, 0, len(e))
	for _, err := range e {
		l = append(l, fmt.Sprintf("%s: %s", err.Pos, err.Msg))
	}
	return strings.Join(l, "\n")
}

func newError(pos scanner.Position, msg string) struct {
	Pos scanner.Position
	Msg string
} {
	return struct {
		Pos scanner.Position
		Msg string
	}{pos, msg}
}
