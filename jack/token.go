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

import "strconv"

// Kind tags a Token's lexical class.
type Kind int

const (
	InvalidKind Kind = iota
	KeywordKind
	SymbolKind
	IntConstKind
	StringConstKind
	IdentifierKind
)

func (k Kind) String() string {
	switch k {
	case KeywordKind:
		return "keyword"
	case SymbolKind:
		return "symbol"
	case IntConstKind:
		return "integerConstant"
	case StringConstKind:
		return "stringConstant"
	case IdentifierKind:
		return "identifier"
	}
	return "invalid"
}

// Keywords is the full Jack keyword set (spec §3).
var Keywords = map[string]bool{
	"class": true, "constructor": true, "function": true, "method": true,
	"field": true, "static": true, "var": true, "int": true, "char": true,
	"boolean": true, "void": true, "true": true, "false": true, "null": true,
	"this": true, "let": true, "do": true, "if": true, "else": true,
	"while": true, "return": true,
}

// Symbols is the full single-character symbol set (spec §3).
const Symbols = "{}()[].,;+-*/&|<>=~"

// MaxIntConst is the largest value a Jack integer constant may carry:
// the max positive signed 16-bit integer on the Hack CPU.
const MaxIntConst = 32767

// Token is one immutable lexical unit. Text holds the literal source
// text for everything except StringConstKind, where it holds the
// string's contents with the surrounding quotes stripped.
type Token struct {
	Kind Kind
	Text string
	Line int
}

// Int parses an IntConstKind token's text, rejecting values outside
// 0..MaxIntConst per spec §4.2.
func (t Token) Int() (int, error) {
	n, err := strconv.Atoi(t.Text)
	if err != nil {
		return 0, newLexErr(t.Line, "invalid integer constant "+strconv.Quote(t.Text))
	}
	if n < 0 || n > MaxIntConst {
		return 0, newLexErr(t.Line, "integer constant "+t.Text+" out of range 0.."+strconv.Itoa(MaxIntConst))
	}
	return n, nil
}
