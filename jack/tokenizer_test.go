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

package jack_test

import (
	"testing"

	"github.com/robinovitch61/nand2tetris/jack"
)

func TestTokenizer_CursorAdvance(t *testing.T) {
	toks, err := jack.Lex("let x = 1;")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	tz := jack.NewTokenizer(toks)
	if !tz.IsKeyword("let") {
		t.Fatal("expected cursor on 'let'")
	}
	if tz.Peek().Text != "x" {
		t.Fatalf("Peek = %q, want %q", tz.Peek().Text, "x")
	}
	tz.Advance()
	if !tz.IsIdentifier() {
		t.Fatal("expected cursor on identifier 'x'")
	}
	name, err := tz.ExpectIdentifier()
	if err != nil || name != "x" {
		t.Fatalf("ExpectIdentifier = %q, %v", name, err)
	}
	if !tz.IsSymbol("=") {
		t.Fatal("expected cursor on '='")
	}
}

func TestTokenizer_AtEnd(t *testing.T) {
	toks, _ := jack.Lex("x")
	tz := jack.NewTokenizer(toks)
	if tz.AtEnd() {
		t.Fatal("should not be at end before consuming the only token")
	}
	tz.Advance()
	if !tz.AtEnd() {
		t.Fatal("should be at end after consuming the only token")
	}
	if tz.Current() != (jack.Token{}) {
		t.Errorf("Current() past end = %+v, want zero value", tz.Current())
	}
}

func TestTokenizer_BuiltinTypeAndOps(t *testing.T) {
	toks, _ := jack.Lex("int + - ~ Foo")
	tz := jack.NewTokenizer(toks)
	if !tz.IsBuiltinType() {
		t.Error("'int' should be a builtin type")
	}
	tz.Advance()
	if !tz.IsBuiltinOp() {
		t.Error("'+' should be a binary op")
	}
	if tz.IsBuiltinUnaryOp() {
		t.Error("'+' must not be classified as a unary op")
	}
	tz.Advance()
	if !tz.IsBuiltinOp() || !tz.IsBuiltinUnaryOp() {
		t.Error("'-' is both a binary and unary op")
	}
	tz.Advance()
	if tz.IsBuiltinOp() {
		t.Error("'~' is unary-only, not a binary op")
	}
	if !tz.IsBuiltinUnaryOp() {
		t.Error("'~' should be a unary op")
	}
	tz.Advance()
	if tz.IsBuiltinType() {
		t.Error("'Foo' is a user class, not a builtin type")
	}
}

func TestTokenizer_ExpectMismatchIsFatal(t *testing.T) {
	toks, _ := jack.Lex("foo")
	tz := jack.NewTokenizer(toks)
	if err := tz.Expect("bar"); err == nil {
		t.Fatal("expected error when current token does not match")
	}
}

func TestToken_IntConstRange(t *testing.T) {
	toks, err := jack.Lex("32767")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	n, err := toks[0].Int()
	if err != nil || n != 32767 {
		t.Fatalf("Int() = %d, %v, want 32767, nil", n, err)
	}
}

func TestToken_IntConstOverflowIsFatal(t *testing.T) {
	// The regex allows up to 5 digits, so 99999 lexes as one token;
	// rejection happens lazily when the tokenizer classifies its value.
	toks, err := jack.Lex("99999")
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if _, err := toks[0].Int(); err == nil {
		t.Fatal("expected 99999 to be rejected as out of range")
	}
}
