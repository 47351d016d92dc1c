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
	"strings"
)

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func xmlTag(k Kind) string {
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
	default:
		return "invalid"
	}
}

// DumpTokens writes the flat token listing traditionally produced by
// the syntax analyzer's first stage: one leaf element per token,
// wrapped in a single <tokens> element. Grounded on
// write_xml_tree's token classification, with one correction: XML
// metacharacters in symbol and string tokens (<, >, &) are escaped,
// since an unescaped "<" or "&" would make the sink invalid XML.
func DumpTokens(toks []Token, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "<tokens>"); err != nil {
		return err
	}
	for _, t := range toks {
		tag := xmlTag(t.Kind)
		if _, err := fmt.Fprintf(w, "<%s> %s </%s>\n", tag, xmlEscaper.Replace(t.Text), tag); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "</tokens>")
	return err
}

// ParseTreeDumper walks the Jack grammar the same way Compiler does,
// but emits the nested XML element-per-grammar-rule tree instead of
// VM code, for use as a debugging aid (ModeDumpParseTree / "-xml tree").
type ParseTreeDumper struct {
	tz    *Tokenizer
	w     io.Writer
	depth int
	err   error
}

// NewParseTreeDumper builds a dumper reading from tz and writing to w.
func NewParseTreeDumper(tz *Tokenizer, w io.Writer) *ParseTreeDumper {
	return &ParseTreeDumper{tz: tz, w: w}
}

// Dump parses and emits the single class in the token stream.
func (d *ParseTreeDumper) Dump() error {
	return d.class()
}

func (d *ParseTreeDumper) line(s string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintln(d.w, strings.Repeat("  ", d.depth)+s)
}

func (d *ParseTreeDumper) open(tag string) {
	d.line("<" + tag + ">")
	d.depth++
}

func (d *ParseTreeDumper) close(tag string) {
	d.depth--
	d.line("</" + tag + ">")
}

// leaf emits the current token as its own element and advances.
func (d *ParseTreeDumper) leaf() error {
	t := d.tz.Current()
	tag := xmlTag(t.Kind)
	d.line(fmt.Sprintf("<%s> %s </%s>", tag, xmlEscaper.Replace(t.Text), tag))
	d.tz.Advance()
	return d.err
}

func (d *ParseTreeDumper) expectKeyword(s string) error {
	if !d.tz.IsKeyword(s) {
		return newSyntaxErr(d.tz.Current().Line, "expected keyword "+strconv.Quote(s))
	}
	return d.leaf()
}

func (d *ParseTreeDumper) expectSymbol(s string) error {
	if !d.tz.IsSymbol(s) {
		return newSyntaxErr(d.tz.Current().Line, "expected symbol "+strconv.Quote(s))
	}
	return d.leaf()
}

func (d *ParseTreeDumper) expectIdentifier() error {
	if !d.tz.IsIdentifier() {
		return newSyntaxErr(d.tz.Current().Line, "expected identifier")
	}
	return d.leaf()
}

func (d *ParseTreeDumper) expectType() error {
	if d.tz.IsBuiltinType() || d.tz.IsIdentifier() {
		return d.leaf()
	}
	return newSyntaxErr(d.tz.Current().Line, "expected a type")
}

func (d *ParseTreeDumper) class() error {
	d.open("class")
	if err := d.expectKeyword("class"); err != nil {
		return err
	}
	if err := d.expectIdentifier(); err != nil {
		return err
	}
	if err := d.expectSymbol("{"); err != nil {
		return err
	}
	for d.tz.IsKeyword("static") || d.tz.IsKeyword("field") {
		if err := d.classVarDec(); err != nil {
			return err
		}
	}
	for d.tz.IsKeyword("constructor") || d.tz.IsKeyword("function") || d.tz.IsKeyword("method") {
		if err := d.subroutineDec(); err != nil {
			return err
		}
	}
	if err := d.expectSymbol("}"); err != nil {
		return err
	}
	d.close("class")
	return d.err
}

func (d *ParseTreeDumper) classVarDec() error {
	d.open("classVarDec")
	if d.tz.IsKeyword("static") {
		if err := d.expectKeyword("static"); err != nil {
			return err
		}
	} else if err := d.expectKeyword("field"); err != nil {
		return err
	}
	if err := d.expectType(); err != nil {
		return err
	}
	if err := d.expectIdentifier(); err != nil {
		return err
	}
	for d.tz.IsSymbol(",") {
		if err := d.expectSymbol(","); err != nil {
			return err
		}
		if err := d.expectIdentifier(); err != nil {
			return err
		}
	}
	if err := d.expectSymbol(";"); err != nil {
		return err
	}
	d.close("classVarDec")
	return d.err
}

func (d *ParseTreeDumper) subroutineDec() error {
	d.open("subroutineDec")
	kw := d.tz.Current().Text
	if err := d.expectKeyword(kw); err != nil {
		return err
	}
	if d.tz.IsKeyword("void") {
		if err := d.expectKeyword("void"); err != nil {
			return err
		}
	} else if err := d.expectType(); err != nil {
		return err
	}
	if err := d.expectIdentifier(); err != nil {
		return err
	}
	if err := d.expectSymbol("("); err != nil {
		return err
	}
	if err := d.parameterList(); err != nil {
		return err
	}
	if err := d.expectSymbol(")"); err != nil {
		return err
	}
	if err := d.subroutineBody(); err != nil {
		return err
	}
	d.close("subroutineDec")
	return d.err
}

func (d *ParseTreeDumper) parameterList() error {
	d.open("parameterList")
	if !d.tz.IsSymbol(")") {
		if err := d.expectType(); err != nil {
			return err
		}
		if err := d.expectIdentifier(); err != nil {
			return err
		}
		for d.tz.IsSymbol(",") {
			if err := d.expectSymbol(","); err != nil {
				return err
			}
			if err := d.expectType(); err != nil {
				return err
			}
			if err := d.expectIdentifier(); err != nil {
				return err
			}
		}
	}
	d.close("parameterList")
	return d.err
}

func (d *ParseTreeDumper) subroutineBody() error {
	d.open("subroutineBody")
	if err := d.expectSymbol("{"); err != nil {
		return err
	}
	for d.tz.IsKeyword("var") {
		if err := d.varDec(); err != nil {
			return err
		}
	}
	if err := d.statements(); err != nil {
		return err
	}
	if err := d.expectSymbol("}"); err != nil {
		return err
	}
	d.close("subroutineBody")
	return d.err
}

func (d *ParseTreeDumper) varDec() error {
	d.open("varDec")
	if err := d.expectKeyword("var"); err != nil {
		return err
	}
	if err := d.expectType(); err != nil {
		return err
	}
	if err := d.expectIdentifier(); err != nil {
		return err
	}
	for d.tz.IsSymbol(",") {
		if err := d.expectSymbol(","); err != nil {
			return err
		}
		if err := d.expectIdentifier(); err != nil {
			return err
		}
	}
	if err := d.expectSymbol(";"); err != nil {
		return err
	}
	d.close("varDec")
	return d.err
}

func (d *ParseTreeDumper) statements() error {
	d.open("statements")
	for !d.tz.IsSymbol("}") {
		var err error
		switch {
		case d.tz.IsKeyword("let"):
			err = d.letStatement()
		case d.tz.IsKeyword("if"):
			err = d.ifStatement()
		case d.tz.IsKeyword("while"):
			err = d.whileStatement()
		case d.tz.IsKeyword("do"):
			err = d.doStatement()
		case d.tz.IsKeyword("return"):
			err = d.returnStatement()
		default:
			err = newSyntaxErr(d.tz.Current().Line, "unexpected token in statement position")
		}
		if err != nil {
			return err
		}
	}
	d.close("statements")
	return d.err
}

func (d *ParseTreeDumper) letStatement() error {
	d.open("letStatement")
	if err := d.expectKeyword("let"); err != nil {
		return err
	}
	if err := d.expectIdentifier(); err != nil {
		return err
	}
	if d.tz.IsSymbol("[") {
		if err := d.expectSymbol("["); err != nil {
			return err
		}
		if err := d.expression(); err != nil {
			return err
		}
		if err := d.expectSymbol("]"); err != nil {
			return err
		}
	}
	if err := d.expectSymbol("="); err != nil {
		return err
	}
	if err := d.expression(); err != nil {
		return err
	}
	if err := d.expectSymbol(";"); err != nil {
		return err
	}
	d.close("letStatement")
	return d.err
}

func (d *ParseTreeDumper) ifStatement() error {
	d.open("ifStatement")
	if err := d.expectKeyword("if"); err != nil {
		return err
	}
	if err := d.expectSymbol("("); err != nil {
		return err
	}
	if err := d.expression(); err != nil {
		return err
	}
	if err := d.expectSymbol(")"); err != nil {
		return err
	}
	if err := d.expectSymbol("{"); err != nil {
		return err
	}
	if err := d.statements(); err != nil {
		return err
	}
	if err := d.expectSymbol("}"); err != nil {
		return err
	}
	if d.tz.IsKeyword("else") {
		if err := d.expectKeyword("else"); err != nil {
			return err
		}
		if err := d.expectSymbol("{"); err != nil {
			return err
		}
		if err := d.statements(); err != nil {
			return err
		}
		if err := d.expectSymbol("}"); err != nil {
			return err
		}
	}
	d.close("ifStatement")
	return d.err
}

func (d *ParseTreeDumper) whileStatement() error {
	d.open("whileStatement")
	if err := d.expectKeyword("while"); err != nil {
		return err
	}
	if err := d.expectSymbol("("); err != nil {
		return err
	}
	if err := d.expression(); err != nil {
		return err
	}
	if err := d.expectSymbol(")"); err != nil {
		return err
	}
	if err := d.expectSymbol("{"); err != nil {
		return err
	}
	if err := d.statements(); err != nil {
		return err
	}
	if err := d.expectSymbol("}"); err != nil {
		return err
	}
	d.close("whileStatement")
	return d.err
}

func (d *ParseTreeDumper) doStatement() error {
	d.open("doStatement")
	if err := d.expectKeyword("do"); err != nil {
		return err
	}
	if err := d.subroutineCall(); err != nil {
		return err
	}
	if err := d.expectSymbol(";"); err != nil {
		return err
	}
	d.close("doStatement")
	return d.err
}

func (d *ParseTreeDumper) returnStatement() error {
	d.open("returnStatement")
	if err := d.expectKeyword("return"); err != nil {
		return err
	}
	if !d.tz.IsSymbol(";") {
		if err := d.expression(); err != nil {
			return err
		}
	}
	if err := d.expectSymbol(";"); err != nil {
		return err
	}
	d.close("returnStatement")
	return d.err
}

// subroutineCall is not its own element in the classic grammar: it is
// inlined directly into doStatement and term.
func (d *ParseTreeDumper) subroutineCall() error {
	if err := d.expectIdentifier(); err != nil {
		return err
	}
	switch {
	case d.tz.IsSymbol("."):
		if err := d.expectSymbol("."); err != nil {
			return err
		}
		if err := d.expectIdentifier(); err != nil {
			return err
		}
		if err := d.expectSymbol("("); err != nil {
			return err
		}
		if err := d.expressionList(); err != nil {
			return err
		}
		return d.expectSymbol(")")
	case d.tz.IsSymbol("("):
		if err := d.expectSymbol("("); err != nil {
			return err
		}
		if err := d.expressionList(); err != nil {
			return err
		}
		return d.expectSymbol(")")
	default:
		return newSyntaxErr(d.tz.Current().Line, "expected ( or . in subroutine call")
	}
}

func (d *ParseTreeDumper) expressionList() error {
	d.open("expressionList")
	if !d.tz.IsSymbol(")") {
		if err := d.expression(); err != nil {
			return err
		}
		for d.tz.IsSymbol(",") {
			if err := d.expectSymbol(","); err != nil {
				return err
			}
			if err := d.expression(); err != nil {
				return err
			}
		}
	}
	d.close("expressionList")
	return d.err
}

func (d *ParseTreeDumper) expression() error {
	d.open("expression")
	if err := d.term(); err != nil {
		return err
	}
	for d.tz.IsBuiltinOp() {
		if err := d.expectSymbol(d.tz.Current().Text); err != nil {
			return err
		}
		if err := d.term(); err != nil {
			return err
		}
	}
	d.close("expression")
	return d.err
}

func (d *ParseTreeDumper) term() error {
	d.open("term")
	tok := d.tz.Current()
	switch {
	case tok.Kind == IntConstKind, tok.Kind == StringConstKind:
		if err := d.leaf(); err != nil {
			return err
		}
	case tok.Kind == KeywordKind:
		if err := d.leaf(); err != nil {
			return err
		}
	case d.tz.IsSymbol("("):
		if err := d.expectSymbol("("); err != nil {
			return err
		}
		if err := d.expression(); err != nil {
			return err
		}
		if err := d.expectSymbol(")"); err != nil {
			return err
		}
	case d.tz.IsBuiltinUnaryOp():
		if err := d.expectSymbol(tok.Text); err != nil {
			return err
		}
		if err := d.term(); err != nil {
			return err
		}
	case tok.Kind == IdentifierKind:
		next := d.tz.Peek()
		switch {
		case next.Kind == SymbolKind && next.Text == "[":
			if err := d.expectIdentifier(); err != nil {
				return err
			}
			if err := d.expectSymbol("["); err != nil {
				return err
			}
			if err := d.expression(); err != nil {
				return err
			}
			if err := d.expectSymbol("]"); err != nil {
				return err
			}
		case next.Kind == SymbolKind && (next.Text == "(" || next.Text == "."):
			if err := d.subroutineCall(); err != nil {
				return err
			}
		default:
			if err := d.expectIdentifier(); err != nil {
				return err
			}
		}
	default:
		return newSyntaxErr(tok.Line, "unexpected token in expression")
	}
	d.close("term")
	return d.err
}
