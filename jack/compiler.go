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

// Compiler is the recursive-descent compilation engine: it parses the
// Jack grammar and streams VM code inline as it goes. No AST is kept.
// Every compile* method begins with the cursor on its construct's
// first token and returns with the cursor on the token that follows
// its last.
type Compiler struct {
	tz       *Tokenizer
	sym      *SymbolTable
	out      *VMWriter
	class    string
	labelSeq int // branch-label counter; runs across the whole class so labels stay unique in the unit
}

// NewCompiler builds a Compiler that reads toks and writes VM text to out.
func NewCompiler(tz *Tokenizer, out *VMWriter) *Compiler {
	return &Compiler{tz: tz, sym: NewSymbolTable(), out: out}
}

// Compile compiles the single class in the token stream.
func (c *Compiler) Compile() error {
	return c.compileClass()
}

func (c *Compiler) newLabel() string {
	l := "L" + strconv.Itoa(c.labelSeq)
	c.labelSeq++
	return l
}

func (c *Compiler) varAccess(name string) (Segment, int, error) {
	kind := c.sym.KindOf(name)
	seg, ok := kindSegment[kind]
	if !ok {
		return "", 0, newSemanticErr(c.tz.Current().Line, "undefined identifier "+strconv.Quote(name))
	}
	idx, err := c.sym.IndexOf(name)
	if err != nil {
		return "", 0, newSemanticErr(c.tz.Current().Line, err.Error())
	}
	return seg, idx, nil
}

func (c *Compiler) compileClass() error {
	if err := c.tz.Expect("class"); err != nil {
		return err
	}
	name, err := c.tz.ExpectIdentifier()
	if err != nil {
		return err
	}
	c.class = name

	if err := c.tz.Expect("{"); err != nil {
		return err
	}
	for c.tz.IsKeyword("static") || c.tz.IsKeyword("field") {
		if err := c.compileClassVarDec(); err != nil {
			return err
		}
	}
	for c.tz.IsKeyword("constructor") || c.tz.IsKeyword("function") || c.tz.IsKeyword("method") {
		if err := c.compileSubroutine(); err != nil {
			return err
		}
	}
	if err := c.tz.Expect("}"); err != nil {
		return err
	}
	if !c.tz.AtEnd() {
		return newSyntaxErr(c.tz.Current().Line, "unexpected trailing tokens after class body")
	}
	return nil
}

func (c *Compiler) parseType() (string, error) {
	if c.tz.IsBuiltinType() || c.tz.IsIdentifier() {
		t := c.tz.Current().Text
		c.tz.Advance()
		return t, nil
	}
	return "", newSyntaxErr(c.tz.Current().Line, "expected a type, got "+strconv.Quote(c.tz.Current().Text))
}

func (c *Compiler) compileClassVarDec() error {
	var kind SymKind
	switch {
	case c.tz.IsKeyword("static"):
		kind = Static
	case c.tz.IsKeyword("field"):
		kind = Field
	default:
		return newSyntaxErr(c.tz.Current().Line, "expected static or field")
	}
	c.tz.Advance()
	_, err := c.compileVarSequence(kind)
	return err
}

// compileVarSequence parses "type name (',' name)* ';'", declaring
// each name at kind, and returns how many it declared.
func (c *Compiler) compileVarSequence(kind SymKind) (int, error) {
	typeName, err := c.parseType()
	if err != nil {
		return 0, err
	}
	count := 0
	for {
		name, err := c.tz.ExpectIdentifier()
		if err != nil {
			return count, err
		}
		c.sym.Define(name, typeName, kind)
		count++
		if c.tz.IsSymbol(",") {
			c.tz.Advance()
			continue
		}
		break
	}
	if err := c.tz.Expect(";"); err != nil {
		return count, err
	}
	return count, nil
}

func (c *Compiler) compileSubroutine() error {
	subKind := c.tz.Current().Text // constructor | function | method
	c.tz.Advance()

	c.sym.StartSubroutine()

	if subKind == "method" {
		c.sym.Define("this", c.class, Argument)
	}

	// return type: "void" or a type; unused beyond the grammar position.
	if c.tz.IsKeyword("void") {
		c.tz.Advance()
	} else if _, err := c.parseType(); err != nil {
		return err
	}

	name, err := c.tz.ExpectIdentifier()
	if err != nil {
		return err
	}

	if err := c.tz.Expect("("); err != nil {
		return err
	}
	if !c.tz.IsSymbol(")") {
		if err := c.compileParameterList(); err != nil {
			return err
		}
	}
	if err := c.tz.Expect(")"); err != nil {
		return err
	}

	if err := c.tz.Expect("{"); err != nil {
		return err
	}
	nLocals := 0
	for c.tz.IsKeyword("var") {
		n, err := c.compileVarDec()
		if err != nil {
			return err
		}
		nLocals += n
	}

	c.out.WriteFunction(c.class+"."+name, nLocals)

	switch subKind {
	case "constructor":
		nFields := c.sym.VarCount(Field)
		c.out.WritePush(SegConstant, nFields)
		c.out.WriteCall("Memory.alloc", 1)
		c.out.WritePop(SegPointer, 0)
	case "method":
		c.out.WritePush(SegArgument, 0)
		c.out.WritePop(SegPointer, 0)
	}

	if err := c.compileStatements(); err != nil {
		return err
	}
	return c.tz.Expect("}")
}

func (c *Compiler) compileParameterList() error {
	for {
		typeName, err := c.parseType()
		if err != nil {
			return err
		}
		name, err := c.tz.ExpectIdentifier()
		if err != nil {
			return err
		}
		c.sym.Define(name, typeName, Argument)
		if c.tz.IsSymbol(",") {
			c.tz.Advance()
			continue
		}
		break
	}
	return nil
}

func (c *Compiler) compileVarDec() (int, error) {
	if !c.tz.IsKeyword("var") {
		return 0, nil
	}
	c.tz.Advance()
	return c.compileVarSequence(Var)
}

func (c *Compiler) compileStatements() error {
	for !c.tz.IsSymbol("}") {
		var err error
		switch {
		case c.tz.IsKeyword("let"):
			err = c.compileLet()
		case c.tz.IsKeyword("if"):
			err = c.compileIf()
		case c.tz.IsKeyword("while"):
			err = c.compileWhile()
		case c.tz.IsKeyword("do"):
			err = c.compileDo()
		case c.tz.IsKeyword("return"):
			err = c.compileReturn()
		default:
			err = newSyntaxErr(c.tz.Current().Line, "unexpected token "+strconv.Quote(c.tz.Current().Text)+" in statement position")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Compiler) compileDo() error {
	c.tz.Advance() // "do"
	if err := c.compileSubroutineCall(""); err != nil {
		return err
	}
	c.out.WritePop(SegTemp, 0) // discard unused return value
	return c.tz.Expect(";")
}

func (c *Compiler) compileLet() error {
	c.tz.Advance() // "let"
	name, err := c.tz.ExpectIdentifier()
	if err != nil {
		return err
	}

	isArray := false
	if c.tz.IsSymbol("[") {
		isArray = true
		c.tz.Advance()
		seg, idx, err := c.varAccess(name)
		if err != nil {
			return err
		}
		c.out.WritePush(seg, idx)
		if err := c.compileExpression(); err != nil {
			return err
		}
		c.out.WriteArithmetic(OpAdd)
		if err := c.tz.Expect("]"); err != nil {
			return err
		}
	}

	if err := c.tz.Expect("="); err != nil {
		return err
	}
	if err := c.compileExpression(); err != nil {
		return err
	}
	if err := c.tz.Expect(";"); err != nil {
		return err
	}

	if isArray {
		c.out.WritePop(SegTemp, 0)
		c.out.WritePop(SegPointer, 1)
		c.out.WritePush(SegTemp, 0)
		c.out.WritePop(SegThat, 0)
		return nil
	}
	seg, idx, err := c.varAccess(name)
	if err != nil {
		return err
	}
	c.out.WritePop(seg, idx)
	return nil
}

func (c *Compiler) compileWhile() error {
	if err := c.tz.Expect("while"); err != nil {
		return err
	}
	if err := c.tz.Expect("("); err != nil {
		return err
	}
	begin, end := c.newLabel(), c.newLabel()
	c.out.WriteLabel(begin)
	if err := c.compileExpression(); err != nil {
		return err
	}
	c.out.WriteArithmetic(OpNot)
	c.out.WriteIf(end)
	if err := c.tz.Expect(")"); err != nil {
		return err
	}
	if err := c.tz.Expect("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	if err := c.tz.Expect("}"); err != nil {
		return err
	}
	c.out.WriteGoto(begin)
	c.out.WriteLabel(end)
	return nil
}

func (c *Compiler) compileIf() error {
	if err := c.tz.Expect("if"); err != nil {
		return err
	}
	if err := c.tz.Expect("("); err != nil {
		return err
	}
	elseLabel, endLabel := c.newLabel(), c.newLabel()
	if err := c.compileExpression(); err != nil {
		return err
	}
	c.out.WriteArithmetic(OpNot)
	c.out.WriteIf(elseLabel)
	if err := c.tz.Expect(")"); err != nil {
		return err
	}
	if err := c.tz.Expect("{"); err != nil {
		return err
	}
	if err := c.compileStatements(); err != nil {
		return err
	}
	if err := c.tz.Expect("}"); err != nil {
		return err
	}
	c.out.WriteGoto(endLabel)
	c.out.WriteLabel(elseLabel)
	if c.tz.IsKeyword("else") {
		c.tz.Advance()
		if err := c.tz.Expect("{"); err != nil {
			return err
		}
		if err := c.compileStatements(); err != nil {
			return err
		}
		if err := c.tz.Expect("}"); err != nil {
			return err
		}
	}
	c.out.WriteLabel(endLabel)
	return nil
}

func (c *Compiler) compileReturn() error {
	c.tz.Advance() // "return"
	if c.tz.IsSymbol(";") {
		c.out.WritePush(SegConstant, 0)
	} else if err := c.compileExpression(); err != nil {
		return err
	}
	c.out.WriteReturn()
	return c.tz.Expect(";")
}

// compileSubroutineCall handles "do name(...)", "do x.name(...)", and
// "do C.name(...)" alike (spec rules 10-12), and is also reachable
// from compileVarNameSubterm for subroutine calls used as terms. name
// is the already-consumed leading identifier, or "" to parse it here.
func (c *Compiler) compileSubroutineCall(name string) error {
	if name == "" {
		n, err := c.tz.ExpectIdentifier()
		if err != nil {
			return err
		}
		name = n
	}

	switch {
	case c.tz.IsSymbol("."):
		c.tz.Advance()
		method, err := c.tz.ExpectIdentifier()
		if err != nil {
			return err
		}
		nArgs := 0
		fullName := name + "." + method
		if c.sym.Contains(name) {
			seg, idx, err := c.varAccess(name)
			if err != nil {
				return err
			}
			c.out.WritePush(seg, idx)
			nArgs++
			typeName, err := c.sym.TypeOf(name)
			if err != nil {
				return newSemanticErr(c.tz.Current().Line, err.Error())
			}
			fullName = typeName + "." + method
		}
		if err := c.tz.Expect("("); err != nil {
			return err
		}
		n, err := c.compileExpressionList()
		if err != nil {
			return err
		}
		nArgs += n
		if err := c.tz.Expect(")"); err != nil {
			return err
		}
		c.out.WriteCall(fullName, nArgs)
		return nil
	case c.tz.IsSymbol("("):
		c.out.WritePush(SegPointer, 0)
		c.tz.Advance()
		n, err := c.compileExpressionList()
		if err != nil {
			return err
		}
		if err := c.tz.Expect(")"); err != nil {
			return err
		}
		c.out.WriteCall(c.class+"."+name, 1+n)
		return nil
	default:
		return newSyntaxErr(c.tz.Current().Line, "expected ( or . after "+strconv.Quote(name))
	}
}

func (c *Compiler) compileExpressionList() (int, error) {
	if c.tz.IsSymbol(")") {
		return 0, nil
	}
	count := 0
	for {
		if err := c.compileExpression(); err != nil {
			return count, err
		}
		count++
		if c.tz.IsSymbol(",") {
			c.tz.Advance()
			continue
		}
		break
	}
	return count, nil
}

// compileExpression evaluates left-to-right with no operator
// precedence (spec rule 13): "a + b * c" compiles as "(a + b) * c".
func (c *Compiler) compileExpression() error {
	if err := c.compileTerm(); err != nil {
		return err
	}
	for c.tz.IsBuiltinOp() {
		op := c.tz.Current().Text
		c.tz.Advance()
		if err := c.compileTerm(); err != nil {
			return err
		}
		switch op {
		case "+":
			c.out.WriteArithmetic(OpAdd)
		case "-":
			c.out.WriteArithmetic(OpSub)
		case "*":
			c.out.WriteCall("Math.multiply", 2)
		case "/":
			c.out.WriteCall("Math.divide", 2)
		case "&":
			c.out.WriteArithmetic(OpAnd)
		case "|":
			c.out.WriteArithmetic(OpOr)
		case "<":
			c.out.WriteArithmetic(OpLt)
		case ">":
			c.out.WriteArithmetic(OpGt)
		case "=":
			c.out.WriteArithmetic(OpEq)
		}
	}
	return nil
}

func (c *Compiler) compileTerm() error {
	tok := c.tz.Current()
	switch {
	case tok.Kind == IntConstKind:
		n, err := tok.Int()
		if err != nil {
			return err
		}
		c.out.WritePush(SegConstant, n)
		c.tz.Advance()
		return nil
	case tok.Kind == StringConstKind:
		c.out.WriteString(tok.Text)
		c.tz.Advance()
		return nil
	case tok.Kind == KeywordKind:
		switch tok.Text {
		case "true":
			c.out.WritePush(SegConstant, 0)
			c.out.WriteArithmetic(OpNot)
		case "false", "null":
			c.out.WritePush(SegConstant, 0)
		case "this":
			c.out.WritePush(SegPointer, 0)
		default:
			return newSyntaxErr(tok.Line, "unexpected keyword "+strconv.Quote(tok.Text)+" in expression")
		}
		c.tz.Advance()
		return nil
	case c.tz.IsSymbol("("):
		c.tz.Advance()
		if err := c.compileExpression(); err != nil {
			return err
		}
		return c.tz.Expect(")")
	case c.tz.IsBuiltinUnaryOp():
		op := tok.Text
		c.tz.Advance()
		if err := c.compileTerm(); err != nil {
			return err
		}
		if op == "-" {
			c.out.WriteArithmetic(OpNeg)
		} else {
			c.out.WriteArithmetic(OpNot)
		}
		return nil
	default:
		return c.compileVarNameSubterm()
	}
}

func (c *Compiler) compileVarNameSubterm() error {
	name, err := c.tz.ExpectIdentifier()
	if err != nil {
		return err
	}
	switch {
	case c.tz.IsSymbol("["):
		c.tz.Advance()
		seg, idx, err := c.varAccess(name)
		if err != nil {
			return err
		}
		c.out.WritePush(seg, idx)
		if err := c.compileExpression(); err != nil {
			return err
		}
		c.out.WriteArithmetic(OpAdd)
		if err := c.tz.Expect("]"); err != nil {
			return err
		}
		c.out.WritePop(SegPointer, 1)
		c.out.WritePush(SegThat, 0)
		return nil
	case c.tz.IsSymbol("(") || c.tz.IsSymbol("."):
		return c.compileSubroutineCall(name)
	default:
		seg, idx, err := c.varAccess(name)
		if err != nil {
			return err
		}
		c.out.WritePush(seg, idx)
		return nil
	}
}
