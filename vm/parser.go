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

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

var arithmeticOps = map[string]Op{
	"add": OpAdd, "sub": OpSub, "neg": OpNeg,
	"eq": OpEq, "gt": OpGt, "lt": OpLt,
	"and": OpAnd, "or": OpOr, "not": OpNot,
}

var segmentNames = map[string]Segment{
	"constant": SegConstant, "local": SegLocal, "argument": SegArgument,
	"this": SegThis, "that": SegThat, "temp": SegTemp,
	"pointer": SegPointer, "static": SegStatic,
}

// segmentSize bounds the index of fixed-size segments; a segment absent
// from the map has no index bound.
var segmentSize = map[Segment]int{
	SegTemp:    8,
	SegPointer: 2,
}

// ParseFile reads a whole .vm unit and returns its commands in source
// order. file is used only in diagnostics.
func ParseFile(file string, r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		line := stripComment(raw)
		if line == "" {
			continue
		}
		cmd, err := parseLine(file, lineNo, raw, line)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func parseLine(file string, lineNo int, raw, line string) (Command, error) {
	fields := strings.Fields(line)
	cmd := Command{Raw: raw, Line: lineNo}

	if op, ok := arithmeticOps[fields[0]]; ok {
		if len(fields) != 1 {
			return cmd, cmdErr(file, lineNo, line, "arithmetic command takes no operands")
		}
		cmd.Kind = KindArithmetic
		cmd.Op = op
		return cmd, nil
	}

	switch fields[0] {
	case "push", "pop":
		if len(fields) != 3 {
			return cmd, cmdErr(file, lineNo, line, "push/pop requires segment and index")
		}
		seg, ok := segmentNames[fields[1]]
		if !ok {
			return cmd, cmdErr(file, lineNo, line, "unknown segment "+fields[1])
		}
		idx, err := strconv.Atoi(fields[2])
		if err != nil || idx < 0 {
			return cmd, cmdErr(file, lineNo, line, "invalid index "+fields[2])
		}
		if max, bounded := segmentSize[seg]; bounded && idx >= max {
			return cmd, cmdErr(file, lineNo, line, "index out of range for segment "+fields[1])
		}
		if fields[0] == "pop" && seg == SegConstant {
			return cmd, cmdErr(file, lineNo, line, "pop constant is not a valid command")
		}
		cmd.Segment = seg
		cmd.Index = idx
		if fields[0] == "push" {
			cmd.Kind = KindPush
		} else {
			cmd.Kind = KindPop
		}
		return cmd, nil
	case "label":
		if len(fields) != 2 {
			return cmd, cmdErr(file, lineNo, line, "label requires a name")
		}
		cmd.Kind = KindLabel
		cmd.Name = fields[1]
		return cmd, nil
	case "goto":
		if len(fields) != 2 {
			return cmd, cmdErr(file, lineNo, line, "goto requires a label")
		}
		cmd.Kind = KindGoto
		cmd.Name = fields[1]
		return cmd, nil
	case "if-goto":
		if len(fields) != 2 {
			return cmd, cmdErr(file, lineNo, line, "if-goto requires a label")
		}
		cmd.Kind = KindIfGoto
		cmd.Name = fields[1]
		return cmd, nil
	case "function":
		n, err := expectNameAndCount(fields)
		if err != nil {
			return cmd, cmdErr(file, lineNo, line, err.Error())
		}
		cmd.Kind = KindFunction
		cmd.Name = fields[1]
		cmd.N = n
		return cmd, nil
	case "call":
		n, err := expectNameAndCount(fields)
		if err != nil {
			return cmd, cmdErr(file, lineNo, line, err.Error())
		}
		cmd.Kind = KindCall
		cmd.Name = fields[1]
		cmd.N = n
		return cmd, nil
	case "return":
		if len(fields) != 1 {
			return cmd, cmdErr(file, lineNo, line, "return takes no operands")
		}
		cmd.Kind = KindReturn
		return cmd, nil
	}
	return cmd, cmdErr(file, lineNo, line, "unknown command")
}

func expectNameAndCount(fields []string) (int, error) {
	if len(fields) != 3 {
		return 0, strconvErr{"requires a name and a count"}
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return 0, strconvErr{"invalid count " + fields[2]}
	}
	return n, nil
}

type strconvErr struct{ s string }

func (e strconvErr) Error() string { return e.s }

func cmdErr(file string, line int, text, msg string) error {
	return &CommandError{File: file, Line: line, Text: text, Msg: msg}
}
