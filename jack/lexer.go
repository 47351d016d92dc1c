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
	"regexp"
	"strconv"
	"strings"
)

var (
	keywordPattern     = regexp.MustCompile(`^(class|constructor|function|method|field|static|var|int|char|boolean|void|true|false|null|this|let|do|if|else|while|return)\b`)
	symbolPattern      = regexp.MustCompile(`^[{}\[\]().,;+\-*/&|<>=~]`)
	intConstPattern    = regexp.MustCompile(`^[0-9]{1,5}`)
	stringConstPattern = regexp.MustCompile(`^"[^"\n]*"`)
	identifierPattern  = regexp.MustCompile(`^[A-Za-z0-9_:]+`)
)

// stripComments runs the comment pre-pass described in spec §4.1: a
// two-state transducer over the raw source that recognises "//"
// (rest-of-line), "/*" or "/**" (enter multiline), and "*/" (leave
// multiline), eliding commented text while preserving every newline
// so downstream line numbers stay accurate. It does not special-case
// "//" or "*/" occurring inside string literals.
func stripComments(src string) string {
	var out strings.Builder
	inBlock := false
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		if inBlock {
			if c == '*' && i+1 < n && src[i+1] == '/' {
				inBlock = false
				i += 2
				continue
			}
			if c == '\n' {
				out.WriteByte('\n')
			}
			i++
			continue
		}
		if c == '/' && i+1 < n && src[i+1] == '/' {
			for i < n && src[i] != '\n' {
				i++
			}
			continue
		}
		if c == '/' && i+1 < n && src[i+1] == '*' {
			inBlock = true
			i += 2
			continue
		}
		out.WriteByte(c)
		i++
	}
	return out.String()
}

// Lex strips comments from src and tokenizes what remains: a single
// left-to-right anchored longest-match over the keyword, symbol,
// int-const, string-const, and identifier alternatives (spec §4.1).
func Lex(src string) ([]Token, error) {
	cleaned := stripComments(src)
	var toks []Token
	line := 1
	i, n := 0, len(cleaned)
	for i < n {
		switch cleaned[i] {
		case '\n':
			line++
			i++
			continue
		case ' ', '\t', '\r':
			i++
			continue
		}
		tok, length, err := lexOne(cleaned[i:], line)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		i += length
	}
	return toks, nil
}

func lexOne(s string, line int) (Token, int, error) {
	kind, match := InvalidKind, ""
	consider := func(k Kind, m string) {
		if len(m) > len(match) {
			kind, match = k, m
		}
	}
	consider(KeywordKind, keywordPattern.FindString(s))
	consider(SymbolKind, symbolPattern.FindString(s))
	consider(IntConstKind, intConstPattern.FindString(s))
	consider(StringConstKind, stringConstPattern.FindString(s))
	consider(IdentifierKind, identifierPattern.FindString(s))

	if match == "" {
		if s[0] == '"' {
			return Token{}, 0, newLexErr(line, "unterminated string constant")
		}
		offending := s
		if nl := strings.IndexByte(offending, '\n'); nl >= 0 {
			offending = offending[:nl]
		}
		return Token{}, 0, newLexErr(line, "no token matches "+strconv.Quote(offending))
	}

	text := match
	if kind == StringConstKind {
		text = text[1 : len(text)-1]
	}
	return Token{Kind: kind, Text: text, Line: line}, len(match), nil
}
