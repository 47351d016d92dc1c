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
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/robinovitch61/nand2tetris/hack"
)

// Assemble compiles assembly read from r and returns the resulting ROM
// image. name is used only in diagnostics (pass the source file name).
// If err is non-nil it can be type-asserted to Errors.
func Assemble(name string, r io.Reader) ([]hack.Word, error) {
	p := newParser()
	img, err := p.parse(name, r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Write renders a ROM image in the .hack format: one line per word,
// each a fixed-width 16-character string of '0'/'1', most significant
// bit first.
func Write(w io.Writer, img []hack.Word) error {
	bw := bufio.NewWriter(w)
	var buf [17]byte
	buf[16] = '\n'
	for _, word := range img {
		for b := 0; b < 16; b++ {
			if word&(1<<(15-b)) != 0 {
				buf[b] = '1'
			} else {
				buf[b] = '0'
			}
		}
		if _, err := bw.Write(buf[:]); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return errors.Wrap(bw.Flush(), "flush failed")
}

// Disassemble renders a single ROM word back to assembly mnemonics. It
// is best-effort: the original symbol names are lost once assembled, so
// A-instructions are rendered as bare addresses.
func Disassemble(word hack.Word) string {
	if word&0x8000 == 0 {
		return "@" + strconv.Itoa(int(word))
	}
	var comp string
	for k, v := range hack.CompCodes {
		if v == (uint16(word)>>6)&0x7F {
			comp = k
			break
		}
	}
	var dest string
	for k, v := range hack.DestCodes {
		if v == (uint16(word)>>3)&0x7 {
			dest = k
			break
		}
	}
	var jump string
	for k, v := range hack.JumpCodes {
		if v == uint16(word)&0x7 {
			jump = k
			break
		}
	}
	s := comp
	if dest != "" {
		s = dest + "=" + s
	}
	if jump != "" {
		s = s + ";" + jump
	}
	return s
}
