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

// Package hacksim is a minimal Hack CPU simulator used only by the vm
// test suite (which assembles the translator's output with package asm
// and runs it here), to let tests assert on real register and
// RAM state after running an assembled program rather than just
// pattern-matching generated assembly text.
//
// It is not part of the toolchain the spec describes; it exists
// purely so spec-level properties (stack discipline, arithmetic
// results, call/return frame integrity) can be checked by executing
// the emitted program instead of eyeballing it.
package hacksim

import (
	"github.com/pkg/errors"

	"github.com/robinovitch61/nand2tetris/hack"
)

// Machine holds the full state of a running Hack computer: the ROM
// (the assembled program), RAM (data memory, including the stack and
// the SCREEN/KBD-mapped region), the PC, and the A/D registers.
type Machine struct {
	ROM []hack.Word
	RAM [1 << 16]hack.Word

	PC hack.Word
	A  hack.Word
	D  hack.Word

	// insCount guards against runaway programs in tests; Step resets
	// nothing, Run enforces the cap.
	insCount int
}

// New returns a Machine with rom loaded at address 0.
func New(rom []hack.Word) *Machine {
	return &Machine{ROM: rom}
}

// Run executes instructions until PC runs off the end of ROM or maxSteps
// instructions have executed, whichever comes first. maxSteps guards test
// programs against an infinite loop bug in the code under test.
func (m *Machine) Run(maxSteps int) error {
	for int(m.PC) < len(m.ROM) {
		if m.insCount >= maxSteps {
			return errors.Errorf("hacksim: exceeded %d instructions without halting", maxSteps)
		}
		if err := m.Step(); err != nil {
			return err
		}
		m.insCount++
	}
	return nil
}

// Step executes exactly one instruction.
func (m *Machine) Step() error {
	w := m.ROM[m.PC]
	if w&0x8000 == 0 {
		// A-instruction: address is the low 15 bits.
		m.A = w & 0x7FFF
		m.PC++
		return nil
	}

	a, ctrl := hack.DecodeComp(w)
	comp := m.computeComp(a, ctrl)
	dest := uint16((w >> 3) & 0b111)
	jump := uint16(w & 0b111)

	addr := m.A // M is RAM[A] as A stood before this instruction
	if dest&0b100 != 0 {
		m.A = comp
	}
	if dest&0b010 != 0 {
		m.D = comp
	}
	if dest&0b001 != 0 {
		m.RAM[addr] = comp
	}

	if jumpTaken(jump, int16(comp)) {
		m.PC = m.A
	} else {
		m.PC++
	}
	return nil
}

func (m *Machine) computeComp(a bool, ctrl uint16) hack.Word {
	var x, y hack.Word = m.D, m.A
	if a {
		y = m.RAM[m.A]
	}
	zx := ctrl&0b100000 != 0
	nx := ctrl&0b010000 != 0
	zy := ctrl&0b001000 != 0
	ny := ctrl&0b000100 != 0
	f := ctrl&0b000010 != 0
	no := ctrl&0b000001 != 0

	if zx {
		x = 0
	}
	if nx {
		x = ^x
	}
	if zy {
		y = 0
	}
	if ny {
		y = ^y
	}
	var out hack.Word
	if f {
		out = x + y
	} else {
		out = x & y
	}
	if no {
		out = ^out
	}
	return out
}

func jumpTaken(jump uint16, v int16) bool {
	switch jump {
	case 0b000:
		return false
	case 0b001: // JGT
		return v > 0
	case 0b010: // JEQ
		return v == 0
	case 0b011: // JGE
		return v >= 0
	case 0b100: // JLT
		return v < 0
	case 0b101: // JNE
		return v != 0
	case 0b110: // JLE
		return v <= 0
	case 0b111: // JMP
		return true
	}
	return false
}
