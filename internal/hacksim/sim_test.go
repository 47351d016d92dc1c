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

package hacksim_test

import (
	"testing"

	"github.com/robinovitch61/nand2tetris/hack"
	"github.com/robinovitch61/nand2tetris/internal/hacksim"
)

func asmA(t *testing.T, addr int) hack.Word {
	t.Helper()
	w, ok := hack.EncodeA(addr)
	if !ok {
		t.Fatalf("EncodeA(%d) failed", addr)
	}
	return w
}

func asmC(t *testing.T, comp, dest, jump string) hack.Word {
	t.Helper()
	w, ok := hack.EncodeC(comp, dest, jump)
	if !ok {
		t.Fatalf("EncodeC(%q,%q,%q) failed", comp, dest, jump)
	}
	return w
}

func TestMachine_AddTwoConstants(t *testing.T) {
	rom := []hack.Word{
		asmA(t, 2),
		asmC(t, "A", "D", ""),
		asmA(t, 3),
		asmC(t, "D+A", "D", ""),
		asmA(t, 0),
		asmC(t, "D", "M", ""),
	}
	m := hacksim.New(rom)
	if err := m.Run(1000); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.RAM[0] != 5 {
		t.Errorf("RAM[0] = %d, want 5", m.RAM[0])
	}
}

// TestMachine_LoopSum sums 1..5 into RAM[0]: i in RAM[1] counts down
// from 5, sum accumulates in RAM[0].
func TestMachine_LoopSum(t *testing.T) {
	rom := []hack.Word{
		asmA(t, 5), asmC(t, "A", "D", ""), //  0,1  D = 5
		asmA(t, 1), asmC(t, "D", "M", ""), //  2,3  i = 5
		asmA(t, 0), asmC(t, "0", "M", ""), //  4,5  sum = 0
		asmA(t, 1), asmC(t, "M", "D", ""), //  6,7  LOOP: D = i
		asmA(t, 18), asmC(t, "D", "", "JLE"), //  8,9  if i<=0 goto END (pc 18)
		asmA(t, 1), asmC(t, "M", "D", ""), // 10,11 D = i
		asmA(t, 0), asmC(t, "D+M", "M", ""), // 12,13 sum = sum + i
		asmA(t, 1), asmC(t, "M-1", "M", ""), // 14,15 i = i - 1
		asmA(t, 6), asmC(t, "0", "", "JMP"), // 16,17 goto LOOP
		// END at pc 18: ROM ends here, so Run halts on its own.
	}
	m := hacksim.New(rom)
	if err := m.Run(10000); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.RAM[0] != 15 {
		t.Errorf("RAM[0] = %d, want 15 (1+2+3+4+5)", m.RAM[0])
	}
	if m.RAM[1] != 0 {
		t.Errorf("RAM[1] = %d, want 0", m.RAM[1])
	}
}

func TestMachine_RunExceedsMaxSteps(t *testing.T) {
	rom := []hack.Word{
		asmA(t, 0), asmC(t, "0", "", "JMP"), // infinite loop
	}
	m := hacksim.New(rom)
	if err := m.Run(100); err == nil {
		t.Fatal("expected error from runaway program")
	}
}
