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

import "fmt"

// SymKind is a symbol-table entry's attribute: which segment backs it.
type SymKind int

const (
	InvalidSymKind SymKind = iota
	Static
	Field
	Argument
	Var
)

// symbol is one symbol-table entry: its declared type, kind, and
// dense 0-based id, unique within the (kind, scope) pair.
type symbol struct {
	Type string
	Kind SymKind
	ID   int
}

// SymbolTable is the two-scope identifier resolver described in spec
// §4.3: class scope holds STATIC/FIELD and lives for one compilation
// unit; subroutine scope holds ARGUMENT/VAR and resets at every
// StartSubroutine. Lookup favors subroutine scope over class scope,
// since a Jack class never admits shadowing (spec §3 invariant).
type SymbolTable struct {
	class  map[string]symbol
	sub    map[string]symbol
	counts map[SymKind]int
}

// NewSymbolTable returns an empty table, ready for one class.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		class:  make(map[string]symbol),
		sub:    make(map[string]symbol),
		counts: make(map[SymKind]int),
	}
}

// StartSubroutine clears the subroutine scope and its ARGUMENT/VAR
// counters. Class scope is untouched.
func (s *SymbolTable) StartSubroutine() {
	s.sub = make(map[string]symbol)
	s.counts[Argument] = 0
	s.counts[Var] = 0
}

// Define inserts name into the scope its kind implies. Re-defining an
// existing name is a deliberate no-op (first-wins): a method's
// synthetic "this" argument is declared once per subroutine, and a
// second Define call for the same name must not perturb its id.
func (s *SymbolTable) Define(name, typeName string, kind SymKind) {
	if s.Contains(name) {
		return
	}
	id := s.counts[kind]
	s.counts[kind]++
	sym := symbol{Type: typeName, Kind: kind, ID: id}
	switch kind {
	case Static, Field:
		s.class[name] = sym
	case Argument, Var:
		s.sub[name] = sym
	}
}

// VarCount returns the number of entries of kind across both scopes.
func (s *SymbolTable) VarCount(kind SymKind) int {
	return s.counts[kind]
}

func (s *SymbolTable) lookup(name string) (symbol, bool) {
	if sym, ok := s.sub[name]; ok {
		return sym, true
	}
	sym, ok := s.class[name]
	return sym, ok
}

// Contains reports whether name is defined in either scope.
func (s *SymbolTable) Contains(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

// KindOf returns name's kind, or InvalidSymKind if it is undefined.
func (s *SymbolTable) KindOf(name string) SymKind {
	sym, ok := s.lookup(name)
	if !ok {
		return InvalidSymKind
	}
	return sym.Kind
}

// TypeOf returns name's declared type. Unknown identifiers are fatal
// per spec §7 (Semantic/compile).
func (s *SymbolTable) TypeOf(name string) (string, error) {
	sym, ok := s.lookup(name)
	if !ok {
		return "", fmt.Errorf("undefined identifier %q", name)
	}
	return sym.Type, nil
}

// IndexOf returns name's dense id. Unknown identifiers are fatal.
func (s *SymbolTable) IndexOf(name string) (int, error) {
	sym, ok := s.lookup(name)
	if !ok {
		return 0, fmt.Errorf("undefined identifier %q", name)
	}
	return sym.ID, nil
}
