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

// Package lineio provides a sticky-error line writer shared by the
// code generators in package vm and package jack: once a write fails,
// every subsequent WriteLine is a no-op that returns the same error,
// so callers can emit hundreds of lines without checking an error
// after each one.
package lineio

import (
	"io"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and remembers the first error it saw.
type Writer struct {
	w   io.Writer
	Err error
}

// New returns a Writer appending to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteLine writes s followed by a newline. Once Err is set, WriteLine
// does nothing and returns Err.
func (w *Writer) WriteLine(s string) error {
	if w.Err != nil {
		return w.Err
	}
	if _, err := io.WriteString(w.w, s); err != nil {
		w.Err = errors.Wrap(err, "write failed")
		return w.Err
	}
	if _, err := io.WriteString(w.w, "\n"); err != nil {
		w.Err = errors.Wrap(err, "write failed")
		return w.Err
	}
	return nil
}
