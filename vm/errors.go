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

import "fmt"

// CommandError reports a problem with one VM command: a malformed
// line, an unknown segment, or a semantically invalid command such as
// "pop constant i". The translator has no error recovery (spec
// Non-goals): the first one is fatal, matching §7's taxonomy.
type CommandError struct {
	File string
	Line int
	Text string
	Msg  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Msg, e.Text)
}
