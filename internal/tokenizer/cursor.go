// Copyright 2026 EngFlow Inc. All rights reserved.
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

package tokenizer

import (
	"cmp"
	"fmt"
	"unicode/utf8"
)

// Position in the source code. Line and Column are 1-based, which is natural for humans.
type Cursor struct {
	Line, Column int
}

// Position of the first character of the source.
var CursorInit = Cursor{Line: 1, Column: 1}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// Return the cursor pointing at byte offset within the line with the given 0-based index. Columns count characters,
// not bytes, so multi-byte UTF-8 sequences before offset advance the column by one.
func cursorAt(lineIndex int, line string, offset int) Cursor {
	return Cursor{Line: lineIndex + 1, Column: 1 + utf8.RuneCountInString(line[:offset])}
}

// Compare orders cursors by line, then by column.
func (c Cursor) Compare(other Cursor) int {
	return cmp.Or(cmp.Compare(c.Line, other.Line), cmp.Compare(c.Column, other.Column))
}
