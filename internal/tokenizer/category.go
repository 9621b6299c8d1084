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
	"encoding"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown token category")

// Category is the class of a token.
type Category int

const (
	// Reserved word of the language, e.g. "if", "int", "return".
	Category_Keyword Category = iota

	// Decimal number with optional fraction and exponent, e.g. 10, 3.14, 1e-3.
	Category_Number

	// A letter or underscore followed by letters, digits or underscores.
	// Keywords have this shape too, see Category_Keyword.
	Category_Identifier

	// Double quoted string literal including the quotes, with backslash escapes.
	Category_String

	// Arithmetic, comparison, logical and assignment operators.
	Category_Operator

	// Brackets, braces, parentheses, comma, semicolon and dot.
	Category_Punctuation

	// Single-line comment, or a multi-line comment closed on the same line.
	Category_Comment
)

var (
	_ encoding.TextMarshaler   = Category_Keyword
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

var categoryNames = [...]string{
	Category_Keyword:     "KEYWORD",
	Category_Number:      "NUMBER",
	Category_Identifier:  "IDENTIFIER",
	Category_String:      "STRING",
	Category_Operator:    "OPERATOR",
	Category_Punctuation: "PUNCTUATION",
	Category_Comment:     "COMMENT",
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	result := make([]Category, len(categoryNames))
	for i := range categoryNames {
		result[i] = Category(i)
	}
	return result
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory returns the category with the given name. Matching ignores case.
func ParseCategory(name string) (Category, error) {
	for i, categoryName := range categoryNames {
		if strings.EqualFold(name, categoryName) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= len(categoryNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(categoryNames[c]), nil
}

func (c *Category) UnmarshalText(data []byte) error {
	parsed, err := ParseCategory(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
