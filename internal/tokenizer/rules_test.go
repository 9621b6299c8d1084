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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedStringMatcher(t *testing.T) {
	testCases := []struct {
		matcher  fixedStringMatcher
		input    string
		n        int
		expected [][]int
	}{
		{matcher: "==", input: "", n: -1, expected: nil},
		{matcher: "==", input: "a = b", n: -1, expected: nil},
		{matcher: "==", input: "a == b", n: -1, expected: [][]int{{2, 4}}},
		// non-overlapping, scanning resumes after the previous match
		{matcher: "==", input: "===", n: -1, expected: [][]int{{0, 2}}},
		{matcher: "==", input: "====", n: -1, expected: [][]int{{0, 2}, {2, 4}}},
		{matcher: ";", input: ";;;", n: 2, expected: [][]int{{0, 1}, {1, 2}}},
		{matcher: "", input: "abc", n: -1, expected: nil},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.matcher.FindAllStringIndex(tc.input, tc.n), "matcher: %q, input: %q", tc.matcher, tc.input)
	}
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 7)

	expected := []struct {
		category   Category
		stateLabel string
	}{
		{Category_Keyword, "S1"},
		{Category_Number, "S1"},
		{Category_Identifier, "S1"},
		{Category_String, "S3"},
		{Category_Operator, "S2"},
		{Category_Punctuation, "S5"},
		{Category_Comment, "S4"},
	}
	for i, e := range expected {
		assert.Equal(t, e.category, rules[i].Category, "rule #%d", i)
		assert.Equal(t, e.stateLabel, rules[i].StateLabel, "rule #%d", i)
		assert.NotEmpty(t, rules[i].Pattern(), "rule #%d", i)
	}

	// the returned slice is a copy
	rules[0] = LiteralRule(Category_Comment, "#", "S4")
	assert.Equal(t, Category_Keyword, DefaultRules()[0].Category)
}

func TestDefaultRuleMatches(t *testing.T) {
	testCases := []struct {
		category Category
		input    string
		expected []string
	}{
		{Category_Keyword, "if else while for return int float string bool true false void", []string{
			"if", "else", "while", "for", "return", "int", "float", "string", "bool", "true", "false", "void",
		}},
		{Category_Keyword, "iff _if if_ elsewhere", nil},
		{Category_Number, "0 42 3.14 6e10 1.5E+3 2e-7", []string{"0", "42", "3.14", "6e10", "1.5E+3", "2e-7"}},
		{Category_Number, "x1 _2", nil},
		{Category_Identifier, "_a b2 C_D 9z", []string{"_a", "b2", "C_D"}},
		{Category_String, `"" "a b" "esc\"aped" "tab\t"`, []string{`""`, `"a b"`, `"esc\"aped"`, `"tab\t"`}},
		{Category_String, `"unterminated`, nil},
		{Category_Operator, "++ -- += -= *= /= == != <= >= && || + - * / % = < > & | !", []string{
			"++", "--", "+=", "-=", "*=", "/=", "==", "!=", "<=", ">=", "&&", "||",
			"+", "-", "*", "/", "%", "=", "<", ">", "&", "|", "!",
		}},
		{Category_Operator, "a<<=b", []string{"<", "<="}},
		{Category_Punctuation, "(){}[],;.", []string{"(", ")", "{", "}", "[", "]", ",", ";", "."}},
		{Category_Comment, "x; // rest of line", []string{"// rest of line"}},
		{Category_Comment, "/* a */ b /* c */", []string{"/* a */", "/* c */"}},
		{Category_Comment, "/* unterminated", nil},
		{Category_Comment, "// c\r", []string{"// c"}},
		{Category_Comment, "// a\u2028b // c\u2029", []string{"// a", "// c"}},
		{Category_String, "\"a\\\r\"", nil},
		{Category_String, "\"a\\\u2028\"", nil},
	}

	rulesByCategory := map[Category]Rule{}
	for _, rule := range DefaultRules() {
		rulesByCategory[rule.Category] = rule
	}

	for _, tc := range testCases {
		var lexemes []string
		for _, match := range rulesByCategory[tc.category].matcher.FindAllStringIndex(tc.input, -1) {
			lexemes = append(lexemes, tc.input[match[0]:match[1]])
		}
		assert.Equal(t, tc.expected, lexemes, "category: %v, input: %q", tc.category, tc.input)
	}
}

func TestCategoryText(t *testing.T) {
	for _, category := range Categories() {
		text, err := category.MarshalText()
		require.NoError(t, err)

		var parsed Category
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, category, parsed)
	}

	parsed, err := ParseCategory("identifier")
	require.NoError(t, err)
	assert.Equal(t, Category_Identifier, parsed)

	_, err = ParseCategory("WHITESPACE")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = Category(42).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Equal(t, "Category(42)", Category(42).String())
}

func TestCursor(t *testing.T) {
	assert.Equal(t, "3:14", Cursor{Line: 3, Column: 14}.String())
	assert.Equal(t, Cursor{Line: 2, Column: 3}, cursorAt(1, "ab", 2))
	assert.Equal(t, Cursor{Line: 1, Column: 3}, cursorAt(0, "😎x=", 5))

	assert.Negative(t, Cursor{Line: 1, Column: 9}.Compare(Cursor{Line: 2, Column: 1}))
	assert.Negative(t, Cursor{Line: 2, Column: 1}.Compare(Cursor{Line: 2, Column: 2}))
	assert.Zero(t, CursorInit.Compare(Cursor{Line: 1, Column: 1}))
	assert.Positive(t, Cursor{Line: 3, Column: 1}.Compare(Cursor{Line: 2, Column: 7}))
}
