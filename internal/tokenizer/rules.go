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
	"regexp"
	"strings"
)

type (
	// Abstraction over regexp.Regexp allows providing an alternative implementation.
	matcher interface {
		// Return the locations of all successive, non-overlapping matches in content. Each location is a two-element
		// slice; the match itself is at content[loc[0]:loc[1]]. A negative n means no limit. A return value of nil
		// indicates no match.
		FindAllStringIndex(content string, n int) [][]int
	}

	// Matcher for fixed strings. No need to use regexp.Regexp for such simple cases.
	fixedStringMatcher string

	// Rule represents a way of matching a specific token category. StateLabel is an opaque tag carried over to every
	// token produced by the rule; the tokenizer itself never interprets it.
	//
	// Rules must be created with RegexpRule or LiteralRule; a Rule without a matcher never produces tokens.
	Rule struct {
		Category   Category
		StateLabel string
		matcher    matcher
	}
)

func (fs fixedStringMatcher) FindAllStringIndex(content string, n int) [][]int {
	if len(fs) == 0 {
		return nil
	}
	var result [][]int
	for offset := 0; n < 0 || len(result) < n; {
		begin := strings.Index(content[offset:], string(fs))
		if begin < 0 {
			break
		}
		begin += offset
		offset = begin + len(fs)
		result = append(result, []int{begin, offset})
	}
	return result
}

// RegexpRule returns a rule matching the given compiled expression.
func RegexpRule(category Category, pattern *regexp.Regexp, stateLabel string) Rule {
	return Rule{Category: category, StateLabel: stateLabel, matcher: pattern}
}

// LiteralRule returns a rule matching every occurrence of the given non-empty string.
func LiteralRule(category Category, literal string, stateLabel string) Rule {
	return Rule{Category: category, StateLabel: stateLabel, matcher: fixedStringMatcher(literal)}
}

// Pattern returns the textual form of the rule's matcher: the regular expression source, or the literal quoted as a
// regular expression.
func (r Rule) Pattern() string {
	switch m := r.matcher.(type) {
	case *regexp.Regexp:
		return m.String()
	case fixedStringMatcher:
		return regexp.QuoteMeta(string(m))
	default:
		return ""
	}
}

// Built-in rules for the C-like language.
//
// Every rule scans every line on its own, so one lexeme may be claimed by several rules. E.g. "if" matches both the
// keyword and the identifier rule. Order of rules decides which of such tokens comes first in the output, thus the
// keyword rule must come before the identifier rule.
//
// Line terminators other than '\n' (carriage return, U+2028, U+2029) end a line comment and cannot be escaped in a
// string.
var defaultRules = []Rule{
	RegexpRule(Category_Keyword, regexp.MustCompile(`\b(if|else|while|for|return|int|float|string|bool|true|false|void)\b`), "S1"),
	RegexpRule(Category_Number, regexp.MustCompile(`\b\d+(\.\d+)?([eE][+-]?\d+)?\b`), "S1"),
	RegexpRule(Category_Identifier, regexp.MustCompile(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`), "S1"),
	RegexpRule(Category_String, regexp.MustCompile(`"([^"\\]|\\[^\r\x{2028}\x{2029}])*"`), "S3"),
	RegexpRule(Category_Operator, regexp.MustCompile(`\+\+|--|\+=|-=|\*=|/=|==|!=|<=|>=|&&|\|\||[+\-*/%=<>&|!]`), "S2"),
	RegexpRule(Category_Punctuation, regexp.MustCompile(`[(){}\[\],;.]`), "S5"),
	RegexpRule(Category_Comment, regexp.MustCompile(`//[^\r\x{2028}\x{2029}]*|/\*[\s\S]*?\*/`), "S4"),
}

// DefaultRules returns a copy of the built-in rules in declaration order.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}
