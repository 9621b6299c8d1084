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

// Package tokenizer provides a lexical analyzer for a small C-like language. It partitions the input into classified
// tokens (keywords, numbers, identifiers, strings, operators, punctuation and comments) and tracks their location in
// the source code.
//
// Classification is driven by an ordered list of rules. Each rule scans each line independently of the other rules,
// and the resulting candidates are merged into a single stream ordered by position. The same lexeme may therefore be
// reported more than once, e.g. "int" is both a keyword and an identifier.
package tokenizer

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

type (
	// Token is a single classified lexeme. ID is 1-based and follows the output order.
	Token struct {
		ID         int
		Category   Category
		Lexeme     string
		Location   Cursor
		StateLabel string
	}

	// A match of one rule on one line, before ordering and numbering.
	candidate struct {
		token     Token
		ruleIndex int
	}

	// Tokenizer breaks source code into a sequence of tokens using an immutable list of rules.
	Tokenizer struct {
		rules []Rule
	}
)

var defaultTokenizer = New(defaultRules)

// New returns a Tokenizer using a copy of rules. Order of rules decides the order of tokens found at the same position.
// Rules without a matcher are dropped.
func New(rules []Rule) *Tokenizer {
	return &Tokenizer{rules: slices.DeleteFunc(slices.Clone(rules), func(rule Rule) bool { return rule.matcher == nil })}
}

// Default returns the Tokenizer using the built-in rules.
func Default() *Tokenizer {
	return defaultTokenizer
}

// Analyze breaks source into tokens using the built-in rules.
func Analyze(source string) []Token {
	return defaultTokenizer.Analyze(source)
}

// Rules returns a copy of the rules used by tk.
func (tk *Tokenizer) Rules() []Rule {
	return slices.Clone(tk.rules)
}

// Analyze returns all tokens found in source, ordered by location and numbered from 1. Characters not matched by any
// rule are skipped, as are empty matches. Empty input results in no tokens.
func (tk *Tokenizer) Analyze(source string) []Token {
	return merge(tk.candidates(source))
}

// AllTokens returns a sequence over the finished result of Analyze. Ordering needs every candidate, so the whole source
// is analyzed before the first token is yielded.
func (tk *Tokenizer) AllTokens(source string) iter.Seq[Token] {
	return slices.Values(tk.Analyze(source))
}

// Candidates returns every match of every rule in source, line by line and rule by rule, without ordering and
// numbering. IDs of the returned tokens are zero.
func (tk *Tokenizer) Candidates(source string) []Token {
	candidates := tk.candidates(source)
	result := make([]Token, len(candidates))
	for i, c := range candidates {
		result[i] = c.token
	}
	return result
}

func (tk *Tokenizer) candidates(source string) []candidate {
	var result []candidate
	for lineIndex, line := range strings.Split(source, "\n") {
		for ruleIndex, rule := range tk.rules {
			for _, match := range rule.matcher.FindAllStringIndex(line, -1) {
				// zero-length matches carry no lexeme
				if match[0] == match[1] {
					continue
				}
				result = append(result, candidate{
					token: Token{
						Category:   rule.Category,
						Lexeme:     line[match[0]:match[1]],
						Location:   cursorAt(lineIndex, line, match[0]),
						StateLabel: rule.StateLabel,
					},
					ruleIndex: ruleIndex,
				})
			}
		}
	}
	return result
}

// Order candidates by location and assign sequential IDs. Candidates at the same location are ordered by rule
// declaration; a single rule never produces two candidates at the same location.
func merge(candidates []candidate) []Token {
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Or(a.token.Location.Compare(b.token.Location), cmp.Compare(a.ruleIndex, b.ruleIndex))
	})

	tokens := make([]Token, len(candidates))
	for i, c := range candidates {
		tokens[i] = c.token
		tokens[i].ID = i + 1
	}
	return tokens
}
