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
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidRule = errors.New("invalid token rule")
	ErrNoRules     = errors.New("rule set defines no rules")
)

type (
	// YAML representation of a rule set, e.g.
	//
	//	rules:
	//	  - category: KEYWORD
	//	    pattern: '\b(if|else)\b'
	//	    state: S1
	//	  - category: PUNCTUATION
	//	    literal: ';'
	//	    state: S5
	ruleSetFile struct {
		Rules []ruleEntry `yaml:"rules"`
	}

	ruleEntry struct {
		Category *Category `yaml:"category"`
		Pattern  string    `yaml:"pattern"`
		Literal  string    `yaml:"literal"`
		State    string    `yaml:"state"`
	}
)

// LoadRules reads a YAML rule set. Rules keep the order of the file.
func LoadRules(r io.Reader) ([]Rule, error) {
	var file ruleSetFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode rule set: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, ErrNoRules
	}

	rules := make([]Rule, 0, len(file.Rules))
	for i, entry := range file.Rules {
		rule, err := entry.toRule()
		if err != nil {
			return nil, fmt.Errorf("rule #%d: %w", i+1, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// LoadRulesFile reads a YAML rule set from the file at path.
func LoadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rules, err := LoadRules(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

func (e ruleEntry) toRule() (Rule, error) {
	switch {
	case e.Category == nil:
		return Rule{}, fmt.Errorf("%w: category is required", ErrInvalidRule)
	case e.Pattern != "" && e.Literal != "":
		return Rule{}, fmt.Errorf("%w: pattern and literal are mutually exclusive", ErrInvalidRule)
	case e.Literal != "":
		return LiteralRule(*e.Category, e.Literal, e.State), nil
	case e.Pattern != "":
		pattern, err := regexp.Compile(e.Pattern)
		if err != nil {
			return Rule{}, err
		}
		// Empty matches would yield zero-length tokens at every position.
		if pattern.MatchString("") {
			return Rule{}, fmt.Errorf("%w: pattern %q matches the empty string", ErrInvalidRule, e.Pattern)
		}
		return RegexpRule(*e.Category, pattern, e.State), nil
	default:
		return Rule{}, fmt.Errorf("%w: either pattern or literal is required", ErrInvalidRule)
	}
}
