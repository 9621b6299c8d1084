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

package presenter

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/EngFlow/lexan/internal/collections"
	"github.com/EngFlow/lexan/internal/tokenizer"
)

// Default pause between two highlighted states.
const DefaultDelay = 800 * time.Millisecond

type (
	// Highlighter displays the automaton and toggles the highlight of a single state.
	Highlighter interface {
		// Labels of the states that can be highlighted.
		States() []string
		// Highlight the state of token. Called with at most one state active at a time.
		Activate(token tokenizer.Token)
		// Remove the highlight from state.
		Deactivate(state string)
	}

	// Animator walks over a token sequence and highlights the state of each token in turn.
	Animator struct {
		Highlighter Highlighter
		Delay       time.Duration

		// Blocks for d or until ctx is done. Replaceable in tests.
		wait func(ctx context.Context, d time.Duration) error
	}

	// TerminalHighlighter prints the automaton as a single line per highlighted token, e.g.
	//
	//	 S1  [S2]  S3   S4   S5    "==" OPERATOR at 1:3
	TerminalHighlighter struct {
		w      io.Writer
		states []string
	}
)

func NewAnimator(highlighter Highlighter, delay time.Duration) *Animator {
	return &Animator{Highlighter: highlighter, Delay: delay, wait: sleep}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Run clears all states, then for every token activates its state, pauses and deactivates it again. Tokens with a
// state unknown to the highlighter are skipped. Run returns the context error when ctx is done before the walk ends;
// the state active at that moment is deactivated.
func (a *Animator) Run(ctx context.Context, tokens iter.Seq[tokenizer.Token]) error {
	states := a.Highlighter.States()
	known := collections.ToSet(states)
	for _, state := range states {
		a.Highlighter.Deactivate(state)
	}

	wait := a.wait
	if wait == nil {
		wait = sleep
	}

	for token := range tokens {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !known.Contains(token.StateLabel) {
			continue
		}

		a.Highlighter.Activate(token)
		err := wait(ctx, a.Delay)
		a.Highlighter.Deactivate(token.StateLabel)
		if err != nil {
			return err
		}
	}
	return nil
}

// StatesOf returns the distinct, non-empty state labels of rules in sorted order.
func StatesOf(rules []tokenizer.Rule) []string {
	labels := collections.MapSlice(rules, func(rule tokenizer.Rule) string { return rule.StateLabel })
	states := collections.ToSet(collections.FilterSlice(labels, func(label string) bool { return label != "" }))
	return states.SortedValues(cmp.Compare[string])
}

func NewTerminalHighlighter(w io.Writer, states []string) *TerminalHighlighter {
	return &TerminalHighlighter{w: w, states: states}
}

func (th *TerminalHighlighter) States() []string {
	return th.states
}

func (th *TerminalHighlighter) Activate(token tokenizer.Token) {
	var sb strings.Builder
	for _, state := range th.states {
		if state == token.StateLabel {
			fmt.Fprintf(&sb, "[%s] ", state)
		} else {
			fmt.Fprintf(&sb, " %s  ", state)
		}
	}
	fmt.Fprintf(&sb, "  %q %v at %v", token.Lexeme, token.Category, token.Location)
	fmt.Fprintln(th.w, sb.String())
}

// Nothing to undo, every activation prints a new line.
func (th *TerminalHighlighter) Deactivate(state string) {}
