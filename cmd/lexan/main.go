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

// Command lexan breaks C-like source code into classified tokens and prints them as a table or JSON. Optionally it
// replays the walk over the automaton states assigned to the tokens, one token at a time.
//
// Every input is analyzed independently; token IDs and positions restart for each of them.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/EngFlow/lexan/internal/collections"
	"github.com/EngFlow/lexan/internal/presenter"
	"github.com/EngFlow/lexan/internal/source"
	"github.com/EngFlow/lexan/internal/tokenizer"
	"github.com/alecthomas/kong"
)

type cli struct {
	Paths   []string      `arg:"" optional:"" name:"path" help:"Source files or doublestar glob patterns, '-' reads standard input." default:"-"`
	Format  string        `help:"Output format, one of: ${enum}." enum:"table,json" default:"table"`
	Rules   string        `help:"YAML rule set replacing the built-in token rules." type:"existingfile"`
	Only    []string      `help:"Only report tokens of the given categories." placeholder:"CATEGORY"`
	Animate bool          `help:"Replay the automaton state walk after printing the tokens."`
	Delay   time.Duration `help:"Pause between two highlighted states." default:"800ms"`
	Verbose bool          `short:"v" help:"Enable verbose logging."`
}

func main() {
	var params cli
	kong.Parse(&params,
		kong.Name("lexan"),
		kong.Description("Lexical analyzer for a small C-like language."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, params, os.Stdin, os.Stdout)
	stop()
	if err != nil {
		log.Fatalf("lexan: %v", err)
	}
}

func run(ctx context.Context, params cli, stdin io.Reader, stdout io.Writer) error {
	tk := tokenizer.Default()
	if params.Rules != "" {
		rules, err := tokenizer.LoadRulesFile(params.Rules)
		if err != nil {
			return err
		}
		tk = tokenizer.New(rules)
		if params.Verbose {
			log.Printf("Loaded %d rules from %s", len(rules), params.Rules)
		}
	}

	only, err := parseCategories(params.Only)
	if err != nil {
		return err
	}

	paths, err := source.Expand(params.Paths)
	if err != nil {
		return err
	}

	var highlighter presenter.Highlighter
	if params.Animate {
		highlighter = presenter.NewTerminalHighlighter(stdout, presenter.StatesOf(tk.Rules()))
	}

	for i, path := range paths {
		content, err := source.Read(path, stdin)
		if err != nil {
			return err
		}

		tokens := tk.Analyze(content)
		if params.Verbose {
			log.Printf("Analyzed %s: %d tokens", path, len(tokens))
		}
		if only != nil {
			tokens = collections.FilterSlice(tokens, func(token tokenizer.Token) bool { return only.Contains(token.Category) })
		}

		if len(paths) > 1 {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "==> %s <==\n", path)
		}
		if err := writeTokens(stdout, params.Format, tokens); err != nil {
			return err
		}

		if highlighter != nil {
			if err := presenter.NewAnimator(highlighter, params.Delay).Run(ctx, slices.Values(tokens)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTokens(w io.Writer, format string, tokens []tokenizer.Token) error {
	switch format {
	case "json":
		return presenter.WriteJSON(w, tokens)
	case "table", "":
		return presenter.WriteTable(w, tokens)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Returns nil when no category is given, meaning no filtering.
func parseCategories(names []string) (collections.Set[tokenizer.Category], error) {
	if len(names) == 0 {
		return nil, nil
	}
	result := make(collections.Set[tokenizer.Category], len(names))
	for _, name := range names {
		category, err := tokenizer.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		result.Add(category)
	}
	return result, nil
}
