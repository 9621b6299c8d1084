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

// Package presenter renders the result of a lexical analysis: as a table, as JSON, or as an animated walk over the
// automaton states assigned to the tokens. Nothing here affects how tokens are produced.
package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/EngFlow/lexan/internal/collections"
	"github.com/EngFlow/lexan/internal/tokenizer"
)

// WriteTable writes one row per token with the columns ID, CATEGORY, LEXEME, LINE and COLUMN. Lexemes are quoted, so
// whitespace inside comments and strings stays visible.
func WriteTable(w io.Writer, tokens []tokenizer.Token) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tLEXEME\tLINE\tCOLUMN")
	for _, token := range tokens {
		fmt.Fprintf(tw, "%d\t%v\t%q\t%d\t%d\n", token.ID, token.Category, token.Lexeme, token.Location.Line, token.Location.Column)
	}
	return tw.Flush()
}

type jsonToken struct {
	ID       int                `json:"id"`
	Category tokenizer.Category `json:"category"`
	Lexeme   string             `json:"lexeme"`
	Line     int                `json:"line"`
	Column   int                `json:"column"`
	State    string             `json:"state"`
}

// WriteJSON writes tokens as an indented JSON array.
func WriteJSON(w io.Writer, tokens []tokenizer.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(collections.MapSlice(tokens, func(token tokenizer.Token) jsonToken {
		return jsonToken{
			ID:       token.ID,
			Category: token.Category,
			Lexeme:   token.Lexeme,
			Line:     token.Location.Line,
			Column:   token.Location.Column,
			State:    token.StateLabel,
		}
	}))
}
