/**
 * Copyright (c) 2026, The Broker Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Command brokerdemo is a non-core demonstration CLI: it wires a small
// in-memory Broker and runs a query against it, printing matches as JSON.
// It exists to give the library a runnable entry point, not as part of the
// data broker's contract.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/botobag/broker/broker"
	"github.com/botobag/broker/field"
	"github.com/botobag/broker/memsource"
	"github.com/botobag/broker/query"
)

// Book is the demo's record type.
type Book struct {
	Title  string
	Author string
	Year   int
}

func bookTitle() field.Field[Book, string]  { return field.New("title", func(b Book) string { return b.Title }) }
func bookAuthor() field.Field[Book, string] { return field.New("author", func(b Book) string { return b.Author }) }
func bookYear() field.Field[Book, int]      { return field.New("year", func(b Book) int { return b.Year }) }

func main() {
	// Ignored if .env doesn't exist. The demo reads no setting from the
	// environment: it always queries the built-in sample data.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "brokerdemo",
		Short: "Run a sample query against an in-memory data broker",
	}

	var author string
	var afterYear int

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch books matching --author and/or --after-year",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(author, afterYear)
		},
	}
	fetchCmd.Flags().StringVar(&author, "author", "", "filter by exact author name")
	fetchCmd.Flags().IntVar(&afterYear, "after-year", 0, "filter by publication year greater than this")

	root.AddCommand(fetchCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFetch(author string, afterYear int) error {
	b := broker.New[Book]()
	b.AddSource(memsource.New(sampleBooks()...))

	var q query.Query[Book] = query.True[Book]{}
	if author != "" {
		q = query.And[Book]{Left: q, Right: query.NewEq(bookAuthor(), author)}
	}
	if afterYear != 0 {
		q = query.And[Book]{Left: q, Right: query.NewGt(bookYear(), afterYear)}
	}

	results, err := b.FetchAll(context.Background(), q)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func sampleBooks() []Book {
	return []Book{
		{Title: "The Pragmatic Programmer", Author: "Hunt", Year: 1999},
		{Title: "Clean Code", Author: "Martin", Year: 2008},
		{Title: "The Go Programming Language", Author: "Donovan", Year: 2015},
		{Title: "Rust for Rustaceans", Author: "Gjengset", Year: 2021},
	}
}
