// Package shellwords reads back command lines produced by the shell quoting
// primitives. It is only imported by tests: POSIX lines go through a real
// shell parser, the other dialects through small tokenizers that implement
// just the quoting rules the builder emits.
package shellwords

import (
	"strings"
	"testing"

	"mvdan.cc/sh/v3/syntax"
)

// POSIXCommands parses line as a POSIX/bash script and returns the literal
// words of every simple command in source order.
func POSIXCommands(tb testing.TB, line string) [][]string {
	tb.Helper()
	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		tb.Fatalf("parse %q: %v", line, err)
	}
	var cmds [][]string
	syntax.Walk(file, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok {
			return true
		}
		words := make([]string, 0, len(call.Args))
		for _, w := range call.Args {
			words = append(words, unquoteWord(tb, line, w))
		}
		cmds = append(cmds, words)
		return false
	})
	return cmds
}

// unquoteWord performs quote removal on a word made only of literals,
// single-quoted and double-quoted parts. Anything that would expand is fatal.
func unquoteWord(tb testing.TB, line string, w *syntax.Word) string {
	tb.Helper()
	var b strings.Builder
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			b.WriteString(unescapeLit(p.Value, func(rune) bool { return true }))
		case *syntax.SglQuoted:
			if p.Dollar {
				tb.Fatalf("unexpected $'...' in %q", line)
			}
			b.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, inner := range p.Parts {
				lit, ok := inner.(*syntax.Lit)
				if !ok {
					tb.Fatalf("expansion inside double quotes in %q", line)
				}
				b.WriteString(unescapeLit(lit.Value, func(r rune) bool {
					return r == '$' || r == '`' || r == '"' || r == '\\'
				}))
			}
		default:
			tb.Fatalf("unsupported word part %T in %q", part, line)
		}
	}
	return b.String()
}

// unescapeLit drops a backslash before any rune accepted by escapable and
// removes backslash-newline continuations.
func unescapeLit(s string, escapable func(rune) bool) string {
	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) {
			next := runes[i+1]
			if next == '\n' {
				i++
				continue
			}
			if escapable(next) {
				b.WriteRune(next)
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// POSIXWords parses line as one simple command.
func POSIXWords(tb testing.TB, line string) []string {
	tb.Helper()
	cmds := POSIXCommands(tb, line)
	if len(cmds) != 1 {
		tb.Fatalf("expected one command in %q, got %d", line, len(cmds))
	}
	return cmds[0]
}

// FishCommands splits a fish line on unquoted ';'. Inside '...' only \\ and
// \' are escapes; outside quotes a backslash escapes the next rune.
func FishCommands(tb testing.TB, line string) [][]string {
	tb.Helper()
	var (
		cmds    [][]string
		words   []string
		cur     strings.Builder
		inWord  bool
		inQuote bool
	)
	flushWord := func() {
		if inWord {
			words = append(words, cur.String())
			cur.Reset()
			inWord = false
		}
	}
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuote && r == '\\' && i+1 < len(runes) && (runes[i+1] == '\\' || runes[i+1] == '\''):
			cur.WriteRune(runes[i+1])
			i++
		case inQuote && r == '\'':
			inQuote = false
		case inQuote:
			cur.WriteRune(r)
		case r == '\'':
			inQuote, inWord = true, true
		case r == '\\':
			if i+1 >= len(runes) {
				tb.Fatalf("dangling backslash in %q", line)
			}
			cur.WriteRune(runes[i+1])
			inWord = true
			i++
		case r == ' ':
			flushWord()
		case r == ';':
			flushWord()
			cmds = append(cmds, words)
			words = nil
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inQuote {
		tb.Fatalf("unterminated quote in %q", line)
	}
	flushWord()
	if len(words) > 0 {
		cmds = append(cmds, words)
	}
	return cmds
}

// FishWords splits a fish line holding a single command.
func FishWords(tb testing.TB, line string) []string {
	tb.Helper()
	cmds := FishCommands(tb, line)
	if len(cmds) != 1 {
		tb.Fatalf("expected one command in %q, got %d", line, len(cmds))
	}
	return cmds[0]
}

func isPowerShellQuote(r rune) bool {
	switch r {
	case '\'', '‘', '’', '‚', '‛':
		return true
	}
	return false
}

// PowerShellStatements splits a line on unquoted ';' into space-separated
// tokens. Quoted tokens are verbatim strings where a doubled quote rune is
// one literal quote.
func PowerShellStatements(tb testing.TB, line string) [][]string {
	tb.Helper()
	var (
		stmts   [][]string
		words   []string
		cur     strings.Builder
		inWord  bool
		inQuote bool
	)
	flushWord := func() {
		if inWord {
			words = append(words, cur.String())
			cur.Reset()
			inWord = false
		}
	}
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuote && isPowerShellQuote(r):
			if i+1 < len(runes) && isPowerShellQuote(runes[i+1]) {
				cur.WriteRune(r)
				i++
				continue
			}
			inQuote = false
		case inQuote:
			cur.WriteRune(r)
		case isPowerShellQuote(r):
			inQuote, inWord = true, true
		case r == ' ':
			flushWord()
		case r == ';':
			flushWord()
			stmts = append(stmts, words)
			words = nil
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inQuote {
		tb.Fatalf("unterminated quote in %q", line)
	}
	flushWord()
	if len(words) > 0 {
		stmts = append(stmts, words)
	}
	return stmts
}

// PowerShellWords splits a line holding a single statement.
func PowerShellWords(tb testing.TB, line string) []string {
	tb.Helper()
	stmts := PowerShellStatements(tb, line)
	if len(stmts) != 1 {
		tb.Fatalf("expected one statement in %q, got %d", line, len(stmts))
	}
	return stmts[0]
}

// UnquoteAppleScript decodes a double-quoted AppleScript string literal.
func UnquoteAppleScript(tb testing.TB, lit string) string {
	tb.Helper()
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		tb.Fatalf("not a string literal: %q", lit)
	}
	body := []rune(lit[1 : len(lit)-1])
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			b.WriteRune(body[i+1])
			i++
			continue
		}
		if body[i] == '"' {
			tb.Fatalf("unescaped quote in %q", lit)
		}
		b.WriteRune(body[i])
	}
	return b.String()
}
