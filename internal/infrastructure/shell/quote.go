package shell

import (
	"regexp"
	"strings"

	"github.com/doeshing/termdrop/internal/domain"
)

var safeWord = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./\\-]+$`)

var (
	fishEscaper        = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	appleScriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
)

// QuotePOSIX wraps s in single quotes; embedded quotes become '\''.
func QuotePOSIX(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// QuoteFish wraps s in single quotes using fish escapes (\\ and \').
func QuoteFish(s string) string {
	return "'" + fishEscaper.Replace(s) + "'"
}

// QuotePowerShell wraps s in a verbatim string. PowerShell treats the
// typographic single quotes as quote characters too, so every one is doubled.
func QuotePowerShell(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		if isPowerShellQuote(r) {
			b.WriteRune(r)
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

func isPowerShellQuote(r rune) bool {
	switch r {
	case '\'', '‘', '’', '‚', '‛':
		return true
	}
	return false
}

// QuotePortable quotes s so that POSIX shells, fish and GLib's argv splitter
// all read it back unchanged: plain runs go in single quotes, ' and \ are
// backslash-escaped outside them.
func QuotePortable(s string) string {
	if s == "" {
		return "''"
	}
	var b strings.Builder
	open := false
	for _, r := range s {
		if r == '\'' || r == '\\' {
			if open {
				b.WriteByte('\'')
				open = false
			}
			b.WriteByte('\\')
			b.WriteRune(r)
			continue
		}
		if !open {
			b.WriteByte('\'')
			open = true
		}
		b.WriteRune(r)
	}
	if open {
		b.WriteByte('\'')
	}
	return b.String()
}

// JoinPortable quotes and joins words for a terminal that splits one string itself.
func JoinPortable(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = QuotePortable(w)
	}
	return strings.Join(quoted, " ")
}

// QuoteAppleScript returns s as a double-quoted AppleScript string literal.
func QuoteAppleScript(s string) string {
	return `"` + appleScriptEscaper.Replace(s) + `"`
}

// Quote escapes s with the primitive for family.
func Quote(family domain.ShellFamily, s string) string {
	switch family {
	case domain.ShellFamilyFish:
		return QuoteFish(s)
	case domain.ShellFamilyPowerShell:
		return QuotePowerShell(s)
	default:
		return QuotePOSIX(s)
	}
}

// QuoteIfNeeded leaves plain words such as /usr/bin/fish readable.
func QuoteIfNeeded(family domain.ShellFamily, s string) string {
	if safeWord.MatchString(s) && (family == domain.ShellFamilyPowerShell || !strings.Contains(s, `\`)) {
		return s
	}
	return Quote(family, s)
}
