package terminal

import (
	"strings"
	"testing"

	"github.com/doeshing/termdrop/internal/domain"
)

func TestRegistryRowsAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, row := range Registry() {
		if row.ID == "" || row.Binary == "" || len(row.Platforms) == 0 {
			t.Errorf("incomplete row %+v", row)
		}
		if seen[row.ID] {
			t.Errorf("duplicate id %q", row.ID)
		}
		seen[row.ID] = true

		switch row.Style {
		case domain.ExecExecuteFlag, domain.ExecShellDashC:
			if row.ExecFlag == "" {
				t.Errorf("%s: style %s needs an exec flag", row.ID, row.Style)
			}
		case domain.ExecAppleScript:
			if strings.Count(row.AppleScript, "%s") != 1 {
				t.Errorf("%s: applescript template needs exactly one %%s", row.ID)
			}
		}
	}

	for _, id := range generic {
		if !seen[id] {
			t.Errorf("generic order names unknown terminal %q", id)
		}
	}
	for session, ids := range sessionPreferences {
		for _, id := range ids {
			if !seen[id] {
				t.Errorf("%s preference names unknown terminal %q", session, id)
			}
		}
	}
}

func TestRegistryReturnsCopy(t *testing.T) {
	rows := Registry()
	rows[0].ID = "mutated"
	if got, _ := Lookup(registry[0].ID); got.ID == "mutated" {
		t.Fatal("Registry() exposed the backing slice")
	}
}

func TestPreferences(t *testing.T) {
	tests := []struct {
		session domain.SessionKind
		first   string
	}{
		{domain.SessionKDE, "konsole"},
		{domain.SessionGNOME, "gnome-terminal"},
		{domain.SessionXFCE, "xfce4-terminal"},
		{domain.SessionMacOS, "terminal-app"},
		{domain.SessionWindows, "conhost"},
		{domain.SessionUnknown, "x-terminal-emulator"},
	}
	for _, tt := range tests {
		t.Run(tt.session.String(), func(t *testing.T) {
			prefs := Preferences(tt.session)
			if prefs[0] != tt.first {
				t.Fatalf("first preference = %q, want %q", prefs[0], tt.first)
			}
			if prefs[len(prefs)-1] != "xterm" {
				t.Fatalf("last preference = %q, want xterm", prefs[len(prefs)-1])
			}
			dup := map[string]bool{}
			for _, id := range prefs {
				if dup[id] {
					t.Fatalf("duplicate %q in %v", id, prefs)
				}
				dup[id] = true
			}
		})
	}
}
