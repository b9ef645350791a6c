package helpers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCalculateTopUsage(t *testing.T) {
	freq := map[string]int{"xterm": 2, "kitty": 5, "foot": 2, "konsole": 1}
	got := CalculateTopUsage(freq, 3)
	want := []UsageStatistic{{"kitty", 5}, {"foot", 2}, {"xterm", 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("top usage mismatch (-want +got):\n%s", diff)
	}
	if all := CalculateTopUsage(freq, 0); len(all) != 4 {
		t.Fatalf("limit 0 should return all, got %d", len(all))
	}
}

func TestCalculateSuccessRate(t *testing.T) {
	if got := CalculateSuccessRate(3, 4); got != 75 {
		t.Fatalf("got %v, want 75", got)
	}
	if got := CalculateSuccessRate(0, 0); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestNestedMapHelpers(t *testing.T) {
	root := map[string]interface{}{"launch": map[string]interface{}{"terminal": ""}}
	if !SetNestedMapValue(root, []string{"launch", "terminal"}, "kitty") {
		t.Fatal("set failed")
	}
	got, ok := TraverseNestedMap(root, []string{"launch", "terminal"})
	if !ok || got != "kitty" {
		t.Fatalf("got %v, %v", got, ok)
	}
	if _, ok := TraverseNestedMap(root, []string{"launch", "missing"}); ok {
		t.Fatal("missing key reported as found")
	}
	if SetNestedMapValue(root, nil, 1) {
		t.Fatal("empty key path must fail")
	}
}

func TestParseYAMLValue(t *testing.T) {
	v, _ := ParseYAMLValue("20")
	if v != 20 {
		t.Fatalf("got %#v, want int 20", v)
	}
	v, _ = ParseYAMLValue("ctrl+alt+c")
	if v != "ctrl+alt+c" {
		t.Fatalf("got %#v", v)
	}
}

func TestKnownTerminal(t *testing.T) {
	if !KnownTerminal("xterm") || KnownTerminal("xtrem") {
		t.Fatal("KnownTerminal mismatch")
	}
}
