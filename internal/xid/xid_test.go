package xid

import (
	"strings"
	"testing"
)

func TestNewTerminalID(t *testing.T) {
	id := NewTerminalID()
	if !strings.HasPrefix(id, "TERM-") {
		t.Fatalf("expected TERM- prefix, got %s", id)
	}
	if len(id) != len("TERM-")+8 {
		t.Fatalf("expected 8 char suffix, got %s", id)
	}
	if id != strings.ToUpper(id) {
		t.Fatalf("expected uppercase id, got %s", id)
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New("sale")
		if !strings.HasPrefix(id, "sale-") {
			t.Fatalf("expected sale- prefix, got %s", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
