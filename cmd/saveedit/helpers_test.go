package main

import "testing"

func TestParseEventAddr(t *testing.T) {
	cases := []struct {
		addr      string
		wantWave  int
		wantEvent int
		wantErr   bool
	}{
		{"0.2", 0, 2, false},
		{" 3.0 ", 3, 0, false},
		{"2", 0, 0, true},
		{"a.1", 0, 0, true},
		{"1.b", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tc := range cases {
		w, e, err := parseEventAddr(tc.addr)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseEventAddr(%q) succeeded, want error", tc.addr)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseEventAddr(%q): %v", tc.addr, err)
			continue
		}
		if w != tc.wantWave || e != tc.wantEvent {
			t.Errorf("parseEventAddr(%q) = %d.%d, want %d.%d", tc.addr, w, e, tc.wantWave, tc.wantEvent)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("short strings should pass through, got %q", got)
	}
	if got := truncate("abcdefghij", 6); got != "abcde…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}
