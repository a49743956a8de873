//go:build unix

package ioctlconst

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestTableContents(t *testing.T) {
	got := Table()

	want := []Entry{
		{"SIOCGIFFLAGS", uint64(unix.SIOCGIFFLAGS)},
		{"SIOCSIFFLAGS", uint64(unix.SIOCSIFFLAGS)},
	}

	if len(got) != len(want) {
		t.Fatalf("Table() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Table()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTableIdempotent(t *testing.T) {
	first := Table()
	second := Table()

	if len(first) != len(second) {
		t.Fatalf("lengths differ between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
	if &first[0] != &second[0] {
		t.Error("Table() must return the same backing array on every call")
	}
}

func TestTableNamesUniqueAndNonEmpty(t *testing.T) {
	seen := make(map[string]bool)
	for i, e := range Table() {
		if e.Name == "" {
			t.Errorf("entry %d has an empty name", i)
		}
		if seen[e.Name] {
			t.Errorf("duplicate entry name %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestLookup(t *testing.T) {
	v, ok := Lookup("SIOCGIFFLAGS")
	if !ok || v != uint64(unix.SIOCGIFFLAGS) {
		t.Errorf("Lookup(SIOCGIFFLAGS) = (0x%x, %v), want (0x%x, true)", v, ok, unix.SIOCGIFFLAGS)
	}

	if _, ok := Lookup("SIOCGIFMTU"); ok {
		t.Error("Lookup must not find names outside the table")
	}
}
