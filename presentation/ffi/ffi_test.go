//go:build unix

package main

import (
	"testing"

	"ifaces/infrastructure/ioctlconst"
)

func TestExportedTableMatchesGoTable(t *testing.T) {
	want := ioctlconst.Table()

	for i, e := range want {
		name, value, sentinel := entryAt(i)
		if sentinel {
			t.Fatalf("entry %d is the sentinel, want %q", i, e.Name)
		}
		if name != e.Name || value != e.Value {
			t.Errorf("entry %d = {%q, 0x%x}, want {%q, 0x%x}", i, name, value, e.Name, e.Value)
		}
	}
}

func TestSentinelTerminatesTable(t *testing.T) {
	n := len(ioctlconst.Table())

	// Bounded scan: a consumer stopping at the first sentinel must never
	// step past index n.
	sentinels := 0
	for i := 0; i <= n; i++ {
		_, value, sentinel := entryAt(i)
		if sentinel {
			sentinels++
			if i != n {
				t.Errorf("sentinel at index %d, want only at %d", i, n)
			}
			if value != 0 {
				t.Errorf("sentinel value = 0x%x, want 0", value)
			}
		}
	}
	if sentinels != 1 {
		t.Errorf("found %d sentinels in the first %d entries, want exactly 1", sentinels, n+1)
	}
}

func TestGetConstantsIdempotent(t *testing.T) {
	first := get_constants()
	second := get_constants()
	if first == nil {
		t.Fatal("get_constants returned nil")
	}
	if first != second {
		t.Error("get_constants must return the same static table on every call")
	}
}
