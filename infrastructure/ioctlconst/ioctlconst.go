//go:build unix

// Package ioctlconst exposes the networking ioctl request codes this
// library relies on as a static name/value table. The values are resolved
// from the compiling platform's headers, so the same name can map to a
// different number on another OS or architecture; building for a platform
// that lacks one of the symbols fails at compile time.
package ioctlconst

import "golang.org/x/sys/unix"

// Entry pairs the textual name of a platform symbolic constant with the
// value the platform resolves it to.
type Entry struct {
	Name  string
	Value uint64
}

// table is fixed at compile time and never mutated afterwards.
var table = [...]Entry{
	{"SIOCGIFFLAGS", uint64(unix.SIOCGIFFLAGS)},
	{"SIOCSIFFLAGS", uint64(unix.SIOCSIFFLAGS)},
}

// Table returns the constant table in declaration order. Every call
// returns a view of the same static backing array: no allocation, no lazy
// initialization, safe for concurrent use. Callers must not modify the
// returned entries.
func Table() []Entry {
	return table[:]
}

// Lookup returns the value of the named constant. Callers should prefer
// this over positional access since entry order carries no meaning.
func Lookup(name string) (uint64, bool) {
	for _, e := range table {
		if e.Name == name {
			return e.Value, true
		}
	}
	return 0, false
}
