//go:build unix

// Command ffi builds as a C shared library (go build -buildmode=c-shared)
// exposing the platform's networking ioctl request codes to foreign
// callers.
//
// The exported surface is a single function, get_constants, returning a
// pointer to a contiguous array of {const char* name; uint64_t value}
// pairs terminated by a {NULL, 0} sentinel. Consumers scan forward until
// the sentinel and must not index past it.
package main

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	const char* name;
	uint64_t    value;
} ifaces_constant_t;
*/
import "C"

import (
	"unsafe"

	"ifaces/infrastructure/ioctlconst"
)

// cTable is built once at load time from the length-carrying Go table and
// never freed: callers receive a borrowed view with process lifetime. The
// sentinel convention exists only on this side of the boundary.
var cTable *C.ifaces_constant_t

func init() {
	entries := ioctlconst.Table()
	// calloc zero-fills, so the extra final entry is already the {NULL, 0}
	// sentinel consumers scan for.
	cTable = (*C.ifaces_constant_t)(C.calloc(C.size_t(len(entries)+1), C.sizeof_ifaces_constant_t))
	for i, e := range entries {
		entry := tableSlot(i)
		entry.name = C.CString(e.Name)
		entry.value = C.uint64_t(e.Value)
	}
}

//export get_constants
func get_constants() *C.ifaces_constant_t {
	return cTable
}

func tableSlot(i int) *C.ifaces_constant_t {
	offset := uintptr(i) * C.sizeof_ifaces_constant_t
	return (*C.ifaces_constant_t)(unsafe.Pointer(uintptr(unsafe.Pointer(cTable)) + offset))
}

// entryAt reads entry i of the exported table, reporting whether it is the
// sentinel. It exists so tests can walk the C array without touching cgo
// types.
func entryAt(i int) (name string, value uint64, sentinel bool) {
	e := tableSlot(i)
	if e.name == nil {
		return "", uint64(e.value), true
	}
	return C.GoString(e.name), uint64(e.value), false
}

func main() {}
