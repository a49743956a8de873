//go:build unix

// Package ifflag models the interface flag word exchanged with the kernel
// through SIOCGIFFLAGS/SIOCSIFFLAGS and netlink link attributes.
package ifflag

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// Flags is a bitset of interface state flags. The values come from the
// platform's IFF_* definitions, so the same bit may differ between
// operating systems.
type Flags uint32

const (
	Up           Flags = unix.IFF_UP
	Broadcast    Flags = unix.IFF_BROADCAST
	Debug        Flags = unix.IFF_DEBUG
	Loopback     Flags = unix.IFF_LOOPBACK
	PointToPoint Flags = unix.IFF_POINTOPOINT
	Running      Flags = unix.IFF_RUNNING
	NoARP        Flags = unix.IFF_NOARP
	Promiscuous  Flags = unix.IFF_PROMISC
	AllMulticast Flags = unix.IFF_ALLMULTI
	Multicast    Flags = unix.IFF_MULTICAST
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Up, "UP"},
	{Broadcast, "BROADCAST"},
	{Debug, "DEBUG"},
	{Loopback, "LOOPBACK"},
	{PointToPoint, "POINTOPOINT"},
	{Running, "RUNNING"},
	{NoARP, "NOARP"},
	{Promiscuous, "PROMISC"},
	{AllMulticast, "ALLMULTI"},
	{Multicast, "MULTICAST"},
}

func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) With(flag Flags) Flags {
	return f | flag
}

func (f Flags) Without(flag Flags) Flags {
	return f &^ flag
}

// String renders the set bits in the ifconfig style, e.g.
// "UP|BROADCAST|RUNNING|MULTICAST". Bits without a known name are kept as
// a single trailing hex group.
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}

	var parts []string
	rest := f
	for _, fn := range flagNames {
		if rest.Has(fn.flag) {
			parts = append(parts, fn.name)
			rest = rest.Without(fn.flag)
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}
