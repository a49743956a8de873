// Package netdev holds the domain model for system network interfaces:
// an interface, its addresses and the next-hop information attached to
// each address.
package netdev

import (
	"fmt"
	"net"
	"strings"

	"ifaces/domain/ifflag"
)

// Kind identifies the address family of a single interface address.
type Kind int

const (
	KindUnknown Kind = iota
	KindIPv4
	KindIPv6
	KindLink
	KindPacket
)

func (k Kind) String() string {
	switch k {
	case KindIPv4:
		return "IPv4"
	case KindIPv6:
		return "IPv6"
	case KindLink:
		return "Link"
	case KindPacket:
		return "Packet"
	default:
		return "Unknown"
	}
}

// NextHopKind distinguishes the two meanings the kernel gives to the
// "other end" of an interface address.
type NextHopKind int

const (
	// NextHopBroadcast is the broadcast address of a broadcast-capable link.
	NextHopBroadcast NextHopKind = iota
	// NextHopDestination is the peer address of a point-to-point link.
	NextHopDestination
)

// NextHop is the broadcast or destination address associated with an
// interface address.
type NextHop struct {
	Kind NextHopKind
	Addr net.IP
}

func (h NextHop) String() string {
	switch h.Kind {
	case NextHopDestination:
		return fmt.Sprintf("Destination(%s)", h.Addr)
	default:
		return fmt.Sprintf("Broadcast(%s)", h.Addr)
	}
}

// Address is a single address assigned to an interface.
type Address struct {
	Kind Kind
	Addr net.IP
	Mask net.IPMask
	// Hop is nil when the link has neither a broadcast nor a peer address.
	Hop *NextHop
}

func (a Address) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", a.Kind, a.Addr)
	if a.Mask != nil {
		ones, _ := a.Mask.Size()
		fmt.Fprintf(&b, "/%d", ones)
	}
	if a.Hop != nil {
		fmt.Fprintf(&b, " %s", a.Hop)
	}
	return b.String()
}

// Interface is a single network interface on the system.
type Interface struct {
	Name         string
	Index        int
	MTU          int
	HardwareAddr net.HardwareAddr
	Flags        ifflag.Flags
	Addresses    []Address
}

// Equal reports whether two values describe the same interface. Identity
// follows the interface name, not the attribute snapshot.
func (i Interface) Equal(other Interface) bool {
	return i.Name == other.Name
}

func (i Interface) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: flags=%s mtu %d", i.Name, i.Flags, i.MTU)
	if len(i.HardwareAddr) > 0 {
		fmt.Fprintf(&b, " ether %s", i.HardwareAddr)
	}
	for _, addr := range i.Addresses {
		fmt.Fprintf(&b, "\n\t%s", addr)
	}
	return b.String()
}
