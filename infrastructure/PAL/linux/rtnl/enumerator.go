//go:build linux

// Package rtnl enumerates system network interfaces over rtnetlink.
package rtnl

import (
	"fmt"

	"github.com/vishvananda/netlink"
	"golang.org/x/sync/errgroup"

	"ifaces/domain/ifflag"
	"ifaces/domain/netdev"
)

type Contract interface {
	Interfaces() ([]netdev.Interface, error)
	ByName(name string) (netdev.Interface, error)
}

// netlinker is the subset of the netlink package used by the enumerator.
// Extracted as an interface for testability.
type netlinker interface {
	LinkList() ([]netlink.Link, error)
	LinkByName(name string) (netlink.Link, error)
	AddrList(link netlink.Link, family int) ([]netlink.Addr, error)
}

type systemNetlinker struct{}

func (systemNetlinker) LinkList() ([]netlink.Link, error) {
	return netlink.LinkList()
}

func (systemNetlinker) LinkByName(name string) (netlink.Link, error) {
	return netlink.LinkByName(name)
}

func (systemNetlinker) AddrList(link netlink.Link, family int) ([]netlink.Addr, error) {
	return netlink.AddrList(link, family)
}

var _ Contract = (*Enumerator)(nil)

type Enumerator struct {
	nl netlinker
}

func NewEnumerator() *Enumerator {
	return &Enumerator{nl: systemNetlinker{}}
}

// Interfaces returns every link on the system with its addresses. Address
// lists are fetched concurrently per link; link order follows the kernel's
// answer to the link dump.
func (e *Enumerator) Interfaces() ([]netdev.Interface, error) {
	links, err := e.nl.LinkList()
	if err != nil {
		return nil, fmt.Errorf("link list: %w", err)
	}

	result := make([]netdev.Interface, len(links))
	var g errgroup.Group
	for i, link := range links {
		g.Go(func() error {
			iface, ifaceErr := e.toInterface(link)
			if ifaceErr != nil {
				return ifaceErr
			}
			result[i] = iface
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Enumerator) ByName(name string) (netdev.Interface, error) {
	link, err := e.nl.LinkByName(name)
	if err != nil {
		return netdev.Interface{}, fmt.Errorf("link %s: %w", name, err)
	}
	return e.toInterface(link)
}

func (e *Enumerator) toInterface(link netlink.Link) (netdev.Interface, error) {
	attrs := link.Attrs()
	flags := ifflag.Flags(attrs.RawFlags)

	addrs, err := e.nl.AddrList(link, netlink.FAMILY_ALL)
	if err != nil {
		return netdev.Interface{}, fmt.Errorf("addresses of %s: %w", attrs.Name, err)
	}

	addresses := make([]netdev.Address, 0, len(addrs))
	for _, addr := range addrs {
		addresses = append(addresses, toAddress(addr, flags))
	}

	return netdev.Interface{
		Name:         attrs.Name,
		Index:        attrs.Index,
		MTU:          attrs.MTU,
		HardwareAddr: attrs.HardwareAddr,
		Flags:        flags,
		Addresses:    addresses,
	}, nil
}

func toAddress(addr netlink.Addr, flags ifflag.Flags) netdev.Address {
	out := netdev.Address{Kind: netdev.KindUnknown}
	if addr.IPNet != nil {
		if addr.IP.To4() != nil {
			out.Kind = netdev.KindIPv4
		} else if addr.IP.To16() != nil {
			out.Kind = netdev.KindIPv6
		}
		out.Addr = addr.IP
		out.Mask = addr.Mask
	}

	// A point-to-point peer and a broadcast address are mutually exclusive
	// interpretations of the same kernel slot.
	switch {
	case flags.Has(ifflag.PointToPoint) && addr.Peer != nil:
		out.Hop = &netdev.NextHop{Kind: netdev.NextHopDestination, Addr: addr.Peer.IP}
	case flags.Has(ifflag.Broadcast) && addr.Broadcast != nil:
		out.Hop = &netdev.NextHop{Kind: netdev.NextHopBroadcast, Addr: addr.Broadcast}
	}
	return out
}
