// Package application composes enumeration and per-interface control into
// the operations the presentation layer exposes.
package application

import (
	"fmt"
	"net"

	"ifaces/domain/ifflag"
	"ifaces/domain/netdev"
)

// Enumerator lists system interfaces. Implemented by the rtnetlink PAL.
type Enumerator interface {
	Interfaces() ([]netdev.Interface, error)
	ByName(name string) (netdev.Interface, error)
}

// Controller reads and mutates per-interface state. Implemented by the
// ioctl PAL.
type Controller interface {
	InterfaceFlags(name string) (ifflag.Flags, error)
	SetInterfaceFlags(name string, flags ifflag.Flags) error
	InterfaceMTU(name string) (int, error)
	SetInterfaceMTU(name string, mtu int) error
	HardwareAddr(name string) (net.HardwareAddr, error)
}

type InterfaceService struct {
	enumerator Enumerator
	controller Controller
}

func NewInterfaceService(enumerator Enumerator, controller Controller) *InterfaceService {
	return &InterfaceService{
		enumerator: enumerator,
		controller: controller,
	}
}

func (s *InterfaceService) List() ([]netdev.Interface, error) {
	return s.enumerator.Interfaces()
}

func (s *InterfaceService) Get(name string) (netdev.Interface, error) {
	return s.enumerator.ByName(name)
}

// Up brings the interface up. Already-up interfaces are left untouched so
// the flag word is never rewritten needlessly.
func (s *InterfaceService) Up(name string) error {
	return s.setUpFlag(name, true)
}

// Down takes the interface down.
func (s *InterfaceService) Down(name string) error {
	return s.setUpFlag(name, false)
}

func (s *InterfaceService) setUpFlag(name string, up bool) error {
	flags, err := s.controller.InterfaceFlags(name)
	if err != nil {
		return err
	}
	if flags.Has(ifflag.Up) == up {
		return nil
	}

	next := flags.Without(ifflag.Up)
	if up {
		next = flags.With(ifflag.Up)
	}
	if err := s.controller.SetInterfaceFlags(name, next); err != nil {
		return fmt.Errorf("update flags of %s: %w", name, err)
	}
	return nil
}

func (s *InterfaceService) SetMTU(name string, mtu int) error {
	return s.controller.SetInterfaceMTU(name, mtu)
}
