//go:build linux

// Package ioctl drives per-interface SIOC* requests over a control socket.
package ioctl

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"

	"ifaces/domain/ifflag"
)

type Contract interface {
	InterfaceFlags(name string) (ifflag.Flags, error)
	SetInterfaceFlags(name string, flags ifflag.Flags) error
	InterfaceMTU(name string) (int, error)
	SetInterfaceMTU(name string, mtu int) error
	HardwareAddr(name string) (net.HardwareAddr, error)
}

var _ Contract = (*Wrapper)(nil)

type Wrapper struct {
	commander Commander
	// socketFn opens the throwaway control socket the SIOC* requests are
	// issued against. Replaced in tests.
	socketFn func() (int, error)
}

func NewWrapper(commander Commander) *Wrapper {
	return &Wrapper{
		commander: commander,
		socketFn:  newControlSocket,
	}
}

func newControlSocket() (int, error) {
	return unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
}

func (w *Wrapper) InterfaceFlags(name string) (ifflag.Flags, error) {
	ifr, err := NewIfReq(name)
	if err != nil {
		return 0, err
	}
	if err := w.do(unix.SIOCGIFFLAGS, ifr); err != nil {
		return 0, fmt.Errorf("SIOCGIFFLAGS %s: %w", name, err)
	}
	return ifflag.Flags(ifr.Flags()), nil
}

func (w *Wrapper) SetInterfaceFlags(name string, flags ifflag.Flags) error {
	ifr, err := NewIfReq(name)
	if err != nil {
		return err
	}
	ifr.SetFlags(uint16(flags))
	if err := w.do(unix.SIOCSIFFLAGS, ifr); err != nil {
		return fmt.Errorf("SIOCSIFFLAGS %s: %w", name, err)
	}
	return nil
}

func (w *Wrapper) InterfaceMTU(name string) (int, error) {
	ifr, err := NewIfReq(name)
	if err != nil {
		return 0, err
	}
	if err := w.do(unix.SIOCGIFMTU, ifr); err != nil {
		return 0, fmt.Errorf("SIOCGIFMTU %s: %w", name, err)
	}
	return ifr.MTU(), nil
}

func (w *Wrapper) SetInterfaceMTU(name string, mtu int) error {
	if mtu <= 0 {
		return fmt.Errorf("invalid MTU %d for %s", mtu, name)
	}
	ifr, err := NewIfReq(name)
	if err != nil {
		return err
	}
	ifr.SetMTU(mtu)
	if err := w.do(unix.SIOCSIFMTU, ifr); err != nil {
		return fmt.Errorf("SIOCSIFMTU %s: %w", name, err)
	}
	return nil
}

func (w *Wrapper) HardwareAddr(name string) (net.HardwareAddr, error) {
	ifr, err := NewIfReq(name)
	if err != nil {
		return nil, err
	}
	if err := w.do(unix.SIOCGIFHWADDR, ifr); err != nil {
		return nil, fmt.Errorf("SIOCGIFHWADDR %s: %w", name, err)
	}
	return ifr.HardwareAddr(), nil
}

func (w *Wrapper) do(request uintptr, ifr *IfReq) error {
	fd, err := w.socketFn()
	if err != nil {
		return fmt.Errorf("control socket: %w", err)
	}
	defer func() {
		_ = unix.Close(fd)
	}()

	if _, _, errno := w.commander.Ioctl(uintptr(fd), request, ifr); errno != 0 {
		return errno
	}
	return nil
}
