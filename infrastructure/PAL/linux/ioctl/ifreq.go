//go:build linux

package ioctl

import (
	"encoding/binary"
	"fmt"
	"net"
	"strings"
)

const (
	// IfNamSiz is the kernel's IFNAMSIZ: max interface name size including
	// the trailing NUL.
	IfNamSiz = 16
	// ifReqData is the size of the ifr_ifru union on 64-bit kernels.
	ifReqData = 24
	// hwAddrLen is the number of octets read out of ifr_hwaddr.sa_data.
	hwAddrLen = 6
)

// IfReq mirrors the kernel's struct ifreq: a fixed-size interface name
// followed by a union whose interpretation depends on the request code.
type IfReq struct {
	Name [IfNamSiz]byte
	Data [ifReqData]byte
}

// NewIfReq returns an IfReq carrying the given interface name. Names that
// do not fit IFNAMSIZ-1 bytes are rejected before any syscall is made.
func NewIfReq(name string) (*IfReq, error) {
	if name == "" {
		return nil, fmt.Errorf("interface name is empty")
	}
	if len(name) >= IfNamSiz {
		return nil, fmt.Errorf("interface name %q exceeds %d bytes", name, IfNamSiz-1)
	}

	var ifr IfReq
	copy(ifr.Name[:], name)
	return &ifr, nil
}

// IfName returns the NUL-terminated interface name.
func (r *IfReq) IfName() string {
	return strings.TrimRight(string(r.Name[:]), "\x00")
}

// Flags reads the ifr_flags member of the union.
func (r *IfReq) Flags() uint16 {
	return binary.NativeEndian.Uint16(r.Data[:2])
}

// SetFlags writes the ifr_flags member of the union.
func (r *IfReq) SetFlags(flags uint16) {
	binary.NativeEndian.PutUint16(r.Data[:2], flags)
}

// MTU reads the ifr_mtu member of the union.
func (r *IfReq) MTU() int {
	return int(int32(binary.NativeEndian.Uint32(r.Data[:4])))
}

// SetMTU writes the ifr_mtu member of the union.
func (r *IfReq) SetMTU(mtu int) {
	binary.NativeEndian.PutUint32(r.Data[:4], uint32(int32(mtu)))
}

// HardwareAddr reads the ifr_hwaddr member of the union: a sockaddr whose
// sa_data carries the six-octet link-layer address.
func (r *IfReq) HardwareAddr() net.HardwareAddr {
	return append(net.HardwareAddr(nil), r.Data[2:2+hwAddrLen]...)
}
