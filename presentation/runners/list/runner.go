// Package list renders interfaces and the ioctl constant table as plain
// text.
package list

import (
	"fmt"
	"io"

	"ifaces/domain/netdev"
	"ifaces/infrastructure/ioctlconst"
)

type Lister interface {
	List() ([]netdev.Interface, error)
}

type Runner struct {
	out    io.Writer
	lister Lister
}

func NewRunner(out io.Writer, lister Lister) *Runner {
	return &Runner{out: out, lister: lister}
}

func (r *Runner) PrintConstants() {
	for _, e := range ioctlconst.Table() {
		fmt.Fprintf(r.out, "%s = 0x%x\n", e.Name, e.Value)
	}
}

func (r *Runner) PrintInterfaces() error {
	interfaces, err := r.lister.List()
	if err != nil {
		return fmt.Errorf("list interfaces: %w", err)
	}
	for _, iface := range interfaces {
		fmt.Fprintln(r.out, iface)
	}
	return nil
}
