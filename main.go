//go:build linux

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"ifaces/application"
	"ifaces/infrastructure/PAL/linux/ioctl"
	"ifaces/infrastructure/PAL/linux/rtnl"
	"ifaces/presentation/runners/list"
	"ifaces/presentation/ui/tui"
)

const PackageName = "ifaces"

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s <command>

commands:
  list              print all interfaces with addresses and flags
  constants         print the platform's ioctl request codes
  up <interface>    bring an interface up
  down <interface>  take an interface down
  mtu <interface> <mtu>
                    set an interface MTU
  tui               interactive interface browser
`, PackageName)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	wrapper := ioctl.NewWrapper(ioctl.NewLinuxIoctlCommander())
	service := application.NewInterfaceService(rtnl.NewEnumerator(), wrapper)
	runner := list.NewRunner(os.Stdout, service)

	switch os.Args[1] {
	case "list":
		if err := runner.PrintInterfaces(); err != nil {
			log.Fatal(err)
		}
	case "constants":
		runner.PrintConstants()
	case "up", "down":
		if len(os.Args) != 3 {
			usage()
		}
		warnIfNotRoot()
		name := os.Args[2]
		var err error
		if os.Args[1] == "up" {
			err = service.Up(name)
		} else {
			err = service.Down(name)
		}
		if err != nil {
			log.Fatal(err)
		}
	case "mtu":
		if len(os.Args) != 4 {
			usage()
		}
		warnIfNotRoot()
		mtu, convErr := strconv.Atoi(os.Args[3])
		if convErr != nil {
			log.Fatalf("invalid MTU %q: %v", os.Args[3], convErr)
		}
		if err := service.SetMTU(os.Args[2], mtu); err != nil {
			log.Fatal(err)
		}
	case "tui":
		appCtx, appCtxCancel := context.WithCancel(context.Background())
		defer appCtxCancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		go func() {
			<-sigChan
			appCtxCancel()
		}()

		if err := tui.Run(appCtx, service); err != nil {
			log.Fatal(err)
		}
	default:
		usage()
	}
}

func warnIfNotRoot() {
	if os.Geteuid() != 0 {
		fmt.Fprintf(os.Stderr, "Warning: %s usually needs root privileges to change interface state\n", PackageName)
	}
}
