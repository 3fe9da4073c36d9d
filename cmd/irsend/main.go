// Command irsend demonstrates both dispatch-facade entry points
// (§4.6): encoding a named remote's button, or an ad-hoc IRP tuple,
// into a Pronto code string and handing it to a registered
// transmitter.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/sparques/pronto/dispatch"
	"github.com/sparques/pronto/remote"
	"github.com/sparques/pronto/validate"
)

// stdoutTransmitter stands in for the out-of-scope GC100/BroadLink
// transports (§1, §6): it prints the Pronto string instead of keying
// a real blaster.
type stdoutTransmitter struct{}

func (stdoutTransmitter) Transmit(device, prontoCode string) error {
	fmt.Printf("-> device %s: %s\n", device, prontoCode)
	return nil
}

func main() {
	var (
		remotesFile = pflag.StringP("remotes", "r", "", "path to remote-definitions JSON file")
		remoteName  = pflag.StringP("remote", "R", "", "remote name to send from")
		buttonName  = pflag.StringP("button", "b", "", "button name to send")

		adhoc     = pflag.Bool("adhoc", false, "send an ad-hoc IRP code instead of a remote/button pair")
		protocol  = pflag.String("protocol", "", "ad-hoc: protocol tag, e.g. NEC2")
		device    = pflag.String("device", "0", "ad-hoc: device")
		subdevice = pflag.String("subdevice", "-1", "ad-hoc: subdevice")
		function  = pflag.String("function", "0", "ad-hoc: function")
		repeats   = pflag.String("repeats", "0", "ad-hoc: repeats")
		irDevice  = pflag.String("ir-device", "", "ad-hoc: transmitter device id")
		irService = pflag.String("ir-service", "1", "ad-hoc: transmitter service index")
	)
	pflag.Parse()

	codec := dispatch.NewCodec(nil)
	codec.RegisterTransmitter("1", stdoutTransmitter{})
	codec.RegisterTransmitter("2", stdoutTransmitter{})

	if *adhoc {
		codec.SendIRPCode(*protocol, *device, *subdevice, *function, *repeats, *irDevice, *irService)
		return
	}

	if *remotesFile == "" || *remoteName == "" || *buttonName == "" {
		fmt.Fprintln(os.Stderr, "usage: irsend -r remotes.json -R <remote> -b <button>")
		fmt.Fprintln(os.Stderr, "   or: irsend --adhoc --protocol NEC2 --device 4 --subdevice -1 --function 8")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	f, err := os.Open(*remotesFile)
	if err != nil {
		log.Fatalf("irsend: opening %s: %v", *remotesFile, err)
	}
	defer f.Close()

	remotes, err := remote.LoadRemotes(f)
	if err != nil {
		log.Fatalf("irsend: %v", err)
	}

	for name, r := range remotes {
		if err := validate.Remote(name, r); err != nil {
			log.Fatalf("irsend: error in remote file, check log")
		}
	}
	codec.Remotes = remotes

	codec.SendRemoteCode(*remoteName, *buttonName)
}
