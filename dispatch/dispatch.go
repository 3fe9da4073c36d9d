// Package dispatch implements the dispatch facade (§4.6): the two
// public entry points that turn a validated button, or an ad-hoc IRP
// tuple, into a Pronto code string and hand it to the registered
// external transmitter. It also owns the one piece of genuinely
// long-lived codec state, the MCE toggle bit (§5).
package dispatch

import (
	"fmt"
	"log"
	"strconv"

	"github.com/sparques/pronto"
	"github.com/sparques/pronto/encode/denonsharp"
	"github.com/sparques/pronto/encode/gc100"
	"github.com/sparques/pronto/encode/jvc"
	"github.com/sparques/pronto/encode/kaseikyo"
	"github.com/sparques/pronto/encode/mitsubishi"
	"github.com/sparques/pronto/encode/nec"
	"github.com/sparques/pronto/encode/raw"
	"github.com/sparques/pronto/encode/rc5"
	"github.com/sparques/pronto/encode/rc6"
	"github.com/sparques/pronto/encode/rca"
	"github.com/sparques/pronto/encode/sony"
	"github.com/sparques/pronto/remote"
	"github.com/sparques/pronto/validate"
)

// ephemeralRemoteName is the fixed, reserved slot send_irp_code
// inserts its one-button synthetic remote under (§4.6).
const ephemeralRemoteName = "__adhoc__"

// Transmitter is the external collaborator contract for service
// indices 1 (GC100-style) and 2 (BroadLink-style): both are out of
// scope (§1) and described only by this interface.
type Transmitter interface {
	Transmit(device, prontoCode string) error
}

// Codec is the dispatch facade's instance state: the remote table, the
// registered transmitters keyed by service index, and the long-lived
// MCE toggle (§5). The zero value is not usable; construct with
// NewCodec.
type Codec struct {
	Remotes      map[string]*remote.Remote
	transmitters map[string]Transmitter
	mceToggle    bool
}

// NewCodec constructs a Codec over an already-loaded remote table.
// Remotes must already be validated; SendIRPCode validates its own
// ephemeral remote itself.
func NewCodec(remotes map[string]*remote.Remote) *Codec {
	return &Codec{
		Remotes:      remotes,
		transmitters: make(map[string]Transmitter),
	}
}

// RegisterTransmitter attaches a Transmitter under a service index
// ("1" or "2"); indices "3" (Kira) and "4" (Tasmota) are permanently
// unimplemented (§6, §7) and never consult this map.
func (c *Codec) RegisterTransmitter(serviceIdx string, t Transmitter) {
	c.transmitters[serviceIdx] = t
}

// SendRemoteCode looks up remoteName/buttonName, encodes the button,
// and transmits it. A missing remote or button is a LookupMiss (§7):
// logged and discarded, not returned as an error, matching the
// codec's never-throws-past-its-entry-points policy.
func (c *Codec) SendRemoteCode(remoteName, buttonName string) {
	r, ok := c.Remotes[remoteName]
	if !ok {
		log.Printf("dispatch: LookupMiss: unknown remote %q", remoteName)
		return
	}
	btn, ok := r.Functions[buttonName]
	if !ok {
		log.Printf("dispatch: LookupMiss: remote %q has no button %q", remoteName, buttonName)
		return
	}
	if btn.CmdBytes == nil {
		log.Printf("dispatch: LookupMiss: remote %q button %q was never validated", remoteName, buttonName)
		return
	}

	code, err := c.encode(pronto.Tag(r.Encoding.Protocol), r.Encoding, btn)
	if err != nil {
		log.Printf("dispatch: remote %q button %q: %v", remoteName, buttonName, err)
		return
	}
	c.transmit(r.IRemitter, code)
}

// SendIRPCode synthesizes a one-button ephemeral remote from seven
// string parameters, validates it, installs it under the reserved
// ephemeral slot, and routes through SendRemoteCode (§4.6).
func (c *Codec) SendIRPCode(protocol, device, subdevice, function, repeats, irDevice, irServiceIdx string) {
	dev, err := strconv.Atoi(device)
	if err != nil {
		log.Printf("dispatch: ConfigInvalid: ad-hoc device %q is not an integer", device)
		return
	}
	sub, err := strconv.Atoi(subdevice)
	if err != nil {
		log.Printf("dispatch: ConfigInvalid: ad-hoc subdevice %q is not an integer", subdevice)
		return
	}
	rep, err := strconv.Atoi(repeats)
	if err != nil {
		rep = 0
	}

	r := &remote.Remote{
		Model:     "ad-hoc",
		IRemitter: remote.IRemitter{Device: irDevice, ServiceIdx: irServiceIdx},
		Encoding: remote.Encoding{
			Protocol:  protocol,
			Device:    dev,
			Subdevice: sub,
			Repeats:   remote.FlexInt(rep),
		},
		Functions: map[string]*remote.Button{
			"fnc": {Fnc: []byte(strconv.Quote(function))},
		},
	}

	if c.Remotes == nil {
		c.Remotes = make(map[string]*remote.Remote)
	}
	if err := validate.Remote(ephemeralRemoteName, r); err != nil {
		return
	}
	c.Remotes[ephemeralRemoteName] = r
	c.SendRemoteCode(ephemeralRemoteName, "fnc")
}

func (c *Codec) transmit(ir remote.IRemitter, code string) {
	switch ir.ServiceIdx {
	case "1", "2":
		t, ok := c.transmitters[ir.ServiceIdx]
		if !ok {
			log.Printf("dispatch: no transmitter registered for service index %q", ir.ServiceIdx)
			return
		}
		if err := t.Transmit(ir.Device, code); err != nil {
			log.Printf("dispatch: transmit to device %q failed: %v", ir.Device, err)
		}
	case "3":
		log.Printf("dispatch: ProtocolUnimplemented: Kira transport (service index 3) is not implemented")
	case "4":
		log.Printf("dispatch: ProtocolUnimplemented: Tasmota transport (service index 4) is not implemented")
	default:
		log.Printf("dispatch: ProtocolUnimplemented: unknown service index %q", ir.ServiceIdx)
	}
}

// encode dispatches a validated button to its protocol family's
// encoder and assembles the Pronto string. PRONTO is special-cased:
// its CmdBytes already carries the final string, unaffected by
// repeats (§8 scenario).
func (c *Codec) encode(tag pronto.Tag, enc remote.Encoding, btn *remote.Button) (string, error) {
	if tag == pronto.PRONTO {
		return btn.CmdBytes.ProntoCode, nil
	}

	repeats := int(enc.Repeats)

	switch {
	case tag == pronto.GC100:
		clock := 38000.0
		if len(btn.CmdBytes.Bytes) > 0 && btn.CmdBytes.Bytes[0] > 0 {
			clock = float64(btn.CmdBytes.Bytes[0])
		}
		ctx := pronto.NewContext(clock, 1)
		body, err := gc100.Frame{Values: btn.CmdBytes.Bytes}.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil

	case tag == pronto.RAW:
		freq := float64(btn.CmdBytes.Freq)
		if freq <= 0 {
			freq = 38000
		}
		ctx := pronto.NewContext(freq, 1)
		body, err := raw.Frame{Values: btn.CmdBytes.Bytes}.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil

	case pronto.IsNECFamily(tag):
		ctx := necContext(tag)
		body, err := nec.Frame{
			ByteD: btn.CmdBytes.ByteD,
			ByteS: btn.CmdBytes.ByteS,
			ByteF: btn.CmdBytes.ByteF,
			NECx:  tag == pronto.SAMSUNG,
		}.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil

	case pronto.IsKaseikyoFamily(tag):
		ctx, frame := kaseikyoFrame(tag, btn)
		body, err := frame.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil

	case pronto.IsDenonSharpFamily(tag):
		ctx := pronto.NewContext(denonsharp.Carrier, denonsharp.UnitCycles)
		body, err := denonsharp.Frame{
			ByteD: btn.CmdBytes.ByteD,
			ByteF: btn.CmdBytes.ByteF,
			Ext:   btn.CmdBytes.Ext,
		}.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil

	case tag == pronto.MITSUBISHI:
		ctx := pronto.NewContext(mitsubishi.Carrier, mitsubishi.UnitCycles)
		body, err := mitsubishi.Frame{ByteD: btn.CmdBytes.ByteD, ByteF: btn.CmdBytes.ByteF}.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil

	case tag == pronto.JVC:
		ctx := pronto.NewContext(jvc.Carrier, jvc.UnitCycles)
		body, err := jvc.Frame{ByteD: btn.CmdBytes.ByteD, ByteF: btn.CmdBytes.ByteF}.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, true), nil

	case tag == pronto.RC5:
		ctx := pronto.NewContext(rc5.Carrier, rc5.UnitCycles)
		body, err := rc5.Frame{ByteD: btn.CmdBytes.ByteD, ByteF: btn.CmdBytes.ByteF}.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil

	case pronto.IsRC6Family(tag):
		ctx := pronto.NewContext(rc6.Carrier, rc6.UnitCycles)
		f := rc6.Frame{ByteD: btn.CmdBytes.ByteD, ByteS: btn.CmdBytes.ByteS, ByteF: btn.CmdBytes.ByteF}
		switch tag {
		case pronto.RC6620:
			f.Variant = rc6.V6_20
		case pronto.RC6632:
			f.Variant = rc6.V6_32
		case pronto.MCE:
			f.Variant = rc6.V6_32
			f.MCEToggle = c.mceToggle
			c.mceToggle = !c.mceToggle
		default:
			f.Variant = rc6.V0_16
		}
		body, err := f.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil

	case tag == pronto.RCA:
		ctx := pronto.NewContext(rca.Carrier, rca.UnitCycles)
		body, err := rca.Frame{ByteD: btn.CmdBytes.ByteD, ByteF: btn.CmdBytes.ByteF}.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil

	case pronto.IsSonyFamily(tag):
		ctx := pronto.NewContext(sony.Carrier, sony.UnitCycles)
		dBits := 5
		if tag == pronto.SONY15 {
			dBits = 8
		}
		body, err := sony.Frame{
			ByteF:     btn.CmdBytes.ByteF,
			ByteD:     btn.CmdBytes.ByteD,
			DBits:     dBits,
			Extension: tag == pronto.SONY20,
			ByteE:     btn.CmdBytes.ByteE,
		}.Encode(ctx)
		if err != nil {
			return "", err
		}
		return pronto.Assemble(ctx, body, repeats, false), nil
	}

	return "", fmt.Errorf("no encoder registered for protocol %q", tag)
}

func necContext(tag pronto.Tag) pronto.Context {
	if tag == pronto.PIONEER {
		return pronto.NewPioneerContext(nec.UnitCycles)
	}
	return pronto.NewContext(nec.Carrier, nec.UnitCycles)
}

func kaseikyoFrame(tag pronto.Tag, btn *remote.Button) (pronto.Context, kaseikyo.Frame) {
	carrier := float64(kaseikyo.Carrier)
	unit := kaseikyo.UnitCycles
	if tag == pronto.SHARPDVD {
		carrier = 38000
		unit = 15
	}
	ctx := pronto.NewContext(carrier, unit)

	oem := kaseikyo.OEMTable[tag]
	frame := kaseikyo.Frame{
		OEMm:  oem[0],
		OEMn:  oem[1],
		ByteD: btn.CmdBytes.ByteD,
		ByteS: btn.CmdBytes.ByteS,
		ByteF: btn.CmdBytes.ByteF,
	}
	if tag == pronto.FUJITSU {
		frame.NoChecksum = true
		frame.TrailerSpace = 110
	}
	return ctx, frame
}
