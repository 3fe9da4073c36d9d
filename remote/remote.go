// Package remote holds the JSON-loaded remote-definition data model
// (§3, §6): the Remote/Encoding/Button records as read from disk, plus
// the CmdOBC/CmdBytes fields the validator attaches to each button.
// LZO decompression of the source file is an external-collaborator
// concern (§1) and is not implemented here — callers decompress before
// handing the reader to LoadRemotes.
package remote

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// FlexInt decodes a JSON number or numeric string into an int, the
// way Repeats appears as a string in the remote-definitions example
// (§6) but Device/Subdevice appear as bare numbers.
type FlexInt int

func (fi *FlexInt) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*fi = FlexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("remote: value %s is neither a number nor a numeric string", b)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("remote: %q is not numeric: %w", s, err)
	}
	*fi = FlexInt(n)
	return nil
}

// IRemitter identifies the external transmitter a remote's codes are
// handed to (§6): an opaque device id and a service index the codec
// never interprets itself.
type IRemitter struct {
	Device     string `json:"Device"`
	ServiceIdx string `json:"ServiceIdx"`
}

// Encoding carries the per-remote protocol parameters (§3).
type Encoding struct {
	Protocol  string  `json:"Protocol"`
	Device    int     `json:"Device"`
	Subdevice int     `json:"Subdevice"`
	LSBFirst  *bool   `json:"LSBfirst,omitempty"`
	Repeats   FlexInt `json:"Repeats"`

	// Kaseikyo is set by the validator, not read from JSON, when
	// Protocol resolves to a member of the Kaseikyo family.
	Kaseikyo bool `json:"-"`
}

// CmdOBC is a button's original-button-code triple: the human-readable
// (D, S, F) values as printed on the physical remote, after endianness
// adjustment (§3).
type CmdOBC struct {
	D, S, F int
}

// CmdBytes is the protocol-specific, LSB-first, transmission-ready
// byte layout the validator derives for a button (§3). Only the
// fields relevant to the button's protocol family are populated; the
// comments below name which.
type CmdBytes struct {
	ByteD, ByteS, ByteF byte // NEC family, Kaseikyo, Denon/Sharp, Mitsubishi, JVC, RC5, RC6, RCA

	OEMm, OEMn byte // Kaseikyo family
	ByteE      byte // Sony20 extension byte

	Ext byte // Denon/Sharp two-bit extension field

	ProntoCode string // Pronto passthrough

	Bytes []int // GC100, Raw
	Freq  int   // Raw: carrier Hz for the Bytes list above
}

// Button is a single function entry (§3): the raw JSON shape plus the
// derived fields the validator populates in place.
type Button struct {
	Fnc  json.RawMessage `json:"Fnc"`
	Note string          `json:"Note,omitempty"`
	Freq int             `json:"Freq,omitempty"`

	CmdOBC   *CmdOBC   `json:"-"`
	CmdBytes *CmdBytes `json:"-"`
}

// Remote is one named virtual remote (§3): loaded once, validated in
// place, and thereafter read-only except for the single ephemeral slot
// send_irp_code uses.
type Remote struct {
	Model     string             `json:"Model"`
	IRemitter IRemitter          `json:"IRemitter"`
	Encoding  Encoding           `json:"Encoding"`
	Functions map[string]*Button `json:"Functions"`
}

// LoadRemotes decodes a remote-definitions JSON document (§6) into a
// map from remote display name to Remote. It does not validate; call
// validate.Remote on each entry before using it.
func LoadRemotes(r io.Reader) (map[string]*Remote, error) {
	var remotes map[string]*Remote
	dec := json.NewDecoder(r)
	if err := dec.Decode(&remotes); err != nil {
		return nil, fmt.Errorf("remote: decoding remote-definitions file: %w", err)
	}
	return remotes, nil
}
