// Package pronto encodes logical IR remote button presses into the
// Pronto CCF hexadecimal waveform representation.
//
// Given a protocol, a device/subdevice address, a function code and a
// repeat count, it produces the exact sequence of 16-bit burst-pair
// counts an IR blaster replays to reproduce the original remote's
// modulated carrier. The per-protocol encoders live in the encode/
// subpackages; this package holds the shared contract they all build
// on: the clock model, the burst primitives, the protocol metadata
// table and the Pronto assembler.
package pronto
