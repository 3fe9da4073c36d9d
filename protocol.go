package pronto

// Tag is the canonicalized, validated protocol identifier. Classifying
// a remote's protocol string into a Tag happens once, at validation;
// everything downstream — including which encode/ subpackage handles
// a button — dispatches on Tag instead of re-parsing the string.
type Tag string

const (
	NEC      Tag = "NEC"
	NEC2     Tag = "NEC2"
	LG       Tag = "LG"
	SAMSUNG  Tag = "SAMSUNG"
	SHARP    Tag = "SHARP"
	DENONNEC Tag = "DENON-NEC"
	PIONEER  Tag = "PIONEER"

	PANASONIC Tag = "PANASONIC"
	JVC48     Tag = "JVC48"
	DENONK    Tag = "DENON-K"
	FUJITSU   Tag = "FUJITSU"
	SHARPDVD  Tag = "SHARPDVD"
	TEACK     Tag = "TEAC-K"
	MITSUK    Tag = "MITSUBISHI-K"

	// DENON and DENONSHARP are the two members of the non-Kaseikyo,
	// two-frame "DENON/SHARP" row of §4.3 — distinguished from the
	// NEC-family SHARP member above, see DESIGN.md.
	DENON      Tag = "DENON"
	DENONSHARP Tag = "DENON-SHARP"

	MITSUBISHI Tag = "MITSUBISHI"
	JVC        Tag = "JVC"

	RC5 Tag = "RC5"

	RC6016 Tag = "RC6-0-16"
	RC6620 Tag = "RC6-6-20"
	RC6632 Tag = "RC6-6-32"
	MCE    Tag = "MCE"

	RCA Tag = "RCA"

	SONY12 Tag = "SONY12"
	SONY15 Tag = "SONY15"
	SONY20 Tag = "SONY20"

	GC100  Tag = "GC100"
	RAW    Tag = "RAW"
	PRONTO Tag = "PRONTO"
)

// necFamily is the set of tags that share NEC's framing (lead-in,
// D:8,S:8,F:8,~F:8 or NECx variant) and 38kHz/k=21 timing (40/38kHz
// for PIONEER, see NewPioneerContext).
var necFamily = map[Tag]bool{
	NEC: true, NEC2: true, LG: true, SAMSUNG: true,
	SHARP: true, DENONNEC: true, PIONEER: true,
}

// IsNECFamily reports whether tag is encoded by encode/nec.
func IsNECFamily(tag Tag) bool { return necFamily[tag] }

// kaseikyoFamily is the set of tags sharing Kaseikyo's 48-bit OEM-ID
// framing, including the four explicitly-stubbed variants (§9).
var kaseikyoFamily = map[Tag]bool{
	PANASONIC: true, JVC48: true, DENONK: true,
	FUJITSU: true, SHARPDVD: true, TEACK: true, MITSUK: true,
}

// IsKaseikyoFamily reports whether tag is encoded by encode/kaseikyo.
func IsKaseikyoFamily(tag Tag) bool { return kaseikyoFamily[tag] }

// denonSharpFamily is the set of tags sharing the older, non-Kaseikyo
// two-frame DENON/SHARP PDM format.
var denonSharpFamily = map[Tag]bool{DENON: true, DENONSHARP: true}

// IsDenonSharpFamily reports whether tag is encoded by encode/denonsharp.
func IsDenonSharpFamily(tag Tag) bool { return denonSharpFamily[tag] }

// rc6Family is the set of tags sharing RC6's bi-phase framing.
var rc6Family = map[Tag]bool{RC6016: true, RC6620: true, RC6632: true, MCE: true}

// IsRC6Family reports whether tag is encoded by encode/rc6.
func IsRC6Family(tag Tag) bool { return rc6Family[tag] }

// sonyFamily is the set of tags sharing Sony's PDM framing, varying
// only in device-field width and whether an extension byte is sent.
var sonyFamily = map[Tag]bool{SONY12: true, SONY15: true, SONY20: true}

// IsSonyFamily reports whether tag is encoded by encode/sony.
func IsSonyFamily(tag Tag) bool { return sonyFamily[tag] }

// StubbedKaseikyo is the set of Kaseikyo-family tags the protocol
// table declares but whose data layout is a stub (§1, §9): they
// validate and compute a Pronto string, but it is not guaranteed to
// decode against a real device.
var StubbedKaseikyo = map[Tag]bool{
	FUJITSU: true, SHARPDVD: true, TEACK: true, MITSUK: true,
}
