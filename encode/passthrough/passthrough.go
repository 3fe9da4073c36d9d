// Package passthrough handles the PRONTO protocol: a button whose Fnc
// is already a complete Pronto code string, returned verbatim.
package passthrough

import (
	"fmt"
	"strings"
)

// Frame holds an already-assembled Pronto code string.
type Frame struct {
	Code string
}

// Normalize upper-cases and collapses whitespace in a Pronto code
// string, the form the validator stores in cmd_bytes.pronto_code.
func Normalize(code string) string {
	fields := strings.Fields(code)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f)
	}
	return strings.Join(fields, " ")
}

// Validate checks that code is a well-formed space-separated sequence
// of 4-hex-digit words.
func Validate(code string) error {
	fields := strings.Fields(code)
	if len(fields) < 4 {
		return fmt.Errorf("pronto code too short: %d words", len(fields))
	}
	for _, f := range fields {
		if len(f) != 4 {
			return fmt.Errorf("pronto code word %q is not 4 hex digits", f)
		}
		for _, r := range f {
			if !strings.ContainsRune("0123456789ABCDEFabcdef", r) {
				return fmt.Errorf("pronto code word %q is not hex", f)
			}
		}
	}
	return nil
}
