package pronto

import (
	"fmt"
	"log"
	"strings"
)

// Assemble wraps an encoder's body in the four-word Pronto preamble
// and duplicates it repeats+1 times:
//
//	0000  <prescaler>  0000  <n>  <body...>
//
// n is half the total body word count; the "sequence 1" count is
// always 0000, there is no once-only sequence. jvcRepeatSkip
// reproduces JVC's lead-in-only-on-first-frame exception: copies of
// the body after the first omit its leading mark/space pair.
//
// An odd body word count is an InternalConsistency error (§7) — it
// should be unreachable from any encoder in this package — and is
// logged rather than returned, since the malformed string is still
// useful for diagnosing the bug that produced it.
func Assemble(ctx Context, body Body, repeats int, jvcRepeatSkip bool) string {
	if len(body)%2 != 0 {
		log.Printf("pronto: internal consistency error: body has odd word count (%d)", len(body))
	}

	full := make(Body, 0, len(body)*(repeats+1))
	full = append(full, body...)
	for r := 0; r < repeats; r++ {
		if jvcRepeatSkip && len(body) >= 2 {
			full = append(full, body[2:]...)
		} else {
			full = append(full, body...)
		}
	}

	words := make([]string, 0, 4+len(full))
	words = append(words,
		"0000",
		fmt.Sprintf("%04X", ctx.Prescaler),
		"0000",
		fmt.Sprintf("%04X", len(full)/2),
	)
	for _, w := range full {
		words = append(words, fmt.Sprintf("%04X", w))
	}
	return strings.Join(words, " ")
}
