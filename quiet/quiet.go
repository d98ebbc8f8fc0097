// Package quiet silences the standard logger. Import it for side
// effects in tests that don't want the message trace.
package quiet

import (
	"io"
	"log"
)

func init() {
	log.SetOutput(io.Discard)
}
