// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Media operations
	OpFrameDecode    Op = "decode frame"
	OpSoundtrackOpen Op = "open soundtrack"

	// Playback operations
	OpJumpParse Op = "parse time"

	// Integration
	OpMPRIS Op = "register media keys"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}
