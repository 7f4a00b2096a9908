package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSoundtrackOpen,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpSoundtrackOpen,
			err:      errors.New("unsupported format"),
			expected: "Failed to open soundtrack: unsupported format",
		},
		{
			name:     "frame decode",
			op:       OpFrameDecode,
			err:      errors.New("unexpected EOF"),
			expected: "Failed to decode frame: unexpected EOF",
		},
		{
			name:     "media keys",
			op:       OpMPRIS,
			err:      errors.New("no session bus"),
			expected: "Failed to register media keys: no session bus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	ops := []Op{OpFrameDecode, OpSoundtrackOpen, OpJumpParse, OpMPRIS}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
