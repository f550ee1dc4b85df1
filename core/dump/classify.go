// Package dump implements the hex/ASCII listing engine: per-byte
// classification, 8-byte block grouping, address formatting, row and header
// composition, and the driver that walks a byte stream and emits the
// listing. All formatting functions are pure; only Dumper holds state.
package dump

import "fmt"

// HexByte renders a byte as two uppercase hex digits, zero-padded.
func HexByte(b byte) string {
	return fmt.Sprintf("%02X", b)
}

// TextByte renders a byte for the text channel: printable ASCII
// (0x20..0x7E) renders as itself, everything else as the placeholder.
func TextByte(b byte) string {
	if b >= 0x20 && b <= 0x7e {
		return string(b)
	}
	return textPad
}
