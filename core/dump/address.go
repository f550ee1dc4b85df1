package dump

import "fmt"

// addressWidth is the fixed width of the address field: "0x" plus eight
// hex digits.
const addressWidth = 10

// FormatAddress renders a stream offset as zero-padded lowercase hex with
// a "0x" prefix, always addressWidth characters.
func FormatAddress(addr uint32) string {
	return fmt.Sprintf("0x%08x", addr)
}
