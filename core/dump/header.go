package dump

import "strings"

// Header renders the column-index line shown once above the listing: the
// byte positions 0..cols laid out exactly like a data row's hex channel,
// with blank address and text fields. The whole line is lowercase.
func Header(cols Columns) string {
	positions := make([]byte, cols)
	for i := range positions {
		positions[i] = byte(i)
	}
	hexText := strings.Join(groupBlocks(positions, cols, HexByte, hexPad, " "), "  ")
	line := composeRow(strings.Repeat(" ", addressWidth), hexText, strings.Repeat(" ", int(cols)))
	return strings.ToLower(line)
}
