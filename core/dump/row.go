package dump

// fieldSep separates the address, hex, and text fields of a line.
const fieldSep = "  "

// composeRow joins the three fields of one output line and terminates it.
// The header reuses it with space-filled address and text fields.
func composeRow(address, hexText, asciiText string) string {
	return address + fieldSep + hexText + fieldSep + asciiText + "\n"
}

// FormatRow renders one data row: the address, the hex channel, and the
// text channel for up to Columns bytes. A row shorter than cols renders at
// full width with the missing positions padded.
func FormatRow(addr uint32, data []byte, cols Columns) string {
	return composeRow(FormatAddress(addr), hexChannel(data, cols), textChannel(data, cols))
}
