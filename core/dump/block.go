package dump

import "strings"

const (
	// BlockSize is the number of byte positions in one rendering block.
	BlockSize = 8

	hexPad  = ".."
	textPad = "."
)

// groupBlocks renders data into cols/BlockSize block strings. Block i
// covers positions [i*8, i*8+8); positions at or beyond len(data) render
// as pad, so a short row still occupies the full cols width. Items within
// a block are joined by itemSep.
func groupBlocks(data []byte, cols Columns, render func(byte) string, pad, itemSep string) []string {
	blocks := make([]string, 0, cols.Blocks())
	for start := 0; start < int(cols); start += BlockSize {
		items := make([]string, 0, BlockSize)
		for pos := start; pos < start+BlockSize; pos++ {
			if pos < len(data) {
				items = append(items, render(data[pos]))
			} else {
				items = append(items, pad)
			}
		}
		blocks = append(blocks, strings.Join(items, itemSep))
	}
	return blocks
}

// hexChannel renders the hex view of a row: per block, eight byte codes
// joined by single spaces; blocks joined by two spaces.
func hexChannel(data []byte, cols Columns) string {
	return strings.Join(groupBlocks(data, cols, HexByte, hexPad, " "), "  ")
}

// textChannel renders the printable view of a row: characters concatenate
// within and across blocks, giving an unbroken cols-wide field.
func textChannel(data []byte, cols Columns) string {
	return strings.Join(groupBlocks(data, cols, TextByte, textPad, ""), "")
}
