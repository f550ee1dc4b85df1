package dump

import (
	"strconv"

	hexerrors "github.com/FocuswithJustin/hexview/core/errors"
)

// Columns is the configured row width in bytes.
type Columns int

// ValidColumns lists the accepted row widths. Every valid width is a
// multiple of BlockSize, so a row always holds a whole number of blocks.
var ValidColumns = []Columns{8, 16, 32, 64}

// Validate checks the width against the allow-list. Callers must validate
// before constructing a Dumper; the engine assumes a valid width.
func (c Columns) Validate() error {
	for _, v := range ValidColumns {
		if c == v {
			return nil
		}
	}
	return hexerrors.NewConfig("columns", strconv.Itoa(int(c)), "accepted values are 8, 16, 32, 64")
}

// Blocks returns the number of rendering blocks per row.
func (c Columns) Blocks() int {
	return int(c) / BlockSize
}
