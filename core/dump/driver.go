package dump

import (
	"encoding/hex"
	"errors"
	"io"

	"github.com/zeebo/blake3"

	hexerrors "github.com/FocuswithJustin/hexview/core/errors"
)

// sectionRows is the number of rows between blank-line section breaks.
const sectionRows = 16

// Dumper walks a byte stream and writes its hex/ASCII listing. One Dumper
// serves one stream; it is not safe for concurrent use and not reusable
// after Run returns.
type Dumper struct {
	// Stream labels the input in read errors (typically the file path).
	Stream string
	// Sink labels the output in write errors.
	Sink string

	cols   Columns
	w      io.Writer
	addr   uint32
	rows   uint64
	read   uint64
	hasher *blake3.Hasher
}

// NewDumper returns a Dumper writing rows of cols bytes to w. cols must
// already be validated.
func NewDumper(cols Columns, w io.Writer) *Dumper {
	return &Dumper{cols: cols, w: w, hasher: blake3.New()}
}

// Run dumps r until end of input. The header line is emitted before any
// data; a blank line precedes every sectionRows-th row, the first
// included. The first read or write failure stops the dump; rows already
// written remain in the sink as a valid truncated listing, and no partial
// row is emitted for the failed chunk.
func (d *Dumper) Run(r io.Reader) error {
	if err := d.write(Header(d.cols)); err != nil {
		return err
	}

	buf := make([]byte, int(d.cols))
	for {
		n, err := io.ReadFull(r, buf)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return hexerrors.NewRead(d.Stream, d.addr, err)
		}
		if werr := d.emitRow(buf[:n]); werr != nil {
			return werr
		}
		if err != nil {
			// Short final row: the stream ended mid-row.
			return nil
		}
	}
}

// Digest returns the lowercase hex BLAKE3 digest of every byte rendered so
// far.
func (d *Dumper) Digest() string {
	return hex.EncodeToString(d.hasher.Sum(nil))
}

// BytesDumped returns the total number of input bytes rendered.
func (d *Dumper) BytesDumped() uint64 {
	return d.read
}

func (d *Dumper) emitRow(row []byte) error {
	if d.rows%sectionRows == 0 {
		if err := d.write("\n"); err != nil {
			return err
		}
	}
	if err := d.write(FormatRow(d.addr, row, d.cols)); err != nil {
		return err
	}
	_, _ = d.hasher.Write(row)
	d.addr += uint32(len(row))
	d.read += uint64(len(row))
	d.rows++
	return nil
}

func (d *Dumper) write(s string) error {
	if _, err := io.WriteString(d.w, s); err != nil {
		return hexerrors.NewWrite(d.Sink, d.addr, err)
	}
	return nil
}
