package sheet

import (
	"fmt"
	"io"
)

// Codec encodes and decodes tabular rows in one interchange format.
type Codec interface {
	Decode(r io.Reader) ([]Row, error)
	Encode(w io.Writer, rows []Row) error
}

// CodecFor returns the codec for a format name ("csv" or "xlsx").
func CodecFor(format string) (Codec, error) {
	switch format {
	case "csv":
		return CSVCodec{}, nil
	case "xlsx":
		return XLSXCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
