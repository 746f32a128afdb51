package compression

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/ulikunitz/xz"
)

type XZCodec struct{}

// NewXZCodec creates a new XZ codec using pure Go implementation
func NewXZCodec() Codec {
	return &XZCodec{}
}

func (c *XZCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "xz writer")
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, errors.Wrap(err, "xz compress")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "xz flush")
	}
	return buf.Bytes(), nil
}

func (c *XZCodec) Decompress(data []byte) ([]byte, error) {
	reader, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "xz reader")
	}
	return io.ReadAll(reader)
}

func (c *XZCodec) Type() CompressionType {
	return TypeXZ
}

func (c *XZCodec) Extension() string {
	return ".xz"
}

func (c *XZCodec) Implementation() string {
	return "Pure Go (ulikunitz/xz)"
}
