package compression

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cockroachdb/errors"
)

type BrotliCodec struct{}

// NewBrotliCodec creates a new Brotli codec using pure Go implementation
func NewBrotliCodec() Codec {
	return &BrotliCodec{}
}

func (c *BrotliCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, errors.Wrap(err, "brotli compress")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "brotli flush")
	}
	return buf.Bytes(), nil
}

func (c *BrotliCodec) Decompress(data []byte) ([]byte, error) {
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, errors.Wrap(err, "brotli decompress")
	}
	return out, nil
}

func (c *BrotliCodec) Type() CompressionType {
	return TypeBrotli
}

func (c *BrotliCodec) Extension() string {
	return ".br"
}

func (c *BrotliCodec) Implementation() string {
	return "Pure Go (andybalholm/brotli)"
}
