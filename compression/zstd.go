package compression

import (
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
)

type ZSTDCodec struct{}

// NewZSTDCodec creates a new ZSTD codec using pure Go implementation
func NewZSTDCodec() Codec {
	return &ZSTDCodec{}
}

func (c *ZSTDCodec) Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, errors.Wrap(err, "zstd encoder")
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil), nil
}

func (c *ZSTDCodec) Decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, errors.Wrap(err, "zstd decoder")
	}
	defer decoder.Close()
	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.Wrap(err, "zstd decompress")
	}
	return out, nil
}

func (c *ZSTDCodec) Type() CompressionType {
	return TypeZSTD
}

func (c *ZSTDCodec) Extension() string {
	return ".zst"
}

func (c *ZSTDCodec) Implementation() string {
	return "Pure Go (klauspost/compress)"
}
