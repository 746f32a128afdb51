package compression

type NoneCodec struct{}

// NewNoneCodec creates a codec that stores backups as-is
func NewNoneCodec() Codec {
	return &NoneCodec{}
}

func (c *NoneCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (c *NoneCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

func (c *NoneCodec) Type() CompressionType {
	return TypeNone
}

func (c *NoneCodec) Extension() string {
	return ""
}

func (c *NoneCodec) Implementation() string {
	return "Plain copy"
}
