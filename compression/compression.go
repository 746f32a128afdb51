// Package compression provides codecs for the backup copies written before a rewrite.
package compression

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

type CompressionType int

const (
	TypeNone CompressionType = iota
	TypeXZ
	TypeZSTD
	TypeBrotli
)

// ErrUnsupported is returned for codec names or types that have no registered codec.
var ErrUnsupported = errors.New("unsupported compression type")

// String returns the string representation of compression type
func (t CompressionType) String() string {
	switch t {
	case TypeXZ:
		return "xz"
	case TypeZSTD:
		return "zstd"
	case TypeBrotli:
		return "brotli"
	default:
		return "none"
	}
}

// ParseType maps a flag value such as "xz" or "none" to its CompressionType.
func ParseType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "plain":
		return TypeNone, nil
	case "xz":
		return TypeXZ, nil
	case "zstd", "zst":
		return TypeZSTD, nil
	case "brotli", "br":
		return TypeBrotli, nil
	}
	return TypeNone, errors.Wrapf(ErrUnsupported, "%q", s)
}

// Codec is the interface for backup encoding and decoding
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Type() CompressionType
	// Extension is appended to the backup file name, "" for uncompressed backups.
	Extension() string
	Implementation() string
}

type CodecManager struct {
	codecs map[CompressionType]Codec
}

// NewCodecManager creates a new codec manager with all available codecs
func NewCodecManager() *CodecManager {
	manager := &CodecManager{
		codecs: make(map[CompressionType]Codec),
	}

	manager.codecs[TypeNone] = NewNoneCodec()
	manager.codecs[TypeXZ] = NewXZCodec()
	manager.codecs[TypeZSTD] = NewZSTDCodec()
	manager.codecs[TypeBrotli] = NewBrotliCodec()

	return manager
}

// GetCodec returns the codec for the specified type
func (m *CodecManager) GetCodec(compType CompressionType) (Codec, error) {
	codec, exists := m.codecs[compType]
	if !exists {
		return nil, errors.Wrapf(ErrUnsupported, "%s", compType.String())
	}
	return codec, nil
}

// GetSupportedTypes returns all supported compression types in ascending order.
func (m *CodecManager) GetSupportedTypes() []CompressionType {
	types := make([]CompressionType, 0, len(m.codecs))
	for t := range m.codecs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ByExtensionPriority returns the codecs ordered so that compressed formats
// are probed before the plain one when looking for an existing backup.
func (m *CodecManager) ByExtensionPriority() []Codec {
	types := m.GetSupportedTypes()
	codecs := make([]Codec, 0, len(types))
	for i := len(types) - 1; i >= 0; i-- {
		codecs = append(codecs, m.codecs[types[i]])
	}
	return codecs
}

// GetImplementationInfo returns information about the implementation of each codec
func (m *CodecManager) GetImplementationInfo() map[CompressionType]string {
	info := make(map[CompressionType]string)
	for t, c := range m.codecs {
		info[t] = c.Implementation()
	}
	return info
}
