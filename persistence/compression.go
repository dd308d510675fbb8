package persistence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the algorithm applied to catalog record blobs.
type Compression uint8

const (
	// CompressionNone stores the raw record stream (the wire contract).
	CompressionNone Compression = 0
	// CompressionLZ4 favors decompression speed.
	CompressionLZ4 Compression = 1
	// CompressionZSTD favors compression ratio.
	CompressionZSTD Compression = 2
)

// String returns the file suffix for the compression ("", "lz4", "zst").
func (c Compression) String() string {
	switch c {
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zst"
	default:
		return ""
	}
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data].
// CompressedSize == 0 means the data is stored uncompressed, which
// happens when compression does not pay for itself.
const blockHeaderSize = 8

// ErrInvalidBlock indicates a compressed block with a malformed header.
var ErrInvalidBlock = errors.New("invalid compressed block")

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Compress wraps data in the block format using the given algorithm.
// CompressionNone returns data unchanged, with no header.
func Compress(data []byte, compression Compression) ([]byte, error) {
	if compression == CompressionNone {
		return data, nil
	}

	var compressed []byte
	switch compression {
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		compressed = buf[:n] // n == 0 means incompressible
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, fmt.Errorf("unknown compression: %d", compression)
	}

	// Store uncompressed when compression does not help.
	if len(compressed) == 0 || len(compressed) >= len(data) {
		out := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[blockHeaderSize:], data)
		return out, nil
	}

	out := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	copy(out[blockHeaderSize:], compressed)
	return out, nil
}

// Decompress reverses Compress for the given algorithm.
func Decompress(data []byte, compression Compression) ([]byte, error) {
	if compression == CompressionNone {
		return data, nil
	}
	if len(data) < blockHeaderSize {
		return nil, ErrInvalidBlock
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])
	payload := data[blockHeaderSize:]

	if compressedSize == 0 {
		if uint32(len(payload)) != uncompressedSize {
			return nil, ErrInvalidBlock
		}
		return payload, nil
	}
	if uint32(len(payload)) != compressedSize {
		return nil, ErrInvalidBlock
	}

	switch compression {
	case CompressionLZ4:
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, ErrInvalidBlock
		}
		return out, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		out, err := dec.DecodeAll(payload, make([]byte, 0, uncompressedSize))
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown compression: %d", compression)
	}
}
