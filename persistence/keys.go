package persistence

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// EncodeKeys packs sorted resistance keys into the binary key file:
// magic, version, count, little-endian float64 payload, CRC32 footer.
func EncodeKeys(keys []float64) []byte {
	var buf bytes.Buffer
	buf.Grow(keysHeaderSize + 8*len(keys) + keysFooterSize)

	cw := NewChecksumWriter(&buf)

	var header [keysHeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:], KeysMagic)
	binary.LittleEndian.PutUint32(header[4:], KeysVersion)
	binary.LittleEndian.PutUint64(header[8:], uint64(len(keys)))
	_, _ = cw.Write(header[:])

	var scratch [8]byte
	for _, key := range keys {
		binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(key))
		_, _ = cw.Write(scratch[:])
	}

	var footer [keysFooterSize]byte
	binary.LittleEndian.PutUint32(footer[:], cw.Sum())
	buf.Write(footer[:])

	return buf.Bytes()
}

// DecodeKeys parses and verifies a binary key file.
func DecodeKeys(data []byte) ([]float64, error) {
	if len(data) < keysHeaderSize+keysFooterSize {
		return nil, ErrTruncated
	}

	if binary.LittleEndian.Uint32(data[0:]) != KeysMagic {
		return nil, ErrInvalidMagic
	}
	if binary.LittleEndian.Uint32(data[4:]) != KeysVersion {
		return nil, ErrInvalidVersion
	}
	count := binary.LittleEndian.Uint64(data[8:])

	body := data[:len(data)-keysFooterSize]
	want := binary.LittleEndian.Uint32(data[len(data)-keysFooterSize:])
	if Checksum(body) != want {
		return nil, ErrChecksumMismatch
	}

	payload := body[keysHeaderSize:]
	// Compare counts, not count*8: a huge count would wrap the product
	// and slip past the check.
	if len(payload)%8 != 0 || uint64(len(payload)/8) != count {
		return nil, ErrTruncated
	}

	keys := make([]float64, count)
	for i := range keys {
		keys[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
	}
	return keys, nil
}

// EncodeKeysText renders keys as the comma-delimited text list, the
// format consumed by tooling that cannot read the packed file.
func EncodeKeysText(keys []float64) []byte {
	var sb strings.Builder
	for i, key := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(key, 'g', -1, 64))
	}
	return []byte(sb.String())
}

// DecodeKeysText parses the comma-delimited text key list.
func DecodeKeysText(data []byte) ([]float64, error) {
	if len(data) == 0 {
		return nil, nil
	}

	parts := strings.Split(string(data), ",")
	keys := make([]float64, 0, len(parts))
	for _, part := range parts {
		key, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
