package persistence

import "errors"

const (
	// KeysMagic marks a packed sorted-key file ("OHMK").
	KeysMagic uint32 = 0x4F484D4B

	// KeysVersion is the current packed key file version.
	KeysVersion uint32 = 1

	keysHeaderSize = 16 // magic + version + count
	keysFooterSize = 4  // crc32
)

var (
	// ErrInvalidMagic indicates a key file with an unknown magic number.
	ErrInvalidMagic = errors.New("invalid key file magic")

	// ErrInvalidVersion indicates an unsupported key file version.
	ErrInvalidVersion = errors.New("unsupported key file version")

	// ErrChecksumMismatch indicates a corrupted key file.
	ErrChecksumMismatch = errors.New("key file checksum mismatch")

	// ErrTruncated indicates a key file shorter than its header claims.
	ErrTruncated = errors.New("truncated key file")
)
