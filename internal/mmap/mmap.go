// Package mmap provides read-only memory-mapped file access for catalog
// blobs. Catalog files are immutable once published, so a shared
// read-only mapping is always safe.
package mmap

import (
	"errors"
	"io"
	"os"
	"sync/atomic"
)

// ErrInvalidSize indicates a file whose reported size cannot be mapped.
var ErrInvalidSize = errors.New("mmap: invalid file size")

// Mapping is a read-only memory-mapped file. It owns the underlying byte
// slice and unmaps it on Close.
type Mapping struct {
	data   []byte
	closed atomic.Bool
}

// Open maps the file at path into memory as read-only. Empty files map
// to a nil byte slice.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size := fi.Size()
	if size < 0 || int64(int(size)) != size {
		return nil, ErrInvalidSize
	}
	if size == 0 {
		return &Mapping{}, nil
	}

	data, err := osMap(f, int(size))
	if err != nil {
		return nil, err
	}
	return &Mapping{data: data}, nil
}

// Bytes returns the mapped bytes. The slice is valid until Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	return osUnmap(data)
}

// ReadAt implements io.ReaderAt over the mapping.
func (m *Mapping) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if off < 0 || off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
