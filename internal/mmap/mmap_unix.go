//go:build !windows

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// osMap establishes a shared read-only mapping over the whole file.
// Catalog blobs are decoded front to back, so the kernel is advised to
// read ahead sequentially; the advice is best effort.
func osMap(f *os.File, size int) ([]byte, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
	return data, nil
}

func osUnmap(data []byte) error {
	return unix.Munmap(data)
}
