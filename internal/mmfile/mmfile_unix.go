//go:build linux || darwin || freebsd

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"fortio.org/safecast"
	"golang.org/x/sys/unix"
)

// Map maps the file at path read-only and returns its contents along with
// the function that unmaps them.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // the mapping outlives the descriptor

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if info.Size() == 0 {
		return []byte{}, noop, nil
	}
	size, err := safecast.Conv[int](info.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: %s too large to map: %w", path, err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("mmfile: mmap %s: %w", path, err)
	}
	// Decoding walks the file front to back exactly once.
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	release := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil // already unmapped
		}
		return err
	}
	return data, release, nil
}

func noop() error { return nil }
