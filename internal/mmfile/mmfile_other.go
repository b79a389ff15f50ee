//go:build !(linux || darwin || freebsd)

package mmfile

import "os"

// Map reads the entire file where mmap is not wired up.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}

func noop() error { return nil }
