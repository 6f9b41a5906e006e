package persona

import (
	"io"
	"os"
)

// Prober reads the leading bytes of a file for magic-byte resolution.
// Implementations return the bytes actually read; fewer than n bytes or
// an error are both treated as a non-match by the registry.
type Prober interface {
	Probe(path string, n int) ([]byte, error)
}

// fsProber reads magic bytes from the host filesystem.
type fsProber struct{}

func (fsProber) Probe(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:read], nil
}
