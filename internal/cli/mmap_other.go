//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package cli

import (
	"os"

	"github.com/pkg/errors"
)

func mapFile(f *os.File, size int64) ([]byte, func() error, error) {
	return nil, nil, errors.New("mmap not supported")
}
