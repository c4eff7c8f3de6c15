package cli

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/zeebo/sha2"
)

// chunkSize is how much of a mapped file is handed to the hasher per write.
const chunkSize = 1 << 20

// stdinName is the file name that selects standard input.
const stdinName = "-"

// progress counts hashed bytes into an optional bar. The zero value
// discards everything.
type progress struct {
	bar *progressbar.ProgressBar
}

func newProgress(w io.Writer, enabled bool, total int64) progress {
	if !enabled {
		return progress{}
	}
	return progress{bar: progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("hashing"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)}
}

func (p progress) Write(b []byte) (int, error) {
	p.add(len(b))
	return len(b), nil
}

func (p progress) add(n int) {
	if p.bar != nil {
		_ = p.bar.Add(n)
	}
}

func (p progress) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

// totalSize sums the sizes of the named regular files. It returns -1 when
// any input has an unknown size, which makes the bar a spinner.
func totalSize(names []string) int64 {
	var total int64
	for _, name := range names {
		if name == stdinName {
			return -1
		}
		fi, err := os.Stat(name)
		if err != nil {
			continue
		}
		if !fi.Mode().IsRegular() {
			return -1
		}
		total += fi.Size()
	}
	return total
}

// hashPath hashes the named file, or stdin when name is "-".
func hashPath(v sha2.Variant, name string, stdin io.Reader, p progress) (sha2.Digest, error) {
	h := sha2.New(v)

	if name == stdinName {
		if _, err := h.ReadFrom(io.TeeReader(stdin, p)); err != nil {
			return sha2.Digest{}, errors.Wrap(err, "reading standard input")
		}
		return h.Digest(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return sha2.Digest{}, errors.WithStack(err)
	}
	defer func() { _ = f.Close() }()

	if err := hashFile(h, f, p); err != nil {
		return sha2.Digest{}, errors.Wrapf(err, "reading %s", name)
	}
	return h.Digest(), nil
}

// hashFile writes the contents of f into h. Non-empty regular files are
// memory mapped when the platform allows it.
func hashFile(h *sha2.Hasher, f *os.File, p progress) error {
	fi, err := f.Stat()
	if err != nil {
		return err
	}

	if fi.Mode().IsRegular() && fi.Size() > 0 {
		if data, unmap, err := mapFile(f, fi.Size()); err == nil {
			defer func() { _ = unmap() }()

			for len(data) > 0 {
				n := min(len(data), chunkSize)
				h.Write(data[:n])
				p.add(n)
				data = data[n:]
			}
			return nil
		}
	}

	_, err = h.ReadFrom(io.TeeReader(f, p))
	return err
}
