package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/zeebo/sha2"
)

// entry is one parsed line of a checksum list.
type entry struct {
	name string
	want sha2.Digest
}

// parseLine splits a checksum line in either "<hex>  <name>" or
// "<hex> *<name>" form.
func parseLine(line string) (sum, name string, err error) {
	i := strings.IndexByte(line, ' ')
	if i <= 0 || i+2 > len(line) {
		return "", "", errors.New("improperly formatted checksum line")
	}
	sum, rest := line[:i], line[i+1:]
	if (rest[0] != ' ' && rest[0] != '*') || len(rest) == 1 {
		return "", "", errors.New("improperly formatted checksum line")
	}
	return sum, rest[1:], nil
}

// parseEntry turns a checksum line into an entry. When fixed is false the
// variant is inferred from the length of the hex digest.
func parseEntry(line string, v sha2.Variant, fixed bool) (entry, error) {
	sum, name, err := parseLine(line)
	if err != nil {
		return entry{}, err
	}
	if !fixed {
		var ok bool
		if len(sum)%2 != 0 {
			return entry{}, errors.Errorf("odd digest length %d", len(sum))
		}
		if v, ok = sha2.VariantForSize(len(sum) / 2); !ok {
			return entry{}, errors.Errorf("no algorithm with %d byte digests", len(sum)/2)
		}
	}
	want, err := sha2.ParseDigest(v, sum)
	if err != nil {
		return entry{}, err
	}
	return entry{name: name, want: want}, nil
}

func (r *runner) readList(name string, v sha2.Variant, fixed bool) ([]entry, error) {
	var in io.Reader = r.stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	var entries []entry
	sc := bufio.NewScanner(in)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		e, err := parseEntry(line, v, fixed)
		if err != nil {
			r.log.Warn().Err(err).Str("list", name).Int("line", lineno).Msg("skipping line")
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	if len(entries) == 0 {
		return nil, errors.Errorf("%s: no properly formatted checksum lines found", name)
	}
	return entries, nil
}

func (r *runner) check(lists []string) error {
	v, fixed, err := r.cfg.variant()
	if err != nil {
		return err
	}

	var errs *multierror.Error
	var entries []entry
	for _, list := range lists {
		es, err := r.readList(list, v, fixed)
		if err != nil {
			r.log.Error().Err(err).Str("list", list).Msg("could not read checksum list")
			errs = multierror.Append(errs, err)
			continue
		}
		entries = append(entries, es...)
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}

	results := r.hashAll(names, func(i int) sha2.Variant { return entries[i].want.Variant() })
	for i, res := range results {
		e := entries[i]
		switch {
		case res.err != nil:
			r.log.Error().Err(res.err).Str("file", e.name).Msg("could not hash file")
			fmt.Fprintf(r.stdout, "%s: FAILED open or read\n", e.name)
			errs = multierror.Append(errs, res.err)
		case res.digest != e.want:
			fmt.Fprintf(r.stdout, "%s: FAILED\n", e.name)
			errs = multierror.Append(errs, errors.Errorf("%s: checksum did not match", e.name))
		default:
			fmt.Fprintf(r.stdout, "%s: OK\n", e.name)
		}
	}
	return errs.ErrorOrNil()
}
