package cli

import (
	"fmt"
	"io"

	"github.com/gammazero/workerpool"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/zeebo/sha2"
)

type runner struct {
	cfg    Config
	log    zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type result struct {
	digest sha2.Digest
	err    error
}

// hashAll hashes every input on a bounded pool. results[i] belongs to
// inputs[i] regardless of completion order. Standard input is read on the
// calling goroutine in argument order, so the first "-" consumes the whole
// stream and any later one hashes what remains.
func (r *runner) hashAll(inputs []string, variantOf func(i int) sha2.Variant) []result {
	p := newProgress(r.stderr, r.cfg.Progress, totalSize(inputs))
	defer p.finish()

	results := make([]result, len(inputs))
	hashOne := func(i int) {
		name, v := inputs[i], variantOf(i)
		r.log.Debug().Str("file", name).Stringer("algorithm", v).Msg("hashing")

		d, err := hashPath(v, name, r.stdin, p)
		results[i] = result{digest: d, err: err}
	}

	pool := workerpool.New(r.cfg.Jobs)
	var stdin []int
	for i, name := range inputs {
		if name == stdinName {
			stdin = append(stdin, i)
			continue
		}
		i := i
		pool.Submit(func() { hashOne(i) })
	}
	for _, i := range stdin {
		hashOne(i)
	}
	pool.StopWait()

	return results
}

func (r *runner) sum(names []string) error {
	v, ok, err := r.cfg.variant()
	if err != nil {
		return err
	}
	if !ok {
		v = sha2.SHA256
	}

	var errs *multierror.Error
	for i, res := range r.hashAll(names, func(int) sha2.Variant { return v }) {
		if res.err != nil {
			r.log.Error().Err(res.err).Str("file", names[i]).Msg("could not hash file")
			errs = multierror.Append(errs, res.err)
			continue
		}
		fmt.Fprintf(r.stdout, "%s  %s\n", res.digest, names[i])
	}
	return errs.ErrorOrNil()
}
