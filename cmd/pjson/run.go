package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/creachadair/mds/mstr"
	"github.com/creachadair/pjson"
	"github.com/creachadair/pjson/jpath"
	"github.com/creachadair/pjson/query"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
)

// options are the settings shared by the subcommands.
type options struct {
	path     string // select this path from each snapshot, if set
	maxDepth int    // limit object nesting, if positive
	workers  int    // process up to this many inputs concurrently

	chunk   int  // (watch) read this many bytes between snapshots
	changes bool // (watch) print only snapshots that differ from the last
}

func (o *options) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.path, "path", "p", "", "select a value by JSONPath (e.g., $.a.b)")
	cmd.Flags().IntVar(&o.maxDepth, "max-depth", 0, "maximum object nesting depth (0 for no limit)")
	cmd.Flags().IntVarP(&o.workers, "workers", "j", 4, "number of inputs to process concurrently")
}

// An inputFunc reads the complete contents of r and writes results to w.
type inputFunc func(r io.Reader, w io.Writer, opts options) error

// runInputs calls run for each named input, with stdin standing in for the
// input "-" or for an empty list. Inputs are processed concurrently, but
// their outputs are written to w in the order given. If there is more than
// one input, each output is preceded by a header line with the input name.
func runInputs(names []string, stdin io.Reader, w io.Writer, opts options, run inputFunc) error {
	if len(names) == 0 {
		names = []string{"-"}
	}
	if opts.path != "" {
		if _, err := jpath.Parse(opts.path); err != nil {
			return fmt.Errorf("invalid path %q: %w", opts.path, err)
		}
	}

	pool, err := ants.NewPool(max(opts.workers, 1))
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	outs := make([]bytes.Buffer, len(names))
	errs := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			errs[i] = runInput(name, stdin, &outs[i], opts, run)
		})
		if err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("%s: %w", name, err)
		}
	}
	wg.Wait()

	for i, name := range names {
		if len(names) > 1 {
			fmt.Fprintf(w, "==> %s <==\n", name)
		}
		if _, err := outs[i].WriteTo(w); err != nil {
			return err
		}
		if errs[i] != nil {
			log.Errorf("%s: %v", name, errs[i])
		}
	}
	return errors.Join(errs...)
}

func runInput(name string, stdin io.Reader, w io.Writer, opts options, run inputFunc) error {
	if name == "-" {
		log.Debugf("reading standard input")
		return run(stdin, w, opts)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	log.Debugf("reading %q", name)
	if err := run(f, w, opts); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// newStream returns a new stream configured by opts.
func newStream(opts options) *pjson.Stream {
	s := pjson.NewStream()
	s.SetMaxDepth(opts.maxDepth)
	return s
}

// snapshot renders the current snapshot of s as JSON text, selecting the
// value at opts.path if one is set. It reports false if the selected value
// is not (yet) present.
func snapshot(s *pjson.Stream, opts options) (string, bool) {
	var v pjson.Value = s.Query()
	if opts.path != "" {
		w, err := query.Eval(v, jpath.MustParse(opts.path).Query())
		if err != nil {
			log.Debugf("select %q: %v", opts.path, err)
			return "", false
		}
		v = w
	}
	return v.JSON(), true
}

// preview returns a shortened form of text for log messages.
func preview(text []byte) string { return mstr.Trunc(string(text), 40) }
