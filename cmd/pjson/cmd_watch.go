package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "watch [file...]",
		Short: "Print a snapshot after each chunk of input",
		Long: `Read each input in fixed-size chunks, and print the JSON snapshot of the
first object in the input after each chunk. With no files, or when a file
is "-", read standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.chunk <= 0 {
				return fmt.Errorf("invalid chunk size %d", opts.chunk)
			}
			return runInputs(args, cmd.InOrStdin(), cmd.OutOrStdout(), opts, watch)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVarP(&opts.chunk, "chunk", "c", 16, "chunk size in bytes")
	cmd.Flags().BoolVar(&opts.changes, "changes", false, "print only snapshots that differ from the previous one")

	return cmd
}

// watch reads r in chunks of opts.chunk bytes and writes a snapshot line to w
// after each one.
func watch(r io.Reader, w io.Writer, opts options) error {
	s := newStream(opts)
	buf := make([]byte, opts.chunk)
	var last string
	var nc int
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			nc++
			s.Write(buf[:n])
			log.Debugf("chunk %d: %q", nc, preview(buf[:n]))

			if text, ok := snapshot(s, opts); ok && !(opts.changes && text == last) {
				if _, err := fmt.Fprintln(w, text); err != nil {
					return err
				}
				last = text
			}
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			log.Infof("read %d bytes in %d chunks; complete=%v", s.Len(), nc, s.Done())
			return nil
		} else if err != nil {
			return err
		}
	}
}
