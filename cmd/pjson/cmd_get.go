package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "get [file...]",
		Short: "Print the snapshot of the complete input",
		Long: `Read each input completely, and print the JSON snapshot of the first
object in the input. With no files, or when a file is "-", read standard
input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInputs(args, cmd.InOrStdin(), cmd.OutOrStdout(), opts, get)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

// get reads all of r and writes its final snapshot to w.
func get(r io.Reader, w io.Writer, opts options) error {
	s := newStream(opts)
	if _, err := s.ReadFrom(r); err != nil {
		return err
	}
	out := s.Parse()
	log.Infof("read %d bytes; object at %v partial=%v", s.Len(), out.Span, out.Partial)

	text, ok := snapshot(s, opts)
	if !ok {
		return fmt.Errorf("path %q not found", opts.path)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
