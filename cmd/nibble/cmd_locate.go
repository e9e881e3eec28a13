package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/nibble/source"
	"github.com/spf13/cobra"
)

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate <file> <offset>",
		Short: "Translate a byte offset into file:line:column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := source.Open(args[0])
			if err != nil {
				return err
			}
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse offset: %w", err)
			}
			if offset < 0 || offset > f.Len() {
				return fmt.Errorf("offset %d outside %s (length %d)", offset, f.Name(), f.Len())
			}

			line, col := f.PosToLineCol(offset)
			start, end := f.LineExtent(offset)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s:%d:%d\n", f.Name(), line, col)
			fmt.Fprintf(out, "%s\n", f.ReadSpan(start, end))
			fmt.Fprintf(out, "%s^\n", strings.Repeat(" ", col-1))
			return nil
		},
	}
}
