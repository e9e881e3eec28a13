package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/nibble/source"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("nibble")

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse key/value files and report caret diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := source.NewSet()
			for _, path := range args {
				f, err := source.Open(path)
				if err != nil {
					return err
				}
				set.AddFile(f)
			}

			failures := 0
			for _, f := range set.Files() {
				log.Infof("checking %s (%d bytes)", f.Name(), f.Len())

				entries, perr := entriesParser.ParseInput(f)
				if perr != nil {
					failures++
					// Underline from the failure to the end of its line;
					// a failure at end of input gets a single caret.
					start := set.ToGlobal(f, perr.Pos)
					end := start
					if _, lineEnd := f.LineExtent(perr.Pos); lineEnd > perr.Pos {
						end = set.ToGlobal(f, lineEnd)
					}
					if err := set.RenderDiagnostic(os.Stderr, perr.Error(), source.Span{Start: start, End: end}); err != nil {
						return fmt.Errorf("render diagnostic: %w", err)
					}
					continue
				}

				log.Infof("%s: %d entries", f.Name(), len(entries))
				if !quiet {
					for _, e := range entries {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", f.Name(), e.Key, e.Value)
					}
				}
			}

			if failures > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failures, len(set.Files()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report errors, not parsed entries")
	return cmd
}
