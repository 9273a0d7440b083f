package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Report syntax errors without printing trees",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.check(cmd, cmd.OutOrStdout(), args)
		},
	}
}

// check parses every file, printing "ok" for each one that parses and the
// error for each one that does not.
func (o *options) check(cmd *cobra.Command, w io.Writer, paths []string) error {
	var errs []error
	for _, path := range paths {
		res, err := o.parse(cmd, path, "", false)
		if err != nil {
			fmt.Fprintln(w, err)
			errs = append(errs, err)
			continue
		}
		res.release()
		fmt.Fprintf(w, "%s: ok\n", path)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed", len(errs), len(paths))
	}
	return nil
}
