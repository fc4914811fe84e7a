package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) newGenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gen <input>...",
		Short: "Generate plain declarations",
		Long: `Generate plain declarations from each input.

An input is a declaration document (source: document) or a Go package
pattern (source: go). One output file is written per input into the output
directory; declarations that fail are reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.generate(cmd.Context(), cmd.OutOrStdout(), args)
			if res != nil {
				printDiagnostics(cmd.ErrOrStderr(), &res.diags)
			}

			if err != nil {
				return err
			}

			return failedError(&res.diags)
		},
	}
}
