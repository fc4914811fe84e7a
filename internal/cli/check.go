package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/gen"
)

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <input>...",
		Short: "Validate declarations without writing output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := gen.NewGenerator(gen.GeneratorConfig{
				Workers: a.cfg.Workers,
				Policy:  a.cfg.OptionsPolicy(),
				Logger:  a.logger,
			})

			var (
				all   diagnostic.Diagnostics
				total int
			)

			for _, path := range args {
				decls, diags, err := a.load(path)
				if err != nil {
					return fmt.Errorf("loading %s: %w", path, err)
				}

				all.Merge(*diags)

				res, err := g.Build(cmd.Context(), decls)
				if err != nil {
					return err
				}

				all.Merge(res.Diagnostics)
				total += len(decls)
			}

			out := cmd.OutOrStdout()

			if len(all.All()) == 0 {
				_, _ = fmt.Fprintf(out, "%d declaration(s) OK\n", total)
				return nil
			}

			renderDiagnosticsTable(out, &all)

			return failedError(&all)
		},
	}
}
