package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"unwrapgen/internal/capture"
)

func (a *app) newCaptureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Control the capture artifact",
		Long: `The capture artifact collects the text of every declaration generated
while capture is enabled, across runs. "capture start" creates or resets it,
"capture stop" seals it so later runs leave it untouched.`,
	}

	sink := func() *capture.FileSink {
		return capture.NewFileSink(a.cfg.Capture.Dir, a.cfg.Capture.File, a.logger)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Create or reset the capture artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := sink()
			if err := s.Start(); err != nil {
				return err
			}

			a.logger.Debug("capture artifact ready", slog.String("path", s.Path()))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "capturing to %s\n", s.Path())

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Seal the capture artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := sink()
			if err := s.Stop(); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "capture stopped: %s\n", s.Path())

			return nil
		},
	})

	return cmd
}
