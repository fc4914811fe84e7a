// Package cli provides the command-line interface for unwrapgen.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"unwrapgen/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// app is the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "unwrapgen",
		Short: "Generate plain declarations from observable ones",
		Long: `unwrapgen turns declarations whose fields are wrapped in observable and
reference-counted containers into plain declarations: wrappers are stripped,
observable collections become their plain counterparts and type names are
rewritten by the configured renamer.

Declarations come from YAML declaration documents or from Go packages whose
struct types carry //unwrapgen: directives.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			return a.init(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./unwrapgen.yaml)")
	pf.String("source", "", "input kind (document|go)")
	pf.StringP("format", "f", "", "output format (yaml|text|go)")
	pf.StringP("output-dir", "o", "", `output directory ("-" for stdout)`)
	pf.String("package", "", "package name for Go output")
	pf.Int("workers", 0, "parallel builds (0 = GOMAXPROCS)")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.BoolP("verbose", "v", false, "verbose output")
	pf.Bool("auto-name", false, "derive a name for containers without a renamer")
	pf.Bool("field-derives", false, "allow derive and cfg_feature on fields")
	pf.Bool("capture", false, "append generated declarations to the capture artifact")
	pf.String("capture-dir", "", "capture artifact directory")
	pf.String("capture-file", "", "capture artifact file name")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "text", "go"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("source", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"document", "go"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(a.newGenCommand())
	rootCmd.AddCommand(a.newCheckCommand())
	rootCmd.AddCommand(a.newWatchCommand())
	rootCmd.AddCommand(a.newCaptureCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	if cfg.File != "" {
		a.logger.Debug("using config file", slog.String("path", cfg.File))
	}

	return nil
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
