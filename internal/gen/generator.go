package gen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"unwrapgen/internal/build"
	"unwrapgen/internal/capture"
	"unwrapgen/internal/decl"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/document"
	"unwrapgen/internal/options"
	"unwrapgen/internal/render"
)

// GeneratorConfig holds configuration for a generation run.
type GeneratorConfig struct {
	// PackageName is the package of generated Go files. When empty the
	// package of the first declaration is used.
	PackageName string
	// OutputDir is where WriteFiles puts generated files and where
	// unformatted Go output is dumped for debugging.
	OutputDir string
	// Format selects the output rendering.
	Format Format
	// Workers bounds parallel builds. Zero uses GOMAXPROCS.
	Workers int
	// Policy configures the options parser.
	Policy options.Policy
	// Sink receives the text of every built declaration.
	Sink capture.Sink
	// Logger receives progress and per-declaration failures.
	Logger *slog.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "",
		OutputDir:   "./generated",
		Format:      FormatYAML,
		Policy:      options.DefaultPolicy(),
	}
}

// Generator builds and renders batches of declarations.
type Generator struct {
	config  GeneratorConfig
	builder *build.Builder
	logger  *slog.Logger
	sink    capture.Sink
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sink := config.Sink
	if sink == nil {
		sink = capture.NopSink{}
	}

	return &Generator{
		config:  config,
		builder: build.New(config.Policy),
		logger:  logger,
		sink:    sink,
	}
}

// GeneratedFile represents a generated output file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "beans.unwrapped.go").
	Filename string
	// Content is the rendered output.
	Content []byte
}

// Result is the outcome of one batch.
type Result struct {
	// Decls are the built declarations, in input order, without the failed
	// ones.
	Decls []*decl.Container
	// Diagnostics holds one error per failed declaration plus warnings
	// from the capture sink.
	Diagnostics diagnostic.Diagnostics
	// Processed is the number of declarations attempted before the
	// context was cancelled.
	Processed int
}

type outcome struct {
	done bool
	decl *decl.Container
	err  error
}

// Build transforms every declaration. A declaration that fails is recorded
// in the diagnostics and skipped; the error return is reserved for
// cancellation.
func (g *Generator) Build(ctx context.Context, decls []*decl.Container) (*Result, error) {
	results := make([]outcome, len(decls))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Workers)

	for i, c := range decls {
		i, c := i, c

		if ctx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := g.builder.Build(c)
			results[i] = outcome{done: true, decl: out, err: err}

			return nil
		})
	}

	waitErr := eg.Wait()

	res := &Result{}

	for i, r := range results {
		if !r.done {
			continue
		}

		res.Processed++

		if r.err != nil {
			g.logger.Debug("declaration failed",
				slog.String("declaration", decls[i].Name),
				slog.String("error", r.err.Error()))

			res.Diagnostics.AddErr(r.err, decls[i].Name)

			continue
		}

		res.Decls = append(res.Decls, r.decl)

		if err := g.sink.Append(render.Declaration(r.decl)); err != nil {
			res.Diagnostics.AddWarning("capture_failed", err.Error(), r.decl.Name)
		}
	}

	g.logger.Info("built declarations",
		slog.Int("total", len(decls)),
		slog.Int("built", len(res.Decls)),
		slog.Int("failed", len(res.Diagnostics.Errors)))

	if waitErr != nil {
		return res, fmt.Errorf("generation cancelled: %w", waitErr)
	}

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("generation cancelled: %w", err)
	}

	return res, nil
}

// Render renders built declarations into one file named after source.
func (g *Generator) Render(source string, decls []*decl.Container) (*GeneratedFile, error) {
	filename := OutputName(source, g.config.Format)

	switch g.config.Format {
	case FormatText:
		parts := make([]string, len(decls))
		for i, c := range decls {
			parts[i] = render.Declaration(c)
		}

		return &GeneratedFile{Filename: filename, Content: []byte(strings.Join(parts, "\n"))}, nil

	case FormatGo:
		content, err := render.GoFile(g.packageName(decls), source, decls)
		if err != nil {
			if content != nil && g.config.OutputDir != "" {
				if derr := writeDebugUnformatted(g.config.OutputDir, filename, content); derr != nil {
					g.logger.Warn("writing unformatted output", slog.String("error", derr.Error()))
				}
			}

			return nil, fmt.Errorf("rendering %s: %w", filename, err)
		}

		return &GeneratedFile{Filename: filename, Content: content}, nil

	default:
		data, err := document.Marshal(document.FromDecls(g.packageName(decls), decls))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", filename, err)
		}

		return &GeneratedFile{Filename: filename, Content: data}, nil
	}
}

// Generate builds decls and renders the successful ones. The file is nil
// when nothing was built.
func (g *Generator) Generate(ctx context.Context, source string, decls []*decl.Container) (*GeneratedFile, *Result, error) {
	res, err := g.Build(ctx, decls)
	if err != nil {
		return nil, res, err
	}

	if len(res.Decls) == 0 {
		return nil, res, nil
	}

	file, err := g.Render(source, res.Decls)
	if err != nil {
		return nil, res, err
	}

	return file, res, nil
}

func (g *Generator) packageName(decls []*decl.Container) string {
	if g.config.PackageName != "" {
		return g.config.PackageName
	}

	for _, c := range decls {
		if c.Package != "" {
			return c.Package
		}
	}

	return "unwrapped"
}

// OutputName derives the generated file name from the source path:
// "models/beans.yaml" becomes "beans.unwrapped.go" for Go output.
func OutputName(source string, format Format) string {
	base := filepath.Base(source)
	if source == "" || base == "." || base == string(filepath.Separator) {
		base = "declarations"
	}

	base = strings.TrimSuffix(base, filepath.Ext(base))

	return base + ".unwrapped" + format.extension()
}
