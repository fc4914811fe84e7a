package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"unwrapgen/internal/analyze"
	"unwrapgen/internal/capture"
	"unwrapgen/internal/decl"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/document"
	"unwrapgen/internal/gen"
)

// stdoutDir as output directory prints generated files instead of writing
// them.
const stdoutDir = "-"

// load reads the declarations of one input with the configured front end.
// Declarations the front end could not read are reported in the
// diagnostics.
func (a *app) load(path string) ([]*decl.Container, *diagnostic.Diagnostics, error) {
	switch a.cfg.Source {
	case "go":
		res, err := analyze.NewAnalyzer("", a.logger).LoadPackages(path)
		if err != nil {
			return nil, nil, err
		}

		return res.Decls, &res.Diagnostics, nil

	default:
		doc, err := document.LoadFile(path)
		if err != nil {
			return nil, nil, err
		}

		decls, diags := document.Decls(doc)

		return decls, diags, nil
	}
}

func (a *app) sink() capture.Sink {
	if !a.cfg.Capture.Enabled {
		return capture.NopSink{}
	}

	return capture.NewFileSink(a.cfg.Capture.Dir, a.cfg.Capture.File, a.logger)
}

func (a *app) generator() (*gen.Generator, error) {
	format, err := gen.ParseFormat(a.cfg.Format)
	if err != nil {
		return nil, err
	}

	outDir := a.cfg.OutputDir
	if outDir == stdoutDir {
		outDir = ""
	}

	return gen.NewGenerator(gen.GeneratorConfig{
		PackageName: a.cfg.Package,
		OutputDir:   outDir,
		Format:      format,
		Workers:     a.cfg.Workers,
		Policy:      a.cfg.OptionsPolicy(),
		Sink:        a.sink(),
		Logger:      a.logger,
	}), nil
}

// runResult summarizes one generation pass over all inputs.
type runResult struct {
	diags   diagnostic.Diagnostics
	built   int
	written []string
}

// generate loads, builds and writes every input. Per-declaration failures
// end up in the diagnostics; the error is for failures of a whole input.
func (a *app) generate(ctx context.Context, out io.Writer, paths []string) (*runResult, error) {
	g, err := a.generator()
	if err != nil {
		return nil, err
	}

	res := &runResult{}

	for _, path := range paths {
		decls, diags, err := a.load(path)
		if err != nil {
			return res, fmt.Errorf("loading %s: %w", path, err)
		}

		res.diags.Merge(*diags)

		file, built, err := g.Generate(ctx, path, decls)
		if built != nil {
			res.diags.Merge(built.Diagnostics)
			res.built += len(built.Decls)
		}

		if err != nil {
			return res, fmt.Errorf("generating %s: %w", path, err)
		}

		if file == nil {
			continue
		}

		if a.cfg.OutputDir == stdoutDir {
			if _, err := out.Write(file.Content); err != nil {
				return res, err
			}

			continue
		}

		written, err := gen.WriteFiles([]gen.GeneratedFile{*file}, a.cfg.OutputDir)
		if err != nil {
			return res, err
		}

		for _, w := range written {
			a.logger.Info("wrote file", slog.String("path", w))
		}

		res.written = append(res.written, written...)
	}

	return res, nil
}
