package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"log/slog"
	"strconv"

	"golang.org/x/tools/go/packages"

	"unwrapgen/internal/common"
	"unwrapgen/internal/decl"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/options"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and extracts annotated declarations.
type Analyzer struct {
	dir    string
	logger *slog.Logger
}

// NewAnalyzer creates a new Analyzer resolving patterns relative to dir.
// An empty dir means the current directory.
func NewAnalyzer(dir string, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{dir: dir, logger: logger}
}

// Result holds the declarations found in the loaded packages, in source
// order, and the diagnostics for annotated types that could not be read.
type Result struct {
	Decls       []*decl.Container
	Diagnostics diagnostic.Diagnostics
}

// LoadPackages loads the packages matching patterns (e.g. "./models") and
// extracts every annotated struct declaration.
func (a *Analyzer) LoadPackages(patterns ...string) (*Result, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	res := &Result{}

	for _, pkg := range pkgs {
		before := len(res.Decls)

		for _, file := range pkg.Syntax {
			a.processFile(pkg, file, res)
		}

		a.logger.Debug("analyzed package",
			slog.String("package", pkg.PkgPath),
			slog.Int("declarations", len(res.Decls)-before))
	}

	return res, nil
}

func (a *Analyzer) processFile(pkg *packages.Package, file *ast.File, res *Result) {
	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}

			cm := readComments(pkg.Fset, doc)
			if len(cm.blocks) == 0 {
				continue
			}

			c, err := a.container(pkg, ts, cm)
			if err != nil {
				res.Diagnostics.AddErr(err, ts.Name.Name)
				continue
			}

			res.Decls = append(res.Decls, c)
		}
	}
}

func (a *Analyzer) container(pkg *packages.Package, ts *ast.TypeSpec, cm comments) (*decl.Container, error) {
	loc := position(pkg.Fset, ts.Name.Pos())

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, diagnostic.New(diagnostic.KindUnsupported, "not_a_struct", loc,
			"only struct types can carry unwrapgen directives")
	}

	c := &decl.Container{
		Kind:        decl.KindStruct,
		Name:        ts.Name.Name,
		Generics:    typeParams(ts.TypeParams),
		Annotations: cm.annotations,
		Meta:        cm.blocks,
		Loc:         loc,
		Package:     packageName(pkg),
	}

	named, embedded := 0, 0

	for _, f := range st.Fields.List {
		fcm := readComments(pkg.Fset, f.Doc)

		tag, err := fieldTag(f)
		if err != nil {
			return nil, diagnostic.New(diagnostic.KindSyntax, "invalid_tag", position(pkg.Fset, f.Tag.Pos()),
				"invalid struct tag: %v", err)
		}

		typ := typeExpr(f.Type)

		if len(f.Names) == 0 {
			embedded++

			c.Fields = append(c.Fields, &decl.Field{
				Type:        typ,
				Annotations: fcm.annotations,
				Meta:        fcm.blocks,
				Tag:         tag,
				Loc:         position(pkg.Fset, f.Type.Pos()),
			})

			continue
		}

		for _, name := range f.Names {
			named++

			c.Fields = append(c.Fields, &decl.Field{
				Name:        name.Name,
				Type:        typ.Clone(),
				Annotations: append([]string(nil), fcm.annotations...),
				Meta:        append([]options.Block(nil), fcm.blocks...),
				Tag:         tag,
				Loc:         position(pkg.Fset, name.Pos()),
			})
		}
	}

	switch {
	case named == 0 && embedded == 0:
		c.Style = decl.StyleUnit
	case named == 0:
		c.Style = decl.StylePositional
	default:
		c.Style = decl.StyleNamed
	}

	return c, nil
}

func packageName(pkg *packages.Package) string {
	if pkg.Name != "" {
		return pkg.Name
	}

	return common.PkgAlias(pkg.PkgPath)
}

func fieldTag(f *ast.Field) (string, error) {
	if f.Tag == nil {
		return "", nil
	}

	return strconv.Unquote(f.Tag.Value)
}

func position(fset *token.FileSet, pos token.Pos) diagnostic.Location {
	p := fset.Position(pos)
	return diagnostic.Location{File: p.Filename, Line: p.Line, Column: p.Column}
}
