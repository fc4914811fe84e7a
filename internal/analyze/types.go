package analyze

import (
	"go/ast"
	"go/types"
	"strings"

	"unwrapgen/internal/typexpr"
)

// typeExpr converts a Go type expression into the type tree.
func typeExpr(expr ast.Expr) *typexpr.Expr {
	switch e := expr.(type) {
	case *ast.Ident:
		return typexpr.Named(e.Name)
	case *ast.SelectorExpr:
		if x, ok := e.X.(*ast.Ident); ok {
			return typexpr.NamedPath([]string{x.Name, e.Sel.Name})
		}
	case *ast.IndexExpr:
		return instantiate(e.X, e.Index)
	case *ast.IndexListExpr:
		return instantiate(e.X, e.Indices...)
	case *ast.ParenExpr:
		return typeExpr(e.X)
	case *ast.StructType:
		if e.Fields == nil || len(e.Fields.List) == 0 {
			return typexpr.Unit()
		}
	}

	return typexpr.Opaque(types.ExprString(expr))
}

func instantiate(base ast.Expr, args ...ast.Expr) *typexpr.Expr {
	b := typeExpr(base)
	if b.Kind != typexpr.KindNamed {
		return typexpr.Opaque(types.ExprString(base) + "[" + exprList(args) + "]")
	}

	for _, a := range args {
		b.Args = append(b.Args, typeExpr(a))
	}

	return b
}

func exprList(list []ast.Expr) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = types.ExprString(e)
	}

	return strings.Join(parts, ", ")
}

// typeParams renders a type parameter list without brackets.
func typeParams(list *ast.FieldList) string {
	if list == nil {
		return ""
	}

	parts := make([]string, 0, len(list.List))

	for _, f := range list.List {
		names := make([]string, len(f.Names))
		for i, n := range f.Names {
			names[i] = n.Name
		}

		parts = append(parts, strings.Join(names, ", ")+" "+types.ExprString(f.Type))
	}

	return strings.Join(parts, ", ")
}
