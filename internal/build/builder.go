package build

import (
	"unwrapgen/internal/decl"
	"unwrapgen/internal/diagnostic"
	"unwrapgen/internal/options"
	"unwrapgen/internal/rewrite"
)

// Builder transforms container declarations. It holds no per-call state and
// is safe for concurrent use.
type Builder struct {
	parser *options.Parser
}

// New creates a Builder parsing metadata with the given policy.
func New(policy options.Policy) *Builder {
	return &Builder{parser: options.NewParser(policy)}
}

// Build returns the transformed declaration. c is not modified.
func (b *Builder) Build(c *decl.Container) (*decl.Container, error) {
	if err := checkShape(c); err != nil {
		return nil, err
	}

	copts, err := b.parser.Parse(c.Metadata(), options.ContainerAt(c.Name, c.Loc))
	if err != nil {
		return nil, err
	}

	name, err := containerName(c, copts)
	if err != nil {
		return nil, err
	}

	out := &decl.Container{
		Kind:        c.Kind,
		Name:        name,
		Visibility:  c.Visibility,
		Generics:    c.Generics,
		Where:       c.Where,
		Style:       c.Style,
		Annotations: copts.Annotations(),
		Loc:         c.Loc,
		Package:     c.Package,
	}

	if c.Kind == decl.KindStruct {
		out.Fields, err = b.fields(c.Name, c.Fields, copts)
		if err != nil {
			return nil, err
		}

		return out, nil
	}

	for _, v := range c.Variants {
		fields, err := b.fields(decl.VariantPath(c.Name, v), v.Fields, copts)
		if err != nil {
			return nil, err
		}

		out.Variants = append(out.Variants, &decl.Variant{
			Name:        v.Name,
			Style:       v.Style,
			Fields:      fields,
			Annotations: append([]string(nil), v.Annotations...),
			Loc:         v.Loc,
		})
	}

	return out, nil
}

// checkShape rejects declarations the builder cannot transform.
func checkShape(c *decl.Container) error {
	switch c.Kind {
	case decl.KindUnion:
		return diagnostic.New(diagnostic.KindUnsupported, "union", c.Loc,
			"unions are not supported").WithElement(c.Name)
	case decl.KindStruct:
		if c.Style == decl.StyleUnit {
			return diagnostic.New(diagnostic.KindUnsupported, "unit_struct", c.Loc,
				"unit structs are not supported").WithElement(c.Name)
		}
	case decl.KindEnum:
		for _, v := range c.Variants {
			if v.Discriminant != "" {
				return diagnostic.New(diagnostic.KindUnsupported, "enum_discriminant", v.Loc,
					"variant %s has an explicit discriminant (= %s), which is not supported", v.Name, v.Discriminant).
					WithElement(decl.VariantPath(c.Name, v))
			}
		}
	}

	return nil
}

func (b *Builder) fields(owner string, fields []*decl.Field, copts *options.Options) ([]*decl.Field, error) {
	var out []*decl.Field

	for i, f := range fields {
		path := decl.FieldPath(owner, f, i)

		fopts, err := b.parser.Parse(f.Metadata(), options.FieldAt(path, f.IsPositional(), f.Loc))
		if err != nil {
			return nil, err
		}

		merged := options.Merge(fopts, copts)
		if merged.Remove.Set {
			continue
		}

		t, err := rewrite.Rewrite(f.Type, merged, rewrite.Naming{Element: path, Loc: f.Loc})
		if err != nil {
			return nil, err
		}

		out = append(out, &decl.Field{
			Name:        f.Name,
			Visibility:  f.Visibility,
			Type:        t,
			Annotations: merged.Annotations(),
			Tag:         f.Tag,
			Loc:         f.Loc,
			Options:     merged,
		})
	}

	return out, nil
}
