package document

// Document represents the root of a YAML declaration document.
type Document struct {
	// Version of the document schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Package is the Go package name used for Go output.
	Package string `yaml:"package,omitempty"`

	// Declarations lists the containers to transform.
	Declarations []Declaration `yaml:"declarations"`

	// Path is the file the document was loaded from.
	Path string `yaml:"-"`
}

// Declaration describes one struct, enum or union.
type Declaration struct {
	// Kind is struct (default), enum or union.
	Kind string `yaml:"kind,omitempty"`

	// Name of the declared type.
	Name string `yaml:"name"`

	// Visibility is copied verbatim (e.g. "pub", "pub(crate)").
	Visibility string `yaml:"visibility,omitempty"`

	// Generics is the generic parameter list without brackets.
	Generics string `yaml:"generics,omitempty"`

	// Where is the where clause without the keyword.
	Where string `yaml:"where,omitempty"`

	// Style is named, positional or unit. Inferred from the fields when empty.
	Style string `yaml:"style,omitempty"`

	// Config holds the configuration entries for the container.
	Config MetaList `yaml:"config,omitempty"`

	// Annotations are passed through to the output unless replaced.
	Annotations []string `yaml:"annotations,omitempty"`

	// Fields of a struct.
	Fields []Field `yaml:"fields,omitempty"`

	// Variants of an enum.
	Variants []Variant `yaml:"variants,omitempty"`

	Line   int `yaml:"-"`
	Column int `yaml:"-"`
}

// Field describes a struct or variant field.
type Field struct {
	// Name is empty for positional fields.
	Name        string   `yaml:"name,omitempty"`
	Visibility  string   `yaml:"visibility,omitempty"`
	Type        string   `yaml:"type"`
	Config      MetaList `yaml:"config,omitempty"`
	Annotations []string `yaml:"annotations,omitempty"`
	Tag         string   `yaml:"tag,omitempty"`

	Line   int `yaml:"-"`
	Column int `yaml:"-"`
}

// Variant describes an enum variant.
type Variant struct {
	Name         string   `yaml:"name"`
	Style        string   `yaml:"style,omitempty"`
	Fields       []Field  `yaml:"fields,omitempty"`
	Annotations  []string `yaml:"annotations,omitempty"`
	Discriminant string   `yaml:"discriminant,omitempty"`

	Line   int `yaml:"-"`
	Column int `yaml:"-"`
}

// MetaEntry is one configuration entry list with its YAML position.
type MetaEntry struct {
	Text   string
	Line   int
	Column int
}

// MetaList accepts either a single string or a list of strings.
type MetaList []MetaEntry
