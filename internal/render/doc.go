// Package render prints transformed declarations, either as declaration
// text in angle notation or as a gofmt'd Go source file.
package render
