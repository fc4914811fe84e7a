package analyze

import (
	"go/ast"
	"go/token"
	"strings"

	"unwrapgen/internal/common"
	"unwrapgen/internal/options"
)

// DirectivePrefix starts a configuration comment.
const DirectivePrefix = "//unwrapgen:"

type comments struct {
	blocks      []options.Block
	annotations []string
}

// readComments splits a doc comment into directive blocks and the
// remaining lines.
func readComments(fset *token.FileSet, group *ast.CommentGroup) comments {
	var cm comments

	if group == nil {
		return cm
	}

	for _, c := range group.List {
		if text, ok := strings.CutPrefix(c.Text, DirectivePrefix); ok {
			loc := position(fset, c.Slash)
			loc.Column += len(DirectivePrefix)

			cm.blocks = append(cm.blocks, options.Block{Text: text, Loc: loc})

			continue
		}

		line := strings.TrimPrefix(c.Text, "//")
		if strings.HasPrefix(c.Text, "/*") {
			line = strings.TrimSuffix(strings.TrimPrefix(c.Text, "/*"), "*/")
		}

		cm.annotations = append(cm.annotations, strings.TrimSpace(line))
	}

	cm.annotations = common.Filter(cm.annotations, func(s string) bool { return s != "" })

	return cm
}
