package rust

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	tsrust "github.com/smacker/go-tree-sitter/rust"
)

// parseSource parses Rust source with the tree-sitter grammar. Tree-sitter
// never refuses input outright, so a tree whose root subtree contains ERROR
// or missing nodes is treated as a parse failure and reported with the
// position of the first offending node. An empty input parses cleanly as an
// empty source file.
func parseSource(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsrust.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	root := tree.RootNode()
	if root == nil {
		return nil, errors.New("no syntax tree produced")
	}
	if root.HasError() {
		return nil, firstSyntaxError(root, src)
	}
	return tree, nil
}

func firstSyntaxError(root *sitter.Node, src []byte) error {
	if bad := findErrorNode(root); bad != nil {
		line := int(bad.StartPoint().Row) + 1
		col := int(bad.StartPoint().Column) + 1
		if bad.IsMissing() {
			return fmt.Errorf("missing %s at line %d, column %d", bad.Type(), line, col)
		}
		return fmt.Errorf("syntax error near %q at line %d, column %d", truncate(bad.Content(src), 40), line, col)
	}
	return errors.New("syntax error")
}

func findErrorNode(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if bad := findErrorNode(n.Child(i)); bad != nil {
			return bad
		}
	}
	return n
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
