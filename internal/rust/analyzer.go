// Package rust extracts a flat declaration inventory from a single Rust
// smart-contract source file. Parsing is delegated to the tree-sitter Rust
// grammar; the package never evaluates semantics, only reshapes syntax.
package rust

import (
	"context"
	"fmt"

	"github.com/Quant-link/QLK-Contract-Quard/internal/model"
)

// Analyze produces the full report for one source text. Classification runs
// over the raw text regardless of parse outcome. On parse failure the report
// carries empty record lists, the "unknown" contract type, and exactly one
// error entry; it is never partially populated.
func Analyze(ctx context.Context, source string) *model.AnalysisReport {
	report := model.NewReport()
	report.ContractType = DetectContractType(source)

	src := []byte(source)
	tree, err := parseSource(ctx, src)
	if err != nil {
		report.ContractType = model.ContractUnknown
		report.Errors = append(report.Errors, fmt.Sprintf("Parse error: %v", err))
		return report
	}

	w := &walker{src: src, report: report}
	w.walkBody(tree.RootNode())
	return report
}
