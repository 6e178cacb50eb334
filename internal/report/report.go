package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Quant-link/QLK-Contract-Quard/internal/model"
)

// Summary is the compact per-file view used by table output.
type Summary struct {
	ContractType model.ContractType `json:"contract_type"`
	Functions    int                `json:"functions"`
	Structs      int                `json:"structs"`
	Traits       int                `json:"traits"`
	ImplBlocks   int                `json:"impl_blocks"`
	Uses         int                `json:"uses"`
	Errors       []string           `json:"errors"`
}

func Summarize(r *model.AnalysisReport) Summary {
	return Summary{
		ContractType: r.ContractType,
		Functions:    len(r.Functions),
		Structs:      len(r.Structs),
		Traits:       len(r.Traits),
		ImplBlocks:   len(r.ImplBlocks),
		Uses:         len(r.Uses),
		Errors:       r.Errors,
	}
}

// ToJSON renders a report or scan result as indented JSON with the stable
// field names downstream tooling consumes.
func ToJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// WriteTable prints a human-oriented inventory of one report.
func WriteTable(w io.Writer, r *model.AnalysisReport) {
	fmt.Fprintf(w, "contract type: %s\n", r.ContractType)
	for _, e := range r.Errors {
		fmt.Fprintf(w, "error: %s\n", e)
	}
	for _, f := range r.Functions {
		ret := ""
		if f.ReturnType != nil {
			ret = " -> " + *f.ReturnType
		}
		fmt.Fprintf(w, "fn    %-30s %s params=%d%s [%d-%d]\n", f.Name, f.Visibility, len(f.Parameters), ret, f.LineStart, f.LineEnd)
	}
	for _, s := range r.Structs {
		fmt.Fprintf(w, "struct %-29s %s fields=%d [%d-%d]\n", s.Name, s.Visibility, len(s.Fields), s.LineStart, s.LineEnd)
	}
	for _, t := range r.Traits {
		fmt.Fprintf(w, "trait %-30s %s methods=%d [%d-%d]\n", t.Name, t.Visibility, len(t.Methods), t.LineStart, t.LineEnd)
	}
	for _, im := range r.ImplBlocks {
		target := im.TargetType
		if im.TraitName != nil {
			target = *im.TraitName + " for " + target
		}
		fmt.Fprintf(w, "impl  %-30s methods=%d [%d-%d]\n", target, len(im.Methods), im.LineStart, im.LineEnd)
	}
	for _, u := range r.Uses {
		fmt.Fprintf(w, "use   %s\n", u)
	}
}
