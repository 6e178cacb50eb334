package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Quant-link/QLK-Contract-Quard/internal/model"
	"github.com/Quant-link/QLK-Contract-Quard/internal/util"
)

type entry struct {
	kind  string
	name  string
	start int
	end   int
}

type modelT struct {
	contractType model.ContractType
	entries      []entry
	source       string
	cursor       int
}

func initialModel(rep *model.AnalysisReport, source string) modelT {
	var entries []entry
	for _, f := range rep.Functions {
		entries = append(entries, entry{"fn", f.Name, f.LineStart, f.LineEnd})
	}
	for _, s := range rep.Structs {
		entries = append(entries, entry{"struct", s.Name, s.LineStart, s.LineEnd})
	}
	for _, t := range rep.Traits {
		entries = append(entries, entry{"trait", t.Name, t.LineStart, t.LineEnd})
	}
	for _, im := range rep.ImplBlocks {
		entries = append(entries, entry{"impl", im.TargetType, im.LineStart, im.LineEnd})
	}
	return modelT{contractType: rep.ContractType, entries: entries, source: source}
}

func (m modelT) Init() tea.Cmd { return nil }

func (m modelT) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m modelT) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Declarations (%d) — contract type %s\n\n", len(m.entries), m.contractType)
	for i, e := range m.entries {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%-6s %s [%d-%d]\n", marker, e.kind, e.name, e.start, e.end)
	}
	if len(m.entries) > 0 {
		sel := m.entries[m.cursor]
		fmt.Fprintf(&b, "\n--- %s %s ---\n%s\n", sel.kind, sel.name, util.ExtractSnippet(m.source, sel.start, sel.end, 8))
	}
	b.WriteString("\nq to quit, j/k to move\n")
	return b.String()
}

// Run launches a minimal declaration browser for one report
func Run(rep *model.AnalysisReport, source string) error {
	p := tea.NewProgram(initialModel(rep, source))
	_, err := p.Run()
	return err
}
