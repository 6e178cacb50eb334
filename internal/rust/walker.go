package rust

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/Quant-link/QLK-Contract-Quard/internal/model"
)

// walker performs one preorder, declaration-order traversal of a parsed
// file and flattens every recognized declaration into the report. It
// descends into module, impl, and trait bodies but not into function
// bodies; node kinds without a handler are skipped silently.
type walker struct {
	src    []byte
	report *model.AnalysisReport
}

// walkBody dispatches the named children of source_file or a declaration
// list. In the tree-sitter grammar an outer attribute is a sibling of the
// item it decorates, so consecutive attribute_item nodes are buffered and
// attached to the next declaration.
func (w *walker) walkBody(n *sitter.Node) {
	var pending []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "attribute_item":
			pending = append(pending, child.Content(w.src))
			continue
		case "line_comment", "block_comment":
			continue
		case "function_item":
			w.function(child, pending)
		case "struct_item":
			w.structItem(child, pending)
		case "trait_item":
			w.traitItem(child, pending)
		case "impl_item":
			w.implItem(child)
		case "mod_item":
			if body := child.ChildByFieldName("body"); body != nil {
				w.walkBody(body)
			}
		case "use_declaration":
			w.report.Uses = append(w.report.Uses, child.Content(w.src))
		}
		pending = nil
	}
}

func (w *walker) function(n *sitter.Node, attrs []string) {
	name := w.fieldText(n, "name")
	if name == "" {
		return
	}
	start, end := lineSpan(n)
	fn := model.Function{
		Name:       name,
		Visibility: w.visibility(n),
		Parameters: []model.Parameter{},
		Attributes: attrList(attrs),
		LineStart:  start,
		LineEnd:    end,
	}
	if ret := n.ChildByFieldName("return_type"); ret != nil {
		text := ret.Content(w.src)
		fn.ReturnType = &text
	}
	if mods := childOfType(n, "function_modifiers"); mods != nil {
		for i := 0; i < int(mods.ChildCount()); i++ {
			switch mods.Child(i).Type() {
			case "async":
				fn.IsAsync = true
			case "unsafe":
				fn.IsUnsafe = true
			}
		}
	}
	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Parameters = w.parameters(params)
	}
	w.report.Functions = append(w.report.Functions, fn)
}

// parameters keeps only simple identifier-bound parameters; receivers and
// destructuring patterns are omitted, not errors.
func (w *walker) parameters(list *sitter.Node) []model.Parameter {
	out := []model.Parameter{}
	for i := 0; i < int(list.NamedChildCount()); i++ {
		p := list.NamedChild(i)
		if p.Type() != "parameter" {
			continue
		}
		pattern := p.ChildByFieldName("pattern")
		typ := p.ChildByFieldName("type")
		if pattern == nil || typ == nil || pattern.Type() != "identifier" {
			continue
		}
		out = append(out, model.Parameter{
			Name:      pattern.Content(w.src),
			ParamType: typ.Content(w.src),
			IsMutable: childOfType(p, "mutable_specifier") != nil,
		})
	}
	return out
}

func (w *walker) structItem(n *sitter.Node, attrs []string) {
	name := w.fieldText(n, "name")
	if name == "" {
		return
	}
	start, end := lineSpan(n)
	st := model.Struct{
		Name:       name,
		Visibility: w.visibility(n),
		Fields:     []model.Field{},
		Attributes: attrList(attrs),
		LineStart:  start,
		LineEnd:    end,
	}
	if body := n.ChildByFieldName("body"); body != nil {
		switch body.Type() {
		case "field_declaration_list":
			st.Fields = w.namedFields(body)
		case "ordered_field_declaration_list":
			st.Fields = w.orderedFields(body)
		}
	}
	w.report.Structs = append(w.report.Structs, st)
}

func (w *walker) namedFields(list *sitter.Node) []model.Field {
	out := []model.Field{}
	for i := 0; i < int(list.NamedChildCount()); i++ {
		f := list.NamedChild(i)
		if f.Type() != "field_declaration" {
			continue
		}
		name := w.fieldText(f, "name")
		if name == "" {
			continue
		}
		out = append(out, model.Field{
			Name:       name,
			FieldType:  w.fieldText(f, "type"),
			Visibility: w.visibility(f),
		})
	}
	return out
}

// orderedFields synthesizes field_<index> names for tuple structs. The
// grammar lists a positional field as an optional visibility_modifier
// followed by a bare type node, so a seen modifier applies to the next type.
func (w *walker) orderedFields(list *sitter.Node) []model.Field {
	out := []model.Field{}
	vis := model.VisibilityPrivate
	for i := 0; i < int(list.NamedChildCount()); i++ {
		c := list.NamedChild(i)
		switch c.Type() {
		case "attribute_item", "line_comment", "block_comment":
			continue
		case "visibility_modifier":
			vis = visibilityText(c.Content(w.src))
			continue
		}
		out = append(out, model.Field{
			Name:       fmt.Sprintf("field_%d", len(out)),
			FieldType:  c.Content(w.src),
			Visibility: vis,
		})
		vis = model.VisibilityPrivate
	}
	return out
}

// traitItem records the trait with its function-shaped member names;
// associated consts and types are ignored. Default-bodied methods are also
// surfaced as function records by walking the trait body afterwards.
func (w *walker) traitItem(n *sitter.Node, attrs []string) {
	name := w.fieldText(n, "name")
	if name == "" {
		return
	}
	start, end := lineSpan(n)
	tr := model.Trait{
		Name:       name,
		Visibility: w.visibility(n),
		Methods:    []string{},
		Attributes: attrList(attrs),
		LineStart:  start,
		LineEnd:    end,
	}
	body := n.ChildByFieldName("body")
	if body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			m := body.NamedChild(i)
			switch m.Type() {
			case "function_item", "function_signature_item":
				if mn := w.fieldText(m, "name"); mn != "" {
					tr.Methods = append(tr.Methods, mn)
				}
			}
		}
	}
	w.report.Traits = append(w.report.Traits, tr)
	if body != nil {
		w.walkBody(body)
	}
}

func (w *walker) implItem(n *sitter.Node) {
	target := w.fieldText(n, "type")
	if target == "" {
		return
	}
	start, end := lineSpan(n)
	imp := model.Impl{
		TargetType: target,
		Methods:    []string{},
		LineStart:  start,
		LineEnd:    end,
	}
	if tr := n.ChildByFieldName("trait"); tr != nil {
		text := tr.Content(w.src)
		imp.TraitName = &text
	}
	body := n.ChildByFieldName("body")
	if body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			m := body.NamedChild(i)
			if m.Type() != "function_item" {
				continue
			}
			if mn := w.fieldText(m, "name"); mn != "" {
				imp.Methods = append(imp.Methods, mn)
			}
		}
	}
	w.report.ImplBlocks = append(w.report.ImplBlocks, imp)
	if body != nil {
		w.walkBody(body)
	}
}

func (w *walker) fieldText(n *sitter.Node, field string) string {
	c := n.ChildByFieldName(field)
	if c == nil {
		return ""
	}
	return c.Content(w.src)
}

func (w *walker) visibility(n *sitter.Node) string {
	vis := childOfType(n, "visibility_modifier")
	if vis == nil {
		return model.VisibilityPrivate
	}
	return visibilityText(vis.Content(w.src))
}

// visibilityText maps a rendered modifier onto the three recognized shapes:
// bare "pub", a scoped form like "pub(crate)", or absent (handled upstream).
func visibilityText(text string) string {
	if strings.Contains(text, "(") {
		return model.VisibilityRestricted
	}
	return model.VisibilityPublic
}

func childOfType(n *sitter.Node, kind string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == kind {
			return c
		}
	}
	return nil
}

// lineSpan returns the 1-based line range of a node, or the (1,1) sentinel
// when no position is available.
func lineSpan(n *sitter.Node) (int, int) {
	if n == nil {
		return 1, 1
	}
	return int(n.StartPoint().Row) + 1, int(n.EndPoint().Row) + 1
}

func attrList(attrs []string) []string {
	if len(attrs) == 0 {
		return []string{}
	}
	return attrs
}
