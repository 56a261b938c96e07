package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"hif/internal/ir"
	"hif/internal/source"
)

// NodeOutput represents one IR node in the JSON dump.
type NodeOutput struct {
	ID       uint32      `json:"id"`
	Kind     string      `json:"kind"`
	Name     string      `json:"name,omitempty"`
	Parent   uint32      `json:"parent,omitempty"`
	Span     source.Span `json:"span"`
	Comments []string    `json:"comments,omitempty"`
}

// dumpOrder собирает узлы дерева в preorder (родитель перед детьми),
// поля перед списками — тот же порядок, что у guide-визитора.
func dumpOrder(tree *ir.Tree, id ir.NodeID, out []ir.NodeID) []ir.NodeID {
	n := tree.Node(id)
	if n == nil {
		return out
	}
	out = append(out, id)
	for _, f := range n.Data.Fields() {
		if child := f.Get(); child.IsValid() {
			out = dumpOrder(tree, child, out)
		}
	}
	for _, l := range n.Data.Lists() {
		for _, child := range l.List.Items {
			out = dumpOrder(tree, child, out)
		}
	}
	return out
}

// FormatNodesPretty выводит дерево в человекочитаемом формате: id, kind,
// имя (если узел именованный) и позиция в исходном XML.
func FormatNodesPretty(w io.Writer, tree *ir.Tree, fs *source.FileSet) error {
	order := dumpOrder(tree, tree.Root(), nil)
	for _, id := range order {
		n := tree.Node(id)

		if _, err := fmt.Fprintf(w, "%4d: %-18s", uint32(id), n.Kind.String()); err != nil {
			return err
		}

		if named, ok := ir.AsNamed(n); ok && named.GetName() != "" {
			if _, err := fmt.Fprintf(w, " %q", named.GetName()); err != nil {
				return err
			}
		}

		if n.Code.Span.File != 0 && fs != nil {
			startPos, endPos := fs.Resolve(n.Code.Span)
			if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d",
				startPos.Line, startPos.Col,
				endPos.Line, endPos.Col); err != nil {
				return err
			}
		}

		if len(n.Comments) > 0 {
			if _, err := fmt.Fprintf(w, " (comments: %s)", strings.Join(n.Comments, ", ")); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// NodeOutputsJSON готовит узлы дерева к сериализации в JSON формате.
func NodeOutputsJSON(tree *ir.Tree) []NodeOutput {
	order := dumpOrder(tree, tree.Root(), nil)
	output := make([]NodeOutput, 0, len(order))
	for _, id := range order {
		n := tree.Node(id)

		nodeOut := NodeOutput{
			ID:     uint32(id),
			Kind:   n.Kind.String(),
			Parent: uint32(n.Parent),
			Span:   n.Code.Span,
		}
		if named, ok := ir.AsNamed(n); ok {
			nodeOut.Name = named.GetName()
		}
		if len(n.Comments) > 0 {
			nodeOut.Comments = n.Comments
		}

		output = append(output, nodeOut)
	}
	return output
}

// FormatNodesJSON выводит дерево в JSON формате
func FormatNodesJSON(w io.Writer, tree *ir.Tree) error {
	output := NodeOutputsJSON(tree)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
