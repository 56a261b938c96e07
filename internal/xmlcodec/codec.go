// Package xmlcodec implements the XML wire format round trip: every
// node's tag is its ClassID name, its scalar attributes come from
// encodeScalars/decodeScalars, and its owned children (the payload's
// Fields and Lists) are walked generically through the Payload interface
// rather than a hand-written case per kind, the same approach
// internal/standardize's shallowClone takes for cloning, applied here to
// serialization instead.
//
// Weak references (Symbol.ResolvesTo, the semantic-type cache) never travel
// on the wire, and ParseXML leaves them unset: a parsed Symbol resolves to
// nothing and no semantic type is cached. Reference and type caches are not
// owned state of the tree.
package xmlcodec

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"hif/internal/ir"
)

// Options configures WriteXML's output shape.
type Options struct {
	// Indent, if non-empty, is used as xml.Encoder's per-level indent
	// string; the zero value emits a compact, unindented document.
	Indent string
}

// ParseXML decodes a System from r. It accepts both formatVersion eras:
// decodeScalars already tolerates format <4's
// "operator" spelling and absent Range "direction" attribute.
func ParseXML(r io.Reader) (*ir.System, error) {
	utf8Reader := transform.NewReader(r, unicode.UTF8.NewDecoder())
	dec := xml.NewDecoder(utf8Reader)
	tree := ir.NewTree(256)

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("xmlcodec: empty document")
			}
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		rootID, err := readNode(dec, tree, start)
		if err != nil {
			return nil, err
		}
		tree.SetRoot(rootID)
		if _, ok := tree.Node(rootID).Data.(*ir.SystemData); !ok {
			return nil, fmt.Errorf("xmlcodec: document root is %s, not a System", start.Name.Local)
		}
		return ir.NewSystem(tree), nil
	}
}

// WriteXML encodes system's tree starting at its System root.
func WriteXML(w io.Writer, system *ir.System, opts Options) error {
	if system == nil || system.Tree == nil || !system.Tree.Root().IsValid() {
		return fmt.Errorf("xmlcodec: nil or rootless system")
	}
	enc := xml.NewEncoder(w)
	if opts.Indent != "" {
		enc.Indent("", opts.Indent)
	}
	if err := writeNode(enc, system.Tree, system.Tree.Root()); err != nil {
		return err
	}
	return enc.Flush()
}

func readNode(dec *xml.Decoder, tree *ir.Tree, start xml.StartElement) (ir.NodeID, error) {
	kind, ok := tagToClass[start.Name.Local]
	if !ok {
		return ir.NoNode, fmt.Errorf("xmlcodec: unknown element %q", start.Name.Local)
	}
	payload, ok := newPayload(kind)
	if !ok {
		return ir.NoNode, fmt.Errorf("xmlcodec: %s has no instantiable payload", kind)
	}
	decodeScalars(payload, start)

	id := tree.Alloc(ir.Node{Kind: kind, Data: payload})
	n := tree.Node(id)
	for _, l := range payload.Lists() {
		l.List.Owner = id
	}
	if v, ok := findAttr(start, "line"); ok {
		if ln, err := strconv.ParseUint(v, 10, 32); err == nil {
			n.Code.Line = uint32(ln)
		}
	}
	if v, ok := findAttr(start, "column"); ok {
		if col, err := strconv.ParseUint(v, 10, 32); err == nil {
			n.Code.Column = uint32(col)
		}
	}
	if named, ok := ir.AsNamed(n); ok {
		if v, ok := findAttr(start, "name"); ok {
			named.SetName(v)
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return ir.NoNode, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "field":
				fieldName, _ := findAttr(t, "name")
				if err := readField(dec, tree, id, fieldName); err != nil {
					return ir.NoNode, err
				}
			case "list":
				listName, _ := findAttr(t, "name")
				if err := readList(dec, tree, payload, listName); err != nil {
					return ir.NoNode, err
				}
			case "keyword":
				v, err := readChardata(dec)
				if err != nil {
					return ir.NoNode, err
				}
				n.Keywords = append(n.Keywords, v)
			case "comment":
				v, err := readChardata(dec)
				if err != nil {
					return ir.NoNode, err
				}
				n.Comments = append(n.Comments, v)
			default:
				return ir.NoNode, fmt.Errorf("xmlcodec: unexpected element %q inside %q", t.Name.Local, start.Name.Local)
			}
		case xml.EndElement:
			return id, nil
		}
	}
}

// readField consumes a <field name="...">child?</field> wrapper. A field
// with no child element (an unset owned field, legal for e.g. Type before a
// standardization pass has resolved it) is left unset.
func readField(dec *xml.Decoder, tree *ir.Tree, parent ir.NodeID, fieldName string) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			childID, err := readNode(dec, tree, t)
			if err != nil {
				return err
			}
			if _, err := tree.SetChild(parent, fieldName, childID); err != nil {
				return fmt.Errorf("xmlcodec: field %q: %w", fieldName, err)
			}
		case xml.EndElement:
			return nil
		}
	}
}

// readList consumes a <list name="...">child*</list> wrapper, pushing each
// child onto the matching BList slot reported by payload.Lists().
func readList(dec *xml.Decoder, tree *ir.Tree, payload ir.Payload, listName string) error {
	var slot *ir.BList
	for _, l := range payload.Lists() {
		if l.Name == listName {
			slot = l.List
			break
		}
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			childID, err := readNode(dec, tree, t)
			if err != nil {
				return err
			}
			if slot == nil {
				return fmt.Errorf("xmlcodec: list %q is not owned by %s", listName, payload.ClassID())
			}
			tree.ListPushBack(slot, childID)
		case xml.EndElement:
			return nil
		}
	}
}

func readChardata(dec *xml.Decoder) (string, error) {
	var out string
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			out += string(t)
		case xml.EndElement:
			return out, nil
		}
	}
}

func writeNode(enc *xml.Encoder, tree *ir.Tree, id ir.NodeID) error {
	n := tree.Node(id)
	if n == nil {
		return fmt.Errorf("xmlcodec: dangling node %d", id)
	}
	start := xml.StartElement{Name: xml.Name{Local: n.Kind.String()}}
	start.Attr = append(start.Attr,
		attr("line", strconv.FormatUint(uint64(n.Code.Line), 10)),
		attr("column", strconv.FormatUint(uint64(n.Code.Column), 10)),
	)
	if named, ok := ir.AsNamed(n); ok {
		start.Attr = append(start.Attr, attr("name", named.GetName()))
	}
	start.Attr = append(start.Attr, encodeScalars(n.Data)...)

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, kw := range n.Keywords {
		if err := writeSimpleChild(enc, "keyword", kw); err != nil {
			return err
		}
	}
	for _, c := range n.Comments {
		if err := writeSimpleChild(enc, "comment", c); err != nil {
			return err
		}
	}
	for _, f := range n.Data.Fields() {
		child := f.Get()
		fstart := xml.StartElement{Name: xml.Name{Local: "field"}, Attr: []xml.Attr{attr("name", f.Name)}}
		if err := enc.EncodeToken(fstart); err != nil {
			return err
		}
		if child.IsValid() {
			if err := writeNode(enc, tree, child); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(fstart.End()); err != nil {
			return err
		}
	}
	for _, l := range n.Data.Lists() {
		lstart := xml.StartElement{Name: xml.Name{Local: "list"}, Attr: []xml.Attr{attr("name", l.Name)}}
		if err := enc.EncodeToken(lstart); err != nil {
			return err
		}
		for i := 0; i < l.List.Len(); i++ {
			if err := writeNode(enc, tree, l.List.At(i)); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(lstart.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func writeSimpleChild(enc *xml.Encoder, tag, value string) error {
	start := xml.StartElement{Name: xml.Name{Local: tag}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(value)); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}
