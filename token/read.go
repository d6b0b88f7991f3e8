package token

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var utf8BOM = []byte("\xef\xbb\xbf")

type ReadOpt func(*readOpts)

type readOpts struct {
	name string
}

// ReadName sets the document name used when printing positions.
func ReadName(name string) ReadOpt {
	return func(o *readOpts) { o.name = name }
}

// Read builds the element tree of d.
func Read(d []byte, opts ...ReadOpt) (*Document, error) {
	rOpts := &readOpts{}
	for _, f := range opts {
		f(rOpts)
	}
	d = bytes.TrimPrefix(d, utf8BOM)
	pd := NewPosDoc(rOpts.name, d)
	dec := xml.NewDecoder(bytes.NewReader(d))
	dec.Strict = true

	doc := &Document{}
	var stack []*Node
	for {
		off := int(dec.InputOffset())
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, syntaxErr(err, pd.Pos(int(dec.InputOffset())))
		}
		pos := pd.Pos(off)
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Type: ElementNode, Name: qname(t.Name), Pos: pos}
			offs := attrOffsets(d[off:int(dec.InputOffset())], len(n.Name), len(t.Attr))
			for i, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: qname(a.Name), Value: a.Value, Pos: pd.Pos(off + offs[i])})
			}
			if len(stack) == 0 {
				if doc.Root != nil {
					return nil, NewReadErr(fmt.Errorf("%w: second root element %s", ErrDocBalance, n.Describe()), pos)
				}
				doc.Root = n
			} else {
				p := stack[len(stack)-1]
				p.Children = append(p.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			name := qname(t.Name)
			if len(stack) == 0 {
				return nil, UnexpectedErr("</"+name+">", pos)
			}
			top := stack[len(stack)-1]
			if top.Name != name {
				return nil, NewReadErr(fmt.Errorf("%w: <%s> at line %d closed by </%s>",
					ErrDocBalance, top.Name, top.Pos.Line(), name), pos)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) != 0 {
					return nil, UnexpectedErr("character data outside the root element", pos)
				}
				continue
			}
			p := stack[len(stack)-1]
			if k := len(p.Children); k > 0 && p.Children[k-1].Type == TextNode {
				p.Children[k-1].Text += string(t)
				continue
			}
			p.Children = append(p.Children, &Node{Type: TextNode, Text: string(t), Pos: pos})

		case xml.Comment:
			c := &Node{Type: CommentNode, Text: normalizeEOL(string(t)), Pos: pos}
			switch {
			case len(stack) != 0:
				p := stack[len(stack)-1]
				p.Children = append(p.Children, c)
			case doc.Root == nil:
				doc.Prolog = append(doc.Prolog, c)
			default:
				doc.Epilog = append(doc.Epilog, c)
			}

		case xml.ProcInst:
			if t.Target == "xml" {
				if off == 0 {
					continue
				}
				return nil, NewReadErr(fmt.Errorf("%w: the xml declaration must start the document", ErrSyntax), pos)
			}
			return nil, NewReadErr(fmt.Errorf("%w: processing instruction <?%s?>", ErrUnsupported, t.Target), pos)

		case xml.Directive:
			kw, _, _ := strings.Cut(string(t), " ")
			return nil, NewReadErr(fmt.Errorf("%w: directive <!%s>", ErrUnsupported, kw), pos)
		}
	}
	if len(stack) != 0 {
		top := stack[len(stack)-1]
		return nil, NewReadErr(fmt.Errorf("%w: <%s>", ErrUnterminated, top.Name), top.Pos)
	}
	if doc.Root == nil {
		return nil, NewReadErr(ErrEmptyDoc, pd.Pos(0))
	}
	return doc, nil
}

// attrOffsets returns the offset of each of the n attributes of a start
// tag within tag, which spans from "<" to the end of the tag.
// Attributes are reported in source order; values are quoted and cannot
// contain their own quote character.
func attrOffsets(tag []byte, nameLen, n int) []int {
	res := make([]int, n)
	i := 1 + nameLen
	for k := range n {
		for i < len(tag) && isSpace(tag[i]) {
			i++
		}
		res[k] = i
		for i < len(tag) && tag[i] != '"' && tag[i] != '\'' {
			i++
		}
		if i == len(tag) {
			break
		}
		q := tag[i]
		i++
		for i < len(tag) && tag[i] != q {
			i++
		}
		i++
	}
	return res
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// normalizeEOL applies XML end-of-line handling, which the decoder does
// for character data but not for comments.
func normalizeEOL(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func syntaxErr(err error, pos *Pos) error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return NewReadErr(fmt.Errorf("%w: %s", ErrSyntax, se.Msg), pos)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return NewReadErr(fmt.Errorf("%w: %w", ErrUnterminated, err), pos)
	}
	return NewReadErr(fmt.Errorf("%w: %w", ErrSyntax, err), pos)
}
