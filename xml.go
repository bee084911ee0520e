package gostmt

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/golang/glog"
)

// parseXML builds a raw node tree from an OFX 2.x document. The decoder runs
// in strict mode, so mismatched or unclosed tags fail instead of being
// repaired. Content arrives as already decoded text, so any charset named by
// the prolog is passed through unchanged.
func parseXML(content string) (*RawNode, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var (
		root  *RawNode         // Document root element.
		stack = NewNodeStack() // Open elements, outermost first.
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			off := decoder.InputOffset()
			return nil, &SyntaxError{Fragment: fragmentAt(content, off), Offset: off, Err: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			glog.V(3).Infof("case start element %s", t.Name.Local)
			n := &RawNode{Name: t.Name.Local}
			if top, ok := stack.Top(); ok {
				top.Children = append(top.Children, n)
			} else if root != nil {
				return nil, &SyntaxError{Fragment: "<" + n.Name + ">", Offset: decoder.InputOffset(), Err: errAfterRoot}
			} else {
				root = n
			}
			stack.Push(n)
		case xml.CharData:
			top, ok := stack.Top()
			if !ok {
				if data := strings.TrimSpace(string(t)); data != "" {
					return nil, &SyntaxError{Fragment: data, Offset: decoder.InputOffset(), Err: errOrphanData}
				}
				continue
			}
			top.Value += string(t)
		case xml.EndElement:
			glog.V(3).Infof("case end element %s", t.Name.Local)
			// Strict mode guarantees this matches the top of stack.
			n, _ := stack.Pop()
			n.Value = strings.TrimSpace(n.Value)
		}
	}

	if root == nil {
		return nil, &SyntaxError{Fragment: fragmentAt(content, 0), Err: errEmptyDocument}
	}
	return root, nil
}
