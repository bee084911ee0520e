package gostmt

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/golang/glog"
)

// parseSGML builds a raw node tree from OFX 1.x tag soup.
//
// The colon separated OFXHEADER block is skipped by anchoring the scan at the
// first <OFX tag. Tokens are read with RawToken so missing end tags never
// stop the scan, and structure is inferred from position: a tag followed by
// text is a leaf closed by the next tag, a tag followed by another tag opens
// a container, and an explicit end tag closes every container opened since
// its match.
func parseSGML(content string) (*RawNode, error) {
	start := ofxTagIndex(content)
	if start == -1 {
		return nil, &SyntaxError{Fragment: fragmentAt(content, 0), Err: errNoRootElement}
	}

	var (
		root    *RawNode         // Completed top level node.
		stack   = NewNodeStack() // Open containers, outermost first.
		pending *RawNode         // Last opened tag, leaf or container not yet known.
		text    string           // Raw char data accumulated for pending.
		decoder = xml.NewDecoder(strings.NewReader(content[start:]))
	)

	// offset maps the decoder position back onto the full content.
	offset := func() int64 {
		return int64(start) + decoder.InputOffset()
	}

	// attach adds a completed node to the current container, or makes it the
	// document root when no container is open yet.
	attach := func(n *RawNode) error {
		if top, ok := stack.Top(); ok {
			top.Children = append(top.Children, n)
			return nil
		}
		if root != nil {
			return &SyntaxError{Fragment: "<" + n.Name + ">", Offset: offset(), Err: errAfterRoot}
		}
		root = n
		return nil
	}

	// finalizePending closes the pending tag as a leaf holding the text seen
	// since it opened.
	finalizePending := func() error {
		pending.Value = strings.TrimSpace(text)
		glog.V(3).Infof("leaf %s=%q", pending.Name, pending.Value)
		err := attach(pending)
		pending, text = nil, ""
		return err
	}

	// promotePending reclassifies the pending tag as a container. An open
	// container of the same name is closed first, so repeated records that
	// omit their end tags become siblings instead of nesting.
	promotePending := func() error {
		if top, ok := stack.Top(); ok && top.Name == pending.Name {
			glog.V(3).Infof("implicit close of %s by sibling start tag", top.Name)
			stack.Pop()
		}
		if err := attach(pending); err != nil {
			return err
		}
		stack.Push(pending)
		glog.V(3).Infof("container %s opened, Stack: %#v", pending.Name, stack.Dump())
		pending, text = nil, ""
		return nil
	}

	for {
		token, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, &SyntaxError{Fragment: fragmentAt(content, offset()), Offset: offset(), Err: err}
		}

		switch t := token.(type) {
		case xml.CharData:
			glog.V(3).Infof("case chardata %q", string(t))
			if pending == nil {
				if data := strings.TrimSpace(string(t)); data != "" {
					return nil, &SyntaxError{Fragment: data, Offset: offset(), Err: errOrphanData}
				}
				continue
			}
			text += string(t)
		case xml.StartElement:
			glog.V(3).Infof("case start element %s", t.Name.Local)
			if pending != nil {
				// A tag followed by text is a leaf, a tag followed by
				// another tag is a container.
				if strings.TrimSpace(text) != "" {
					if err := finalizePending(); err != nil {
						return nil, err
					}
				} else if err := promotePending(); err != nil {
					return nil, err
				}
			}
			pending = &RawNode{Name: t.Name.Local}
			text = ""
		case xml.EndElement:
			glog.V(3).Infof("case end element %s", t.Name.Local)
			name := t.Name.Local
			if pending != nil {
				explicit := name == pending.Name
				// Whether this end tag closes the pending tag itself or a
				// container above it, the pending tag ends here.
				if err := finalizePending(); err != nil {
					return nil, err
				}
				if explicit {
					continue
				}
			}
			if !stack.Contains(name) {
				return nil, &SyntaxError{Fragment: "</" + name + ">", Offset: offset(), Err: errOrphanClose}
			}
			// Close every open container till the current closing tag is
			// matched.
			for {
				n, _ := stack.Pop()
				if n.Name == name {
					break
				}
				glog.V(3).Infof("implicit close of %s by </%s>", n.Name, name)
			}
			glog.V(3).Infof("Stack: %#v", stack.Dump())
		}
	}

	// A pending leaf at EOF is closed implicitly, as are any containers left
	// open on the stack.
	if pending != nil {
		if err := finalizePending(); err != nil {
			return nil, err
		}
	}
	if root == nil {
		return nil, &SyntaxError{Fragment: fragmentAt(content, int64(start)), Offset: int64(start), Err: errEmptyDocument}
	}
	return root, nil
}

// fragmentAt returns a short excerpt of content around the given byte
// offset, for error context.
func fragmentAt(content string, off int64) string {
	const window = 16
	lo := off - window
	if lo < 0 {
		lo = 0
	}
	hi := off + window
	if hi > int64(len(content)) {
		hi = int64(len(content))
	}
	if lo > hi {
		lo = hi
	}
	return strings.TrimSpace(content[lo:hi])
}
