package gostmt

import (
	"errors"
	"strings"
)

// RawNode is one element of the intermediate tree both dialect front ends
// produce. Name is the tag name, Value the trimmed text content (empty for
// pure containers) and Children the nested elements in document order.
type RawNode struct {
	Name     string
	Value    string
	Children []*RawNode
}

// Child returns the first direct child with the given name, or nil.
func (n *RawNode) Child(name string) *RawNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Text returns the value of the first direct child with the given name. The
// second return value reports whether such a child exists.
func (n *RawNode) Text(name string) (string, bool) {
	c := n.Child(name)
	if c == nil {
		return "", false
	}
	return c.Value, true
}

// Find returns every node in the subtree with the given name, the node
// itself included, depth first in document order.
func (n *RawNode) Find(name string) []*RawNode {
	var found []*RawNode
	if n.Name == name {
		found = append(found, n)
	}
	for _, c := range n.Children {
		found = append(found, c.Find(name)...)
	}
	return found
}

// String renders the subtree on a single line for debugging.
func (n *RawNode) String() string {
	var b strings.Builder
	b.WriteString("<" + n.Name + ">")
	b.WriteString(n.Value)
	for _, c := range n.Children {
		b.WriteString(c.String())
	}
	b.WriteString("</" + n.Name + ">")
	return b.String()
}

// NodeStack is a stack of open container nodes.
type NodeStack interface {
	Push(*RawNode)
	Pop() (*RawNode, error)
	Top() (*RawNode, bool)
	Contains(name string) bool
	IsEmpty() bool
	Size() int
	Dump() []string
}

// nodeStack is a stack of raw node pointers.
type nodeStack struct {
	items []*RawNode
}

// NewNodeStack returns an initialized empty stack.
func NewNodeStack() NodeStack {
	return &nodeStack{
		items: make([]*RawNode, 0),
	}
}

// Push adds the given node to top of stack.
func (s *nodeStack) Push(n *RawNode) {
	s.items = append(s.items, n)
}

// Pop removes and returns the topmost node of the stack.
func (s *nodeStack) Pop() (*RawNode, error) {
	l := len(s.items)
	if l == 0 {
		return nil, errors.New("error - popping from empty stack")
	}
	i := s.items[l-1]
	s.items = s.items[:l-1]
	return i, nil
}

// Top returns the topmost node without removing it. The second return value
// is false if the stack is empty.
func (s *nodeStack) Top() (*RawNode, bool) {
	l := len(s.items)
	if l == 0 {
		return nil, false
	}
	return s.items[l-1], true
}

// Contains returns true if a node with the given name is open on the stack,
// else false.
func (s *nodeStack) Contains(name string) bool {
	for _, item := range s.items {
		if item.Name == name {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the stack is empty, else false.
func (s *nodeStack) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the current size of the stack.
func (s *nodeStack) Size() int {
	return len(s.items)
}

// Dump returns a string representation of the stack for debugging.
func (s *nodeStack) Dump() []string {
	result := make([]string, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, item.Name)
	}
	return result
}
