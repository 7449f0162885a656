/*
Package supernodes implements a general-purpose tree data structure.

A Node holds a name, an optional value and an ordered set of named
children, and can carry a predicate and routing metadata that let a
tree of nodes be run as a binary decision tree.
*/
package supernodes

import (
	"fmt"

	"github.com/mubarakalmehairbi/SuperNodes/inequality"
)

/*
Node is a node of a tree. A node exclusively owns its children:
attaching a node to a parent hands it over, and detaching it from
the parent is the only way to remove it from the tree.
*/
type Node struct {
	// The name of the node, unique among the named children of
	// its parent
	Name string
	// The data stored in the node
	Value interface{}
	// An identifier expected to be unique across a whole tree
	ID string
	// The predicate to evaluate when running the tree as a
	// binary decision tree. Nodes without one are terminal.
	Function inequality.Predicate
	// The name of the child to descend into when Function
	// evaluates to true
	ChildNameIfTrue string
	// The name of the child to descend into when Function
	// evaluates to false
	ChildNameIfFalse string
	// Additional attributes of the node
	Attrs map[string]interface{}

	children []*Node
}

/*
Option configures a Node on construction.
*/
type Option func(*Node)

/*
New returns a node with the given name, configured with the
given options.
*/
func New(name string, opts ...Option) *Node {
	n := &Node{Name: name}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WithValue sets the value of the node being built.
func WithValue(value interface{}) Option {
	return func(n *Node) {
		n.Value = value
	}
}

// WithID sets the id of the node being built.
func WithID(id string) Option {
	return func(n *Node) {
		n.ID = id
	}
}

// WithFunction sets the predicate of the node being built.
func WithFunction(p inequality.Predicate) Option {
	return func(n *Node) {
		n.Function = p
	}
}

// WithRouting sets the names of the children to descend into
// depending on the result of the node's predicate.
func WithRouting(ifTrue, ifFalse string) Option {
	return func(n *Node) {
		n.ChildNameIfTrue = ifTrue
		n.ChildNameIfFalse = ifFalse
	}
}

// WithAttr sets an additional attribute on the node being built.
func WithAttr(key string, value interface{}) Option {
	return func(n *Node) {
		if n.Attrs == nil {
			n.Attrs = make(map[string]interface{})
		}
		n.Attrs[key] = value
	}
}

/*
Append adds the given node as a child of n. It returns an error
wrapping ErrDuplicateName if n already has a child with the same
non-empty name, or an error wrapping ErrValidation if the node is
nil or attaching it would make a node its own ancestor. On error
the children of n are left unmodified.
*/
func (n *Node) Append(child *Node) error {
	if child == nil {
		return fmt.Errorf("%w: cannot append a nil node", ErrValidation)
	}
	if child == n || child.contains(n) {
		return fmt.Errorf("%w: appending %q to %q would make a node its own ancestor", ErrValidation, child.Name, n.Name)
	}
	if child.Name != "" && n.childNamed(child.Name) != nil {
		return fmt.Errorf("appending %q: %w", child.Name, ErrDuplicateName)
	}
	n.children = append(n.children, child)
	return nil
}

/*
AppendValue wraps the given value in a new unnamed node, appends
it as a child of n and returns it.
*/
func (n *Node) AppendValue(value interface{}) *Node {
	child := &Node{Value: value}
	n.children = append(n.children, child)
	return child
}

/*
Insert builds a node with the given name and value, appends it as
a child of n and returns it, or returns an error if a child with
that name already exists.
*/
func (n *Node) Insert(name string, value interface{}) (*Node, error) {
	child := New(name, WithValue(value))
	if err := n.Append(child); err != nil {
		return nil, err
	}
	return child, nil
}

/*
GetChild returns the child of n with the given name or an error
wrapping ErrNotFound if there is none.
*/
func (n *Node) GetChild(name string) (*Node, error) {
	child := n.childNamed(name)
	if child == nil {
		return nil, fmt.Errorf("retrieving child %q: %w", name, ErrNotFound)
	}
	return child, nil
}

/*
SetChild adds the given node as the child of n with the given
name, renaming it to that name and replacing any existing child
with it. It returns an error wrapping ErrValidation if the node
is nil or attaching it would make a node its own ancestor.
*/
func (n *Node) SetChild(name string, child *Node) error {
	if child == nil {
		return fmt.Errorf("%w: cannot set a nil node as child", ErrValidation)
	}
	if child == n || child.contains(n) {
		return fmt.Errorf("%w: setting %q on %q would make a node its own ancestor", ErrValidation, name, n.Name)
	}
	for i, c := range n.children {
		if c.Name == name && name != "" {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.Name = name
	n.children = append(n.children, child)
	return nil
}

/*
RemoveChild detaches the child with the given name from n and
returns it, or returns an error wrapping ErrNotFound if there is
none. The detached node keeps its own subtree.
*/
func (n *Node) RemoveChild(name string) (*Node, error) {
	for i, c := range n.children {
		if c.Name == name {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("removing child %q: %w", name, ErrNotFound)
}

/*
ChildrenNames returns the names of the named children of n in
insertion order.
*/
func (n *Node) ChildrenNames() []string {
	var names []string
	for _, c := range n.children {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return names
}

/*
Children returns the children of n in insertion order. The
returned slice is a copy, mutating it does not alter n.
*/
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

/*
HasChildren reports whether n has any children.
*/
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

func (n *Node) childNamed(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// contains reports whether target is n or a descendant of n.
func (n *Node) contains(target *Node) bool {
	if n == target {
		return true
	}
	for _, c := range n.children {
		if c.contains(target) {
			return true
		}
	}
	return false
}
