package supernodes

import (
	"fmt"
	"reflect"

	"github.com/mubarakalmehairbi/SuperNodes/inequality"
)

/*
Dict is the nested mapping representation of a node and its
descendants, used by the YAML and JSON codecs and by the node
stores. A node's function appears as the expression it was
parsed from.
*/
type Dict struct {
	Name             string                 `yaml:"name,omitempty" json:"name,omitempty"`
	Value            interface{}            `yaml:"value,omitempty" json:"value,omitempty"`
	ID               string                 `yaml:"id,omitempty" json:"id,omitempty"`
	Function         string                 `yaml:"function,omitempty" json:"function,omitempty"`
	ChildNameIfTrue  string                 `yaml:"child_name_if_true,omitempty" json:"child_name_if_true,omitempty"`
	ChildNameIfFalse string                 `yaml:"child_name_if_false,omitempty" json:"child_name_if_false,omitempty"`
	Attrs            map[string]interface{} `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	Children         []*Dict                `yaml:"children,omitempty" json:"children,omitempty"`
}

/*
ToDict converts the node and its descendants to their Dict
representation. It returns an error wrapping ErrValidation if a
node in the subtree carries a function with no textual
representation, such as one wrapping a Go function.
*/
func (n *Node) ToDict() (*Dict, error) {
	d := &Dict{
		Name:             n.Name,
		Value:            n.Value,
		ID:               n.ID,
		ChildNameIfTrue:  n.ChildNameIfTrue,
		ChildNameIfFalse: n.ChildNameIfFalse,
	}
	if n.Function != nil {
		d.Function = n.Function.String()
		if d.Function == "" {
			return nil, fmt.Errorf("%w: function of node %q has no textual representation", ErrValidation, n.Name)
		}
	}
	if len(n.Attrs) > 0 {
		d.Attrs = make(map[string]interface{}, len(n.Attrs))
		for k, v := range n.Attrs {
			d.Attrs[k] = v
		}
	}
	for _, c := range n.children {
		cd, err := c.ToDict()
		if err != nil {
			return nil, err
		}
		d.Children = append(d.Children, cd)
	}
	return d, nil
}

/*
FromDict builds a node tree from its Dict representation,
parsing function expressions and enforcing the sibling name
uniqueness and tree invariants. It returns an error if a
function expression cannot be parsed or two sibling dicts share
a name.
*/
func FromDict(d *Dict) (*Node, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: cannot build a node from a nil dict", ErrValidation)
	}
	n := &Node{
		Name:             d.Name,
		Value:            d.Value,
		ID:               d.ID,
		ChildNameIfTrue:  d.ChildNameIfTrue,
		ChildNameIfFalse: d.ChildNameIfFalse,
	}
	if d.Function != "" {
		f, err := inequality.Parse(d.Function)
		if err != nil {
			return nil, fmt.Errorf("building node %q: %v", d.Name, err)
		}
		n.Function = f
	}
	if len(d.Attrs) > 0 {
		n.Attrs = make(map[string]interface{}, len(d.Attrs))
		for k, v := range d.Attrs {
			n.Attrs[k] = v
		}
	}
	for _, cd := range d.Children {
		c, err := FromDict(cd)
		if err != nil {
			return nil, err
		}
		if err := n.Append(c); err != nil {
			return nil, fmt.Errorf("building node %q: %w", d.Name, err)
		}
	}
	return n, nil
}

/*
Copy returns a deep copy of the node and its descendants, built
through the Dict representation. It returns an error if the node
cannot be represented as a Dict.
*/
func (n *Node) Copy() (*Node, error) {
	d, err := n.ToDict()
	if err != nil {
		return nil, err
	}
	return FromDict(d)
}

/*
Equal reports whether the subtrees rooted at n and other are
structurally and attribute-wise identical: same names, values,
ids, function expressions, routing fields, additional attributes
and children, recursively and in the same order.
*/
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Name != other.Name || n.ID != other.ID {
		return false
	}
	if n.ChildNameIfTrue != other.ChildNameIfTrue || n.ChildNameIfFalse != other.ChildNameIfFalse {
		return false
	}
	if !reflect.DeepEqual(n.Value, other.Value) || !reflect.DeepEqual(n.Attrs, other.Attrs) {
		return false
	}
	if functionSource(n) != functionSource(other) {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i, c := range n.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func functionSource(n *Node) string {
	if n.Function == nil {
		return ""
	}
	return n.Function.String()
}
