package supernodes

import (
	"context"
)

/*
Walk goes through the subtree rooted at n running the given
function with the context and every traversed node, visiting
children in insertion order. It calls the function on a parent
before its children if bottomUp is false, and after its children
if bottomUp is true. If the context expires or a node visit
returns an error, the traversal is aborted and the error is
returned.
*/
func (n *Node) Walk(ctx context.Context, bottomUp bool, f func(context.Context, *Node) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !bottomUp {
		if err := f(ctx, n); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := c.Walk(ctx, bottomUp, f); err != nil {
			return err
		}
	}
	if bottomUp {
		if err := f(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

/*
FindNode searches the subtree rooted at n in pre-order, the node
itself before its children, and returns the first node matching
the given function or nil if none matches.
*/
func (n *Node) FindNode(match func(*Node) bool) *Node {
	if match(n) {
		return n
	}
	for _, c := range n.children {
		if found := c.FindNode(match); found != nil {
			return found
		}
	}
	return nil
}

/*
FindNodeByID returns the first node in pre-order of the subtree
rooted at n whose id is the given one, or nil if there is none.
*/
func (n *Node) FindNodeByID(id string) *Node {
	return n.FindNode(func(node *Node) bool {
		return node.ID == id
	})
}

/*
FindNodes searches the whole subtree rooted at n and returns all
nodes matching the given function, in pre-order.
*/
func (n *Node) FindNodes(match func(*Node) bool) []*Node {
	var found []*Node
	if match(n) {
		found = append(found, n)
	}
	for _, c := range n.children {
		found = append(found, c.FindNodes(match)...)
	}
	return found
}

/*
FindNodesByName returns all nodes in the subtree rooted at n with
the given name, in pre-order.
*/
func (n *Node) FindNodesByName(name string) []*Node {
	return n.FindNodes(func(node *Node) bool {
		return node.Name == name
	})
}

/*
ToList flattens the subtree rooted at n into a pre-order slice
of nodes.
*/
func (n *Node) ToList() []*Node {
	return n.FindNodes(func(*Node) bool {
		return true
	})
}

/*
Paths returns one row per path from n to each of its leaves. With
an empty attr each row holds the nodes on the path; otherwise it
holds, for each node on the path, the scalar attribute with that
name as returned by Attributes, skipping nodes that do not define
it.
*/
func (n *Node) Paths(attr string) [][]interface{} {
	var rows [][]interface{}
	n.pathRows(nil, attr, &rows)
	return rows
}

func (n *Node) pathRows(row []interface{}, attr string, rows *[][]interface{}) {
	row = append(row[:len(row):len(row)], n.pathElement(attr)...)
	if !n.HasChildren() {
		*rows = append(*rows, row)
		return
	}
	for _, c := range n.children {
		c.pathRows(row, attr, rows)
	}
}

func (n *Node) pathElement(attr string) []interface{} {
	if attr == "" {
		return []interface{}{n}
	}
	if v, ok := n.Attributes(false)[attr]; ok {
		return []interface{}{v}
	}
	return nil
}
