package supernodes

import (
	"fmt"
	"strconv"

	"github.com/mubarakalmehairbi/SuperNodes/inequality"
)

/*
Split generates num new empty children, attaches them to n and
returns them. If names is nil the children are named with
sequential indices starting at "0"; otherwise it must hold
exactly num names. It returns an error wrapping ErrValidation on
a length mismatch and an error wrapping ErrDuplicateName if any
name collides with an existing child or with another name in the
slice; on error no children are attached.
*/
func (n *Node) Split(num int, names []string) ([]*Node, error) {
	return n.SplitValues(num, names, nil, nil, nil)
}

/*
SplitValues behaves like Split but also assigns the children
values, ids and function predicates from the given slices. Each
slice may be nil, and otherwise must hold exactly num elements.
*/
func (n *Node) SplitValues(num int, names []string, values []interface{}, ids []string, functions []inequality.Predicate) ([]*Node, error) {
	if num <= 0 {
		return nil, fmt.Errorf("%w: cannot split a node into %d children", ErrValidation, num)
	}
	if names == nil {
		names = make([]string, num)
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
	}
	if len(names) != num {
		return nil, fmt.Errorf("%w: length of names should be the same as num", ErrValidation)
	}
	if values != nil && len(values) != num {
		return nil, fmt.Errorf("%w: length of values should be the same as num", ErrValidation)
	}
	if ids != nil && len(ids) != num {
		return nil, fmt.Errorf("%w: length of ids should be the same as num", ErrValidation)
	}
	if functions != nil && len(functions) != num {
		return nil, fmt.Errorf("%w: length of functions should be the same as num", ErrValidation)
	}
	seen := make(map[string]bool)
	for _, name := range names {
		if name == "" {
			continue
		}
		if seen[name] || n.childNamed(name) != nil {
			return nil, fmt.Errorf("splitting on %q: %w", name, ErrDuplicateName)
		}
		seen[name] = true
	}
	children := make([]*Node, num)
	for i := range children {
		children[i] = &Node{Name: names[i]}
		if values != nil {
			children[i].Value = values[i]
		}
		if ids != nil {
			children[i].ID = ids[i]
		}
		if functions != nil {
			children[i].Function = functions[i]
		}
	}
	n.children = append(n.children, children...)
	return children, nil
}
