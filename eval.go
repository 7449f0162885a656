package supernodes

import (
	"context"
	"fmt"

	"github.com/mubarakalmehairbi/SuperNodes/inequality"
)

/*
RunAsBinaryTree runs the tree rooted at n as a binary decision
tree against the given input and returns the terminal node
reached.

At each visited node, a node without a function is terminal and
becomes the result. Otherwise the node's function is evaluated
against the input and the walk descends into the child named by
ChildNameIfTrue or ChildNameIfFalse depending on the result. A
decision node that does not name a child for the selected branch
produces an error wrapping ErrMissingRoute, and one whose named
child does not exist an error wrapping ErrNotFound. Predicate
failures are returned as the predicate's error. If the given
context expires between steps, its error is returned.
*/
func (n *Node) RunAsBinaryTree(ctx context.Context, in inequality.Input) (*Node, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: a nil node cannot be run as a binary tree", ErrValidation)
	}
	current := n
	for current.Function != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := current.Function.Evaluate(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("running node %q: %w", current.Name, err)
		}
		branch := current.ChildNameIfFalse
		if result {
			branch = current.ChildNameIfTrue
		}
		if branch == "" {
			return nil, fmt.Errorf("running node %q with result %v: %w", current.Name, result, ErrMissingRoute)
		}
		child, err := current.GetChild(branch)
		if err != nil {
			return nil, fmt.Errorf("running node %q with result %v: %w", current.Name, result, err)
		}
		current = child
	}
	return current, nil
}
