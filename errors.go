package supernodes

/*
NodeError represents an error produced by an operation
on a node or its subtree.
*/
type NodeError string

/*
ErrDuplicateName is the error returned by Append, Insert,
SetChild and Split when attaching a child whose name collides
with the name of an existing sibling.
*/
const ErrDuplicateName = NodeError("a node cannot have two children with the same name")

/*
ErrNotFound is the error returned by GetChild and by
RunAsBinaryTree routing when no child with the requested
name exists.
*/
const ErrNotFound = NodeError("no child with the given name")

/*
ErrMissingRoute is the error returned by RunAsBinaryTree when
a node has a function set but does not name a child to descend
into for the branch the function selected.
*/
const ErrMissingRoute = NodeError("decision node does not name a child for the selected branch")

/*
ErrValidation is the error returned when an operation receives
arguments with mismatched shapes, when attaching a node would
break the tree invariant, or when a node cannot be represented
in the requested form.
*/
const ErrValidation = NodeError("invalid node operation")

func (ne NodeError) Error() string {
	return string(ne)
}
