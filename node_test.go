package supernodes_test

import (
	"testing"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/mubarakalmehairbi/SuperNodes/inequality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOptions(t *testing.T) {
	f, err := inequality.Parse("x > 10")
	require.NoError(t, err)
	n := supernodes.New("main node",
		supernodes.WithValue(30),
		supernodes.WithID("node-0"),
		supernodes.WithFunction(f),
		supernodes.WithRouting("first-child", "second-child"),
		supernodes.WithAttr("color", "green"),
	)
	assert.Equal(t, "main node", n.Name)
	assert.Equal(t, 30, n.Value)
	assert.Equal(t, "node-0", n.ID)
	assert.Equal(t, "x > 10", n.Function.String())
	assert.Equal(t, "first-child", n.ChildNameIfTrue)
	assert.Equal(t, "second-child", n.ChildNameIfFalse)
	assert.Equal(t, map[string]interface{}{"color": "green"}, n.Attrs)
	assert.False(t, n.HasChildren())
}

func TestAppend(t *testing.T) {
	root := supernodes.New("root")
	require.NoError(t, root.Append(supernodes.New("child-1")))
	require.NoError(t, root.Append(supernodes.New("child-2")))
	assert.Equal(t, []string{"child-1", "child-2"}, root.ChildrenNames())
}

func TestAppendDuplicateName(t *testing.T) {
	root := supernodes.New("root")
	require.NoError(t, root.Append(supernodes.New("child-1")))
	err := root.Append(supernodes.New("child-1"))
	require.ErrorIs(t, err, supernodes.ErrDuplicateName)
	assert.Equal(t, []string{"child-1"}, root.ChildrenNames())
	assert.Len(t, root.Children(), 1)
}

func TestAppendUnnamedChildrenDoNotCollide(t *testing.T) {
	root := supernodes.New("root")
	require.NoError(t, root.Append(&supernodes.Node{Value: 1}))
	require.NoError(t, root.Append(&supernodes.Node{Value: 2}))
	assert.Len(t, root.Children(), 2)
	assert.Empty(t, root.ChildrenNames())
}

func TestAppendNil(t *testing.T) {
	root := supernodes.New("root")
	err := root.Append(nil)
	require.ErrorIs(t, err, supernodes.ErrValidation)
}

func TestAppendRejectsCycles(t *testing.T) {
	root := supernodes.New("root")
	child := supernodes.New("child")
	require.NoError(t, root.Append(child))

	err := child.Append(root)
	require.ErrorIs(t, err, supernodes.ErrValidation)
	assert.False(t, child.HasChildren())

	err = root.Append(root)
	require.ErrorIs(t, err, supernodes.ErrValidation)
	assert.Len(t, root.Children(), 1)
}

func TestAppendValue(t *testing.T) {
	root := supernodes.New("root")
	child := root.AppendValue(42)
	assert.Equal(t, 42, child.Value)
	assert.Equal(t, "", child.Name)
	assert.Len(t, root.Children(), 1)
}

func TestInsert(t *testing.T) {
	root := supernodes.New("root")
	child, err := root.Insert("child-1", 7)
	require.NoError(t, err)
	assert.Equal(t, "child-1", child.Name)
	assert.Equal(t, 7, child.Value)

	_, err = root.Insert("child-1", 8)
	require.ErrorIs(t, err, supernodes.ErrDuplicateName)
}

func TestGetChild(t *testing.T) {
	root := supernodes.New("root")
	child, err := root.Insert("child-1", nil)
	require.NoError(t, err)

	got, err := root.GetChild("child-1")
	require.NoError(t, err)
	assert.Same(t, child, got)

	_, err = root.GetChild("no-such-child")
	require.ErrorIs(t, err, supernodes.ErrNotFound)
}

func TestSetChild(t *testing.T) {
	root := supernodes.New("root")
	require.NoError(t, root.SetChild("child-1", supernodes.New("", supernodes.WithValue(1))))
	require.NoError(t, root.SetChild("child-2", supernodes.New("", supernodes.WithValue(2))))
	assert.Len(t, root.Children(), 2)

	// setting an existing name replaces the child instead of failing
	require.NoError(t, root.SetChild("child-1", supernodes.New("", supernodes.WithValue(3))))
	assert.Len(t, root.Children(), 2)
	replaced, err := root.GetChild("child-1")
	require.NoError(t, err)
	assert.Equal(t, 3, replaced.Value)
}

func TestSetChildRejectsCycles(t *testing.T) {
	root := supernodes.New("root")
	child := supernodes.New("child")
	require.NoError(t, root.Append(child))
	err := child.SetChild("loop", root)
	require.ErrorIs(t, err, supernodes.ErrValidation)
}

func TestRemoveChild(t *testing.T) {
	root := supernodes.New("root")
	_, err := root.Insert("child-1", nil)
	require.NoError(t, err)

	removed, err := root.RemoveChild("child-1")
	require.NoError(t, err)
	assert.Equal(t, "child-1", removed.Name)
	assert.False(t, root.HasChildren())

	_, err = root.RemoveChild("child-1")
	require.ErrorIs(t, err, supernodes.ErrNotFound)
}

func TestAttributes(t *testing.T) {
	f, err := inequality.Parse("x < 100")
	require.NoError(t, err)
	n := supernodes.New("main-node",
		supernodes.WithFunction(f),
		supernodes.WithRouting("yes", "no"),
		supernodes.WithAttr("color", "red"),
	)
	_, err = n.Insert("yes", 1)
	require.NoError(t, err)

	attrs := n.Attributes(false)
	assert.Equal(t, map[string]interface{}{
		"name":                "main-node",
		"function":            "x < 100",
		"child_name_if_true":  "yes",
		"child_name_if_false": "no",
		"color":               "red",
	}, attrs)

	all := n.Attributes(true)
	assert.Contains(t, all, "value")
	assert.Contains(t, all, "id")
}

func TestString(t *testing.T) {
	root := supernodes.New("root", supernodes.WithValue(0))
	child, err := root.Insert("child-1", nil)
	require.NoError(t, err)
	_, err = child.Insert("grandchild", nil)
	require.NoError(t, err)
	_, err = root.Insert("child-2", nil)
	require.NoError(t, err)

	s := root.String()
	assert.Contains(t, s, "(name=root, value: int)")
	assert.Contains(t, s, "|__ (name=child-1)")
	assert.Contains(t, s, "|__ (name=child-2)")
	assert.Contains(t, s, "(name=grandchild)")
}
