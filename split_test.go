package supernodes_test

import (
	"testing"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/mubarakalmehairbi/SuperNodes/inequality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAutoNames(t *testing.T) {
	root := supernodes.New("root")
	children, err := root.Split(3, nil)
	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, []string{"0", "1", "2"}, root.ChildrenNames())
	for _, c := range children {
		assert.Nil(t, c.Value)
		assert.False(t, c.HasChildren())
	}
}

func TestSplitWithNames(t *testing.T) {
	root := supernodes.New("root")
	children, err := root.Split(2, []string{"left", "right"})
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, []string{"left", "right"}, root.ChildrenNames())
}

func TestSplitNamesLengthMismatch(t *testing.T) {
	root := supernodes.New("root")
	_, err := root.Split(3, []string{"only-one"})
	require.ErrorIs(t, err, supernodes.ErrValidation)
	assert.False(t, root.HasChildren())
}

func TestSplitNameCollision(t *testing.T) {
	root := supernodes.New("root")
	_, err := root.Insert("left", nil)
	require.NoError(t, err)

	_, err = root.Split(2, []string{"left", "right"})
	require.ErrorIs(t, err, supernodes.ErrDuplicateName)
	assert.Equal(t, []string{"left"}, root.ChildrenNames())

	_, err = root.Split(2, []string{"same", "same"})
	require.ErrorIs(t, err, supernodes.ErrDuplicateName)
	assert.Equal(t, []string{"left"}, root.ChildrenNames())
}

func TestSplitInvalidNum(t *testing.T) {
	root := supernodes.New("root")
	_, err := root.Split(0, nil)
	require.ErrorIs(t, err, supernodes.ErrValidation)
}

func TestSplitValues(t *testing.T) {
	f, err := inequality.Parse("x > 10")
	require.NoError(t, err)

	root := supernodes.New("root")
	children, err := root.SplitValues(2,
		[]string{"a", "b"},
		[]interface{}{1, 2},
		[]string{"id-a", "id-b"},
		[]inequality.Predicate{f, nil},
	)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, 1, children[0].Value)
	assert.Equal(t, "id-b", children[1].ID)
	assert.Equal(t, "x > 10", children[0].Function.String())
	assert.Nil(t, children[1].Function)

	_, err = root.SplitValues(2, []string{"c", "d"}, []interface{}{1}, nil, nil)
	require.ErrorIs(t, err, supernodes.ErrValidation)

	_, err = root.SplitValues(2, []string{"c", "d"}, nil, nil, []inequality.Predicate{f})
	require.ErrorIs(t, err, supernodes.ErrValidation)
}
