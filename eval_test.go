package supernodes_test

import (
	"context"
	"testing"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/mubarakalmehairbi/SuperNodes/inequality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDecisionTree(t *testing.T) *supernodes.Node {
	t.Helper()
	rootF, err := inequality.Parse("x[0] < 11")
	require.NoError(t, err)
	trueF, err := inequality.Parse("x[1] == 12")
	require.NoError(t, err)

	root := supernodes.New("root",
		supernodes.WithFunction(rootF),
		supernodes.WithRouting("true-child", "false-child"),
	)
	trueChild := supernodes.New("true-child",
		supernodes.WithFunction(trueF),
		supernodes.WithRouting("true-grandchild", "false-grandchild"),
	)
	require.NoError(t, root.Append(trueChild))
	_, err = root.Insert("false-child", 0)
	require.NoError(t, err)
	_, err = trueChild.Insert("true-grandchild", 1)
	require.NoError(t, err)
	_, err = trueChild.Insert("false-grandchild", 2)
	require.NoError(t, err)
	return root
}

func TestRunAsBinaryTree(t *testing.T) {
	root := buildDecisionTree(t)

	leaf, err := root.RunAsBinaryTree(context.Background(), inequality.Input{"x": []float64{10, 12, 40}})
	require.NoError(t, err)
	assert.Equal(t, "true-grandchild", leaf.Name)
	assert.Equal(t, 1, leaf.Value)

	leaf, err = root.RunAsBinaryTree(context.Background(), inequality.Input{"x": []float64{11, 6, 5}})
	require.NoError(t, err)
	assert.Equal(t, "false-child", leaf.Name)
	assert.Equal(t, 0, leaf.Value)

	leaf, err = root.RunAsBinaryTree(context.Background(), inequality.Input{"x": []float64{10, 13, 5}})
	require.NoError(t, err)
	assert.Equal(t, "false-grandchild", leaf.Name)
	assert.Equal(t, 2, leaf.Value)
}

func TestRunAsBinaryTreeTerminalRoot(t *testing.T) {
	leaf := supernodes.New("leaf", supernodes.WithValue(9))
	got, err := leaf.RunAsBinaryTree(context.Background(), nil)
	require.NoError(t, err)
	assert.Same(t, leaf, got)
}

func TestRunAsBinaryTreeWithFuncPredicate(t *testing.T) {
	root := supernodes.New("root",
		supernodes.WithFunction(inequality.Func(func(in inequality.Input) bool {
			v, _ := in["threshold"].(float64)
			return v > 100
		})),
		supernodes.WithRouting("high", "low"),
	)
	_, err := root.Insert("high", "too much")
	require.NoError(t, err)
	_, err = root.Insert("low", "fine")
	require.NoError(t, err)

	leaf, err := root.RunAsBinaryTree(context.Background(), inequality.Input{"threshold": 101.0})
	require.NoError(t, err)
	assert.Equal(t, "too much", leaf.Value)
}

func TestRunAsBinaryTreeMissingRoute(t *testing.T) {
	f, err := inequality.Parse("x > 1")
	require.NoError(t, err)
	root := supernodes.New("root", supernodes.WithFunction(f))
	_, err = root.Insert("child", nil)
	require.NoError(t, err)

	_, err = root.RunAsBinaryTree(context.Background(), inequality.Input{"x": 2.0})
	require.ErrorIs(t, err, supernodes.ErrMissingRoute)
}

func TestRunAsBinaryTreeMissingChild(t *testing.T) {
	f, err := inequality.Parse("x > 1")
	require.NoError(t, err)
	root := supernodes.New("root",
		supernodes.WithFunction(f),
		supernodes.WithRouting("no-such-child", "neither"),
	)
	_, err = root.RunAsBinaryTree(context.Background(), inequality.Input{"x": 2.0})
	require.ErrorIs(t, err, supernodes.ErrNotFound)
}

func TestRunAsBinaryTreePredicateFailure(t *testing.T) {
	f, err := inequality.Parse("x[5] > 1")
	require.NoError(t, err)
	root := supernodes.New("root",
		supernodes.WithFunction(f),
		supernodes.WithRouting("a", "b"),
	)
	_, err = root.RunAsBinaryTree(context.Background(), inequality.Input{"x": []float64{1}})
	require.Error(t, err)
}

func TestRunAsBinaryTreeCancelledContext(t *testing.T) {
	root := buildDecisionTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := root.RunAsBinaryTree(ctx, inequality.Input{"x": []float64{10, 12, 40}})
	require.ErrorIs(t, err, context.Canceled)
}
