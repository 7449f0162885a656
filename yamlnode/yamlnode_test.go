package yamlnode_test

import (
	"bytes"
	"path/filepath"
	"testing"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/mubarakalmehairbi/SuperNodes/inequality"
	"github.com/mubarakalmehairbi/SuperNodes/yamlnode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T) *supernodes.Node {
	t.Helper()
	f, err := inequality.Parse("x[0] < 11")
	require.NoError(t, err)
	root := supernodes.New("root",
		supernodes.WithID("node-0"),
		supernodes.WithFunction(f),
		supernodes.WithRouting("true-child", "false-child"),
		supernodes.WithAttr("source", "unit"),
	)
	_, err = root.Insert("true-child", "yes")
	require.NoError(t, err)
	_, err = root.Insert("false-child", "no")
	require.NoError(t, err)
	return root
}

func TestRoundTrip(t *testing.T) {
	root := buildTree(t)
	var buf bytes.Buffer
	require.NoError(t, yamlnode.Write(&buf, root))
	assert.Contains(t, buf.String(), "name: root")
	assert.Contains(t, buf.String(), "function: x[0] < 11")

	rebuilt, err := yamlnode.Read(&buf)
	require.NoError(t, err)
	assert.True(t, root.Equal(rebuilt))
}

func TestFileRoundTrip(t *testing.T) {
	root := buildTree(t)
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, yamlnode.WriteFile(path, root))

	rebuilt, err := yamlnode.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, root.Equal(rebuilt))
}

func TestReadInvalid(t *testing.T) {
	_, err := yamlnode.Read(bytes.NewBufferString("\t: not yaml"))
	require.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := yamlnode.ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWriteFuncPredicate(t *testing.T) {
	root := supernodes.New("root",
		supernodes.WithFunction(inequality.Func(func(inequality.Input) bool { return true })),
	)
	var buf bytes.Buffer
	err := yamlnode.Write(&buf, root)
	require.ErrorIs(t, err, supernodes.ErrValidation)
}
