package dataframe_test

import (
	"strings"
	"testing"

	gota "github.com/go-gota/gota/dataframe"
	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/mubarakalmehairbi/SuperNodes/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const citiesCSV = `country,city
spain,madrid
spain,barcelona
france,paris
`

func readCitiesDF(t *testing.T) gota.DataFrame {
	t.Helper()
	df, err := dataframe.ReadCSV(strings.NewReader(citiesCSV))
	require.NoError(t, err)
	return df
}

func TestSplitOnColumn(t *testing.T) {
	root := supernodes.New("countries")
	children, err := dataframe.SplitOnColumn(root, readCitiesDF(t), "country")
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, []string{"spain", "france"}, root.ChildrenNames())

	sub, ok := children[0].Value.(gota.DataFrame)
	require.True(t, ok)
	assert.Equal(t, 2, sub.Nrow())
}

func TestSplitOnColumnMissingColumn(t *testing.T) {
	root := supernodes.New("countries")
	_, err := dataframe.SplitOnColumn(root, readCitiesDF(t), "no-such-column")
	require.Error(t, err)
}

func TestFromDataFrame(t *testing.T) {
	root := supernodes.New("countries")
	require.NoError(t, dataframe.FromDataFrame(root, readCitiesDF(t)))
	assert.Equal(t, []string{"spain", "france"}, root.ChildrenNames())

	spain, err := root.GetChild("spain")
	require.NoError(t, err)
	assert.Equal(t, []string{"madrid", "barcelona"}, spain.ChildrenNames())

	france, err := root.GetChild("france")
	require.NoError(t, err)
	assert.Equal(t, []string{"paris"}, france.ChildrenNames())
}

func TestToDataFrame(t *testing.T) {
	root := supernodes.New("countries")
	require.NoError(t, dataframe.FromDataFrame(root, readCitiesDF(t)))

	df, err := dataframe.ToDataFrame(root, []string{"country", "city"}, true, "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"country", "city"}, df.Names())
	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, []string{"spain", "spain", "france"}, df.Col("country").Records())
	assert.Equal(t, []string{"madrid", "barcelona", "paris"}, df.Col("city").Records())
}

func TestToDataFrameGeneratedColumns(t *testing.T) {
	root := supernodes.New("root")
	_, err := root.Insert("a", nil)
	require.NoError(t, err)
	_, err = root.Insert("b", nil)
	require.NoError(t, err)

	df, err := dataframe.ToDataFrame(root, nil, false, "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, df.Names())
	assert.Equal(t, []string{"root", "root"}, df.Col("0").Records())
}

func TestToDataFrameColumnMismatch(t *testing.T) {
	root := supernodes.New("root")
	_, err := root.Insert("a", nil)
	require.NoError(t, err)

	_, err = dataframe.ToDataFrame(root, []string{"too", "many", "columns"}, false, "name")
	require.ErrorIs(t, err, supernodes.ErrValidation)
}

func TestCSVRoundTrip(t *testing.T) {
	root := supernodes.New("countries")
	require.NoError(t, dataframe.FromDataFrame(root, readCitiesDF(t)))

	df, err := dataframe.ToDataFrame(root, []string{"country", "city"}, true, "name")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, dataframe.WriteCSV(&buf, df))
	assert.Equal(t, citiesCSV, buf.String())
}
