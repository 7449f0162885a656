/*
Package dataframe converts node trees to and from tabular data,
delegating the tabular semantics to the gota dataframe library.

A tree flattens to one row per path from the root to a leaf, one
column per tree layer; reading a dataframe back splits the tree
on each column in turn, one child per distinct column value.
*/
package dataframe

import (
	"fmt"
	"io"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

/*
ToDataFrame takes a node, a slice of column names, an ignoreFirst
boolean and the name of a scalar node attribute and returns a
dataframe with one row per path from the node to each of its
leaves, holding the given attribute of every node on the path.
If attr is empty the node names are used. If ignoreFirst is true
the node itself is left out of the rows. If columns is nil,
sequential indices are generated as column names; otherwise its
length must match the number of tree layers on the longest path.
*/
func ToDataFrame(n *supernodes.Node, columns []string, ignoreFirst bool, attr string) (dataframe.DataFrame, error) {
	if attr == "" {
		attr = "name"
	}
	rows := n.Paths(attr)
	if ignoreFirst {
		for i, row := range rows {
			if len(row) > 0 {
				rows[i] = row[1:]
			}
		}
	}
	var width int
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: tree has no %q attributes to tabulate", supernodes.ErrValidation, attr)
	}
	if columns == nil {
		columns = make([]string, width)
		for i := range columns {
			columns[i] = fmt.Sprintf("%d", i)
		}
	}
	if len(columns) != width {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %d columns provided for %d tree layers", supernodes.ErrValidation, len(columns), width)
	}
	records := make([][]string, 0, len(rows)+1)
	records = append(records, columns)
	for _, row := range rows {
		record := make([]string, width)
		for i, cell := range row {
			record[i] = fmt.Sprintf("%v", cell)
		}
		records = append(records, record)
	}
	df := dataframe.LoadRecords(records, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("building dataframe: %v", df.Err)
	}
	return df, nil
}

/*
SplitOnColumn attaches to the given node one child per distinct
value in the given dataframe column, in order of first
appearance. Each child is named after the value and its Value
holds the dataframe filtered down to the rows with that value.
The new children are returned.
*/
func SplitOnColumn(n *supernodes.Node, df dataframe.DataFrame, column string) ([]*supernodes.Node, error) {
	col := df.Col(column)
	if col.Err != nil {
		return nil, fmt.Errorf("splitting on column %q: %v", column, col.Err)
	}
	var children []*supernodes.Node
	seen := make(map[string]bool)
	for _, value := range col.Records() {
		if seen[value] {
			continue
		}
		seen[value] = true
		sub := df.Filter(dataframe.F{Colname: column, Comparator: series.Eq, Comparando: value})
		if sub.Err != nil {
			return nil, fmt.Errorf("splitting on column %q: filtering value %q: %v", column, value, sub.Err)
		}
		child := supernodes.New(value, supernodes.WithValue(sub))
		if err := n.Append(child); err != nil {
			return nil, fmt.Errorf("splitting on column %q: %w", column, err)
		}
		children = append(children, child)
	}
	return children, nil
}

/*
FromDataFrame builds a tree under the given node from a
dataframe by splitting on each column in turn: one child per
distinct value of the first column, then below each of those one
grandchild per distinct value of the second column among the
matching rows, and so on.
*/
func FromDataFrame(n *supernodes.Node, df dataframe.DataFrame) error {
	names := df.Names()
	if len(names) == 0 {
		return nil
	}
	children, err := SplitOnColumn(n, df, names[0])
	if err != nil {
		return err
	}
	if len(names) == 1 {
		return nil
	}
	for _, child := range children {
		sub, ok := child.Value.(dataframe.DataFrame)
		if !ok {
			return fmt.Errorf("%w: child %q does not hold a dataframe", supernodes.ErrValidation, child.Name)
		}
		rest := sub.Select(names[1:])
		if rest.Err != nil {
			return fmt.Errorf("selecting columns under %q: %v", child.Name, rest.Err)
		}
		if err := FromDataFrame(child, rest); err != nil {
			return err
		}
	}
	return nil
}

/*
ReadCSV parses CSV content from the given reader into a
dataframe with string-typed columns.
*/
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading CSV: %v", df.Err)
	}
	return df, nil
}

/*
WriteCSV writes the given dataframe as CSV onto the given
writer.
*/
func WriteCSV(w io.Writer, df dataframe.DataFrame) error {
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("writing CSV: %v", err)
	}
	return nil
}
