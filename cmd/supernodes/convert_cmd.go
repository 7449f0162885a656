package main

import (
	"context"
	"fmt"
	"os"

	gota "github.com/go-gota/gota/dataframe"
	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/mubarakalmehairbi/SuperNodes/dataframe"
	"github.com/mubarakalmehairbi/SuperNodes/jsonnode"
	"github.com/mubarakalmehairbi/SuperNodes/yamlnode"
	"github.com/spf13/cobra"
)

type convertCmdConfig struct {
	*rootCmdConfig
	input  string
	output string
}

func convertCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &convertCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a tree between formats",
		Long:  `Load a node tree from a YAML, JSON or CSV file and write it in the format the output file extension names`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			config.Logf("Reading tree from %s...", config.input)
			node, err := config.read()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			config.Logf("Writing tree to %s...", config.output)
			if err := config.write(node); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.input), "in", "i", "", "path to a YAML, JSON or CSV file with the tree to convert (required)")
	cmd.Flags().StringVarP(&(config.output), "out", "o", "", "path to the file to write the converted tree to, format taken from its extension (required)")
	return cmd
}

func (ccc *convertCmdConfig) Validate() error {
	if ccc.input == "" {
		return fmt.Errorf("required in flag was not set")
	}
	if ccc.output == "" {
		return fmt.Errorf("required out flag was not set")
	}
	if formatForPath(ccc.input) == "" {
		return fmt.Errorf("cannot tell the tree format of %s from its extension", ccc.input)
	}
	if formatForPath(ccc.output) == "" {
		return fmt.Errorf("cannot tell the tree format of %s from its extension", ccc.output)
	}
	return nil
}

func (ccc *convertCmdConfig) read() (*supernodes.Node, error) {
	if formatForPath(ccc.input) != "csv" {
		return loadNode(ccc.input)
	}
	f, err := os.Open(ccc.input)
	if err != nil {
		return nil, fmt.Errorf("reading tree CSV file %s: %v", ccc.input, err)
	}
	defer f.Close()
	df, err := dataframe.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading tree CSV file %s: %v", ccc.input, err)
	}
	node := supernodes.New("root")
	if err := dataframe.FromDataFrame(node, df); err != nil {
		return nil, fmt.Errorf("building tree from %s: %v", ccc.input, err)
	}
	// the filtered sub-frames in the node values are not
	// serializable, the node names carry the structure
	err = node.Walk(context.Background(), false, func(_ context.Context, n *supernodes.Node) error {
		if _, ok := n.Value.(gota.DataFrame); ok {
			n.Value = nil
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("building tree from %s: %v", ccc.input, err)
	}
	return node, nil
}

func (ccc *convertCmdConfig) write(node *supernodes.Node) error {
	switch formatForPath(ccc.output) {
	case "yaml":
		return yamlnode.WriteFile(ccc.output, node)
	case "json":
		return jsonnode.WriteFile(ccc.output, node)
	}
	df, err := dataframe.ToDataFrame(node, nil, true, "name")
	if err != nil {
		return fmt.Errorf("tabulating tree: %v", err)
	}
	f, err := os.Create(ccc.output)
	if err != nil {
		return fmt.Errorf("writing tree CSV file %s: %v", ccc.output, err)
	}
	defer f.Close()
	if err := dataframe.WriteCSV(f, df); err != nil {
		return fmt.Errorf("writing tree CSV file %s: %v", ccc.output, err)
	}
	return f.Close()
}
