package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mubarakalmehairbi/SuperNodes/inequality"
	"github.com/spf13/cobra"
)

type runCmdConfig struct {
	*rootCmdConfig
	treeInput string
	inputs    []string
}

func runCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &runCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a tree as a binary decision tree",
		Long:  `Load a node tree and run it as a binary decision tree against the given inputs, printing the terminal node reached`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			config.Logf("Reading tree from %s...", config.treeInput)
			node, err := loadNode(config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			in, err := parseInputs(config.inputs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Running tree against %v...", in)
			leaf, err := node.RunAsBinaryTree(context.Background(), in)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			fmt.Printf("Reached node %q with value %v\n", leaf.Name, leaf.Value)
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a YAML or JSON file from which the tree to run will be read (required)")
	cmd.Flags().StringArrayVarP(&(config.inputs), "input", "i", nil, "named input value as name=value or name=value1,value2,... (repeatable)")
	return cmd
}

func (rcc *runCmdConfig) Validate() error {
	if rcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func parseInputs(pairs []string) (inequality.Input, error) {
	in := inequality.Input{}
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid input %q: expected name=value", pair)
		}
		parts := strings.Split(value, ",")
		if len(parts) == 1 {
			in[name] = parseScalar(parts[0])
			continue
		}
		values := make([]interface{}, len(parts))
		for i, part := range parts {
			values[i] = parseScalar(part)
		}
		in[name] = values
	}
	return in, nil
}

func parseScalar(s string) interface{} {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return s
}
