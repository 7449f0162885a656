package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type showCmdConfig struct {
	*rootCmdConfig
	treeInput string
}

func showCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &showCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a node tree",
		Long:  `Load a node tree from a YAML or JSON file and print it`,
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
			fmt.Println(node)
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a YAML or JSON file from which the tree to show will be read (required)")
	return cmd
}

func (scc *showCmdConfig) Validate() error {
	if scc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}
