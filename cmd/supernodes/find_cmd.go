package main

import (
	"fmt"
	"os"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/spf13/cobra"
)

type findCmdConfig struct {
	*rootCmdConfig
	treeInput string
	name      string
	id        string
}

func findCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &findCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find nodes in a tree",
		Long:  `Load a node tree and print the nodes matching the given name or id, in pre-order`,
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
			matches := node.FindNodes(func(n *supernodes.Node) bool {
				if config.name != "" && n.Name != config.name {
					return false
				}
				if config.id != "" && n.ID != config.id {
					return false
				}
				return true
			})
			if len(matches) == 0 {
				fmt.Fprintln(os.Stderr, "no matching nodes")
				os.Exit(3)
			}
			for _, m := range matches {
				fmt.Printf("%s: %v\n", m.Name, m.Value)
			}
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a YAML or JSON file from which the tree to search will be read (required)")
	cmd.Flags().StringVarP(&(config.name), "name", "n", "", "name of the nodes to find")
	cmd.Flags().StringVarP(&(config.id), "id", "d", "", "id of the node to find")
	return cmd
}

func (fcc *findCmdConfig) Validate() error {
	if fcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if fcc.name == "" && fcc.id == "" {
		return fmt.Errorf("at least one of the name and id flags must be set")
	}
	return nil
}
