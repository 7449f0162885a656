package main

import (
	"fmt"
	"os"
	"path/filepath"

	supernodes "github.com/mubarakalmehairbi/SuperNodes"
	"github.com/mubarakalmehairbi/SuperNodes/jsonnode"
	"github.com/mubarakalmehairbi/SuperNodes/yamlnode"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "supernodes",
		Short: "supernodes is a tool to work with node trees",
		Long:  `A tool to inspect node trees, convert them between formats and run them as binary decision trees`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), showCmd(config), runCmd(config), findCmd(config), convertCmd(config))
	return rootCmd
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	logger(rcc.verbose).Logf(format, a...)
}

func loadNode(path string) (*supernodes.Node, error) {
	switch formatForPath(path) {
	case "yaml":
		return yamlnode.ReadFile(path)
	case "json":
		return jsonnode.ReadFile(path)
	}
	return nil, fmt.Errorf("cannot tell the tree format of %s from its extension", path)
}

func formatForPath(path string) string {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".csv":
		return "csv"
	}
	return ""
}
