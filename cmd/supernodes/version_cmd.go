package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in supernodes' version
	VersionMajor = 0
	// VersionMinor is the minor number in supernodes' version
	VersionMinor = 1
	// VersionPatch is the patch number in supernodes' version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of supernodes",
		Long:  `All software has versions. This is supernodes'`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("supernodes v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
