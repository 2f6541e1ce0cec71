package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agetick/agetick/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the agetick version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("agetick v%s\n", version.Version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
