package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridable at build time with
// -ldflags "-X github.com/hosseinfallah-h/iSelect-applicant/cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the iselect version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("%s %s\n", app, version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
