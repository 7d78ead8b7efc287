package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"automates-desktop/internal/backend"
	"automates-desktop/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintf(out, "backend: %s, profile %s\n", backend.JarName, backend.Profile)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
