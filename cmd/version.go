package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the res2cpp version",
		Long:  "Prints the module version of res2cpp and the Go toolchain it was built with.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Printf("res2cpp %s (%s)\n", info.Main.Version, info.GoVersion)
		},
	}
}

var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
