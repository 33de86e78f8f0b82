package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"res2cpp.dev/pkg/res2cpp/internal/domain"
)

var diffForceFlag bool

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show what generating would change",
		Long: `Render the header and source in memory and print unified diffs against
the files on disk. Nothing is written. The source is only compared when it
would be regenerated, unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			settings := settingsFromConfig()
			if settings.ConfigFile == "" {
				return errMissingConfig
			}

			return workflow.Diff(context.Background(), domain.DiffArgs{
				Settings: settings,
				Threads:  viper.GetInt(parallelFlagName),
				Force:    diffForceFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&diffForceFlag, "force", false, "compare the source even when it is not stale")

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
