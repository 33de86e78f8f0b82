package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"res2cpp.dev/pkg/res2cpp/internal/controller"
	"res2cpp.dev/pkg/res2cpp/internal/domain"
	m "res2cpp.dev/pkg/res2cpp/internal/model"
)

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [manifest]",
		Short: "List the resources of a manifest",
		Long: `List the identifiers and resolved paths of all resources in a manifest,
sorted the way they are generated. Resources sharing embedded content with
an earlier one are marked.

` + manifestHelp,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			manifest := viper.GetString(configFlagName)
			if len(args) == 1 {
				manifest = args[0]
			}

			if manifest == "" {
				return errMissingConfig
			}

			return workflow.List(context.Background(), domain.ListArgs{
				Manifest: m.Path(manifest),
				Format:   controller.ListFormat(listFormatFlag),
			})
		},
	}

	cmd.Flags().StringVarP(&listFormatFlag, "format", "f", string(controller.FormatTable), "output format (table, yaml)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
