package cmd

import (
	"github.com/spf13/cobra"

	"github.com/donaldgifford/mkm/internal/mkm"
)

func languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the language names accepted by --language",
		RunE: func(cmd *cobra.Command, _ []string) error {
			langs := mkm.Languages()
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), langs)
			}
			return printLanguagesTable(cmd.OutOrStdout(), langs)
		},
	}
}
