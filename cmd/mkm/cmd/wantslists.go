package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func wantslistsCmd() *cobra.Command {
	wantsRoot := &cobra.Command{
		Use:   "wantslists",
		Short: "Inspect your wantslists",
	}

	wantsRoot.AddCommand(
		wantslistsListCmd(),
		wantslistsItemsCmd(),
	)

	return wantsRoot
}

func wantslistsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your wantslists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := newRuntime()
			lists, err := rt.client.GetWantslists(cmd.Context(), rt.sess)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), lists)
			}
			if len(lists) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No wantslists found.")
				return nil
			}
			return printWantslistsTable(cmd.OutOrStdout(), lists)
		},
	}
}

func wantslistsItemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "items <wantslist-id>",
		Short:   "List the items of a wantslist",
		Example: `  mkm wantslists items 2789285`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("wantslist-id", args[0])
			if err != nil {
				return err
			}
			rt := newRuntime()
			items, err := rt.client.GetWantslistItems(cmd.Context(), rt.sess, id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), items)
			}
			return printWantslistItemsTable(cmd.OutOrStdout(), items)
		},
	}
}
