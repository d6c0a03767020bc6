package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mkm/internal/mkm"
)

func accountCmd() *cobra.Command {
	accountRoot := &cobra.Command{
		Use:   "account",
		Short: "Inspect and update your account",
	}

	accountRoot.AddCommand(
		accountShowCmd(),
		accountVacationCmd(),
		accountLanguageCmd(),
	)

	return accountRoot
}

func accountShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show account details",
		Example: `  mkm account show
  mkm account show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := newRuntime()
			acc, err := rt.client.GetAccount(cmd.Context(), rt.sess)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), acc)
			}
			return printAccountDetail(cmd.OutOrStdout(), acc)
		},
	}
}

func accountVacationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vacation <on|off>",
		Short: "Turn vacation mode on or off",
		Example: `  mkm account vacation on
  mkm account vacation off`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			onVacation, err := parseOnOff(args[0])
			if err != nil {
				return err
			}
			rt := newRuntime()
			res, err := rt.client.SetVacationStatus(cmd.Context(), rt.sess, onVacation)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return nil
		},
	}
}

func accountLanguageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "language <name>",
		Short: "Set the display language",
		Example: `  mkm account language English
  mkm account language "Simplified Chinese"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := mkm.LanguageCode(args[0])
			if err != nil {
				return err
			}
			rt := newRuntime()
			acc, err := rt.client.SetDisplayLanguage(cmd.Context(), rt.sess, code)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), acc)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Display language set to %s.\n", args[0])
			return nil
		},
	}
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
	return b, nil
}
