package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mkm/internal/mkm"
)

func gamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the games traded on the marketplace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRaw(cmd, func(rt *runtime) (json.RawMessage, error) {
				return rt.client.GetGames(cmd.Context(), rt.sess)
			})
		},
	}
}

func expansionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "expansions <game-id>",
		Short:   "List the expansions of a game",
		Example: `  mkm expansions 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseID("game-id", args[0])
			if err != nil {
				return err
			}
			return runRaw(cmd, func(rt *runtime) (json.RawMessage, error) {
				return rt.client.GetExpansions(cmd.Context(), rt.sess, gameID)
			})
		},
	}
}

func singlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "singles <expansion-id>",
		Short:   "List the cards in an expansion",
		Example: `  mkm singles 1469`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expansionID, err := parseID("expansion-id", args[0])
			if err != nil {
				return err
			}
			return runRaw(cmd, func(rt *runtime) (json.RawMessage, error) {
				return rt.client.GetCardsInExpansion(cmd.Context(), rt.sess, expansionID)
			})
		},
	}
}

func runRaw(cmd *cobra.Command, fetch func(*runtime) (json.RawMessage, error)) error {
	raw, err := fetch(newRuntime())
	if err != nil {
		return err
	}
	return outputRaw(cmd.OutOrStdout(), raw)
}

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Look up catalogue products",
	}

	productsRoot.AddCommand(
		productsGetCmd(),
		productsFindCmd(),
	)

	return productsRoot
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show a product and its price guide",
		Example: `  mkm products get 265535
  mkm products get 265535 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID("product-id", args[0])
			if err != nil {
				return err
			}
			rt := newRuntime()
			p, err := rt.client.GetProduct(cmd.Context(), rt.sess, productID)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printProductDetail(cmd.OutOrStdout(), p)
		},
	}
}

func productsFindCmd() *cobra.Command {
	var (
		exact    bool
		gameID   int
		language string
	)

	cmd := &cobra.Command{
		Use:   "find <search>",
		Short: "Search the catalogue by name",
		Example: `  mkm products find "Aether Vial"
  mkm products find "Aether Vial" --exact --game 1 --language German`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := mkm.FindProductOptions{Exact: exact, GameID: gameID}
			if language != "" {
				code, err := mkm.LanguageCode(language)
				if err != nil {
					return err
				}
				opts.LanguageID = code
			}

			rt := newRuntime()
			products, err := rt.client.FindProduct(cmd.Context(), rt.sess, args[0], opts)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), products)
			}
			return printProductsTable(cmd.OutOrStdout(), products)
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, "match the name exactly")
	cmd.Flags().IntVar(&gameID, "game", 1, "game id (1 is Magic: The Gathering)")
	cmd.Flags().StringVar(&language, "language", "", "search in this language, e.g. German")

	return cmd
}

func parseID(name, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return id, nil
}
