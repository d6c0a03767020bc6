package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mkm/internal/mkm"
	domain "github.com/donaldgifford/mkm/pkg/types"
)

func stockCmd() *cobra.Command {
	stockRoot := &cobra.Command{
		Use:   "stock",
		Short: "Manage your stock",
		Long: "List, search, and modify the articles you offer on the marketplace.\n" +
			"Write commands read a JSON array of articles from --file.",
	}

	stockRoot.AddCommand(
		stockListCmd(),
		stockFindCmd(),
		stockWriteCmd("add", "List new articles", (*mkm.Client).AddStock),
		stockWriteCmd("set", "Update existing articles", (*mkm.Client).SetStock),
		stockWriteCmd("delete", "Remove articles", (*mkm.Client).DeleteStock),
	)

	return stockRoot
}

func stockListCmd() *cobra.Command {
	var start int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your stock",
		Example: `  mkm stock list
  mkm stock list --start 101 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := newRuntime()
			stock, err := rt.client.GetStock(cmd.Context(), rt.sess, start)
			if err != nil {
				return err
			}
			return printArticles(cmd, stock)
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "offset of the first article")

	return cmd
}

func stockFindCmd() *cobra.Command {
	var gameID int

	cmd := &cobra.Command{
		Use:     "find <name>",
		Short:   "Find articles in your stock by product name",
		Example: `  mkm stock find "Aether Vial"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := newRuntime()
			articles, err := rt.client.FindStockArticle(cmd.Context(), rt.sess, args[0], gameID)
			if err != nil {
				return err
			}
			return printArticles(cmd, articles)
		},
	}

	cmd.Flags().IntVar(&gameID, "game", 1, "game id")

	return cmd
}

type stockWriteFunc func(*mkm.Client, context.Context, mkm.Session, []domain.Article) ([]domain.StockResult, error)

func stockWriteCmd(use, short string, write stockWriteFunc) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Example: fmt.Sprintf("  mkm stock %s --file articles.json", use),
		RunE: func(cmd *cobra.Command, _ []string) error {
			articles, err := readArticlesFile(file)
			if err != nil {
				return err
			}
			rt := newRuntime()
			results, err := write(rt.client, cmd.Context(), rt.sess, articles)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), results)
			}
			return printStockResultsTable(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file holding an array of articles")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}

// readArticlesFile reads a JSON array of articles.
func readArticlesFile(path string) ([]domain.Article, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading articles file: %w", err)
	}

	var articles []domain.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("parsing articles file: %w", err)
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("articles file %s: %w", path, mkm.ErrNoArticles)
	}
	return articles, nil
}

func cartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Show your articles sitting in buyers' shopping carts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRaw(cmd, func(rt *runtime) (json.RawMessage, error) {
				return rt.client.GetArticlesInShoppingcarts(cmd.Context(), rt.sess)
			})
		},
	}
}

func printArticles(cmd *cobra.Command, articles []domain.Article) error {
	if jsonOutput() {
		return outputJSON(cmd.OutOrStdout(), articles)
	}
	if len(articles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No articles found.")
		return nil
	}
	return printArticlesTable(cmd.OutOrStdout(), articles)
}
