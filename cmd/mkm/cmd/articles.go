package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mkm/internal/mkm"
	domain "github.com/donaldgifford/mkm/pkg/types"
)

func articlesCmd() *cobra.Command {
	articlesRoot := &cobra.Command{
		Use:   "articles",
		Short: "Browse articles offered on the marketplace",
		Long: "Browse the articles offered for a product or by a user. Each call\n" +
			"returns one page; pass --all to walk pages until the listing ends.",
	}

	articlesRoot.AddCommand(
		articlesProductCmd(),
		articlesUserCmd(),
	)

	return articlesRoot
}

// pageFlags are shared by the paginated article commands.
type pageFlags struct {
	start    int
	all      bool
	maxPages int
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.start, "start", 0, "offset of the first article")
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch every page")
	cmd.Flags().IntVar(&f.maxPages, "max-pages", 10, "page cap when --all is set (values below 1 use the default of 10)")
}

// fetch returns one page, or every page when --all is set.
func (f *pageFlags) fetch(ctx context.Context, rt *runtime, page mkm.PageFunc) ([]domain.Article, error) {
	if !f.all {
		return page(ctx, f.start)
	}

	result, err := rt.client.Paginate(ctx, page,
		mkm.WithStartOffset(f.start),
		mkm.WithMaxPages(f.maxPages),
	)
	if err != nil {
		return nil, err
	}
	if result.StoppedAt == mkm.StopMaxPages {
		fmt.Fprintf(os.Stderr, "Stopped after %d pages; raise --max-pages to fetch more.\n", result.PagesUsed)
	}
	return result.Articles, nil
}

func articlesProductCmd() *cobra.Command {
	var pf pageFlags

	cmd := &cobra.Command{
		Use:   "product <product-id>",
		Short: "List the articles offered for a product",
		Example: `  mkm articles product 265535
  mkm articles product 265535 --all --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID("product-id", args[0])
			if err != nil {
				return err
			}
			rt := newRuntime()
			articles, err := pf.fetch(cmd.Context(), rt, func(ctx context.Context, start int) ([]domain.Article, error) {
				return rt.client.GetArticles(ctx, rt.sess, productID, start)
			})
			if err != nil {
				return err
			}
			return printArticles(cmd, articles)
		},
	}

	pf.register(cmd)

	return cmd
}

func articlesUserCmd() *cobra.Command {
	var (
		pf     pageFlags
		gameID int
	)

	cmd := &cobra.Command{
		Use:   "user <user>",
		Short: "List the articles a user offers",
		Example: `  mkm articles user cardshark
  mkm articles user 1234 --game 1 --start 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := newRuntime()
			articles, err := pf.fetch(cmd.Context(), rt, func(ctx context.Context, start int) ([]domain.Article, error) {
				return rt.client.FindUserArticles(ctx, rt.sess, args[0], gameID, start)
			})
			if err != nil {
				return err
			}
			return printArticles(cmd, articles)
		},
	}

	pf.register(cmd)
	cmd.Flags().IntVar(&gameID, "game", 1, "game id")

	return cmd
}
