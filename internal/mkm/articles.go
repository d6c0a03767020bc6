package mkm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/mkm/pkg/types"
)

// FindUserArticles returns one page of the articles a user offers for a
// game. userID may be the numeric id or the username. A 206 response is a
// truncated page; callers advance start by PageSize to fetch the next one,
// or use Paginate.
func (c *Client) FindUserArticles(
	ctx context.Context,
	sess Session,
	userID string,
	gameID, start int,
) ([]domain.Article, error) {
	return c.getArticlePage(ctx, sess, request{
		endpoint: "user_articles",
		method:   http.MethodGet,
		path:     "/users/" + url.PathEscape(userID) + "/articles",
		query: url.Values{
			"idGame":     {strconv.Itoa(gameID)},
			"start":      {strconv.Itoa(start)},
			"maxResults": {strconv.Itoa(c.pageSize)},
		},
	})
}

// GetArticles returns one page of the articles offered for a product.
func (c *Client) GetArticles(
	ctx context.Context,
	sess Session,
	productID, start int,
) ([]domain.Article, error) {
	return c.getArticlePage(ctx, sess, request{
		endpoint: "product_articles",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/articles/%d", productID),
		query: url.Values{
			"start":      {strconv.Itoa(start)},
			"maxResults": {strconv.Itoa(c.pageSize)},
		},
	})
}

func (c *Client) getArticlePage(ctx context.Context, sess Session, req request) ([]domain.Article, error) {
	body, err := c.dispatch(ctx, sess, req)
	if err != nil {
		return nil, err
	}

	var articles []domain.Article
	if err := decodeField(body, "article", &articles); err != nil {
		return nil, fmt.Errorf("decoding articles: %w", err)
	}
	return articles, nil
}
