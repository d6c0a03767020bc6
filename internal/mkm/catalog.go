package mkm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/mkm/pkg/types"
)

// GetGames returns the games traded on the marketplace as raw JSON.
func (c *Client) GetGames(ctx context.Context, sess Session) (json.RawMessage, error) {
	return c.getRaw(ctx, sess, "games", "/games")
}

// GetExpansions returns the expansions of a game as raw JSON.
func (c *Client) GetExpansions(ctx context.Context, sess Session, gameID int) (json.RawMessage, error) {
	return c.getRaw(ctx, sess, "expansions", fmt.Sprintf("/games/%d/expansions", gameID))
}

// GetCardsInExpansion returns the expansion and its singles as raw JSON.
func (c *Client) GetCardsInExpansion(
	ctx context.Context,
	sess Session,
	expansionID int,
) (json.RawMessage, error) {
	return c.getRaw(ctx, sess, "expansion_singles", fmt.Sprintf("/expansions/%d/singles", expansionID))
}

func (c *Client) getRaw(ctx context.Context, sess Session, endpoint, path string) (json.RawMessage, error) {
	body, err := c.dispatch(ctx, sess, request{
		endpoint: endpoint,
		method:   http.MethodGet,
		path:     path,
	})
	if err != nil {
		return nil, err
	}
	return decodeRaw(body)
}

// GetProduct returns one catalogue entry, including its price guide.
func (c *Client) GetProduct(ctx context.Context, sess Session, productID int) (*domain.Product, error) {
	body, err := c.dispatch(ctx, sess, request{
		endpoint: "product",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/products/%d", productID),
	})
	if err != nil {
		return nil, err
	}

	var p domain.Product
	if err := decodeField(body, "product", &p); err != nil {
		return nil, fmt.Errorf("decoding product: %w", err)
	}
	return &p, nil
}

// FindProductOptions narrows a product search. Zero values are omitted from
// the query.
type FindProductOptions struct {
	Exact      bool
	GameID     int
	LanguageID int
	Start      int
	MaxResults int
}

func (o FindProductOptions) values(search string) url.Values {
	q := url.Values{"search": {search}}
	if o.Exact {
		q.Set("exact", "true")
	}
	if o.GameID > 0 {
		q.Set("idGame", strconv.Itoa(o.GameID))
	}
	if o.LanguageID > 0 {
		q.Set("idLanguage", strconv.Itoa(o.LanguageID))
	}
	if o.Start > 0 || o.MaxResults > 0 {
		q.Set("start", strconv.Itoa(o.Start))
		if o.MaxResults > 0 {
			q.Set("maxResults", strconv.Itoa(o.MaxResults))
		}
	}
	return q
}

// FindProduct searches the catalogue by name.
func (c *Client) FindProduct(
	ctx context.Context,
	sess Session,
	search string,
	opts FindProductOptions,
) ([]domain.Product, error) {
	body, err := c.dispatch(ctx, sess, request{
		endpoint: "products_find",
		method:   http.MethodGet,
		path:     "/products/find",
		query:    opts.values(search),
	})
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := decodeField(body, "product", &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}
