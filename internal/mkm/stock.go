package mkm

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	domain "github.com/donaldgifford/mkm/pkg/types"
)

// GetStock returns the account's stock. A start above zero fetches the
// page beginning at that offset.
func (c *Client) GetStock(ctx context.Context, sess Session, start int) ([]domain.Article, error) {
	path := "/stock"
	if start > 0 {
		path += "/" + strconv.Itoa(start)
	}
	return c.getArticlePage(ctx, sess, request{
		endpoint: "stock",
		method:   http.MethodGet,
		path:     path,
	})
}

// FindStockArticle searches the account's stock for articles whose product
// name matches name within a game.
func (c *Client) FindStockArticle(
	ctx context.Context,
	sess Session,
	name string,
	gameID int,
) ([]domain.Article, error) {
	return c.getArticlePage(ctx, sess, request{
		endpoint: "stock_find",
		method:   http.MethodGet,
		path:     "/stock/articles/" + url.PathEscape(name) + "/" + strconv.Itoa(gameID),
	})
}

// GetArticlesInShoppingcarts returns the stock articles currently sitting
// in buyers' shopping carts as raw JSON.
func (c *Client) GetArticlesInShoppingcarts(ctx context.Context, sess Session) (json.RawMessage, error) {
	return c.getRaw(ctx, sess, "stock_shoppingcarts", "/stock/shoppingcart-articles")
}

// AddStock lists new articles. One result is returned per submitted article.
func (c *Client) AddStock(
	ctx context.Context,
	sess Session,
	articles []domain.Article,
) ([]domain.StockResult, error) {
	body, err := encodeStockRequest(articles, toWriteArticle)
	if err != nil {
		return nil, err
	}

	resp, err := c.dispatch(ctx, sess, request{
		endpoint: "stock_add",
		method:   http.MethodPost,
		path:     "/stock",
		body:     body,
	})
	if err != nil {
		return nil, err
	}

	var entries []stockEntry
	if err := decodeField(resp, "inserted", &entries); err != nil {
		return nil, fmt.Errorf("decoding inserted articles: %w", err)
	}
	return toStockResults(entries)
}

// SetStock updates existing articles, identified by IDArticle. Articles the
// marketplace refused are returned with Success false and the reason in
// Error. Results follow the order of articles; entries whose id was not
// submitted come last.
func (c *Client) SetStock(
	ctx context.Context,
	sess Session,
	articles []domain.Article,
) ([]domain.StockResult, error) {
	body, err := encodeStockRequest(articles, toWriteArticle)
	if err != nil {
		return nil, err
	}

	resp, err := c.dispatch(ctx, sess, request{
		endpoint: "stock_set",
		method:   http.MethodPut,
		path:     "/stock",
		body:     body,
	})
	if err != nil {
		return nil, err
	}

	var env struct {
		Updated    []domain.Article `json:"updatedArticles"`
		NotUpdated []stockEntry     `json:"notUpdatedArticles"`
	}
	if err := decodeInto(resp, &env); err != nil {
		return nil, fmt.Errorf("decoding updated articles: %w", err)
	}

	results := make([]domain.StockResult, 0, len(env.Updated)+len(env.NotUpdated))
	for i := range env.Updated {
		a := env.Updated[i]
		results = append(results, domain.StockResult{
			Success:   true,
			IDArticle: a.IDArticle,
			Count:     a.Count,
			Article:   &a,
		})
	}
	failed, err := toStockResults(env.NotUpdated)
	if err != nil {
		return nil, err
	}
	results = append(results, failed...)
	sortBySubmission(results, articles)
	return results, nil
}

// sortBySubmission orders results by the position of their IDArticle in
// submitted. Unknown ids keep their relative order at the end.
func sortBySubmission(results []domain.StockResult, submitted []domain.Article) {
	pos := make(map[int]int, len(submitted))
	for i := range submitted {
		if _, ok := pos[submitted[i].IDArticle]; !ok {
			pos[submitted[i].IDArticle] = i
		}
	}
	rank := func(r domain.StockResult) int {
		if i, ok := pos[r.IDArticle]; ok {
			return i
		}
		return len(submitted)
	}
	slices.SortStableFunc(results, func(a, b domain.StockResult) int {
		return cmp.Compare(rank(a), rank(b))
	})
}

// DeleteStock removes count copies of each article. An article with a
// Count below 1 removes a single copy.
func (c *Client) DeleteStock(
	ctx context.Context,
	sess Session,
	articles []domain.Article,
) ([]domain.StockResult, error) {
	body, err := encodeStockRequest(articles, toDeleteArticle)
	if err != nil {
		return nil, err
	}

	resp, err := c.dispatch(ctx, sess, request{
		endpoint: "stock_delete",
		method:   http.MethodDelete,
		path:     "/stock",
		body:     body,
	})
	if err != nil {
		return nil, err
	}

	var entries []stockEntry
	if err := decodeField(resp, "deleted", &entries); err != nil {
		return nil, fmt.Errorf("decoding deleted articles: %w", err)
	}
	return toStockResults(entries)
}

// stockRequest is the XML envelope the marketplace expects on stock writes.
type stockRequest struct {
	XMLName  xml.Name `xml:"request"`
	Articles []any    `xml:"article"`
}

type writeArticle struct {
	IDArticle  int     `xml:"idArticle,omitempty"`
	IDProduct  int     `xml:"idProduct,omitempty"`
	IDLanguage int     `xml:"idLanguage,omitempty"`
	Comments   string  `xml:"comments,omitempty"`
	Count      int     `xml:"count,omitempty"`
	Price      float64 `xml:"price,omitempty"`
	Condition  string  `xml:"condition,omitempty"`
	IsFoil     bool    `xml:"isFoil"`
	IsSigned   bool    `xml:"isSigned"`
	IsPlayset  bool    `xml:"isPlayset"`
	IsAltered  bool    `xml:"isAltered"`
}

type deleteArticle struct {
	IDArticle int `xml:"idArticle"`
	Count     int `xml:"count"`
}

func toWriteArticle(a *domain.Article) any {
	return writeArticle{
		IDArticle:  a.IDArticle,
		IDProduct:  a.IDProduct,
		IDLanguage: a.LanguageID(),
		Comments:   a.Comments,
		Count:      a.Count,
		Price:      a.Price,
		Condition:  string(a.Condition),
		IsFoil:     a.IsFoil,
		IsSigned:   a.IsSigned,
		IsPlayset:  a.IsPlayset,
		IsAltered:  a.IsAltered,
	}
}

func toDeleteArticle(a *domain.Article) any {
	count := a.Count
	if count < 1 {
		count = 1
	}
	return deleteArticle{IDArticle: a.IDArticle, Count: count}
}

func encodeStockRequest(articles []domain.Article, conv func(*domain.Article) any) ([]byte, error) {
	if len(articles) == 0 {
		return nil, ErrNoArticles
	}

	req := stockRequest{Articles: make([]any, len(articles))}
	for i := range articles {
		req.Articles[i] = conv(&articles[i])
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(req); err != nil {
		return nil, fmt.Errorf("encoding stock request: %w", err)
	}
	return buf.Bytes(), nil
}

// stockEntry is one element of a stock write response. idArticle is the
// full article on inserts and a bare number on deletes; tried echoes the
// submitted article when the write was refused.
type stockEntry struct {
	Success   bool            `json:"success"`
	IDArticle json.RawMessage `json:"idArticle"`
	Count     int             `json:"count"`
	Tried     *domain.Article `json:"tried"`
	Error     string          `json:"error"`
}

func toStockResults(entries []stockEntry) ([]domain.StockResult, error) {
	results := make([]domain.StockResult, 0, len(entries))
	for i, e := range entries {
		r := domain.StockResult{
			Success: e.Success,
			Count:   e.Count,
			Error:   e.Error,
		}

		switch {
		case len(e.IDArticle) == 0 || string(e.IDArticle) == "null":
		case e.IDArticle[0] == '{':
			var a domain.Article
			if err := json.Unmarshal(e.IDArticle, &a); err != nil {
				return nil, fmt.Errorf("parsing article %d: %w", i, err)
			}
			r.Article = &a
			r.IDArticle = a.IDArticle
			if r.Count == 0 {
				r.Count = a.Count
			}
		default:
			id, err := strconv.Atoi(string(e.IDArticle))
			if err != nil {
				return nil, fmt.Errorf("parsing article id %d: %w", i, err)
			}
			r.IDArticle = id
		}

		if r.Article == nil && e.Tried != nil {
			r.Article = e.Tried
			if r.IDArticle == 0 {
				r.IDArticle = e.Tried.IDArticle
			}
		}
		results = append(results, r)
	}
	return results, nil
}
