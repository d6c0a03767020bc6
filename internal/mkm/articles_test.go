package mkm_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mkm/internal/mkm"
	"github.com/donaldgifford/mkm/internal/mkm/mocks"
	domain "github.com/donaldgifford/mkm/pkg/types"
)

const userArticlesBody = `{
  "article": [
    {
      "idArticle": 410480091,
      "idProduct": 1692,
      "language": {"idLanguage": 1, "languageName": "English"},
      "comments": "x",
      "price": 4,
      "count": 1,
      "inShoppingCart": false,
      "condition": "EX",
      "isFoil": false,
      "seller": {"idUser": 1, "username": "cardshark"}
    },
    {
      "idArticle": 412259385,
      "idProduct": 9145,
      "language": {"idLanguage": 3, "languageName": "German"},
      "comments": "",
      "price": 0.25,
      "count": 4,
      "condition": "NM",
      "isFoil": true
    }
  ]
}`

func TestClient_FindUserArticles(t *testing.T) {
	t.Parallel()

	const wantURL = testBaseURL + "/users/1/articles?idGame=1&maxResults=100&start=0"

	results := make(map[int][]domain.Article)
	for _, status := range []int{http.StatusOK, http.StatusPartialContent} {
		c, buf := newTestClient(t)
		sess := mocks.NewMockSession(t)
		sess.EXPECT().
			Get(mock.Anything, wantURL).
			Return(response(status, userArticlesBody), nil)

		articles, err := c.FindUserArticles(t.Context(), sess, "1", 1, 0)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "x", articles[0].Comments)
		assert.Empty(t, buf.errorRecords(t))

		results[status] = articles
	}

	assert.Equal(t, results[http.StatusOK], results[http.StatusPartialContent])
}

func TestClient_FindUserArticles_EscapesUsername(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, mkm.WithPageSize(1000))
	sess := mocks.NewMockSession(t)
	sess.EXPECT().
		Get(mock.Anything, testBaseURL+"/users/card%20shark/articles?idGame=3&maxResults=1000&start=2000").
		Return(response(http.StatusOK, `{"article":[]}`), nil)

	articles, err := c.FindUserArticles(t.Context(), sess, "card shark", 3, 2000)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestClient_GetArticles(t *testing.T) {
	t.Parallel()

	const wantURL = testBaseURL + "/articles/1692?maxResults=100&start=100"

	results := make(map[int][]domain.Article)
	for _, status := range []int{http.StatusOK, http.StatusPartialContent} {
		c, _ := newTestClient(t)
		sess := mocks.NewMockSession(t)
		sess.EXPECT().
			Get(mock.Anything, wantURL).
			Return(response(status, userArticlesBody), nil)

		articles, err := c.GetArticles(t.Context(), sess, 1692, 100)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, 3, articles[1].LanguageID())
		assert.Equal(t, domain.ConditionNearMint, articles[1].Condition)
		assert.True(t, articles[1].IsFoil)

		results[status] = articles
	}

	assert.Equal(t, results[http.StatusOK], results[http.StatusPartialContent])
}

func TestClient_ReadEndpoints_NoResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(t *testing.T, c *mkm.Client, sess mkm.Session) (any, error)
	}{
		{"account", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetAccount(t.Context(), s)
		}},
		{"games", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetGames(t.Context(), s)
		}},
		{"expansions", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetExpansions(t.Context(), s, 1)
		}},
		{"singles", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetCardsInExpansion(t.Context(), s, 1)
		}},
		{"product", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetProduct(t.Context(), s, 1)
		}},
		{"find product", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.FindProduct(t.Context(), s, "nothing", mkm.FindProductOptions{})
		}},
		{"stock", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetStock(t.Context(), s, 0)
		}},
		{"find stock article", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.FindStockArticle(t.Context(), s, "nothing", 1)
		}},
		{"user articles", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.FindUserArticles(t.Context(), s, "1", 1, 0)
		}},
		{"shopping carts", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetArticlesInShoppingcarts(t.Context(), s)
		}},
		{"articles", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetArticles(t.Context(), s, 1, 0)
		}},
		{"wantslists", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetWantslists(t.Context(), s)
		}},
		{"wantslist items", func(t *testing.T, c *mkm.Client, s mkm.Session) (any, error) {
			return c.GetWantslistItems(t.Context(), s, 1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, buf := newTestClient(t)
			sess := mocks.NewMockSession(t)
			sess.EXPECT().
				Get(mock.Anything, mock.Anything).
				Return(response(http.StatusNoContent, ""), nil)

			_, err := tt.call(t, c, sess)
			require.ErrorIs(t, err, mkm.ErrNoResults)

			errs := buf.errorRecords(t)
			require.Len(t, errs, 1)
			assert.Equal(t, "No results found.", errs[0].Msg)
		})
	}
}
