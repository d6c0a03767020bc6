package mkm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/mkm/pkg/types"
)

// GetAccount returns the authenticated user's account.
func (c *Client) GetAccount(ctx context.Context, sess Session) (*domain.Account, error) {
	body, err := c.dispatch(ctx, sess, request{
		endpoint: "account",
		method:   http.MethodGet,
		path:     "/account",
	})
	if err != nil {
		return nil, err
	}

	var acc domain.Account
	if err := decodeField(body, "account", &acc); err != nil {
		return nil, fmt.Errorf("decoding account: %w", err)
	}
	return &acc, nil
}

// SetVacationStatus turns vacation mode on or off. The result carries the
// marketplace's confirmation message and the updated account.
func (c *Client) SetVacationStatus(
	ctx context.Context,
	sess Session,
	onVacation bool,
) (*domain.VacationResult, error) {
	body, err := c.dispatch(ctx, sess, request{
		endpoint: "account_vacation",
		method:   http.MethodPut,
		path:     "/account/vacation",
		query:    url.Values{"onVacation": {strconv.FormatBool(onVacation)}},
	})
	if err != nil {
		return nil, err
	}

	var res domain.VacationResult
	if err := decodeInto(body, &res); err != nil {
		return nil, fmt.Errorf("decoding vacation result: %w", err)
	}
	return &res, nil
}

// SetDisplayLanguage changes the language the marketplace uses for the
// account. languageID is one of the codes returned by LanguageCode.
func (c *Client) SetDisplayLanguage(
	ctx context.Context,
	sess Session,
	languageID int,
) (*domain.Account, error) {
	body, err := c.dispatch(ctx, sess, request{
		endpoint: "account_language",
		method:   http.MethodPut,
		path:     "/account/language",
		query:    url.Values{"idDisplayLanguage": {strconv.Itoa(languageID)}},
	})
	if err != nil {
		return nil, err
	}

	var acc domain.Account
	if err := decodeField(body, "account", &acc); err != nil {
		return nil, fmt.Errorf("decoding account: %w", err)
	}
	return &acc, nil
}
