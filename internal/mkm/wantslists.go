package mkm

import (
	"context"
	"fmt"
	"net/http"

	domain "github.com/donaldgifford/mkm/pkg/types"
)

// GetWantslists returns the account's wantslists without their items.
func (c *Client) GetWantslists(ctx context.Context, sess Session) ([]domain.Wantslist, error) {
	body, err := c.dispatch(ctx, sess, request{
		endpoint: "wantslists",
		method:   http.MethodGet,
		path:     "/wantslist",
	})
	if err != nil {
		return nil, err
	}

	var lists []domain.Wantslist
	if err := decodeField(body, "wantslist", &lists); err != nil {
		return nil, fmt.Errorf("decoding wantslists: %w", err)
	}
	return lists, nil
}

// GetWantslistItems returns the items of one wantslist.
func (c *Client) GetWantslistItems(
	ctx context.Context,
	sess Session,
	wantslistID int,
) ([]domain.WantslistItem, error) {
	body, err := c.dispatch(ctx, sess, request{
		endpoint: "wantslist_items",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/wantslist/%d", wantslistID),
	})
	if err != nil {
		return nil, err
	}

	var list domain.Wantslist
	if err := decodeField(body, "wantslist", &list); err != nil {
		return nil, fmt.Errorf("decoding wantslist: %w", err)
	}
	return list.Item, nil
}
