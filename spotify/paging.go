package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/andsko/chorus/model"
)

// ErrPageExhausted is returned when paging past the last (or before the
// first) page.
var ErrPageExhausted = errors.New("spotify: page exhausted")

// NextPage fetches the page after p, following its next URL.
func NextPage[T any](ctx context.Context, c *Client, p model.Paging[T]) (model.Paging[T], error) {
	return fetchPage[T](ctx, c, p.Next)
}

// PreviousPage fetches the page before p, following its previous URL.
func PreviousPage[T any](ctx context.Context, c *Client, p model.Paging[T]) (model.Paging[T], error) {
	return fetchPage[T](ctx, c, p.Previous)
}

func fetchPage[T any](ctx context.Context, c *Client, pageURL string) (model.Paging[T], error) {
	var page model.Paging[T]
	if pageURL == "" {
		return page, ErrPageExhausted
	}

	var raw json.RawMessage
	if err := c.send(ctx, http.MethodGet, pageURL, nil, &raw); err != nil {
		return page, err
	}
	if err := unwrapPaging(raw, &page); err != nil {
		return page, err
	}
	return page, nil
}

// unwrapPaging decodes a paging object that may be wrapped in a single
// keyed envelope, as browse and search page URLs return
// (e.g. {"albums": {...}} or {"message": "...", "playlists": {...}}).
func unwrapPaging(raw []byte, out any) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return fmt.Errorf("parsing page: %w", err)
	}
	if _, ok := top["items"]; ok {
		return json.Unmarshal(raw, out)
	}

	var found json.RawMessage
	for _, v := range top {
		var inner map[string]json.RawMessage
		if json.Unmarshal(v, &inner) != nil {
			continue
		}
		if _, ok := inner["items"]; ok {
			if found != nil {
				return errors.New("ambiguous page response: multiple pagings")
			}
			found = v
		}
	}
	if found == nil {
		return errors.New("no paging found in page response")
	}
	return json.Unmarshal(found, out)
}
