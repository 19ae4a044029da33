package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hamzafarrukh73/authclient/apierror"
)

// Resource is a typed repository over one REST collection, sharing the
// pipeline's auth injection and error classification. The endpoint is
// the collection path with a trailing slash, e.g. "/events/".
type Resource[T any] struct {
	client   *Client
	endpoint string
}

func NewResource[T any](c *Client, endpoint string) *Resource[T] {
	return &Resource[T]{client: c, endpoint: endpoint}
}

func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodGet, r.itemPath(id), nil, &out)
	return out, err
}

// List fetches the collection, unwrapping both a bare JSON array and the
// paginated {"results": [...]} envelope.
func (r *Resource[T]) List(ctx context.Context, params url.Values) ([]T, error) {
	endpoint := r.endpoint
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var raw json.RawMessage
	if err := r.client.Do(ctx, http.MethodGet, endpoint, nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, apierror.Classify(fmt.Errorf("decode collection response: %w", err))
	}
	return page.Results, nil
}

func (r *Resource[T]) Create(ctx context.Context, data any) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodPost, r.endpoint, data, &out)
	return out, err
}

// Update replaces the item entirely.
func (r *Resource[T]) Update(ctx context.Context, id string, data any) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodPut, r.itemPath(id), data, &out)
	return out, err
}

// Patch updates a subset of the item's fields.
func (r *Resource[T]) Patch(ctx context.Context, id string, data any) (T, error) {
	var out T
	err := r.client.Do(ctx, http.MethodPatch, r.itemPath(id), data, &out)
	return out, err
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}

func (r *Resource[T]) itemPath(id string) string {
	return r.endpoint + url.PathEscape(id) + "/"
}
