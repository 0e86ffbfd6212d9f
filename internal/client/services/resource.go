// Package services translates page intents into backend REST calls. Every
// resource shares one CRUD shape; failures are logged and returned as is.
package services

import (
	"context"
	"net/http"
	"net/url"
	"sort"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
)

// Sender is the part of api.Client the services need.
type Sender interface {
	Send(ctx context.Context, method, path string, body any, params url.Values) (*api.Response, error)
}

// Resource is the uniform list/get/create/update/delete contract for one
// backend collection. one and many are the envelope keys for a single record
// and for a list.
type Resource[T any] struct {
	api  Sender
	log  logging.Logger
	path string
	one  string
	many string
}

func NewResource[T any](s Sender, log logging.Logger, path, one, many string) *Resource[T] {
	if log == nil {
		log = logging.Nop()
	}
	return &Resource[T]{api: s, log: log.With("resource", path), path: path, one: one, many: many}
}

func (r *Resource[T]) List(ctx context.Context, filters url.Values) ([]T, error) {
	return fetch[[]T](ctx, r.api, r.log, http.MethodGet, r.path, nil, filters, r.many)
}

func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	return fetch[T](ctx, r.api, r.log, http.MethodGet, r.path+"/"+url.PathEscape(id), nil, nil, r.one)
}

func (r *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	return fetch[T](ctx, r.api, r.log, http.MethodPost, r.path, payload, nil, r.one)
}

// Update sends a partial payload with PATCH and returns the stored record.
func (r *Resource[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	return fetch[T](ctx, r.api, r.log, http.MethodPatch, r.path+"/"+url.PathEscape(id), patch, nil, r.one)
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return send(ctx, r.api, r.log, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil)
}

func fetch[T any](ctx context.Context, s Sender, log logging.Logger, method, path string, body any, params url.Values, key string) (T, error) {
	var zero T
	resp, err := s.Send(ctx, method, path, body, params)
	if err != nil {
		log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return zero, err
	}
	out, err := api.Unwrap[T](resp, key)
	if err != nil {
		log.Error(ctx, "unwrap failed", "method", method, "path", path, "error", err)
		return zero, err
	}
	return out, nil
}

func send(ctx context.Context, s Sender, log logging.Logger, method, path string, body any, params url.Values) error {
	if _, err := s.Send(ctx, method, path, body, params); err != nil {
		log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return err
	}
	return nil
}

// Params builds a query from page filters, dropping empty values so an
// unset filter means "all".
func Params(filters map[string]string) url.Values {
	keys := make([]string, 0, len(filters))
	for k, v := range filters {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := url.Values{}
	for _, k := range keys {
		out.Set(k, filters[k])
	}
	return out
}
