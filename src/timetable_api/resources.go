package timetable_api

import (
	"context"
	"fmt"
	"net/http"
)

// Identifiable is what a reference-data record must expose for the CRUD
// contract: a zero id means "not created yet".
type Identifiable interface {
	GetId() int64
}

// ResourceService is the uniform client for one reference-data collection.
// Updates are whole-record replacements, never patches.
type ResourceService[E Identifiable] struct {
	client *Client
	path   string
}

func NewResourceService[E Identifiable](client *Client, path string) *ResourceService[E] {
	return &ResourceService[E]{client: client, path: path}
}

func (serv *ResourceService[E]) List(ctx context.Context) ([]E, error) {
	items := []E{}
	if err := serv.client.getJson(ctx, serv.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (serv *ResourceService[E]) Create(ctx context.Context, item *E) error {
	_, err := serv.client.sendJson(ctx, http.MethodPost, serv.path, item)
	return err
}

func (serv *ResourceService[E]) Update(ctx context.Context, item *E) error {
	_, err := serv.client.sendJson(ctx, http.MethodPut, fmt.Sprintf("%s/%d", serv.path, (*item).GetId()), item)
	return err
}

func (serv *ResourceService[E]) Delete(ctx context.Context, id int64) error {
	_, err := serv.client.sendJson(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", serv.path, id), nil)
	return err
}
