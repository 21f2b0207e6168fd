package domain

import (
	"context"

	"github.com/smallbiznis/stockroom/pkg/apperr"
)

// ItemRequest carries the mutable fields of an inventory row.
type ItemRequest struct {
	Item        string
	Description string
	Brand       string
	Quantity    int64
	Rate        float64
	Type        string
	AddedBy     string
}

type UpdateItemRequest struct {
	ID int64
	ItemRequest
}

type Service interface {
	AddItem(context.Context, ItemRequest) (Item, error)
	UpdateItem(context.Context, UpdateItemRequest) error
	DeleteItem(context.Context, int64) error
	ListAll(context.Context) ([]Item, error)
	// FindByName returns the first row (lowest id) carrying the given name.
	FindByName(context.Context, string) (Item, error)
}

var (
	ErrInvalidID = apperr.Validation("invalid_id")
	ErrNotFound  = apperr.NotFound("not_found")
)
