package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	inventorydomain "github.com/smallbiznis/stockroom/internal/inventory/domain"
)

type inventoryItemRequest struct {
	Item        string  `json:"item"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Quantity    int64   `json:"quantity"`
	Rate        float64 `json:"rate"`
	Type        string  `json:"type"`
	AddedBy     string  `json:"added_by"`
}

func (r inventoryItemRequest) validate() error {
	if r.Quantity < 0 {
		return newValidationError("quantity", "invalid_quantity", "quantity must not be negative")
	}
	if r.Rate <= 0 {
		return newValidationError("rate", "invalid_rate", "rate must be positive")
	}
	return nil
}

func (r inventoryItemRequest) toDomain() inventorydomain.ItemRequest {
	return inventorydomain.ItemRequest{
		Item:        r.Item,
		Description: r.Description,
		Brand:       r.Brand,
		Quantity:    r.Quantity,
		Rate:        r.Rate,
		Type:        r.Type,
		AddedBy:     r.AddedBy,
	}
}

func (s *Server) ListInventory(c *gin.Context) {
	items, err := s.inventorySvc.ListAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) AddInventoryItem(c *gin.Context) {
	var req inventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if err := req.validate(); err != nil {
		AbortWithError(c, err)
		return
	}

	item, err := s.inventorySvc.AddItem(c.Request.Context(), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": item})
}

func (s *Server) UpdateInventoryItem(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	var req inventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if err := req.validate(); err != nil {
		AbortWithError(c, err)
		return
	}

	err := s.inventorySvc.UpdateItem(c.Request.Context(), inventorydomain.UpdateItemRequest{
		ID:          id,
		ItemRequest: req.toDomain(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) DeleteInventoryItem(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	if err := s.inventorySvc.DeleteItem(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
