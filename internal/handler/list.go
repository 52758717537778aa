package handler

import (
	"log"
	"net/http"
	"strings"

	"cartsense/internal/model"
	"cartsense/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListHandler handles direct shopping-list HTTP requests, bypassing the
// natural-language pipeline.
type ListHandler struct {
	store repository.Store
}

// NewListHandler creates a new list handler
func NewListHandler(store repository.Store) *ListHandler {
	return &ListHandler{store: store}
}

// Get handles GET /api/v1/list
func (h *ListHandler) Get(c *gin.Context) {
	items, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read list: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// Add handles POST /api/v1/list/items
func (h *ListHandler) Add(c *gin.Context) {
	var req model.ListAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	item, err := h.store.AddOrIncrement(c.Request.Context(), req.Name, req.Quantity, req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item: " + err.Error()})
		return
	}
	if err := h.store.RecordAdd(c.Request.Context(), item.Name); err != nil {
		// History is advisory; the add itself succeeded.
		log.Printf("list: failed to record add event for %q: %v", item.Name, err)
	}

	c.JSON(http.StatusOK, item)
}

// Remove handles DELETE /api/v1/list/items/:name
func (h *ListHandler) Remove(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item name is required"})
		return
	}

	removed, err := h.store.Remove(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item: " + err.Error()})
		return
	}
	if removed == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found: " + name})
		return
	}

	c.JSON(http.StatusOK, removed)
}
