package market

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get returns the public market insight for a category + region.
func (h *Handler) Get(c *gin.Context) {
	category := c.Query("category")
	region := c.Query("region")

	if category == "" || region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and region are required"})
		return
	}

	snapshot, err := h.service.GetSnapshot(c.Request.Context(), category, region)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no market data available"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Recompute is the admin fallback when the worker is not running.
func (h *Handler) Recompute(c *gin.Context) {
	if err := h.service.RecomputeAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "recomputed"})
}
