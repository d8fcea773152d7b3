package pricing

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

// GetSuggestion is seller-only; ownership is enforced in the service.
func (h *Handler) GetSuggestion(c *gin.Context) {
	sellerID := c.GetString("userID")
	productID := c.Param("id")

	suggestion, err := h.service.GetSuggestion(c.Request.Context(), productID, sellerID)
	if err != nil {
		switch err {
		case ErrUnauthorized:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case ErrNoMarketData:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, suggestion)
}
