package order

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

// --------------------------------------------------
// Buyer checkout
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	buyerID := c.GetString("userID")

	o, err := h.service.Checkout(c.Request.Context(), buyerID)
	if err != nil {
		if err == ErrEmptyCart {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")

	o, err := h.service.GetOrder(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, o)
}

func (h *Handler) ListMine(c *gin.Context) {
	buyerID := c.GetString("userID")

	orders, err := h.service.ListMyOrders(c.Request.Context(), buyerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) ListSales(c *gin.Context) {
	sellerID := c.GetString("userID")

	orders, err := h.service.ListMySales(c.Request.Context(), sellerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// Seller advances status
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	sellerID := c.GetString("userID")

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o, err := h.service.AdvanceStatus(c.Request.Context(), c.Param("id"), sellerID, req.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case ErrInvalidTransition:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}

// --------------------------------------------------
// Buyer cancels
// --------------------------------------------------
func (h *Handler) Cancel(c *gin.Context) {
	buyerID := c.GetString("userID")

	o, err := h.service.Cancel(c.Request.Context(), c.Param("id"), buyerID)
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case ErrInvalidTransition:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}
