package review

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

type createRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// --------------------------------------------------
// Buyer reviews a delivered product
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	buyerID := c.GetString("userID")
	productID := c.Param("id")

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	review, err := h.service.CreateReview(
		c.Request.Context(),
		buyerID,
		productID,
		req.Rating,
		req.Comment,
	)
	if err != nil {
		switch err {
		case ErrNotPurchased:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case ErrAlreadyExists:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

// --------------------------------------------------
// Public review list
// --------------------------------------------------
func (h *Handler) ListForProduct(c *gin.Context) {
	summary, err := h.service.GetProductReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
