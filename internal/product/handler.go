package product

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

type productRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	Stock        int     `json:"stock"`
	Region       string  `json:"region"`
}

// --------------------------------------------------
// Seller creates a product
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	sellerID := c.GetString("userID")

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.service.CreateProduct(c.Request.Context(), sellerID, &Product{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Stock:        req.Stock,
		Region:       req.Region,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// --------------------------------------------------
// Seller updates a product
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	sellerID := c.GetString("userID")
	productID := c.Param("id")

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.service.UpdateProduct(c.Request.Context(), productID, sellerID, &Product{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		Stock:        req.Stock,
		Region:       req.Region,
	})
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case ErrUnauthorized:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

// --------------------------------------------------
// Seller archives a product
// --------------------------------------------------
func (h *Handler) Archive(c *gin.Context) {
	sellerID := c.GetString("userID")
	productID := c.Param("id")

	if err := h.service.ArchiveProduct(c.Request.Context(), productID, sellerID); err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case ErrUnauthorized:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": StatusArchived})
}

// --------------------------------------------------
// Public catalog
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	products, err := h.service.ListProducts(
		c.Request.Context(),
		c.Query("category"),
		c.Query("region"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) ListMine(c *gin.Context) {
	sellerID := c.GetString("userID")

	products, err := h.service.ListMyProducts(c.Request.Context(), sellerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// --------------------------------------------------
// Seller uploads a product image
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	sellerID := c.GetString("userID")
	productID := c.Param("id")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(
		c.Request.Context(),
		productID,
		sellerID,
		file,
		header.Filename,
	)
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case ErrUnauthorized:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}
