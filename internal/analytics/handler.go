package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Per-product statistics
// --------------------------------------------------

func (h *Handler) MovingAverage(c *gin.Context) {
	window, err := strconv.Atoi(c.DefaultQuery("window", "7"))
	if err != nil || window < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "window must be a positive integer"})
		return
	}

	values, err := h.service.MovingAverage(c.Request.Context(), c.Param("id"), window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load price history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"window": window, "moving_average": values})
}

func (h *Handler) Volatility(c *gin.Context) {
	value, err := h.service.Volatility(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load price history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"volatility": value})
}

func (h *Handler) Trend(c *gin.Context) {
	result, err := h.service.Trend(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load price history"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) Anomalies(c *gin.Context) {
	threshold, err := strconv.ParseFloat(c.DefaultQuery("threshold", "2"), 64)
	if err != nil || threshold <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be a positive number"})
		return
	}

	points, err := h.service.Anomalies(c.Request.Context(), c.Param("id"), threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load price history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"threshold": threshold, "anomalies": points})
}

func (h *Handler) Seasonal(c *gin.Context) {
	indices, err := h.service.Seasonal(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load price history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"seasonal_indices": indices})
}

func (h *Handler) Forecast(c *gin.Context) {
	alpha, err := strconv.ParseFloat(c.DefaultQuery("alpha", "0.3"), 64)
	if err != nil || alpha <= 0 || alpha > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alpha must be in (0, 1]"})
		return
	}

	periods, err := strconv.Atoi(c.DefaultQuery("periods", "3"))
	if err != nil || periods < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "periods must be a positive integer"})
		return
	}

	values, err := h.service.ForecastProduct(c.Request.Context(), c.Param("id"), alpha, periods)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load price history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alpha": alpha, "periods": periods, "forecast": values})
}

// --------------------------------------------------
// Cross-product / market statistics
// --------------------------------------------------

func (h *Handler) Elasticity(c *gin.Context) {
	productA := c.Query("product_a")
	productB := c.Query("product_b")
	if productA == "" || productB == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_a and product_b are required"})
		return
	}

	value, err := h.service.Elasticity(c.Request.Context(), productA, productB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load price history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"elasticity": value})
}

func (h *Handler) Concentration(c *gin.Context) {
	category := c.Query("category")
	region := c.Query("region")
	if category == "" || region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and region are required"})
		return
	}

	result, err := h.service.Concentration(c.Request.Context(), category, region)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load sales data"})
		return
	}

	c.JSON(http.StatusOK, result)
}
