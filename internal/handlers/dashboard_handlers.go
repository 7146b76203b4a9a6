package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetProductCount is the handler for GET /api/admin/dashboard/product-count.
func (h *Handlers) GetProductCount(c *gin.Context) {
	count, err := h.Products.GetProductCount(h.orgMail(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetTopSellingProducts is the handler for GET /api/admin/dashboard/top-products.
func (h *Handlers) GetTopSellingProducts(c *gin.Context) {
	products, err := h.Products.GetTopSellingProducts(h.orgMail(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetTopSellingCategories is the handler for GET /api/admin/dashboard/top-categories.
func (h *Handlers) GetTopSellingCategories(c *gin.Context) {
	categories, err := h.Categories.GetTopSellingCategories(h.orgMail(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetProductSoldQty is the handler for GET /api/admin/products/:id/sold-qty.
func (h *Handlers) GetProductSoldQty(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	sold, err := h.Products.GetProductSoldQty(h.orgMail(c), productID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sold)
}

// GetProductSalesInfo is the handler for GET /api/admin/products/:id/sales-info.
// Totals cover paid orders from the last 30 days, bucketed by week.
func (h *Handlers) GetProductSalesInfo(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	info, err := h.Products.GetProductSalesInfo(h.orgMail(c), productID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
