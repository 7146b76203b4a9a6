package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetBrands is the handler for GET /api/brands.
func (h *Handlers) GetBrands(c *gin.Context) {
	brands, err := h.Brands.GetBrands(h.orgMail(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

// CreateBrand is the handler for POST /api/admin/brands. Brands are
// deduplicated by slug: posting an existing name returns the stored
// brand's id instead of inserting a twin.
func (h *Handlers) CreateBrand(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	shortDescription := c.PostForm("shortDescription")

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.saveUpload(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		imageURL = url
	}

	userID := c.GetInt64("userID")
	id, err := h.Brands.CreateBrand(h.orgMail(c), name, imageURL, shortDescription, userID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Brand created", "brandId": id})
}

// UpdateBrand is the handler for PUT /api/admin/brands/:id. A missing
// image upload keeps the stored one.
func (h *Handlers) UpdateBrand(c *gin.Context) {
	brandID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand id"})
		return
	}

	name := c.PostForm("name")
	shortDescription := c.PostForm("shortDescription")

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.saveUpload(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		imageURL = url
	}

	if err := h.Brands.UpdateBrand(h.orgMail(c), brandID, name, imageURL, shortDescription); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand updated successfully"})
}

// DeleteBrand is the handler for DELETE /api/admin/brands/:id. Fails
// with 409 while products still reference the brand.
func (h *Handlers) DeleteBrand(c *gin.Context) {
	brandID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand id"})
		return
	}

	if err := h.Brands.DeleteBrand(h.orgMail(c), brandID); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}
