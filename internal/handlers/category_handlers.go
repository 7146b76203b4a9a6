package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetAllCategories is the handler for GET /api/categories. Each category
// carries its subcategories nested.
func (h *Handlers) GetAllCategories(c *gin.Context) {
	categories, err := h.Categories.GetAllCategories(h.orgMail(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategory is the handler for POST /api/admin/categories. The icon
// is an optional file upload.
func (h *Handlers) CreateCategory(c *gin.Context) {
	description := c.PostForm("description")
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required"})
		return
	}

	imageURL := ""
	if file, err := c.FormFile("icon"); err == nil {
		url, err := h.saveUpload(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		imageURL = url
	}

	id, err := h.Categories.CreateCategory(h.orgMail(c), description, imageURL)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "categoryId": id})
}

// UpdateCategory is the handler for PUT /api/admin/categories/:id. A
// missing icon upload keeps the stored one.
func (h *Handlers) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	description := c.PostForm("description")
	imageURL := ""
	if file, err := c.FormFile("icon"); err == nil {
		url, err := h.saveUpload(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}
		imageURL = url
	}

	if err := h.Categories.UpdateCategory(h.orgMail(c), categoryID, description, imageURL); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// ToggleCategoryStatus is the handler for PATCH /api/admin/categories/:id/status.
func (h *Handlers) ToggleCategoryStatus(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Categories.ToggleCategoryStatus(h.orgMail(c), categoryID, input.Status); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category status updated"})
}

// DeleteCategory is the handler for DELETE /api/admin/categories/:id.
// Fails with 409 when any subcategory still has products linked.
func (h *Handlers) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	if err := h.Categories.DeleteCategory(h.orgMail(c), categoryID); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

type subCategoryInput struct {
	Description string `json:"description" binding:"required"`
}

// CreateSubCategory is the handler for POST /api/admin/categories/:id/subcategories.
func (h *Handlers) CreateSubCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}

	var input subCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Categories.CreateSubCategory(h.orgMail(c), categoryID, input.Description)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Subcategory created", "subCategoryId": id})
}

// UpdateSubCategory is the handler for
// PUT /api/admin/categories/:id/subcategories/:subId.
func (h *Handlers) UpdateSubCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
		return
	}
	subCategoryID, err := strconv.ParseInt(c.Param("subId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory id"})
		return
	}

	var input subCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Categories.UpdateSubCategory(h.orgMail(c), categoryID, subCategoryID, input.Description); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory updated successfully"})
}

// DeleteSubCategory is the handler for
// DELETE /api/admin/subcategories/:id. Fails with 409 while products
// are still linked.
func (h *Handlers) DeleteSubCategory(c *gin.Context) {
	subCategoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory id"})
		return
	}

	if err := h.Categories.DeleteSubCategory(h.orgMail(c), subCategoryID); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}
