package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nexcart/storefront-api/internal/store"
)

type discountInput struct {
	ProductID     int64   `json:"productId" binding:"required"`
	Description   string  `json:"description"`
	DiscountType  string  `json:"discountType" binding:"required"`
	DiscountValue float64 `json:"discountValue" binding:"required"`
	StartDate     string  `json:"startDate" binding:"required"`
	EndDate       string  `json:"endDate" binding:"required"`
	Status        string  `json:"status"`
}

func (in discountInput) toStore() store.DiscountInput {
	status := in.Status
	if status == "" {
		status = "active"
	}
	return store.DiscountInput{
		ProductID:     in.ProductID,
		Description:   in.Description,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Status:        status,
	}
}

// GetAllDiscounts is the handler for GET /api/admin/discounts. Rows are
// joined with the product name for the admin table.
func (h *Handlers) GetAllDiscounts(c *gin.Context) {
	discounts, err := h.Discounts.GetAllDiscounts(h.orgMail(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"discounts": discounts})
}

// GetDiscountsByProduct is the handler for
// GET /api/admin/products/:id/discounts. The admin edit view needs every
// discount of the product, active or not.
func (h *Handlers) GetDiscountsByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	discounts, err := h.Discounts.GetDiscountsByProductID(h.orgMail(c), productID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"discounts": discounts})
}

// GetActiveDiscountsByProduct is the handler for
// GET /api/products/:id/discounts. Only windows covering today are
// returned.
func (h *Handlers) GetActiveDiscountsByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	discounts, err := h.Discounts.GetActiveDiscountsByProductID(h.orgMail(c), productID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"discounts": discounts})
}

// GetDiscount is the handler for GET /api/admin/discounts/:id.
func (h *Handlers) GetDiscount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount id"})
		return
	}

	discount, err := h.Discounts.GetDiscountByID(h.orgMail(c), id)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"discount": discount})
}

// CreateDiscount is the handler for POST /api/admin/discounts.
func (h *Handlers) CreateDiscount(c *gin.Context) {
	var input discountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Discounts.CreateDiscount(h.orgMail(c), input.toStore())
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Discount created", "discountId": id})
}

// UpdateDiscount is the handler for PUT /api/admin/discounts/:id.
func (h *Handlers) UpdateDiscount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount id"})
		return
	}

	var input discountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Discounts.UpdateDiscount(h.orgMail(c), id, input.toStore()); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discount updated successfully"})
}

// DeleteDiscount is the handler for DELETE /api/admin/discounts/:id.
func (h *Handlers) DeleteDiscount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount id"})
		return
	}

	if err := h.Discounts.DeleteDiscount(h.orgMail(c), id); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discount deleted successfully"})
}
