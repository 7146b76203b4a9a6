package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nexcart/storefront-api/internal/store"
)

// --- Boundary payloads ---
// The admin form submits products as multipart form data: scalar fields
// as form fields, file uploads for the main and sub images, and
// JSON-stringified arrays for variations, faqs and subCategoryIds. All
// of that is decoded here; the store only ever sees typed values.

type variationPayload struct {
	ID        int64  `json:"id"`
	ColorCode string `json:"colorCode"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type faqPayload struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// parseSubCategoryIDs accepts either raw ids ([3,4] or ["3"]) or objects
// carrying an id field ([{"idSub_Category":3}] / [{"id":3}]).
func parseSubCategoryIDs(raw string) ([]int64, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(entries))
	for _, entry := range entries {
		var n int64
		if err := json.Unmarshal(entry, &n); err == nil {
			ids = append(ids, n)
			continue
		}
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
			continue
		}
		var obj struct {
			SubCategoryID int64 `json:"idSub_Category"`
			ID            int64 `json:"id"`
		}
		if err := json.Unmarshal(entry, &obj); err != nil {
			return nil, err
		}
		if obj.SubCategoryID != 0 {
			ids = append(ids, obj.SubCategoryID)
		} else {
			ids = append(ids, obj.ID)
		}
	}
	return ids, nil
}

func parseVariations(raw string) ([]store.VariationInput, error) {
	var payload []variationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}
	variations := make([]store.VariationInput, 0, len(payload))
	for _, v := range payload {
		variations = append(variations, store.VariationInput{
			ID:       v.ID,
			Colour:   v.ColorCode,
			Size:     v.Size,
			Quantity: v.Quantity,
		})
	}
	return variations, nil
}

func parseFAQs(raw string) ([]store.FAQInput, error) {
	var payload []faqPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}
	faqs := make([]store.FAQInput, 0, len(payload))
	for _, f := range payload {
		faqs = append(faqs, store.FAQInput{ID: f.ID, Question: f.Question, Answer: f.Answer})
	}
	return faqs, nil
}

// productInputFromForm reads the scalar product fields from the multipart
// form. The main image is either a fresh upload or the previous URL
// echoed back in the mainImageUrl field.
func (h *Handlers) productInputFromForm(c *gin.Context) (store.ProductInput, error) {
	in := store.ProductInput{
		Description:     c.PostForm("description"),
		LongDescription: c.PostForm("longDescription"),
		MainImageURL:    c.PostForm("mainImageUrl"),
	}

	if v := c.PostForm("brandId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return in, err
		}
		in.BrandID = &id
	}
	in.MarketPrice, _ = strconv.ParseFloat(c.PostForm("marketPrice"), 64)
	in.SellingPrice, _ = strconv.ParseFloat(c.PostForm("sellingPrice"), 64)
	in.SIH, _ = strconv.Atoi(c.PostForm("sih"))
	in.SeasonalOffer = formBool(c.PostForm("seasonalOffer"))
	in.RushDelivery = formBool(c.PostForm("rushDelivery"))
	in.ForYou = formBool(c.PostForm("forYou"))

	if file, err := c.FormFile("mainImage"); err == nil {
		url, err := h.saveUpload(c, file)
		if err != nil {
			return in, err
		}
		in.MainImageURL = url
	}
	return in, nil
}

func formBool(v string) bool {
	return v == "1" || v == "true" || v == "on"
}

// subImageURLs saves every uploaded sub image and returns their URLs.
func (h *Handlers) subImageURLs(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	urls := []string{}
	for _, file := range form.File["subImages"] {
		url, err := h.saveUpload(c, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// CreateProduct is the handler for POST /api/admin/products.
func (h *Handlers) CreateProduct(c *gin.Context) {
	in, err := h.productInputFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	images, err := h.subImageURLs(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	var variations []store.VariationInput
	if raw := c.PostForm("variations"); raw != "" {
		if variations, err = parseVariations(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variations payload"})
			return
		}
	}
	var faqs []store.FAQInput
	if raw := c.PostForm("faqs"); raw != "" {
		if faqs, err = parseFAQs(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid faqs payload"})
			return
		}
	}
	var subCategoryIDs []int64
	if raw := c.PostForm("subCategoryIds"); raw != "" {
		if subCategoryIDs, err = parseSubCategoryIDs(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subCategoryIds payload"})
			return
		}
	}

	productID, err := h.Products.CreateProduct(h.orgMail(c), in, images, variations, faqs, subCategoryIDs)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "productId": productID})
}

// UpdateProduct is the handler for PUT /api/admin/products/:id.
// Child collections are optional: an absent form field leaves that
// collection untouched.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	in, err := h.productInputFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var assoc store.ProductAssociations

	if raw := c.PostForm("deletedImages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &assoc.DeletedImages); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deletedImages payload"})
			return
		}
	}

	// A replacement image set is the kept URLs echoed back in the images
	// field plus any newly uploaded files.
	var kept []string
	imagesSupplied := false
	if raw := c.PostForm("images"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &kept); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid images payload"})
			return
		}
		imagesSupplied = true
	}
	uploaded, err := h.subImageURLs(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}
	if imagesSupplied || len(uploaded) > 0 {
		assoc.Images = append(kept, uploaded...)
	}

	if raw := c.PostForm("variations"); raw != "" {
		if assoc.Variations, err = parseVariations(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variations payload"})
			return
		}
	}
	if raw := c.PostForm("faqs"); raw != "" {
		if assoc.FAQs, err = parseFAQs(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid faqs payload"})
			return
		}
	}
	if raw := c.PostForm("subCategoryIds"); raw != "" {
		if assoc.SubCategoryIDs, err = parseSubCategoryIDs(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subCategoryIds payload"})
			return
		}
	}

	if err := h.Products.UpdateProduct(h.orgMail(c), productID, in, assoc); err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct is the handler for DELETE /api/admin/products/:id.
func (h *Handlers) DeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := h.Products.DeleteProduct(h.orgMail(c), productID); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GetAllProducts is the handler for GET /api/products.
func (h *Handlers) GetAllProducts(c *gin.Context) {
	products, err := h.Products.GetAllProducts(h.orgMail(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct is the handler for GET /api/products/:id. It returns the
// full aggregate: product, brand fields, images, variations, faqs,
// subcategories and currently-active discounts.
func (h *Handlers) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.Products.GetProductByID(h.orgMail(c), productID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetProductsBySubCategory is the handler for GET /api/products/subcategory/:id.
func (h *Handlers) GetProductsBySubCategory(c *gin.Context) {
	subCategoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory id"})
		return
	}

	products, err := h.Products.GetProductsBySubCategory(h.orgMail(c), subCategoryID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProductsByBrand is the handler for GET /api/products/brand/:id.
func (h *Handlers) GetProductsByBrand(c *gin.Context) {
	brandID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand id"})
		return
	}

	products, err := h.Products.GetProductsByBrand(h.orgMail(c), brandID)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetDiscountedProducts is the handler for GET /api/products/discounted.
func (h *Handlers) GetDiscountedProducts(c *gin.Context) {
	products, err := h.Products.GetDiscountedProducts(h.orgMail(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

// ToggleProductStatus is the handler for PATCH /api/admin/products/:id/status.
func (h *Handlers) ToggleProductStatus(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Products.ToggleProductStatus(h.orgMail(c), productID, input.Status); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product status updated"})
}

// ToggleProductHistoryStatus is the handler for
// PATCH /api/admin/products/:id/history-status.
func (h *Handlers) ToggleProductHistoryStatus(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Products.ToggleProductHistoryStatus(h.orgMail(c), productID, input.Status); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product history status updated"})
}
