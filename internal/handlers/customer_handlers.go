package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexcart/storefront-api/internal/auth"
	"github.com/nexcart/storefront-api/internal/store"
)

type customerLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CustomerLogin is the handler for POST /api/auth/customer-login. The
// tenant comes from the storefront's X-Org-Mail header, so the same email
// can exist independently under different shops.
func (h *Handlers) CustomerLogin(c *gin.Context) {
	var input customerLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.Customers.GetCustomerByEmail(h.orgMail(c), input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.storeError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(customer.ID, h.orgMail(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "customer": customer})
}

// GetAllCustomers is the handler for GET /api/admin/customers. Password
// hashes never leave the store.
func (h *Handlers) GetAllCustomers(c *gin.Context) {
	customers, err := h.Customers.GetAllCustomers(h.orgMail(c))
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// GetCustomer is the handler for GET /api/admin/customers/:id.
func (h *Handlers) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	customer, err := h.Customers.GetCustomerByID(h.orgMail(c), id)
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

type customerInput struct {
	FirstName string `json:"firstName" binding:"required"`
	FullName  string `json:"fullName" binding:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	MobileNo  string `json:"mobileNo"`
	Status    string `json:"status"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

// AddCustomer is the handler for POST /api/admin/customers.
func (h *Handlers) AddCustomer(c *gin.Context) {
	var input customerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = "active"
	}

	id, err := h.Customers.AddCustomer(h.orgMail(c), store.CustomerInput{
		FirstName: input.FirstName,
		FullName:  input.FullName,
		Address:   input.Address,
		City:      input.City,
		Country:   input.Country,
		MobileNo:  input.MobileNo,
		Status:    status,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customer created", "customerId": id})
}

type customerUpdateInput struct {
	FirstName *string `json:"firstName"`
	FullName  *string `json:"fullName"`
	Birthday  *string `json:"birthday"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
	MobileNo  *string `json:"mobileNo"`
	Status    *string `json:"status"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// UpdateCustomer is the handler for PUT /api/admin/customers/:id. Only
// the fields present in the body change; a new password is re-hashed.
func (h *Handlers) UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	var input customerUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := store.CustomerUpdate{
		FirstName: input.FirstName,
		FullName:  input.FullName,
		Birthday:  input.Birthday,
		Address:   input.Address,
		City:      input.City,
		Country:   input.Country,
		MobileNo:  input.MobileNo,
		Status:    input.Status,
		Email:     input.Email,
		Password:  input.Password,
	}

	if err := h.Customers.UpdateCustomer(h.orgMail(c), id, update); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully"})
}

// DeleteCustomer is the handler for DELETE /api/admin/customers/:id.
func (h *Handlers) DeleteCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	if err := h.Customers.DeleteCustomer(h.orgMail(c), id); err != nil {
		h.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
