package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexcart/storefront-api/internal/config"
	"github.com/nexcart/storefront-api/internal/store"
)

// Handlers holds all dependencies for the HTTP layer.
type Handlers struct {
	DB     *sql.DB
	Log    *zap.Logger
	Config *config.Config

	Products   *store.ProductStore
	Categories *store.CategoryStore
	Brands     *store.BrandStore
	Discounts  *store.DiscountStore
	Customers  *store.CustomerStore
	Users      *store.UserStore
}

// New wires the stores onto one shared connection pool.
func New(db *sql.DB, log *zap.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		DB:         db,
		Log:        log,
		Config:     cfg,
		Products:   store.NewProductStore(db),
		Categories: store.NewCategoryStore(db),
		Brands:     store.NewBrandStore(db),
		Discounts:  store.NewDiscountStore(db),
		Customers:  store.NewCustomerStore(db),
		Users:      store.NewUserStore(db),
	}
}

// orgMail reads the tenant scope resolved by the middleware.
func (h *Handlers) orgMail(c *gin.Context) string {
	return c.GetString("orgMail")
}

// storeError maps domain errors from the store onto HTTP responses.
// Driver errors are logged and reported as 500 without detail.
func (h *Handlers) storeError(c *gin.Context, err error) {
	switch {
	case store.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, store.ErrVariationInUse),
		errors.Is(err, store.ErrSubCategoryInUse),
		errors.Is(err, store.ErrCategoryInUse),
		errors.Is(err, store.ErrBrandInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Log.Error("store error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
