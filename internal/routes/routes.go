package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexcart/storefront-api/internal/handlers"
	"github.com/nexcart/storefront-api/internal/middleware"
)

// CORSMiddleware lets the configured frontend origin call the API with
// credentials. Preflight OPTIONS requests are answered here.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Org-Mail")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every endpoint. Public storefront routes resolve
// their tenant from the X-Org-Mail header; admin routes require a
// bearer token and inherit the tenant from its claims.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware(h.Config.CORSOrigin))

	router.Static("/uploads", h.Config.UploadDir)

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		api.POST("/auth/login", h.Login)

		// --- Storefront Routes (Public, tenant via header) ---
		public := api.Group("/")
		public.Use(middleware.TenantMiddleware(h.Config.DefaultOrg))
		{
			public.POST("/auth/customer-login", h.CustomerLogin)
			public.GET("/products", h.GetAllProducts)
			public.GET("/products/discounted", h.GetDiscountedProducts)
			public.GET("/products/:id", h.GetProduct)
			public.GET("/products/:id/discounts", h.GetActiveDiscountsByProduct)
			public.GET("/products/subcategory/:id", h.GetProductsBySubCategory)
			public.GET("/products/brand/:id", h.GetProductsByBrand)
			public.GET("/categories", h.GetAllCategories)
			public.GET("/brands", h.GetBrands)
		}

		// --- Admin Routes (Protected) ---
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		{
			admin.GET("/me", h.Me)

			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)
			admin.PATCH("/products/:id/status", h.ToggleProductStatus)
			admin.PATCH("/products/:id/history-status", h.ToggleProductHistoryStatus)
			admin.GET("/products/:id/discounts", h.GetDiscountsByProduct)
			admin.GET("/products/:id/sold-qty", h.GetProductSoldQty)
			admin.GET("/products/:id/sales-info", h.GetProductSalesInfo)

			admin.POST("/categories", h.CreateCategory)
			admin.PUT("/categories/:id", h.UpdateCategory)
			admin.PATCH("/categories/:id/status", h.ToggleCategoryStatus)
			admin.DELETE("/categories/:id", h.DeleteCategory)
			admin.POST("/categories/:id/subcategories", h.CreateSubCategory)
			admin.PUT("/categories/:id/subcategories/:subId", h.UpdateSubCategory)
			admin.DELETE("/subcategories/:id", h.DeleteSubCategory)

			admin.POST("/brands", h.CreateBrand)
			admin.PUT("/brands/:id", h.UpdateBrand)
			admin.DELETE("/brands/:id", h.DeleteBrand)

			admin.GET("/discounts", h.GetAllDiscounts)
			admin.GET("/discounts/:id", h.GetDiscount)
			admin.POST("/discounts", h.CreateDiscount)
			admin.PUT("/discounts/:id", h.UpdateDiscount)
			admin.DELETE("/discounts/:id", h.DeleteDiscount)

			admin.GET("/customers", h.GetAllCustomers)
			admin.GET("/customers/:id", h.GetCustomer)
			admin.POST("/customers", h.AddCustomer)
			admin.PUT("/customers/:id", h.UpdateCustomer)
			admin.DELETE("/customers/:id", h.DeleteCustomer)

			admin.GET("/users", h.GetAllUsers)
			admin.POST("/users", h.CreateUser)
			admin.DELETE("/users/:id", h.DeleteUser)

			admin.POST("/upload", h.UploadImage)

			admin.GET("/dashboard/product-count", h.GetProductCount)
			admin.GET("/dashboard/top-products", h.GetTopSellingProducts)
			admin.GET("/dashboard/top-categories", h.GetTopSellingCategories)
		}
	}

	return router
}
