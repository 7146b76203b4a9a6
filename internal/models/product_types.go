package models

// Product is the model for the 'Product' table.
// Joined and child data (brand fields, images, variations, faqs,
// subcategories, discounts) is populated manually by the store layer.
type Product struct {
	ID              int64   `json:"id" db:"idProduct"`
	Description     string  `json:"description" db:"Description"`
	BrandID         *int64  `json:"brandId,omitempty" db:"Product_Brand_idProduct_Brand"`
	MarketPrice     float64 `json:"marketPrice" db:"Market_Price"`
	SellingPrice    float64 `json:"sellingPrice" db:"Selling_Price"`
	MainImageURL    string  `json:"mainImageUrl" db:"Main_Image_Url"`
	LongDescription string  `json:"longDescription" db:"Long_Description"`
	SIH             int     `json:"sih" db:"SIH"` // Stock In Hand
	SeasonalOffer   bool    `json:"seasonalOffer" db:"Seasonal_Offer"`
	RushDelivery    bool    `json:"rushDelivery" db:"Rush_Delivery"`
	ForYou          bool    `json:"forYou" db:"For_You"`
	SoldQty         int     `json:"soldQty" db:"Sold_Qty"`
	Status          string  `json:"status" db:"Status"`
	HistoryStatus   *string `json:"historyStatus,omitempty" db:"History_Status"`

	// --- Joined brand fields (LEFT JOIN Product_Brand) ---
	BrandName             *string `json:"brandName,omitempty" db:"-"`
	BrandImageURL         *string `json:"brandImageUrl,omitempty" db:"-"`
	BrandShortDescription *string `json:"brandShortDescription,omitempty" db:"-"`

	// --- Aggregate flags (subqueries over order/cart linkage) ---
	HasOrders bool `json:"hasOrders" db:"-"`
	HasCart   bool `json:"hasCart" db:"-"`

	// --- Children (populated manually, never scanned directly) ---
	Images         []ProductImage     `json:"images" db:"-"`
	Variations     []ProductVariation `json:"variations" db:"-"`
	FAQs           []FAQ              `json:"faqs" db:"-"`
	SubCategories  []SubCategory      `json:"subcategories" db:"-"`
	Discounts      []Discount         `json:"discounts" db:"-"`
	EventDiscounts []EventDiscount    `json:"eventDiscounts" db:"-"`
}

// ProductImage is the model for the 'Product_Images' table.
type ProductImage struct {
	ID        int64  `json:"id" db:"idProduct_Images"`
	ProductID int64  `json:"productId" db:"Product_idProduct"`
	ImageURL  string `json:"imageUrl" db:"Image_Url"`
}

// ProductVariation is the model for the 'Product_Variations' table.
// HasOrders is an annotation computed against order line items; a
// variation with HasOrders=true may never be deleted.
type ProductVariation struct {
	ID        int64  `json:"id" db:"idProduct_Variations"`
	ProductID int64  `json:"productId" db:"Product_idProduct"`
	Colour    string `json:"colour" db:"Colour"`
	Size      string `json:"size" db:"Size"`
	Qty       int    `json:"qty" db:"Qty"`
	SIH       int    `json:"sih" db:"SIH"`
	HasOrders bool   `json:"hasOrders" db:"-"`
}

// FAQ is the model for the 'FAQ' table.
type FAQ struct {
	ID        int64  `json:"id" db:"idFAQ"`
	ProductID int64  `json:"productId" db:"Product_idProduct"`
	Question  string `json:"question" db:"Question"`
	Answer    string `json:"answer" db:"Answer"`
}

// ProductSoldQty is the slim projection returned by the sold-quantity lookup.
type ProductSoldQty struct {
	ID          int64  `json:"id" db:"idProduct"`
	Description string `json:"description" db:"Description"`
	SoldQty     int    `json:"soldQty" db:"Sold_Qty"`
}

// WeeklySales is one bucket of the 30-day sales breakdown.
type WeeklySales struct {
	Week      string  `json:"week"`
	UnitsSold int     `json:"unitsSold"`
	Revenue   float64 `json:"revenue"`
}

// ProductSalesInfo aggregates recent paid-order sales for one product.
type ProductSalesInfo struct {
	TotalUnitsSoldLast30Days int           `json:"totalUnitsSoldLast30Days"`
	TotalRevenueLast30Days   float64       `json:"totalRevenueLast30Days"`
	WeeklySales              []WeeklySales `json:"weeklySales"`
}
