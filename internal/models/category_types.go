package models

// Category defines the struct for the 'Product_Category' table.
type Category struct {
	ID           int64   `json:"id" db:"idProduct_Category"`
	Description  string  `json:"description" db:"Description"`
	ImageIconURL *string `json:"imageIconUrl,omitempty" db:"Image_Icon_Url"`
	Status       *string `json:"status,omitempty" db:"Status"`

	// Populated manually when listing categories
	SubCategories []SubCategory `json:"subcategories" db:"-"`
}

// SubCategory defines the struct for the 'Sub_Category' table (N:1 Category).
type SubCategory struct {
	ID          int64  `json:"id" db:"idSub_Category"`
	CategoryID  int64  `json:"categoryId" db:"Product_Category_idProduct_Category"`
	Description string `json:"description" db:"Description"`
}

// TopCategory is the projection returned by the top-selling category report.
type TopCategory struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ImageIconURL *string `json:"imageIconUrl,omitempty"`
	Description  string  `json:"description"`
	TotalSoldQty int     `json:"totalSoldQty"`
}
