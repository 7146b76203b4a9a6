package models

import "time"

// Discount is the model for the 'Discounts' table.
// Start_Date and End_Date are stored as 'YYYY-MM-DD' strings; the window
// check is calendar-date inclusive on both ends.
type Discount struct {
	ID            int64   `json:"id" db:"idDiscounts"`
	ProductID     int64   `json:"productId" db:"Product_idProduct"`
	Description   string  `json:"description" db:"Description"`
	DiscountType  string  `json:"discountType" db:"Discount_Type"`
	DiscountValue float64 `json:"discountValue" db:"Discount_Value"`
	StartDate     string  `json:"startDate" db:"Start_Date"`
	EndDate       string  `json:"endDate" db:"End_Date"`
	Status        string  `json:"status" db:"Status"`

	CreatedAt *time.Time `json:"createdAt,omitempty" db:"created_at"`

	// Joined/aggregate fields (admin listing)
	ProductName *string `json:"productName,omitempty" db:"-"`
	HasOrders   bool    `json:"hasOrders" db:"-"`
}

// EventDiscount is the model for the 'Event_Discounts' table.
// Product_Ids is persisted as a JSON-encoded string column; the store
// decodes it into ProductIDs on every read.
type EventDiscount struct {
	ID            int64    `json:"id" db:"idEvent_Discounts"`
	EventID       int64    `json:"eventId" db:"Event_idEvent"`
	ProductIDs    []string `json:"productIds" db:"-"`
	Description   string   `json:"description" db:"Description"`
	DiscountType  string   `json:"discountType" db:"Discount_Type"`
	DiscountValue float64  `json:"discountValue" db:"Discount_Value"`
	StartDate     string   `json:"startDate" db:"Start_Date"`
	EndDate       string   `json:"endDate" db:"End_Date"`
	Status        string   `json:"status" db:"Status"`
}
