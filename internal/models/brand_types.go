package models

// Brand defines the struct for the 'Product_Brand' table.
type Brand struct {
	ID               int64   `json:"id" db:"idProduct_Brand"`
	Name             string  `json:"name" db:"Brand_Name"`
	Slug             string  `json:"slug" db:"Slug"`
	ImageURL         *string `json:"imageUrl,omitempty" db:"Brand_Image_Url"`
	ShortDescription *string `json:"shortDescription,omitempty" db:"ShortDescription"`
	UserID           *int64  `json:"userId,omitempty" db:"User_idUser"`
}
