package models

import "time"

// Customer is the model for the 'Customer' table.
// Password is bcrypt-hashed at rest and never serialized.
type Customer struct {
	ID        int64   `json:"id" db:"idCustomer"`
	FirstName *string `json:"firstName,omitempty" db:"First_Name"`
	FullName  string  `json:"fullName" db:"Full_Name"`
	Birthday  *string `json:"birthday,omitempty" db:"Birthday"`
	Email     string  `json:"email" db:"Email"`
	MobileNo  *string `json:"mobileNo,omitempty" db:"Mobile_No"`
	Address   *string `json:"address,omitempty" db:"Address"`
	City      *string `json:"city,omitempty" db:"City"`
	Country   *string `json:"country,omitempty" db:"Country"`
	Status    string  `json:"status" db:"Status"`

	PasswordHash string `json:"-" db:"Password"`

	CreatedAt *time.Time `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
}
