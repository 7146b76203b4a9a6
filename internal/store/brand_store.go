package store

import (
	"database/sql"

	"github.com/gosimple/slug"

	"github.com/nexcart/storefront-api/internal/models"
)

// BrandStore wraps queries for the 'Product_Brand' table.
type BrandStore struct {
	db *sql.DB
}

func NewBrandStore(db *sql.DB) *BrandStore {
	return &BrandStore{db: db}
}

// GetBrands returns every brand in scope.
func (s *BrandStore) GetBrands(org string) ([]models.Brand, error) {
	rows, err := s.db.Query(
		"SELECT idProduct_Brand, Brand_Name, Slug, Brand_Image_Url, ShortDescription, User_idUser FROM Product_Brand WHERE orgmail = ?", org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		var b models.Brand
		var image, short sql.NullString
		var userID sql.NullInt64
		if err := rows.Scan(&b.ID, &b.Name, &b.Slug, &image, &short, &userID); err != nil {
			return nil, err
		}
		if image.Valid {
			b.ImageURL = &image.String
		}
		if short.Valid {
			b.ShortDescription = &short.String
		}
		if userID.Valid {
			b.UserID = &userID.Int64
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

// CreateBrand inserts a new brand and returns its id. The slug is derived
// from the name and used for duplicate detection within the tenant.
func (s *BrandStore) CreateBrand(org, name, imageURL, shortDescription string, userID int64) (int64, error) {
	if name == "" {
		return 0, requiredField("brand name")
	}

	brandSlug := slug.Make(name)
	var existingID int64
	err := s.db.QueryRow(
		"SELECT idProduct_Brand FROM Product_Brand WHERE Slug = ? AND orgmail = ?",
		brandSlug, org).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	res, err := s.db.Exec(
		"INSERT INTO Product_Brand (Brand_Name, Slug, Brand_Image_Url, ShortDescription, User_idUser, orgmail) VALUES (?, ?, ?, ?, ?, ?)",
		name, brandSlug, imageURL, shortDescription, userID, org)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateBrand rewrites a brand; the image is kept when no new URL is
// supplied.
func (s *BrandStore) UpdateBrand(org string, brandID int64, name, imageURL, shortDescription string) error {
	if name == "" {
		return requiredField("brand name")
	}

	var exists int64
	err := s.db.QueryRow(
		"SELECT idProduct_Brand FROM Product_Brand WHERE idProduct_Brand = ? AND orgmail = ?",
		brandID, org).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if imageURL != "" {
		_, err = s.db.Exec(
			"UPDATE Product_Brand SET Brand_Name = ?, Slug = ?, Brand_Image_Url = ?, ShortDescription = ? WHERE idProduct_Brand = ? AND orgmail = ?",
			name, slug.Make(name), imageURL, shortDescription, brandID, org)
		return err
	}
	_, err = s.db.Exec(
		"UPDATE Product_Brand SET Brand_Name = ?, Slug = ?, ShortDescription = ? WHERE idProduct_Brand = ? AND orgmail = ?",
		name, slug.Make(name), shortDescription, brandID, org)
	return err
}

// DeleteBrand removes a brand. It fails with ErrBrandInUse while any
// product references it.
func (s *BrandStore) DeleteBrand(org string, brandID int64) error {
	var exists int64
	err := s.db.QueryRow(
		"SELECT idProduct_Brand FROM Product_Brand WHERE idProduct_Brand = ? AND orgmail = ?",
		brandID, org).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var count int
	err = s.db.QueryRow(
		"SELECT COUNT(*) AS count FROM Product WHERE Product_Brand_idProduct_Brand = ? AND orgmail = ?",
		brandID, org).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrBrandInUse
	}

	_, err = s.db.Exec(
		"DELETE FROM Product_Brand WHERE idProduct_Brand = ? AND orgmail = ?",
		brandID, org)
	return err
}
