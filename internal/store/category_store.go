package store

import (
	"database/sql"

	"github.com/nexcart/storefront-api/internal/models"
)

// CategoryStore wraps queries for product categories and their
// subcategories, including the referential-integrity guards.
type CategoryStore struct {
	db *sql.DB
}

func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// GetAllCategories returns every category in scope with its subcategories
// nested.
func (s *CategoryStore) GetAllCategories(org string) ([]models.Category, error) {
	rows, err := s.db.Query(
		"SELECT idProduct_Category, Description, Image_Icon_Url, Status FROM Product_Category WHERE orgmail = ?", org)
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		var icon, status sql.NullString
		if err := rows.Scan(&c.ID, &c.Description, &icon, &status); err != nil {
			rows.Close()
			return nil, err
		}
		if icon.Valid {
			c.ImageIconURL = &icon.String
		}
		if status.Valid {
			c.Status = &status.String
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range categories {
		subs, err := s.subCategoriesOf(org, categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].SubCategories = subs
	}
	return categories, nil
}

func (s *CategoryStore) subCategoriesOf(org string, categoryID int64) ([]models.SubCategory, error) {
	rows, err := s.db.Query(
		"SELECT idSub_Category, Product_Category_idProduct_Category, Description FROM Sub_Category WHERE Product_Category_idProduct_Category = ? AND orgmail = ?",
		categoryID, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []models.SubCategory{}
	for rows.Next() {
		var sc models.SubCategory
		if err := rows.Scan(&sc.ID, &sc.CategoryID, &sc.Description); err != nil {
			return nil, err
		}
		subs = append(subs, sc)
	}
	return subs, rows.Err()
}

// GetTopSellingCategories returns the six categories with the highest
// summed sold quantity across their products.
func (s *CategoryStore) GetTopSellingCategories(org string) ([]models.TopCategory, error) {
	query := `
		SELECT
			pc.idProduct_Category,
			pc.Description AS Category_Name,
			pc.Image_Icon_Url,
			pc.Description AS Category_Description,
			COALESCE(SUM(p.Sold_Qty), 0) AS Total_Sold_Qty
		FROM Product_Category pc
		LEFT JOIN Sub_Category sc ON pc.idProduct_Category = sc.Product_Category_idProduct_Category AND sc.orgmail = ?
		LEFT JOIN Product_has_Sub_Category phsc ON sc.idSub_Category = phsc.Sub_Category_idSub_Category AND phsc.orgmail = ?
		LEFT JOIN Product p ON phsc.Product_idProduct = p.idProduct AND p.orgmail = ?
		WHERE pc.orgmail = ?
		GROUP BY pc.idProduct_Category, pc.Description, pc.Image_Icon_Url
		ORDER BY Total_Sold_Qty DESC
		LIMIT 6`

	rows, err := s.db.Query(query, org, org, org, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.TopCategory{}
	for rows.Next() {
		var tc models.TopCategory
		var icon sql.NullString
		if err := rows.Scan(&tc.ID, &tc.Name, &icon, &tc.Description, &tc.TotalSoldQty); err != nil {
			return nil, err
		}
		if icon.Valid {
			tc.ImageIconURL = &icon.String
		}
		categories = append(categories, tc)
	}
	return categories, rows.Err()
}

// CreateCategory inserts a new category and returns its id.
func (s *CategoryStore) CreateCategory(org, description, imageURL string) (int64, error) {
	if description == "" {
		return 0, requiredField("category description")
	}
	res, err := s.db.Exec(
		"INSERT INTO Product_Category (Description, Image_Icon_Url, orgmail) VALUES (?, ?, ?)",
		description, imageURL, org)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateCategory rewrites the description; the icon is only replaced when
// a new URL is supplied.
func (s *CategoryStore) UpdateCategory(org string, categoryID int64, description, imageURL string) error {
	if description == "" {
		return requiredField("category description")
	}
	if imageURL != "" {
		_, err := s.db.Exec(
			"UPDATE Product_Category SET Description = ?, Image_Icon_Url = ? WHERE idProduct_Category = ? AND orgmail = ?",
			description, imageURL, categoryID, org)
		return err
	}
	_, err := s.db.Exec(
		"UPDATE Product_Category SET Description = ? WHERE idProduct_Category = ? AND orgmail = ?",
		description, categoryID, org)
	return err
}

// ToggleCategoryStatus sets the status column for a category.
func (s *CategoryStore) ToggleCategoryStatus(org string, categoryID int64, status string) error {
	if status == "" {
		return requiredField("status")
	}
	_, err := s.db.Exec(
		"UPDATE Product_Category SET Status = ? WHERE idProduct_Category = ? AND orgmail = ?",
		status, categoryID, org)
	return err
}

// DeleteCategory removes a category and its subcategories. It fails with
// ErrCategoryInUse while any of its subcategories is linked to a product.
func (s *CategoryStore) DeleteCategory(org string, categoryID int64) error {
	subIDs, err := childIDs(s.db,
		"SELECT idSub_Category FROM Sub_Category WHERE Product_Category_idProduct_Category = ? AND orgmail = ?",
		categoryID, org)
	if err != nil {
		return err
	}

	for _, subID := range subIDs {
		inUse, err := s.SubCategoryInUse(org, subID)
		if err != nil {
			return err
		}
		if inUse {
			return ErrCategoryInUse
		}
	}

	if _, err := s.db.Exec(
		"DELETE FROM Sub_Category WHERE Product_Category_idProduct_Category = ? AND orgmail = ?",
		categoryID, org); err != nil {
		return err
	}
	_, err = s.db.Exec(
		"DELETE FROM Product_Category WHERE idProduct_Category = ? AND orgmail = ?",
		categoryID, org)
	return err
}

// CreateSubCategory inserts a subcategory under an existing category.
func (s *CategoryStore) CreateSubCategory(org string, categoryID int64, description string) (int64, error) {
	if description == "" {
		return 0, requiredField("subcategory description")
	}

	var exists int64
	err := s.db.QueryRow(
		"SELECT idProduct_Category FROM Product_Category WHERE idProduct_Category = ? AND orgmail = ?",
		categoryID, org).Scan(&exists)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		"INSERT INTO Sub_Category (Description, Product_Category_idProduct_Category, orgmail) VALUES (?, ?, ?)",
		description, categoryID, org)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateSubCategory rewrites a subcategory's description after checking
// that both the category and the subcategory exist in scope.
func (s *CategoryStore) UpdateSubCategory(org string, categoryID, subCategoryID int64, description string) error {
	if description == "" {
		return requiredField("subcategory description")
	}

	var exists int64
	err := s.db.QueryRow(
		"SELECT idProduct_Category FROM Product_Category WHERE idProduct_Category = ? AND orgmail = ?",
		categoryID, org).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	err = s.db.QueryRow(
		"SELECT idSub_Category FROM Sub_Category WHERE idSub_Category = ? AND Product_Category_idProduct_Category = ? AND orgmail = ?",
		subCategoryID, categoryID, org).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		"UPDATE Sub_Category SET Description = ? WHERE idSub_Category = ? AND orgmail = ?",
		description, subCategoryID, org)
	return err
}

// SubCategoryInUse reports whether any product is linked to the
// subcategory.
func (s *CategoryStore) SubCategoryInUse(org string, subCategoryID int64) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) AS count FROM Product_has_Sub_Category WHERE Sub_Category_idSub_Category = ? AND orgmail = ?",
		subCategoryID, org).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteSubCategory removes a subcategory and its product links. It fails
// with ErrSubCategoryInUse while any product association exists.
func (s *CategoryStore) DeleteSubCategory(org string, subCategoryID int64) error {
	inUse, err := s.SubCategoryInUse(org, subCategoryID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrSubCategoryInUse
	}

	if _, err := s.db.Exec(
		"DELETE FROM Product_has_Sub_Category WHERE Sub_Category_idSub_Category = ? AND orgmail = ?",
		subCategoryID, org); err != nil {
		return err
	}
	_, err = s.db.Exec(
		"DELETE FROM Sub_Category WHERE idSub_Category = ? AND orgmail = ?",
		subCategoryID, org)
	return err
}
