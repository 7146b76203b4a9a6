package store

import (
	"database/sql"
	"time"

	"github.com/nexcart/storefront-api/internal/models"
)

// ProductStore wraps every query for the product aggregate: the parent
// row plus its images, variations, faqs, subcategory links and discounts.
type ProductStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

// ProductInput carries the writable scalar fields of a product.
type ProductInput struct {
	Description     string
	BrandID         *int64
	MarketPrice     float64
	SellingPrice    float64
	MainImageURL    string
	LongDescription string
	SIH             int
	SeasonalOffer   bool
	RushDelivery    bool
	ForYou          bool
}

// VariationInput is one incoming variation row. ID != 0 updates an
// existing row in place; ID == 0 inserts a new row.
type VariationInput struct {
	ID       int64
	Colour   string
	Size     string
	Quantity int
}

// FAQInput is one incoming FAQ row, same id convention as VariationInput.
type FAQInput struct {
	ID       int64
	Question string
	Answer   string
}

// ProductAssociations holds the optional child collections of an update.
// A nil slice means "collection not supplied, leave it untouched"; an
// empty non-nil slice is a full clear.
type ProductAssociations struct {
	Images         []string
	DeletedImages  []string
	Variations     []VariationInput
	FAQs           []FAQInput
	SubCategoryIDs []int64
}

const productSelect = `
	SELECT P.idProduct, P.Description, P.Product_Brand_idProduct_Brand, P.Market_Price, P.Selling_Price,
		P.Main_Image_Url, P.Long_Description, P.SIH, P.Seasonal_Offer, P.Rush_Delivery, P.For_You,
		P.Sold_Qty, P.Status, P.History_Status,
		B.Brand_Name, B.Brand_Image_Url, B.ShortDescription`

// scanProduct reads one product row from a query built on productSelect.
func scanProduct(rows interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	var brandID sql.NullInt64
	var mainImage, longDesc, status, historyStatus sql.NullString
	var brandName, brandImage, brandShort sql.NullString

	err := rows.Scan(&p.ID, &p.Description, &brandID, &p.MarketPrice, &p.SellingPrice,
		&mainImage, &longDesc, &p.SIH, &p.SeasonalOffer, &p.RushDelivery, &p.ForYou,
		&p.SoldQty, &status, &historyStatus,
		&brandName, &brandImage, &brandShort)
	if err != nil {
		return nil, err
	}
	if brandID.Valid {
		p.BrandID = &brandID.Int64
	}
	p.MainImageURL = mainImage.String
	p.LongDescription = longDesc.String
	p.Status = status.String
	if historyStatus.Valid {
		p.HistoryStatus = &historyStatus.String
	}
	if brandName.Valid {
		p.BrandName = &brandName.String
	}
	if brandImage.Valid {
		p.BrandImageURL = &brandImage.String
	}
	if brandShort.Valid {
		p.BrandShortDescription = &brandShort.String
	}
	return &p, nil
}

// GetProductByID returns the full aggregate: product row joined with
// brand fields, plus images, variations (annotated with whether they have
// ever been ordered), faqs, subcategories and currently-active discounts.
func (s *ProductStore) GetProductByID(org string, productID int64) (*models.Product, error) {
	query := productSelect + `
	FROM Product P
	LEFT JOIN Product_Brand B
		ON P.Product_Brand_idProduct_Brand = B.idProduct_Brand AND B.orgmail = ?
	WHERE P.idProduct = ? AND P.orgmail = ?`

	p, err := scanProduct(s.db.QueryRow(query, org, productID, org))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.attachChildren(p, org); err != nil {
		return nil, err
	}
	return p, nil
}

// attachChildren loads every child collection of the aggregate. Reads are
// independent queries; no transaction is needed for assembly.
func (s *ProductStore) attachChildren(p *models.Product, org string) error {
	var err error
	if p.Images, err = fetchImages(s.db, org, p.ID); err != nil {
		return err
	}
	if p.Variations, err = fetchVariations(s.db, org, p.ID); err != nil {
		return err
	}
	if p.FAQs, err = fetchFAQs(s.db, org, p.ID); err != nil {
		return err
	}
	if p.SubCategories, err = fetchSubCategories(s.db, org, p.ID); err != nil {
		return err
	}
	if p.Discounts, err = activeDiscountsByProduct(s.db, org, p.ID); err != nil {
		return err
	}
	if p.EventDiscounts, err = activeEventDiscountsByProduct(s.db, org, p.ID); err != nil {
		return err
	}
	return nil
}

func fetchImages(q querier, org string, productID int64) ([]models.ProductImage, error) {
	rows, err := q.Query(
		"SELECT idProduct_Images, Product_idProduct, Image_Url FROM Product_Images WHERE Product_idProduct = ? AND orgmail = ?",
		productID, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []models.ProductImage{}
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func fetchVariations(q querier, org string, productID int64) ([]models.ProductVariation, error) {
	query := `
		SELECT PV.idProduct_Variations, PV.Product_idProduct, PV.Colour, PV.Size, PV.Qty, PV.SIH,
			(SELECT COUNT(*) FROM Order_has_Product_Variations ohpv
				WHERE ohpv.Product_Variations_idProduct_Variations = PV.idProduct_Variations) > 0 AS hasOrders
		FROM Product_Variations PV
		WHERE PV.Product_idProduct = ? AND PV.orgmail = ?`

	rows, err := q.Query(query, productID, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variations := []models.ProductVariation{}
	for rows.Next() {
		var v models.ProductVariation
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Colour, &v.Size, &v.Qty, &v.SIH, &v.HasOrders); err != nil {
			return nil, err
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

func fetchFAQs(q querier, org string, productID int64) ([]models.FAQ, error) {
	rows, err := q.Query(
		"SELECT idFAQ, Product_idProduct, Question, Answer FROM FAQ WHERE Product_idProduct = ? AND orgmail = ?",
		productID, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := []models.FAQ{}
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.ProductID, &f.Question, &f.Answer); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

func fetchSubCategories(q querier, org string, productID int64) ([]models.SubCategory, error) {
	query := `
		SELECT SC.idSub_Category, SC.Product_Category_idProduct_Category, SC.Description
		FROM Sub_Category SC
		JOIN Product_has_Sub_Category PS
			ON SC.idSub_Category = PS.Sub_Category_idSub_Category AND PS.orgmail = ?
		WHERE PS.Product_idProduct = ? AND SC.orgmail = ?`

	rows, err := q.Query(query, org, productID, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subcats := []models.SubCategory{}
	for rows.Next() {
		var sc models.SubCategory
		if err := rows.Scan(&sc.ID, &sc.CategoryID, &sc.Description); err != nil {
			return nil, err
		}
		subcats = append(subcats, sc)
	}
	return subcats, rows.Err()
}

// GetAllProducts returns every product in scope with brand fields and
// order/cart linkage flags, children attached.
func (s *ProductStore) GetAllProducts(org string) ([]*models.Product, error) {
	query := `
		SELECT P.idProduct, P.Description, P.Product_Brand_idProduct_Brand, P.Market_Price, P.Selling_Price,
			P.Main_Image_Url, P.Long_Description, P.SIH, P.Seasonal_Offer, P.Rush_Delivery, P.For_You,
			P.Sold_Qty, P.Status, P.History_Status,
			B.Brand_Name, B.Brand_Image_Url, B.ShortDescription,
			(SELECT COUNT(*) FROM Order_has_Product_Variations ohpv
				JOIN Product_Variations pv ON ohpv.Product_Variations_idProduct_Variations = pv.idProduct_Variations
				WHERE pv.Product_idProduct = P.idProduct AND pv.orgmail = ?) > 0 AS hasOrders,
			(SELECT COUNT(*) FROM Cart_has_Product chp
				JOIN Product_Variations pv ON chp.Product_Variations_idProduct_Variations = pv.idProduct_Variations
				WHERE pv.Product_idProduct = P.idProduct AND pv.orgmail = ?) > 0 AS hasCart
		FROM Product P
		LEFT JOIN Product_Brand B
			ON P.Product_Brand_idProduct_Brand = B.idProduct_Brand AND B.orgmail = ?
		WHERE P.orgmail = ?`

	rows, err := s.db.Query(query, org, org, org, org)
	if err != nil {
		return nil, err
	}

	products := []*models.Product{}
	for rows.Next() {
		var p models.Product
		var brandID sql.NullInt64
		var mainImage, longDesc, status, historyStatus sql.NullString
		var brandName, brandImage, brandShort sql.NullString
		if err := rows.Scan(&p.ID, &p.Description, &brandID, &p.MarketPrice, &p.SellingPrice,
			&mainImage, &longDesc, &p.SIH, &p.SeasonalOffer, &p.RushDelivery, &p.ForYou,
			&p.SoldQty, &status, &historyStatus,
			&brandName, &brandImage, &brandShort,
			&p.HasOrders, &p.HasCart); err != nil {
			rows.Close()
			return nil, err
		}
		if brandID.Valid {
			p.BrandID = &brandID.Int64
		}
		p.MainImageURL = mainImage.String
		p.LongDescription = longDesc.String
		p.Status = status.String
		if historyStatus.Valid {
			p.HistoryStatus = &historyStatus.String
		}
		if brandName.Valid {
			p.BrandName = &brandName.String
		}
		if brandImage.Valid {
			p.BrandImageURL = &brandImage.String
		}
		if brandShort.Valid {
			p.BrandShortDescription = &brandShort.String
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for _, p := range products {
		if err := s.attachChildren(p, org); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// GetProductsBySubCategory lists products linked to one subcategory, with
// images and active discounts attached.
func (s *ProductStore) GetProductsBySubCategory(org string, subCategoryID int64) ([]*models.Product, error) {
	query := productSelect + `
	FROM Product P
	JOIN Product_has_Sub_Category PS ON P.idProduct = PS.Product_idProduct AND PS.orgmail = ?
	LEFT JOIN Product_Brand B
		ON P.Product_Brand_idProduct_Brand = B.idProduct_Brand AND B.orgmail = ?
	WHERE PS.Sub_Category_idSub_Category = ? AND P.orgmail = ?`

	return s.listWithImagesAndDiscounts(query, org, org, org, subCategoryID, org)
}

// GetProductsByBrand lists products of one brand, with images and active
// discounts attached.
func (s *ProductStore) GetProductsByBrand(org string, brandID int64) ([]*models.Product, error) {
	query := productSelect + `
	FROM Product P
	JOIN Product_Brand B
		ON P.Product_Brand_idProduct_Brand = B.idProduct_Brand AND B.orgmail = ?
	WHERE P.Product_Brand_idProduct_Brand = ? AND P.orgmail = ?`

	return s.listWithImagesAndDiscounts(query, org, org, brandID, org)
}

func (s *ProductStore) listWithImagesAndDiscounts(query, org string, args ...any) ([]*models.Product, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}

	products := []*models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for _, p := range products {
		if p.Images, err = fetchImages(s.db, org, p.ID); err != nil {
			return nil, err
		}
		if p.Discounts, err = activeDiscountsByProduct(s.db, org, p.ID); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// GetDiscountedProducts returns the full aggregate of every product with
// at least one active discount. The database filters the product set; the
// discount list carried on each product is then re-filtered in Go with
// DiscountActiveOn, so both evaluation paths stay in agreement.
func (s *ProductStore) GetDiscountedProducts(org string) ([]*models.Product, error) {
	query := `
		SELECT DISTINCT P.idProduct
		FROM Product P
		JOIN Discounts D ON P.idProduct = D.Product_idProduct AND D.orgmail = ?
		WHERE D.Status = 'active'
		AND CURDATE() BETWEEN STR_TO_DATE(D.Start_Date, '%Y-%m-%d') AND STR_TO_DATE(D.End_Date, '%Y-%m-%d')
		AND P.orgmail = ?`

	rows, err := s.db.Query(query, org, org)
	if err != nil {
		return nil, err
	}
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	today := time.Now()
	products := []*models.Product{}
	for _, id := range ids {
		p, err := s.GetProductByID(org, id)
		if err != nil {
			return nil, err
		}

		all, err := fetchAllDiscounts(s.db, org, id)
		if err != nil {
			return nil, err
		}
		active := []models.Discount{}
		for _, d := range all {
			if DiscountActiveOn(d, today) {
				active = append(active, d)
			}
		}
		p.Discounts = active
		products = append(products, p)
	}
	return products, nil
}

func fetchAllDiscounts(q querier, org string, productID int64) ([]models.Discount, error) {
	query := `
		SELECT ` + discountColumns + `
		FROM Discounts
		WHERE Product_idProduct = ? AND orgmail = ?
		ORDER BY created_at DESC`

	rows, err := q.Query(query, productID, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDiscounts(rows)
}

// CreateProduct inserts the parent row and every supplied child row in a
// single transaction and returns the new product id.
func (s *ProductStore) CreateProduct(org string, in ProductInput, images []string, variations []VariationInput, faqs []FAQInput, subCategoryIDs []int64) (int64, error) {
	if in.Description == "" {
		return 0, requiredField("product description")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO Product
			(Description, Product_Brand_idProduct_Brand, Market_Price, Selling_Price, Main_Image_Url, Long_Description, SIH, Seasonal_Offer, Rush_Delivery, For_You, orgmail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Description, in.BrandID, in.MarketPrice, in.SellingPrice, in.MainImageURL,
		in.LongDescription, in.SIH, in.SeasonalOffer, in.RushDelivery, in.ForYou, org)
	if err != nil {
		return 0, err
	}
	productID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, url := range images {
		if err := insertImage(tx, org, productID, url); err != nil {
			return 0, err
		}
	}
	for _, v := range variations {
		if err := insertVariation(tx, org, productID, v); err != nil {
			return 0, err
		}
	}
	for _, f := range faqs {
		if err := insertFAQ(tx, org, productID, f); err != nil {
			return 0, err
		}
	}
	for _, scID := range subCategoryIDs {
		if err := insertSubCategoryLink(tx, org, productID, scID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return productID, nil
}

func insertImage(q querier, org string, productID int64, url string) error {
	_, err := q.Exec(
		"INSERT INTO Product_Images (Product_idProduct, Image_Url, orgmail) VALUES (?, ?, ?)",
		productID, url, org)
	return err
}

// insertVariation writes Qty into both Qty and SIH: a fresh variation's
// stock-on-hand equals its quantity.
func insertVariation(q querier, org string, productID int64, v VariationInput) error {
	_, err := q.Exec(
		"INSERT INTO Product_Variations (Product_idProduct, Colour, Size, Qty, SIH, orgmail) VALUES (?, ?, ?, ?, ?, ?)",
		productID, v.Colour, v.Size, v.Quantity, v.Quantity, org)
	return err
}

func insertFAQ(q querier, org string, productID int64, f FAQInput) error {
	_, err := q.Exec(
		"INSERT INTO FAQ (Question, Answer, Product_idProduct, orgmail) VALUES (?, ?, ?, ?)",
		f.Question, f.Answer, productID, org)
	return err
}

func insertSubCategoryLink(q querier, org string, productID, subCategoryID int64) error {
	_, err := q.Exec(
		"INSERT INTO Product_has_Sub_Category (Product_idProduct, Sub_Category_idSub_Category, orgmail) VALUES (?, ?, ?)",
		productID, subCategoryID, org)
	return err
}

// UpdateProduct applies the scalar update and reconciles each supplied
// child collection, all inside one transaction. A nil collection in assoc
// is left untouched.
func (s *ProductStore) UpdateProduct(org string, productID int64, in ProductInput, assoc ProductAssociations) error {
	if in.Description == "" {
		return requiredField("product description")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE Product
		SET Description = ?, Product_Brand_idProduct_Brand = ?, Market_Price = ?, Selling_Price = ?, Main_Image_Url = ?, Long_Description = ?, SIH = ?, Seasonal_Offer = ?, Rush_Delivery = ?, For_You = ?
		WHERE idProduct = ? AND orgmail = ?`,
		in.Description, in.BrandID, in.MarketPrice, in.SellingPrice, in.MainImageURL,
		in.LongDescription, in.SIH, in.SeasonalOffer, in.RushDelivery, in.ForYou, productID, org)
	if err != nil {
		return err
	}

	// Images: targeted deletes first, then a full replace when a new set
	// is supplied. Both may occur in the same call.
	if len(assoc.DeletedImages) > 0 {
		query := "DELETE FROM Product_Images WHERE Product_idProduct = ? AND Image_Url IN (" +
			placeholders(len(assoc.DeletedImages)) + ") AND orgmail = ?"
		args := append([]any{productID}, idStrings(assoc.DeletedImages)...)
		args = append(args, org)
		if _, err := tx.Exec(query, args...); err != nil {
			return err
		}
	}
	if assoc.Images != nil {
		if _, err := tx.Exec("DELETE FROM Product_Images WHERE Product_idProduct = ? AND orgmail = ?", productID, org); err != nil {
			return err
		}
		for _, url := range assoc.Images {
			if err := insertImage(tx, org, productID, url); err != nil {
				return err
			}
		}
	}

	if assoc.Variations != nil {
		if err := reconcileVariations(tx, org, productID, assoc.Variations); err != nil {
			return err
		}
	}

	if assoc.FAQs != nil {
		if err := reconcileFAQs(tx, org, productID, assoc.FAQs); err != nil {
			return err
		}
	}

	// Subcategories are always a full replace; replaying the same id list
	// leaves the association set unchanged.
	if assoc.SubCategoryIDs != nil {
		if _, err := tx.Exec("DELETE FROM Product_has_Sub_Category WHERE Product_idProduct = ? AND orgmail = ?", productID, org); err != nil {
			return err
		}
		for _, scID := range assoc.SubCategoryIDs {
			if err := insertSubCategoryLink(tx, org, productID, scID); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func idStrings(ss []string) []any {
	args := make([]any, len(ss))
	for i, s := range ss {
		args[i] = s
	}
	return args
}

// reconcileVariations diffs the incoming list against the existing rows.
// Existing ids absent from the incoming list are deleted, but only after
// every candidate passes the order-history guard: one in-use id aborts
// the whole reconciliation before any delete runs.
func reconcileVariations(tx *sql.Tx, org string, productID int64, incoming []VariationInput) error {
	existing, err := childIDs(tx,
		"SELECT idProduct_Variations FROM Product_Variations WHERE Product_idProduct = ? AND orgmail = ?",
		productID, org)
	if err != nil {
		return err
	}

	var incomingIDs []int64
	for _, v := range incoming {
		if v.ID != 0 {
			incomingIDs = append(incomingIDs, v.ID)
		}
	}

	toDelete := diffIDs(existing, incomingIDs)
	for _, id := range toDelete {
		var count int
		err := tx.QueryRow(
			"SELECT COUNT(*) FROM Order_has_Product_Variations WHERE Product_Variations_idProduct_Variations = ? AND orgmail = ?",
			id, org).Scan(&count)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrVariationInUse
		}
	}
	if len(toDelete) > 0 {
		query := "DELETE FROM Product_Variations WHERE idProduct_Variations IN (" +
			placeholders(len(toDelete)) + ") AND orgmail = ?"
		if _, err := tx.Exec(query, idArgs(toDelete, org)...); err != nil {
			return err
		}
	}

	for _, v := range incoming {
		if v.ID != 0 {
			_, err := tx.Exec(
				"UPDATE Product_Variations SET Colour = ?, Size = ?, Qty = ?, SIH = ? WHERE idProduct_Variations = ? AND orgmail = ?",
				v.Colour, v.Size, v.Quantity, v.Quantity, v.ID, org)
			if err != nil {
				return err
			}
		} else {
			if err := insertVariation(tx, org, productID, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// reconcileFAQs runs the same diff as reconcileVariations but with no
// in-use guard: superseded FAQ rows are always safe to delete.
func reconcileFAQs(tx *sql.Tx, org string, productID int64, incoming []FAQInput) error {
	existing, err := childIDs(tx,
		"SELECT idFAQ FROM FAQ WHERE Product_idProduct = ? AND orgmail = ?",
		productID, org)
	if err != nil {
		return err
	}

	var incomingIDs []int64
	for _, f := range incoming {
		if f.ID != 0 {
			incomingIDs = append(incomingIDs, f.ID)
		}
	}

	toDelete := diffIDs(existing, incomingIDs)
	if len(toDelete) > 0 {
		query := "DELETE FROM FAQ WHERE idFAQ IN (" + placeholders(len(toDelete)) + ") AND orgmail = ?"
		if _, err := tx.Exec(query, idArgs(toDelete, org)...); err != nil {
			return err
		}
	}

	for _, f := range incoming {
		if f.ID != 0 {
			_, err := tx.Exec(
				"UPDATE FAQ SET Question = ?, Answer = ? WHERE idFAQ = ? AND orgmail = ?",
				f.Question, f.Answer, f.ID, org)
			if err != nil {
				return err
			}
		} else {
			if err := insertFAQ(tx, org, productID, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func childIDs(q querier, query string, args ...any) ([]int64, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteProduct removes the product and every dependent row in an order
// that respects foreign keys: cart rows for its variations, order history
// and line rows for any order containing it, the orders themselves, then
// the owned children, then the product. Every step tolerates zero
// matches, and the whole sequence is one transaction.
func (s *ProductStore) DeleteProduct(org string, productID int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM Cart_has_Product
		WHERE Product_Variations_idProduct_Variations IN (
			SELECT idProduct_Variations FROM Product_Variations WHERE Product_idProduct = ?
		)`, productID)
	if err != nil {
		return err
	}

	orderIDs, err := childIDs(tx, `
		SELECT DISTINCT ohpv.Order_idOrder
		FROM Order_has_Product_Variations ohpv
		JOIN Product_Variations pv ON ohpv.Product_Variations_idProduct_Variations = pv.idProduct_Variations
		WHERE pv.Product_idProduct = ?`, productID)
	if err != nil {
		return err
	}

	if len(orderIDs) > 0 {
		in := placeholders(len(orderIDs))
		if _, err := tx.Exec("DELETE FROM Order_History WHERE order_id IN ("+in+")", idArgs(orderIDs)...); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM Order_has_Product_Variations WHERE Order_idOrder IN ("+in+")", idArgs(orderIDs)...); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM `Order` WHERE idOrder IN ("+in+")", idArgs(orderIDs)...); err != nil {
			return err
		}
	}

	steps := []string{
		"DELETE FROM Product_has_Sub_Category WHERE Product_idProduct = ? AND orgmail = ?",
		"DELETE FROM Product_Images WHERE Product_idProduct = ? AND orgmail = ?",
		"DELETE FROM Product_Variations WHERE Product_idProduct = ? AND orgmail = ?",
		"DELETE FROM FAQ WHERE Product_idProduct = ? AND orgmail = ?",
		"DELETE FROM Discounts WHERE Product_idProduct = ? AND orgmail = ?",
		"DELETE FROM Event_has_Product WHERE Product_idProduct = ? AND orgmail = ?",
		"DELETE FROM Product WHERE idProduct = ? AND orgmail = ?",
	}
	for _, step := range steps {
		if _, err := tx.Exec(step, productID, org); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ToggleProductStatus sets the product status (e.g. enabled/disabled).
func (s *ProductStore) ToggleProductStatus(org string, productID int64, status string) error {
	if status == "" {
		return requiredField("status")
	}
	_, err := s.db.Exec(
		"UPDATE Product SET Status = ? WHERE idProduct = ? AND orgmail = ?",
		status, productID, org)
	return err
}

// ToggleProductHistoryStatus sets the history status used by the admin
// timeline view.
func (s *ProductStore) ToggleProductHistoryStatus(org string, productID int64, historyStatus string) error {
	if historyStatus == "" {
		return requiredField("history status")
	}
	_, err := s.db.Exec(
		"UPDATE Product SET History_Status = ? WHERE idProduct = ? AND orgmail = ?",
		historyStatus, productID, org)
	return err
}

// GetProductCount returns the number of products in scope.
func (s *ProductStore) GetProductCount(org string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) AS totalProducts FROM Product WHERE orgmail = ?", org).Scan(&count)
	return count, err
}

// GetTopSellingProducts returns the five best sellers with sales.
func (s *ProductStore) GetTopSellingProducts(org string) ([]*models.Product, error) {
	query := `
		SELECT idProduct, Description, Sold_Qty, Main_Image_Url, Selling_Price, Market_Price
		FROM Product
		WHERE Sold_Qty > 0 AND orgmail = ?
		ORDER BY Sold_Qty DESC
		LIMIT 5`

	rows, err := s.db.Query(query, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		var p models.Product
		var mainImage sql.NullString
		if err := rows.Scan(&p.ID, &p.Description, &p.SoldQty, &mainImage, &p.SellingPrice, &p.MarketPrice); err != nil {
			return nil, err
		}
		p.MainImageURL = mainImage.String
		products = append(products, &p)
	}
	return products, rows.Err()
}

// GetProductSoldQty returns the sold quantity of one product.
func (s *ProductStore) GetProductSoldQty(org string, productID int64) (*models.ProductSoldQty, error) {
	var p models.ProductSoldQty
	err := s.db.QueryRow(
		"SELECT idProduct, Description, Sold_Qty FROM Product WHERE idProduct = ? AND orgmail = ?",
		productID, org).Scan(&p.ID, &p.Description, &p.SoldQty)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProductSalesInfo aggregates paid-order sales for the last 30 days,
// totals plus weekly buckets.
func (s *ProductStore) GetProductSalesInfo(org string, productID int64) (*models.ProductSalesInfo, error) {
	info := &models.ProductSalesInfo{WeeklySales: []models.WeeklySales{}}

	var units, revenue sql.NullFloat64
	err := s.db.QueryRow(`
		SELECT SUM(ohpv.Qty) AS totalUnitsSoldLast30Days, SUM(ohpv.Total_Amount) AS totalRevenueLast30Days
		FROM Order_has_Product_Variations ohpv
		JOIN `+"`Order`"+` o ON ohpv.Order_idOrder = o.idOrder AND o.orgmail = ?
		JOIN Product_Variations pv ON ohpv.Product_Variations_idProduct_Variations = pv.idProduct_Variations AND pv.orgmail = ?
		WHERE pv.Product_idProduct = ?
		AND o.Date_Time >= DATE_SUB(CURDATE(), INTERVAL 30 DAY)
		AND o.Payment_Stats = 'paid'`,
		org, org, productID).Scan(&units, &revenue)
	if err != nil {
		return nil, err
	}
	info.TotalUnitsSoldLast30Days = int(units.Float64)
	info.TotalRevenueLast30Days = revenue.Float64

	rows, err := s.db.Query(`
		SELECT DATE_FORMAT(o.Date_Time, '%Y-%u') AS week, SUM(ohpv.Qty) AS unitsSold, SUM(ohpv.Total_Amount) AS revenue
		FROM Order_has_Product_Variations ohpv
		JOIN `+"`Order`"+` o ON ohpv.Order_idOrder = o.idOrder AND o.orgmail = ?
		JOIN Product_Variations pv ON ohpv.Product_Variations_idProduct_Variations = pv.idProduct_Variations AND pv.orgmail = ?
		WHERE pv.Product_idProduct = ?
		AND o.Date_Time >= DATE_SUB(CURDATE(), INTERVAL 30 DAY)
		AND o.Payment_Stats = 'paid'
		GROUP BY week
		ORDER BY week`,
		org, org, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var w models.WeeklySales
		if err := rows.Scan(&w.Week, &w.UnitsSold, &w.Revenue); err != nil {
			return nil, err
		}
		info.WeeklySales = append(info.WeeklySales, w)
	}
	return info, rows.Err()
}
