package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nexcart/storefront-api/internal/models"
)

// DiscountActiveOn reports whether d is active on the given day: status is
// 'active' and the day falls within [Start_Date, End_Date], calendar dates
// inclusive, time-of-day ignored. Unparseable dates count as inactive.
func DiscountActiveOn(d models.Discount, day time.Time) bool {
	if d.Status != "active" {
		return false
	}
	start, err := parseDate(d.StartDate)
	if err != nil {
		return false
	}
	end, err := parseDate(d.EndDate)
	if err != nil {
		return false
	}
	today := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return !today.Before(start) && !today.After(end)
}

// parseDate reads the leading YYYY-MM-DD of a stored date string, ignoring
// any trailing time component.
func parseDate(s string) (time.Time, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

type DiscountStore struct {
	db *sql.DB
}

func NewDiscountStore(db *sql.DB) *DiscountStore {
	return &DiscountStore{db: db}
}

// DiscountInput carries the writable discount fields.
type DiscountInput struct {
	ProductID     int64
	Description   string
	DiscountType  string
	DiscountValue float64
	StartDate     string
	EndDate       string
	Status        string
}

const discountColumns = "idDiscounts, Product_idProduct, Description, Discount_Type, Discount_Value, Start_Date, End_Date, Status, created_at"

func scanDiscounts(rows *sql.Rows) ([]models.Discount, error) {
	discounts := []models.Discount{}
	for rows.Next() {
		var d models.Discount
		var createdAt sql.NullTime
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Description, &d.DiscountType,
			&d.DiscountValue, &d.StartDate, &d.EndDate, &d.Status, &createdAt); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			t := createdAt.Time
			d.CreatedAt = &t
		}
		discounts = append(discounts, d)
	}
	return discounts, rows.Err()
}

// GetAllDiscounts returns every discount in scope with the product name
// and an ordered flag, newest first.
func (s *DiscountStore) GetAllDiscounts(org string) ([]models.Discount, error) {
	query := `
		SELECT d.idDiscounts, d.Product_idProduct, d.Description, d.Discount_Type, d.Discount_Value,
			d.Start_Date, d.End_Date, d.Status, d.created_at,
			p.Description AS ProductName,
			(SELECT COUNT(*) FROM Order_has_Product_Variations ohpv
				WHERE ohpv.Discounts_idDiscounts = d.idDiscounts) > 0 AS hasOrders
		FROM Discounts d
		JOIN Product p ON d.Product_idProduct = p.idProduct AND p.orgmail = ?
		WHERE d.orgmail = ?
		ORDER BY d.created_at DESC`

	rows, err := s.db.Query(query, org, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	discounts := []models.Discount{}
	for rows.Next() {
		var d models.Discount
		var createdAt sql.NullTime
		var productName string
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Description, &d.DiscountType,
			&d.DiscountValue, &d.StartDate, &d.EndDate, &d.Status, &createdAt,
			&productName, &d.HasOrders); err != nil {
			return nil, err
		}
		if createdAt.Valid {
			t := createdAt.Time
			d.CreatedAt = &t
		}
		d.ProductName = &productName
		discounts = append(discounts, d)
	}
	return discounts, rows.Err()
}

// GetDiscountsByProductID returns every discount for a product, active or
// not, newest first.
func (s *DiscountStore) GetDiscountsByProductID(org string, productID int64) ([]models.Discount, error) {
	query := `
		SELECT ` + discountColumns + `
		FROM Discounts
		WHERE Product_idProduct = ? AND orgmail = ?
		ORDER BY created_at DESC`

	rows, err := s.db.Query(query, productID, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDiscounts(rows)
}

// GetActiveDiscountsByProductID filters at the database layer with the
// same window predicate as DiscountActiveOn.
func (s *DiscountStore) GetActiveDiscountsByProductID(org string, productID int64) ([]models.Discount, error) {
	return activeDiscountsByProduct(s.db, org, productID)
}

func activeDiscountsByProduct(q querier, org string, productID int64) ([]models.Discount, error) {
	query := `
		SELECT ` + discountColumns + `
		FROM Discounts
		WHERE Product_idProduct = ?
		AND Status = 'active'
		AND orgmail = ?
		AND CURDATE() BETWEEN STR_TO_DATE(Start_Date, '%Y-%m-%d') AND STR_TO_DATE(End_Date, '%Y-%m-%d')`

	rows, err := q.Query(query, productID, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDiscounts(rows)
}

// GetActiveEventDiscountsByProductID returns active event discounts whose
// event is joined to the product. The Product_Ids JSON column is decoded
// into a string id list.
func (s *DiscountStore) GetActiveEventDiscountsByProductID(org string, productID int64) ([]models.EventDiscount, error) {
	return activeEventDiscountsByProduct(s.db, org, productID)
}

func activeEventDiscountsByProduct(q querier, org string, productID int64) ([]models.EventDiscount, error) {
	query := `
		SELECT ed.idEvent_Discounts, ed.Event_idEvent, ed.Product_Ids, ed.Description,
			ed.Discount_Type, ed.Discount_Value, ed.Start_Date, ed.End_Date, ed.Status
		FROM Event_Discounts ed
		JOIN Event_has_Product ehp
			ON ed.Event_idEvent = ehp.Event_idEvent AND ehp.orgmail = ?
		WHERE ehp.Product_idProduct = ?
			AND ed.Status = 'active'
			AND ed.orgmail = ?
			AND CURDATE() BETWEEN STR_TO_DATE(ed.Start_Date, '%Y-%m-%d') AND STR_TO_DATE(ed.End_Date, '%Y-%m-%d')`

	rows, err := q.Query(query, org, productID, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	discounts := []models.EventDiscount{}
	for rows.Next() {
		var ed models.EventDiscount
		var rawIDs sql.NullString
		if err := rows.Scan(&ed.ID, &ed.EventID, &rawIDs, &ed.Description,
			&ed.DiscountType, &ed.DiscountValue, &ed.StartDate, &ed.EndDate, &ed.Status); err != nil {
			return nil, err
		}
		ed.ProductIDs = decodeProductIDs(rawIDs.String)
		discounts = append(discounts, ed)
	}
	return discounts, rows.Err()
}

// decodeProductIDs parses the JSON-encoded Product_Ids column. Elements
// may be strings or bare numbers; malformed content decodes to empty.
func decodeProductIDs(raw string) []string {
	if raw == "" {
		return []string{}
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var list []any
	if err := dec.Decode(&list); err != nil {
		return []string{}
	}
	ids := make([]string, 0, len(list))
	for _, v := range list {
		switch x := v.(type) {
		case string:
			ids = append(ids, x)
		case json.Number:
			ids = append(ids, x.String())
		default:
			ids = append(ids, fmt.Sprintf("%v", x))
		}
	}
	return ids
}

// GetDiscountByID returns one discount with its product name.
func (s *DiscountStore) GetDiscountByID(org string, id int64) (*models.Discount, error) {
	query := `
		SELECT d.idDiscounts, d.Product_idProduct, d.Description, d.Discount_Type, d.Discount_Value,
			d.Start_Date, d.End_Date, d.Status, d.created_at,
			p.Description AS ProductName
		FROM Discounts d
		JOIN Product p ON d.Product_idProduct = p.idProduct AND p.orgmail = ?
		WHERE d.idDiscounts = ? AND d.orgmail = ?`

	var d models.Discount
	var createdAt sql.NullTime
	var productName string
	err := s.db.QueryRow(query, org, id, org).Scan(&d.ID, &d.ProductID, &d.Description,
		&d.DiscountType, &d.DiscountValue, &d.StartDate, &d.EndDate, &d.Status, &createdAt, &productName)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if createdAt.Valid {
		t := createdAt.Time
		d.CreatedAt = &t
	}
	d.ProductName = &productName
	return &d, nil
}

// CreateDiscount inserts a new discount and returns its id.
func (s *DiscountStore) CreateDiscount(org string, in DiscountInput) (int64, error) {
	if in.Status == "" {
		return 0, requiredField("status")
	}
	query := `
		INSERT INTO Discounts (Product_idProduct, Description, Discount_Type, Discount_Value, Start_Date, End_Date, Status, orgmail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := s.db.Exec(query, in.ProductID, in.Description, in.DiscountType,
		in.DiscountValue, in.StartDate, in.EndDate, in.Status, org)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateDiscount rewrites every writable field of an existing discount.
func (s *DiscountStore) UpdateDiscount(org string, id int64, in DiscountInput) error {
	if in.Status == "" {
		return requiredField("status")
	}
	query := `
		UPDATE Discounts
		SET Product_idProduct = ?, Description = ?, Discount_Type = ?, Discount_Value = ?, Start_Date = ?, End_Date = ?, Status = ?
		WHERE idDiscounts = ? AND orgmail = ?`

	_, err := s.db.Exec(query, in.ProductID, in.Description, in.DiscountType,
		in.DiscountValue, in.StartDate, in.EndDate, in.Status, id, org)
	return err
}

// DeleteDiscount removes a discount. Deleting an absent id is a no-op.
func (s *DiscountStore) DeleteDiscount(org string, id int64) error {
	_, err := s.db.Exec("DELETE FROM Discounts WHERE idDiscounts = ? AND orgmail = ?", id, org)
	return err
}
