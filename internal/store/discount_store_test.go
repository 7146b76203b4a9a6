package store

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexcart/storefront-api/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDiscountActiveOn(t *testing.T) {
	base := models.Discount{
		Status:    "active",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-10",
	}

	tests := []struct {
		name   string
		mutate func(*models.Discount)
		day    time.Time
		want   bool
	}{
		{"inside window", nil, day("2026-03-05"), true},
		{"first day inclusive", nil, day("2026-03-01"), true},
		{"last day inclusive", nil, day("2026-03-10"), true},
		{"day before start", nil, day("2026-02-28"), false},
		{"day after end", nil, day("2026-03-11"), false},
		{"single day window", func(d *models.Discount) {
			d.StartDate, d.EndDate = "2026-03-05", "2026-03-05"
		}, day("2026-03-05"), true},
		{"inactive status", func(d *models.Discount) {
			d.Status = "inactive"
		}, day("2026-03-05"), false},
		{"datetime stored dates", func(d *models.Discount) {
			d.StartDate = "2026-03-01 00:00:00"
			d.EndDate = "2026-03-10 23:59:59"
		}, day("2026-03-10"), true},
		{"malformed start date", func(d *models.Discount) {
			d.StartDate = "march first"
		}, day("2026-03-05"), false},
		{"time of day ignored", nil, day("2026-03-10").Add(23 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			if tt.mutate != nil {
				tt.mutate(&d)
			}
			assert.Equal(t, tt.want, DiscountActiveOn(d, tt.day))
		})
	}
}

func TestDecodeProductIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"string elements", `["1","2","3"]`, []string{"1", "2", "3"}},
		{"numeric elements", `[1,2,3]`, []string{"1", "2", "3"}},
		{"mixed elements", `["7",8]`, []string{"7", "8"}},
		{"empty array", `[]`, []string{}},
		{"empty column", ``, []string{}},
		{"malformed json", `{"not":"a list"`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeProductIDs(tt.raw))
		})
	}
}

func TestGetActiveEventDiscountsByProductID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewDiscountStore(db)

	rows := sqlmock.NewRows([]string{
		"idEvent_Discounts", "Event_idEvent", "Product_Ids", "Description",
		"Discount_Type", "Discount_Value", "Start_Date", "End_Date", "Status",
	}).AddRow(4, 2, `["11","12"]`, "summer sale", "percentage", 15.0, "2026-08-01", "2026-09-30", "active")

	mock.ExpectQuery(regexp.QuoteMeta("FROM Event_Discounts ed")).
		WithArgs("shop@example.com", int64(11), "shop@example.com").
		WillReturnRows(rows)

	discounts, err := s.GetActiveEventDiscountsByProductID("shop@example.com", 11)
	require.NoError(t, err)
	require.Len(t, discounts, 1)
	assert.Equal(t, []string{"11", "12"}, discounts[0].ProductIDs)
	assert.Equal(t, "percentage", discounts[0].DiscountType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveEventDiscountsByProductIDNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewDiscountStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM Event_Discounts ed")).
		WithArgs("shop@example.com", int64(99), "shop@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"idEvent_Discounts", "Event_idEvent", "Product_Ids", "Description",
			"Discount_Type", "Discount_Value", "Start_Date", "End_Date", "Status",
		}))

	discounts, err := s.GetActiveEventDiscountsByProductID("shop@example.com", 99)
	require.NoError(t, err)
	assert.Empty(t, discounts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDiscountValidation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewDiscountStore(db)

	_, err = s.CreateDiscount("shop@example.com", DiscountInput{
		ProductID:    5,
		DiscountType: "percentage",
		StartDate:    "2026-01-01",
		EndDate:      "2026-01-31",
	})
	assert.True(t, IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
