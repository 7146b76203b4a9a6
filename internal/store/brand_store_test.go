package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrandStore(t *testing.T) (*BrandStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBrandStore(db), mock
}

func TestCreateBrandReturnsExistingIDOnSlugMatch(t *testing.T) {
	s, mock := newBrandStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT idProduct_Brand FROM Product_Brand WHERE Slug = ?")).
		WithArgs("nike-sportswear", testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"idProduct_Brand"}).AddRow(14))

	id, err := s.CreateBrand(testOrg, "Nike Sportswear", "", "", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(14), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBrandInsertsWhenSlugIsNew(t *testing.T) {
	s, mock := newBrandStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT idProduct_Brand FROM Product_Brand WHERE Slug = ?")).
		WithArgs("acme", testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"idProduct_Brand"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product_Brand")).
		WithArgs("Acme", "acme", "http://x/acme.jpg", "Tools", int64(2), testOrg).
		WillReturnResult(sqlmock.NewResult(21, 1))

	id, err := s.CreateBrand(testOrg, "Acme", "http://x/acme.jpg", "Tools", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(21), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBrandInUse(t *testing.T) {
	s, mock := newBrandStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT idProduct_Brand FROM Product_Brand WHERE idProduct_Brand = ?")).
		WithArgs(int64(14), testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"idProduct_Brand"}).AddRow(14))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS count FROM Product")).
		WithArgs(int64(14), testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	err := s.DeleteBrand(testOrg, 14)
	assert.ErrorIs(t, err, ErrBrandInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}
