package store

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrg = "shop@example.com"

func newProductStore(t *testing.T) (*ProductStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProductStore(db), mock
}

func expectScalarUpdate(mock sqlmock.Sqlmock) {
	mock.ExpectExec(regexp.QuoteMeta("UPDATE Product")).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func variationIDRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"idProduct_Variations"})
	for _, id := range ids {
		rows.AddRow(id)
	}
	return rows
}

func TestGetProductByIDNotFound(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM Product P")).
		WithArgs(testOrg, int64(42), testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"idProduct"}))

	_, err := s.GetProductByID(testOrg, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProductRequiresDescription(t *testing.T) {
	s, mock := newProductStore(t)

	_, err := s.CreateProduct(testOrg, ProductInput{}, nil, nil, nil, nil)
	assert.True(t, IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProductInsertsChildren(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product")).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product_Images")).
		WithArgs(int64(7), "http://x/img1.jpg", testOrg).
		WillReturnResult(sqlmock.NewResult(1, 1))
	// Qty seeds both Qty and SIH for a fresh variation.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product_Variations")).
		WithArgs(int64(7), "#ff0000", "M", 10, 10, testOrg).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO FAQ")).
		WithArgs("Is it washable?", "Yes.", int64(7), testOrg).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product_has_Sub_Category")).
		WithArgs(int64(7), int64(3), testOrg).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	id, err := s.CreateProduct(testOrg,
		ProductInput{Description: "Shirt", MarketPrice: 20, SellingPrice: 15},
		[]string{"http://x/img1.jpg"},
		[]VariationInput{{Colour: "#ff0000", Size: "M", Quantity: 10}},
		[]FAQInput{{Question: "Is it washable?", Answer: "Yes."}},
		[]int64{3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductVariationInUseAbortsBeforeDelete(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	expectScalarUpdate(mock)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT idProduct_Variations FROM Product_Variations")).
		WithArgs(int64(7), testOrg).
		WillReturnRows(variationIDRows(1, 2, 3))
	// 2 and 3 are both deletion candidates; 2 is clean but 3 has an
	// order line, so the reconciliation must abort with nothing deleted.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Order_has_Product_Variations")).
		WithArgs(int64(2), testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Order_has_Product_Variations")).
		WithArgs(int64(3), testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := s.UpdateProduct(testOrg, 7,
		ProductInput{Description: "Shirt"},
		ProductAssociations{Variations: []VariationInput{{ID: 1, Colour: "#ff0000", Size: "M", Quantity: 5}}})
	assert.ErrorIs(t, err, ErrVariationInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductVariationUpdateAndInsert(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	expectScalarUpdate(mock)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT idProduct_Variations FROM Product_Variations")).
		WithArgs(int64(7), testOrg).
		WillReturnRows(variationIDRows(5))
	// id 5 survives, so no guard check and no delete runs.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE Product_Variations SET")).
		WithArgs("#0000ff", "L", 4, 4, int64(5), testOrg).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product_Variations")).
		WithArgs(int64(7), "#00ff00", "S", 2, 2, testOrg).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	err := s.UpdateProduct(testOrg, 7,
		ProductInput{Description: "Shirt"},
		ProductAssociations{Variations: []VariationInput{
			{ID: 5, Colour: "#0000ff", Size: "L", Quantity: 4},
			{Colour: "#00ff00", Size: "S", Quantity: 2},
		}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductVariationDeletesUnreferenced(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	expectScalarUpdate(mock)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT idProduct_Variations FROM Product_Variations")).
		WithArgs(int64(7), testOrg).
		WillReturnRows(variationIDRows(5, 6))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM Order_has_Product_Variations")).
		WithArgs(int64(6), testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Product_Variations WHERE idProduct_Variations IN (?)")).
		WithArgs(int64(6), testOrg).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE Product_Variations SET")).
		WithArgs("#0000ff", "L", 4, 4, int64(5), testOrg).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.UpdateProduct(testOrg, 7,
		ProductInput{Description: "Shirt"},
		ProductAssociations{Variations: []VariationInput{
			{ID: 5, Colour: "#0000ff", Size: "L", Quantity: 4},
		}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductFAQReconcileHasNoGuard(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	expectScalarUpdate(mock)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT idFAQ FROM FAQ")).
		WithArgs(int64(7), testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"idFAQ"}).AddRow(1).AddRow(2))
	// Superseded FAQ rows are deleted straight away, no in-use check.
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM FAQ WHERE idFAQ IN (?)")).
		WithArgs(int64(2), testOrg).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE FAQ SET")).
		WithArgs("Q1 updated", "A1", int64(1), testOrg).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO FAQ")).
		WithArgs("Q new", "A new", int64(7), testOrg).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	err := s.UpdateProduct(testOrg, 7,
		ProductInput{Description: "Shirt"},
		ProductAssociations{FAQs: []FAQInput{
			{ID: 1, Question: "Q1 updated", Answer: "A1"},
			{Question: "Q new", Answer: "A new"},
		}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductSubCategoryReplace(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	expectScalarUpdate(mock)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Product_has_Sub_Category")).
		WithArgs(int64(7), testOrg).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product_has_Sub_Category")).
		WithArgs(int64(7), int64(3), testOrg).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product_has_Sub_Category")).
		WithArgs(int64(7), int64(4), testOrg).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := s.UpdateProduct(testOrg, 7,
		ProductInput{Description: "Shirt"},
		ProductAssociations{SubCategoryIDs: []int64{3, 4}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductSubCategoryReplaceIsIdempotent(t *testing.T) {
	s, mock := newProductStore(t)

	// Replaying the same id list yields the same delete + insert
	// sequence, so the association set ends up identical.
	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		expectScalarUpdate(mock)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Product_has_Sub_Category")).
			WithArgs(int64(7), testOrg).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product_has_Sub_Category")).
			WithArgs(int64(7), int64(3), testOrg).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Product_has_Sub_Category")).
			WithArgs(int64(7), int64(4), testOrg).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()
	}

	for i := 0; i < 2; i++ {
		err := s.UpdateProduct(testOrg, 7,
			ProductInput{Description: "Shirt"},
			ProductAssociations{SubCategoryIDs: []int64{3, 4}})
		require.NoError(t, err)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProductThenGetNotFound(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Cart_has_Product")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ohpv.Order_idOrder")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"Order_idOrder"}))
	for _, table := range []string{
		"Product_has_Sub_Category", "Product_Images", "Product_Variations",
		"FAQ", "Discounts", "Event_has_Product", "Product",
	} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table + " WHERE")).
			WithArgs(int64(7), testOrg).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("FROM Product P")).
		WithArgs(testOrg, int64(7), testOrg).
		WillReturnRows(sqlmock.NewRows([]string{"idProduct"}))

	require.NoError(t, s.DeleteProduct(testOrg, 7))

	_, err := s.GetProductByID(testOrg, 7)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductNilAssociationsTouchNothing(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	expectScalarUpdate(mock)
	mock.ExpectCommit()

	err := s.UpdateProduct(testOrg, 7, ProductInput{Description: "Shirt"}, ProductAssociations{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductDeletedImages(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	expectScalarUpdate(mock)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Product_Images WHERE Product_idProduct = ? AND Image_Url IN (?, ?)")).
		WithArgs(int64(7), "http://x/a.jpg", "http://x/b.jpg", testOrg).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := s.UpdateProduct(testOrg, 7,
		ProductInput{Description: "Shirt"},
		ProductAssociations{DeletedImages: []string{"http://x/a.jpg", "http://x/b.jpg"}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProductCascadeOrder(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Cart_has_Product")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ohpv.Order_idOrder")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"Order_idOrder"}).AddRow(10).AddRow(11))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Order_History WHERE order_id IN (?, ?)")).
		WithArgs(int64(10), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Order_has_Product_Variations WHERE Order_idOrder IN (?, ?)")).
		WithArgs(int64(10), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `Order` WHERE idOrder IN (?, ?)")).
		WithArgs(int64(10), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	for _, table := range []string{
		"Product_has_Sub_Category", "Product_Images", "Product_Variations",
		"FAQ", "Discounts", "Event_has_Product", "Product",
	} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table + " WHERE")).
			WithArgs(int64(7), testOrg).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := s.DeleteProduct(testOrg, 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProductWithoutOrders(t *testing.T) {
	s, mock := newProductStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM Cart_has_Product")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ohpv.Order_idOrder")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"Order_idOrder"}))
	for _, table := range []string{
		"Product_has_Sub_Category", "Product_Images", "Product_Variations",
		"FAQ", "Discounts", "Event_has_Product", "Product",
	} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table + " WHERE")).
			WithArgs(int64(9), testOrg).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	err := s.DeleteProduct(testOrg, 9)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleProductStatusRequiresStatus(t *testing.T) {
	s, mock := newProductStore(t)

	err := s.ToggleProductStatus(testOrg, 7, "")
	assert.True(t, IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopSellingProducts(t *testing.T) {
	s, mock := newProductStore(t)

	rows := sqlmock.NewRows([]string{
		"idProduct", "Description", "Sold_Qty", "Main_Image_Url", "Selling_Price", "Market_Price",
	}).
		AddRow(1, "Shirt", 40, "http://x/1.jpg", 15.0, 20.0).
		AddRow(2, "Hat", 12, nil, 8.0, 10.0)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY Sold_Qty DESC")).
		WithArgs(testOrg).
		WillReturnRows(rows)

	products, err := s.GetTopSellingProducts(testOrg)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Shirt", products[0].Description)
	assert.Equal(t, "", products[1].MainImageURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}
