package store

import (
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newCustomerStore(t *testing.T) (*CustomerStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCustomerStore(db), mock
}

func strPtr(s string) *string { return &s }

func TestAddCustomerHashesPassword(t *testing.T) {
	s, mock := newCustomerStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Customer")).
		WillReturnResult(sqlmock.NewResult(5, 1))

	id, err := s.AddCustomer(testOrg, CustomerInput{
		FirstName: "Jamie",
		FullName:  "Jamie Silva",
		Email:     "jamie@example.com",
		Password:  "secret123",
		Status:    "active",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCustomerRequiresEmailAndPassword(t *testing.T) {
	s, mock := newCustomerStore(t)

	_, err := s.AddCustomer(testOrg, CustomerInput{Password: "secret123"})
	assert.True(t, IsValidation(err))

	_, err = s.AddCustomer(testOrg, CustomerInput{Email: "jamie@example.com"})
	assert.True(t, IsValidation(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCustomerPartialSetList(t *testing.T) {
	s, mock := newCustomerStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE Customer SET City = ?, Status = ? WHERE idCustomer = ? AND orgmail = ?")).
		WithArgs("Colombo", "inactive", int64(5), testOrg).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpdateCustomer(testOrg, 5, CustomerUpdate{
		City:   strPtr("Colombo"),
		Status: strPtr("inactive"),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCustomerNoFieldsIsNoOp(t *testing.T) {
	s, mock := newCustomerStore(t)

	err := s.UpdateCustomer(testOrg, 5, CustomerUpdate{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCustomerRehashesPassword(t *testing.T) {
	s, mock := newCustomerStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE Customer SET Password = ? WHERE idCustomer = ? AND orgmail = ?")).
		WithArgs(hashedArg{plaintext: "newsecret"}, int64(5), testOrg).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpdateCustomer(testOrg, 5, CustomerUpdate{Password: strPtr("newsecret")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// hashedArg matches any bcrypt hash of the given plaintext; the store
// must never write the plaintext itself.
type hashedArg struct {
	plaintext string
}

func (h hashedArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s), []byte(h.plaintext)) == nil
}
