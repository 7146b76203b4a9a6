package store

import (
	"database/sql"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexcart/storefront-api/internal/models"
)

// CustomerStore wraps queries for the 'Customer' table. Passwords are
// bcrypt-hashed before they reach a statement and are never selected by
// the listing queries.
type CustomerStore struct {
	db *sql.DB
}

func NewCustomerStore(db *sql.DB) *CustomerStore {
	return &CustomerStore{db: db}
}

// CustomerInput carries the writable customer fields for creation.
type CustomerInput struct {
	FirstName string
	FullName  string
	Address   string
	City      string
	Country   string
	MobileNo  string
	Status    string
	Email     string
	Password  string
}

// CustomerUpdate carries optional fields for a partial update; nil means
// "leave unchanged".
type CustomerUpdate struct {
	FirstName *string
	FullName  *string
	Birthday  *string
	Address   *string
	City      *string
	Country   *string
	MobileNo  *string
	Status    *string
	Email     *string
	Password  *string
}

// GetAllCustomers returns every customer in scope, without password
// hashes.
func (s *CustomerStore) GetAllCustomers(org string) ([]models.Customer, error) {
	rows, err := s.db.Query(
		"SELECT idCustomer, Full_Name, Email, Mobile_No, Address, City, Country, Status, created_at, updated_at FROM Customer WHERE orgmail = ?", org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		var mobile, address, city, country sql.NullString
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&c.ID, &c.FullName, &c.Email, &mobile, &address, &city, &country, &c.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if mobile.Valid {
			c.MobileNo = &mobile.String
		}
		if address.Valid {
			c.Address = &address.String
		}
		if city.Valid {
			c.City = &city.String
		}
		if country.Valid {
			c.Country = &country.String
		}
		if createdAt.Valid {
			t := createdAt.Time
			c.CreatedAt = &t
		}
		if updatedAt.Valid {
			t := updatedAt.Time
			c.UpdatedAt = &t
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// GetCustomerByID returns one customer, without the password hash.
func (s *CustomerStore) GetCustomerByID(org string, id int64) (*models.Customer, error) {
	var c models.Customer
	var birthday, mobile, address, city, country sql.NullString
	err := s.db.QueryRow(
		"SELECT idCustomer, Full_Name, Birthday, Email, Mobile_No, Address, City, Country, Status FROM Customer WHERE idCustomer = ? AND orgmail = ?",
		id, org).Scan(&c.ID, &c.FullName, &birthday, &c.Email, &mobile, &address, &city, &country, &c.Status)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if birthday.Valid {
		c.Birthday = &birthday.String
	}
	if mobile.Valid {
		c.MobileNo = &mobile.String
	}
	if address.Valid {
		c.Address = &address.String
	}
	if city.Valid {
		c.City = &city.String
	}
	if country.Valid {
		c.Country = &country.String
	}
	return &c, nil
}

// GetCustomerByEmail returns the full row including the password hash;
// used by the login path.
func (s *CustomerStore) GetCustomerByEmail(org, email string) (*models.Customer, error) {
	var c models.Customer
	var first, birthday, mobile, address, city, country sql.NullString
	err := s.db.QueryRow(
		"SELECT idCustomer, First_Name, Full_Name, Birthday, Email, Mobile_No, Address, City, Country, Status, Password FROM Customer WHERE Email = ? AND orgmail = ?",
		email, org).Scan(&c.ID, &first, &c.FullName, &birthday, &c.Email, &mobile, &address, &city, &country, &c.Status, &c.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if first.Valid {
		c.FirstName = &first.String
	}
	if birthday.Valid {
		c.Birthday = &birthday.String
	}
	if mobile.Valid {
		c.MobileNo = &mobile.String
	}
	if address.Valid {
		c.Address = &address.String
	}
	if city.Valid {
		c.City = &city.String
	}
	if country.Valid {
		c.Country = &country.String
	}
	return &c, nil
}

// AddCustomer inserts a new customer, hashing the password at rest, and
// returns the new id.
func (s *CustomerStore) AddCustomer(org string, in CustomerInput) (int64, error) {
	if in.Email == "" {
		return 0, requiredField("email")
	}
	if in.Password == "" {
		return 0, requiredField("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		"INSERT INTO Customer (First_Name, Full_Name, Address, City, Country, Mobile_No, Status, Email, Password, orgmail) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		in.FirstName, in.FullName, in.Address, in.City, in.Country, in.MobileNo, in.Status, in.Email, string(hash), org)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateCustomer applies a partial update, building the SET list from the
// supplied fields only. A supplied password is re-hashed. No supplied
// fields is a no-op.
func (s *CustomerStore) UpdateCustomer(org string, id int64, in CustomerUpdate) error {
	updates := []string{}
	values := []any{}

	add := func(column string, v *string) {
		if v != nil {
			updates = append(updates, column+" = ?")
			values = append(values, *v)
		}
	}
	add("First_Name", in.FirstName)
	add("Full_Name", in.FullName)
	add("Birthday", in.Birthday)
	add("Address", in.Address)
	add("City", in.City)
	add("Country", in.Country)
	add("Mobile_No", in.MobileNo)
	add("Status", in.Status)
	add("Email", in.Email)

	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		updates = append(updates, "Password = ?")
		values = append(values, string(hash))
	}

	if len(updates) == 0 {
		return nil
	}

	query := "UPDATE Customer SET " + strings.Join(updates, ", ") + " WHERE idCustomer = ? AND orgmail = ?"
	values = append(values, id, org)
	_, err := s.db.Exec(query, values...)
	return err
}

// DeleteCustomer removes a customer. Deleting an absent id is a no-op.
func (s *CustomerStore) DeleteCustomer(org string, id int64) error {
	_, err := s.db.Exec("DELETE FROM Customer WHERE idCustomer = ? AND orgmail = ?", id, org)
	return err
}
