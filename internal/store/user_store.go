package store

import (
	"database/sql"

	"github.com/nexcart/storefront-api/internal/models"
)

// UserStore wraps queries for the admin 'User' table.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// GetUserByEmail returns the full user row including the password hash;
// used by the admin login path. Lookup is by email alone since the
// tenant is only known after the user is identified.
func (s *UserStore) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		"SELECT idUser, Full_Name, Email, Password, Role, Status, orgmail, created_at, updated_at FROM User WHERE Email = ?",
		email).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.OrgMail, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID returns one user within the tenant scope.
func (s *UserStore) GetUserByID(org string, id int64) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		"SELECT idUser, Full_Name, Email, Password, Role, Status, orgmail, created_at, updated_at FROM User WHERE idUser = ? AND orgmail = ?",
		id, org).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.OrgMail, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAllUsers returns every admin user in scope.
func (s *UserStore) GetAllUsers(org string) ([]models.User, error) {
	rows, err := s.db.Query(
		"SELECT idUser, Full_Name, Email, Role, Status, orgmail, created_at, updated_at FROM User WHERE orgmail = ?", org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.Status, &u.OrgMail, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser inserts a new admin user with an already-hashed password and
// returns the new id.
func (s *UserStore) CreateUser(org string, u *models.User) (int64, error) {
	if u.Email == "" {
		return 0, requiredField("email")
	}
	res, err := s.db.Exec(
		"INSERT INTO User (Full_Name, Email, Password, Role, Status, orgmail, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		u.FullName, u.Email, u.PasswordHash, u.Role, u.Status, org, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteUser removes an admin user.
func (s *UserStore) DeleteUser(org string, id int64) error {
	_, err := s.db.Exec("DELETE FROM User WHERE idUser = ? AND orgmail = ?", id, org)
	return err
}
