package repo

import (
	"context"
	"database/sql"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, string, error)
	GetByID(ctx context.Context, id int) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, id int, role string) error
	Delete(ctx context.Context, id int) error
	CountSuperAdmins(ctx context.Context) (int, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password, role) VALUES ($1, $2, $3, $4) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password, RoleUser).Scan(&id)
	return id, err
}

// GetByLogin returns id, password hash and role. A missing user comes back
// as a zero id, not an error.
func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, string, error) {
	var id int
	var hash, role string

	query := "SELECT id, password, role FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash, &role)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", "", nil
		}
		return 0, "", "", err
	}
	return id, hash, role, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int) (User, error) {
	var u User
	query := "SELECT id, login, email, role FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Login, &u.Email, &u.Role)
	return u, err
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]User, error) {
	query := "SELECT id, login, email, role FROM users ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Login, &u.Email, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepository) UpdateRole(ctx context.Context, id int, role string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE users SET role=$1 WHERE id=$2", role, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresUserRepository) CountSuperAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE role=$1", RoleSuperAdmin).Scan(&n)
	return n, err
}
