package catalog

import (
	"context"
	"database/sql"
)

type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	UnitPrice float64 `json:"unit_price"`
	PriceUnit string  `json:"price_unit"` // kg or ton
}

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int) (Product, error)
	UpdatePrice(ctx context.Context, id int, price float64, unit string) error
}

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductDB(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) List(ctx context.Context) ([]Product, error) {
	query := "SELECT id, name, kind, unit_price, price_unit FROM products ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Kind, &p.UnitPrice, &p.PriceUnit); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id int) (Product, error) {
	var p Product
	query := "SELECT id, name, kind, unit_price, price_unit FROM products WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Kind, &p.UnitPrice, &p.PriceUnit)
	return p, err
}

func (r *PostgresProductRepository) UpdatePrice(ctx context.Context, id int, price float64, unit string) error {
	query := "UPDATE products SET unit_price=$1, price_unit=$2 WHERE id=$3"
	res, err := r.db.ExecContext(ctx, query, price, unit, id)
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
