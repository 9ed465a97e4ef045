package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mercato/mercato-api/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

// sortColumns is the fixed set of columns a listing may be ordered by.
// Unrecognized order_by values are not an error; the listing simply
// keeps its default order.
var sortColumns = map[string]string{
	"name":  "name",
	"price": "price",
}

// ProductRepository handles product persistence operations.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product and sets the generated ID on the struct.
// Price is stored as given; the schema does not reject negative values.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `INSERT INTO products (name, price, description, owner_id) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, product.Name, product.Price, product.Description, product.OwnerID)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	product.ID = id
	return nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT id, name, price, description, owner_id FROM products WHERE id = ?`

	product := &model.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Price, &product.Description, &product.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

// List retrieves products matching the filter. Each call runs a fresh
// query; no cursor state is kept between calls.
func (r *ProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.OwnerID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// Update replaces the mutable fields of a product in place. The owner
// column is never touched.
func (r *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	query := `UPDATE products SET name = ?, price = ?, description = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, product.Name, product.Price, product.Description, product.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product by its ID.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// buildListQuery composes the listing SQL from the filter's optional
// predicates. Absent predicates contribute nothing; skip and limit are
// passed through unclamped.
func buildListQuery(filter model.ProductFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, price, description, owner_id FROM products`)

	var conds []string
	var args []any

	if filter.Search != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	if filter.MinPrice != nil {
		conds = append(conds, "price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		conds = append(conds, "price <= ?")
		args = append(args, *filter.MaxPrice)
	}
	if filter.OwnerID != nil {
		conds = append(conds, "owner_id = ?")
		args = append(args, *filter.OwnerID)
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	if col, ok := sortColumns[filter.OrderBy]; ok {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(col)
		if filter.OrderDir == "desc" {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}

	sb.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, filter.Limit, filter.Skip)

	return sb.String(), args
}
