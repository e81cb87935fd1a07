package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-api/internal/model"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, p model.Product) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO products (id, name, quantity, description, image_path, serial_number,
		                      has_sold, user_id, product_type_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.Name, p.Quantity, p.Description, p.ImagePath, p.SerialNumber,
		p.HasSold, p.OwnerID, p.ProductTypeID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, quantity, description, image_path, serial_number,
		        has_sold, user_id, product_type_id, created_at, updated_at
		 FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Quantity, &p.Description, &p.ImagePath, &p.SerialNumber,
			&p.HasSold, &p.OwnerID, &p.ProductTypeID, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Product{}, model.ErrProductNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.ProductSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, serial_number, name, has_sold, image_path, description, quantity
		 FROM products WHERE user_id = $1
		 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.ProductSummary, 0)
	for rows.Next() {
		var p model.ProductSummary
		if err := rows.Scan(&p.ID, &p.SerialNumber, &p.Name, &p.HasSold, &p.ImagePath, &p.Description, &p.Quantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p model.Product) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE products SET name = $2, quantity = $3, description = $4, image_path = $5,
		        serial_number = $6, has_sold = $7, product_type_id = $8, updated_at = $9
		 WHERE id = $1`,
		p.ID, p.Name, p.Quantity, p.Description, p.ImagePath,
		p.SerialNumber, p.HasSold, p.ProductTypeID, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}
	return nil
}

// ExistsBySerialNumber reports whether another product already carries the
// serial. excludeID skips the product being edited.
func (r *ProductRepository) ExistsBySerialNumber(ctx context.Context, serial string, excludeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE serial_number = $1 AND id <> $2)`,
		serial, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check serial number exists: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE user_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

func (r *ProductRepository) CountSoldByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE user_id = $1 AND has_sold`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sold products: %w", err)
	}
	return count, nil
}

func (r *ProductRepository) LastAddedByOwner(ctx context.Context, ownerID string, limit int) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, quantity, description, image_path, serial_number,
		        has_sold, user_id, product_type_id, created_at, updated_at
		 FROM products WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("last added products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0, limit)
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.Description, &p.ImagePath, &p.SerialNumber,
			&p.HasSold, &p.OwnerID, &p.ProductTypeID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
