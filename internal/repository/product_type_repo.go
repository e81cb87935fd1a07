package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-api/internal/model"
)

type ProductTypeRepository struct {
	pool *pgxpool.Pool
}

func NewProductTypeRepository(pool *pgxpool.Pool) *ProductTypeRepository {
	return &ProductTypeRepository{pool: pool}
}

func (r *ProductTypeRepository) Create(ctx context.Context, t model.ProductType) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO product_types (id, name, description, image_path, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Name, t.Description, t.ImagePath, t.OwnerID, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create product type: %w", err)
	}
	return nil
}

func (r *ProductTypeRepository) FindByID(ctx context.Context, id string) (model.ProductType, error) {
	var t model.ProductType
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, image_path, user_id, created_at, updated_at
		 FROM product_types WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Description, &t.ImagePath, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.ProductType{}, model.ErrProductTypeNotFound
	}
	if err != nil {
		return model.ProductType{}, fmt.Errorf("find product type by id: %w", err)
	}
	return t, nil
}

// ListByOwner returns the owner's types together with how many products
// reference each.
func (r *ProductTypeRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.ProductTypeSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.name, t.description, COUNT(p.id)
		 FROM product_types t
		 LEFT JOIN products p ON p.product_type_id = t.id
		 WHERE t.user_id = $1
		 GROUP BY t.id, t.name, t.description, t.created_at
		 ORDER BY t.created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list product types: %w", err)
	}
	defer rows.Close()

	types := make([]model.ProductTypeSummary, 0)
	for rows.Next() {
		var t model.ProductTypeSummary
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.ProductsCount); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *ProductTypeRepository) Update(ctx context.Context, t model.ProductType) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE product_types SET name = $2, description = $3, image_path = $4, updated_at = $5
		 WHERE id = $1`,
		t.ID, t.Name, t.Description, t.ImagePath, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductTypeNotFound
	}
	return nil
}

// Delete removes a type; dependent products go with it via the FK cascade.
func (r *ProductTypeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM product_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProductTypeNotFound
	}
	return nil
}

func (r *ProductTypeRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM product_types WHERE user_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count product types: %w", err)
	}
	return count, nil
}

func (r *ProductTypeRepository) LastAddedByOwner(ctx context.Context, ownerID string, limit int) ([]model.ProductType, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, image_path, user_id, created_at, updated_at
		 FROM product_types WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("last added product types: %w", err)
	}
	defer rows.Close()

	types := make([]model.ProductType, 0, limit)
	for rows.Next() {
		var t model.ProductType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.ImagePath, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
