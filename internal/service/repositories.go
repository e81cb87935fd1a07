package service

import (
	"context"

	"inventory-api/internal/model"
)

// Repository interfaces consumed by the services. The pgx implementations
// live in internal/repository; tests substitute in-memory fakes.

type UserRepository interface {
	Create(ctx context.Context, u model.User) error
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ProductTypeRepository interface {
	Create(ctx context.Context, t model.ProductType) error
	FindByID(ctx context.Context, id string) (model.ProductType, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.ProductTypeSummary, error)
	Update(ctx context.Context, t model.ProductType) error
	Delete(ctx context.Context, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	LastAddedByOwner(ctx context.Context, ownerID string, limit int) ([]model.ProductType, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p model.Product) error
	FindByID(ctx context.Context, id string) (model.Product, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.ProductSummary, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id string) error
	ExistsBySerialNumber(ctx context.Context, serial string, excludeID string) (bool, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	CountSoldByOwner(ctx context.Context, ownerID string) (int, error)
	LastAddedByOwner(ctx context.Context, ownerID string, limit int) ([]model.Product, error)
}

// ImageStore persists uploaded images and hands back the public path stored
// on the entity.
type ImageStore interface {
	Save(upload *model.ImageUpload, category string) (string, error)
	Remove(publicPath string)
}
