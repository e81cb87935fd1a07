package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"inventory-api/internal/model"
	"inventory-api/pkg/apierror"
)

// CategoryProducts and CategoryTypes name the image store subdirectories.
const (
	CategoryProducts = "products"
	CategoryTypes    = "types"
)

type ProductTypeService struct {
	types  ProductTypeRepository
	images ImageStore
	gate   OwnershipGate
}

func NewProductTypeService(types ProductTypeRepository, images ImageStore, gate OwnershipGate) *ProductTypeService {
	return &ProductTypeService{types: types, images: images, gate: gate}
}

func (s *ProductTypeService) Create(ctx context.Context, actorID string, input model.ProductTypeInput) error {
	now := time.Now().UTC()
	productType := model.ProductType{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if input.Image != nil {
		path, err := s.images.Save(input.Image, CategoryTypes)
		if err != nil {
			return err
		}
		productType.ImagePath = &path
	}

	return s.types.Create(ctx, productType)
}

func (s *ProductTypeService) List(ctx context.Context, actorID string) ([]model.ProductTypeSummary, error) {
	return s.types.ListByOwner(ctx, actorID)
}

// Update edits an owned type. Existence is resolved before the ownership
// gate, so a missing id is 404 for every caller.
func (s *ProductTypeService) Update(ctx context.Context, actorID string, id string, input model.ProductTypeInput) error {
	productType, err := s.types.FindByID(ctx, id)
	if errors.Is(err, model.ErrProductTypeNotFound) {
		return apierror.New("Product Type not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	if !s.gate.Allows(CapabilityProductType, productType.OwnerID, actorID) {
		return apierror.New("You are not authorized to edit this Product Type", http.StatusForbidden)
	}

	productType.Name = input.Name
	productType.Description = input.Description
	productType.UpdatedAt = time.Now().UTC()

	if input.Image != nil {
		path, err := s.images.Save(input.Image, CategoryTypes)
		if err != nil {
			return err
		}
		if productType.ImagePath != nil {
			s.images.Remove(*productType.ImagePath)
		}
		productType.ImagePath = &path
	}

	return s.types.Update(ctx, productType)
}

// Delete removes an owned type together with its image file. Dependent
// products disappear through the storage-level cascade, not here.
func (s *ProductTypeService) Delete(ctx context.Context, actorID string, id string) error {
	productType, err := s.types.FindByID(ctx, id)
	if errors.Is(err, model.ErrProductTypeNotFound) {
		return apierror.New("Product type not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	if !s.gate.Allows(CapabilityProductType, productType.OwnerID, actorID) {
		return apierror.New("You are not authorized to delete this product type", http.StatusForbidden)
	}

	if err := s.types.Delete(ctx, id); err != nil {
		return err
	}

	if productType.ImagePath != nil {
		s.images.Remove(*productType.ImagePath)
	}

	return nil
}
