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

type ProductService struct {
	products ProductRepository
	types    ProductTypeRepository
	images   ImageStore
	gate     OwnershipGate
}

func NewProductService(products ProductRepository, types ProductTypeRepository, images ImageStore, gate OwnershipGate) *ProductService {
	return &ProductService{products: products, types: types, images: images, gate: gate}
}

func (s *ProductService) Create(ctx context.Context, actorID string, input model.ProductInput) error {
	if err := s.checkSerialNumber(ctx, input.SerialNumber, ""); err != nil {
		return err
	}
	if err := s.checkProductType(ctx, actorID, input.ProductTypeID); err != nil {
		return err
	}

	now := time.Now().UTC()
	product := model.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Quantity:      input.Quantity,
		Description:   input.Description,
		SerialNumber:  input.SerialNumber,
		HasSold:       input.HasSold,
		OwnerID:       actorID,
		ProductTypeID: input.ProductTypeID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if input.Image != nil {
		path, err := s.images.Save(input.Image, CategoryProducts)
		if err != nil {
			return err
		}
		product.ImagePath = &path
	}

	return s.products.Create(ctx, product)
}

func (s *ProductService) List(ctx context.Context, actorID string) ([]model.ProductSummary, error) {
	return s.products.ListByOwner(ctx, actorID)
}

func (s *ProductService) Update(ctx context.Context, actorID string, id string, input model.ProductInput) error {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, model.ErrProductNotFound) {
		return apierror.New("Product not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	if !s.gate.Allows(CapabilityProduct, product.OwnerID, actorID) {
		return apierror.New("You are not authorized to edit this product", http.StatusForbidden)
	}

	if err := s.checkSerialNumber(ctx, input.SerialNumber, id); err != nil {
		return err
	}
	if err := s.checkProductType(ctx, actorID, input.ProductTypeID); err != nil {
		return err
	}

	product.Name = input.Name
	product.Quantity = input.Quantity
	product.Description = input.Description
	product.SerialNumber = input.SerialNumber
	product.HasSold = input.HasSold
	product.ProductTypeID = input.ProductTypeID
	product.UpdatedAt = time.Now().UTC()

	if input.Image != nil {
		path, err := s.images.Save(input.Image, CategoryProducts)
		if err != nil {
			return err
		}
		if product.ImagePath != nil {
			s.images.Remove(*product.ImagePath)
		}
		product.ImagePath = &path
	}

	return s.products.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, actorID string, id string) error {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, model.ErrProductNotFound) {
		return apierror.New("Product not found", http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	if !s.gate.Allows(CapabilityProduct, product.OwnerID, actorID) {
		return apierror.New("You are not authorized to delete this product", http.StatusForbidden)
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	if product.ImagePath != nil {
		s.images.Remove(*product.ImagePath)
	}

	return nil
}

func (s *ProductService) checkSerialNumber(ctx context.Context, serial string, excludeID string) error {
	taken, err := s.products.ExistsBySerialNumber(ctx, serial, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apierror.WithFields(map[string][]string{
			"serial_number": {"The serial number has already been taken."},
		}, http.StatusUnprocessableEntity)
	}
	return nil
}

// checkProductType enforces the cross-entity constraint: the referenced type
// must exist and belong to the same owner as the product. Both failures look
// identical to the caller so type ids cannot be probed across accounts.
func (s *ProductService) checkProductType(ctx context.Context, actorID string, typeID string) error {
	invalid := apierror.WithFields(map[string][]string{
		"product_type_id": {"The selected product type id is invalid."},
	}, http.StatusUnprocessableEntity)

	productType, err := s.types.FindByID(ctx, typeID)
	if errors.Is(err, model.ErrProductTypeNotFound) {
		return invalid
	}
	if err != nil {
		return err
	}

	if productType.OwnerID != actorID {
		return invalid
	}

	return nil
}
