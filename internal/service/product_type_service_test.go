package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"inventory-api/internal/model"
	"inventory-api/pkg/apierror"
)

func seedProductType(repo *fakeProductTypeRepo, ownerID string) model.ProductType {
	now := time.Now().UTC()
	productType := model.ProductType{
		ID:          uuid.NewString(),
		Name:        "Electronics",
		Description: "Electronic devices",
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	repo.types[productType.ID] = productType
	return productType
}

func TestProductTypeServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("owner can update", func(t *testing.T) {
		types := newFakeProductTypeRepo()
		svc := NewProductTypeService(types, &fakeImageStore{}, NewOwnershipGate())
		seeded := seedProductType(types, "user-a")

		err := svc.Update(context.Background(), "user-a", seeded.ID, model.ProductTypeInput{
			Name: "Gadgets", Description: "Small gadgets",
		})
		require.NoError(t, err)
		require.Equal(t, "Gadgets", types.types[seeded.ID].Name)
	})

	t.Run("non-owner gets 403 and the row is untouched", func(t *testing.T) {
		types := newFakeProductTypeRepo()
		svc := NewProductTypeService(types, &fakeImageStore{}, NewOwnershipGate())
		seeded := seedProductType(types, "user-a")

		err := svc.Update(context.Background(), "user-b", seeded.ID, model.ProductTypeInput{
			Name: "Gadgets", Description: "Small gadgets",
		})

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.HTTPStatus)
		require.Equal(t, []string{"You are not authorized to edit this Product Type"}, apiErr.Errors["general"])
		require.Equal(t, "Electronics", types.types[seeded.ID].Name)
	})

	t.Run("missing id gets 404 before any ownership decision", func(t *testing.T) {
		types := newFakeProductTypeRepo()
		svc := NewProductTypeService(types, &fakeImageStore{}, NewOwnershipGate())

		err := svc.Update(context.Background(), "user-a", uuid.NewString(), model.ProductTypeInput{
			Name: "Gadgets", Description: "Small gadgets",
		})

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	})
}

func TestProductTypeServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("owner delete removes the row and its image", func(t *testing.T) {
		types := newFakeProductTypeRepo()
		images := &fakeImageStore{}
		svc := NewProductTypeService(types, images, NewOwnershipGate())
		seeded := seedProductType(types, "user-a")
		imagePath := "/storage/images/types/pic.png"
		seeded.ImagePath = &imagePath
		types.types[seeded.ID] = seeded

		err := svc.Delete(context.Background(), "user-a", seeded.ID)
		require.NoError(t, err)
		require.NotContains(t, types.types, seeded.ID)
		require.Equal(t, []string{imagePath}, images.removed)
	})

	t.Run("non-owner delete gets 403 and the type still exists", func(t *testing.T) {
		types := newFakeProductTypeRepo()
		svc := NewProductTypeService(types, &fakeImageStore{}, NewOwnershipGate())
		seeded := seedProductType(types, "user-a")

		err := svc.Delete(context.Background(), "user-b", seeded.ID)

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusForbidden, apiErr.HTTPStatus)
		require.Equal(t, []string{"You are not authorized to delete this product type"}, apiErr.Errors["general"])
		require.Contains(t, types.types, seeded.ID)
	})

	t.Run("deleting a non-existent id returns 404, never 500", func(t *testing.T) {
		types := newFakeProductTypeRepo()
		svc := NewProductTypeService(types, &fakeImageStore{}, NewOwnershipGate())

		err := svc.Delete(context.Background(), "user-a", uuid.NewString())

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
		require.Equal(t, []string{"Product type not found"}, apiErr.Errors["general"])
	})
}
