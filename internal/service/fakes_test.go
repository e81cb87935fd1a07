package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"inventory-api/internal/model"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users map[string]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (r *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductTypeRepo struct {
	types map[string]model.ProductType
}

func newFakeProductTypeRepo() *fakeProductTypeRepo {
	return &fakeProductTypeRepo{types: map[string]model.ProductType{}}
}

func (r *fakeProductTypeRepo) Create(_ context.Context, t model.ProductType) error {
	r.types[t.ID] = t
	return nil
}

func (r *fakeProductTypeRepo) FindByID(_ context.Context, id string) (model.ProductType, error) {
	t, ok := r.types[id]
	if !ok {
		return model.ProductType{}, model.ErrProductTypeNotFound
	}
	return t, nil
}

func (r *fakeProductTypeRepo) ListByOwner(_ context.Context, ownerID string) ([]model.ProductTypeSummary, error) {
	out := make([]model.ProductTypeSummary, 0)
	for _, t := range r.types {
		if t.OwnerID == ownerID {
			out = append(out, model.ProductTypeSummary{ID: t.ID, Name: t.Name, Description: t.Description})
		}
	}
	return out, nil
}

func (r *fakeProductTypeRepo) Update(_ context.Context, t model.ProductType) error {
	if _, ok := r.types[t.ID]; !ok {
		return model.ErrProductTypeNotFound
	}
	r.types[t.ID] = t
	return nil
}

func (r *fakeProductTypeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.types[id]; !ok {
		return model.ErrProductTypeNotFound
	}
	delete(r.types, id)
	return nil
}

func (r *fakeProductTypeRepo) CountByOwner(_ context.Context, ownerID string) (int, error) {
	count := 0
	for _, t := range r.types {
		if t.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductTypeRepo) LastAddedByOwner(_ context.Context, ownerID string, limit int) ([]model.ProductType, error) {
	owned := make([]model.ProductType, 0)
	for _, t := range r.types {
		if t.OwnerID == ownerID {
			owned = append(owned, t)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

type fakeProductRepo struct {
	products map[string]model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]model.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return model.Product{}, model.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) ListByOwner(_ context.Context, ownerID string) ([]model.ProductSummary, error) {
	out := make([]model.ProductSummary, 0)
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			out = append(out, model.ProductSummary{
				ID:           p.ID,
				SerialNumber: p.SerialNumber,
				Name:         p.Name,
				HasSold:      p.HasSold,
				ImagePath:    p.ImagePath,
				Description:  p.Description,
				Quantity:     p.Quantity,
			})
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return model.ErrProductNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return model.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ExistsBySerialNumber(_ context.Context, serial string, excludeID string) (bool, error) {
	for _, p := range r.products {
		if p.SerialNumber == serial && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) CountByOwner(_ context.Context, ownerID string) (int, error) {
	count := 0
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) CountSoldByOwner(_ context.Context, ownerID string) (int, error) {
	count := 0
	for _, p := range r.products {
		if p.OwnerID == ownerID && p.HasSold {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) LastAddedByOwner(_ context.Context, ownerID string, limit int) ([]model.Product, error) {
	owned := make([]model.Product, 0)
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

type fakeImageStore struct {
	saved   int
	removed []string
}

func (s *fakeImageStore) Save(upload *model.ImageUpload, category string) (string, error) {
	s.saved++
	return fmt.Sprintf("/storage/images/%s/fake-%d.png", category, s.saved), nil
}

func (s *fakeImageStore) Remove(publicPath string) {
	s.removed = append(s.removed, publicPath)
}
