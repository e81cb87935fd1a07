package service

import (
	"context"

	"inventory-api/internal/model"
	"inventory-api/internal/util"
)

// recentLimit is how many of the latest additions the dashboard shows.
const recentLimit = 2

type DashboardService struct {
	users    UserRepository
	types    ProductTypeRepository
	products ProductRepository
}

func NewDashboardService(users UserRepository, types ProductTypeRepository, products ProductRepository) *DashboardService {
	return &DashboardService{users: users, types: types, products: products}
}

// Overview assembles the GET /user/me payload for the authenticated user.
func (s *DashboardService) Overview(ctx context.Context, userID string) (model.Dashboard, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.Dashboard{}, err
	}

	typesCount, err := s.types.CountByOwner(ctx, userID)
	if err != nil {
		return model.Dashboard{}, err
	}

	productsCount, err := s.products.CountByOwner(ctx, userID)
	if err != nil {
		return model.Dashboard{}, err
	}

	soldCount, err := s.products.CountSoldByOwner(ctx, userID)
	if err != nil {
		return model.Dashboard{}, err
	}

	lastProducts, err := s.products.LastAddedByOwner(ctx, userID, recentLimit)
	if err != nil {
		return model.Dashboard{}, err
	}

	lastTypes, err := s.types.LastAddedByOwner(ctx, userID, recentLimit)
	if err != nil {
		return model.Dashboard{}, err
	}

	recentProducts := make([]model.RecentEntry, 0, len(lastProducts))
	for _, p := range lastProducts {
		recentProducts = append(recentProducts, model.RecentEntry{
			ID:        p.ID,
			Name:      p.Name,
			CreatedAt: util.HumanTime(p.CreatedAt),
		})
	}

	recentTypes := make([]model.RecentEntry, 0, len(lastTypes))
	for _, t := range lastTypes {
		recentTypes = append(recentTypes, model.RecentEntry{
			ID:        t.ID,
			Name:      t.Name,
			CreatedAt: util.HumanTime(t.CreatedAt),
		})
	}

	return model.Dashboard{
		Name:                   user.Username,
		AddedProductTypesCount: typesCount,
		AddedProductsCount:     productsCount,
		SoldProductsCount:      soldCount,
		LastAddedProducts:      recentProducts,
		LastAddedProductTypes:  recentTypes,
		HumanTime:              util.HumanTime(user.CreatedAt),
	}, nil
}
