package usecase

import (
	"context"

	"github.com/dimasprs/catalog-service/internal/model"
	"github.com/dimasprs/catalog-service/internal/product"
	"github.com/dimasprs/catalog-service/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	p := &model.Product{
		Name:  input.Name,
		Price: *input.Price,
		Stock: *input.Stock,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.logger.Info("product created", zap.Int64("id", p.ID))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

// ListProducts fetches one window plus the matching total and assembles the
// pagination descriptor from them. Store errors pass through untouched; no
// partial result is ever returned.
func (uc *productUseCase) ListProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, *dto.Pagination, error) {
	products, total, err := uc.repo.FindPage(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	return products, dto.NewPagination(f.Page, f.Limit, total), nil
}

func (uc *productUseCase) ListAllProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	return uc.repo.FindAllFiltered(ctx, f)
}

func (uc *productUseCase) SearchProducts(ctx context.Context, term string) ([]model.Product, error) {
	return uc.repo.SearchByName(ctx, term)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int64, input *dto.ProductInput) (*model.Product, error) {
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	p := &model.Product{
		ID:    id,
		Name:  input.Name,
		Price: *input.Price,
		Stock: *input.Stock,
	}
	updated, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if updated != nil {
		uc.logger.Info("product updated", zap.Int64("id", id))
	}
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) (*model.Product, error) {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted != nil {
		uc.logger.Info("product deleted", zap.Int64("id", id))
	}
	return deleted, nil
}
