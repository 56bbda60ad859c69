package product

import (
	"context"

	"github.com/dimasprs/catalog-service/internal/model"
	"github.com/dimasprs/catalog-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, *dto.Pagination, error)
	ListAllProducts(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error)
	SearchProducts(ctx context.Context, term string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *dto.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) (*model.Product, error)
}
