package product

import (
	"context"

	"github.com/dimasprs/catalog-service/internal/model"
	"github.com/dimasprs/catalog-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// FindPage returns one window of the filtered listing together with the
	// total count of rows matching the same filters.
	FindPage(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error)
	// FindAllFiltered returns the whole filtered, sorted listing without a
	// window.
	FindAllFiltered(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error)
	SearchByName(ctx context.Context, term string) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) (*model.Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
