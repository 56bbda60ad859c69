package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dimasprs/catalog-service/internal/model"
	"github.com/dimasprs/catalog-service/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

const productColumns = "id, name, price, stock, created_at"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// buildPredicates turns a filter set into WHERE conditions and their named
// arguments, one condition per present bound, in a fixed order. Both the
// windowed list statement and the count statement are composed from this one
// routine; that is what keeps totals and page boundaries consistent with the
// rows actually returned.
func buildPredicates(f *dto.ProductFilters) ([]string, map[string]interface{}) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.SearchQuery != "" {
		conditions = append(conditions, "name ILIKE :search")
		args["search"] = "%" + f.SearchQuery + "%"
	}
	if f.PriceMin != nil {
		conditions = append(conditions, "price >= :price_min")
		args["price_min"] = *f.PriceMin
	}
	if f.PriceMax != nil {
		conditions = append(conditions, "price <= :price_max")
		args["price_max"] = *f.PriceMax
	}
	if f.StockMin != nil {
		conditions = append(conditions, "stock >= :stock_min")
		args["stock_min"] = *f.StockMin
	}
	if f.StockMax != nil {
		conditions = append(conditions, "stock <= :stock_max")
		args["stock_max"] = *f.StockMax
	}
	if f.DateFrom != nil {
		conditions = append(conditions, "created_at >= :date_from")
		args["date_from"] = *f.DateFrom
	}
	if f.DateTo != nil {
		conditions = append(conditions, "created_at <= :date_to")
		args["date_to"] = *f.DateTo
	}

	return conditions, args
}

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}

// buildListQuery composes the windowed, ordered list statement. SortBy and
// SortOrder come whitelisted out of the normalizer; limit and offset are
// plain ints. Everything else is bound as a named parameter.
func buildListQuery(f *dto.ProductFilters) (string, map[string]interface{}) {
	conditions, args := buildPredicates(f)
	query := fmt.Sprintf(
		"SELECT %s FROM products%s ORDER BY %s %s LIMIT %d OFFSET %d",
		productColumns, whereClause(conditions), f.SortBy, f.SortOrder, f.Limit, f.Offset(),
	)
	return query, args
}

// buildUnpagedQuery is the windowless variant used by the all=1 listing.
func buildUnpagedQuery(f *dto.ProductFilters) (string, map[string]interface{}) {
	conditions, args := buildPredicates(f)
	query := fmt.Sprintf(
		"SELECT %s FROM products%s ORDER BY %s %s",
		productColumns, whereClause(conditions), f.SortBy, f.SortOrder,
	)
	return query, args
}

// buildCountQuery composes the count statement over the identical predicate
// list, with no projection, ordering or window.
func buildCountQuery(f *dto.ProductFilters) (string, map[string]interface{}) {
	conditions, args := buildPredicates(f)
	return "SELECT count(*) FROM products" + whereClause(conditions), args
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (name, price, stock)
        VALUES (:name, :price, :stock)
        RETURNING id, created_at
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&p.ID, &p.CreatedAt); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
	}
	return rows.Err()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1 LIMIT 1", productColumns)
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	return &p, nil
}

// FindPage executes the count statement and the windowed list statement for
// one filter set. Both statements share the predicate list, so the returned
// total always agrees with the rows. Failures carry the statement kind.
func (r *PGRepository) FindPage(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	countQuery, countArgs := buildCountQuery(f)

	var count int
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, countArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, fmt.Errorf("count products: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	listQuery, listArgs := buildListQuery(f)

	nstmt, err := r.DB.PrepareNamedContext(ctx, listQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer nstmt.Close()

	products := make([]model.Product, 0, f.Limit)
	if err := nstmt.SelectContext(ctx, &products, listArgs); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, count, nil
}

func (r *PGRepository) FindAllFiltered(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	query, args := buildUnpagedQuery(f)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer nstmt.Close()

	products := make([]model.Product, 0)
	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *PGRepository) SearchByName(ctx context.Context, term string) ([]model.Product, error) {
	products := make([]model.Product, 0)
	query := fmt.Sprintf("SELECT %s FROM products WHERE name ILIKE $1 ORDER BY id DESC", productColumns)
	if err := r.DB.SelectContext(ctx, &products, query, "%"+term+"%"); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// Update writes name, price and stock and returns the updated row, or nil
// when no row has the given id.
func (r *PGRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	var updated model.Product
	query := fmt.Sprintf(`
        UPDATE products
        SET name = $1, price = $2, stock = $3
        WHERE id = $4
        RETURNING %s
    `, productColumns)
	err := r.DB.GetContext(ctx, &updated, query, p.Name, p.Price, p.Stock, p.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product %d: %w", p.ID, err)
	}
	return &updated, nil
}

// Delete removes the row and returns it, or nil when it did not exist.
func (r *PGRepository) Delete(ctx context.Context, id int64) (*model.Product, error) {
	var deleted model.Product
	query := fmt.Sprintf("DELETE FROM products WHERE id = $1 RETURNING %s", productColumns)
	err := r.DB.GetContext(ctx, &deleted, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product %d: %w", id, err)
	}
	return &deleted, nil
}

func (r *PGRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, "SELECT count(*) FROM products WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("check product %d: %w", id, err)
	}
	return count > 0, nil
}
