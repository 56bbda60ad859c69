package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dimasprs/catalog-service/internal/product"
	"github.com/dimasprs/catalog-service/internal/product/dto"
	"github.com/dimasprs/catalog-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

// GetProducts serves the combined listing endpoint:
//
//	?id=N   single lookup
//	?all=1  full filtered listing, no window
//	default paginated listing with filters, sorting and a pagination block
func (h *ProductHandler) GetProducts(c *gin.Context) {
	if idStr := c.Query("id"); idStr != "" {
		h.getProductByID(c, idStr)
		return
	}

	filters := dto.ParseProductFilters(c.Request.URL.Query())

	if c.Query("all") == "1" {
		products, err := h.uc.ListAllProducts(c.Request.Context(), filters)
		if err != nil {
			h.serverError(c, "failed to list products", err)
			return
		}
		response.Success(c, http.StatusOK, "All products retrieved successfully", products)
		return
	}

	products, pagination, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.serverError(c, "failed to list products", err)
		return
	}
	response.Paginated(c, http.StatusOK, "Products retrieved successfully", products, pagination)
}

func (h *ProductHandler) getProductByID(c *gin.Context, idStr string) {
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "ID must be a positive integer")
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "failed to get product", err)
		return
	}
	if p == nil {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}
	response.Success(c, http.StatusOK, "Product retrieved successfully", p)
}

func (h *ProductHandler) SearchProducts(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		response.Error(c, http.StatusBadRequest, "Search term is required")
		return
	}

	products, err := h.uc.SearchProducts(c.Request.Context(), term)
	if err != nil {
		h.serverError(c, "failed to search products", err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, "Search completed successfully", products, gin.H{
		"count":      len(products),
		"searchTerm": term,
	})
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.serverError(c, "failed to create product", err)
		return
	}
	response.Success(c, http.StatusCreated, "Product created successfully", p)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "ID must be a positive integer")
		return
	}

	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		h.serverError(c, "failed to update product", err)
		return
	}
	if p == nil {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}
	response.Success(c, http.StatusOK, "Product updated successfully", p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "ID must be a positive integer")
		return
	}

	p, err := h.uc.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "failed to delete product", err)
		return
	}
	if p == nil {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}
	response.Success(c, http.StatusOK, "Product deleted successfully", p)
}

func (h *ProductHandler) bindInput(c *gin.Context) (*dto.ProductInput, bool) {
	var input dto.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Request body is required")
		return nil, false
	}

	input.Sanitize()
	if errs := input.Validate(); len(errs) > 0 {
		response.Error(c, http.StatusBadRequest, "Validation failed", errs...)
		return nil, false
	}
	return &input, true
}

func (h *ProductHandler) serverError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	response.Error(c, http.StatusInternalServerError, "Internal server error")
}
