package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/apperrors"
	"github.com/northwind-labs/northwind-api/models"
	"github.com/northwind-labs/northwind-api/repositories"
)

// CreateProductRequest carries the fields accepted when creating a
// product. product_name, quantity_per_unit and discontinued are
// required; discontinued is a boolean and is stored as 0/1.
type CreateProductRequest struct {
	ProductName     string   `json:"product_name"`
	SupplierID      *int     `json:"supplier_id"`
	CategoryID      *int     `json:"category_id"`
	QuantityPerUnit string   `json:"quantity_per_unit"`
	UnitPrice       *float64 `json:"unit_price"`
	UnitsInStock    *int     `json:"units_in_stock"`
	UnitsOnOrder    *int     `json:"units_on_order"`
	ReorderLevel    *int     `json:"reorder_level"`
	Discontinued    *bool    `json:"discontinued"`
}

// ProductService validates product operations and builds their
// projections with nested category and supplier.
type ProductService struct {
	products *repositories.ProductRepository
	log      zerolog.Logger
}

// NewProductService creates a product service.
func NewProductService(products *repositories.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{
		products: products,
		log:      log.With().Str("service", "product").Logger(),
	}
}

// GetAllProducts returns one page of products with nested projections.
func (s *ProductService) GetAllProducts(page string) ([]map[string]any, error) {
	pageNum, err := ParsePage(page)
	if err != nil {
		s.log.Error().Str("page", page).Msg("invalid page number")
		return nil, err
	}

	s.log.Debug().Int("page", pageNum).Int("page_size", DefaultPageSize).Msg("fetching products")
	products, err := s.products.GetPage(pageNum, DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching products page %d: %w", pageNum, err)
	}
	s.log.Debug().Int("count", len(products)).Msg("returning products")

	result := make([]map[string]any, 0, len(products))
	for i := range products {
		result = append(result, products[i].FlattenNested())
	}
	return result, nil
}

// GetProduct returns one product with its nested projection.
func (s *ProductService) GetProduct(productID string) (map[string]any, error) {
	id, err := parseIntID("product", productID)
	if err != nil {
		s.log.Error().Str("product_id", productID).Msg("invalid product id")
		return nil, err
	}

	product, err := s.products.GetByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Int("product_id", id).Msg("product not found")
			return nil, apperrors.NotFoundError("product", id)
		}
		return nil, fmt.Errorf("fetching product %d: %w", id, err)
	}

	return product.FlattenNested(), nil
}

// AddProduct validates and persists a new product, returning the
// created row.
func (s *ProductService) AddProduct(req CreateProductRequest) (*models.Product, error) {
	if req.ProductName == "" {
		s.log.Error().Msg("missing required field product_name")
		return nil, apperrors.New(apperrors.Validation, "Missing required field: product_name")
	}
	if req.QuantityPerUnit == "" {
		s.log.Error().Msg("missing required field quantity_per_unit")
		return nil, apperrors.New(apperrors.Validation, "Missing required field: quantity_per_unit")
	}
	if req.Discontinued == nil {
		s.log.Error().Msg("missing required field discontinued")
		return nil, apperrors.New(apperrors.Validation, "Missing required field: discontinued")
	}

	discontinued := 0
	if *req.Discontinued {
		discontinued = 1
	}

	product := &models.Product{
		ProductName:     req.ProductName,
		SupplierID:      req.SupplierID,
		CategoryID:      req.CategoryID,
		QuantityPerUnit: req.QuantityPerUnit,
		UnitPrice:       req.UnitPrice,
		UnitsInStock:    req.UnitsInStock,
		UnitsOnOrder:    req.UnitsOnOrder,
		ReorderLevel:    req.ReorderLevel,
		Discontinued:    discontinued,
	}

	if err := s.products.Insert(product); err != nil {
		return nil, fmt.Errorf("inserting product %s: %w", req.ProductName, err)
	}

	s.log.Debug().Int("product_id", product.ProductID).Msg("product created")
	return product, nil
}

// UpdateProduct applies a partial update from a field-name to value
// mapping. Unknown keys are ignored.
func (s *ProductService) UpdateProduct(productID string, fields map[string]any) (*models.Product, error) {
	id, err := parseIntID("product", productID)
	if err != nil {
		s.log.Error().Str("product_id", productID).Msg("invalid product id")
		return nil, err
	}

	product, err := s.products.GetByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Int("product_id", id).Msg("product not found")
			return nil, apperrors.New(apperrors.ResourceNotFound, "Product not found with id %d", id)
		}
		return nil, fmt.Errorf("fetching product %d: %w", id, err)
	}

	for name, value := range fields {
		product.ApplyField(name, value)
	}

	if err := s.products.Update(product); err != nil {
		return nil, fmt.Errorf("updating product %d: %w", id, err)
	}

	s.log.Debug().Int("product_id", id).Msg("product updated")
	return product, nil
}
