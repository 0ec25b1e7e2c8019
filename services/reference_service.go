package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/apperrors"
	"github.com/northwind-labs/northwind-api/repositories"
)

// ReferenceService serves the read-only reference entities:
// categories, suppliers and shippers.
type ReferenceService struct {
	refs *repositories.ReferenceRepository
	log  zerolog.Logger
}

// NewReferenceService creates a reference-data service.
func NewReferenceService(refs *repositories.ReferenceRepository, log zerolog.Logger) *ReferenceService {
	return &ReferenceService{
		refs: refs,
		log:  log.With().Str("service", "reference").Logger(),
	}
}

// GetAllCategories returns one page of flattened categories.
func (s *ReferenceService) GetAllCategories(page string) ([]map[string]any, error) {
	pageNum, err := ParsePage(page)
	if err != nil {
		s.log.Error().Str("page", page).Msg("invalid page number")
		return nil, err
	}

	categories, err := s.refs.GetCategoryPage(pageNum, DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching categories page %d: %w", pageNum, err)
	}

	result := make([]map[string]any, 0, len(categories))
	for i := range categories {
		result = append(result, categories[i].Flatten())
	}
	return result, nil
}

// GetCategory returns one flattened category by id.
func (s *ReferenceService) GetCategory(categoryID string) (map[string]any, error) {
	id, err := parseIntID("category", categoryID)
	if err != nil {
		return nil, err
	}

	category, err := s.refs.GetCategoryByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Int("category_id", id).Msg("category not found")
			return nil, apperrors.NotFoundError("category", id)
		}
		return nil, fmt.Errorf("fetching category %d: %w", id, err)
	}
	return category.Flatten(), nil
}

// GetAllSuppliers returns one page of flattened suppliers.
func (s *ReferenceService) GetAllSuppliers(page string) ([]map[string]any, error) {
	pageNum, err := ParsePage(page)
	if err != nil {
		s.log.Error().Str("page", page).Msg("invalid page number")
		return nil, err
	}

	suppliers, err := s.refs.GetSupplierPage(pageNum, DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching suppliers page %d: %w", pageNum, err)
	}

	result := make([]map[string]any, 0, len(suppliers))
	for i := range suppliers {
		result = append(result, suppliers[i].Flatten())
	}
	return result, nil
}

// GetSupplier returns one flattened supplier by id.
func (s *ReferenceService) GetSupplier(supplierID string) (map[string]any, error) {
	id, err := parseIntID("supplier", supplierID)
	if err != nil {
		return nil, err
	}

	supplier, err := s.refs.GetSupplierByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Int("supplier_id", id).Msg("supplier not found")
			return nil, apperrors.NotFoundError("supplier", id)
		}
		return nil, fmt.Errorf("fetching supplier %d: %w", id, err)
	}
	return supplier.Flatten(), nil
}

// GetAllShippers returns one page of flattened shippers.
func (s *ReferenceService) GetAllShippers(page string) ([]map[string]any, error) {
	pageNum, err := ParsePage(page)
	if err != nil {
		s.log.Error().Str("page", page).Msg("invalid page number")
		return nil, err
	}

	shippers, err := s.refs.GetShipperPage(pageNum, DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching shippers page %d: %w", pageNum, err)
	}

	result := make([]map[string]any, 0, len(shippers))
	for i := range shippers {
		result = append(result, shippers[i].Flatten())
	}
	return result, nil
}

// GetShipper returns one flattened shipper by id.
func (s *ReferenceService) GetShipper(shipperID string) (map[string]any, error) {
	id, err := parseIntID("shipper", shipperID)
	if err != nil {
		return nil, err
	}

	shipper, err := s.refs.GetShipperByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Int("shipper_id", id).Msg("shipper not found")
			return nil, apperrors.NotFoundError("shipper", id)
		}
		return nil, fmt.Errorf("fetching shipper %d: %w", id, err)
	}
	return shipper.Flatten(), nil
}
