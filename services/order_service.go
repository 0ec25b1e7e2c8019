package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/apperrors"
	"github.com/northwind-labs/northwind-api/models"
	"github.com/northwind-labs/northwind-api/repositories"
)

// CreateOrderRequest carries the fields accepted when creating an
// order. Dates are ISO-8601 strings; order_date and ship_via are
// required.
type CreateOrderRequest struct {
	CustomerID     *string  `json:"customer_id"`
	EmployeeID     *int     `json:"employee_id"`
	OrderDate      *string  `json:"order_date"`
	RequiredDate   *string  `json:"required_date"`
	ShippedDate    *string  `json:"shipped_date"`
	ShipVia        *int     `json:"ship_via"`
	Freight        *float64 `json:"freight"`
	ShipName       *string  `json:"ship_name"`
	ShipAddress    *string  `json:"ship_address"`
	ShipCity       *string  `json:"ship_city"`
	ShipRegion     *string  `json:"ship_region"`
	ShipPostalCode *string  `json:"ship_postal_code"`
	ShipCountry    *string  `json:"ship_country"`
}

// OrderService validates order operations and builds the nested order
// projections.
type OrderService struct {
	orders *repositories.OrderRepository
	log    zerolog.Logger
}

// NewOrderService creates an order service.
func NewOrderService(orders *repositories.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		log:    log.With().Str("service", "order").Logger(),
	}
}

// GetAllOrders returns one page of orders with nested projections.
func (s *OrderService) GetAllOrders(page string) ([]map[string]any, error) {
	pageNum, err := ParsePage(page)
	if err != nil {
		s.log.Error().Str("page", page).Msg("invalid page number")
		return nil, err
	}

	s.log.Debug().Int("page", pageNum).Int("page_size", DefaultPageSize).Msg("fetching orders")
	orders, err := s.orders.GetPage(pageNum, DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching orders page %d: %w", pageNum, err)
	}
	s.log.Debug().Int("count", len(orders)).Msg("returning orders")

	result := make([]map[string]any, 0, len(orders))
	for i := range orders {
		result = append(result, orders[i].FlattenNested())
	}
	return result, nil
}

// GetOrder returns one order with its nested projection.
func (s *OrderService) GetOrder(orderID string) (map[string]any, error) {
	id, err := parseIntID("order", orderID)
	if err != nil {
		s.log.Error().Str("order_id", orderID).Msg("invalid order id")
		return nil, err
	}

	order, err := s.orders.GetByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Int("order_id", id).Msg("order not found")
			return nil, apperrors.NotFoundError("order", id)
		}
		return nil, fmt.Errorf("fetching order %d: %w", id, err)
	}

	return order.FlattenNested(), nil
}

// AddOrder validates and persists a new order, returning the created
// row with its assigned id.
func (s *OrderService) AddOrder(req CreateOrderRequest) (*models.Order, error) {
	if req.OrderDate == nil {
		s.log.Error().Msg("missing required field order_date")
		return nil, apperrors.New(apperrors.Validation, "Missing required field: order_date")
	}
	if req.ShipVia == nil {
		s.log.Error().Msg("missing required field ship_via")
		return nil, apperrors.New(apperrors.Validation, "Missing required field: ship_via")
	}

	orderDate, err := parseOptionalDate("order_date", req.OrderDate)
	if err != nil {
		return nil, err
	}
	requiredDate, err := parseOptionalDate("required_date", req.RequiredDate)
	if err != nil {
		return nil, err
	}
	shippedDate, err := parseOptionalDate("shipped_date", req.ShippedDate)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID:     req.CustomerID,
		EmployeeID:     req.EmployeeID,
		OrderDate:      orderDate,
		RequiredDate:   requiredDate,
		ShippedDate:    shippedDate,
		ShipVia:        *req.ShipVia,
		Freight:        req.Freight,
		ShipName:       req.ShipName,
		ShipAddress:    req.ShipAddress,
		ShipCity:       req.ShipCity,
		ShipRegion:     req.ShipRegion,
		ShipPostalCode: req.ShipPostalCode,
		ShipCountry:    req.ShipCountry,
	}

	if err := s.orders.Insert(order); err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	s.log.Debug().Int("order_id", order.OrderID).Msg("order created")
	return order, nil
}

// UpdateOrder applies a partial update from a field-name to value
// mapping. Unknown keys are ignored.
func (s *OrderService) UpdateOrder(orderID string, fields map[string]any) (*models.Order, error) {
	id, err := parseIntID("order", orderID)
	if err != nil {
		s.log.Error().Str("order_id", orderID).Msg("invalid order id")
		return nil, err
	}

	order, err := s.orders.GetByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Int("order_id", id).Msg("order not found")
			return nil, apperrors.NotFoundError("order", id)
		}
		return nil, fmt.Errorf("fetching order %d: %w", id, err)
	}

	for name, value := range fields {
		order.ApplyField(name, value)
	}

	if err := s.orders.Update(order); err != nil {
		return nil, fmt.Errorf("updating order %d: %w", id, err)
	}

	s.log.Debug().Int("order_id", id).Msg("order updated")
	return order, nil
}

// parseOptionalDate parses an optional ISO-8601 date string, failing
// with a validation error on malformed input.
func parseOptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := models.ParseISOTime(*value)
	if err != nil {
		return nil, apperrors.New(apperrors.Validation, "Invalid value for %s: %s", field, *value)
	}
	return &t, nil
}
