package services

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/apperrors"
	"github.com/northwind-labs/northwind-api/models"
	"github.com/northwind-labs/northwind-api/repositories"
)

// CreateCustomerRequest carries the fields accepted when creating a
// customer. Only customer_id and company_name are required.
type CreateCustomerRequest struct {
	CustomerID    string  `json:"customer_id"`
	CompanyName   string  `json:"company_name"`
	ContactName   *string `json:"contact_name"`
	ContractTitle *string `json:"contract_title"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Region        *string `json:"region"`
	PostalCode    *string `json:"postal_code"`
	Country       *string `json:"country"`
	Phone         *string `json:"phone"`
	Fax           *string `json:"fax"`
}

// CustomerService validates customer operations and builds their
// transfer projections.
type CustomerService struct {
	customers *repositories.CustomerRepository
	orders    *repositories.OrderRepository
	log       zerolog.Logger
}

// NewCustomerService creates a customer service.
func NewCustomerService(customers *repositories.CustomerRepository, orders *repositories.OrderRepository, log zerolog.Logger) *CustomerService {
	return &CustomerService{
		customers: customers,
		orders:    orders,
		log:       log.With().Str("service", "customer").Logger(),
	}
}

// GetAllCustomers returns one page of flattened customers.
func (s *CustomerService) GetAllCustomers(page string) ([]map[string]any, error) {
	pageNum, err := ParsePage(page)
	if err != nil {
		s.log.Error().Str("page", page).Msg("invalid page number")
		return nil, err
	}

	s.log.Debug().Int("page", pageNum).Int("page_size", DefaultPageSize).Msg("fetching customers")
	customers, err := s.customers.GetPage(pageNum, DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching customers page %d: %w", pageNum, err)
	}
	s.log.Debug().Int("count", len(customers)).Msg("returning customers")

	result := make([]map[string]any, 0, len(customers))
	for i := range customers {
		result = append(result, customers[i].Flatten())
	}
	return result, nil
}

// GetCustomer returns one flattened customer by id.
func (s *CustomerService) GetCustomer(customerID string) (map[string]any, error) {
	if customerID == "" {
		s.log.Error().Str("customer_id", customerID).Msg("invalid customer id")
		return nil, apperrors.New(apperrors.InvalidResourceID, "Requested customer id %s is invalid", customerID)
	}

	customer, err := s.customers.GetByID(customerID)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Str("customer_id", customerID).Msg("customer not found")
			return nil, apperrors.NotFoundError("customer", customerID)
		}
		return nil, fmt.Errorf("fetching customer %s: %w", customerID, err)
	}

	s.log.Debug().Str("company_name", customer.CompanyName).Msg("returning customer")
	return customer.Flatten(), nil
}

// AddCustomer validates and persists a new customer, returning the
// created row. Uniqueness is owned by the primary-key constraint; the
// lookup here only exists for the friendlier message.
func (s *CustomerService) AddCustomer(req CreateCustomerRequest) (*models.Customer, error) {
	if req.CustomerID == "" || req.CompanyName == "" {
		s.log.Error().Msg("customer id and company name are required fields")
		return nil, apperrors.New(apperrors.Validation, "Customer ID and Company Name are required fields")
	}

	if _, err := s.customers.GetByID(req.CustomerID); err == nil {
		s.log.Error().Str("customer_id", req.CustomerID).Msg("customer already exists")
		return nil, apperrors.New(apperrors.AlreadyExists, "Customer already exists with id %s", req.CustomerID)
	} else if !repositories.IsNotFound(err) {
		return nil, fmt.Errorf("checking customer %s: %w", req.CustomerID, err)
	}

	customer := &models.Customer{
		CustomerID:    req.CustomerID,
		CompanyName:   req.CompanyName,
		ContactName:   req.ContactName,
		ContractTitle: req.ContractTitle,
		Address:       req.Address,
		City:          req.City,
		Region:        req.Region,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		Phone:         req.Phone,
		Fax:           req.Fax,
	}

	if err := s.customers.Insert(customer); err != nil {
		if repositories.IsDuplicateKey(err) {
			// Lost the race between the existence check and the insert
			return nil, apperrors.New(apperrors.AlreadyExists, "Customer already exists with id %s", req.CustomerID)
		}
		return nil, fmt.Errorf("inserting customer %s: %w", req.CustomerID, err)
	}

	s.log.Debug().Str("customer_id", customer.CustomerID).Msg("customer created")
	return customer, nil
}

// UpdateCustomer applies a partial update from a field-name to value
// mapping. Unknown keys are ignored.
func (s *CustomerService) UpdateCustomer(customerID string, fields map[string]any) (*models.Customer, error) {
	customer, err := s.customers.GetByID(customerID)
	if err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Str("customer_id", customerID).Msg("customer not found")
			return nil, apperrors.New(apperrors.ResourceNotFound, "Customer not found with id %s", customerID)
		}
		return nil, fmt.Errorf("fetching customer %s: %w", customerID, err)
	}

	for name, value := range fields {
		customer.ApplyField(name, value)
	}

	if err := s.customers.Update(customer); err != nil {
		return nil, fmt.Errorf("updating customer %s: %w", customerID, err)
	}

	s.log.Debug().Str("customer_id", customerID).Msg("customer updated")
	return customer, nil
}

// GetCustomerOrders returns one page of the customer's orders, each
// with nested customer/employee/shipper projections and the capped
// detail sub-list.
func (s *CustomerService) GetCustomerOrders(customerID, page string) ([]map[string]any, error) {
	pageNum, err := ParsePage(page)
	if err != nil {
		s.log.Error().Str("page", page).Msg("invalid page number")
		return nil, err
	}

	if _, err := s.customers.GetByID(customerID); err != nil {
		if repositories.IsNotFound(err) {
			s.log.Error().Str("customer_id", customerID).Msg("customer not found")
			return nil, apperrors.NotFoundError("customer", customerID)
		}
		return nil, fmt.Errorf("fetching customer %s: %w", customerID, err)
	}

	s.log.Debug().
		Str("customer_id", customerID).
		Int("page", pageNum).
		Int("page_size", DefaultPageSize).
		Msg("fetching customer orders")
	orders, err := s.orders.GetPageByCustomer(customerID, pageNum, DefaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("fetching orders for customer %s: %w", customerID, err)
	}
	s.log.Debug().Int("count", len(orders)).Str("customer_id", customerID).Msg("fetched customer orders")

	result := make([]map[string]any, 0, len(orders))
	for i := range orders {
		result = append(result, orders[i].FlattenNested())
	}
	return result, nil
}
