package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northwind-labs/northwind-api/apperrors"
	"github.com/northwind-labs/northwind-api/repositories"
)

func TestGetAllOrders(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(repositories.NewOrderRepository(db), testLogger())

	customer := seedCustomer(t, db, "ALFKI", "Alfreds Futterkiste")
	shipper := seedShipper(t, db, "Speedy Express")
	employee := seedEmployee(t, db, "Davolio", "Nancy")

	order := seedOrder(t, db, &customer.CustomerID, shipper.ShipperID)
	order.EmployeeID = &employee.EmployeeID
	assert.NoError(t, db.Save(order).Error)
	seedOrder(t, db, nil, shipper.ShipperID)

	t.Run("returns nested projections", func(t *testing.T) {
		orders, err := service.GetAllOrders("1")
		assert.NoError(t, err)
		assert.Len(t, orders, 2)

		first := orders[0]
		assert.Equal(t, order.OrderID, first["order_id"].(int))
		assert.Equal(t, "ALFKI", first["customer"].(map[string]any)["customer_id"])
		assert.Equal(t, "Davolio", first["employee"].(map[string]any)["last_name"])
		assert.Equal(t, "Speedy Express", first["shipper"].(map[string]any)["company_name"])

		// Absent relations flatten to nil
		second := orders[1]
		assert.Nil(t, second["customer"])
		assert.Nil(t, second["employee"])
	})

	t.Run("invalid page fails with InvalidPage", func(t *testing.T) {
		_, err := service.GetAllOrders("nope")

		var domainErr *apperrors.Error
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, apperrors.InvalidPage, domainErr.Kind)
	})
}

func TestGetOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(repositories.NewOrderRepository(db), testLogger())

	customer := seedCustomer(t, db, "ALFKI", "Alfreds Futterkiste")
	shipper := seedShipper(t, db, "Speedy Express")
	order := seedOrderWithDetails(t, db, &customer.CustomerID, shipper.ShipperID, 12)

	t.Run("returns the nested projection with capped details", func(t *testing.T) {
		flat, err := service.GetOrder("1")
		assert.NoError(t, err)
		assert.Equal(t, order.OrderID, flat["order_id"].(int))

		details := flat["last_10_order_details"].([]map[string]any)
		assert.Len(t, details, 10)
		// Details come back in product-id order
		assert.Equal(t, 1, details[0]["product_id"].(int))
		assert.Equal(t, 10, details[9]["product_id"].(int))
	})

	t.Run("unknown id fails with ResourceNotFound", func(t *testing.T) {
		_, err := service.GetOrder("424242")

		var domainErr *apperrors.Error
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, apperrors.ResourceNotFound, domainErr.Kind)
		assert.Equal(t, "order not found with id 424242", domainErr.Message)
	})

	t.Run("non-numeric id fails with InvalidResourceId", func(t *testing.T) {
		_, err := service.GetOrder("abc")

		var domainErr *apperrors.Error
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, apperrors.InvalidResourceID, domainErr.Kind)
	})
}

func TestAddOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(repositories.NewOrderRepository(db), testLogger())

	shipper := seedShipper(t, db, "Speedy Express")

	t.Run("creates with parsed dates", func(t *testing.T) {
		order, err := service.AddOrder(CreateOrderRequest{
			OrderDate:    strPtr("1997-08-25"),
			RequiredDate: strPtr("1997-09-22T00:00:00"),
			ShipVia:      &shipper.ShipperID,
			ShipCity:     strPtr("Berlin"),
		})
		assert.NoError(t, err)
		assert.NotZero(t, order.OrderID)
		assert.Equal(t, 1997, order.OrderDate.Year())
		assert.Equal(t, 9, int(order.RequiredDate.Month()))

		flat, err := service.GetOrder("1")
		assert.NoError(t, err)
		assert.Equal(t, "1997-08-25T00:00:00", flat["order_date"])
	})

	t.Run("missing order_date fails naming the field", func(t *testing.T) {
		_, err := service.AddOrder(CreateOrderRequest{ShipVia: &shipper.ShipperID})

		var domainErr *apperrors.Error
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, apperrors.Validation, domainErr.Kind)
		assert.Equal(t, "Missing required field: order_date", domainErr.Message)
	})

	t.Run("missing ship_via fails naming the field", func(t *testing.T) {
		_, err := service.AddOrder(CreateOrderRequest{OrderDate: strPtr("1997-08-25")})

		var domainErr *apperrors.Error
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, apperrors.Validation, domainErr.Kind)
		assert.Equal(t, "Missing required field: ship_via", domainErr.Message)
	})

	t.Run("malformed date fails with ValidationError", func(t *testing.T) {
		_, err := service.AddOrder(CreateOrderRequest{
			OrderDate: strPtr("not-a-date"),
			ShipVia:   &shipper.ShipperID,
		})

		var domainErr *apperrors.Error
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, apperrors.Validation, domainErr.Kind)
		assert.Contains(t, domainErr.Message, "order_date")
	})
}

func TestUpdateOrder(t *testing.T) {
	db := setupTestDB(t)
	service := NewOrderService(repositories.NewOrderRepository(db), testLogger())

	customer := seedCustomer(t, db, "ALFKI", "Alfreds Futterkiste")
	shipper := seedShipper(t, db, "Speedy Express")
	order := seedOrder(t, db, &customer.CustomerID, shipper.ShipperID)

	t.Run("persists known fields including dates", func(t *testing.T) {
		_, err := service.UpdateOrder("1", map[string]any{
			"ship_city":    "Hamburg",
			"shipped_date": "1997-09-02",
			"freight":      32.38,
		})
		assert.NoError(t, err)

		flat, err := service.GetOrder("1")
		assert.NoError(t, err)
		assert.Equal(t, "Hamburg", *flat["ship_city"].(*string))
		assert.Equal(t, "1997-09-02T00:00:00", flat["shipped_date"])
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		updated, err := service.UpdateOrder("1", map[string]any{"no_such_field": true})
		assert.NoError(t, err)
		assert.Equal(t, order.OrderID, updated.OrderID)
	})

	t.Run("missing order fails with ResourceNotFound", func(t *testing.T) {
		_, err := service.UpdateOrder("424242", map[string]any{"ship_city": "x"})

		var domainErr *apperrors.Error
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, apperrors.ResourceNotFound, domainErr.Kind)
	})
}
