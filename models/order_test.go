package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderFlattenNested(t *testing.T) {
	orderDate := time.Date(1997, 8, 25, 0, 0, 0, 0, time.UTC)
	customerID := "ALFKI"

	order := Order{
		OrderID:    1,
		CustomerID: &customerID,
		OrderDate:  &orderDate,
		ShipVia:    3,
		Customer:   &Customer{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste"},
		Shipper:    &Shipper{ShipperID: 3, CompanyName: "Federal Shipping"},
	}

	flat := order.FlattenNested()

	assert.Equal(t, "1997-08-25T00:00:00", flat["order_date"])
	assert.Nil(t, flat["shipped_date"])
	assert.Equal(t, "Alfreds Futterkiste", flat["customer"].(map[string]any)["company_name"])
	assert.Nil(t, flat["employee"])
	assert.Equal(t, "Federal Shipping", flat["shipper"].(map[string]any)["company_name"])
	assert.Empty(t, flat["last_10_order_details"])
}

func TestOrderFlattenNestedCapsDetails(t *testing.T) {
	order := Order{OrderID: 1, ShipVia: 1}
	for i := 1; i <= 14; i++ {
		order.OrderDetails = append(order.OrderDetails, OrderDetail{
			OrderID:   1,
			ProductID: i,
			UnitPrice: 10,
			Quantity:  2,
		})
	}

	details := order.FlattenNested()["last_10_order_details"].([]map[string]any)

	assert.Len(t, details, 10)
	for i, detail := range details {
		assert.Equal(t, i+1, detail["product_id"], fmt.Sprintf("detail %d", i))
	}
}

func TestOrderApplyField(t *testing.T) {
	order := Order{OrderID: 1, ShipVia: 1}

	assert.True(t, order.ApplyField("ship_city", "Berlin"))
	assert.Equal(t, "Berlin", *order.ShipCity)

	assert.True(t, order.ApplyField("shipped_date", "1997-09-02"))
	assert.Equal(t, 1997, order.ShippedDate.Year())

	// JSON numbers arrive as float64
	assert.True(t, order.ApplyField("freight", 32.38))
	assert.Equal(t, 32.38, *order.Freight)

	assert.False(t, order.ApplyField("order_id", 99), "primary key is not updatable")
	assert.False(t, order.ApplyField("no_such_field", "x"))
	assert.False(t, order.ApplyField("ship_city", 7), "mistyped value is rejected")

	// Explicit null clears an optional field
	assert.True(t, order.ApplyField("ship_city", nil))
	assert.Nil(t, order.ShipCity)
}

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "1997-08-25"},
		{value: "1997-08-25T10:30:00"},
		{value: "1997-08-25T10:30:00Z"},
		{value: "not-a-date", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			parsed, err := ParseISOTime(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1997, parsed.Year())
		})
	}
}
