package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductFlattenDiscontinued(t *testing.T) {
	active := Product{ProductID: 1, ProductName: "Chai", Discontinued: 0}
	retired := Product{ProductID: 2, ProductName: "Chang", Discontinued: 1}

	assert.Equal(t, false, active.Flatten()["discontinued"])
	assert.Equal(t, true, retired.Flatten()["discontinued"])
}

func TestProductApplyField(t *testing.T) {
	product := Product{ProductID: 1, ProductName: "Chai"}

	assert.True(t, product.ApplyField("discontinued", true))
	assert.Equal(t, 1, product.Discontinued)

	assert.True(t, product.ApplyField("discontinued", false))
	assert.Equal(t, 0, product.Discontinued)

	// The stored 0/1 form is accepted too
	assert.True(t, product.ApplyField("discontinued", float64(1)))
	assert.Equal(t, 1, product.Discontinued)

	assert.False(t, product.ApplyField("discontinued", "yes"))
	assert.Equal(t, 1, product.Discontinued)

	assert.True(t, product.ApplyField("units_in_stock", float64(39)))
	assert.Equal(t, 39, *product.UnitsInStock)

	assert.True(t, product.ApplyField("units_in_stock", nil))
	assert.Nil(t, product.UnitsInStock)

	assert.False(t, product.ApplyField("product_id", float64(9)), "primary key is not updatable")
}

func TestCustomerApplyField(t *testing.T) {
	customer := Customer{CustomerID: "ALFKI", CompanyName: "Alfreds Futterkiste"}

	assert.True(t, customer.ApplyField("company_name", "New Name"))
	assert.Equal(t, "New Name", customer.CompanyName)

	assert.True(t, customer.ApplyField("city", "Berlin"))
	assert.Equal(t, "Berlin", *customer.City)

	assert.False(t, customer.ApplyField("customer_id", "OTHER"), "primary key is immutable")
	assert.Equal(t, "ALFKI", customer.CustomerID)

	assert.False(t, customer.ApplyField("company_name", nil), "required field cannot be nulled")
	assert.Equal(t, "New Name", customer.CompanyName)
}
