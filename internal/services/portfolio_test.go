package services

import (
	"testing"

	"report-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTestProduct(productName string, funds ...models.Fund) models.Product {
	return models.Product{
		ID:          uuid.New(),
		ProductName: productName,
		Funds:       funds,
	}
}

func createTestFund(amount, fees float64) models.Fund {
	return models.Fund{
		ID:       uuid.New(),
		FundName: "Test Fund",
		Amount:   amount,
		Fees:     fees,
	}
}

func TestCalculatePortfolioTotal(t *testing.T) {
	products := []models.Product{
		createTestProduct("Tax Free Savings",
			createTestFund(100, 10),
			createTestFund(50, 5),
		),
	}

	total := CalculatePortfolioTotal(products, 0.2)

	assert.InDelta(t, 27.0, total, 0.0001, "Total should be (100-10)*0.2 + (50-5)*0.2 = 27")
}

func TestCalculatePortfolioTotal_AcrossProducts(t *testing.T) {
	products := []models.Product{
		createTestProduct("Retirement Annuity", createTestFund(200, 20)),
		createTestProduct("Unit Trust", createTestFund(300, 30)),
	}

	total := CalculatePortfolioTotal(products, 0.5)

	assert.InDelta(t, 225.0, total, 0.0001)
}

func TestCalculatePortfolioTotal_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CalculatePortfolioTotal(nil, 0.2))
	assert.Equal(t, 0.0, CalculatePortfolioTotal([]models.Product{createTestProduct("Empty")}, 0.2))
}

func TestCalculatePortfolioTotal_NegativeValuesPassThrough(t *testing.T) {
	// Fees exceeding the amount are not special-cased.
	products := []models.Product{
		createTestProduct("Underwater", createTestFund(10, 40)),
	}

	total := CalculatePortfolioTotal(products, 0.2)

	assert.InDelta(t, -6.0, total, 0.0001)
}

func TestFlattenFunds_PreservesOrder(t *testing.T) {
	first := createTestFund(1, 0)
	second := createTestFund(2, 0)
	third := createTestFund(3, 0)

	products := []models.Product{
		createTestProduct("A", first, second),
		createTestProduct("B", third),
	}

	funds := FlattenFunds(products)

	assert.Len(t, funds, 3)
	assert.Equal(t, []models.Fund{first, second, third}, funds)
}

func TestFlattenFunds_EmptyProducts(t *testing.T) {
	assert.Empty(t, FlattenFunds(nil))
}
