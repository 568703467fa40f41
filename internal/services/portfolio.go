package services

import "report-service/internal/models"

// FlattenFunds collects every fund across all products into a single list,
// preserving product order then fund order.
func FlattenFunds(products []models.Product) []models.Fund {
	funds := []models.Fund{}
	for _, product := range products {
		funds = append(funds, product.Funds...)
	}
	return funds
}

// CalculatePortfolioTotal computes the aggregate portfolio value as the sum
// over all funds of (amount - fees) * taxRate. The rate is applied per fund,
// not to the total. Negative per-fund values (fees exceeding amount) pass
// through unadjusted; empty product or fund collections yield zero.
func CalculatePortfolioTotal(products []models.Product, taxRate float64) float64 {
	total := 0.0
	for _, fund := range FlattenFunds(products) {
		total += (fund.Amount - fund.Fees) * taxRate
	}
	return total
}
