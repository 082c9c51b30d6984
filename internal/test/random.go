package test

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// RandomEmail returns a fake email address.
func RandomEmail() string {
	return gofakeit.Email()
}

// RandomPhone returns a fake local phone number.
func RandomPhone() string {
	return gofakeit.Phone()
}

// RandomAddress returns a fake street address.
func RandomAddress() string {
	return gofakeit.Street()
}

// RandomProduct builds a catalog product with a positive minor-unit price.
func RandomProduct() model.Product {
	return model.Product{
		Name:   gofakeit.Dinner(),
		Price:  int64(gofakeit.Number(100, 1_000_000)),
		Status: model.StatusActive,
		Stock:  model.StockIn,
	}
}
