package model

import "time"

// Payment modes
const (
	PaymentCash       = "Cash"
	PaymentCreditCard = "Credit Card"
	PaymentDebitCard  = "Debit Card"
	PaymentCheck      = "Check"
	PaymentOnline     = "Online"
)

// SalePackage is the snapshot of the purchased package embedded in a sale:
// the validity window is computed at sale time from the package description,
// so later package edits do not rewrite history.
type SalePackage struct {
	PackageID  string    `json:"packageId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	AmountPaid float64   `json:"amountPaid"`
}

// Sale records one package purchase. The JSON shape keeps the capitalized
// "Package" key the clients already consume.
type Sale struct {
	SaleID          int         `json:"saleId"`
	CustomerID      string      `json:"customerId"`
	Package         SalePackage `json:"Package"`
	ModeOfPayment   string      `json:"modeOfPayment"`
	PaymentDateTime time.Time   `json:"paymentDateTime"`
}

type CreateSaleRequest struct {
	CustomerID    string  `json:"customerId" binding:"required"`
	PackageID     string  `json:"packageId" binding:"required"`
	AmountPaid    float64 `json:"amountPaid" binding:"required"`
	ModeOfPayment string  `json:"modeOfPayment" binding:"required,oneof=Cash 'Credit Card' 'Debit Card' Check Online"`
}

// SaleRef is the projection used to populate dropdown lists.
type SaleRef struct {
	SaleID     int    `json:"saleId" db:"sale_id"`
	CustomerID string `json:"customerId" db:"customer_id"`
}
