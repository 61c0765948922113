package model

// Customer holds contact details and the prepaid class balance. The balance
// is the count of remaining class credits; it is adjusted by sales and
// check-ins, never by reports.
type Customer struct {
	CustomerID       string `json:"customerId" db:"customer_id"`
	FirstName        string `json:"firstName" db:"first_name"`
	LastName         string `json:"lastName" db:"last_name"`
	Email            string `json:"email" db:"email"`
	Phone            string `json:"phone" db:"phone"`
	Address          string `json:"address" db:"address"`
	PreferredContact string `json:"preferredContact" db:"preferred_contact"`
	ClassBalance     int    `json:"classBalance" db:"class_balance"`
	Senior           bool   `json:"senior" db:"senior"`
}

type CreateCustomerRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	Address          string `json:"address"`
	PreferredContact string `json:"preferredContact"`
	Senior           bool   `json:"senior"`
}

// CustomerRef is the projection used to populate dropdown lists.
type CustomerRef struct {
	CustomerID string `json:"customerId" db:"customer_id"`
	FirstName  string `json:"firstName" db:"first_name"`
	LastName   string `json:"lastName" db:"last_name"`
}
