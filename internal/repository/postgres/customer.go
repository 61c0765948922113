package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yogahom/studio-api/internal/model"
)

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	query := `
		INSERT INTO customers (
			customer_id, first_name, last_name, email, phone,
			address, preferred_contact, class_balance, senior
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		customer.CustomerID,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.PreferredContact,
		customer.ClassBalance,
		customer.Senior,
	)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, customerID string) (*model.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, email, phone,
			   address, preferred_contact, class_balance, senior
		FROM customers
		WHERE customer_id = $1
	`
	var customer model.Customer
	if err := r.db.GetContext(ctx, &customer, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) Delete(ctx context.Context, customerID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("customer not found: %w", sql.ErrNoRows)
	}
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]*model.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, email, phone,
			   address, preferred_contact, class_balance, senior
		FROM customers
		ORDER BY customer_id
	`
	var customers []*model.Customer
	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (r *customerRepository) ListRefs(ctx context.Context) ([]*model.CustomerRef, error) {
	query := `SELECT customer_id, first_name, last_name FROM customers ORDER BY customer_id`
	var refs []*model.CustomerRef
	if err := r.db.SelectContext(ctx, &refs, query); err != nil {
		return nil, fmt.Errorf("failed to list customer refs: %w", err)
	}
	return refs, nil
}

func (r *customerRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, `SELECT customer_id FROM customers`); err != nil {
		return nil, fmt.Errorf("failed to list customer ids: %w", err)
	}
	return ids, nil
}

func (r *customerRepository) Search(ctx context.Context, firstName, lastName string) ([]*model.Customer, error) {
	query := `
		SELECT customer_id, first_name, last_name, email, phone,
			   address, preferred_contact, class_balance, senior
		FROM customers
		WHERE first_name ILIKE '%' || $1 || '%'
	`
	args := []interface{}{firstName}
	if lastName != "" {
		query += ` AND last_name ILIKE '%' || $2 || '%'`
		args = append(args, lastName)
	}
	query += ` ORDER BY customer_id`

	var customers []*model.Customer
	if err := r.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}
	return customers, nil
}

func (r *customerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM customers`); err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func (r *customerRepository) AdjustBalance(ctx context.Context, customerID string, delta int) (int, error) {
	query := `
		UPDATE customers
		SET class_balance = class_balance + $1
		WHERE customer_id = $2
		RETURNING class_balance
	`
	var balance int
	if err := r.db.GetContext(ctx, &balance, query, delta, customerID); err != nil {
		return 0, fmt.Errorf("failed to adjust balance: %w", err)
	}
	return balance, nil
}
