package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yogahom/studio-api/internal/model"
)

// saleRow is the flat row shape; the API nests the purchased package.
type saleRow struct {
	SaleID          int       `db:"sale_id"`
	CustomerID      string    `db:"customer_id"`
	PackageID       string    `db:"package_id"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	AmountPaid      float64   `db:"amount_paid"`
	ModeOfPayment   string    `db:"mode_of_payment"`
	PaymentDateTime time.Time `db:"payment_datetime"`
}

func (row *saleRow) toModel() *model.Sale {
	return &model.Sale{
		SaleID:     row.SaleID,
		CustomerID: row.CustomerID,
		Package: model.SalePackage{
			PackageID:  row.PackageID,
			StartDate:  row.StartDate,
			EndDate:    row.EndDate,
			AmountPaid: row.AmountPaid,
		},
		ModeOfPayment:   row.ModeOfPayment,
		PaymentDateTime: row.PaymentDateTime,
	}
}

func toModels(rows []*saleRow) []*model.Sale {
	sales := make([]*model.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, row.toModel())
	}
	return sales
}

const saleColumns = `sale_id, customer_id, package_id, start_date, end_date,
	   amount_paid, mode_of_payment, payment_datetime`

func (r *saleRepository) Create(ctx context.Context, sale *model.Sale) error {
	query := `
		INSERT INTO sales (
			sale_id, customer_id, package_id, start_date, end_date,
			amount_paid, mode_of_payment, payment_datetime
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		sale.SaleID,
		sale.CustomerID,
		sale.Package.PackageID,
		sale.Package.StartDate,
		sale.Package.EndDate,
		sale.Package.AmountPaid,
		sale.ModeOfPayment,
		sale.PaymentDateTime,
	)
	if err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

func (r *saleRepository) Get(ctx context.Context, saleID int) (*model.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1`
	var row saleRow
	if err := r.db.GetContext(ctx, &row, query, saleID); err != nil {
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return row.toModel(), nil
}

func (r *saleRepository) Delete(ctx context.Context, saleID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("sale not found: %w", sql.ErrNoRows)
	}
	return nil
}

func (r *saleRepository) ListByCustomer(ctx context.Context, customerID string) ([]*model.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE customer_id = $1 ORDER BY sale_id`
	var rows []*saleRow
	if err := r.db.SelectContext(ctx, &rows, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list sales by customer: %w", err)
	}
	return toModels(rows), nil
}

func (r *saleRepository) ListRefs(ctx context.Context) ([]*model.SaleRef, error) {
	query := `SELECT sale_id, customer_id FROM sales ORDER BY sale_id DESC`
	var refs []*model.SaleRef
	if err := r.db.SelectContext(ctx, &refs, query); err != nil {
		return nil, fmt.Errorf("failed to list sale refs: %w", err)
	}
	return refs, nil
}

func (r *saleRepository) ListInRange(ctx context.Context, start, end *time.Time) ([]*model.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if start != nil {
		query += fmt.Sprintf(" AND payment_datetime >= $%d", argCount)
		args = append(args, *start)
		argCount++
	}
	if end != nil {
		query += fmt.Sprintf(" AND payment_datetime <= $%d", argCount)
		args = append(args, *end)
		argCount++
	}
	query += " ORDER BY sale_id"

	var rows []*saleRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return toModels(rows), nil
}

func (r *saleRepository) MaxSaleID(ctx context.Context) (int, error) {
	var max int
	if err := r.db.GetContext(ctx, &max, `SELECT COALESCE(MAX(sale_id), 0) FROM sales`); err != nil {
		return 0, fmt.Errorf("failed to get max sale id: %w", err)
	}
	return max, nil
}
