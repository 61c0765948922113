package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yogahom/studio-api/internal/model"
)

func (r *attendanceRepository) CreateWithDebit(ctx context.Context, record *model.Attendance) (int, error) {
	var balance int
	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		insert := `
			INSERT INTO attendance (checkin_id, customer_id, class_id, datetime)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.ExecContext(ctx, insert,
			record.CheckinID,
			record.CustomerID,
			record.ClassID,
			record.Datetime,
		); err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}

		debit := `
			UPDATE customers
			SET class_balance = class_balance - 1
			WHERE customer_id = $1
			RETURNING class_balance
		`
		if err := tx.GetContext(ctx, &balance, debit, record.CustomerID); err != nil {
			return fmt.Errorf("failed to debit class balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *attendanceRepository) Get(ctx context.Context, checkinID int) (*model.Attendance, error) {
	query := `
		SELECT checkin_id, customer_id, class_id, datetime
		FROM attendance
		WHERE checkin_id = $1
	`
	var record model.Attendance
	if err := r.db.GetContext(ctx, &record, query, checkinID); err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return &record, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, checkinID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE checkin_id = $1`, checkinID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("attendance record not found: %w", sql.ErrNoRows)
	}
	return nil
}

func (r *attendanceRepository) ListByCustomer(ctx context.Context, customerID string) ([]*model.Attendance, error) {
	query := `
		SELECT checkin_id, customer_id, class_id, datetime
		FROM attendance
		WHERE customer_id = $1
		ORDER BY datetime DESC
	`
	var records []*model.Attendance
	if err := r.db.SelectContext(ctx, &records, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list attendance by customer: %w", err)
	}
	return records, nil
}

func (r *attendanceRepository) ListRecent(ctx context.Context, classIDs []string, limit int) ([]*model.Attendance, error) {
	query := `
		SELECT checkin_id, customer_id, class_id, datetime
		FROM attendance
	`
	args := []interface{}{}
	if len(classIDs) > 0 {
		in, inArgs, err := sqlx.In(`WHERE class_id IN (?)`, classIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to build attendance query: %w", err)
		}
		query += r.db.Rebind(in)
		args = inArgs
	}
	query += fmt.Sprintf(" ORDER BY datetime DESC LIMIT %d", limit)

	var records []*model.Attendance
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list recent attendance: %w", err)
	}
	return records, nil
}

func (r *attendanceRepository) CountByClasses(ctx context.Context, classIDs []string) (int, error) {
	if len(classIDs) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`SELECT COUNT(*) FROM attendance WHERE class_id IN (?)`, classIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to build attendance count query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, r.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) CountByClassBetween(ctx context.Context, classID string, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM attendance
		WHERE class_id = $1 AND datetime >= $2 AND datetime <= $3
	`
	var count int
	if err := r.db.GetContext(ctx, &count, query, classID, start, end); err != nil {
		return 0, fmt.Errorf("failed to count attendance in range: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) MaxCheckinID(ctx context.Context) (int, error) {
	var max int
	if err := r.db.GetContext(ctx, &max, `SELECT COALESCE(MAX(checkin_id), 0) FROM attendance`); err != nil {
		return 0, fmt.Errorf("failed to get max checkin id: %w", err)
	}
	return max, nil
}
