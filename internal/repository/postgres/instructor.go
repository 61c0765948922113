package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yogahom/studio-api/internal/model"
)

func (r *instructorRepository) Create(ctx context.Context, instructor *model.Instructor) error {
	query := `
		INSERT INTO instructors (
			instructor_id, first_name, last_name, email, phone,
			address, preferred_contact
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		instructor.InstructorID,
		instructor.FirstName,
		instructor.LastName,
		instructor.Email,
		instructor.Phone,
		instructor.Address,
		instructor.PreferredContact,
	)
	if err != nil {
		return fmt.Errorf("failed to create instructor: %w", err)
	}
	return nil
}

func (r *instructorRepository) Get(ctx context.Context, instructorID string) (*model.Instructor, error) {
	query := `
		SELECT instructor_id, first_name, last_name, email, phone,
			   address, preferred_contact
		FROM instructors
		WHERE instructor_id = $1
	`
	var instructor model.Instructor
	if err := r.db.GetContext(ctx, &instructor, query, instructorID); err != nil {
		return nil, fmt.Errorf("failed to get instructor: %w", err)
	}
	return &instructor, nil
}

func (r *instructorRepository) Delete(ctx context.Context, instructorID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM instructors WHERE instructor_id = $1`, instructorID)
	if err != nil {
		return fmt.Errorf("failed to delete instructor: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("instructor not found: %w", sql.ErrNoRows)
	}
	return nil
}

func (r *instructorRepository) List(ctx context.Context) ([]*model.Instructor, error) {
	query := `
		SELECT instructor_id, first_name, last_name, email, phone,
			   address, preferred_contact
		FROM instructors
		ORDER BY instructor_id
	`
	var instructors []*model.Instructor
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, fmt.Errorf("failed to list instructors: %w", err)
	}
	return instructors, nil
}

func (r *instructorRepository) ListRefs(ctx context.Context) ([]*model.InstructorRef, error) {
	query := `SELECT instructor_id, first_name, last_name FROM instructors ORDER BY instructor_id`
	var refs []*model.InstructorRef
	if err := r.db.SelectContext(ctx, &refs, query); err != nil {
		return nil, fmt.Errorf("failed to list instructor refs: %w", err)
	}
	return refs, nil
}

func (r *instructorRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, `SELECT instructor_id FROM instructors`); err != nil {
		return nil, fmt.Errorf("failed to list instructor ids: %w", err)
	}
	return ids, nil
}

func (r *instructorRepository) Search(ctx context.Context, firstName, lastName string) ([]*model.Instructor, error) {
	query := `
		SELECT instructor_id, first_name, last_name, email, phone,
			   address, preferred_contact
		FROM instructors
		WHERE first_name ILIKE '%' || $1 || '%'
	`
	args := []interface{}{firstName}
	if lastName != "" {
		query += ` AND last_name ILIKE '%' || $2 || '%'`
		args = append(args, lastName)
	}
	query += ` ORDER BY instructor_id`

	var instructors []*model.Instructor
	if err := r.db.SelectContext(ctx, &instructors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search instructors: %w", err)
	}
	return instructors, nil
}

func (r *instructorRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM instructors`); err != nil {
		return 0, fmt.Errorf("failed to count instructors: %w", err)
	}
	return count, nil
}
