package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yogahom/studio-api/internal/model"
)

func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	query := `
		INSERT INTO classes (
			class_id, class_name, instructor_id, class_type,
			description, daytime, pay_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		class.ClassID,
		class.ClassName,
		class.InstructorID,
		class.ClassType,
		class.Description,
		class.Daytime,
		class.PayRate,
	)
	if err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

func (r *classRepository) Get(ctx context.Context, classID string) (*model.Class, error) {
	query := `
		SELECT class_id, class_name, instructor_id, class_type,
			   description, daytime, pay_rate
		FROM classes
		WHERE class_id = $1
	`
	var class model.Class
	if err := r.db.GetContext(ctx, &class, query, classID); err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	return &class, nil
}

func (r *classRepository) Delete(ctx context.Context, classID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE class_id = $1`, classID)
	if err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("class not found: %w", sql.ErrNoRows)
	}
	return nil
}

func (r *classRepository) List(ctx context.Context) ([]*model.Class, error) {
	query := `
		SELECT class_id, class_name, instructor_id, class_type,
			   description, daytime, pay_rate
		FROM classes
		ORDER BY class_id
	`
	var classes []*model.Class
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (r *classRepository) ListByInstructor(ctx context.Context, instructorID string) ([]*model.Class, error) {
	query := `
		SELECT class_id, class_name, instructor_id, class_type,
			   description, daytime, pay_rate
		FROM classes
		WHERE instructor_id = $1
		ORDER BY class_id
	`
	var classes []*model.Class
	if err := r.db.SelectContext(ctx, &classes, query, instructorID); err != nil {
		return nil, fmt.Errorf("failed to list classes by instructor: %w", err)
	}
	return classes, nil
}

func (r *classRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, `SELECT class_id FROM classes`); err != nil {
		return nil, fmt.Errorf("failed to list class ids: %w", err)
	}
	return ids, nil
}

func (r *classRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM classes`); err != nil {
		return 0, fmt.Errorf("failed to count classes: %w", err)
	}
	return count, nil
}
